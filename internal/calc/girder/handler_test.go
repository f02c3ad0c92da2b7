package girder

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/solver"
)

func post(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/girder/calc", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)
	return w
}

func Test_handler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("handler01. analysis endpoint")

	h := &Handler{}
	body, _ := json.Marshal(baseInput())
	w := post(h, body)
	chk.IntAssert(w.Code, http.StatusOK)

	var res Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		tst.Fatalf("decode response: %v", err)
	}
	chk.StrAssert(res.Status, "PASS")
	chk.IntAssert(len(res.Checks), 5)
}

func Test_handler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("handler02. error mapping")

	h := &Handler{}

	// Malformed JSON.
	w := post(h, []byte("{not json"))
	chk.IntAssert(w.Code, http.StatusBadRequest)

	// Validation failure.
	bad := baseInput()
	bad.SpanMM = -1
	body, _ := json.Marshal(bad)
	w = post(h, body)
	chk.IntAssert(w.Code, http.StatusBadRequest)

	// Unavailable solver maps to 502.
	os.Unsetenv(solver.EngineEnv)
	ext := baseInput()
	ext.Solver = "grillage"
	body, _ = json.Marshal(ext)
	w = post(h, body)
	chk.IntAssert(w.Code, http.StatusBadGateway)
}
