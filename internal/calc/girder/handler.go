package girder

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Girder/internal/auth"
	"Girder/internal/calc/errs"
	"Girder/internal/repo"
)

// Handler serves the analysis endpoint. Repo is optional: when set and
// the request is authenticated, finished runs are persisted for the
// history endpoints.
type Handler struct {
	Repo repo.Repository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := Calculate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.Repo != nil {
		if userID, ok := auth.UserID(r.Context()); ok {
			if _, err := h.Repo.SaveAnalysis(r.Context(), userID, toJSON(res)); err != nil {
				log.Printf("save analysis: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// A design that fails its checks is still HTTP 200; error statuses are
// reserved for bad input and infrastructure failures.
func writeError(w http.ResponseWriter, err error) {
	var ve *errs.ValidationError
	var se *errs.SolverError
	switch {
	case errors.As(err, &ve):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &se):
		writeJSONError(w, http.StatusBadGateway, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func toJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}
