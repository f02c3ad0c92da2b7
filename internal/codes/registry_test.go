package codes

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/calc/errs"
)

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. code lookup")

	reg := NewRegistry()
	chk.Strings(tst, "list", reg.List(), []string{"IRC:6-2017", "IRC:24-2010", "IS:800-2007"})

	c, err := reg.Get("IS:800-2007")
	if err != nil {
		tst.Fatalf("Get failed: %v", err)
	}
	if len(c.Clauses) == 0 {
		tst.Errorf("clause list must not be empty")
	}

	_, err = reg.Get("AASHTO")
	var nf *errs.CodeNotFoundError
	if !errors.As(err, &nf) {
		tst.Fatalf("unregistered code must be CodeNotFoundError, got %v", err)
	}
	chk.StrAssert(nf.Name, "AASHTO")
}
