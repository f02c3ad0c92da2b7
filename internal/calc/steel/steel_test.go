package steel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_steel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steel01. grade lookup")

	m, err := Lookup("E250A")
	if err != nil {
		tst.Fatalf("Lookup failed: %v", err)
	}
	chk.Float64(tst, "fy", 1e-15, m.Fy, 250)
	chk.Float64(tst, "fu", 1e-15, m.Fu, 410)

	m, err = Lookup("E450")
	if err != nil {
		tst.Fatalf("Lookup failed: %v", err)
	}
	chk.Float64(tst, "fy E450", 1e-15, m.Fy, 450)

	if _, err := Lookup("S355"); err == nil {
		tst.Errorf("unknown grade must fail")
	}

	chk.IntAssert(len(Grades()), 6)
}

func Test_steel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steel02. epsilon")

	chk.Float64(tst, "eps(250)", 1e-15, Epsilon(250), 1.0)
	chk.Float64(tst, "eps(350)", 1e-12, Epsilon(350), 0.84515425472851657)
	if Epsilon(450) >= Epsilon(250) {
		tst.Errorf("epsilon must decrease with fy")
	}
}
