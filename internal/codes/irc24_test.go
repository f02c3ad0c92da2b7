package codes

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_deflection01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deflection01. IRC:24 limits")

	chk.Float64(tst, "live span/600", 1e-12, LiveLoadDeflectionLimit(30000), 50)
	chk.Float64(tst, "total span/400", 1e-12, TotalDeflectionLimit(30000), 75)
}

func Test_shearbuckling01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shearbuckling01. web panel curves")

	// kv = 5.35 for a wide panel (c/d >= 1, unstiffened).
	d, tw := 2000.0, 12.0
	tau := ElasticShearBucklingStress(d, tw, 30000)
	kv := 5.35 + 4.0/(15.0*15.0)
	want := kv * math.Pi * math.Pi * 200000 / (12 * (1 - 0.09) * (d / tw) * (d / tw))
	chk.Float64(tst, "tau_cr_e", 1e-9, tau, want)

	// Closer stiffeners raise the buckling stress.
	if ElasticShearBucklingStress(d, tw, 1500) <= tau {
		tst.Errorf("stiffened panel must buckle at a higher stress")
	}
	chk.Float64(tst, "degenerate", 1e-15, ElasticShearBucklingStress(d, tw, 0), 0)

	// Table 14 strength: yield plateau, linear knockdown, Euler tail.
	fyw := 250.0 / math.Sqrt(3)
	chk.Float64(tst, "stocky", 1e-12, ShearBucklingStrength(fyw, 0.5), fyw)
	chk.Float64(tst, "transition", 1e-12, ShearBucklingStrength(fyw, 1.0), (1-0.8*0.2)*fyw)
	chk.Float64(tst, "slender", 1e-12, ShearBucklingStrength(fyw, 2.0), fyw/4)

	// Monotone non-increasing in slenderness.
	prev := ShearBucklingStrength(fyw, 0.1)
	for lw := 0.2; lw <= 3.0; lw += 0.1 {
		cur := ShearBucklingStrength(fyw, lw)
		if cur > prev+1e-12 {
			tst.Fatalf("tau_b increased at lambda_w = %g", lw)
		}
		prev = cur
	}
}
