package sizing

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/calc/section"
)

func Test_sizing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizing01. 30 m span, Class A")

	g := Fill(section.Geometry{SpanMM: 30000}, "CLASS_A", 250)

	// D = ceil50(30000/14) = 2150, tf = ceil2(2150/40) = 54,
	// dw = 2150 - 2*54 = 2042, tw = max(8, ceil2(2042/200)) = 12,
	// bf = ceil10(min(dw/3, compact outstand cap)) = 690.
	chk.Float64(tst, "tf", 1e-12, g.FlangeThickness, 54)
	chk.Float64(tst, "dw", 1e-12, g.WebDepth, 2042)
	chk.Float64(tst, "tw", 1e-12, g.WebThickness, 12)
	chk.Float64(tst, "bf", 1e-12, g.FlangeWidth, 690)
}

func Test_sizing02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizing02. user dimensions are never overridden")

	given := section.Geometry{SpanMM: 30000, WebThickness: 10}
	g := Fill(given, "CLASS_A", 250)

	chk.Float64(tst, "tw kept", 1e-12, g.WebThickness, 10)
	// tf from the 2*tw weldability rule, floored at 20.
	chk.Float64(tst, "tf", 1e-12, g.FlangeThickness, 20)
	chk.Float64(tst, "dw", 1e-12, g.WebDepth, 2110)

	full := section.Geometry{
		SpanMM:          30000,
		WebDepth:        1800,
		WebThickness:    16,
		FlangeWidth:     500,
		FlangeThickness: 32,
	}
	if Fill(full, "CLASS_A", 250) != full {
		tst.Errorf("fully specified geometry must pass through unchanged")
	}
}

func Test_sizing03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizing03. heavier load class means deeper girder")

	a := Fill(section.Geometry{SpanMM: 30000}, "CLASS_A", 250)
	r70 := Fill(section.Geometry{SpanMM: 30000}, "CLASS_70R", 250)
	aa := Fill(section.Geometry{SpanMM: 30000}, "CLASS_AA", 250)

	depth := func(g section.Geometry) float64 { return g.WebDepth + 2*g.FlangeThickness }
	if depth(r70) <= depth(aa) || depth(aa) <= depth(a) {
		tst.Errorf("depths must order 70R > AA > A: %g, %g, %g", depth(r70), depth(aa), depth(a))
	}
}
