package deadload

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/calc/section"
)

func props(tst *testing.T) section.Properties {
	g := section.Geometry{WebDepth: 1500, WebThickness: 12, FlangeWidth: 400, FlangeThickness: 25}
	p, err := section.Compute(g, 250)
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	return p
}

func Test_deadload01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deadload01. per-girder breakdown")

	p := props(tst)
	r := Compute(p, Input{
		GirderSpacingMM:    3000,
		NumGirders:         4,
		WearingThicknessMM: 75,
		BarrierLoadKNM:     10,
	})

	self := p.WeightPerMeter()
	chk.Float64(tst, "self weight", 1e-12, r.SelfWeight, self)
	chk.Float64(tst, "deck slab", 1e-12, r.DeckSlab, 25*0.200*3)
	chk.Float64(tst, "wearing coat", 1e-12, r.WearingCoat, 22*0.075*3)
	chk.Float64(tst, "cross beams", 1e-12, r.CrossBeams, 0.05*self)
	chk.Float64(tst, "barrier", 1e-12, r.Barrier, 5)

	chk.Float64(tst, "dead", 1e-12, r.Dead, self+15+0.05*self)
	chk.Float64(tst, "superimposed", 1e-12, r.Superimposed, 4.95+5)
	chk.Float64(tst, "total", 1e-12, r.Total(), r.Dead+r.Superimposed)
}

func Test_deadload02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deadload02. barrier goes to the outer girders")

	p := props(tst)
	in := Input{GirderSpacingMM: 3000, WearingThicknessMM: 75, BarrierLoadKNM: 10}

	// Half of the total barrier load per outer girder, regardless of how
	// many girders the deck has.
	for _, n := range []int{2, 3, 5, 8} {
		in.NumGirders = n
		r := Compute(p, in)
		chk.Float64(tst, "barrier share", 1e-12, r.Barrier, 5)
	}
}
