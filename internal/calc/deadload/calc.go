// Package deadload sums the permanent loads acting on one girder into a
// uniformly distributed intensity.
package deadload

import "Girder/internal/calc/section"

// Unit weights for the deck build-up.
const (
	deckDensity    = 25.0  // kN/m3, RCC deck slab
	wearingDensity = 22.0  // kN/m3, bituminous wearing coat
	deckThicknessM = 0.200 // m, typical deck slab
	crossBeamShare = 0.05  // cross beams estimated at 5% of girder weight
)

// Input for the dead load engine. Lengths in mm, loads in kN/m.
type Input struct {
	GirderSpacingMM    float64 `json:"girder_spacing_mm"`
	NumGirders         int     `json:"num_girders"`
	WearingThicknessMM float64 `json:"wearing_coat_thickness_mm"`
	BarrierLoadKNM     float64 `json:"crash_barrier_load_kn_m"` // total, both barriers
}

// Result is the per-girder dead load breakdown in kN/m, computed for the
// governing outer girder.
type Result struct {
	SelfWeight   float64 `json:"girder_self_weight_kn_m"`
	DeckSlab     float64 `json:"deck_slab_kn_m"`
	CrossBeams   float64 `json:"cross_beams_kn_m"`
	WearingCoat  float64 `json:"wearing_coat_kn_m"`
	Barrier      float64 `json:"crash_barrier_kn_m"`
	Dead         float64 `json:"total_dead_kn_m"`         // structural
	Superimposed float64 `json:"total_superimposed_kn_m"` // wearing + barrier
}

// Total is the full dead UDL per girder.
func (r Result) Total() float64 { return r.Dead + r.Superimposed }

// Compute builds the per-girder dead UDL. The deck and wearing coat are
// shared by tributary width (girder spacing). The crash barrier UDL is
// carried entirely by the two outer girders, half each. It is NOT
// averaged over all girders; the outer girder governs the design.
func Compute(props section.Properties, in Input) Result {
	tributaryM := in.GirderSpacingMM / 1000

	self := props.WeightPerMeter()
	deck := deckDensity * deckThicknessM * tributaryM
	wearing := wearingDensity * (in.WearingThicknessMM / 1000) * tributaryM
	crossBeams := crossBeamShare * self
	barrier := in.BarrierLoadKNM / 2

	return Result{
		SelfWeight:   self,
		DeckSlab:     deck,
		CrossBeams:   crossBeams,
		WearingCoat:  wearing,
		Barrier:      barrier,
		Dead:         self + deck + crossBeams,
		Superimposed: wearing + barrier,
	}
}
