// Package combine applies the limit-state load combinations of
// IRC:6-2017 Table 1 to dead and live load effects and retains the
// governing factored demand.
package combine

// Combination pairs partial safety factors for dead and live load under
// one limit state.
type Combination struct {
	ID      string  `json:"id"`
	GammaDL float64 `json:"gamma_dl"`
	GammaLL float64 `json:"gamma_ll"`
}

// Combinations is the fixed limit-state table. Seismic combinations are
// out of scope for this pipeline.
func Combinations() []Combination {
	return []Combination{
		{"ULS_BASIC", 1.35, 1.50},
		{"ULS_ACCIDENTAL", 1.00, 0.75},
		{"SLS_RARE", 1.00, 1.00},
		{"SLS_FREQUENT", 1.00, 0.75},
		{"SLS_QUASI_PERMANENT", 1.00, 0.00},
	}
}

// Effects are the unfactored load effects for one girder. Moments in
// kN*m, shears in kN. Live effects already include impact.
type Effects struct {
	DeadMomentKNM float64 `json:"dead_moment_kn_m"`
	DeadShearKN   float64 `json:"dead_shear_kn"`
	LiveMomentKNM float64 `json:"live_moment_kn_m"`
	LiveShearKN   float64 `json:"live_shear_kn"`
}

// Demand is the governing factored design demand. The combination that
// governs moment may differ from the one that governs shear; each is
// tracked independently.
type Demand struct {
	MomentKNM         float64 `json:"factored_moment_kn_m"`
	MomentCombination string  `json:"moment_combination"`
	ShearKN           float64 `json:"factored_shear_kn"`
	ShearCombination  string  `json:"shear_combination"`
}

// Governing evaluates every combination in the table and keeps the
// maximum factored moment and maximum factored shear. Purely numeric;
// no failure path.
func Governing(e Effects, table []Combination) Demand {
	var d Demand
	for _, c := range table {
		m := c.GammaDL*e.DeadMomentKNM + c.GammaLL*e.LiveMomentKNM
		v := c.GammaDL*e.DeadShearKN + c.GammaLL*e.LiveShearKN
		if m > d.MomentKNM {
			d.MomentKNM = m
			d.MomentCombination = c.ID
		}
		if v > d.ShearKN {
			d.ShearKN = v
			d.ShearCombination = c.ID
		}
	}
	return d
}
