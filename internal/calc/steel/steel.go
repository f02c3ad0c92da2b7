// Package steel carries the material data and code constants shared by
// the plate girder design pipeline.
//
// Grades follow IS 2062:2011 Table 2 (nominal thickness <= 20 mm).
// Partial safety factors per IS 800:2007 Clause 5.4.1.
package steel

import (
	"math"

	"Girder/internal/calc/errs"
)

const (
	E       = 200000.0 // Young's modulus, MPa
	G       = 76923.0  // shear modulus E/2(1+nu), nu=0.3, MPa
	GammaM0 = 1.10     // yielding
	GammaM1 = 1.25     // buckling
	Density = 78.5     // kN/m3
	Poisson = 0.3
)

// Grade is a standard structural steel grade designation.
type Grade string

const (
	E250A Grade = "E250A"
	E250B Grade = "E250B"
	E300  Grade = "E300"
	E350  Grade = "E350"
	E410  Grade = "E410"
	E450  Grade = "E450"
)

// Material holds the strength values for one grade. Immutable: created
// once from the grade table, never mutated.
type Material struct {
	Grade Grade   `json:"grade"`
	Fy    float64 `json:"fy_mpa"` // yield stress
	Fu    float64 `json:"fu_mpa"` // ultimate tensile stress
}

var grades = map[Grade]Material{
	E250A: {E250A, 250.0, 410.0},
	E250B: {E250B, 250.0, 410.0},
	E300:  {E300, 300.0, 440.0},
	E350:  {E350, 350.0, 490.0},
	E410:  {E410, 410.0, 540.0},
	E450:  {E450, 450.0, 570.0},
}

// Lookup returns the material record for a grade name.
func Lookup(name string) (Material, error) {
	m, ok := grades[Grade(name)]
	if !ok {
		return Material{}, errs.Validation("steel_grade", "unknown grade %q", name)
	}
	return m, nil
}

// Grades lists the known grade names, for input validation messages.
func Grades() []Grade {
	return []Grade{E250A, E250B, E300, E350, E410, E450}
}

// Epsilon is the yield stress ratio sqrt(250/fy) used to normalise the
// slenderness limits of IS 800:2007 across grades. 1.0 for E250.
func Epsilon(fy float64) float64 {
	return math.Sqrt(250.0 / fy)
}
