// IRC:24-2010, Steel Road Bridges (Limit State Method), and the
// IS 800:2007 web panel clauses it defers to.

package codes

import "math"

const (
	eSteel  = 200000.0
	poisson = 0.3
)

// LiveLoadDeflectionLimit is the allowable deflection span/600 (mm)
// under live load, IRC:24-2010 Clause 504.5.
func LiveLoadDeflectionLimit(spanMM float64) float64 { return spanMM / 600 }

// TotalDeflectionLimit is span/400 (mm) for total load.
func TotalDeflectionLimit(spanMM float64) float64 { return spanMM / 400 }

// ElasticShearBucklingStress is the elastic critical shear stress of a
// web panel in MPa (IS 800:2007 Clause 8.4.2.2). d and tw in mm, c is
// the transverse stiffener spacing in mm (use the span for an
// unstiffened web).
func ElasticShearBucklingStress(d, tw, c float64) float64 {
	if c <= 0 || d <= 0 || tw <= 0 {
		return 0
	}
	ratio := c / d
	var kv float64
	if ratio < 1 {
		kv = 4.0 + 5.35/(ratio*ratio)
	} else {
		kv = 5.35 + 4.0/(ratio*ratio)
	}
	slender := d / tw
	return kv * math.Pi * math.Pi * eSteel / (12 * (1 - poisson*poisson) * slender * slender)
}

// ShearBucklingStrength is the post-critical shear buckling strength
// tau_b in MPa given the yield shear stress fyw = fy/sqrt(3) and the
// non-dimensional web slenderness lambda_w (Table 14 of IS 800:2007).
func ShearBucklingStrength(fyw, lambdaW float64) float64 {
	switch {
	case lambdaW <= 0.8:
		return fyw
	case lambdaW < 1.2:
		return (1 - 0.8*(lambdaW-0.8)) * fyw
	default:
		return fyw / (lambdaW * lambdaW)
	}
}
