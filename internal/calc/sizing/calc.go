// Package sizing derives starting plate dimensions for a girder from
// empirical span rules. Only fields the caller left unset (zero) are
// filled; supplied values are never overridden. The result may still be
// rejected by the section model.
package sizing

import (
	"math"

	"Girder/internal/calc/section"
	"Girder/internal/calc/steel"
)

// depthFactor is the span-to-depth divisor K by load class: heavier
// traffic gets a deeper girder.
func depthFactor(loadClass string) float64 {
	switch loadClass {
	case "CLASS_70R", "CLASS_70R_WHEELED", "CLASS_70R_TRACKED", "CLASS_70R_BOGIE":
		return 12
	case "CLASS_AA", "CLASS_AA_TRACKED", "CLASS_AA_WHEELED":
		return 13
	default: // Class A / Class B
		return 14
	}
}

func ceilTo(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

// Fill completes the geometry for the given span, load class and yield
// stress. Thumb rules for simply supported welded plate girders:
// overall depth span/K, flange thickness max(20, D/40), web thickness
// from the d/tw < 200*epsilon stiffener-avoidance limit with an 8 mm
// weldability floor, flange width d/3 capped by the compact outstand
// limit. Dimensions round up to fabrication steps.
func Fill(g section.Geometry, loadClass string, fy float64) section.Geometry {
	span := g.SpanMM
	eps := steel.Epsilon(fy)

	overallDepth := ceilTo(span/depthFactor(loadClass), 50)

	tf := g.FlangeThickness
	if tf == 0 {
		if g.WebThickness != 0 {
			tf = math.Max(20, 2*g.WebThickness)
		} else {
			tf = ceilTo(math.Max(20, overallDepth/40), 2)
		}
	}

	dw := g.WebDepth
	if dw == 0 {
		dw = overallDepth - 2*tf
	}

	tw := g.WebThickness
	if tw == 0 {
		tw = math.Max(8, ceilTo(dw/(200*eps), 2))
	}

	bf := g.FlangeWidth
	if bf == 0 {
		bf = dw / 3
		// Keep the outstand within the compact limit 8.4*epsilon.
		maxWidth := 2*8.4*eps*tf + tw
		bf = math.Max(200, ceilTo(math.Min(bf, maxWidth), 10))
	}

	out := g
	out.WebDepth = dw
	out.WebThickness = tw
	out.FlangeWidth = bf
	out.FlangeThickness = tf
	return out
}
