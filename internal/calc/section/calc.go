// Package section computes cross-sectional properties and the IS 800:2007
// Table 2 classification for a welded plate girder I-section.
package section

import (
	"math"

	"Girder/internal/calc/errs"
	"Girder/internal/calc/steel"
)

// Geometry describes the girder plates. All dimensions in mm. A zero
// value means "not set"; the sizing package fills those before the
// section model runs.
type Geometry struct {
	SpanMM          float64 `json:"span_mm"`
	WebDepth        float64 `json:"web_depth_mm"`
	WebThickness    float64 `json:"web_thickness_mm"`
	FlangeWidth     float64 `json:"flange_width_mm"`
	FlangeThickness float64 `json:"flange_thickness_mm"`
	NumGirders      int     `json:"num_girders"`
	GirderSpacing   float64 `json:"girder_spacing_mm"`
}

// Class is the local-buckling classification of the section, governing
// which moment capacity formula applies downstream.
type Class string

const (
	Plastic     Class = "plastic"
	Compact     Class = "compact"
	SemiCompact Class = "semi-compact"
	Slender     Class = "slender"
)

// Properties are the derived section properties. Recomputed whenever the
// geometry changes, never mutated in place.
type Properties struct {
	TotalDepth        float64 `json:"total_depth_mm"`
	Area              float64 `json:"area_mm2"`
	Ixx               float64 `json:"ixx_mm4"`
	Iyy               float64 `json:"iyy_mm4"`
	ZTop              float64 `json:"z_top_mm3"`
	ZBottom           float64 `json:"z_bottom_mm3"`
	ZPlastic          float64 `json:"z_plastic_mm3"`
	CentroidBottom    float64 `json:"centroid_from_bottom_mm"`
	WebSlenderness    float64 `json:"web_slenderness"`
	FlangeSlenderness float64 `json:"flange_slenderness"`
	Class             Class   `json:"section_class"`
}

// WeightPerMeter is the girder self-weight in kN/m.
func (p Properties) WeightPerMeter() float64 {
	return p.Area * 1e-6 * steel.Density
}

// ZElastic is the governing elastic section modulus (smaller fibre).
func (p Properties) ZElastic() float64 {
	return math.Min(p.ZTop, p.ZBottom)
}

// Compute derives the section properties from plate dimensions and yield
// stress. Pure function; the only failure is a validation error when a
// dimension is non-positive or the web slenderness d/tw exceeds the
// 200*epsilon admissible maximum for an unstiffened web
// (IS 800:2007 Clause 8.6.1).
func Compute(g Geometry, fy float64) (Properties, error) {
	switch {
	case g.WebDepth <= 0:
		return Properties{}, errs.Validation("web_depth_mm", "must be > 0, got %g", g.WebDepth)
	case g.WebThickness <= 0:
		return Properties{}, errs.Validation("web_thickness_mm", "must be > 0, got %g", g.WebThickness)
	case g.FlangeWidth <= 0:
		return Properties{}, errs.Validation("flange_width_mm", "must be > 0, got %g", g.FlangeWidth)
	case g.FlangeThickness <= 0:
		return Properties{}, errs.Validation("flange_thickness_mm", "must be > 0, got %g", g.FlangeThickness)
	case fy <= 0:
		return Properties{}, errs.Validation("fy_mpa", "must be > 0, got %g", fy)
	}

	dw, tw := g.WebDepth, g.WebThickness
	bf, tf := g.FlangeWidth, g.FlangeThickness

	webSlenderness := dw / tw
	eps := steel.Epsilon(fy)
	if maxRatio := 200.0 * eps; webSlenderness > maxRatio {
		return Properties{}, errs.Validation("web_thickness_mm",
			"web slenderness d/tw = %.1f exceeds admissible %.1f (200*epsilon)", webSlenderness, maxRatio)
	}

	// Doubly symmetric I: equal top and bottom flanges.
	totalDepth := dw + 2*tf
	areaWeb := dw * tw
	areaFlange := bf * tf
	area := areaWeb + 2*areaFlange

	// Centroid from the bottom fibre; symmetric, so at mid-depth. Kept in
	// the parallel-axis form so an unequal bottom flange stays a local change.
	yBot := tf / 2
	yWeb := tf + dw/2
	yTop := tf + dw + tf/2
	yc := (areaFlange*yBot + areaWeb*yWeb + areaFlange*yTop) / area

	iWeb := tw*math.Pow(dw, 3)/12 + areaWeb*math.Pow(yWeb-yc, 2)
	iFlangeLocal := bf * math.Pow(tf, 3) / 12
	iTop := iFlangeLocal + areaFlange*math.Pow(yTop-yc, 2)
	iBot := iFlangeLocal + areaFlange*math.Pow(yBot-yc, 2)
	ixx := iWeb + iTop + iBot

	iyy := dw*math.Pow(tw, 3)/12 + 2*tf*math.Pow(bf, 3)/12

	zTop := ixx / (totalDepth - yc)
	zBottom := ixx / yc

	// Zp for a doubly symmetric I-section about the equal-area axis.
	zPlastic := areaFlange*(dw+tf) + tw*dw*dw/4

	outstand := (bf - tw) / 2
	flangeSlenderness := outstand / tf

	return Properties{
		TotalDepth:        totalDepth,
		Area:              area,
		Ixx:               ixx,
		Iyy:               iyy,
		ZTop:              zTop,
		ZBottom:           zBottom,
		ZPlastic:          zPlastic,
		CentroidBottom:    yc,
		WebSlenderness:    webSlenderness,
		FlangeSlenderness: flangeSlenderness,
		Class:             Classify(webSlenderness, flangeSlenderness, fy),
	}, nil
}

// Classify applies the IS 800:2007 Table 2 limits for a web in bending
// (internal element) and a compression flange outstand. The section takes
// the class of its most slender element; a section exactly at a limit
// takes the stricter class (limits are inclusive).
func Classify(webSlenderness, flangeSlenderness, fy float64) Class {
	eps := steel.Epsilon(fy)
	switch {
	case webSlenderness <= 84*eps && flangeSlenderness <= 8.4*eps:
		return Plastic
	case webSlenderness <= 105*eps && flangeSlenderness <= 9.4*eps:
		return Compact
	case webSlenderness <= 126*eps && flangeSlenderness <= 13.6*eps:
		return SemiCompact
	default:
		return Slender
	}
}
