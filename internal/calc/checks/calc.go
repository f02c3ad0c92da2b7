// Package checks evaluates the capacity limit-state checks for a plate
// girder: moment, shear, lateral-torsional buckling, web bearing and
// deflection. Every check always runs, even after another has failed,
// so the result reports the full failure picture.
package checks

import (
	"context"
	"fmt"
	"math"

	"github.com/cpmech/gosl/utl"

	"Girder/internal/calc/combine"
	"Girder/internal/calc/section"
	"Girder/internal/calc/steel"
	"Girder/internal/codes"
	"Girder/internal/solver"
)

// Check is one design check outcome. Ratio = demand/capacity; <= 1 passes.
type Check struct {
	Name     string  `json:"name"`
	Clause   string  `json:"clause"`
	Demand   float64 `json:"demand"`
	Capacity float64 `json:"capacity"`
	Ratio    float64 `json:"ratio"`
	Pass     bool    `json:"pass"`
	Note     string  `json:"note,omitempty"`
}

// Input gathers everything the checks need. The deflection check runs on
// a different load basis than the strength checks: the SERVICE (unfactored)
// live load placement, scaled by ServiceFactor (impact and transverse
// distribution, never partial safety factors).
type Input struct {
	Geometry section.Geometry
	Props    section.Properties
	Material steel.Material
	Demand   combine.Demand

	UnbracedLengthMM float64 // lateral restraint spacing; cross-beam spacing
	BearingLengthMM  float64 // stiff bearing length at the support

	Placement     []solver.PointLoad // governing service axle loads, metres
	ServiceFactor float64
}

// Run evaluates all five checks. The only error is a solver failure in
// the deflection demand computation; design inadequacy is a FAIL result,
// not an error.
func Run(ctx context.Context, sv solver.Solver, in Input) ([]Check, error) {
	fy := in.Material.Fy

	mcap, basis := MomentCapacity(in.Props, fy)
	vcap, method := ShearCapacity(in.Geometry, in.Props, fy)
	ltbCap, _, chi := LTBCapacity(in.Geometry, in.Props, fy, in.UnbracedLengthMM)
	bearingCap := WebBearingCapacity(in.Geometry, fy, in.BearingLengthMM)

	deflDemand, err := DeflectionDemand(ctx, sv, in)
	if err != nil {
		return nil, err
	}
	deflLimit := codes.LiveLoadDeflectionLimit(in.Geometry.SpanMM)

	out := []Check{
		newCheck("moment", "IS:800-2007 Cl.8.2.1.2", in.Demand.MomentKNM, mcap, basis),
		newCheck("shear", "IS:800-2007 Cl.8.4", in.Demand.ShearKN, vcap, method),
		newCheck("ltb", "IS:800-2007 Cl.8.2.2", in.Demand.MomentKNM, ltbCap,
			fmt.Sprintf("chi_lt = %.3f", chi)),
		newCheck("web_bearing", "IS:800-2007 Cl.8.7.4", in.Demand.ShearKN, bearingCap, ""),
		newCheck("deflection", "IRC:24-2010 Cl.504.5", deflDemand, deflLimit,
			"service live load, mm"),
	}
	return out, nil
}

// AllPass reports whether every check passed.
func AllPass(cs []Check) bool {
	for _, c := range cs {
		if !c.Pass {
			return false
		}
	}
	return true
}

// Failed lists the names of failing checks.
func Failed(cs []Check) []string {
	var names []string
	for _, c := range cs {
		if !c.Pass {
			names = append(names, c.Name)
		}
	}
	return names
}

func newCheck(name, clause string, demand, capacity float64, note string) Check {
	ratio := math.Inf(1)
	if capacity > 0 {
		ratio = demand / capacity
	}
	return Check{
		Name:     name,
		Clause:   clause,
		Demand:   demand,
		Capacity: capacity,
		Ratio:    ratio,
		Pass:     ratio <= 1.0,
		Note:     note,
	}
}

// MomentCapacity is the laterally supported section capacity in kN*m
// (IS 800:2007 Cl.8.2.1.2). Plastic and compact sections use the plastic
// modulus; semi-compact and slender fall back to the elastic modulus.
func MomentCapacity(p section.Properties, fy float64) (float64, string) {
	switch p.Class {
	case section.Plastic, section.Compact:
		return p.ZPlastic * fy / steel.GammaM0 / 1e6, "plastic modulus"
	default:
		return p.ZElastic() * fy / steel.GammaM0 / 1e6, "elastic modulus"
	}
}

// ShearCapacity in kN (IS 800:2007 Cl.8.4). A stocky web (d/tw <= 67e)
// takes the full plastic shear Av*fy/(sqrt(3)*gm0); a slender web is
// governed by post-critical shear buckling.
func ShearCapacity(g section.Geometry, p section.Properties, fy float64) (float64, string) {
	av := g.WebDepth * g.WebThickness
	fyw := fy / math.Sqrt(3)
	eps := steel.Epsilon(fy)

	if p.WebSlenderness <= 67*eps {
		return av * fyw / steel.GammaM0 / 1000, "plastic"
	}

	// Unstiffened web: stiffener spacing defaults to the span.
	tauCrE := codes.ElasticShearBucklingStress(g.WebDepth, g.WebThickness, g.SpanMM)
	lambdaW := 999.0
	if tauCrE > 0 {
		lambdaW = math.Sqrt(fyw / tauCrE)
	}
	tauB := codes.ShearBucklingStrength(fyw, lambdaW)
	return av * tauB / steel.GammaM1 / 1000, "post-critical"
}

// LTBCapacity is the lateral-torsional buckling moment capacity in kN*m
// (IS 800:2007 Cl.8.2.2) with the non-dimensional slenderness and the
// reduction factor chi_lt. chi_lt saturates at 1.0 for short unbraced
// lengths and decays monotonically for long ones. A zero unbraced length
// means continuous restraint: no reduction.
func LTBCapacity(g section.Geometry, p section.Properties, fy, unbracedMM float64) (capacity, lambdaLT, chiLT float64) {
	if unbracedMM <= 0 {
		cap0, _ := MomentCapacity(p, fy)
		return cap0, 0, 1.0
	}

	h := p.TotalDepth
	iy := p.Iyy

	// St. Venant torsion constant for the three thin plates, and the
	// warping constant of a symmetric I.
	it := (2*g.FlangeWidth*math.Pow(g.FlangeThickness, 3) + g.WebDepth*math.Pow(g.WebThickness, 3)) / 3
	iw := iy * h * h / 4

	term1 := math.Pi * math.Pi * steel.E * iy / (unbracedMM * unbracedMM)
	inner := iw/iy + (unbracedMM*unbracedMM*steel.G*it)/(math.Pi*math.Pi*steel.E*iy)
	mcr := math.Inf(1)
	if inner > 0 {
		mcr = term1 * math.Sqrt(inner)
	}

	lambdaLT = math.Sqrt(p.ZPlastic * fy / mcr)

	// Welded-section imperfection factor.
	alphaLT := 0.49
	if h/g.FlangeWidth > 2 {
		alphaLT = 0.76
	}
	phiLT := 0.5 * (1 + alphaLT*(lambdaLT-0.2) + lambdaLT*lambdaLT)

	chiLT = 1.0
	if disc := phiLT*phiLT - lambdaLT*lambdaLT; disc > 0 {
		chiLT = math.Min(1.0, 1.0/(phiLT+math.Sqrt(disc)))
	}

	capacity = chiLT * p.ZPlastic * fy / steel.GammaM1 / 1e6
	return capacity, lambdaLT, chiLT
}

// WebBearingCapacity at the support in kN (IS 800:2007 Cl.8.7.4): load
// dispersed through the flange at 1:2.5 over n1 = b1 + 5*tf.
func WebBearingCapacity(g section.Geometry, fy, bearingMM float64) float64 {
	if bearingMM <= 0 {
		bearingMM = 300 // typical stiff bearing at an elastomeric pad
	}
	n1 := bearingMM + 5*g.FlangeThickness
	return (bearingMM + n1) * g.WebThickness * fy / steel.GammaM0 / 1000
}

// DeflectionDemand computes the midspan-region deflection in mm under
// the governing service live placement via the solver. This is the one
// demand on a service basis: partial safety factors never touch it.
func DeflectionDemand(ctx context.Context, sv solver.Solver, in Input) (float64, error) {
	if len(in.Placement) == 0 {
		return 0, nil
	}
	spanM := in.Geometry.SpanMM / 1000
	ei := steel.E * in.Props.Ixx * 1e-9 // MPa*mm4 -> kN*m2

	res, err := sv.Analyze(ctx, solver.Request{
		SpanM:      spanM,
		EI:         ei,
		PointLoads: in.Placement,
		Positions:  utl.LinSpace(0, spanM, 101),
	})
	if err != nil {
		return 0, err
	}
	var worst float64
	for _, d := range res.Deflection {
		if a := math.Abs(d); a > worst {
			worst = a
		}
	}
	factor := in.ServiceFactor
	if factor <= 0 {
		factor = 1
	}
	return worst * 1000 * factor, nil
}
