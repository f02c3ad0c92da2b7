// Package girder runs the full plate-girder verification pipeline:
// sizing, section properties, dead loads, moving-load envelope, factored
// combinations and capacity checks, aggregated into one immutable result.
//
// Workflow as per IS 800:2007 / IRC:24-2010:
//  1. fill omitted dimensions from empirical span rules
//  2. section properties and classification
//  3. dead load estimation per girder
//  4. moving-load envelope under the IRC vehicle train
//  5. governing factored design forces
//  6. capacity checks and verdict
package girder

import (
	"context"
	"fmt"

	"Girder/internal/calc/checks"
	"Girder/internal/calc/combine"
	"Girder/internal/calc/deadload"
	"Girder/internal/calc/errs"
	"Girder/internal/calc/movingload"
	"Girder/internal/calc/section"
	"Girder/internal/calc/sizing"
	"Girder/internal/calc/steel"
	"Girder/internal/codes"
	"Girder/internal/solver"
)

// Input is the validated analysis record. Lengths in mm, loads in kN or
// kN/m. Zero geometry fields are filled by the initial sizer.
type Input struct {
	Project string `json:"project,omitempty"`
	Bridge  string `json:"bridge,omitempty"`

	SpanMM          float64 `json:"span_mm"`
	NumGirders      int     `json:"num_girders"`
	GirderSpacingMM float64 `json:"girder_spacing_mm"`

	SteelGrade  string `json:"steel_grade"`
	LoadClass   string `json:"load_class"`
	LanesLoaded int    `json:"lanes_loaded"`

	WebDepthMM        float64 `json:"web_depth_mm,omitempty"`
	WebThicknessMM    float64 `json:"web_thickness_mm,omitempty"`
	FlangeWidthMM     float64 `json:"flange_width_mm,omitempty"`
	FlangeThicknessMM float64 `json:"flange_thickness_mm,omitempty"`

	WearingThicknessMM float64 `json:"wearing_coat_thickness_mm,omitempty"`
	BarrierLoadKNM     float64 `json:"crash_barrier_load_kn_m,omitempty"`
	BearingLengthMM    float64 `json:"bearing_length_mm,omitempty"`

	Solver        string `json:"solver,omitempty"`
	AllowFallback bool   `json:"allow_fallback,omitempty"`

	EnvelopePoints int     `json:"envelope_points,omitempty"`
	SweepStepM     float64 `json:"sweep_step_m,omitempty"`
	Workers        int     `json:"workers,omitempty"`
}

// Effects summarises moment and shear from one load source.
type Effects struct {
	MomentKNM float64 `json:"moment_kn_m"`
	ShearKN   float64 `json:"shear_kn"`
}

// Result is the analysis output record: created once per run, immutable,
// and fully reproducible from the input.
type Result struct {
	Input        Input               `json:"input"`
	SizingMethod string              `json:"sizing_method"`
	Geometry     section.Geometry    `json:"geometry"`
	Section      section.Properties  `json:"section_properties"`
	DeadLoads    deadload.Result     `json:"dead_loads"`
	DeadEffects  Effects             `json:"dead_load_effects"`
	LiveEffects  Effects             `json:"live_load_effects"`
	Distribution float64             `json:"distribution_factor"`
	Envelope     movingload.Envelope `json:"envelope"`
	Demand       combine.Demand      `json:"factored_demand"`
	Checks       []checks.Check      `json:"checks"`
	FailedChecks []string            `json:"failed_checks,omitempty"`
	Status       string              `json:"status"` // PASS or FAIL
	Warnings     []string            `json:"warnings,omitempty"`
}

const maxPlateGirderSpanMM = 60000

func (in *Input) normalize() {
	if in.LanesLoaded == 0 {
		in.LanesLoaded = 2
	}
	if in.WearingThicknessMM == 0 {
		in.WearingThicknessMM = 75
	}
	if in.BarrierLoadKNM == 0 {
		in.BarrierLoadKNM = 10
	}
	if in.Solver == "" {
		in.Solver = "native"
	}
}

func (in Input) validate() error {
	switch {
	case in.SpanMM <= 0:
		return errs.Validation("span_mm", "must be > 0, got %g", in.SpanMM)
	case in.SpanMM > maxPlateGirderSpanMM:
		return errs.Validation("span_mm",
			"%.1f m exceeds the 60 m plate girder limit; consider a box girder", in.SpanMM/1000)
	case in.NumGirders < 2:
		return errs.Validation("num_girders", "at least 2 required, got %d", in.NumGirders)
	case in.GirderSpacingMM <= 0:
		return errs.Validation("girder_spacing_mm", "must be > 0, got %g", in.GirderSpacingMM)
	case in.LanesLoaded < 1:
		return errs.Validation("lanes_loaded", "must be >= 1, got %d", in.LanesLoaded)
	}
	return nil
}

// Calculate runs one analysis. Validation and solver errors abort the
// run; an inadequate design is a normal Result with Status FAIL and the
// failing checks listed.
func Calculate(ctx context.Context, in Input) (Result, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	mat, err := steel.Lookup(in.SteelGrade)
	if err != nil {
		return Result{}, err
	}
	vehicle, err := codes.VehicleByName(in.LoadClass)
	if err != nil {
		return Result{}, err
	}

	res := Result{Input: in}

	sv, err := solver.New(in.Solver)
	if err != nil {
		return Result{}, err
	}
	if !sv.Available() {
		if !in.AllowFallback {
			return Result{}, errs.Solverf(sv.Name(), "unavailable and fallback not allowed")
		}
		sv = &solver.Native{}
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("solver %q unavailable, fell back to native", in.Solver))
	}

	// Step 1: geometry, auto-sized where the caller left fields unset.
	given := section.Geometry{
		SpanMM:          in.SpanMM,
		WebDepth:        in.WebDepthMM,
		WebThickness:    in.WebThicknessMM,
		FlangeWidth:     in.FlangeWidthMM,
		FlangeThickness: in.FlangeThicknessMM,
		NumGirders:      in.NumGirders,
		GirderSpacing:   in.GirderSpacingMM,
	}
	res.Geometry = sizing.Fill(given, in.LoadClass, mat.Fy)
	res.SizingMethod = "user_specified"
	if res.Geometry != given {
		res.SizingMethod = "auto"
	}

	// Step 2: section properties and classification.
	res.Section, err = section.Compute(res.Geometry, mat.Fy)
	if err != nil {
		return Result{}, err
	}
	switch res.Section.Class {
	case section.Slender:
		res.Warnings = append(res.Warnings,
			"section is slender: elastic modulus used; consider thicker plates")
	case section.SemiCompact:
		res.Warnings = append(res.Warnings,
			"section is semi-compact: plastic modulus cannot be utilised")
	}

	// Step 3: dead loads and their simply supported effects (wL^2/8, wL/2).
	res.DeadLoads = deadload.Compute(res.Section, deadload.Input{
		GirderSpacingMM:    in.GirderSpacingMM,
		NumGirders:         in.NumGirders,
		WearingThicknessMM: in.WearingThicknessMM,
		BarrierLoadKNM:     in.BarrierLoadKNM,
	})
	spanM := in.SpanMM / 1000
	w := res.DeadLoads.Total()
	res.DeadEffects = Effects{
		MomentKNM: w * spanM * spanM / 8,
		ShearKN:   w * spanM / 2,
	}

	// Step 4: moving-load envelope, distributed transversely.
	res.Envelope, err = movingload.Analyze(ctx, sv, in.SpanMM, vehicle, in.LanesLoaded, movingload.Config{
		Points:  in.EnvelopePoints,
		StepM:   in.SweepStepM,
		Workers: in.Workers,
	})
	if err != nil {
		return Result{}, err
	}
	if res.Envelope.BelowRatedSpan {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"span %.1f m is below the rated minimum for %s: interpret results with caution",
			spanM, vehicle.Class))
	}
	res.Distribution = float64(in.LanesLoaded) / float64(in.NumGirders)
	res.LiveEffects = Effects{
		MomentKNM: res.Envelope.MaxMomentKNM * res.Distribution,
		ShearKN:   res.Envelope.MaxShearKN * res.Distribution,
	}

	// Step 5: governing factored demand.
	res.Demand = combine.Governing(combine.Effects{
		DeadMomentKNM: res.DeadEffects.MomentKNM,
		DeadShearKN:   res.DeadEffects.ShearKN,
		LiveMomentKNM: res.LiveEffects.MomentKNM,
		LiveShearKN:   res.LiveEffects.ShearKN,
	}, combine.Combinations())

	// Step 6: capacity checks. Unbraced length is the cross-beam spacing,
	// taken equal to the girder spacing.
	res.Checks, err = checks.Run(ctx, sv, checks.Input{
		Geometry:         res.Geometry,
		Props:            res.Section,
		Material:         mat,
		Demand:           res.Demand,
		UnbracedLengthMM: in.GirderSpacingMM,
		BearingLengthMM:  in.BearingLengthMM,
		Placement:        res.Envelope.CriticalPlacement,
		ServiceFactor:    res.Envelope.ImpactFactor * res.Envelope.LaneFactor * res.Distribution,
	})
	if err != nil {
		return Result{}, err
	}
	res.FailedChecks = checks.Failed(res.Checks)
	res.Status = "PASS"
	if len(res.FailedChecks) > 0 {
		res.Status = "FAIL"
	}
	return res, nil
}
