// Package movingload sweeps an IRC vehicle load train across a simply
// supported span and records the bending-moment and shear envelope.
//
// For every longitudinal placement of the train, including partial
// placements hanging off either end (whose off-span axles carry nothing),
// the engine asks the configured solver for the elastic response at N
// evaluation stations and max-accumulates the absolute moment and shear
// per station. Envelope values are then scaled by the IRC:6-2017 impact
// factor and lane-reduction factor.
package movingload

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/cpmech/gosl/utl"

	"Girder/internal/calc/errs"
	"Girder/internal/codes"
	"Girder/internal/solver"
)

// Config tunes the sweep. Zero values take the defaults below.
type Config struct {
	Points  int           // evaluation stations along the span (default 101)
	StepM   float64       // placement increment in metres (default 0.1)
	Workers int           // parallel workers over placements (default 1)
	Timeout time.Duration // bound on the whole sweep (default 30s)
}

const (
	defaultPoints  = 101
	defaultStepM   = 0.1
	defaultTimeout = 30 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Points < 2 {
		c.Points = defaultPoints
	}
	if c.StepM <= 0 {
		c.StepM = defaultStepM
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Point is the envelope value at one station: the largest absolute
// moment and shear over all admissible train placements.
type Point struct {
	PositionMM float64 `json:"position_mm"`
	MomentKNM  float64 `json:"moment_kn_m"`
	ShearKN    float64 `json:"shear_kn"`
}

// Envelope is the result of one sweep. Produced once per analysis run,
// read-only afterwards. Moments and shears include impact and lane
// factors; CriticalPlacement keeps the raw service axle loads that
// produced the governing moment, for the deflection check.
type Envelope struct {
	Points []Point `json:"points"`

	MaxMomentKNM        float64 `json:"max_moment_kn_m"`
	MaxMomentPositionMM float64 `json:"max_moment_position_mm"`
	MaxShearKN          float64 `json:"max_shear_kn"`
	MaxShearPositionMM  float64 `json:"max_shear_position_mm"`

	ImpactFactor   float64 `json:"impact_factor"`
	LaneFactor     float64 `json:"lane_factor"`
	VehicleClass   string  `json:"vehicle_class"`
	BelowRatedSpan bool    `json:"below_rated_span,omitempty"`

	CriticalPlacement []solver.PointLoad `json:"critical_placement,omitempty"`
}

// perStation is one worker's partial envelope.
type perStation struct {
	moment []float64
	shear  []float64
	bestM  float64
	bestIx int // placement index achieving bestM; -1 if none
}

// Analyze runs the sweep. spanMM in mm; lanesLoaded drives the lane
// reduction factor. A solver failure aborts with a SolverError; a span
// below the vehicle's rated minimum is flagged, not rejected.
func Analyze(ctx context.Context, sv solver.Solver, spanMM float64, vehicle codes.Vehicle, lanesLoaded int, cfg Config) (Envelope, error) {
	if spanMM <= 0 {
		return Envelope{}, errs.Validation("span_mm", "must be > 0, got %g", spanMM)
	}
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	spanM := spanMM / 1000
	stations := utl.LinSpace(0, spanM, cfg.Points)

	// Sweep the train reference from fully off the left end to the right
	// support. Off-span axles contribute zero ordinate.
	start := -vehicle.TotalLengthM
	nPlacements := int(math.Floor((spanM-start)/cfg.StepM)) + 1

	parts := make([]perStation, cfg.Workers)
	errsCh := make([]error, cfg.Workers)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			part := perStation{
				moment: make([]float64, cfg.Points),
				shear:  make([]float64, cfg.Points),
				bestIx: -1,
			}
			for i := w; i < nPlacements; i += cfg.Workers {
				pos := start + float64(i)*cfg.StepM
				loads := axlesOnSpan(vehicle, pos, spanM)
				if len(loads) == 0 {
					continue
				}
				res, err := sv.Analyze(ctx, solver.Request{
					SpanM:      spanM,
					PointLoads: loads,
					Positions:  stations,
				})
				if err != nil {
					errsCh[w] = err
					return
				}
				for j := range stations {
					if m := math.Abs(res.Moment[j]); m > part.moment[j] {
						part.moment[j] = m
					}
					if v := math.Abs(res.Shear[j]); v > part.shear[j] {
						part.shear[j] = v
					}
				}
				if m := maxAbs(res.Moment); m > part.bestM || (m == part.bestM && part.bestIx > i) {
					part.bestM = m
					part.bestIx = i
				}
			}
			parts[w] = part
		}(w)
	}
	wg.Wait()
	for _, err := range errsCh {
		if err != nil {
			return Envelope{}, err
		}
	}

	// Merge partial envelopes. Max is order independent; the critical
	// placement tie-breaks on the lower placement index so the result is
	// identical however the work was split.
	moment := make([]float64, cfg.Points)
	shear := make([]float64, cfg.Points)
	bestM, bestIx := 0.0, -1
	for _, part := range parts {
		if part.moment == nil {
			continue
		}
		for j := range moment {
			if part.moment[j] > moment[j] {
				moment[j] = part.moment[j]
			}
			if part.shear[j] > shear[j] {
				shear[j] = part.shear[j]
			}
		}
		if part.bestIx >= 0 && (part.bestM > bestM || (part.bestM == bestM && (bestIx < 0 || part.bestIx < bestIx))) {
			bestM = part.bestM
			bestIx = part.bestIx
		}
	}

	impact := codes.ImpactFactor("steel", spanM, vehicle.Class)
	lane := codes.LaneDistributionFactor(lanesLoaded)

	env := Envelope{
		Points:       make([]Point, cfg.Points),
		ImpactFactor: impact,
		LaneFactor:   lane,
		VehicleClass: vehicle.Class,
	}
	for j, x := range stations {
		p := Point{
			PositionMM: x * 1000,
			MomentKNM:  moment[j] * impact * lane,
			ShearKN:    shear[j] * impact * lane,
		}
		env.Points[j] = p
		if p.MomentKNM > env.MaxMomentKNM {
			env.MaxMomentKNM = p.MomentKNM
			env.MaxMomentPositionMM = p.PositionMM
		}
		if p.ShearKN > env.MaxShearKN {
			env.MaxShearKN = p.ShearKN
			env.MaxShearPositionMM = p.PositionMM
		}
	}

	if bestIx >= 0 {
		pos := start + float64(bestIx)*cfg.StepM
		env.CriticalPlacement = axlesOnSpan(vehicle, pos, spanM)
	}
	if vehicle.MinRatedSpanM > 0 && spanM < vehicle.MinRatedSpanM {
		env.BelowRatedSpan = true
	}
	return env, nil
}

// axlesOnSpan places the train with its front at pos and keeps only the
// axles that land on the span.
func axlesOnSpan(v codes.Vehicle, pos, spanM float64) []solver.PointLoad {
	loads := make([]solver.PointLoad, 0, len(v.Axles))
	for _, a := range v.Axles {
		x := pos + a.PositionM
		if x >= 0 && x <= spanM {
			loads = append(loads, solver.PointLoad{PositionM: x, LoadKN: a.LoadKN})
		}
	}
	return loads
}

func maxAbs(vals []float64) float64 {
	var m float64
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
