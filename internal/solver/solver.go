// Package solver defines the narrow capability the moving-load engine
// needs from a structural solver: analyze a simply supported span under a
// given flexural rigidity and load description, returning internal forces
// at requested positions. The native implementation is closed-form and
// always available; external adapters negotiate their own availability
// and are selected by explicit configuration, never by fallback.
package solver

import (
	"context"

	"Girder/internal/calc/errs"
)

// PointLoad is one concentrated load on the span.
type PointLoad struct {
	PositionM float64 `json:"position_m"`
	LoadKN    float64 `json:"load_kn"`
}

// Request describes one simply supported analysis. EI in kN*m2,
// UDL in kN/m. Positions are the stations (m from the left support)
// where the response is required.
type Request struct {
	SpanM      float64     `json:"span_m"`
	EI         float64     `json:"ei_kn_m2"`
	PointLoads []PointLoad `json:"point_loads,omitempty"`
	UDLKNM     float64     `json:"udl_kn_m,omitempty"`
	Positions  []float64   `json:"positions_m"`
}

// Response carries the internal forces at the requested positions:
// shear in kN, moment in kN*m, deflection in m (downward positive).
type Response struct {
	Positions  []float64 `json:"positions_m"`
	Shear      []float64 `json:"shear_kn"`
	Moment     []float64 `json:"moment_kn_m"`
	Deflection []float64 `json:"deflection_m"`
}

// Solver is the capability contract. Analyze must return a SolverError
// (not malformed data) on any failure, including context timeout.
type Solver interface {
	Name() string
	Available() bool
	Analyze(ctx context.Context, req Request) (Response, error)
}

var constructors = map[string]func() Solver{
	"native":   func() Solver { return &Native{} },
	"grillage": func() Solver { return NewGrillage() },
}

// New returns the solver registered under name. The registry is fixed;
// an unknown name is a solver error.
func New(name string) (Solver, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errs.Solverf(name, "unknown solver, valid: native, grillage")
	}
	return ctor(), nil
}

// Names lists the registered solvers.
func Names() []string { return []string{"native", "grillage"} }

func validate(req Request) error {
	if req.SpanM <= 0 {
		return errs.Validation("span_m", "must be > 0, got %g", req.SpanM)
	}
	if len(req.Positions) == 0 {
		return errs.Validation("positions_m", "at least one station required")
	}
	return nil
}
