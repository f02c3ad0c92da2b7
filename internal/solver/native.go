package solver

import (
	"context"

	"Girder/internal/calc/errs"
)

// Native solves a single simply supported span by closed-form statics.
// Shear and moment come straight from the reactions; deflection by
// trapezoidal double integration of M/EI with the support boundary
// condition applied as a linear correction.
type Native struct{}

func (n *Native) Name() string    { return "native" }
func (n *Native) Available() bool { return true }

// Analyze computes the response at the requested stations. Loads outside
// [0, span] are ignored: they are off the span.
func (n *Native) Analyze(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, &errs.SolverError{Solver: n.Name(), Err: err}
	}
	if err := validate(req); err != nil {
		return Response{}, &errs.SolverError{Solver: n.Name(), Err: err}
	}

	L := req.SpanM
	w := req.UDLKNM

	onSpan := make([]PointLoad, 0, len(req.PointLoads))
	for _, p := range req.PointLoads {
		if p.PositionM >= 0 && p.PositionM <= L {
			onSpan = append(onSpan, p)
		}
	}

	// Left reaction from moment equilibrium about the right support.
	ra := w * L / 2
	for _, p := range onSpan {
		ra += p.LoadKN * (L - p.PositionM) / L
	}

	res := Response{
		Positions:  req.Positions,
		Shear:      make([]float64, len(req.Positions)),
		Moment:     make([]float64, len(req.Positions)),
		Deflection: make([]float64, len(req.Positions)),
	}
	for i, x := range req.Positions {
		v := ra - w*x
		m := ra*x - w*x*x/2
		for _, p := range onSpan {
			if x >= p.PositionM {
				v -= p.LoadKN
				m -= p.LoadKN * (x - p.PositionM)
			}
		}
		res.Shear[i] = v
		res.Moment[i] = m
	}

	if req.EI > 0 && len(req.Positions) > 1 {
		res.Deflection = integrateDeflection(req.Positions, res.Moment, req.EI)
	}
	return res, nil
}

// integrateDeflection double-integrates curvature M/EI over the given
// stations (assumed ascending) and removes the rigid-body line so the
// deflection is zero at both ends. Downward positive.
func integrateDeflection(x, moment []float64, ei float64) []float64 {
	n := len(x)
	slope := make([]float64, n)
	defl := make([]float64, n)
	for i := 1; i < n; i++ {
		dx := x[i] - x[i-1]
		slope[i] = slope[i-1] + dx*(moment[i]+moment[i-1])/(2*ei)
	}
	for i := 1; i < n; i++ {
		dx := x[i] - x[i-1]
		defl[i] = defl[i-1] + dx*(slope[i]+slope[i-1])/2
	}
	// Remove the rigid-body line, then flip sign: sagging curvature
	// integrates to a curve below its chord.
	first, last := defl[0], defl[n-1]
	span := x[n-1] - x[0]
	for i := range defl {
		lin := first + (last-first)*(x[i]-x[0])/span
		defl[i] = lin - defl[i]
	}
	return defl
}
