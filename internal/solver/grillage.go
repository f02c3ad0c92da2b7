package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"Girder/internal/calc/errs"
)

// EngineEnv names the environment variable pointing at an external
// grillage analysis engine executable.
const EngineEnv = "GRILLAGE_ENGINE"

// Grillage adapts an external finite-element engine to the Solver
// capability. The engine is a separate executable that reads a Request
// as JSON on stdin and writes a Response as JSON on stdout. A missing
// engine means the solver is unavailable; that is not an error until
// someone tries to use it.
type Grillage struct {
	path string
}

// NewGrillage locates the engine from GRILLAGE_ENGINE.
func NewGrillage() *Grillage {
	g := &Grillage{}
	if cmd := os.Getenv(EngineEnv); cmd != "" {
		if p, err := exec.LookPath(cmd); err == nil {
			g.path = p
		}
	}
	return g
}

func (g *Grillage) Name() string    { return "grillage" }
func (g *Grillage) Available() bool { return g.path != "" }

// Analyze runs the engine once. The caller's context bounds the run;
// a timeout or non-zero exit surfaces as a SolverError.
func (g *Grillage) Analyze(ctx context.Context, req Request) (Response, error) {
	if !g.Available() {
		return Response{}, errs.Solverf(g.Name(),
			"engine not available: set %s to the engine executable", EngineEnv)
	}
	if err := validate(req); err != nil {
		return Response{}, &errs.SolverError{Solver: g.Name(), Err: err}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, &errs.SolverError{Solver: g.Name(), Err: err}
	}

	cmd := exec.CommandContext(ctx, g.path)
	cmd.Stdin = bytes.NewReader(payload)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, &errs.SolverError{Solver: g.Name(), Err: ctxErr}
		}
		return Response{}, errs.Solverf(g.Name(), "engine failed: %v: %s", err, stderr.String())
	}

	var res Response
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		return Response{}, errs.Solverf(g.Name(), "malformed engine response: %v", err)
	}
	n := len(req.Positions)
	if len(res.Moment) != n || len(res.Shear) != n || len(res.Deflection) != n {
		return Response{}, errs.Solverf(g.Name(),
			"engine returned %d/%d/%d values for %d stations",
			len(res.Shear), len(res.Moment), len(res.Deflection), n)
	}
	return res, nil
}
