// Package errs holds the error taxonomy shared by the girder design
// pipeline. A failed design check is NOT an error: it is a valid FAIL
// verdict in the result record. Errors here mean the computation could
// not run at all.
package errs

import "fmt"

// ValidationError reports input parameters that are out of range or
// nonsensical. The pipeline fails fast on these, before any computation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Msg
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Msg)
}

// Validation builds a ValidationError for the given field.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// SolverError reports that the structural solver could not produce a
// response: missing dependency, internal fault or timeout. Non-retryable;
// the pipeline never falls back to another solver unless the caller
// explicitly allowed it.
type SolverError struct {
	Solver string
	Err    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %q: %v", e.Solver, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// Solverf builds a SolverError with a formatted cause.
func Solverf(solver, format string, args ...any) *SolverError {
	return &SolverError{Solver: solver, Err: fmt.Errorf(format, args...)}
}

// CodeNotFoundError reports a lookup of an unregistered design code or
// bridge-type variant.
type CodeNotFoundError struct {
	Name string
}

func (e *CodeNotFoundError) Error() string {
	return fmt.Sprintf("design code %q is not registered", e.Name)
}
