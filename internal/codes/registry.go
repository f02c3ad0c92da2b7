// Package codes implements the Indian bridge design codes the pipeline
// cites, plus a registry mapping code names to their clause sets.
//
// The registry is populated explicitly by NewRegistry (no import-time
// side effects) and is immutable after construction.
package codes

import "Girder/internal/calc/errs"

// Code is one registered design code: a name and the set of clause
// identifiers the pipeline can cite from it.
type Code struct {
	Name    string
	Title   string
	Clauses []string
}

// Registry maps code names to their clause sets.
type Registry struct {
	codes map[string]Code
}

// NewRegistry builds the fixed code registry.
func NewRegistry() *Registry {
	r := &Registry{codes: make(map[string]Code)}
	for _, c := range []Code{
		{
			Name:  "IRC:6-2017",
			Title: "Standard Specifications for Road Bridges, Section II: Loads",
			Clauses: []string{
				"IRC:6-2017 Cl.208.3", // lane distribution
				"IRC:6-2017 Cl.209",   // congestion
				"IRC:6-2017 Cl.211.2", // impact
				"IRC:6-2017 Annex A",  // vehicle trains
				"IRC:6-2017 Table 1",  // partial safety factors
			},
		},
		{
			Name:  "IRC:24-2010",
			Title: "Steel Road Bridges (Limit State Method)",
			Clauses: []string{
				"IRC:24-2010 Cl.504.5", // deflection limits
			},
		},
		{
			Name:  "IS:800-2007",
			Title: "General Construction in Steel - Code of Practice",
			Clauses: []string{
				"IS:800-2007 Table 2",    // section classification
				"IS:800-2007 Cl.8.2.1.2", // section moment capacity
				"IS:800-2007 Cl.8.2.2",   // lateral-torsional buckling
				"IS:800-2007 Cl.8.4",     // shear
				"IS:800-2007 Cl.8.7.4",   // web bearing
			},
		},
	} {
		r.codes[c.Name] = c
	}
	return r
}

// Get looks up a registered code by name.
func (r *Registry) Get(name string) (Code, error) {
	c, ok := r.codes[name]
	if !ok {
		return Code{}, &errs.CodeNotFoundError{Name: name}
	}
	return c, nil
}

// List returns the registered code names, stable order.
func (r *Registry) List() []string {
	return []string{"IRC:6-2017", "IRC:24-2010", "IS:800-2007"}
}
