// Package bridgetype routes an analysis request to the designer for its
// structural form. Plate girders are implemented; the other registered
// forms reserve their names and report themselves as not yet available.
package bridgetype

import (
	"context"
	"fmt"
	"sort"

	"Girder/internal/calc/girder"
)

// Designer verifies one structural form.
type Designer interface {
	Type() string
	Design(ctx context.Context, in girder.Input) (girder.Result, error)
}

type plateGirder struct{}

func (plateGirder) Type() string { return "plate_girder" }
func (plateGirder) Design(ctx context.Context, in girder.Input) (girder.Result, error) {
	return girder.Calculate(ctx, in)
}

type unimplemented struct{ name string }

func (u unimplemented) Type() string { return u.name }
func (u unimplemented) Design(context.Context, girder.Input) (girder.Result, error) {
	return girder.Result{}, fmt.Errorf("bridge type %q is not implemented", u.name)
}

var designers = map[string]Designer{
	"plate_girder": plateGirder{},
	"box_girder":   unimplemented{"box_girder"},
	"truss":        unimplemented{"truss"},
}

// For returns the designer for a bridge type. An empty name means
// plate_girder.
func For(name string) (Designer, error) {
	if name == "" {
		name = "plate_girder"
	}
	d, ok := designers[name]
	if !ok {
		return nil, fmt.Errorf("unknown bridge type %q", name)
	}
	return d, nil
}

// Types lists the registered bridge types in sorted order.
func Types() []string {
	names := make([]string, 0, len(designers))
	for name := range designers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
