// Package batch runs several girder analyses in one request. Items run
// concurrently but results keep the input order, and one bad item does
// not sink the rest.
package batch

import (
	"context"
	"sync"

	"Girder/internal/calc/girder"
)

type Input struct {
	Items []girder.Input `json:"items"`
}

// Item is one outcome: either a result or the error that stopped it.
type Item struct {
	Index  int            `json:"index"`
	Result *girder.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Output struct {
	Count   int    `json:"count"`
	Passed  int    `json:"passed"`
	Results []Item `json:"results"`
}

const maxConcurrent = 4

// Calculate fans the items out over a bounded worker pool. The results
// slice is indexed by item, so output order never depends on scheduling.
func Calculate(ctx context.Context, in Input) Output {
	out := Output{Count: len(in.Items), Results: make([]Item, len(in.Items))}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	for i, item := range in.Items {
		wg.Add(1)
		go func(i int, item girder.Input) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := girder.Calculate(ctx, item)
			if err != nil {
				out.Results[i] = Item{Index: i, Error: err.Error()}
				return
			}
			out.Results[i] = Item{Index: i, Result: &res}
		}(i, item)
	}
	wg.Wait()

	for _, item := range out.Results {
		if item.Result != nil && item.Result.Status == "PASS" {
			out.Passed++
		}
	}
	return out
}
