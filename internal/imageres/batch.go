package imageres

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ref is one image reference found by a scan.
type Ref struct {
	Key   string // distinct key; equal keys are resolved once
	Match string // full matched text
	Value string // captured token or URL
}

// ResolveFunc resolves a single reference.
type ResolveFunc func(ctx context.Context, ref Ref) Resolution

// ResolveAll resolves every distinct reference concurrently and waits for
// all of them. Results are keyed by Ref.Key; completion order is irrelevant.
// A failing reference only degrades its own entry.
func (r *Resolver) ResolveAll(ctx context.Context, refs []Ref, fn ResolveFunc) map[string]Resolution {
	results := make(map[string]Resolution, len(refs))
	distinct := make([]Ref, 0, len(refs))
	for _, ref := range refs {
		if _, seen := results[ref.Key]; seen {
			continue
		}
		results[ref.Key] = Resolution{}
		distinct = append(distinct, ref)
	}

	out := make([]Resolution, len(distinct))
	var g errgroup.Group
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}
	for i, ref := range distinct {
		g.Go(func() error {
			out[i] = fn(ctx, ref)
			return nil
		})
	}
	_ = g.Wait() // resolutions never return errors

	for i, ref := range distinct {
		results[ref.Key] = out[i]
	}
	return results
}
