package pipeline

import (
	"context"
	"fmt"
)

// Stage is one named rewriting pass over the working buffer.
// Apply must read the whole buffer and return the whole rewritten buffer.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Run applies stages in order, checking for cancellation between stages.
func Run(ctx context.Context, stages []Stage, buf string) (string, error) {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("stage %s: %w", s.Name, err)
		}
		buf = s.Apply(buf)
	}
	return buf, nil
}
