package pipeline

import (
	"context"

	"github.com/alnah/go-md2rich/internal/imageres"
)

// Stage names, in execution order.
const (
	StageNormalize       = "normalize"
	StageInternalImages  = "internal-images"
	StageExternalImages  = "external-images"
	StageExtractCode     = "extract-code"
	StageHorizontalRules = "horizontal-rules"
	StageHeadings        = "headings"
	StageLineBreaks      = "line-breaks"
	StageEmphasis        = "emphasis"
	StageHighlights      = "highlights"
	StageLinks           = "links"
	StageCompact         = "compact"
	StageRestoreCode     = "restore-code"
	StageWrap            = "wrap"
)

// Options configures a Transformer.
type Options struct {
	Resolver *imageres.Resolver // nil means a zero Resolver: no vault, os reads
	Layout   Layout
	Compact  bool // run the cleanup pass before restoring code blocks
}

// Transformer converts note markdown into a styled HTML fragment.
// It holds no per-call state and is safe for concurrent use.
type Transformer struct {
	resolver *imageres.Resolver
	layout   Layout
	compact  bool
}

// NewTransformer creates a Transformer.
func NewTransformer(opts Options) *Transformer {
	r := opts.Resolver
	if r == nil {
		r = &imageres.Resolver{}
	}
	return &Transformer{resolver: r, layout: opts.Layout, compact: opts.Compact}
}

// Stages returns the ordered stage list for one conversion. The returned
// stages share a fresh code block table and must not be reused.
func (t *Transformer) Stages(ctx context.Context) []Stage {
	code := &CodeBlocks{}
	stages := []Stage{
		{StageNormalize, normalize},
		{StageInternalImages, internalImages(ctx, t.resolver)},
		{StageExternalImages, externalImages(ctx, t.resolver)},
		{StageExtractCode, code.Extract},
		{StageHorizontalRules, horizontalRules},
		{StageHeadings, headings},
		{StageLineBreaks, lineBreaks},
		{StageEmphasis, emphasis},
		{StageHighlights, highlights},
		{StageLinks, links},
	}
	if t.compact {
		stages = append(stages, Stage{StageCompact, compact})
	}
	return append(stages,
		Stage{StageRestoreCode, code.Restore},
		Stage{StageWrap, wrap(t.layout)},
	)
}

// Convert runs every stage over md and returns the wrapped fragment.
// Per-image failures become diagnostics in the output; only cancellation
// returns an error.
func (t *Transformer) Convert(ctx context.Context, md string) (string, error) {
	return Run(ctx, t.Stages(ctx), md)
}
