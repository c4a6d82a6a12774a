package main

import (
	"context"
	"fmt"
)

// copyRich puts the converted note on the clipboard as HTML with the
// Markdown as plain-text fallback.
func (r *noteRun) copyRich(ctx context.Context) error {
	res, err := r.conv.Convert(ctx, r.note.input())
	if err != nil {
		return err
	}
	if err := r.env.NewClipboard(r.logger).WriteRich(ctx, res.HTML, res.Plain); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	r.notify("copied to clipboard")
	return nil
}

// copyMarkdown puts the note on the clipboard with vault embeds rewritten
// as standard Markdown images.
func (r *noteRun) copyMarkdown(ctx context.Context) error {
	md, err := r.conv.PortableMarkdown(ctx, r.note.input())
	if err != nil {
		return err
	}
	if err := r.env.NewClipboard(r.logger).WriteText(ctx, md); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	r.notify("markdown copied to clipboard")
	return nil
}
