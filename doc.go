// Package md2rich converts notes written in a vault-flavoured Markdown
// dialect into self-contained, inline-styled HTML for pasting into rich-text
// editors, mail clients and chat apps, or for saving as a standalone page.
//
// # Quick Start
//
//	v, err := md2rich.OpenVault("/path/to/vault")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv, err := md2rich.NewConverter(md2rich.WithVault(v))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2rich.Input{
//	    Markdown: "# Hello\n\n![[diagram.png]] **World**",
//	    Name:     "hello",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result.HTML for the rich clipboard, result.Plain as its text fallback.
//
// # Conversion Pipeline
//
// Convert runs a fixed sequence of rewriting passes over one buffer:
//
//  1. Vault embeds ![[name.png]] and file:/// images become base64 <img> tags
//  2. Fenced code blocks are rendered and parked behind placeholders
//  3. Rules, headings and line breaks become styled HTML
//  4. Bold, italic, inline code, ==highlight== and links become styled HTML
//  5. Code blocks are restored and the result is wrapped in a container
//
// Images that cannot be resolved never fail a conversion; they become a
// bracketed diagnostic such as "[image not found: x.png]" in the output.
//
// # Other Outputs
//
// PortableMarkdown rewrites vault embeds as standard Markdown images with
// file:/// URLs. Document wraps the converted fragment in a full HTML page
// rendered from an embedded (or custom) template and stylesheet.
//
// # Configuration
//
//	conv, err := md2rich.NewConverter(
//	    md2rich.WithVault(v),
//	    md2rich.WithMaxImageSize(5<<20),
//	    md2rich.WithLayout(md2rich.Layout{MaxWidth: "720px", Center: true}),
//	    md2rich.WithCompact(true),
//	    md2rich.WithStyle("plain"),
//	)
package md2rich
