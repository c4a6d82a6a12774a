package pipeline

// Notes:
// - End-to-end tests go through Transformer.Convert with an in-memory vault
//   (fstest.MapFS) and a stubbed external reader.
// - Rendered structure is checked with golang.org/x/net/html rather than
//   string offsets where nesting matters.

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/alnah/go-md2rich/internal/imageres"
	"github.com/alnah/go-md2rich/internal/testutil"
	"github.com/alnah/go-md2rich/internal/vault"
)

func newTestTransformer(t *testing.T, opts Options) *Transformer {
	t.Helper()
	if opts.Resolver == nil {
		opts.Resolver = &imageres.Resolver{
			Vault: vault.New(fstest.MapFS{
				"img/pic.png":  {Data: []byte("PNG")},
				"a/shared.gif": {Data: []byte("A")},
				"b/shared.gif": {Data: []byte("B")},
			}, "/vault"),
			ReadExternal: func(p string) ([]byte, error) {
				if p == "/ext/photo.jpg" {
					return []byte("JPG"), nil
				}
				return nil, errors.New("no such file")
			},
			Logger: testutil.Slogger(t),
		}
	}
	return NewTransformer(opts)
}

func convert(t *testing.T, tr *Transformer, md string) string {
	t.Helper()
	got, err := tr.Convert(context.Background(), md)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return got
}

// unwrap strips the container div.
func unwrap(t *testing.T, out string) string {
	t.Helper()
	open := `<div style="` + Layout{}.Style() + `">`
	if !strings.HasPrefix(out, open) || !strings.HasSuffix(out, "</div>") {
		t.Fatalf("output not wrapped: %q", out)
	}
	return strings.TrimSuffix(strings.TrimPrefix(out, open), "</div>")
}

// findAll returns every element named tag under n.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for d := range n.Descendants() {
		if d.Type == html.ElementNode && d.Data == tag {
			out = append(out, d)
		}
	}
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			b.WriteString(d.Data)
		}
	}
	return b.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestConvert - End-to-end
// ---------------------------------------------------------------------------

func TestConvert_BasicDocument(t *testing.T) {
	t.Parallel()

	tr := newTestTransformer(t, Options{})
	got := unwrap(t, convert(t, tr, "# Title\n\nSome **bold** and *italic* text with a [link](http://x.com)."))

	want := `<h1 style="font-size: 26px; font-weight: bold; margin: 10px 0;">Title</h1>` +
		"<br><br>Some <strong>bold</strong> and <em>italic</em> text with a " +
		`<a href="http://x.com" style="color: #576b95; text-decoration: none;">link</a>.`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_PlainTextRoundTrips(t *testing.T) {
	t.Parallel()

	tr := newTestTransformer(t, Options{})
	in := "first line\nsecond, with punctuation!\n\nthird (final)"
	got := strings.ReplaceAll(unwrap(t, convert(t, tr, in)), "<br>", "\n")

	if got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestConvert_Images(t *testing.T) {
	t.Parallel()

	pic := imageres.Tag("image/png", []byte("PNG"), "pic.png")

	tests := []struct {
		name         string
		md           string
		wantContains []string
		wantExcludes []string
		wantCount    map[string]int
	}{
		{
			name:         "internal image",
			md:           "see ![[pic.png]] here",
			wantContains: []string{pic},
		},
		{
			name:         "missing image",
			md:           "![[missing.png]]",
			wantContains: []string{"[image not found: missing.png]"},
			wantExcludes: []string{"<img"},
		},
		{
			name:      "repeated reference",
			md:        "![[pic.png]] and ![[pic.png]]",
			wantCount: map[string]int{pic: 2},
		},
		{
			name:         "first listed wins",
			md:           "![[shared.gif]]",
			wantContains: []string{imageres.Tag("image/gif", []byte("A"), "shared.gif")},
		},
		{
			name:         "external image",
			md:           "![photo](file:///ext/photo.jpg)",
			wantContains: []string{imageres.Tag("image/jpeg", []byte("JPG"), "file:///ext/photo.jpg")},
			wantExcludes: []string{"<a "},
		},
		{
			name:         "unreadable external image",
			md:           "![x](file:///ext/none.png)",
			wantContains: []string{"[image processing error: file:///ext/none.png]"},
			wantExcludes: []string{"<a "},
		},
		{
			name:         "remote image never linked",
			md:           "![alt](http://x/y.png)",
			wantContains: []string{"![alt](http://x/y.png)"},
			wantExcludes: []string{"<a "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convert(t, newTestTransformer(t, Options{}), tt.md)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.wantExcludes {
				if strings.Contains(got, bad) {
					t.Errorf("output must not contain %q:\n%s", bad, got)
				}
			}
			for frag, n := range tt.wantCount {
				if c := strings.Count(got, frag); c != n {
					t.Errorf("output has %d copies of %q, want %d", c, frag, n)
				}
			}
		})
	}
}

func TestConvert_CodeBlockSpaces(t *testing.T) {
	t.Parallel()

	got := convert(t, newTestTransformer(t, Options{}), "```\nfoo  bar\n```")
	if !strings.Contains(got, "foo&nbsp;&nbsp;bar") {
		t.Fatalf("two-space run not preserved:\n%s", got)
	}

	doc := parse(t, got)
	pres := findAll(doc, "pre")
	if len(pres) != 1 {
		t.Fatalf("found %d <pre>, want 1", len(pres))
	}
	codes := findAll(pres[0], "code")
	if len(codes) != 1 {
		t.Fatalf("found %d <code> in <pre>, want 1", len(codes))
	}
	if got := textOf(codes[0]); got != "foo\u00a0\u00a0bar" {
		t.Errorf("code text = %q", got)
	}
	if items := findAll(doc, "li"); len(items) != 1 || textOf(items[0]) != "1" {
		t.Errorf("line numbers = %d items, want one numbered 1", len(items))
	}
}

func TestConvert_CodeBlockIsProtected(t *testing.T) {
	t.Parallel()

	md := "```\n# not a heading\n**x** [l](u) ==h== *i* ---\n---\n```"
	got := convert(t, newTestTransformer(t, Options{}), md)

	for _, bad := range []string{"<h1", "<strong>", "<a ", "<em>", "<hr", highlightOpen} {
		if strings.Contains(got, bad) {
			t.Errorf("code content was rewritten, found %q:\n%s", bad, got)
		}
	}

	codes := findAll(parse(t, got), "code")
	if len(codes) != 1 {
		t.Fatalf("found %d <code>, want 1", len(codes))
	}
	want := "# not a heading\n**x** [l](u) ==h== *i* ---\n---"
	if diff := cmp.Diff(want, textOf(codes[0])); diff != "" {
		t.Errorf("code text mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_ForgedPlaceholderStripped(t *testing.T) {
	t.Parallel()

	got := unwrap(t, convert(t, newTestTransformer(t, Options{}), "a"+Placeholder(0)+"b"))
	if got != "a0b" {
		t.Errorf("Convert() = %q, want %q", got, "a0b")
	}
}

func TestConvert_CRLF(t *testing.T) {
	t.Parallel()

	got := unwrap(t, convert(t, newTestTransformer(t, Options{}), "## A\r\nb\rc"))
	if want := Heading(2, "A") + "<br>b<br>c"; got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_Compact(t *testing.T) {
	t.Parallel()

	md := "# T\n\n\n\ntext\n```\na\n\n\n\nb\n```\n"
	got := convert(t, newTestTransformer(t, Options{Compact: true}), md)

	if strings.Contains(got, "</h1><br>") {
		t.Errorf("break after heading not dropped:\n%s", got)
	}
	if strings.Contains(got, "<br><br><br>") {
		t.Errorf("break run not collapsed:\n%s", got)
	}
	codes := findAll(parse(t, got), "code")
	if len(codes) != 1 || textOf(codes[0]) != "a\n\n\n\nb" {
		t.Errorf("code block altered by compaction:\n%s", got)
	}
}

func TestConvert_Layout(t *testing.T) {
	t.Parallel()

	l := Layout{MaxWidth: "720px", Center: true}
	got := convert(t, newTestTransformer(t, Options{Layout: l}), "x")
	if want := `<div style="` + l.Style() + `">x</div>`; got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestTransformer(t, Options{}).Convert(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvert_NilResolver(t *testing.T) {
	t.Parallel()

	got := NewTransformer(Options{}).Stages(context.Background())
	out, err := Run(context.Background(), got, "![[a.png]]")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "[image processing error: a.png]") {
		t.Errorf("output = %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestStages - Ordering
// ---------------------------------------------------------------------------

func TestStages_Order(t *testing.T) {
	t.Parallel()

	names := func(stages []Stage) []string {
		out := make([]string, len(stages))
		for i, s := range stages {
			out[i] = s.Name
		}
		return out
	}

	base := []string{
		StageNormalize, StageInternalImages, StageExternalImages, StageExtractCode,
		StageHorizontalRules, StageHeadings, StageLineBreaks, StageEmphasis,
		StageHighlights, StageLinks,
	}

	tests := []struct {
		name    string
		compact bool
		want    []string
	}{
		{"default", false, append(append([]string{}, base...), StageRestoreCode, StageWrap)},
		{"compact", true, append(append([]string{}, base...), StageCompact, StageRestoreCode, StageWrap)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := NewTransformer(Options{Compact: tt.compact})
			if diff := cmp.Diff(tt.want, names(tr.Stages(context.Background()))); diff != "" {
				t.Errorf("stage order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	var order []string
	stage := func(name string) Stage {
		return Stage{Name: name, Apply: func(s string) string {
			order = append(order, name)
			return s + name
		}}
	}

	got, err := Run(context.Background(), []Stage{stage("a"), stage("b")}, ">")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != ">ab" {
		t.Errorf("Run() = %q, want %q", got, ">ab")
	}
	if diff := cmp.Diff([]string{"a", "b"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
