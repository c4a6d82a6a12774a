package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Block stages
// ---------------------------------------------------------------------------

func TestHorizontalRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"---", HorizontalRule},
		{"a\n---\nb", "a\n" + HorizontalRule + "\nb"},
		{"----", "----"},
		{" ---", " ---"},
		{"--- x", "--- x"},
	}

	for _, tt := range tests {
		if got := horizontalRules(tt.in); got != tt.want {
			t.Errorf("horizontalRules(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"level 1", "# Title", `<h1 style="font-size: 26px; font-weight: bold; margin: 10px 0;">Title</h1>`},
		{"level 3", "### Sub", `<h3 style="font-size: 22px; font-weight: bold; margin: 10px 0;">Sub</h3>`},
		{"level 6", "###### Tiny", `<h6 style="font-size: 16px; font-weight: bold; margin: 10px 0;">Tiny</h6>`},
		{"no space", "#tag", "#tag"},
		{"mid line", "a # b", "a # b"},
		{"seven hashes", "####### x", `<h7 style="font-size: 14px; font-weight: bold; margin: 10px 0;">x</h7>`},
		{"second line", "text\n## Two", "text\n" + Heading(2, "Two")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := headings(tt.in); got != tt.want {
				t.Errorf("headings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineBreaks(t *testing.T) {
	t.Parallel()

	if got := lineBreaks("a\nb\n\nc"); got != "a<br>b<br><br>c" {
		t.Errorf("lineBreaks() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Inline stages
// ---------------------------------------------------------------------------

func TestEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "**b**", "<strong>b</strong>"},
		{"italic", "*i*", "<em>i</em>"},
		{"code", "`c`", inlineCodeOpen + "c</code>"},
		{"nearest closer", "**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
		{"overlap resolves left to right", "***x***", "<strong><em>x</strong></em>"},
		{"unclosed", "a * b", "a * b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := emphasis(tt.in); got != tt.want {
				t.Errorf("emphasis(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHighlights(t *testing.T) {
	t.Parallel()

	if got := highlights("a ==b== c"); got != "a "+highlightOpen+"b</span> c" {
		t.Errorf("highlights() = %q", got)
	}
	if got := highlights("a == b"); got != "a == b" {
		t.Errorf("highlights() rewrote an unpaired marker: %q", got)
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	anchor := func(href, label string) string {
		return `<a href="` + href + `" style="` + linkStyle + `">` + label + `</a>`
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "[x](http://x.com)", anchor("http://x.com", "x")},
		{"image untouched", "![alt](file:///x.png)", "![alt](file:///x.png)"},
		{"remote image untouched", "![alt](http://x/y.png)", "![alt](http://x/y.png)"},
		{"image then link", "![a](b) [c](d)", "![a](b) " + anchor("d", "c")},
		{"two links", "[a](b)[c](d)", anchor("b", "a") + anchor("d", "c")},
		{"bang not adjacent", "! [a](b)", "! " + anchor("b", "a")},
		{"no link", "[a] (b)", "[a] (b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := links(tt.in); got != tt.want {
				t.Errorf("links(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Cleanup and wrap
// ---------------------------------------------------------------------------

func TestCompact(t *testing.T) {
	t.Parallel()

	in := "<br><br>" + Heading(1, "T") + "<br><br><br><br>a<br>b" + HorizontalRule + "<br>c<br>"
	want := Heading(1, "T") + "<br>a<br>b" + HorizontalRule + "c"
	if got := compact(in); got != want {
		t.Errorf("compact() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompact_LeavesPlaceholders(t *testing.T) {
	t.Parallel()

	in := "a<br>" + Placeholder(0) + "<br>b"
	if got := compact(in); got != in {
		t.Errorf("compact() = %q, want unchanged", got)
	}
}

func TestLayoutStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		layout       Layout
		wantContains []string
		wantExcludes []string
	}{
		{"zero", Layout{}, []string{ContainerStyle}, []string{"max-width", "text-align"}},
		{"max width", Layout{MaxWidth: "800px"}, []string{"max-width: 800px; margin: 0 auto;"}, []string{"text-align"}},
		{"center", Layout{Center: true}, []string{"text-align: center;"}, []string{"max-width"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.layout.Style()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Style() = %q, missing %q", got, want)
				}
			}
			for _, bad := range tt.wantExcludes {
				if strings.Contains(got, bad) {
					t.Errorf("Style() = %q, must not contain %q", got, bad)
				}
			}
		})
	}
}
