package md2rich_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2rich"
)

// Example converts a short note to an inline-styled HTML fragment.
func Example() {
	conv, err := md2rich.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2rich.Input{
		Markdown: "# Hello\n**World**",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(result.HTML, `<h1 style="font-size: 26px; font-weight: bold; margin: 10px 0;">Hello</h1>`))
	fmt.Println(strings.Contains(result.HTML, "<br><strong>World</strong>"))
	// Output:
	// true
	// true
}

// Example_missingImage shows that unresolvable images degrade to a
// diagnostic instead of failing the conversion.
func Example_missingImage() {
	conv, err := md2rich.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2rich.Input{
		Markdown: "before ![](file:///does/not/exist.png) after",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(result.HTML, "[image processing error: file:///does/not/exist.png]"))
	// Output: true
}

// Example_layout narrows and left-aligns the output container.
func Example_layout() {
	conv, err := md2rich.NewConverter(
		md2rich.WithLayout(md2rich.Layout{MaxWidth: "640px"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2rich.Input{Markdown: "text"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(result.HTML, "max-width: 640px; margin: 0 auto;"))
	fmt.Println(strings.Contains(result.HTML, "text-align: center;"))
	// Output:
	// true
	// false
}
