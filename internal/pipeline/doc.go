// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The conversion is a fixed, ordered list of pure string -> string stages
// threaded through one working buffer. The order is load-bearing: each stage
// relies on the shape the previous ones left behind.
//
//  1. Normalise line endings, strip reserved placeholder characters
//  2. Internal images: ![[name.png]] -> inline <img> or diagnostic
//  3. External images: ![alt](file:///path) -> inline <img> or diagnostic
//  4. Code blocks: fenced blocks rendered and parked behind placeholders
//  5. Horizontal rules, headings, line breaks
//  6. Bold, italic, inline code, highlight, links
//  7. Optional compaction of redundant line breaks
//  8. Placeholder restoration, container wrapping
//
// Code blocks are extracted before any text rewriting so their content is
// never read as headings, emphasis or links, and restored only after the
// last rewriting stage (including compaction).
package pipeline
