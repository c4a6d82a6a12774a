// Package imageres turns image references into self-contained <img> tags.
//
// Internal references are looked up in a vault by file name; external
// references are file:/// URLs read straight from disk. Every failure is
// absorbed into a bracketed diagnostic string so a conversion always
// produces output.
package imageres
