package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/alnah/go-md2rich/internal/imageres"
)

var (
	// internalImagePattern matches vault embeds: ![[path/name.png]]
	internalImagePattern = regexp.MustCompile(`!\[\[(.*?)\]\]`)

	// externalImagePattern matches markdown images with a file:/// target.
	externalImagePattern = regexp.MustCompile(`!\[.*?\]\((file:///.+?)\)`)
)

// internalImages resolves every vault embed and substitutes the results.
//
// Pre: raw markdown. Post: no ![[...]] embeds remain; each became an <img>
// tag or a bracketed diagnostic.
func internalImages(ctx context.Context, r *imageres.Resolver) func(string) string {
	return func(buf string) string {
		matches := internalImagePattern.FindAllStringSubmatch(buf, -1)
		if len(matches) == 0 {
			return buf
		}
		refs := make([]imageres.Ref, len(matches))
		for i, m := range matches {
			refs[i] = imageres.Ref{Key: m[1], Match: m[0], Value: m[1]}
		}
		results := r.ResolveAll(ctx, refs, func(ctx context.Context, ref imageres.Ref) imageres.Resolution {
			return r.ResolveInternal(ctx, ref.Value)
		})
		return substitute(buf, refs, results)
	}
}

// externalImages resolves markdown images pointing at file:/// URLs.
//
// Pre: internal embeds already substituted. Post: no ![...](file:///...)
// image remains; other markdown images are left for later stages, which
// never treat them as links.
func externalImages(ctx context.Context, r *imageres.Resolver) func(string) string {
	return func(buf string) string {
		matches := externalImagePattern.FindAllStringSubmatch(buf, -1)
		if len(matches) == 0 {
			return buf
		}
		refs := make([]imageres.Ref, len(matches))
		for i, m := range matches {
			refs[i] = imageres.Ref{Key: m[0], Match: m[0], Value: m[1]}
		}
		results := r.ResolveAll(ctx, refs, func(ctx context.Context, ref imageres.Ref) imageres.Resolution {
			return r.ResolveExternal(ctx, ref.Match, ref.Value)
		})
		return substitute(buf, refs, results)
	}
}

// substitute applies resolutions one occurrence at a time, in match order.
// Each replacement hits the first remaining occurrence of its original
// text, so repeated references are all replaced.
func substitute(buf string, refs []imageres.Ref, results map[string]imageres.Resolution) string {
	for _, ref := range refs {
		res, ok := results[ref.Key]
		if !ok || res.Original == "" {
			continue
		}
		buf = strings.Replace(buf, res.Original, res.Replacement, 1)
	}
	return buf
}
