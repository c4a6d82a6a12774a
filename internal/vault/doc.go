// Package vault models the note collection images are looked up in.
//
// A vault is a flat listing of files with a name and a vault-relative path.
// Internal image references are resolved against this listing by a loose,
// case-insensitive substring match on the trailing path segment, so the
// first file in listing order whose name contains the target wins.
package vault
