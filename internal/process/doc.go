// Package process runs helper commands in their own process group so a
// cancelled context also stops the children they fork.
package process
