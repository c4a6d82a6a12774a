package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sourceFlags select what part of a note is converted.
type sourceFlags struct {
	name  string // document name for stdin input
	lines string // a:b selection, 1-based inclusive
}

// conversionFlags override the conversion settings from config.
type conversionFlags struct {
	vault        string
	maxImageSize string
	concurrency  int
	maxWidth     string
	noCenter     bool
	compact      bool
}

// exportFlags hold export-only flags.
type exportFlags struct {
	output    string
	yes       bool
	watch     bool
	style     string
	template  string
	assetPath string
}

// noteFlags holds all flags for the note commands.
type noteFlags struct {
	common     commonFlags
	source     sourceFlags
	conversion conversionFlags
	export     exportFlags

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addSourceFlags adds note selection flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVarP(&f.name, "name", "n", "", "document name (required for stdin)")
	fs.StringVarP(&f.lines, "lines", "l", "", "convert only lines a:b (1-based, inclusive)")
}

// addConversionFlags adds conversion override flags to a FlagSet.
func addConversionFlags(fs *flag.FlagSet, f *conversionFlags) {
	fs.StringVar(&f.vault, "vault", "", "vault directory (default: detected from the note)")
	fs.StringVar(&f.maxImageSize, "max-image-size", "", "largest vault image to inline (e.g. 10MiB)")
	fs.IntVar(&f.concurrency, "concurrency", 0, "parallel image reads (0 = unbounded)")
	fs.StringVar(&f.maxWidth, "max-width", "", "container max width as a CSS length")
	fs.BoolVar(&f.noCenter, "no-center", false, "left-align text")
	fs.BoolVar(&f.compact, "compact", false, "collapse blank-line runs")
}

// addExportFlags adds export flags to a FlagSet.
func addExportFlags(fs *flag.FlagSet, f *exportFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "export directory (skips the prompt)")
	fs.BoolVarP(&f.yes, "yes", "y", false, "accept the default directory without prompting")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-export when the note changes")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path or content")
	fs.StringVar(&f.template, "template", "", "page template name or .html path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newNoteFlagSet registers the flags of a note command.
func newNoteFlagSet(cmd string, f *noteFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addConversionFlags(fs, &f.conversion)
	if cmd == cmdExport {
		addExportFlags(fs, &f.export)
	}
	return fs
}

// parseNoteFlags parses note command flags and returns positional args.
// --help prints the usage and returns flag.ErrHelp; other parse errors
// wrap ErrUsage.
func parseNoteFlags(cmd string, args []string, stderr io.Writer) (*noteFlags, []string, error) {
	f := &noteFlags{}
	fs := newNoteFlagSet(cmd, f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printCommandUsage(stderr, cmd) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}
