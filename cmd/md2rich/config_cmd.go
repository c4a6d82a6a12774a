package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2rich/internal/config"
)

// runConfigCmd prints the effective configuration as YAML: the config
// file with environment overrides applied.
func runConfigCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	fs.Usage = func() { printCommandUsage(env.Stderr, "config") }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	s, err := loadSettings(common, env.Stderr, nil)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, "config", s))
		return exitCodeFor(err)
	}

	out, err := config.Marshal(s.cfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}

	source := "defaults"
	if s.configPath != "" {
		source = s.configPath
	}
	fmt.Fprintf(env.Stdout, "# source: %s\n%s", source, out)
	return ExitSuccess
}
