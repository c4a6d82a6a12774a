package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	flag "github.com/spf13/pflag"

	md2rich "github.com/alnah/go-md2rich"
	"github.com/alnah/go-md2rich/internal/config"
)

// Note commands.
const (
	cmdCopy   = "copy"
	cmdCopyMD = "copy-md"
	cmdExport = "export"
	cmdRender = "render"
)

// failureNotices is the one line a user sees when a note command fails;
// details follow on the next lines.
var failureNotices = map[string]string{
	cmdCopy:   "copy failed, please try again",
	cmdCopyMD: "copy failed, please try again",
	cmdExport: "export failed, please try again",
	cmdRender: "render failed, please try again",
}

// noteRun carries the state shared by the steps of a note command.
type noteRun struct {
	cmd    string
	env    *Environment
	flags  *noteFlags
	set    *settings
	logger *slog.Logger
	note   *note
	conv   *md2rich.Converter
}

// notify prints a user-facing status line unless --quiet is set.
func (r *noteRun) notify(format string, args ...any) {
	if r.flags.common.quiet {
		return
	}
	fmt.Fprintf(r.env.Stderr, format+"\n", args...)
}

// runNoteCommand parses flags, runs a note command and reports its outcome.
func runNoteCommand(ctx context.Context, cmd string, args []string, env *Environment) int {
	flags, positional, err := parseNoteFlags(cmd, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintf(env.Stderr, "Run 'md2rich help %s' for usage.\n", cmd)
		return ExitUsage
	}

	r := &noteRun{
		cmd:    cmd,
		env:    env,
		flags:  flags,
		logger: newLogger(env.Stderr, flags.common),
	}
	err = r.execute(ctx, positional)
	return r.report(err)
}

// execute validates the document context before any I/O, then converts.
func (r *noteRun) execute(ctx context.Context, positional []string) error {
	if r.cmd == cmdExport && r.flags.export.watch && len(positional) > 0 && positional[0] == stdinArg {
		return ErrWatchStdin
	}

	n, err := readNote(positional, r.flags.source, r.env.Stdin)
	if err != nil {
		return err
	}
	r.note = n

	r.set, err = loadSettings(r.flags.common, r.env.Stderr, func(cfg *config.Config) error {
		return mergeFlags(r.flags, cfg)
	})
	if err != nil {
		return err
	}
	if r.set.configPath != "" {
		r.logger.Debug("config loaded", "path", r.set.configPath)
	}

	r.conv, err = newConverter(r.set.cfg, n.vaultProbe(), r.logger)
	if err != nil {
		return err
	}

	switch r.cmd {
	case cmdCopy:
		return r.copyRich(ctx)
	case cmdCopyMD:
		return r.copyMarkdown(ctx)
	case cmdExport:
		return r.export(ctx)
	case cmdRender:
		return r.render(ctx, r.env.Stdout)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, r.cmd)
	}
}

func (r *noteRun) render(ctx context.Context, w io.Writer) error {
	res, err := r.conv.Convert(ctx, r.note.input())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.HTML)
	return err
}

// report prints the command outcome and returns the exit code.
func (r *noteRun) report(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errExportCancelled) {
		r.notify("export cancelled")
		return ExitSuccess
	}

	fmt.Fprintln(r.env.Stderr, failureNotices[r.cmd])
	fmt.Fprintf(r.env.Stderr, "  error: %v%s\n", err, hintFor(err, r.cmd, r.set))
	return exitCodeFor(err)
}
