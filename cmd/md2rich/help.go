package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2rich <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  copy        Copy a note as rich HTML with a Markdown fallback")
	fmt.Fprintln(w, "  copy-md     Copy a note as portable Markdown")
	fmt.Fprintln(w, "  export      Export a note as a standalone HTML page")
	fmt.Fprintln(w, "  render      Print the HTML fragment of a note")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  doctor      Check clipboard and system setup")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2rich help <command>' for details on a specific command.")
}

// printNoteFlags prints the flags shared by every note command.
func printNoteFlags(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  note    Markdown file, or - to read stdin (requires --name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "  -n, --name <s>            Document name (default: file name)")
	fmt.Fprintln(w, "  -l, --lines <a:b>         Only lines a to b, 1-based inclusive (a: and :b allowed)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --vault <dir>         Vault directory (default: nearest .obsidian parent)")
	fmt.Fprintln(w, "      --max-image-size <s>  Largest vault image to inline (default: 10MiB)")
	fmt.Fprintln(w, "      --concurrency <n>     Parallel image reads (0 = unbounded)")
	fmt.Fprintln(w, "      --max-width <len>     Container max width, e.g. 720px or 80%")
	fmt.Fprintln(w, "      --no-center           Left-align text")
	fmt.Fprintln(w, "      --compact             Collapse blank-line runs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printCommandUsage prints usage for a command.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case cmdCopy:
		fmt.Fprintln(w, "Usage: md2rich copy <note> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Copy a note to the clipboard as styled HTML, with the Markdown as")
		fmt.Fprintln(w, "plain-text fallback. Vault images are inlined as data URIs.")
		fmt.Fprintln(w)
		printNoteFlags(w)
	case cmdCopyMD:
		fmt.Fprintln(w, "Usage: md2rich copy-md <note> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Copy a note to the clipboard as Markdown, with ![[image]] embeds")
		fmt.Fprintln(w, "rewritten as standard images pointing at file:/// URLs.")
		fmt.Fprintln(w)
		printNoteFlags(w)
	case cmdExport:
		fmt.Fprintln(w, "Usage: md2rich export <note> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Write <name>.html, a standalone page. On a terminal you are asked for")
		fmt.Fprintln(w, "the directory; press Enter for the default or q to cancel.")
		fmt.Fprintln(w)
		printNoteFlags(w)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Export:")
		fmt.Fprintln(w, "  -o, --output <dir>        Export directory (skips the prompt)")
		fmt.Fprintln(w, "  -y, --yes                 Use the default directory without asking")
		fmt.Fprintln(w, "  -w, --watch               Re-export when the note changes")
		fmt.Fprintln(w, "      --style <s>           CSS style name, file path or content")
		fmt.Fprintln(w, "      --template <s>        Page template name or .html path")
		fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	case cmdRender:
		fmt.Fprintln(w, "Usage: md2rich render <note> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the styled HTML fragment of a note to stdout.")
		fmt.Fprintln(w)
		printNoteFlags(w)
	case "config":
		fmt.Fprintln(w, "Usage: md2rich config [--config <name>]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the effective configuration as YAML, after environment overrides.")
	case "doctor":
		fmt.Fprintln(w, "Usage: md2rich doctor [--json]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check clipboard helpers, config and environment.")
	case "completion":
		printCompletionUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: md2rich version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: md2rich help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	}
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdCopy, cmdCopyMD, cmdExport, cmdRender,
		"config", "doctor", "completion", "version", "help":
		return true
	}
	return false
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	printCommandUsage(env.Stdout, args[0])
	return ExitSuccess
}
