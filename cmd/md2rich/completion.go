package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string   // glob for file arguments, empty if none
	Args        []string // fixed positional values
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {FileGlob: "*.yaml,*.yml"},
	"style":      {FileGlob: "*.css"},
	"template":   {FileGlob: "*.html"},
	"vault":      {IsDir: true},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Note command flags come from the same FlagSets the commands parse.
func getCommands() []commandDef {
	noteCmd := func(name, desc string) commandDef {
		return commandDef{
			Name:        name,
			Desc:        desc,
			Flags:       extractFlagsFromFlagSet(newNoteFlagSet(name, &noteFlags{})),
			FilePattern: "*.md,*.markdown",
		}
	}

	configFS := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(configFS, &commonFlags{})

	return []commandDef{
		noteCmd(cmdCopy, "Copy a note as rich HTML"),
		noteCmd(cmdCopyMD, "Copy a note as portable Markdown"),
		noteCmd(cmdExport, "Export a note as a standalone HTML page"),
		noteCmd(cmdRender, "Print the HTML fragment of a note"),
		{Name: "config", Desc: "Print the effective configuration", Flags: extractFlagsFromFlagSet(configFS)},
		{Name: "doctor", Desc: "Check clipboard and system setup", Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "print results as JSON"}}},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for md2rich\n")
	b.WriteString("_md2rich() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Type != flagFile && f.Type != flagDir) {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			if f.Type == flagDir {
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", pattern)
			} else {
				fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", pattern)
			}
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
		}
		words = append(words, c.Args...)
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		if c.FilePattern != "" {
			b.WriteString("            COMPREPLY+=($(compgen -f -- \"$cur\"))\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _md2rich md2rich\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef md2rich\n\n")
	b.WriteString("_md2rich() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                '--%s[%s]%s' \\\n", f.Long, zshEscape(f.Desc), zshAction(f))
		}
		switch {
		case c.FilePattern != "":
			b.WriteString("                '*:note:_files -g \"*.md\"'\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "                '1:arg:(%s)'\n", strings.Join(c.Args, " "))
		default:
			b.WriteString("                '*::'\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2rich md2rich\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagDir:
		return ":dir:_files -/"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		return fmt.Sprintf(`:file:_files -g "%s"`, strings.Join(globs, " "))
	default:
		return ":value:"
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for md2rich\n")
	b.WriteString("complete -c md2rich -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2rich -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := "__fish_seen_subcommand_from " + c.Name
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2rich -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
			case flagFile, flagDir:
				line += " -r -F"
			default:
				line += " -r"
			}
			b.WriteString(line + " -d '" + fishEscape(f.Desc) + "'\n")
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c md2rich -n '%s' -F\n", cond)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c md2rich -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2rich completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2rich completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2rich completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2rich completion fish > ~/.config/fish/completions/md2rich.fish")
}
