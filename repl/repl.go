// Package repl is the REPL driver: line editing and history via
// github.com/chzyer/readline, the read-eval-print loop itself, the
// dump-lexer/dump-reader/pretty-print diagnostic toggles, and file-mode
// execution.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/Riyyi/mal/core"
	"github.com/Riyyi/mal/printer"
	"github.com/Riyyi/mal/reader"
	. "github.com/Riyyi/mal/types"
)

// Options configures a REPL or file-mode run. The zero value is the
// default: no diagnostics, compact (non-pretty) output, standard
// streams.
type Options struct {
	DumpLexer   bool
	DumpReader  bool
	PrettyPrint bool

	Stdout io.Writer
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

// NewRootEnv builds a root environment with the builtin library and the
// language-level Bootstrap installed: a population routine that installs
// native callables into the root environment before evaluation begins.
func NewRootEnv(argv []string) *Env {
	env := NewEnv(nil)
	core.PopulateEnv(env)

	for _, src := range core.Bootstrap {
		rep(src, env, Options{})
		if HasAnyError() {
			fmt.Fprintf(os.Stderr, "bootstrap error: %s\n", printer.PrintStr(ErrorValue(), false))
			os.Exit(1)
		}
	}

	argvValues := make([]*Value, len(argv))
	for i, a := range argv {
		argvValues[i] = NewString(a)
	}
	env.Set("*ARGV*", NewListFromSlice(argvValues))

	return env
}

// rep reads, evaluates and prints one form, returning its printed
// result (or the empty string on error, with the error channel left for
// the caller to render and clear — the only in-language recovery point
// is try*, so the outer boundary clears the channel for the next input).
func rep(input string, env *Env, opts Options) string {
	if opts.DumpLexer {
		tokens, err := reader.Tokenize(input)
		if err != nil {
			fmt.Fprintf(opts.stdout(), "lexer error: %v\n", err)
		} else {
			fmt.Fprintf(opts.stdout(), "tokens: %v\n", tokens)
		}
	}

	form := reader.ReadStr(input)
	if HasAnyError() {
		return ""
	}

	if opts.DumpReader {
		fmt.Fprintf(opts.stdout(), "ast: %s\n", printer.PrintStr(form, false))
	}

	result := Eval(form, env)
	if HasAnyError() {
		return ""
	}

	if opts.PrettyPrint {
		return printer.PrintPretty(result)
	}
	return printer.PrintStr(result, true)
}

// renderError formats the active error channel as a single line,
// "Error: <message>", and clears it.
func renderError() string {
	val := ErrorValue()
	ClearError()
	if val == nil {
		return "Error: unknown error"
	}
	if val.Str != nil {
		return "Error: " + *val.Str
	}
	return "Error: " + printer.PrintStr(val, true)
}

// Run starts an interactive REPL with line editing and history via
// chzyer/readline.
func Run(prompt string, opts Options, argv []string) error {
	env := NewRootEnv(argv)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = home + "/.mal-history"
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		out := rep(line, env, opts)
		if HasAnyError() {
			fmt.Fprintln(opts.stdout(), renderError())
			continue
		}
		fmt.Fprintln(opts.stdout(), out)
	}
}

// RunFile loads and runs a script file non-interactively, binding
// *ARGV* to the remaining command-line arguments.
func RunFile(path string, extraArgs []string, opts Options) error {
	env := NewRootEnv(extraArgs)

	src := fmt.Sprintf("(load-file %q)", path)
	rep(src, env, opts)
	if HasAnyError() {
		fmt.Fprintln(opts.stdout(), renderError())
		return fmt.Errorf("error running %s", path)
	}
	return nil
}
