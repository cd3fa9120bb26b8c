// Command mal is the CLI entry point: an interactive REPL by default, or
// file-mode execution when given a script path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Riyyi/mal/repl"
)

var (
	dumpLexer   bool
	dumpReader  bool
	prettyPrint bool
)

var rootCmd = &cobra.Command{
	Use:   "mal [script] [args...]",
	Short: "mal is a tree-walking Lisp evaluator",
	Long: `mal is a MAL-family Lisp: lexical scoping, tail-call optimized
evaluation, defmacro!/macroexpand, quasiquote, and try*/catch* exception
handling.

With no arguments, mal starts an interactive REPL. Given a script path,
it loads and runs the file non-interactively, binding *ARGV* to any
arguments that follow the script path.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := repl.Options{
			DumpLexer:   dumpLexer,
			DumpReader:  dumpReader,
			PrettyPrint: prettyPrint,
		}

		if len(args) == 0 {
			return repl.Run("user> ", opts, nil)
		}

		return repl.RunFile(args[0], args[1:], opts)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dumpLexer, "dump-lexer", false,
		"print the token stream for each form before evaluating it")
	rootCmd.PersistentFlags().BoolVar(&dumpReader, "dump-reader", false,
		"print the parsed AST for each form before evaluating it")
	rootCmd.PersistentFlags().BoolVar(&prettyPrint, "pretty-print", false,
		"pretty-print results instead of the compact reader syntax")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
