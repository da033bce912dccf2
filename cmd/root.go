// Package cmd provides the CLI commands for the gocalc tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocalc [expression]",
	Short: "Arithmetic expression calculator built on parser combinators",
	Long: `gocalc parses and evaluates arithmetic expressions with '+', '*',
parentheses and floating-point literals.

Usage:
  gocalc "3+4*2"         Evaluate an expression (shorthand for eval)
  gocalc eval "3+4*2"    Evaluate explicitly
  gocalc repl            Start an interactive prompt
  gocalc version         Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No argument: drop into the interactive prompt.
		if len(args) == 0 {
			return runRepl()
		}

		return runEval(strings.Join(args, " "))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}
