package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leonardinius/gocalc/internal/interpreter"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func runRepl() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	i := interpreter.NewInterpreter()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// A bad expression reports and the prompt continues.
		if value, err := i.Interpret(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Println(resultMessage(line, value))
		}
	}
}
