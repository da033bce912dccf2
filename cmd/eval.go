package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardinius/gocalc/internal/grammar"
	"github.com/leonardinius/gocalc/internal/interpreter"
)

var evalPrintAst bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an arithmetic expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(strings.Join(args, " "))
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalPrintAst, "ast", false, "print the parsed tree before the result")
}

func runEval(input string) error {
	i := interpreter.NewInterpreter()

	expr, err := i.Parse(input)
	if err != nil {
		return err
	}

	if evalPrintAst {
		fmt.Println(grammar.NewAstPrinter().Print(expr))
	}

	fmt.Println(resultMessage(input, i.Evaluate(expr)))
	return nil
}

func resultMessage(input string, value float64) string {
	return fmt.Sprintf("expression %s was evaluated. Result is %s",
		input, strconv.FormatFloat(value, 'f', -1, 64))
}
