package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitrate-lang/nitratec/internal/ast"
	"github.com/nitrate-lang/nitratec/internal/lexer"
	"github.com/nitrate-lang/nitratec/internal/parser"
)

var (
	parseEval   string
	parseVerify bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Nitrate source and print the resulting AST",
	Long: `Parse Nitrate source code and print its Abstract Syntax Tree.

If no file is given, reads from stdin. Use --verify to additionally
run structural invariant checks over the parsed tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseVerify, "verify", false, "run AST structural invariant checks")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	prog, perrs := parseProgram(input)
	if len(perrs) > 0 {
		for _, pe := range perrs {
			fmt.Fprintf(os.Stderr, "%s: %s: %s at %d:%d\n", name, pe.Code, pe.Message, pe.Pos.Line, pe.Pos.Column)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(perrs))
	}

	if parseVerify {
		for _, v := range ast.Verify(prog.Root) {
			fmt.Fprintf(os.Stderr, "verify: %s\n", v.Msg)
		}
	}

	ast.Print(prog.Root, os.Stdout, false)
	fmt.Println()
	return nil
}

// parseProgram lexes and parses input, returning the accumulated parser
// errors rather than stopping at the first one (spec.md §6's panic-mode
// recovery).
func parseProgram(input string) (*ast.Program, []*parser.ParseError) {
	l := lexer.New(input)
	p := parser.New(l)
	prog := p.ParseProgram()
	return prog, p.Errors()
}
