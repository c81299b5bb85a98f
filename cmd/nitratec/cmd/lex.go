package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitrate-lang/nitratec/internal/lexer"
	"github.com/nitrate-lang/nitratec/internal/token"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Nitrate source file",
	Long: `Tokenize (lex) a Nitrate program and print the resulting tokens.

Examples:
  nitratec lex script.nx
  nitratec lex -e "let x: i32 = 1;"
  nitratec lex --show-pos script.nx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.Next()
		printTok(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "lex error: %s at %d:%d\n", e.Message, e.Pos.Line, e.Pos.Column)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}

func printTok(tok token.Token) {
	if lexShowPos {
		fmt.Printf("[%-14s] %q @%d:%d\n", tok.Kind, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		return
	}
	fmt.Printf("[%-14s] %q\n", tok.Kind, tok.Literal)
}
