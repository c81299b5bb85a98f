package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource resolves the input source for a subcommand: an inline
// -e/--eval string takes priority, then a file argument, falling back
// to stdin when neither is given. It returns the source text and the
// name to attribute diagnostics to.
func readSource(eval string, args []string) (input, name string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}
