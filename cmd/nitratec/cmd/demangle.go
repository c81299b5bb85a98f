package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitrate-lang/nitratec/internal/mangle"
)

var demangleCmd = &cobra.Command{
	Use:   "demangle <name>",
	Short: "Demangle a QUIX-mangled symbol name",
	Long: `Decode a _Q-prefixed QUIX linkage name back into its qualified
name and JSON type description (spec.md §4.4.7).

A name with no _Q prefix is treated as a weak C-ABI name and printed
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runDemangle,
}

func init() {
	rootCmd.AddCommand(demangleCmd)
}

func runDemangle(cmd *cobra.Command, args []string) error {
	out, ok := mangle.Demangle(args[0])
	if !ok {
		return fmt.Errorf("%q is not a well-formed QUIX mangled name", args[0])
	}
	fmt.Println(out)
	return nil
}
