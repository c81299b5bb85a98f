package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "nitratec",
	Short: "Nitrate compiler frontend",
	Long: `nitratec is the frontend of the Nitrate (QUIX) systems-language
toolchain: lexer, parser, and AST-to-IR lowering.

It parses a program into an AST (internal/ast), lowers that AST to the
flat, hash-consed intermediate representation (internal/ir) that a
separate backend consumes, and mangles exported names per the QUIX
scheme (internal/mangle).

This frontend does not optimize, type-check beyond what lowering itself
catches, or emit machine code; it guarantees the IR it produces
satisfies the data model's structural invariants and hands it off to a
configurable backend.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a nitratec.yaml configuration file")
}
