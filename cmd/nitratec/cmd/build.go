package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitrate-lang/nitratec/internal/diag"
	"github.com/nitrate-lang/nitratec/internal/ir"
	"github.com/nitrate-lang/nitratec/internal/mangle"
	"github.com/nitrate-lang/nitratec/internal/pipeline"
)

var (
	buildDumpIR bool
	buildQuiet  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Lower a Nitrate source file to IR",
	Long: `Lex, parse, and lower a Nitrate source file to the IR module a
backend consumes (spec.md §4, §OVERVIEW).

This is the frontend's terminal stage: it reports every parse and
lowering diagnostic accumulated along the way and, on success, prints
one line per top-level declaration with its mangled linkage name.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&buildDumpIR, "dump-ir", false, "print each top-level IR declaration's Go type and name")
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "suppress the declaration summary on success")
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sink := diag.NewSink(filename, input)
	res := pipeline.Compile(filename, input, cfg)
	for _, d := range res.Diagnostics {
		sink.Report(d.Severity, d.Span, d.Code, "%s", d.Message)
	}
	diag.RenderAll(os.Stderr, sink, cfg.RenderMode(), cfg.ContextLines)
	if !res.OK {
		return fmt.Errorf("compilation failed")
	}
	mod := res.Module

	if buildQuiet {
		return nil
	}
	for _, n := range mod.Globals {
		name, typ := declName(mod, n)
		if name == "" {
			continue
		}
		linkage := mangle.Mangle(name, typ)
		if ext, ok := n.(*ir.Extern); ok && ext.ABI == ir.ABIC {
			linkage = mangle.MangleC(name)
		}
		if buildDumpIR {
			fmt.Printf("%-8s %-30s %s\n", fmt.Sprintf("%T", n), name, linkage)
		} else {
			fmt.Println(linkage)
		}
	}
	return nil
}

func declName(mod *ir.Module, n ir.Node) (name string, typ ir.Node) {
	switch d := n.(type) {
	case *ir.Local:
		return d.Name, d.Type
	case *ir.Global:
		return d.Name, d.Type
	case *ir.Fn:
		params := make([]ir.Node, len(d.Params))
		for i, p := range d.Params {
			params[i] = p.Type
		}
		return d.Name, mod.NewFunctionType(d.Span(), params, false, d.Return)
	case *ir.Extern:
		return declName(mod, d.Decl)
	default:
		return "", nil
	}
}
