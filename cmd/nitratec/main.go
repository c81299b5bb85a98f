package main

import (
	"fmt"
	"os"

	"github.com/nitrate-lang/nitratec/cmd/nitratec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
