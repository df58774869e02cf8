package main

import (
	"fmt"
	"os"

	"github.com/openstfoundation/abibin/internal/cli"
	"github.com/openstfoundation/abibin/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
