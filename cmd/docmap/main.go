package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/docmap/internal/cli"
)

func main() {
	rootCmd, app := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, app.Printer(os.Stderr).Error(err))
		os.Exit(1)
	}
}
