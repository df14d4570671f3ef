package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/docmap/internal/cli"
	"github.com/arthur-debert/docmap/internal/version"
)

func main() {
	rootCmd, _ := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOCMAP",
		Section: "1",
		Source:  "docmap " + version.Version,
		Manual:  "docmap manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
