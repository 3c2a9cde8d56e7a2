package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/combogen/cmd/combogen"
	"github.com/arthur-debert/combogen/internal/version"
)

func main() {
	rootCmd := combogen.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "COMBOGEN",
		Section: "1",
		Source:  "combogen " + version.Version,
		Manual:  "combogen manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
