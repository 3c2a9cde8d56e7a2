package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/combogen/cmd/combogen"
	"github.com/arthur-debert/combogen/pkg/ui/styles"
)

func main() {
	rootCmd := combogen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
