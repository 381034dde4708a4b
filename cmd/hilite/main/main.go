package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hilite/cmd/hilite"
	"github.com/arthur-debert/hilite/pkg/ui/styles"
)

func main() {
	rootCmd := hilite.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Get("error").Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
