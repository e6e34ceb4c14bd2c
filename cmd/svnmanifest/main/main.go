package main

import (
	"os"

	"github.com/arthur-debert/svnmanifest/cmd/svnmanifest"
	"github.com/arthur-debert/svnmanifest/pkg/ui"
)

func main() {
	rootCmd := svnmanifest.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.NewRenderer(os.Stderr, ui.FormatAuto).Error(err)
		os.Exit(1)
	}
}
