package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/svnmanifest/cmd/svnmanifest"
	"github.com/arthur-debert/svnmanifest/internal/version"
)

func main() {
	rootCmd := svnmanifest.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SVNMANIFEST",
		Section: "1",
		Source:  "svnmanifest " + version.Version,
		Manual:  "svnmanifest manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
