// Package main is the entry point for the catalog CLI.
package main

import (
	"os"

	"github.com/catalogkit/layered-catalog-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
