package main

import (
	"embed"
	"os"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := newRootCmd(assets).Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
