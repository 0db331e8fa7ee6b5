// acrpipe main entrypoint
//
// acrpipe runs an ordered pipeline of Azure Container Registry builds by
// invoking `az acr build` once per step. The canonical pipeline builds the
// steamvibes base image first, then the API image that layers on top of it.
//
// Keep this file simple: load local env overrides, hand off to the CLI.
// All the heavy lifting stays internal.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/netruk44/acrpipe/internal/cli"
)

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		log.Error("acrpipe failed", "err", err)
		os.Exit(1)
	}
}
