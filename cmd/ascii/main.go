// Command ascii arranges TOML scene files on a character grid.
//
// Usage:
//
//	ascii arrange [--dump] scene.toml...   Print node geometry
//	ascii paint [--titles] scene.toml...   Draw scenes as text
//	ascii png -o out.png scene.toml        Render a scene to PNG
//	ascii version                          Print version information
//
// Set ASCII_DEBUG to a file path to trace every engine visit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/No8Dev/No8.Ascii-sub002/internal/cli"
)

// Set via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
