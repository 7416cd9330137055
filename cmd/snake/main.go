// Command snake is spaceheater's entry point: an HTTP server speaking the
// Battlesnake API, plus offline replay, gauntlet and genetic-tuning
// subcommands built on the same engine package.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: snake <server|replay|gauntlet|winter-generation> [args]")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "server":
		err = runServer(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	case "gauntlet":
		err = runGauntlet(os.Args[2:])
	case "winter-generation":
		err = runWinterGeneration(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
