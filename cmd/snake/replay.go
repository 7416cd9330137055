package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/engine/search"
	"github.com/brensch/spaceheater/internal/gamelog"
	"github.com/brensch/spaceheater/internal/protocol"
)

// runReplay re-drives a recorded transcript through the current engine,
// printing the move the engine would choose next to each recorded move so
// a divergence is easy to spot turn by turn.
func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	path := fs.String("path", "", "path to a .jsonl.gz transcript")
	maxDist := fs.Int("max-distance", 20, "flood-fill horizon")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("replay: -path is required")
	}

	entries, err := gamelog.Read(*path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	cfg := engine.Config{}
	scoreFn := func(state *engine.GameState) engine.Score { return cfg.Evaluate(state, *maxDist) }

	for i, e := range entries {
		state := protocol.ToGameState(e.Request)
		deadline := time.Now().Add(200 * time.Millisecond)
		dir, score := search.Solve(search.NewMaxNode(state), deadline, 10, scoreFn)

		replayed := protocol.MoveName(dir)
		marker := "match"
		if replayed != e.Move {
			marker = "DIVERGES"
		}
		fmt.Printf("turn %d: recorded=%s replayed=%s score=%d [%s]\n", i, e.Move, replayed, score, marker)
	}

	return nil
}
