package main

import (
	"fmt"
	"strings"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/internal/protocol"
)

// GameOutcome classifies how a finished game went for the agent.
type GameOutcome int

const (
	Win GameOutcome = iota
	Draw
	Loss
)

// describeGameOutcome turns the final /end request plus the websocket
// frame collector's alive check into a human-readable recap line. It is
// mode-aware: wall collisions never apply in wrapped games, and hazard
// damage gets called out separately from the flat per-turn health cost.
func describeGameOutcome(req protocol.Request, rules engine.Rules, won bool) (GameOutcome, string) {
	if won {
		return Win, fmt.Sprintf("won on turn %d", req.Turn)
	}

	you := req.You
	w, h := req.Board.Width, req.Board.Height

	if rules.Mode != engine.Wrapped {
		if int(you.Head.X) < 0 || int(you.Head.X) >= w || int(you.Head.Y) < 0 || int(you.Head.Y) >= h {
			return Loss, "crashed into a wall"
		}
	}

	for _, snake := range req.Board.Snakes {
		if snake.ID == you.ID {
			continue
		}
		for _, segment := range snake.Body {
			if you.Head == segment {
				return Loss, fmt.Sprintf("collided with %s", snake.Name)
			}
		}
	}
	if len(you.Body) > 1 {
		for _, segment := range you.Body[1:] {
			if you.Head == segment {
				return Loss, "ran into itself"
			}
		}
	}

	if you.Health <= 0 {
		if rules.HazardDamagePerTurn > 0 {
			return Loss, "starved in hazard"
		}
		return Loss, "starved to death"
	}

	var living []string
	for _, snake := range req.Board.Snakes {
		if snake.ID != you.ID && snake.Health > 0 {
			living = append(living, snake.Name)
		}
	}
	if len(living) == 0 {
		return Draw, "all snakes died"
	}
	return Loss, fmt.Sprintf("outlasted by %s", strings.Join(living, ", "))
}

func colorForOutcome(outcome GameOutcome) int {
	switch outcome {
	case Win:
		return 0x00ff00
	case Draw:
		return 0xffff00
	default:
		return 0xff0000
	}
}
