package gauntlet

import (
	"time"

	"github.com/google/uuid"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/engine/search"
)

// Score is one genome's result from a single match: how many turns it
// survived and whether it was the sole survivor.
type Score struct {
	MatchID string
	Name    string
	Config  engine.Config
	Turns   int
	Won     bool
}

// Pairing is one gauntlet matchup: every genome that starts on the board together.
type Pairing struct {
	Genomes []Genome
}

const matchMoveDeadline = 50 * time.Millisecond

// maxMatchTurns bounds a self-play game that never naturally ends (e.g.
// two maximally cautious genomes circling each other forever).
const maxMatchTurns = 1000

// Play runs one self-play game between every genome in the pairing on a
// fresh w x h board with scattered starting food, until at most one snake
// survives or maxMatchTurns elapses. Each genome decides its own move by
// running a sequential search from its own perspective with its own Config.
func Play(pairing Pairing, w, h int8, food []engine.Point, rules engine.Rules) []Score {
	n := len(pairing.Genomes)
	bodies := startingBodies(n, w, h)

	you := engine.NewSnake(0, pairing.Genomes[0].Name, 100, bodies[0], "")
	others := make([]engine.Snake, n-1)
	for i := 1; i < n; i++ {
		others[i-1] = engine.NewSnake(i, pairing.Genomes[i].Name, 100, bodies[i], "")
	}
	state := engine.NewGameState(w, h, you, others, food, nil, rules)

	matchID := uuid.NewString()
	turns := 0
	survived := make([]int, n)
	for turns < maxMatchTurns {
		alive := 0
		for _, s := range state.AllSnakes() {
			if !s.Dead() {
				alive++
				survived[s.ID] = turns
			}
		}
		if alive <= 1 {
			break
		}

		directions := make([]engine.Direction, n)
		for i := range pairing.Genomes {
			if _, ok := state.SnakeByID(i); !ok {
				continue
			}
			view := perspective(state, i)
			cfg := pairing.Genomes[i].Config
			score := func(st *engine.GameState) engine.Score { return cfg.Evaluate(st, 20) }
			dir, _ := search.Solve(search.NewMaxNode(view), time.Now().Add(matchMoveDeadline), 8, score)
			directions[i] = dir
		}

		engine.ApplyJointMove(state, directions[0], directions[1:])
		turns++
	}

	living := 0
	for _, s := range state.AllSnakes() {
		if !s.Dead() {
			living++
			survived[s.ID] = turns
		}
	}
	scores := make([]Score, n)
	for i, g := range pairing.Genomes {
		_, alive := state.SnakeByID(i)
		scores[i] = Score{MatchID: matchID, Name: g.Name, Config: g.Config, Turns: survived[i], Won: alive && living == 1}
	}
	return scores
}

// perspective returns a read-only view of state from snake idx's point of
// view (idx becomes You with ID 0, everyone else becomes Others in
// original order, renumbered 1..K), sharing the same board. Safe because
// search never mutates the root state it's handed, only clones made from it.
func perspective(state *engine.GameState, idx int) *engine.GameState {
	all := state.AllSnakes()
	you := all[idx]
	you.ID = 0
	others := make([]engine.Snake, 0, len(all)-1)
	for i, s := range all {
		if i != idx {
			s.ID = len(others) + 1
			others = append(others, s)
		}
	}
	return &engine.GameState{
		Board:      state.Board,
		You:        you,
		Others:     others,
		Turn:       state.Turn,
		DeadSnakes: state.DeadSnakes,
		Rules:      state.Rules,
	}
}

// startingBodies spreads n snakes' bodies (three segments stacked on one
// point) around the board's perimeter, matching the teacher's simple round-robin start used
// in its own self-play harness.
func startingBodies(n int, w, h int8) [][]engine.Point {
	bodies := make([][]engine.Point, n)
	positions := []engine.Point{
		{X: 1, Y: 1},
		{X: w - 2, Y: h - 2},
		{X: 1, Y: h - 2},
		{X: w - 2, Y: 1},
	}
	for i := 0; i < n; i++ {
		p := positions[i%len(positions)]
		bodies[i] = []engine.Point{p, p, p}
	}
	return bodies
}
