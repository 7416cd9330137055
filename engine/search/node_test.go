package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brensch/spaceheater/engine"
)

func constScore(s engine.Score) ScoreFunc {
	return func(*engine.GameState) engine.Score { return s }
}

func TestSolveAvoidsWalledInDirections(t *testing.T) {
	// 3x3 board, agent in the corner: Down and Left both walk off the
	// board, so only Up and Right should ever be considered.
	you := engine.NewSnake(0, "you", 100, []engine.Point{{0, 0}}, "")
	state := engine.NewGameState(3, 3, you, nil, nil, nil, engine.Rules{})

	root := NewMaxNode(state)
	root.expand()

	for _, child := range root.Children {
		assert.NotEqual(t, engine.Down, child.Move)
		assert.NotEqual(t, engine.Left, child.Move)
	}
}

func TestSolveReturnsWithinDeadline(t *testing.T) {
	you := engine.NewSnake(0, "you", 100, []engine.Point{{5, 5}}, "")
	other := engine.NewSnake(1, "other", 100, []engine.Point{{1, 1}}, "")
	state := engine.NewGameState(11, 11, you, []engine.Snake{other}, []engine.Point{{7, 7}}, nil, engine.Rules{})

	cfg := engine.Config{PointsPerTile: 1, PointsPerHealth: 1}
	score := func(s *engine.GameState) engine.Score { return cfg.Evaluate(s, 20) }

	deadline := time.Now().Add(200 * time.Millisecond)
	dir, _ := Solve(NewMaxNode(state), deadline, 6, score)

	assert.NotEqual(t, engine.Unset, dir)
}

func TestParallelMatchesSequentialOnTrivialBoard(t *testing.T) {
	you := engine.NewSnake(0, "you", 100, []engine.Point{{2, 2}}, "")
	state := engine.NewGameState(5, 5, you, nil, []engine.Point{{0, 0}}, nil, engine.Rules{})

	cfg := engine.Config{PointsPerTile: 1, PointsPerDistanceToFood: -1, FoodDistanceCap: 10}
	score := func(s *engine.GameState) engine.Score { return cfg.Evaluate(s, 20) }

	deadline := time.Now().Add(time.Second)
	seqDir, seqScore := Solve(NewMaxNode(state), deadline, 4, score)
	parDir, parScore := ParallelSolve(NewMaxNode(state), deadline, 4, score, 1)

	assert.Equal(t, seqDir, parDir)
	assert.Equal(t, seqScore, parScore)
}

func TestFallbackSkipsCertainDeathDirections(t *testing.T) {
	you := engine.NewSnake(0, "you", 100, []engine.Point{{0, 0}}, "")
	state := engine.NewGameState(3, 3, you, nil, nil, nil, engine.Rules{})

	dir := Fallback(state)

	assert.NotEqual(t, engine.Down, dir)
	assert.NotEqual(t, engine.Left, dir)
}

func TestSolveFallsBackWhenDeadlineAlreadyPassed(t *testing.T) {
	you := engine.NewSnake(0, "you", 100, []engine.Point{{0, 0}}, "")
	state := engine.NewGameState(3, 3, you, nil, nil, nil, engine.Rules{})

	dir, _ := Solve(NewMaxNode(state), time.Now().Add(-time.Second), 4, constScore(0))

	assert.NotEqual(t, engine.Down, dir)
	assert.NotEqual(t, engine.Left, dir)
}
