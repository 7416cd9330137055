package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brensch/spaceheater/engine"
)

func TestFoodOverrideLeavesHealthyAgentAlone(t *testing.T) {
	you := engine.NewSnake(0, "you", 90, []engine.Point{{X: 0, Y: 0}}, "")
	state := engine.NewGameState(5, 1, you, nil, []engine.Point{{X: 3, Y: 0}}, nil, engine.Rules{})

	root := NewMaxNode(state)
	approxAlways := func(a, b engine.Score) bool { return true }

	dir := FoodOverride(root, engine.Down, 0, approxAlways)

	assert.Equal(t, engine.Down, dir)
}

func TestFoodOverridePrefersFoodWhenTiedAndHungry(t *testing.T) {
	// Agent is hungry and food sits 2 tiles to the Right; Up ties Right on
	// score, so the override should prefer the food direction.
	you := engine.NewSnake(0, "you", 20, []engine.Point{{X: 2, Y: 2}}, "")
	state := engine.NewGameState(5, 5, you, nil, []engine.Point{{X: 4, Y: 2}}, nil, engine.Rules{})

	root := NewMaxNode(state)
	root.Children = []*MinNode{
		{Move: engine.Up, best: result{score: 100, valid: true}},
		{Move: engine.Right, best: result{score: 100, valid: true}},
	}

	dir := FoodOverride(root, engine.Up, 100, (engine.Config{PointsPerFood: 10}).ScoresApprox)

	assert.Equal(t, engine.Right, dir)
}

func TestFoodOverrideKeepsBestWhenFoodScoresWorse(t *testing.T) {
	you := engine.NewSnake(0, "you", 20, []engine.Point{{X: 2, Y: 2}}, "")
	state := engine.NewGameState(5, 5, you, nil, []engine.Point{{X: 4, Y: 2}}, nil, engine.Rules{})

	root := NewMaxNode(state)
	root.Children = []*MinNode{
		{Move: engine.Up, best: result{score: 200, valid: true}},
		{Move: engine.Right, best: result{score: 10, valid: true}},
	}

	dir := FoodOverride(root, engine.Up, 200, (engine.Config{PointsPerFood: 10}).ScoresApprox)

	assert.Equal(t, engine.Up, dir)
}

func TestFoodOverrideIgnoresUnreachableFood(t *testing.T) {
	you := engine.NewSnake(0, "you", 20, []engine.Point{{X: 0, Y: 0}}, "")
	state := engine.NewGameState(1, 1, you, nil, nil, nil, engine.Rules{})

	root := NewMaxNode(state)
	approxAlways := func(a, b engine.Score) bool { return true }

	dir := FoodOverride(root, engine.Up, 0, approxAlways)

	assert.Equal(t, engine.Up, dir)
}
