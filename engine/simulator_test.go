package engine

import "testing"

func TestApplyJointMoveAdvancesHeadAndCostsOneHealth(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, "")
	state := NewGameState(11, 11, you, nil, nil, nil, Rules{})

	ApplyJointMove(state, Up, nil)

	if state.You.Head != (Point{X: 5, Y: 6}) {
		t.Fatalf("expected head at (5,6), got %v", state.You.Head)
	}
	if state.You.Health != 99 {
		t.Fatalf("expected health 99, got %d", state.You.Health)
	}
	if state.Turn != 1 {
		t.Fatalf("expected turn 1, got %d", state.Turn)
	}
}

func TestApplyJointMoveEatingFoodGrowsAndRefillsHealth(t *testing.T) {
	you := NewSnake(0, "you", 50, []Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, "")
	state := NewGameState(11, 11, you, nil, []Point{{X: 5, Y: 6}}, nil, Rules{})
	startLen := state.You.Length()

	ApplyJointMove(state, Up, nil)

	if state.You.Health != 100 {
		t.Fatalf("expected full health after eating, got %d", state.You.Health)
	}
	if state.You.Length() != startLen+1 {
		t.Fatalf("expected length to grow by 1, got %d", state.You.Length())
	}
	if state.Board.Get(Point{X: 5, Y: 6}).HasFood() {
		t.Fatal("expected food to be consumed")
	}
}

func TestApplyJointMoveStarvationKillsAgent(t *testing.T) {
	you := NewSnake(0, "you", 1, []Point{{X: 5, Y: 5}}, "")
	state := NewGameState(11, 11, you, nil, nil, nil, Rules{})

	ApplyJointMove(state, Up, nil)

	if !state.You.Dead() {
		t.Fatal("expected agent to starve to death")
	}
	if state.DeadSnakes != 1 {
		t.Fatalf("expected 1 dead snake recorded, got %d", state.DeadSnakes)
	}
}

func TestApplyJointMoveOutOfBoundsKillsUnwrappedAgent(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 0, Y: 0}}, "")
	state := NewGameState(5, 5, you, nil, nil, nil, Rules{})

	ApplyJointMove(state, Down, nil)

	if !state.You.Dead() {
		t.Fatal("expected agent to die stepping off the board")
	}
}

func TestApplyJointMoveWrappedModeSurvivesOffBoardStep(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 0, Y: 0}}, "")
	state := NewGameState(5, 5, you, nil, nil, nil, Rules{Mode: Wrapped})

	ApplyJointMove(state, Down, nil)

	if state.You.Dead() {
		t.Fatal("expected wrapped agent to survive stepping off the board")
	}
	if state.You.Head != (Point{X: 0, Y: 4}) {
		t.Fatalf("expected head to wrap to (0,4), got %v", state.You.Head)
	}
}

func TestApplyJointMoveHeadToHeadShorterSnakeDies(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 4, Y: 5}, {X: 3, Y: 5}}, "")
	other := NewSnake(1, "other", 100, []Point{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}}, "")
	state := NewGameState(11, 11, you, []Snake{other}, nil, nil, Rules{})

	ApplyJointMove(state, Right, []Direction{Left})

	if !state.You.Dead() {
		t.Fatal("expected shorter snake to die in a head-to-head collision")
	}
	if _, ok := state.SnakeByID(1); !ok {
		t.Fatal("expected longer snake to survive the head-to-head collision")
	}
}

func TestApplyJointMoveHeadToHeadEqualLengthBothDie(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 4, Y: 5}}, "")
	other := NewSnake(1, "other", 100, []Point{{X: 6, Y: 5}}, "")
	state := NewGameState(11, 11, you, []Snake{other}, nil, nil, Rules{})

	ApplyJointMove(state, Right, []Direction{Left})

	if !state.You.Dead() {
		t.Fatal("expected agent to die in an equal-length head-to-head collision")
	}
	if _, ok := state.SnakeByID(1); ok {
		t.Fatal("expected other snake to also die in an equal-length head-to-head collision")
	}
}

func TestApplyJointMoveSnailModeLeavesHazardTrail(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}, "")
	state := NewGameState(11, 11, you, nil, nil, nil, Rules{Mode: Snail})

	ApplyJointMove(state, Up, nil)

	tile := state.Board.Get(Point{X: 5, Y: 3})
	if !tile.IsHazard() {
		t.Fatalf("expected vacated tail tile to become hazard in snail mode, got %v", tile)
	}
}

func TestApplyJointMoveHazardDamageAppliesBeforeStarvation(t *testing.T) {
	you := NewSnake(0, "you", 10, []Point{{X: 5, Y: 5}}, "")
	state := NewGameState(11, 11, you, nil, nil, []Point{{X: 5, Y: 6}}, Rules{HazardDamagePerTurn: 5})

	ApplyJointMove(state, Up, nil)

	if state.You.Health != 4 {
		t.Fatalf("expected health 10 - 5 (hazard) - 1 (turn) = 4, got %d", state.You.Health)
	}
}
