package engine

import "testing"

func TestNearestFoodFindsShortestPath(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 0, Y: 0}}, "")
	state := NewGameState(5, 1, you, nil, []Point{{X: 3, Y: 0}}, nil, Rules{})

	dir, distance, ok := NearestFood(state, you.Head)

	if !ok {
		t.Fatal("expected food to be reachable")
	}
	if dir != Right {
		t.Fatalf("expected Right, got %v", dir)
	}
	if distance != 3 {
		t.Fatalf("expected distance 3, got %d", distance)
	}
}

func TestNearestFoodReportsUnreachable(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{X: 0, Y: 0}}, "")
	state := NewGameState(1, 1, you, nil, nil, nil, Rules{})

	_, _, ok := NearestFood(state, you.Head)

	if ok {
		t.Fatal("expected no food to be reachable on a foodless board")
	}
}

func TestScoresApproxTreatsSmallGapsAsTied(t *testing.T) {
	cfg := Config{PointsPerFood: 100}

	if !cfg.ScoresApprox(1000, 1040) {
		t.Fatal("expected scores within half a food's worth of points to be approx-equal")
	}
	if cfg.ScoresApprox(1000, 1200) {
		t.Fatal("expected scores two foods apart to not be approx-equal")
	}
}
