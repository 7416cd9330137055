package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloodFillSplitsEvenlyBetweenEquidistantSnakes(t *testing.T) {
	// A 4x1 strip with one snake at each end. Two tiles apiece, and the
	// frontiers should meet and record a collision one step out from
	// each head.
	you := NewSnake(0, "you", 100, []Point{{0, 0}}, "")
	other := NewSnake(1, "other", 100, []Point{{3, 0}}, "")
	state := NewGameState(4, 1, you, []Snake{other}, nil, nil, Rules{})

	scores := FloodFill(state, InfDistance)

	assert.Equal(t, 2, scores[0].TileCount, "head snake should own its half of the strip")
	assert.Equal(t, 2, scores[1].TileCount, "tail snake should own its half of the strip")
	assert.Equal(t, 1, scores[0].DistanceToCollision[1])
	assert.Equal(t, 1, scores[1].DistanceToCollision[0])
}

func TestFloodFillFindsNearestFood(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{0, 0}}, "")
	state := NewGameState(5, 1, you, nil, []Point{{2, 0}}, nil, Rules{})

	scores := FloodFill(state, InfDistance)

	assert.Equal(t, 5, scores[0].TileCount)
	assert.Equal(t, 1, scores[0].FoodCount)
	assert.Equal(t, 2, scores[0].FoodDistance)
	assert.Equal(t, 1, scores[0].FoodAtMinDistance)
}

func TestFloodFillStopsAtStarvation(t *testing.T) {
	// Health 1 means the snake can reach distance 0 only; every neighbour
	// costs one more turn of starvation damage than health allows.
	you := NewSnake(0, "you", 1, []Point{{2, 0}}, "")
	state := NewGameState(5, 1, you, nil, nil, nil, Rules{})

	scores := FloodFill(state, InfDistance)

	assert.Equal(t, 1, scores[0].TileCount, "snake should only claim its own starting tile before starving")
}

func TestFloodFillLongerSnakeWinsDistanceTies(t *testing.T) {
	// Symmetric 3x1 board, but the left snake is longer, so it should
	// win the middle tile despite both reaching it at distance 1.
	you := NewSnake(0, "you", 100, []Point{{0, 0}, {-1, 0}, {-1, 0}}, "")
	other := NewSnake(1, "other", 100, []Point{{2, 0}}, "")
	state := NewGameState(3, 1, you, []Snake{other}, nil, nil, Rules{})

	scores := FloodFill(state, InfDistance)

	assert.Equal(t, 2, scores[0].TileCount, "longer snake should take the contested middle tile")
	assert.Equal(t, 1, scores[1].TileCount)
}

// TestFloodfillSymmetry checks that the frontier-collision distance between
// any two snakes is reported the same from both sides, over a pile of
// randomized boards. BFS frontiers that expand one rank at a time must meet
// at the same turn count no matter which snake you ask.
func TestFloodfillSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		w := int8(5 + rng.Intn(7))
		h := int8(5 + rng.Intn(7))

		occupied := map[Point]bool{}
		randomPoint := func() Point {
			for {
				p := Point{X: int8(rng.Intn(int(w))), Y: int8(rng.Intn(int(h)))}
				if !occupied[p] {
					occupied[p] = true
					return p
				}
			}
		}

		you := NewSnake(0, "you", 100, []Point{randomPoint()}, "")
		others := make([]Snake, 2+rng.Intn(2))
		for i := range others {
			others[i] = NewSnake(i+1, "other", 100, []Point{randomPoint()}, "")
		}

		var food []Point
		for i := 0; i < rng.Intn(4); i++ {
			food = append(food, randomPoint())
		}

		state := NewGameState(w, h, you, others, food, nil, Rules{})
		scores := FloodFill(state, InfDistance)

		n := len(scores)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if scores[a].DistanceToCollision[b] != scores[b].DistanceToCollision[a] {
					t.Fatalf("trial %d: distance(%d,%d)=%d but distance(%d,%d)=%d",
						trial, a, b, scores[a].DistanceToCollision[b], b, a, scores[b].DistanceToCollision[a])
				}
			}
		}
	}
}
