package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoronoiFloodFillSplitsEvenlyBetweenEquidistantSnakes(t *testing.T) {
	you := NewSnake(0, "you", 100, []Point{{0, 0}}, "")
	other := NewSnake(1, "other", 100, []Point{{3, 0}}, "")
	state := NewGameState(4, 1, you, []Snake{other}, nil, nil, Rules{})

	scores := VoronoiFloodFiller{}.Fill(state, InfDistance)

	assert.Equal(t, 2, scores[0].TileCount)
	assert.Equal(t, 2, scores[1].TileCount)
	assert.Equal(t, 1, scores[0].DistanceToCollision[1])
}

func TestVoronoiFloodFillIgnoresStarvation(t *testing.T) {
	// Same shape as the starvation test that stops WinterFloodFiller cold,
	// but low health shouldn't matter to the plain variant.
	you := NewSnake(0, "you", 1, []Point{{2, 0}}, "")
	state := NewGameState(5, 1, you, nil, nil, nil, Rules{})

	scores := VoronoiFloodFiller{}.Fill(state, InfDistance)

	assert.Equal(t, 5, scores[0].TileCount, "no hazard/starvation cutoff should let the fill reach the whole strip")
}
