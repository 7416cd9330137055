package gauntlet

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/spaceheater/engine"
)

func TestSaveAndLoadFitnessRoundTrips(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(1))
	g := Genome{Name: "snake-a", Config: engine.RandomConfig(rng)}

	require.NoError(t, SaveFitness(dir, g))

	loaded, err := LoadFitness(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "snake-a", loaded[0].Name)
	assert.Equal(t, g.Config, loaded[0].Config)
}

func TestPlayDeclaresAtMostOneWinner(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pairing := Pairing{Genomes: []Genome{
		{Name: "a", Config: engine.RandomConfig(rng)},
		{Name: "b", Config: engine.RandomConfig(rng)},
	}}

	scores := Play(pairing, 7, 7, []engine.Point{{X: 3, Y: 3}}, engine.Rules{})

	require.Len(t, scores, 2)
	wins := 0
	for _, s := range scores {
		if s.Won {
			wins++
		}
	}
	assert.LessOrEqual(t, wins, 1)
}

func TestNextGenerationKeepsPopulationAtTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scores := make([]Score, 6)
	for i := range scores {
		scores[i] = Score{Name: fmt.Sprintf("snake%d", i), Config: engine.RandomConfig(rng), Turns: i * 10, Won: i == 5}
	}

	next := NextGeneration(rng, 1, scores, 6)

	assert.LessOrEqual(t, len(next), 6)
	assert.NotEmpty(t, next)
}
