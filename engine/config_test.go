package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := RandomConfig(rng)

	encoded := cfg.String()
	decoded, err := ConfigFromHex(encoded)

	assert.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

func TestConfigEvolvePerturbsConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := RandomConfig(rng)
	mutated := cfg.Evolve(rng)

	assert.NotEqual(t, cfg, mutated, "evolve with this seed should perturb a field")
}

func TestEvaluateDeadAgentShortCircuits(t *testing.T) {
	you := Snake{ID: 0, Name: "you", Health: 0}
	state := NewGameState(5, 5, you, nil, nil, nil, Rules{})

	rng := rand.New(rand.NewSource(3))
	cfg := RandomConfig(rng)

	score := cfg.Evaluate(state, InfDistance)
	assert.Equal(t, Score(cfg.PointsWhenDead-cfg.PointsPerTurnSurvived-cfg.PointsPerKill), score)
}
