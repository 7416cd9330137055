package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brensch/spaceheater/engine"
)

func TestToGameStateReordersYouToSlotZero(t *testing.T) {
	req := Request{
		Game: Game{Ruleset: Ruleset{Name: "standard"}},
		Turn: 12,
		Board: Board{
			Width:  11,
			Height: 11,
			Snakes: []Snake{
				{ID: "other", Name: "other", Health: 90, Body: []Point{{5, 5}}},
				{ID: "me", Name: "me", Health: 80, Body: []Point{{1, 1}}},
			},
		},
		You: Snake{ID: "me", Name: "me", Health: 80, Body: []Point{{1, 1}}},
	}

	state := ToGameState(req)

	assert.Equal(t, 12, state.Turn)
	assert.Equal(t, "me", state.You.Name)
	assert.Equal(t, int8(1), state.You.Head.X)
	assert.Len(t, state.Others, 1)
	assert.Equal(t, "other", state.Others[0].Name)
	assert.Equal(t, 1, state.Others[0].ID)
}

func TestGameModeMapsRulesetName(t *testing.T) {
	cases := map[string]engine.GameMode{
		"standard":    engine.Standard,
		"wrapped":     engine.Wrapped,
		"warped":      engine.Wrapped,
		"constrictor": engine.Constrictor,
		"royale":      engine.Royale,
		"snail":       engine.Snail,
		"solo":        engine.Standard,
	}
	for name, want := range cases {
		assert.Equal(t, want, gameMode(Ruleset{Name: name}), name)
	}
}

func TestMoveNameNamesAllDirections(t *testing.T) {
	for _, d := range engine.AllDirections {
		assert.NotEqual(t, "", MoveName(d))
	}
	assert.Equal(t, "up", MoveName(engine.Unset))
}
