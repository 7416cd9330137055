package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/spaceheater/internal/protocol"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	dir := t.TempDir()

	w, err := Create(dir, "game-1")
	require.NoError(t, err)

	require.NoError(t, w.Append(Entry{Request: protocol.Request{Turn: 0}, Move: "up"}))
	require.NoError(t, w.Append(Entry{Request: protocol.Request{Turn: 1}, Move: "right"}))
	require.NoError(t, w.Close())

	entries, err := Read(dir + "/game-1.jsonl.gz")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "up", entries[0].Move)
	assert.Equal(t, "right", entries[1].Move)
	assert.Equal(t, 1, entries[1].Request.Turn)
}
