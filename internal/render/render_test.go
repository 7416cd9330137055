package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/spaceheater/engine"
)

func TestGIFEncodesFramesAsGIF(t *testing.T) {
	frames := []Frame{
		{Width: 5, Height: 5, Snakes: []FrameSnake{{Name: "a", Body: []engine.Point{{X: 1, Y: 1}}}}},
		{Width: 5, Height: 5, Snakes: []FrameSnake{{Name: "a", Body: []engine.Point{{X: 2, Y: 1}}}}},
	}

	data, err := GIF(frames, 2000, true)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, []byte("GIF8"), data[:4])
}

func TestGIFRejectsEmptyFrames(t *testing.T) {
	_, err := GIF(nil, 2000, false)
	assert.Error(t, err)
}
