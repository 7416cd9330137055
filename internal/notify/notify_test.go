package notify

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityMapsKnownLevels(t *testing.T) {
	cases := map[slog.Level]string{
		slog.LevelInfo:  "INFO",
		slog.LevelWarn:  "WARNING",
		slog.LevelError: "ERROR",
		slog.LevelDebug: "DEBUG",
	}
	for level, want := range cases {
		assert.Equal(t, want, severity(level))
	}
}

func TestDiscordSendWithoutWebhookDoesNotError(t *testing.T) {
	d := Discord{}
	assert.NoError(t, d.Send("test message"))
}
