package notify

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const tidbytPushURL = "https://api.tidbyt.com/v0/devices/%s/push"

type tidbytPushRequest struct {
	Image      string `json:"image"`
	Background bool   `json:"background"`
}

// Tidbyt pushes a rendered recap GIF to a physical Tidbyt display.
type Tidbyt struct {
	DeviceID string
	Secret   string
}

func (t Tidbyt) Push(gif []byte) error {
	body, err := json.Marshal(tidbytPushRequest{Image: base64.StdEncoding.EncodeToString(gif)})
	if err != nil {
		return fmt.Errorf("marshal tidbyt push request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf(tidbytPushURL, t.DeviceID), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build tidbyt request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.Secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("push to tidbyt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tidbyt returned status %s", resp.Status)
	}
	slog.Info("pushed recap to tidbyt")
	return nil
}
