package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/internal/render"
)

type frameSnake struct {
	Name   string `json:"Name"`
	Body   []point `json:"Body"`
	Color  string  `json:"Color"`
	Death  *struct{} `json:"Death"`
}

type point struct {
	X int8 `json:"X"`
	Y int8 `json:"Y"`
}

type frameEvent struct {
	Type string `json:"Type"`
	Data struct {
		Turn   int          `json:"Turn"`
		Snakes []frameSnake `json:"Snakes"`
		Food   []point      `json:"Food"`
		Width  int8         `json:"Width"`
		Height int8         `json:"Height"`
	} `json:"Data"`
}

// CollectGameFrames connects to the Battlesnake engine's live game
// websocket and records every frame up to game_end, returning them as
// render.Frames plus whether snakeName was alive on the final frame.
func CollectGameFrames(wsURL, snakeName string) ([]render.Frame, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("dial game websocket: %w", err)
	}
	defer conn.Close()

	var frames []render.Frame
	var last frameEvent
	var width, height int8

	for {
		_, message, err := conn.ReadMessage()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read game websocket: %w", err)
		}

		var event frameEvent
		if err := json.Unmarshal(message, &event); err != nil {
			slog.Error("failed to unmarshal game frame", "error", err)
			continue
		}

		if event.Type == "game_end" {
			width, height = event.Data.Width, event.Data.Height
			break
		}
		last = event

		f := render.Frame{Width: event.Data.Width, Height: event.Data.Height}
		for _, s := range event.Data.Snakes {
			body := make([]engine.Point, len(s.Body))
			for i, p := range s.Body {
				body[i] = engine.Point{X: p.X, Y: p.Y}
			}
			f.Snakes = append(f.Snakes, render.FrameSnake{Name: s.Name, Body: body, Color: s.Color})
		}
		for _, p := range event.Data.Food {
			f.Food = append(f.Food, engine.Point{X: p.X, Y: p.Y})
		}
		frames = append(frames, f)
	}

	won := false
	for _, s := range last.Data.Snakes {
		if s.Name == snakeName && s.Death == nil {
			won = true
			break
		}
	}

	for i := range frames {
		frames[i].Width = width
		frames[i].Height = height
	}

	return frames, won, nil
}
