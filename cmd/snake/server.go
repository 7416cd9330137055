package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/engine/search"
	"github.com/brensch/spaceheater/internal/gamelog"
	"github.com/brensch/spaceheater/internal/notify"
	"github.com/brensch/spaceheater/internal/protocol"
	"github.com/brensch/spaceheater/internal/render"
)

const defaultPort = "5110"

type server struct {
	cfg        engine.Config
	maxDist    int
	discord    notify.Discord
	tidbyt     notify.Tidbyt
	gamelogDir string

	mu      sync.Mutex
	workers map[string]*search.BackgroundWorker
}

func runServer(args []string) error {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	port := fs.String("port", "", "port to listen on, overrides $PORT")
	gamelogDir := fs.String("gamelog-dir", "./games", "directory to record gzipped game transcripts into")
	if err := fs.Parse(args); err != nil {
		return err
	}
	host := ""
	if fs.NArg() > 0 {
		host = fs.Arg(0)
	}

	handler := notify.NewCloudHandler(os.Stdout, slog.LevelInfo)
	slog.SetDefault(slog.New(handler))

	listenPort := *port
	if listenPort == "" {
		listenPort = os.Getenv("PORT")
	}
	if listenPort == "" {
		listenPort = defaultPort
	}

	ctx := context.Background()
	webhookURL, _ := notify.GetSecret(ctx, os.Getenv("DISCORD_SECRET_NAME"))
	tidbytSecret, _ := notify.GetSecret(ctx, os.Getenv("TIDBYT_SECRET_NAME"))

	cfg := engine.Config{}
	if hex := os.Getenv("SNAKE_CONFIG"); hex != "" {
		parsed, err := engine.ConfigFromHex(hex)
		if err != nil {
			return fmt.Errorf("parse SNAKE_CONFIG: %w", err)
		}
		cfg = parsed
	}

	s := &server{
		cfg:        cfg,
		maxDist:    20,
		discord:    notify.Discord{WebhookURL: webhookURL},
		tidbyt:     notify.Tidbyt{DeviceID: os.Getenv("TIDBYT_DEVICE_ID"), Secret: tidbytSecret},
		gamelogDir: *gamelogDir,
		workers:    make(map[string]*search.BackgroundWorker),
	}

	s.discord.Send("starting up")

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/move", s.handleMove)
	mux.HandleFunc("/end", s.handleEnd)

	slog.Info("starting battlesnake server", "host", host, "port", listenPort)
	return http.ListenAndServe(host+":"+listenPort, mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, protocol.InfoResponse{
		APIVersion: "1",
		Author:     "brensch",
		Color:      "#888888",
		Head:       "default",
		Tail:       "default",
		Version:    "0.2.0",
	})
}

func (s *server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req protocol.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var opponents []string
	for _, snake := range req.Board.Snakes {
		if snake.ID == req.You.ID {
			continue
		}
		opponents = append(opponents, snake.Name)
	}
	s.discord.Send(fmt.Sprintf("game %s started against %s", req.Game.ID, strings.Join(opponents, ", ")))

	writeJSON(w, map[string]string{})
}

func (s *server) backgroundWorker(gameID string) *search.BackgroundWorker {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workers[gameID]
	if !ok {
		scoreFn := func(state *engine.GameState) engine.Score { return s.cfg.Evaluate(state, s.maxDist) }
		w = search.NewBackgroundWorker(scoreFn, search.DefaultThreads())
		s.workers[gameID] = w
	}
	return w
}

func (s *server) handleMove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req protocol.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := protocol.ToGameState(req)
	worker := s.backgroundWorker(req.Game.ID)
	root := worker.Foreground(state)

	deadline := start.Add(time.Duration(req.Game.Timeout-100) * time.Millisecond)
	scoreFn := func(st *engine.GameState) engine.Score { return s.cfg.Evaluate(st, s.maxDist) }
	dir, score := search.ParallelSolve(root, deadline, 25, scoreFn, search.DefaultThreads())
	dir = search.FoodOverride(root, dir, score, s.cfg.ScoresApprox)

	move := protocol.MoveName(dir)
	writeJSON(w, protocol.MoveResponse{Move: move})

	worker.Submit(root)

	if logWriter, err := gamelog.Create(s.gamelogDir, req.Game.ID); err == nil {
		logWriter.Append(gamelog.Entry{Request: req, Move: move})
		logWriter.Close()
	}

	slog.Info("move decided",
		"game_id", req.Game.ID,
		"move", move,
		"score", score,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req protocol.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	delete(s.workers, req.Game.ID)
	s.mu.Unlock()

	slog.Info("game ended", "game_id", req.Game.ID, "turn", req.Turn)

	wsURL := fmt.Sprintf("wss://engine.battlesnake.com/games/%s/events", req.Game.ID)
	frames, won, err := notify.CollectGameFrames(wsURL, req.You.Name)
	if err != nil {
		slog.Error("failed to collect game frames", "error", err)
		s.discord.Send(fmt.Sprintf("game %s finished on turn %d", req.Game.ID, req.Turn))
		return
	}

	gif, err := render.GIF(frames, 13000, won)
	if err != nil {
		slog.Error("failed to render recap gif", "error", err)
		return
	}

	outcome, description := describeGameOutcome(req, protocol.ToGameState(req).Rules, won)
	s.discord.Send(
		fmt.Sprintf("game %s finished on turn %d: %s", req.Game.ID, req.Turn, description),
		notify.Embed{
			Title:       fmt.Sprintf("game %s", req.Game.ID),
			Description: description,
			URL:         fmt.Sprintf("https://play.battlesnake.com/game/%s", req.Game.ID),
			Color:       colorForOutcome(outcome),
		},
	)

	if err := s.tidbyt.Push(gif); err != nil {
		slog.Error("failed to push recap to tidbyt", "error", err)
	}
}
