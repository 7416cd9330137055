// Package gamelog records and replays a game's turn-by-turn requests as a
// gzipped, newline-delimited JSON transcript, so a move decision that
// looked wrong in production can be re-driven through the engine offline.
package gamelog

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brensch/spaceheater/internal/protocol"
)

// Entry is one recorded turn: the request the engine saw and the move it chose.
type Entry struct {
	Request protocol.Request `json:"request"`
	Move    string           `json:"move"`
}

// Writer appends Entries to a single game's gzipped transcript file.
type Writer struct {
	file *os.File
	gz   *gzip.Writer
	enc  *json.Encoder
}

// Create opens dir/<gameID>.jsonl.gz for appending one Entry per turn.
func Create(dir, gameID string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gamelog dir: %w", err)
	}
	path := filepath.Join(dir, gameID+".jsonl.gz")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open gamelog %s: %w", path, err)
	}
	gz := gzip.NewWriter(f)
	return &Writer{file: f, gz: gz, enc: json.NewEncoder(gz)}, nil
}

// Append writes one turn's entry.
func (w *Writer) Append(e Entry) error {
	return w.enc.Encode(e)
}

// Close flushes the gzip stream and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.gz.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close gamelog gzip stream: %w", err)
	}
	return w.file.Close()
}

// Read decodes every Entry from a gzipped transcript at path, in order.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gamelog %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gamelog gzip stream: %w", err)
	}
	defer gz.Close()

	var entries []Entry
	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("decode gamelog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gamelog: %w", err)
	}
	return entries, nil
}
