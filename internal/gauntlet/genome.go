// Package gauntlet runs populations of engine.Config genomes against each
// other and evolves them generation over generation, the self-play tuning
// loop the original winter evaluator was produced by.
package gauntlet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brensch/spaceheater/engine"
)

// Genome is one named, evolvable config entered into a gauntlet.
type Genome struct {
	Name   string
	Config engine.Config
}

// SaveFitness persists a genome's config to dir/<name>, hex-encoded, so a
// tuned population survives a process restart. The file is named after the
// genome, not its config, and holds only the config: no fitness score is
// written.
func SaveFitness(dir string, g Genome) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create gauntlet cfg dir: %w", err)
	}
	path := filepath.Join(dir, g.Name)
	if err := os.WriteFile(path, []byte(g.Config.String()), 0o644); err != nil {
		return fmt.Errorf("write genome %s: %w", path, err)
	}
	return nil
}

// LoadFitness reads every genome previously saved with SaveFitness.
func LoadFitness(dir string) ([]Genome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read gauntlet cfg dir: %w", err)
	}

	genomes := make([]Genome, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read genome %s: %w", e.Name(), err)
		}
		cfg, err := engine.ConfigFromHex(string(raw))
		if err != nil {
			return nil, fmt.Errorf("decode genome %s: %w", e.Name(), err)
		}
		genomes = append(genomes, Genome{Name: e.Name(), Config: cfg})
	}
	return genomes, nil
}
