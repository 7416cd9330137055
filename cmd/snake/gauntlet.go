package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/internal/gauntlet"
)

// loadOrSeedPopulation loads a saved population, or returns an empty one
// (not an error) when cfgDir simply doesn't exist yet.
func loadOrSeedPopulation(cfgDir string) ([]gauntlet.Genome, error) {
	genomes, err := gauntlet.LoadFitness(cfgDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return genomes, nil
}

const defaultCfgDir = "./cfg"

func boardAndFood(w, h int8) []engine.Point {
	return []engine.Point{
		{X: w / 2, Y: h / 2},
	}
}

// runGauntlet loads the saved population (seeding a fresh random one if
// none exists yet), round-robins every pairing and writes each genome's
// config back to disk keyed by its name.
func runGauntlet(args []string) error {
	fs := flag.NewFlagSet("gauntlet", flag.ExitOnError)
	cfgDir := fs.String("cfg-dir", defaultCfgDir, "directory holding saved genome configs")
	population := fs.Int("population", 8, "population size to seed if cfg-dir is empty")
	workers := fs.Int("workers", 4, "concurrent matches to run")
	width := fs.Int("width", 11, "board width")
	height := fs.Int("height", 11, "board height")
	if err := fs.Parse(args); err != nil {
		return err
	}

	genomes, err := loadOrSeedPopulation(*cfgDir)
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if len(genomes) == 0 {
		for i := 0; i < *population; i++ {
			genomes = append(genomes, gauntlet.Genome{
				Name:   fmt.Sprintf("gen0_snake%d", i),
				Config: engine.RandomConfig(rng),
			})
		}
	}

	w, h := int8(*width), int8(*height)
	rules := engine.Rules{Mode: engine.Standard}
	scores := gauntlet.RunTournament(genomes, *workers, w, h, boardAndFood(w, h), rules)

	for _, g := range genomes {
		if err := gauntlet.SaveFitness(*cfgDir, g); err != nil {
			return fmt.Errorf("save genome %s: %w", g.Name, err)
		}
	}

	wins := make(map[string]int)
	turns := make(map[string]int)
	for _, s := range scores {
		if s.Won {
			wins[s.Name]++
		}
		turns[s.Name] += s.Turns
	}
	for _, g := range genomes {
		fmt.Printf("%s: wins=%d turns=%d\n", g.Name, wins[g.Name], turns[g.Name])
	}

	return nil
}

// runWinterGeneration plays one full generation step: tournament the
// current population, rank and breed via gauntlet.NextGeneration, and
// persist the resulting population in place of the old one.
func runWinterGeneration(args []string) error {
	fs := flag.NewFlagSet("winter-generation", flag.ExitOnError)
	cfgDir := fs.String("cfg-dir", defaultCfgDir, "directory holding saved genome configs")
	workers := fs.Int("workers", 4, "concurrent matches to run")
	generation := fs.Int("generation", 1, "generation number, used to name offspring")
	width := fs.Int("width", 11, "board width")
	height := fs.Int("height", 11, "board height")
	if err := fs.Parse(args); err != nil {
		return err
	}

	genomes, err := loadOrSeedPopulation(*cfgDir)
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}
	if len(genomes) == 0 {
		return fmt.Errorf("winter-generation: no population found in %s, run gauntlet first", *cfgDir)
	}

	w, h := int8(*width), int8(*height)
	rules := engine.Rules{Mode: engine.Standard}
	scores := gauntlet.RunTournament(genomes, *workers, w, h, boardAndFood(w, h), rules)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	next := gauntlet.NextGeneration(rng, *generation, scores, len(genomes))

	keep := make(map[string]bool, len(next))
	for _, g := range next {
		keep[g.Name] = true
		if err := gauntlet.SaveFitness(*cfgDir, g); err != nil {
			return fmt.Errorf("save genome %s: %w", g.Name, err)
		}
	}
	for _, g := range genomes {
		if keep[g.Name] {
			continue
		}
		if err := os.Remove(filepath.Join(*cfgDir, g.Name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove culled genome %s: %w", g.Name, err)
		}
	}

	fmt.Printf("generation %d: %d genomes survived/bred into the next population\n", *generation, len(next))
	return nil
}
