package gauntlet

import (
	"fmt"
	"sync"

	"github.com/brensch/spaceheater/engine"
	"github.com/brensch/spaceheater/engine/search"
)

// RunTournament round-robins every pair of genomes against each other
// (head-to-head, one match per pair) across a fixed worker pool, using
// search.WorkQueue to fan pairings out without scheduling the same one
// twice. Returns every genome's scores across all its matches.
func RunTournament(genomes []Genome, workers int, w, h int8, food []engine.Point, rules engine.Rules) []Score {
	pairings := make(map[string]Pairing)
	queue := search.NewWorkQueue[string](len(genomes) * len(genomes))
	for i := 0; i < len(genomes); i++ {
		for j := i + 1; j < len(genomes); j++ {
			key := fmt.Sprintf("%s-vs-%s", genomes[i].Name, genomes[j].Name)
			pairings[key] = Pairing{Genomes: []Genome{genomes[i], genomes[j]}}
			queue.Push(key)
		}
	}

	var mu sync.Mutex
	var scores []Score

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				key, ok := queue.Pop()
				if !ok {
					return
				}
				result := Play(pairings[key], w, h, food, rules)
				mu.Lock()
				scores = append(scores, result...)
				mu.Unlock()
				queue.Done(nil)
			}
		}()
	}
	wg.Wait()

	return scores
}
