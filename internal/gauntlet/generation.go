package gauntlet

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// breedingChance and survivalChance decay geometrically with rank: rank r
// of count uses exponent (r+1)*100/count, so the top rank's chances depend
// on the population size and the bottom rank always gets 0.98^100 (about
// 0.13) to breed and 0.99^100 (about 0.37) to survive.
func breedingChance(rank, count int) float64 {
	exp := float64((rank+1)*100) / float64(count)
	return math.Pow(0.98, exp)
}

func survivalChance(rank, count int) float64 {
	exp := float64((rank+1)*100) / float64(count)
	return math.Pow(0.99, exp)
}

func maybeKillSnake(rng *rand.Rand, rank, count int) bool {
	return rng.Float64() > survivalChance(rank, count)
}

func maybeBreedSnake(rng *rand.Rand, rank, count int) bool {
	return rng.Float64() < breedingChance(rank, count)
}

// NextGeneration ranks scores best-to-worst, winners first and then by
// turns survived, probabilistically culls the population, then breeds
// survivors (higher-ranked breeding more often) until targetCount genomes
// exist again. Ported from the original's generational loop: kill first,
// breed to backfill, never breed past target.
func NextGeneration(rng *rand.Rand, generation int, scores []Score, targetCount int) []Genome {
	ranked := make([]Score, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Won != ranked[j].Won {
			return ranked[i].Won
		}
		return ranked[i].Turns > ranked[j].Turns
	})

	survivors := make([]Genome, 0, len(ranked))
	for rank, s := range ranked {
		// The top-ranked genome is never culled: elitism guarantees the
		// population never dies out entirely in one unlucky generation.
		if rank > 0 && maybeKillSnake(rng, rank, len(ranked)) {
			continue
		}
		survivors = append(survivors, Genome{Name: s.Name, Config: s.Config})
	}

	spawned := 0
	for len(survivors) < targetCount {
		before := len(survivors)
		for rank, parent := range survivors {
			if len(survivors)+1 > targetCount {
				break
			}
			if !maybeBreedSnake(rng, rank, len(ranked)) {
				continue
			}
			child := Genome{
				Name:   fmt.Sprintf("gen%d_snake%d", generation, spawned),
				Config: parent.Config.Evolve(rng),
			}
			spawned++
			survivors = append(survivors, child)
			if len(survivors) == targetCount {
				break
			}
		}
		if len(survivors) == before {
			// Nobody bred this pass (every coin flip missed); force one
			// breed from the top genome so the population doesn't stall.
			if len(survivors) == 0 {
				break
			}
			survivors = append(survivors, Genome{
				Name:   fmt.Sprintf("gen%d_snake%d", generation, spawned),
				Config: survivors[0].Config.Evolve(rng),
			})
			spawned++
		}
	}

	return survivors
}
