package search

import (
	"sync"
	"time"

	"github.com/brensch/spaceheater/engine"
)

// ParallelSolve is Solve's concurrent counterpart: a node with more than
// one child and a thread budget above 1 forks one goroutine per child and
// splits the budget evenly across them (a child may get less than one
// thread); otherwise it searches its children sequentially. Every fork shares one
// AlphaBeta window so a cutoff found in one sibling prunes the others.
func ParallelSolve(root *MaxNode, deadline time.Time, maxDepth int, score ScoreFunc, threads float64) (engine.Direction, engine.Score) {
	best := result{dir: engine.Up, valid: false}

	if maxDepth < baseDepth+1 {
		maxDepth = baseDepth + 1
	}

	for depth := baseDepth; depth < maxDepth; depth++ {
		ab := NewAlphaBeta()
		res, ok := root.parSolve(deadline, depth, score, ab, threads)
		if ok {
			best = res
		} else {
			break
		}
		if time.Now().After(deadline) {
			break
		}
	}

	if !best.valid {
		return Fallback(root.State), best.score
	}
	return best.dir, best.score
}

func (n *MaxNode) parSolve(deadline time.Time, depth int, score ScoreFunc, ab *AlphaBeta, threads float64) (result, bool) {
	if time.Now().After(deadline) {
		return result{}, false
	}
	if n.checkBounds(depth, score) {
		return n.best, true
	}

	n.expand()
	if len(n.Children) == 0 {
		n.best = result{dir: engine.Up, score: score(n.State), valid: true}
		return n.best, true
	}

	fork := threads > 1 && len(n.Children) > 1
	childThreads := threads
	if fork {
		childThreads = threads / float64(len(n.Children))
	}

	ab = ab.NewChild()
	var mu sync.Mutex
	best := result{dir: engine.Up, valid: false}
	aborted := false

	run := func(child *MinNode) {
		if ab.ShouldPrune() {
			return
		}
		next, ok := child.parSolve(n.State, deadline, depth, score, ab, childThreads)

		mu.Lock()
		defer mu.Unlock()
		if !ok {
			aborted = true
			return
		}
		if !best.valid || next > best.score {
			best = result{dir: child.Move, score: next, valid: true}
		}
		ab.RaiseAlpha(next)
	}

	if fork {
		var wg sync.WaitGroup
		for _, child := range n.Children {
			child := child
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(child)
			}()
		}
		wg.Wait()
	} else {
		for _, child := range n.Children {
			run(child)
		}
	}

	if aborted || time.Now().After(deadline) {
		return result{}, false
	}

	n.best = best
	return n.best, best.valid
}

func (n *MinNode) parSolve(state *engine.GameState, deadline time.Time, depth int, score ScoreFunc, ab *AlphaBeta, threads float64) (engine.Score, bool) {
	n.expand(state)

	fork := threads > 1 && len(n.Children) > 1
	childThreads := threads
	if fork {
		childThreads = threads / float64(len(n.Children))
	}

	ab = ab.NewChild()
	var mu sync.Mutex
	var best *engine.Score
	aborted := false

	run := func(child *MaxNode) {
		if ab.ShouldPrune() {
			return
		}
		next, ok := child.parSolve(deadline, depth-1, score, ab, childThreads)

		mu.Lock()
		defer mu.Unlock()
		if !ok {
			aborted = true
			return
		}
		best = minBound(best, next.score)
		ab.LowerBeta(next.score)
	}

	if fork {
		var wg sync.WaitGroup
		for _, child := range n.Children {
			child := child
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(child)
			}()
		}
		wg.Wait()
	} else {
		for _, child := range n.Children {
			run(child)
		}
	}

	if aborted || time.Now().After(deadline) {
		return 0, false
	}
	if best == nil {
		return 0, false
	}

	n.best = result{score: *best, valid: true}
	return *best, true
}
