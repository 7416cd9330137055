package search

import (
	"time"

	"github.com/brensch/spaceheater/engine"
)

// baseDepth is the shallowest ply iterative deepening starts from; it
// roughly matches a four-opponent fan-out cheaply enough to always finish
// in time, leaving deeper passes to extend it only as the deadline allows.
const baseDepth = 3

// Solve runs sequential iterative-deepening alpha-beta search on root,
// returning the best move found by the deepest depth that finished before
// deadline. If not even the shallowest depth completes, it falls back to
// the first direction that isn't certain death.
func Solve(root *MaxNode, deadline time.Time, maxDepth int, score ScoreFunc) (engine.Direction, engine.Score) {
	best := result{dir: engine.Up, score: 0, valid: false}

	if maxDepth < baseDepth+1 {
		maxDepth = baseDepth + 1
	}

	for depth := baseDepth; depth < maxDepth; depth++ {
		res, ok := root.solve(deadline, depth, score, nil, nil)
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

// solve is the sequential max step: expand children once (cached across
// iterative-deepening passes), recurse into each as a min step, and track
// the best (direction, score) pair under an ordinary alpha-beta window.
// alpha/beta are nil until a bound has actually been established, mirroring
// the original's Option<S> (no bound yet, rather than a sentinel value).
func (n *MaxNode) solve(deadline time.Time, depth int, score ScoreFunc, alpha, beta *engine.Score) (result, bool) {
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

	best := result{dir: engine.Up, valid: false}
	for _, child := range n.Children {
		next, ok := child.solve(n.State, deadline, depth, score, alpha, beta)
		if !ok {
			return result{}, false
		}
		if !best.valid || next > best.score {
			best = result{dir: child.Move, score: next, valid: true}
		}
		alpha = maxBound(alpha, next)
		if beta != nil && alpha != nil && *alpha > *beta {
			break
		}
	}

	n.best = best
	return n.best, true
}

func (n *MinNode) solve(state *engine.GameState, deadline time.Time, depth int, score ScoreFunc, alpha, beta *engine.Score) (engine.Score, bool) {
	n.expand(state)

	var best *engine.Score
	for _, child := range n.Children {
		res, ok := child.solve(deadline, depth-1, score, alpha, beta)
		if !ok {
			return 0, false
		}
		best = minBound(best, res.score)
		beta = minBound(beta, res.score)
		if alpha != nil && beta != nil && *alpha > *beta {
			break
		}
	}

	n.best = result{score: *best, valid: true}
	return *best, true
}

func maxBound(a *engine.Score, v engine.Score) *engine.Score {
	if a == nil || v > *a {
		return &v
	}
	return a
}

func minBound(a *engine.Score, v engine.Score) *engine.Score {
	if a == nil || v < *a {
		return &v
	}
	return a
}
