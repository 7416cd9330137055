package search

import (
	"sync/atomic"

	"github.com/brensch/spaceheater/engine"
)

// noAlpha and noBeta mark an AlphaBeta bound as not yet set; engine.Score
// is an int64 so these sit far outside any real evaluation.
const (
	noAlpha = int64(-1) << 62
	noBeta  = int64(1) << 62
)

// AlphaBeta is a window shared across a parallel fork: every goroutine
// searching a sibling subtree races to tighten the same alpha and beta via
// atomic fetch-and-max/min, and prune decisions walk up the parent chain
// so a cutoff discovered in one branch is visible to all its siblings
// immediately, not just after they rejoin.
type AlphaBeta struct {
	parent     *AlphaBeta
	alpha      atomic.Int64
	beta       atomic.Int64
}

// NewAlphaBeta creates a root window with no established bounds.
func NewAlphaBeta() *AlphaBeta {
	ab := &AlphaBeta{}
	ab.alpha.Store(noAlpha)
	ab.beta.Store(noBeta)
	return ab
}

// NewChild creates a window for a subtree fork, seeded from the current
// parent bounds so the child starts exactly as tight as the parent is.
func (ab *AlphaBeta) NewChild() *AlphaBeta {
	child := &AlphaBeta{parent: ab}
	child.alpha.Store(ab.alpha.Load())
	child.beta.Store(ab.beta.Load())
	return child
}

// RaiseAlpha atomically raises alpha to a if a is bigger than the current
// value, via a compare-and-swap fetch-max loop (atomic.Int64 has no
// built-in fetch-max).
func (ab *AlphaBeta) RaiseAlpha(a engine.Score) {
	casMax(&ab.alpha, int64(a))
}

// LowerBeta atomically lowers beta to b if b is smaller than the current
// value.
func (ab *AlphaBeta) LowerBeta(b engine.Score) {
	casMin(&ab.beta, int64(b))
}

// ShouldPrune reports whether the tightest alpha anywhere up the parent
// chain is strictly greater than some set beta on the chain, meaning this subtree's
// remaining siblings can't change the outcome.
func (ab *AlphaBeta) ShouldPrune() bool {
	maxAlpha := int64(noAlpha)
	for node := ab; node != nil; node = node.parent {
		if a := node.alpha.Load(); a > maxAlpha {
			maxAlpha = a
		}
	}
	for node := ab; node != nil; node = node.parent {
		if b := node.beta.Load(); b != noBeta && maxAlpha > b {
			return true
		}
	}
	return false
}

func casMax(a *atomic.Int64, v int64) {
	for {
		cur := a.Load()
		if v <= cur {
			return
		}
		if a.CompareAndSwap(cur, v) {
			return
		}
	}
}

func casMin(a *atomic.Int64, v int64) {
	for {
		cur := a.Load()
		if cur != noBeta && v >= cur {
			return
		}
		if a.CompareAndSwap(cur, v) {
			return
		}
	}
}
