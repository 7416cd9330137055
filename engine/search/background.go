package search

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brensch/spaceheater/engine"
)

// backgroundBudget bounds how long a single speculative deepening pass is
// allowed to run once it's no longer racing a live turn's deadline.
const backgroundBudget = 2 * time.Second

// BackgroundWorker deepens a search tree between turns on a dedicated
// goroutine, so the next turn's solve can adopt an already-explored
// subtree instead of starting cold. Submit queues work to chew on while
// idle; Foreground interrupts that work and hands back whichever subtree
// (if any) matches the state the live turn actually reached.
type BackgroundWorker struct {
	score   ScoreFunc
	threads float64

	submit chan *MaxNode
	cancel chan *engine.GameState
	result chan *MaxNode

	mu   sync.Mutex
	busy bool
}

// NewBackgroundWorker starts the worker goroutine and returns a handle to
// it. score and threads mirror whatever the live solve path is using, so
// background deepening explores the same tree shape the next turn would.
func NewBackgroundWorker(score ScoreFunc, threads float64) *BackgroundWorker {
	w := &BackgroundWorker{
		score:   score,
		threads: threads,
		submit:  make(chan *MaxNode),
		cancel:  make(chan *engine.GameState),
		result:  make(chan *MaxNode),
	}
	go w.run()
	return w
}

// Submit hands the worker a freshly-solved tree to keep deepening in the
// background. Non-blocking: if the worker is already busy with a previous
// submission, this one is dropped (the worker hasn't caught up yet).
func (w *BackgroundWorker) Submit(node *MaxNode) {
	w.mu.Lock()
	busy := w.busy
	w.mu.Unlock()
	if busy {
		return
	}
	select {
	case w.submit <- node:
	default:
	}
}

// Foreground stops background deepening from starting another depth (the
// depth already in progress runs until it completes or the background
// budget runs out) and returns the subtree rooted at state if the worker
// had reached it, or a fresh unexpanded node otherwise. If the worker does
// not take the request or reply within backgroundBudget, it logs a warning
// and returns a fresh node.
func (w *BackgroundWorker) Foreground(state *engine.GameState) *MaxNode {
	w.mu.Lock()
	busy := w.busy
	w.mu.Unlock()
	if !busy {
		return NewMaxNode(state)
	}

	select {
	case w.cancel <- state:
	case <-time.After(backgroundBudget):
		slog.Warn("background worker did not take the foreground request, starting cold")
		return NewMaxNode(state)
	}

	select {
	case node := <-w.result:
		if node != nil {
			return node
		}
	case <-time.After(backgroundBudget):
		slog.Warn("background worker did not return a subtree, starting cold")
	}
	return NewMaxNode(state)
}

func (w *BackgroundWorker) run() {
	for node := range w.submit {
		w.mu.Lock()
		w.busy = true
		w.mu.Unlock()

		deadline := time.Now().Add(backgroundBudget)
		var stop atomic.Bool
		done := make(chan struct{})

		go func() {
			defer close(done)
			for depth := baseDepth; !stop.Load() && time.Now().Before(deadline); depth++ {
				res, ok := node.parSolve(deadline, depth, w.score, NewAlphaBeta(), w.threads)
				if ok {
					slog.Debug("background deepening completed a depth", "depth", depth, "move", res.dir, "score", res.score)
				}
			}
		}()

		var target *engine.GameState
		select {
		case target = <-w.cancel:
			stop.Store(true)
			<-done
		case <-done:
		}

		var adopted *MaxNode
		if target != nil {
			adopted = adopt(node, target)
		}
		select {
		case w.result <- adopted:
		default:
		}

		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}
}

// adopt finds the child subtree matching the state the live turn actually
// reached: either node itself (nothing changed), or one of the grandchild
// MaxNodes reached through some MinNode's joint move. Matching is by
// fingerprint rather than deep equality, since states carry an interface
// board that isn't comparable with ==.
func adopt(node *MaxNode, target *engine.GameState) *MaxNode {
	want := fingerprint(target)
	if fingerprint(node.State) == want {
		return node
	}
	for _, min := range node.Children {
		for _, max := range min.Children {
			if fingerprint(max.State) == want {
				return max
			}
		}
	}
	return nil
}

// fingerprint is a cheap, deterministic summary of a state's identity for
// subtree-adoption matching: turn count plus every snake's head, health
// and length. Two states with the same fingerprint reached by the same move
// are for all practical purposes the same position.
func fingerprint(state *engine.GameState) string {
	buf := make([]byte, 0, 64)
	buf = appendInt(buf, state.Turn)
	for _, s := range state.AllSnakes() {
		buf = appendInt(buf, int(s.Head.X))
		buf = appendInt(buf, int(s.Head.Y))
		buf = appendInt(buf, int(s.Health))
		buf = appendInt(buf, s.Length())
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return buf
}

// DefaultThreads returns the thread budget a fresh search should fork
// with: one goroutine per available core.
func DefaultThreads() float64 {
	return float64(runtime.GOMAXPROCS(0))
}
