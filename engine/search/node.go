// Package search implements the iterative-deepening alpha-beta minimax
// tree the agent uses to pick a move: a MaxNode (the agent's turn) each of
// whose children is a MinNode (every opponent's joint response), bottomed
// out by Config.Evaluate.
package search

import (
	"fmt"
	"sort"

	"github.com/brensch/spaceheater/engine"
)

// ScoreFunc evaluates a leaf position. It's injected rather than hardwired
// to engine.Config.Evaluate so tests can swap in a cheap deterministic
// stand-in.
type ScoreFunc func(*engine.GameState) engine.Score

// result pairs a direction with the score it leads to; used by MaxNode to
// remember its best move so far and to re-sort children between
// iterative-deepening passes (better-looking moves get searched first,
// which tightens the alpha-beta window sooner).
type result struct {
	dir   engine.Direction
	score engine.Score
	valid bool
}

// MaxNode is the agent's decision point: one child per direction that
// doesn't walk straight into certain death.
type MaxNode struct {
	State    *engine.GameState
	best     result
	Children []*MinNode
}

// NewMaxNode wraps a state as a fresh, unexpanded max node.
func NewMaxNode(state *engine.GameState) *MaxNode {
	return &MaxNode{State: state}
}

// Best returns the move and score the most recently completed search pass
// settled on, and whether any pass has completed at all.
func (n *MaxNode) Best() (engine.Direction, engine.Score, bool) {
	return n.best.dir, n.best.score, n.best.valid
}

// ChildScore returns the score the branch following dir settled on, and
// whether that branch exists and was searched at least one depth.
func (n *MaxNode) ChildScore(dir engine.Direction) (engine.Score, bool) {
	for _, c := range n.Children {
		if c.Move == dir {
			return c.best.score, c.best.valid
		}
	}
	return 0, false
}

// MinNode is one of the agent's candidate moves, branching over every
// sensible combination of opponent moves.
type MinNode struct {
	Move     engine.Direction
	best     result
	Children []*MaxNode
}

func (n *MaxNode) expand() {
	if len(n.Children) > 0 {
		sort.Slice(n.Children, func(i, j int) bool { return n.Children[i].cmpKey() > n.Children[j].cmpKey() })
		return
	}
	for _, dir := range engine.AllDirections {
		if certainDeath(n.State, n.State.You, dir) {
			continue
		}
		n.Children = append(n.Children, &MinNode{Move: dir})
	}
}

func (n *MinNode) cmpKey() int64 {
	if !n.best.valid {
		// Unsearched children sort last: MaxNode.expand orders its MinNode
		// children descending, and an unknown child is worst-for-the-maximizer
		// until proven otherwise.
		return -1 << 62
	}
	return int64(n.best.score)
}

func (n *MaxNode) cmpKey() int64 {
	if !n.best.valid {
		// Unsearched children sort last under MinNode.expand's ascending
		// order: an unknown child is worst-for-the-minimizer.
		return 1 << 62
	}
	return int64(n.best.score)
}

func (n *MinNode) expand(state *engine.GameState) {
	if len(n.Children) > 0 {
		sort.Slice(n.Children, func(i, j int) bool { return n.Children[i].cmpKey() < n.Children[j].cmpKey() })
		return
	}
	for _, combo := range sensibleEnemyMoves(state) {
		next := state.Clone()
		engine.ApplyJointMove(next, n.Move, combo)
		n.Children = append(n.Children, NewMaxNode(next))
	}
}

// checkBounds reports whether n is a leaf at this depth: the agent is
// dead, or max_depth has been exhausted. When it is, n.best is populated
// with the static evaluation and the direction Up (the agent's own move
// no longer matters past this point).
func (n *MaxNode) checkBounds(depth int, score ScoreFunc) bool {
	if n.State.You.Dead() {
		if !n.best.valid {
			n.best = result{dir: engine.Up, score: score(n.State), valid: true}
		}
		return true
	}
	if depth == 0 {
		n.best = result{dir: engine.Up, score: score(n.State), valid: true}
		return true
	}
	return false
}

// Fallback returns the first non-certain-death direction for You in
// enumeration order, or Up if every direction is certain death. Used when
// the deadline is so tight that not even the shallowest search depth
// completes and there's no result to fall back on otherwise.
func Fallback(state *engine.GameState) engine.Direction {
	for _, dir := range engine.AllDirections {
		if !certainDeath(state, state.You, dir) {
			return dir
		}
	}
	return engine.Up
}

// certainDeath is the cheap move filter used to prune a child before
// paying for a full joint-move simulation: a direction is certain death if
// it steps onto a wall, lethal stacked hazard damage, or an odd-indexed
// segment of the snake's own body (the one exception being recent body
// positions a real collision pass would also exclude, and the tail, which
// will have vacated by the time the snake arrives).
func certainDeath(state *engine.GameState, snake engine.Snake, dir engine.Direction) bool {
	p := snake.Head.Neighbour(dir)
	if state.Rules.Warped() {
		p = p.Warp(state.Board.Width(), state.Board.Height())
	} else if p.OutOfBounds(state.Board.Width(), state.Board.Height()) {
		return true
	}

	tile := state.Board.Get(p)
	if tile.IsHazard() && !tile.HasFood() {
		if state.Rules.HazardDamagePerTurn*int(state.Board.HazardCount(p)) > int(snake.Health) {
			return true
		}
	}
	if tile == engine.SnakeTile {
		for i := 1; i+1 < snake.Length() && i < len(snake.Body); i += 2 {
			if snake.Body[i] == p {
				return true
			}
		}
	}
	return false
}

// sensibleEnemyMoves returns the cartesian product of every opponent's
// non-certain-death directions, falling back to [Up] for an opponent with
// no safe move (it's about to die regardless; Up just needs to be a legal
// placeholder direction for ApplyJointMove).
func sensibleEnemyMoves(state *engine.GameState) [][]engine.Direction {
	if len(state.Others) == 0 {
		return [][]engine.Direction{nil}
	}

	combos := [][]engine.Direction{{}}
	for _, enemy := range state.Others {
		var moves []engine.Direction
		for _, dir := range engine.AllDirections {
			if !certainDeath(state, enemy, dir) {
				moves = append(moves, dir)
			}
		}
		if len(moves) == 0 {
			moves = []engine.Direction{engine.Up}
		}

		next := make([][]engine.Direction, 0, len(combos)*len(moves))
		for _, combo := range combos {
			for _, m := range moves {
				c := make([]engine.Direction, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, m))
			}
		}
		combos = next
	}
	return combos
}

// FormatTree renders the node and its children for debugging, the same
// shape a developer would print to see why the search favoured one move.
func (n *MaxNode) FormatTree(depth int) string {
	s := fmt.Sprintf("%s MAX depth %d (%d children)", repeat("#", depth*2+1), depth, len(n.Children))
	if n.best.valid {
		s += fmt.Sprintf(" best=%s score=%d", n.best.dir, n.best.score)
	}
	for _, c := range n.Children {
		s += "\n" + c.formatTree(depth)
	}
	return s
}

func (n *MinNode) formatTree(depth int) string {
	s := fmt.Sprintf("%s MIN move=%s", repeat("#", depth*2+2), n.Move)
	if n.best.valid {
		s += fmt.Sprintf(" score=%d", n.best.score)
	}
	for _, c := range n.Children {
		s += "\n" + c.FormatTree(depth+1)
	}
	return s
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}
