package engine

import "container/list"

// foodQueueEntry is one BFS frontier item: a tile and the first step taken
// to reach it from the start, so the caller never needs to reconstruct a
// path, only read off dir once the target is dequeued.
type foodQueueEntry struct {
	p         Point
	firstStep Direction
	distance  int
}

// NearestFood does a breadth-first search from head over tiles
// Tile.IsSafe reports survivable, stopping at the first food tile found.
// It returns the direction of the first step of that path and the path's
// length; ok is false if no food is reachable at all.
func NearestFood(state *GameState, head Point) (dir Direction, distance int, ok bool) {
	w, h := state.Board.Width(), state.Board.Height()
	visited := make(map[Point]bool)
	visited[head] = true

	queue := list.New()
	for _, d := range AllDirections {
		p := head.Neighbour(d)
		if state.Rules.Warped() {
			p = p.Warp(w, h)
		} else if p.OutOfBounds(w, h) {
			continue
		}
		if !state.Board.Get(p).IsSafe() {
			continue
		}
		if visited[p] {
			continue
		}
		visited[p] = true
		queue.PushBack(foodQueueEntry{p: p, firstStep: d, distance: 1})
	}

	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(foodQueueEntry)
		if state.Board.Get(front.p).HasFood() {
			return front.firstStep, front.distance, true
		}
		for _, d := range AllDirections {
			p := front.p.Neighbour(d)
			if state.Rules.Warped() {
				p = p.Warp(w, h)
			} else if p.OutOfBounds(w, h) {
				continue
			}
			if visited[p] || !state.Board.Get(p).IsSafe() {
				continue
			}
			visited[p] = true
			queue.PushBack(foodQueueEntry{p: p, firstStep: front.firstStep, distance: front.distance + 1})
		}
	}

	return Up, 0, false
}
