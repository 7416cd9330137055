package engine

import "container/list"

// VoronoiFloodFiller is the plain territory-split variant: legal-move
// reachability and a length tie-break, same as WinterFloodFiller, but with
// no hazard damage and no starvation cutoff. Cheaper to run and a
// reasonable evaluator choice on boards without hazards, where the extra
// health bookkeeping buys nothing.
type VoronoiFloodFiller struct{}

type voronoiCell struct {
	snake    int
	distance int
	length   int
}

type voronoiWork struct {
	p        Point
	snake    int
	distance int
	length   int
}

func (VoronoiFloodFiller) Fill(state *GameState, maxDistance int) []SnakeScore {
	board := state.Board
	w, h := int(board.Width()), int(board.Height())
	snakes := state.AllSnakes()
	n := len(snakes)

	cells := make([][]voronoiCell, w)
	for x := range cells {
		cells[x] = make([]voronoiCell, h)
		for y := range cells[x] {
			cells[x][y] = voronoiCell{snake: NoSnake, distance: InfDistance}
		}
	}

	occupiedUntil := make([][]int, w)
	for x := range occupiedUntil {
		occupiedUntil[x] = make([]int, h)
	}
	markOccupied := func(s Snake, perpetual bool) {
		for idx, p := range s.Body {
			turns := s.Length() - idx - 1
			if perpetual {
				turns = InfDistance
			}
			if turns > occupiedUntil[p.X][p.Y] {
				occupiedUntil[p.X][p.Y] = turns
			}
		}
	}
	markOccupied(state.You, state.Rules.Constrictor())
	for _, o := range state.Others {
		markOccupied(o, state.Rules.Constrictor())
	}

	scores := make([]SnakeScore, n)
	for i := range scores {
		scores[i] = newSnakeScore(n)
		scores[i].DistanceToCollision[i] = 0
	}

	claim := func(p Point, snake int) {
		scores[snake].TileCount++
		scores[snake].HazardCount += int(board.HazardCount(p))
		if board.Get(p).HasFood() {
			scores[snake].FoodCount++
		}
	}
	noteFoodDistance := func(p Point, snake, distance int) {
		if !board.Get(p).HasFood() {
			return
		}
		switch {
		case distance < scores[snake].FoodDistance:
			scores[snake].FoodDistance = distance
			scores[snake].FoodAtMinDistance = 1
		case distance == scores[snake].FoodDistance:
			scores[snake].FoodAtMinDistance++
		}
	}
	recordCollision := func(a, b, distance int) {
		if scores[a].DistanceToCollision[b] > distance {
			scores[a].DistanceToCollision[b] = distance
			scores[b].DistanceToCollision[a] = distance
		}
	}

	queue := list.New()
	for i, s := range snakes {
		if s.Dead() {
			continue
		}
		queue.PushBack(voronoiWork{p: s.Head, snake: i, distance: 0, length: s.Length()})
	}

	for queue.Len() > 0 {
		front := queue.Front()
		work := front.Value.(voronoiWork)
		queue.Remove(front)

		cell := &cells[work.p.X][work.p.Y]
		if cell.snake == NoSnake {
			cell.snake, cell.distance, cell.length = work.snake, work.distance, work.length
			claim(work.p, work.snake)
			noteFoodDistance(work.p, work.snake, work.distance)
		} else if cell.snake != work.snake && cell.distance == work.distance && cell.length < work.length {
			prev := &scores[cell.snake]
			prev.TileCount--
			prev.HazardCount -= int(board.HazardCount(work.p))
			if board.Get(work.p).HasFood() {
				prev.FoodCount--
			}
			cell.snake, cell.length = work.snake, work.length
			claim(work.p, work.snake)
			noteFoodDistance(work.p, work.snake, work.distance)
		} else {
			continue
		}

		hasFood := board.Get(work.p).HasFood()
		for _, dir := range AllDirections {
			next := work.p.Neighbour(dir)
			if state.Rules.Warped() {
				next = next.Warp(int8(w), int8(h))
			}
			if next.OutOfBounds(int8(w), int8(h)) {
				continue
			}
			nextDistance := work.distance + 1
			if nextDistance >= maxDistance || occupiedUntil[next.X][next.Y] >= nextDistance {
				continue
			}
			nextLength := work.length
			if hasFood {
				nextLength++
			}

			nextCell := cells[next.X][next.Y]
			if nextCell.snake != NoSnake && nextCell.distance < nextDistance {
				if nextCell.snake != work.snake {
					recordCollision(work.snake, nextCell.snake, work.distance)
				}
				continue
			}
			if nextCell.snake != NoSnake && nextCell.snake != work.snake && nextCell.distance == nextDistance {
				recordCollision(work.snake, nextCell.snake, nextDistance)
			}

			queue.PushBack(voronoiWork{p: next, snake: work.snake, distance: nextDistance, length: nextLength})
		}
	}

	return scores
}
