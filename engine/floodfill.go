package engine

import "container/list"

// InfDistance is the "unreached" sentinel for distances and turn counts.
const InfDistance = 1<<31 - 1

// NoSnake marks a tile as unclaimed in the flood fill's working grid.
const NoSnake = -1

// SnakeScore is one snake's share of a flood-filled board: how much
// territory it reached, how much food and hazard sit inside that
// territory, and how close the frontier came to each other snake.
type SnakeScore struct {
	TileCount           int
	FoodCount           int
	HazardCount         int
	FoodDistance        int   // distance to the nearest reachable food, InfDistance if none
	FoodAtMinDistance   int   // how many food tiles sit at FoodDistance
	DistanceToCollision []int // indexed by snake slot; InfDistance if the frontiers never meet
}

func newSnakeScore(n int) SnakeScore {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = InfDistance
	}
	return SnakeScore{FoodDistance: InfDistance, DistanceToCollision: dist}
}

type tileInfo struct {
	snake              int
	distance           int
	length             int
	inaccessibleTurns  int
	damage             int
}

type fillWork struct {
	p        Point
	snake    int
	distance int
	length   int
	health   int
}

// FloodFiller computes each live snake's share of the board from a
// position. WinterFloodFiller and VoronoiFloodFiller are the two variants
// Config can be built with; which one to use is an Evaluate-time choice,
// not a fixed algorithm.
type FloodFiller interface {
	Fill(state *GameState, maxDistance int) []SnakeScore
}

// WinterFloodFiller is the hazard- and starvation-aware variant: health,
// hazard damage and body-vacate timing all gate whether a frontier can
// reach a tile. This is the default used when a Config doesn't name one.
type WinterFloodFiller struct{}

func (WinterFloodFiller) Fill(state *GameState, maxDistance int) []SnakeScore {
	return FloodFill(state, maxDistance)
}

// FloodFill runs a multi-source BFS from every live snake's head
// simultaneously, growing each snake's projected length as its frontier
// crosses food and cutting a branch off wherever it would starve, run into
// a body segment that hasn't vacated yet, or collide with a frontier that
// got there first. Ties in distance go to whichever snake is projected
// longer at that point; a tie in both distance and length leaves the tile
// unclaimed and records the distance both snakes' frontiers met at.
//
// maxDistance bounds how far any single frontier is allowed to travel,
// which keeps the search from wandering the full board on a position
// where only close-range territory matters.
func FloodFill(state *GameState, maxDistance int) []SnakeScore {
	board := state.Board
	w, h := int(board.Width()), int(board.Height())
	snakes := state.AllSnakes()
	n := len(snakes)

	tiles := make([][]tileInfo, w)
	for x := range tiles {
		tiles[x] = make([]tileInfo, h)
		for y := range tiles[x] {
			tiles[x][y] = tileInfo{snake: NoSnake, distance: InfDistance}
		}
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p := Point{int8(x), int8(y)}
			if hz := int(board.HazardCount(p)); hz > 0 {
				tiles[x][y].damage = state.Rules.HazardDamagePerTurn * hz
			}
		}
	}

	markOccupied := func(s Snake, perpetual bool) {
		for idx, p := range s.Body {
			if p.OutOfBounds(int8(w), int8(h)) {
				continue
			}
			turns := s.Length() - idx - 1
			if perpetual {
				turns = InfDistance
			}
			if turns > tiles[p.X][p.Y].inaccessibleTurns {
				tiles[p.X][p.Y].inaccessibleTurns = turns
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

	queue := list.New()
	for i, s := range snakes {
		if s.Dead() {
			continue
		}
		queue.PushBack(fillWork{p: s.Head, snake: i, distance: 0, length: s.Length(), health: int(s.Health)})
	}

	claim := func(p Point, snake int) {
		scores[snake].TileCount++
		scores[snake].HazardCount += int(board.HazardCount(p))
		if board.Get(p).HasFood() {
			scores[snake].FoodCount++
		}
	}
	unclaim := func(p Point, snake int) {
		scores[snake].TileCount--
		scores[snake].HazardCount -= int(board.HazardCount(p))
		if board.Get(p).HasFood() {
			scores[snake].FoodCount--
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
	unnoteFoodDistance := func(p Point, snake, distance int) {
		if !board.Get(p).HasFood() || scores[snake].FoodDistance != distance {
			return
		}
		scores[snake].FoodAtMinDistance--
		if scores[snake].FoodAtMinDistance == 0 {
			scores[snake].FoodDistance = InfDistance
		}
	}
	recordCollision := func(a, b, distance int) {
		if scores[a].DistanceToCollision[b] > distance {
			scores[a].DistanceToCollision[b] = distance
			scores[b].DistanceToCollision[a] = distance
		}
	}

	for queue.Len() > 0 {
		front := queue.Front()
		work := front.Value.(fillWork)
		queue.Remove(front)

		cell := &tiles[work.p.X][work.p.Y]

		switch {
		case cell.snake != NoSnake && cell.snake != work.snake &&
			cell.distance == work.distance && cell.length == work.length:
			// Dead heat: neither frontier owns this tile.
			owner := cell.snake
			recordCollision(owner, work.snake, work.distance)
			unclaim(work.p, owner)
			unnoteFoodDistance(work.p, owner, work.distance)
			cell.snake = NoSnake

		case cell.distance > work.distance ||
			(cell.distance == work.distance && cell.length < work.length):
			if cell.snake != NoSnake {
				unclaim(work.p, cell.snake)
				unnoteFoodDistance(work.p, cell.snake, work.distance)
			}

			claim(work.p, work.snake)
			noteFoodDistance(work.p, work.snake, work.distance)

			hasFood := board.Get(work.p).HasFood()
			cell.snake = work.snake
			cell.distance = work.distance
			cell.length = work.length

			nextHealth := work.health - cell.damage - 1
			if hasFood {
				nextHealth = 100
			}

			for _, dir := range AllDirections {
				next := work.p.Neighbour(dir)
				if state.Rules.Warped() {
					next = next.Warp(int8(w), int8(h))
				}
				if next.OutOfBounds(int8(w), int8(h)) {
					continue
				}

				nextLength := work.length
				if hasFood {
					nextLength++
				}
				nextDistance := work.distance + 1
				if nextDistance >= maxDistance {
					continue
				}

				nextCell := &tiles[next.X][next.Y]
				damage := nextCell.damage + 1
				if board.Get(next).HasFood() {
					damage = 0
				}
				if damage >= nextHealth || nextCell.inaccessibleTurns >= nextDistance {
					continue
				}

				if nextDistance > nextCell.distance {
					if nextCell.snake != NoSnake {
						recordCollision(work.snake, nextCell.snake, work.distance)
					}
					continue
				}

				queue.PushBack(fillWork{p: next, snake: work.snake, distance: nextDistance, length: nextLength, health: nextHealth})
			}
		}
	}

	return scores
}
