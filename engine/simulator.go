package engine

// ApplyJointMove advances state by one turn given a direction for the agent
// and one for each opponent (matched by index to state.Others). It mutates
// state in place; nothing is returned because nothing can fail here short
// of an invariant violation in the caller's move slices.
func ApplyJointMove(state *GameState, you Direction, others []Direction) {
	board := state.Board

	applyMove(state, &state.You, you)
	for i := range state.Others {
		if i < len(others) {
			applyMove(state, &state.Others[i], others[i])
		}
	}

	eliminateDead(state)

	// Collision resolution: body collisions first, then head-to-head,
	// mirroring spec.md's two ordered passes over the post-move board.
	deadNow := make(map[int]bool)
	all := state.AllSnakes()
	for _, s := range all {
		if s.Dead() {
			continue
		}
		if board.Get(s.Head).IsSnake() {
			deadNow[s.ID] = true
		}
	}
	for i := 0; i < len(all); i++ {
		if all[i].Dead() {
			continue
		}
		for j := i + 1; j < len(all); j++ {
			if all[j].Dead() {
				continue
			}
			if all[i].Head != all[j].Head {
				continue
			}
			li, lj := all[i].Length(), all[j].Length()
			if li < lj {
				deadNow[all[i].ID] = true
			} else if lj < li {
				deadNow[all[j].ID] = true
			} else {
				deadNow[all[i].ID] = true
				deadNow[all[j].ID] = true
			}
		}
	}

	for id := range deadNow {
		killSnake(state, id)
	}
	eliminateDead(state)

	state.Turn++
}

// applyMove is one snake's step of the joint move: compute the new head,
// apply hazard + starvation damage, shift the body, resolve food/growth,
// and apply out-of-bounds death. It never touches other snakes.
func applyMove(state *GameState, s *Snake, dir Direction) {
	if s.Dead() {
		return
	}
	board := state.Board

	newHead := state.warp(s.Head.Neighbour(dir))

	if board.Get(newHead).IsHazard() {
		s.Health -= int16(state.Rules.HazardDamagePerTurn) * int16(board.HazardCount(newHead))
	}
	s.Health--

	if s.Length() > 1 {
		AddTile(board, s.Head, SnakeTile)
	} else {
		ClearSnake(board, s.Head)
	}

	// The new head tile is deliberately left untouched here (not tagged
	// Head) so the collision pass below reads what was already on that
	// cell — another snake's shifted body, say — rather than a tag we
	// just wrote over it.
	s.Head = newHead
	s.Body = append([]Point{newHead}, s.Body...)

	if len(s.Body) > s.Length() {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		// only clear the vacated cell if nothing else in the body still
		// occupies it (a snake can have duplicate tail segments right
		// after eating).
		stillOccupied := false
		for _, p := range s.Body {
			if p == tail {
				stillOccupied = true
				break
			}
		}
		if !stillOccupied {
			ClearSnake(board, tail)
			if state.Rules.Snail() {
				n := s.Length()
				if n > MaxHazards {
					n = MaxHazards
				}
				AddTile(board, tail, Hazard)
				board.SetHazardCount(tail, uint8(n))
			}
		}
	}

	if board.Get(newHead).HasFood() || state.Rules.Constrictor() {
		ClearFood(board, newHead)
		s.Health = 100
		s.Len++
		s.Body = append(s.Body, s.Body[len(s.Body)-1])
	}

	if newHead.OutOfBounds(board.Width(), board.Height()) && !state.Rules.Warped() {
		s.Health = 0
	}
}

func eliminateDead(state *GameState) {
	if state.You.Dead() && len(state.You.Body) > 0 {
		removeFromBoard(state.Board, state.You)
		state.You.Body = nil
		state.DeadSnakes++
	}
	kept := state.Others[:0]
	for _, o := range state.Others {
		if o.Dead() {
			if len(o.Body) > 0 {
				removeFromBoard(state.Board, o)
				o.Body = nil
				state.DeadSnakes++
			}
			continue
		}
		kept = append(kept, o)
	}
	state.Others = kept
}

func removeFromBoard(board BoardLike, s Snake) {
	for _, p := range s.Body {
		if !p.OutOfBounds(board.Width(), board.Height()) {
			ClearSnake(board, p)
		}
	}
}

func killSnake(state *GameState, id int) {
	if id == 0 {
		state.You.Health = 0
		return
	}
	for i := range state.Others {
		if state.Others[i].ID == id {
			state.Others[i].Health = 0
			return
		}
	}
}
