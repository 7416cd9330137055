package engine

// GameState is the full board position the search operates on. Board is
// shared copy-on-write: Clone wraps it in a fresh BoardOverlay rather than
// copying W*H tiles, so the cost of descending one more ply is proportional
// to the cells that ply actually touches.
type GameState struct {
	Board      BoardLike
	You        Snake
	Others     []Snake
	Turn       int
	DeadSnakes int
	Rules      Rules
}

// NewGameState builds a board from scratch out of snake bodies, food and
// hazard points, the way a freshly-parsed request would.
func NewGameState(w, h int8, you Snake, others []Snake, food, hazards []Point, rules Rules) *GameState {
	board := NewBoard(w, h)
	for _, p := range hazards {
		AddTile(board, p, Hazard)
		board.SetHazardCount(p, board.HazardCount(p)+1)
	}
	placeSnake := func(s Snake) {
		for _, p := range s.Body {
			AddTile(board, p, SnakeTile)
		}
		AddTile(board, s.Head, Head)
	}
	placeSnake(you)
	for _, s := range others {
		placeSnake(s)
	}
	for _, p := range food {
		AddTile(board, p, Food)
	}
	return &GameState{
		Board:  board,
		You:    you,
		Others: others,
		Rules:  rules,
	}
}

// Clone returns a state that shares the parent board via a fresh overlay
// and deep-copies the mutable snake data, so mutating the clone's snakes or
// board never touches the parent's.
func (s *GameState) Clone() *GameState {
	others := make([]Snake, len(s.Others))
	for i, o := range s.Others {
		others[i] = o.Clone()
	}
	return &GameState{
		Board:      NewBoardOverlay(s.Board),
		You:        s.You.Clone(),
		Others:     others,
		Turn:       s.Turn,
		DeadSnakes: s.DeadSnakes,
		Rules:      s.Rules,
	}
}

// AllSnakes returns you followed by the opponents, the fixed application
// order the simulator and search both rely on.
func (s *GameState) AllSnakes() []Snake {
	all := make([]Snake, 0, len(s.Others)+1)
	all = append(all, s.You)
	all = append(all, s.Others...)
	return all
}

// SnakeByID returns the live snake with the given id, or false if it's
// dead or absent.
func (s *GameState) SnakeByID(id int) (Snake, bool) {
	if id == 0 {
		return s.You, !s.You.Dead()
	}
	for _, o := range s.Others {
		if o.ID == id {
			return o, !o.Dead()
		}
	}
	return Snake{}, false
}

func (s *GameState) warp(p Point) Point {
	if s.Rules.Warped() {
		return p.Warp(s.Board.Width(), s.Board.Height())
	}
	return p
}
