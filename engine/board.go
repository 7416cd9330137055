package engine

// BoardLike is implemented by both the dense Board and BoardOverlay so the
// simulator and flood-fill never need to know which one they were handed.
type BoardLike interface {
	Get(p Point) Tile
	Set(p Point, t Tile)
	HazardCount(p Point) uint8
	SetHazardCount(p Point, n uint8)
	Width() int8
	Height() int8
	Layers() int
	Flatten() *Board
}

// ClearSnake, ClearFood and Add are convenience helpers layered on top of
// Get/Set; they're free functions rather than interface methods so neither
// implementation has to repeat them.
func ClearSnake(b BoardLike, p Point) {
	b.Set(p, b.Get(p).ClearSnake())
}

func ClearFood(b BoardLike, p Point) {
	b.Set(p, b.Get(p).ClearFood())
}

func AddTile(b BoardLike, p Point, t Tile) {
	b.Set(p, b.Get(p).Add(t))
}

// Board is the dense tile grid: one Tile and one hazard count per cell,
// row-major by x then y.
type Board struct {
	width, height int8
	tiles         []Tile
	hazards       []uint8
}

// NewBoard allocates an empty w x h board.
func NewBoard(w, h int8) *Board {
	return &Board{
		width:   w,
		height:  h,
		tiles:   make([]Tile, int(w)*int(h)),
		hazards: make([]uint8, int(w)*int(h)),
	}
}

func (b *Board) idx(p Point) (int, bool) {
	if p.OutOfBounds(b.width, b.height) {
		return 0, false
	}
	return int(p.X)*int(b.height) + int(p.Y), true
}

func (b *Board) Get(p Point) Tile {
	i, ok := b.idx(p)
	if !ok {
		return Wall
	}
	return b.tiles[i]
}

func (b *Board) Set(p Point, t Tile) {
	i, ok := b.idx(p)
	if !ok {
		return
	}
	b.tiles[i] = t
}

func (b *Board) HazardCount(p Point) uint8 {
	i, ok := b.idx(p)
	if !ok {
		return 0
	}
	return b.hazards[i]
}

func (b *Board) SetHazardCount(p Point, n uint8) {
	i, ok := b.idx(p)
	if !ok {
		return
	}
	if n > MaxHazards {
		n = MaxHazards
	}
	b.hazards[i] = n
}

func (b *Board) Width() int8  { return b.width }
func (b *Board) Height() int8 { return b.height }
func (b *Board) Layers() int  { return 1 }

func (b *Board) Flatten() *Board {
	cp := &Board{
		width:   b.width,
		height:  b.height,
		tiles:   make([]Tile, len(b.tiles)),
		hazards: make([]uint8, len(b.hazards)),
	}
	copy(cp.tiles, b.tiles)
	copy(cp.hazards, b.hazards)
	return cp
}

// BoardOverlay is a sparse write layer over a parent BoardLike. Reads that
// miss the overlay fall through to the parent; this makes per-ply cloning
// proportional to the number of cells actually touched rather than to W*H.
// Overlay chains longer than Width()/2 are collapsed by NewBoardOverlay so
// read cost stays bounded.
type BoardOverlay struct {
	width, height int8
	tiles         []*Tile
	hazards       []*uint8
	below         BoardLike
	layers        int
}

// NewBoardOverlay wraps below in a fresh write layer, flattening first if
// the existing overlay chain has grown past Width()/2 layers deep.
func NewBoardOverlay(below BoardLike) *BoardOverlay {
	if below.Layers() > int(below.Width())/2 {
		below = below.Flatten()
	}
	w, h := below.Width(), below.Height()
	return &BoardOverlay{
		width:   w,
		height:  h,
		tiles:   make([]*Tile, int(w)*int(h)),
		hazards: make([]*uint8, int(w)*int(h)),
		below:   below,
		layers:  below.Layers() + 1,
	}
}

func (o *BoardOverlay) idx(p Point) (int, bool) {
	if p.OutOfBounds(o.width, o.height) {
		return 0, false
	}
	return int(p.X)*int(o.height) + int(p.Y), true
}

func (o *BoardOverlay) Get(p Point) Tile {
	i, ok := o.idx(p)
	if !ok {
		return Wall
	}
	if t := o.tiles[i]; t != nil {
		return *t
	}
	return o.below.Get(p)
}

func (o *BoardOverlay) Set(p Point, t Tile) {
	i, ok := o.idx(p)
	if !ok {
		return
	}
	o.tiles[i] = &t
}

func (o *BoardOverlay) HazardCount(p Point) uint8 {
	i, ok := o.idx(p)
	if !ok {
		return 0
	}
	if n := o.hazards[i]; n != nil {
		return *n
	}
	return o.below.HazardCount(p)
}

func (o *BoardOverlay) SetHazardCount(p Point, n uint8) {
	i, ok := o.idx(p)
	if !ok {
		return
	}
	if n > MaxHazards {
		n = MaxHazards
	}
	o.hazards[i] = &n
}

func (o *BoardOverlay) Width() int8  { return o.width }
func (o *BoardOverlay) Height() int8 { return o.height }
func (o *BoardOverlay) Layers() int  { return o.layers }

func (o *BoardOverlay) Flatten() *Board {
	res := NewBoard(o.width, o.height)
	for x := int8(0); x < o.width; x++ {
		for y := int8(0); y < o.height; y++ {
			p := Point{x, y}
			res.Set(p, o.Get(p))
			res.SetHazardCount(p, o.HazardCount(p))
		}
	}
	return res
}

// String renders the board top row (highest y) first, so the origin ends
// up at bottom-left, matching how battlesnake boards are usually drawn.
func String(b BoardLike) string {
	out := make([]byte, 0, int(b.Width()+1)*int(b.Height()))
	for y := b.Height() - 1; y >= 0; y-- {
		for x := int8(0); x < b.Width(); x++ {
			out = append(out, b.Get(Point{x, y}).String()[0])
		}
		out = append(out, '\n')
	}
	return string(out)
}
