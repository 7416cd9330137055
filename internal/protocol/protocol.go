// Package protocol owns the Battlesnake HTTP wire format: the JSON request
// bodies the engine receives at /start, /move and /end, and the responses
// it writes back. engine.GameState is built from a Request by ToGameState;
// nothing in engine knows a JSON tag exists.
package protocol

import "github.com/brensch/spaceheater/engine"

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Source  string  `json:"source"`
	Timeout int     `json:"timeout"`
}

type Ruleset struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Settings Settings `json:"settings"`
}

type Settings struct {
	FoodSpawnChance     int           `json:"foodSpawnChance"`
	MinimumFood         int           `json:"minimumFood"`
	HazardDamagePerTurn int           `json:"hazardDamagePerTurn"`
	Royale              RoyaleSettings `json:"royale"`
	Squad               SquadSettings  `json:"squad"`
}

type RoyaleSettings struct {
	ShrinkEveryNTurns int `json:"shrinkEveryNTurns"`
}

type SquadSettings struct {
	AllowBodyCollisions bool `json:"allowBodyCollisions"`
	SharedElimination   bool `json:"sharedElimination"`
	SharedHealth        bool `json:"sharedHealth"`
	SharedLength        bool `json:"sharedLength"`
}

type Point struct {
	X int8 `json:"x"`
	Y int8 `json:"y"`
}

type Snake struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Health         int16          `json:"health"`
	Body           []Point        `json:"body"`
	Latency        string         `json:"latency"`
	Head           Point          `json:"head"`
	Length         int            `json:"length"`
	Shout          string         `json:"shout"`
	Squad          string         `json:"squad"`
	Customizations Customizations `json:"customizations"`
}

type Customizations struct {
	Color string `json:"color"`
	Head  string `json:"head"`
	Tail  string `json:"tail"`
}

type Board struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Food    []Point `json:"food"`
	Hazards []Point `json:"hazards"`
	Snakes  []Snake `json:"snakes"`
}

// Request is the body every one of /start, /move and /end decodes.
type Request struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

// InfoResponse is what GET / replies with.
type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

// MoveResponse is what POST /move replies with.
type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

func toPoint(p Point) engine.Point {
	return engine.Point{X: p.X, Y: p.Y}
}

func toPoints(ps []Point) []engine.Point {
	out := make([]engine.Point, len(ps))
	for i, p := range ps {
		out[i] = toPoint(p)
	}
	return out
}

func toSnake(id int, s Snake) engine.Snake {
	return engine.NewSnake(id, s.Name, s.Health, toPoints(s.Body), s.Squad)
}

func gameMode(ruleset Ruleset) engine.GameMode {
	switch ruleset.Name {
	case "wrapped", "warped":
		return engine.Wrapped
	case "constrictor":
		return engine.Constrictor
	case "royale":
		return engine.Royale
	case "snail":
		return engine.Snail
	default:
		return engine.Standard
	}
}

// ToGameState builds an engine.GameState out of a wire Request, reordering
// the board's snake list so the requester ends up as You/id 0 and every
// other live snake becomes an opponent in board order, matching the
// convention engine.Snake.ID documents (0 is always the agent).
func ToGameState(req Request) *engine.GameState {
	you := toSnake(0, req.You)

	others := make([]engine.Snake, 0, len(req.Board.Snakes))
	nextID := 1
	for _, s := range req.Board.Snakes {
		if s.ID == req.You.ID {
			continue
		}
		others = append(others, toSnake(nextID, s))
		nextID++
	}

	rules := engine.Rules{
		Mode:                gameMode(req.Game.Ruleset),
		HazardDamagePerTurn: req.Game.Ruleset.Settings.HazardDamagePerTurn,
		ShrinkEveryNTurns:   req.Game.Ruleset.Settings.Royale.ShrinkEveryNTurns,
		AllowSquads:         req.Game.Ruleset.Settings.Squad.SharedHealth || req.Game.Ruleset.Settings.Squad.SharedElimination,
	}

	state := engine.NewGameState(int8(req.Board.Width), int8(req.Board.Height), you, others, toPoints(req.Board.Food), toPoints(req.Board.Hazards), rules)
	state.Turn = req.Turn
	return state
}

// directionNames is the wire vocabulary for engine.Direction, keyed by
// direction.
var directionNames = map[engine.Direction]string{
	engine.Up:    "up",
	engine.Down:  "down",
	engine.Left:  "left",
	engine.Right: "right",
}

// MoveName converts an engine.Direction to the wire string a MoveResponse expects.
func MoveName(d engine.Direction) string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "up"
}
