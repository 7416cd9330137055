package engine

import (
	"bytes"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"math/rand"
)

// Config is the evaluator's weight vector: one coefficient per flood-fill
// feature plus a couple of mode switches (hungry mode, distance caps). It
// round-trips to a hex string via gob so a tuned config can be pasted into
// an environment variable or a gauntlet result file.
//
// There is no library in this codebase's dependency set that plays the role
// Rust's bincode does (a compact, schema-stable binary codec); gob is the
// standard library's closest equivalent and is what this repo uses instead.
// See DESIGN.md for the full justification.
type Config struct {
	PointsPerFood                    int64
	PointsPerTile                    int64
	PointsPerHazard                  int64
	PointsPerLengthRank              int64
	PointsPerHealth                  int64
	PointsPerDistanceToFood          int64
	FoodDistanceCap                  int
	PointsPerKill                    int64
	PointsPerTurnSurvived            int64
	PointsPerDistanceToSmallerEnemy  int64
	EnemyDistanceCap                 int
	PointsWhenDead                   int64
	HungryModeMaxHealth              int16
	HungryModeFoodMultiplier         float64

	// Filler picks the flood-fill variant Evaluate scores with. Left nil
	// (the zero value produced by RandomConfig/Evolve/the hex round-trip)
	// it defaults to WinterFloodFiller. gob skips a nil interface field, so
	// such configs round-trip; a config with Filler set does not encode, and
	// String returns "" for it.
	Filler FloodFiller
}

func (c Config) filler() FloodFiller {
	if c.Filler == nil {
		return WinterFloodFiller{}
	}
	return c.Filler
}

// RandomConfig draws a config with the same ranges as the original tuning
// run, suitable as a starting genome for a gauntlet.
func RandomConfig(rng *rand.Rand) Config {
	return Config{
		PointsPerFood:                    int64(rng.Intn(30)),
		PointsPerTile:                    int64(rng.Intn(30)),
		PointsPerHazard:                  int64(rng.Intn(10) - 10),
		PointsPerLengthRank:              int64(rng.Intn(210) - 200),
		PointsPerHealth:                  int64(rng.Intn(30)),
		PointsPerDistanceToFood:          int64(rng.Intn(35) - 30),
		FoodDistanceCap:                  rng.Intn(47) + 3,
		PointsPerKill:                    int64(rng.Intn(1000)),
		PointsPerTurnSurvived:            int64(rng.Intn(1000)),
		PointsPerDistanceToSmallerEnemy:  int64(rng.Intn(35) - 30),
		EnemyDistanceCap:                 rng.Intn(47) + 3,
		PointsWhenDead:                   -10000000,
		HungryModeMaxHealth:              int16(rng.Intn(55) + 15),
		HungryModeFoodMultiplier:         1.0 + rng.Float64()*14.0,
	}
}

// Evolve returns a mutated copy: one randomly-chosen field raised by a
// squared random step (some fields scale it), where the step is 0, 1, 4 or
// 9 with chances 1/7, 2/7, 2/7 and 2/7. A zero step, or a clamped field
// already at its bound, returns the config unchanged.
func (c Config) Evolve(rng *rand.Rand) Config {
	res := c
	step := rng.Intn(7) - 3
	mul := int64(step * step)

	switch rng.Intn(13) {
	case 0:
		res.PointsPerFood += mul
	case 1:
		res.PointsPerTile += mul
	case 2:
		res.PointsPerLengthRank += 2 * mul
	case 3:
		res.PointsPerHealth += mul
	case 4:
		res.PointsPerDistanceToFood += mul
	case 5:
		res.PointsPerKill += 5 * mul
	case 6:
		res.PointsPerTurnSurvived += 5 * mul
	case 7:
		res.PointsPerDistanceToSmallerEnemy += mul
	case 8:
		res.HungryModeMaxHealth = clampInt16(res.HungryModeMaxHealth+int16(mul), 0, 100)
	case 9:
		res.HungryModeFoodMultiplier += 0.05 * float64(mul)
	case 10:
		res.FoodDistanceCap = maxInt(1, res.FoodDistanceCap+int(mul))
	case 11:
		res.EnemyDistanceCap = maxInt(1, res.EnemyDistanceCap+int(mul))
	case 12:
		res.PointsPerHazard += mul
	}
	return res
}

func clampInt16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// String hex-encodes the gob-serialized config.
func (c Config) String() string {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c); err != nil {
		return ""
	}
	return hex.EncodeToString(buf.Bytes())
}

// ConfigFromHex decodes a config previously produced by Config.String.
func ConfigFromHex(s string) (Config, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Config{}, fmt.Errorf("decode config hex: %w", err)
	}
	var c Config
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config gob: %w", err)
	}
	return c, nil
}
