package engine

import "math"

// Score is the evaluator's output: higher is better for the agent (You).
type Score int64

// ScoresApprox reports whether a and b are close enough to be treated as
// tied by a food-seeking tie-break: the tolerance is half a single food
// pickup's worth of points, since two branches differing by less than
// that are noise from flood-fill granularity rather than a real
// preference one way or the other. Different evaluators can reasonably
// define this differently; this one ties it to its own PointsPerFood term.
func (c Config) ScoresApprox(a, b Score) bool {
	tolerance := c.PointsPerFood
	if tolerance < 0 {
		tolerance = -tolerance
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= Score(tolerance/2)
}

// Evaluate scores state from the agent's perspective using weights c.
// It runs one flood fill, then combines the resulting features linearly:
// survival and kills are flat bonuses, health and territory are rewarded
// directly, a dying agent short-circuits to a large negative score, and a
// low-health agent has its food terms boosted by HungryModeFoodMultiplier
// ("hungry mode").
func (c Config) Evaluate(state *GameState, maxDistance int) Score {
	var score int64
	score += c.PointsPerKill * int64(state.DeadSnakes)
	score += c.PointsPerTurnSurvived * int64(state.Turn)

	if state.You.Dead() {
		score -= c.PointsPerTurnSurvived + c.PointsPerKill
		score += c.PointsWhenDead
		return Score(score)
	}

	flood := c.filler().Fill(state, maxDistance)
	you := flood[0]

	score += c.PointsPerHealth * int64(state.You.Health)
	score += c.PointsPerTile * int64(you.TileCount)
	score += c.PointsPerHazard * int64(you.HazardCount)

	lengthRank := 0
	for i, other := range state.Others {
		if other.Length() >= state.You.Length() {
			lengthRank++
			continue
		}
		dist := you.DistanceToCollision[i+1]
		if dist > c.EnemyDistanceCap {
			dist = c.EnemyDistanceCap
		}
		score += c.PointsPerDistanceToSmallerEnemy * int64(dist)
	}
	score += c.PointsPerLengthRank * int64(lengthRank)

	foodDistance := you.FoodDistance
	if foodDistance > c.FoodDistanceCap {
		foodDistance = c.FoodDistanceCap
	}
	foodScore := c.PointsPerFood*int64(you.FoodCount) + c.PointsPerDistanceToFood*int64(foodDistance)
	if int64(state.You.Health) < int64(c.HungryModeMaxHealth) {
		foodScore = int64(math.Round(c.HungryModeFoodMultiplier * float64(foodScore)))
	}
	score += foodScore

	return Score(score)
}
