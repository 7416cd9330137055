package search

import "github.com/brensch/spaceheater/engine"

// ScoreApprox reports whether two scores should be treated as tied for
// FoodOverride's purposes. Injected like ScoreFunc so callers aren't tied
// to one evaluator's notion of "close enough."
type ScoreApprox func(a, b engine.Score) bool

// FoodOverride implements the optional post-search tie-break: when the
// agent is hungry (health below 40) and a short path to food exists, and
// heading there scores no worse than the search's chosen move (within
// approx), prefer the food direction. It exists to break ties in favor of
// not starving, not to override a move the search actually prefers.
func FoodOverride(root *MaxNode, bestDir engine.Direction, bestScore engine.Score, approx ScoreApprox) engine.Direction {
	you := root.State.You
	if you.Health >= 40 {
		return bestDir
	}

	foodDir, distance, ok := engine.NearestFood(root.State, you.Head)
	if !ok || foodDir == bestDir || distance >= int(you.Health) {
		return bestDir
	}

	foodScore, ok := root.ChildScore(foodDir)
	if !ok || !approx(foodScore, bestScore) {
		return bestDir
	}

	return foodDir
}
