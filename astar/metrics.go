package astar

import "github.com/katalvlaran/gridpath/grid"

// metricsScale converts the Manhattan/steps ratio to a percentage.
const metricsScale = 100.0

// PathMetrics reports quality metrics for a path returned by FindPath:
// the step count, the Manhattan distance between its endpoints (the
// unobstructed lower bound), and the efficiency ratio of the two.
//
// An unobstructed route scores 100%; detours around obstacles lower the
// score. The trivial single-cell path scores 0 (zero distance covered).
//
// Returns ErrEmptyPath for an empty path. Complexity: O(1).
func PathMetrics(path []grid.Position) (Metrics, error) {
	if len(path) == 0 {
		return Metrics{}, ErrEmptyPath
	}

	steps := len(path) - 1
	manhattan := path[0].ManhattanTo(path[len(path)-1])

	denom := steps
	if denom < 1 {
		denom = 1
	}

	return Metrics{
		Steps:      steps,
		Manhattan:  manhattan,
		Efficiency: float64(manhattan) / float64(denom) * metricsScale,
	}, nil
}
