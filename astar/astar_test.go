package astar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// FindPathSuite exercises the A* engine under various scenarios.
type FindPathSuite struct {
	suite.Suite
}

// requireValidPath asserts the structural path invariants: correct
// endpoints, unit orthogonal steps, and no blocked cells.
func (s *FindPathSuite) requireValidPath(g *grid.Grid, path []grid.Position, start, goal grid.Position) {
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), start, path[0], "path must begin at start")
	require.Equal(s.T(), goal, path[len(path)-1], "path must end at goal")
	for i, p := range path {
		require.True(s.T(), g.IsValid(p), "path cell %s must be free", p)
		if i > 0 {
			require.Equal(s.T(), 1, path[i-1].ManhattanTo(p),
				"consecutive cells %s→%s must differ by one orthogonal step", path[i-1], p)
		}
	}
}

// bfsSteps is the brute-force optimality oracle: unweighted BFS distance
// from start to goal, or ok=false when unreachable.
func bfsSteps(g *grid.Grid, start, goal grid.Position) (int, bool) {
	if start == goal {
		return 0, true
	}
	dist := map[grid.Position]int{start: 0}
	queue := []grid.Position{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			if v == goal {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}

	return 0, false
}

// TestNilGrid verifies the nil-grid sentinel.
func (s *FindPathSuite) TestNilGrid() {
	_, err := astar.FindPath(nil, grid.Position{}, grid.Position{})
	require.ErrorIs(s.T(), err, astar.ErrNilGrid)
}

// TestStartInvalid covers a blocked start cell (caller error).
func (s *FindPathSuite) TestStartInvalid() {
	g, err := grid.NewFromCells([][]bool{
		{true, false},
		{false, false},
	})
	require.NoError(s.T(), err)

	_, err = astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 1, Col: 1})
	require.ErrorIs(s.T(), err, astar.ErrStartInvalid)
}

// TestEndpointsOutOfBounds covers out-of-range start and goal coordinates.
func (s *FindPathSuite) TestEndpointsOutOfBounds() {
	g, err := grid.New(4, 0, grid.WithSeed(1))
	require.NoError(s.T(), err)

	_, err = astar.FindPath(g, grid.Position{Row: -1, Col: 0}, grid.Position{Row: 3, Col: 3})
	require.ErrorIs(s.T(), err, astar.ErrStartInvalid)

	_, err = astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 0})
	require.ErrorIs(s.T(), err, astar.ErrGoalInvalid)
}

// TestTrivialSameCell verifies start==goal yields the single-cell path.
func (s *FindPathSuite) TestTrivialSameCell() {
	g, err := grid.New(5, 0)
	require.NoError(s.T(), err)

	p := grid.Position{Row: 2, Col: 3}
	path, err := astar.FindPath(g, p, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Position{p}, path)
}

// TestStraightLineOptimality checks that on an obstacle-free grid the step
// count always equals the Manhattan distance.
func (s *FindPathSuite) TestStraightLineOptimality() {
	g, err := grid.New(7, 0)
	require.NoError(s.T(), err)

	pairs := []struct{ start, goal grid.Position }{
		{grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 6}},
		{grid.Position{Row: 0, Col: 0}, grid.Position{Row: 6, Col: 6}},
		{grid.Position{Row: 3, Col: 1}, grid.Position{Row: 5, Col: 4}},
		{grid.Position{Row: 6, Col: 0}, grid.Position{Row: 0, Col: 6}},
	}
	for _, tc := range pairs {
		path, err := astar.FindPath(g, tc.start, tc.goal)
		require.NoError(s.T(), err)
		s.requireValidPath(g, path, tc.start, tc.goal)
		require.Equal(s.T(), tc.start.ManhattanTo(tc.goal), len(path)-1,
			"unobstructed %s→%s must take exactly the Manhattan distance", tc.start, tc.goal)
	}
}

// TestFiveByFiveScenario pins the canonical 5×5 run: (0,0)→(4,4) in 8 steps.
func (s *FindPathSuite) TestFiveByFiveScenario() {
	g, err := grid.New(5, 0)
	require.NoError(s.T(), err)

	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 4}
	path, err := astar.FindPath(g, start, goal)
	require.NoError(s.T(), err)
	s.requireValidPath(g, path, start, goal)
	require.Len(s.T(), path, 9, "8 steps means 9 cells inclusive")
}

// TestChokepoint routes through the only gap in a blocked column:
// column 1 of a 3×3 grid is blocked except (0,1), so every (0,0)→(2,2)
// path must pass through (0,1).
func (s *FindPathSuite) TestChokepoint() {
	g, err := grid.NewFromCells([][]bool{
		{false, false, false},
		{false, true, false},
		{false, true, false},
	})
	require.NoError(s.T(), err)

	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}
	path, err := astar.FindPath(g, start, goal)
	require.NoError(s.T(), err)
	s.requireValidPath(g, path, start, goal)
	require.Contains(s.T(), path, grid.Position{Row: 0, Col: 1},
		"the gap at (0,1) is the only way across")
}

// TestSurroundedGoal verifies ErrNoPath when the goal is walled in on all
// four sides.
func (s *FindPathSuite) TestSurroundedGoal() {
	g, err := grid.NewFromCells([][]bool{
		{false, false, false, false},
		{false, false, true, false},
		{false, true, false, true},
		{false, false, true, false},
	})
	require.NoError(s.T(), err)

	path, err := astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2})
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
	require.Nil(s.T(), path)
}

// TestCornerGoalBlockedByEdge verifies ErrNoPath when grid edges combine
// with obstacles to seal a corner goal.
func (s *FindPathSuite) TestCornerGoalBlockedByEdge() {
	g, err := grid.NewFromCells([][]bool{
		{false, false, false},
		{false, false, true},
		{false, true, false},
	})
	require.NoError(s.T(), err)

	_, err = astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2})
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
}

// TestDeterminism verifies repeated queries on the same grid return the
// identical sequence (fixed tie-break rule).
func (s *FindPathSuite) TestDeterminism() {
	g, err := grid.New(15, 0.3, grid.WithSeed(21))
	require.NoError(s.T(), err)

	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 14, Col: 14}
	first, err := astar.FindPath(g, start, goal)
	if errors.Is(err, astar.ErrNoPath) {
		s.T().Skip("layout 21 left the corners disconnected")
	}
	require.NoError(s.T(), err)

	for i := 0; i < 5; i++ {
		again, err := astar.FindPath(g, start, goal)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again, "run %d diverged", i)
	}
}

// TestBidirectionalLength verifies |path(A→B)| == |path(B→A)| even though
// the paths themselves may differ under tie-breaking.
func (s *FindPathSuite) TestBidirectionalLength() {
	for seed := int64(1); seed <= 6; seed++ {
		g, err := grid.New(12, 0.25, grid.WithSeed(seed))
		require.NoError(s.T(), err)

		a, b := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 11, Col: 11}
		forward, errF := astar.FindPath(g, a, b)
		backward, errB := astar.FindPath(g, b, a)
		if errors.Is(errF, astar.ErrNoPath) {
			require.ErrorIs(s.T(), errB, astar.ErrNoPath, "seed %d: reachability must be symmetric", seed)
			continue
		}
		require.NoError(s.T(), errF)
		require.NoError(s.T(), errB)
		require.Equal(s.T(), len(forward), len(backward), "seed %d: lengths must match", seed)
	}
}

// TestOptimality_BFSOracle cross-checks A* step counts against brute-force
// BFS on a spread of random layouts.
func (s *FindPathSuite) TestOptimality_BFSOracle() {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := grid.New(10, 0.35, grid.WithSeed(seed))
		require.NoError(s.T(), err)

		start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 9, Col: 9}
		want, reachable := bfsSteps(g, start, goal)

		path, err := astar.FindPath(g, start, goal)
		if !reachable {
			require.ErrorIs(s.T(), err, astar.ErrNoPath, "seed %d: oracle says unreachable", seed)
			continue
		}
		require.NoError(s.T(), err, "seed %d", seed)
		s.requireValidPath(g, path, start, goal)
		require.Equal(s.T(), want, len(path)-1, "seed %d: A* must match BFS distance", seed)
	}
}

// TestOnExpand verifies the expansion hook fires in order, starting at the
// start cell.
func (s *FindPathSuite) TestOnExpand() {
	g, err := grid.New(5, 0)
	require.NoError(s.T(), err)

	var expanded []grid.Position
	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 4}
	_, err = astar.FindPath(g, start, goal,
		astar.WithOnExpand(func(p grid.Position) { expanded = append(expanded, p) }))
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), expanded)
	require.Equal(s.T(), start, expanded[0], "start is always finalized first")
	require.Equal(s.T(), goal, expanded[len(expanded)-1], "search stops at the goal")
}

// TestGridUnchangedBySearch verifies searches never mutate the grid.
func (s *FindPathSuite) TestGridUnchangedBySearch() {
	g, err := grid.New(10, 0.3, grid.WithSeed(3))
	require.NoError(s.T(), err)

	before := g.Stats()
	_, _ = astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 9, Col: 9})
	require.Equal(s.T(), before, g.Stats())
}

func TestFindPathSuite(t *testing.T) {
	suite.Run(t, new(FindPathSuite))
}

//----------------------------------------------------------------------------//
// PathMetrics Tests
//----------------------------------------------------------------------------//

// TestPathMetrics covers the empty, trivial, straight, and detour cases.
func TestPathMetrics(t *testing.T) {
	_, err := astar.PathMetrics(nil)
	require.ErrorIs(t, err, astar.ErrEmptyPath)

	// Trivial single-cell path: zero steps, zero distance.
	m, err := astar.PathMetrics([]grid.Position{{Row: 1, Col: 1}})
	require.NoError(t, err)
	require.Equal(t, astar.Metrics{Steps: 0, Manhattan: 0, Efficiency: 0}, m)

	// Straight unobstructed route scores 100%.
	straight := []grid.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}
	m, err = astar.PathMetrics(straight)
	require.NoError(t, err)
	require.Equal(t, astar.Metrics{Steps: 2, Manhattan: 2, Efficiency: 100}, m)

	// A detour lowers the score: 4 steps to cover a Manhattan distance of 2.
	detour := []grid.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
	}
	m, err = astar.PathMetrics(detour)
	require.NoError(t, err)
	require.Equal(t, 4, m.Steps)
	require.Equal(t, 2, m.Manhattan)
	require.Equal(t, 50.0, m.Efficiency)
}

// TestPathMetrics_FromSearch ties metrics to a real query end to end.
func TestPathMetrics_FromSearch(t *testing.T) {
	g, err := grid.New(5, 0)
	require.NoError(t, err)

	start, goal := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 4}
	path, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)

	m, err := astar.PathMetrics(path)
	require.NoError(t, err)
	require.Equal(t, 8, m.Steps)
	require.Equal(t, 8, m.Manhattan)
	require.Equal(t, 100.0, m.Efficiency)
}

// TestFindPath_ErrorMessages pins the wrapped-context format of endpoint
// validation errors.
func TestFindPath_ErrorMessages(t *testing.T) {
	g, err := grid.NewFromCells([][]bool{
		{true, false},
		{false, false},
	})
	require.NoError(t, err)

	_, err = astar.FindPath(g, grid.Position{Row: 0, Col: 0}, grid.Position{Row: 1, Col: 1})
	require.Error(t, err)
	require.Equal(t, fmt.Sprintf("%s: (0,0)", astar.ErrStartInvalid), err.Error())
}
