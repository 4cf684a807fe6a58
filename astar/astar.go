// Package astar implements the A* best-first search over occupancy grids.
//
// A* = Dijkstra + admissible heuristic. On a unit-cost 4-connected grid the
// Manhattan distance never overestimates the true remaining cost and is
// consistent across edges, so cells are finalized in non-decreasing order
// of true cost and the first finalization of the goal is optimal.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// stepCost is the uniform cost of one orthogonal move.
const stepCost = 1

// FindPath computes a minimum-step orthogonal path from start to goal on g,
// start and goal inclusive. It accepts functional options to customize
// behavior (WithOnExpand).
//
// Returns:
//
//   - path: ordered cells start→goal; consecutive cells differ by exactly
//     one orthogonal step. start==goal yields the single-cell path.
//   - err:  a sentinel error if inputs are invalid or no route exists.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must satisfy g.IsValid (ErrStartInvalid).
//  3. goal must satisfy g.IsValid (ErrGoalInvalid).
//
// Unreachability is reported as ErrNoPath, never as an empty path; check it
// with errors.Is.
//
// The grid must not be mutated while FindPath runs. All search bookkeeping
// is owned by this call and discarded on return, so concurrent FindPath
// calls over the same unchanging grid are safe.
//
// Complexity:
//
//   - Time:  O(N² log N²)
//   - Space: O(N²)
func FindPath(g *grid.Grid, start, goal grid.Position, opts ...Option) ([]grid.Position, error) {
	// 1) Build and apply Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs with sentinels, in documented order.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsValid(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartInvalid, start)
	}
	if !g.IsValid(goal) {
		return nil, fmt.Errorf("%w: %s", ErrGoalInvalid, goal)
	}

	// 3) Prepare per-query state. Capacity N is a reasonable starting point
	//    for the frontier; the maps grow on demand.
	r := &runner{
		grid:    g,
		goal:    goal,
		options: cfg,
		gScore:  make(map[grid.Position]int),
		prev:    make(map[grid.Position]grid.Position),
		closed:  make(map[grid.Position]bool),
		pq:      make(cellPQ, 0, g.Size()),
	}

	// 4) Seed the frontier with start and run the main loop.
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single FindPath execution.
// It is discarded after the query; no state survives between calls.
type runner struct {
	grid    *grid.Grid                      // the input grid; read-only during search
	goal    grid.Position                   // search target
	options Options                         // configuration (expansion hook)
	gScore  map[grid.Position]int           // best-known cost-from-start per cell
	prev    map[grid.Position]grid.Position // predecessor on the best-known path
	closed  map[grid.Position]bool          // cells whose optimal cost is finalized
	pq      cellPQ                          // min-heap frontier, keyed (f, seq)
	seq     int                             // monotone insertion counter for tie-breaks
}

// init establishes heap invariants and pushes the start cell with g=0 and
// f equal to its heuristic estimate.
func (r *runner) init(start grid.Position) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	heap.Push(&r.pq, &cellItem{
		pos: start,
		g:   0,
		f:   start.ManhattanTo(r.goal),
		seq: r.seq,
	})
}

// process is the core loop: repeatedly extract the frontier entry with the
// lowest (f, seq) key, finalize it, and relax its orthogonal neighbors.
//
// Loop termination:
//
//   - The goal is popped: its cost is optimal, reconstruct immediately.
//   - The frontier empties: no route exists, return ErrNoPath.
func (r *runner) process() ([]grid.Position, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u := item.pos

		// Skip stale entries: the cell was already finalized, or a cheaper
		// duplicate superseded this one before it could be expanded.
		if r.closed[u] || item.g > r.gScore[u] {
			continue
		}

		// Finalize u; its cost-from-start is now optimal.
		r.closed[u] = true
		r.options.OnExpand(u)

		// First finalization of the goal ends the search.
		if u == r.goal {
			return r.reconstruct(u), nil
		}

		r.relax(u, item.g)
	}

	return nil, ErrNoPath
}

// relax attempts to improve the cost of every valid orthogonal neighbor of
// u. A strictly better cost records the new cost and predecessor and pushes
// a fresh frontier entry (lazy decrease-key: old entries stay in the heap
// and are skipped later via the supersession check in process).
func (r *runner) relax(u grid.Position, gu int) {
	for _, v := range r.grid.Neighbors(u) {
		tentative := gu + stepCost
		if best, seen := r.gScore[v]; seen && tentative >= best {
			continue
		}
		r.gScore[v] = tentative
		r.prev[v] = u
		r.seq++
		heap.Push(&r.pq, &cellItem{
			pos: v,
			g:   tentative,
			f:   tentative + v.ManhattanTo(r.goal),
			seq: r.seq,
		})
	}
}

// reconstruct walks the predecessor chain from the goal back to the start,
// then reverses in place to produce start→goal order.
func (r *runner) reconstruct(end grid.Position) []grid.Position {
	path := []grid.Position{end}
	for cur := end; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cellItem is one frontier entry: a cell with its cost-from-start g, its
// priority key f = g + heuristic, and the insertion sequence number seq.
type cellItem struct {
	pos grid.Position
	g   int
	f   int
	seq int
}

// cellPQ is a min-heap of *cellItem ordered by (f ascending, seq ascending).
// Ties in f are broken by insertion order, so expansion order is fully
// deterministic for a fixed grid and query.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence (earlier discovered first).
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
