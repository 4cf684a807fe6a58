// Package grid provides a square 2D occupancy map for grid-bound agents,
// with stochastic clustered obstacle generation and O(1) occupancy queries.
//
// What:
//
//   - Grid wraps an N×N boolean occupancy map (true = blocked).
//   - New generates obstacles to approximate a requested density, clustering
//     blocked cells to mimic warehouse shelving layouts.
//   - IsValid answers the combined bounds-and-occupancy predicate that
//     search engines use to gate neighbor exploration.
//   - Clear frees a single cell (for example, a requested start or exit).
//   - Stats reports cell counts and the realized obstacle percentage.
//
// Why:
//
//   - Warehouse robotics: model shelves and boxes as blocked cells.
//   - Game maps: generate clustered terrain and query traversability.
//   - Search benchmarks: reproducible layouts via injectable random sources.
//
// Determinism:
//
//   - Generation consumes only the injected *rand.Rand (WithRand/WithSeed).
//   - Without an explicit source, a fixed default seed is used, so the same
//     (size, density) pair always yields the same layout.
//
// Concurrency:
//
//   - All read paths (IsValid, InBounds, Stats, Snapshot) take a read lock;
//     Clear takes the write lock. Concurrent searches over an unchanging
//     Grid are therefore safe, and any Clear is exclusive.
//
// Complexity:
//
//   - New:      O(N²) expected time, O(N²) memory.
//   - IsValid:  O(1).
//   - Clear:    O(1).
//   - Stats:    O(1).
//   - Snapshot: O(N²).
//
// Errors:
//
//   - ErrBadSize:    size < 1.
//   - ErrBadDensity: density outside [0,1].
package grid
