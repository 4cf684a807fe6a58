// Package gridpath is an in-memory toolkit for navigating partially
// obstructed 2D grids — an occupancy-grid model plus an optimal A* engine.
//
// 🚀 What is gridpath?
//
//	A compact, thread-safe library that brings together:
//		• grid — square occupancy maps: clustered obstacle generation,
//		  bounds/occupancy predicates, single-cell clearing, layout stats
//		• astar — best-first shortest-path search with the Manhattan
//		  heuristic, deterministic tie-breaking and path quality metrics
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, seeded randomness
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same seed and same query ⇒ identical layout and path
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/  — Grid, Position, obstacle generation & occupancy queries
//	astar/ — FindPath, search options & PathMetrics
//
// Quick ASCII example:
//
//	S . # .        S = start, E = exit (goal)
//	. . # .        # = obstacle
//	. . . E        . = free cell
//
//	FindPath routes S→E around the wall in 5 unit steps.
//
// A demo binary lives under cmd/gridpath: it generates a warehouse-style
// layout, runs a query, and renders the path as ASCII art.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
