// Package walkgrid is an in-memory walkability grid for grid-based
// pathfinding — the spatial layer beneath BFS, A*, jump-point search
// and friends.
//
// 🚀 What is walkgrid?
//
//	A small, focused library that models a rectangular arrangement of
//	cells and answers "where can I step from here?" so that search
//	algorithms never re-derive geometry rules themselves:
//		• Cells: open, blocked, or one-sided borders (walls passable
//		  from every direction except one)
//		• Neighbor enumeration with configurable diagonal movement and
//		  corner-cutting policy
//		• Cheap reuse: a generation counter logically resets per-node
//		  search state across repeated searches without reallocating
//		• Cloning for independent passes over one obstacle layout
//
// ✨ Why choose walkgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – neighbor order is fixed and documented
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – fast precondition-checked accessors and safe
//     bounds-guarded ones are separate, named operations
//
// Everything lives in one subpackage:
//
//	grid/ — Grid, Node, Walkable, Direction and the neighbor policy
//
// Quick ASCII example (# = blocked, > = a border cell enterable from
// every direction except its left side):
//
//	    . . # .
//	    . > . .
//	    . . . .
//
// Dive into grid/doc.go and the runnable examples for the full tour.
//
//	go get github.com/kavrelan/walkgrid/grid
package walkgrid
