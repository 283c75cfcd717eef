// Package grid models a rectangular walkability grid — the spatial
// layer beneath grid-based pathfinding.
//
// What:
//
//   - Grid owns a W×H array of Node, built from an optional obstacle
//     matrix (non-zero cell = blocked).
//   - Cells are open, blocked, or one-sided borders: Border(DirLeft)
//     admits entry from every direction except the left.
//   - Neighbors enumerates legal moves from a cell under configurable
//     diagonal-movement and corner-cutting policies, in a fixed order.
//   - Clone duplicates a layout for an independent search pass;
//     Increment logically resets per-node search state instead.
//
// Why:
//
//   - Search algorithms (BFS, A*, JPS) share one adjacency rulebook
//     instead of re-deriving geometry each time.
//   - One-sided borders model ledges, one-way doors, and cliff drops.
//   - The generation counter makes "run 10,000 searches on one map"
//     allocation-free between passes.
//
// Complexity:
//
//   - NewGrid / NewGridFromWalkables / Clone: O(W×H).
//   - Inside, NodeAt, WalkableAt(From), SetWalkableAt, Increment: O(1).
//   - Neighbors: O(1) (at most 8 candidates).
//
// Options:
//
//   - NeighborOptions.AllowDiagonal: include diagonal moves.
//   - NeighborOptions.DontCrossCorners: a diagonal needs BOTH framing
//     orthogonal moves legal (AND); otherwise EITHER suffices (OR).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrShapeMismatch: obstacle matrix shape disagrees with W×H.
//   - ErrEmptyGrid: walkable-cell input has no rows or no columns.
//   - ErrOutOfBounds: total accessors (Node, SetWalkable) addressed
//     outside the grid. The fast-path accessors (NodeAt, SetWalkableAt)
//     instead require Inside(x,y) and panic on violation.
//
// Concurrency: none built in. A Grid is exclusively owned; concurrent
// passes use Clone per goroutine or coordinate externally.
package grid
