// Package grid models a rectangular walkability grid for pathfinding.
// It supports:
//
//   - Construction from width/height plus an optional obstacle matrix
//   - Open, blocked, and one-sided border cells
//   - Bounds-guarded and precondition-checked accessors, as distinct
//     named operations
//   - Neighbor enumeration under diagonal/corner-cutting policies
//   - Cloning and a generation counter for cheap search-state reuse
//
// Matrix cells with a non-zero value are blocked; zero cells are open.
package grid

import "fmt"

// Grid owns a two-dimensional array of Node and answers bounds,
// walkability, and adjacency queries over it. Dimensions are fixed for
// the lifetime of an instance.
//
// A Grid and its nodes are exclusively owned by whichever caller holds
// the reference; there is no internal locking. Concurrent search passes
// must each operate on their own Clone, or coordinate Increment calls
// and node access externally.
type Grid struct {
	width, height int
	nodes         [][]*Node // row-major: nodes[y][x]
	iteration     uint64
}

// NewGrid constructs a width×height grid. Every cell defaults to open;
// if matrix is non-nil, cells whose matrix value is non-zero are marked
// blocked (note the inversion: a truthy matrix cell means an obstacle).
//
// Returns ErrBadDimensions if width or height is below 1, and
// ErrShapeMismatch if the matrix does not have exactly height rows of
// width cells each. Shape is validated before any node is allocated;
// a failed construction never yields a partially applied grid.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, matrix [][]int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	if matrix != nil {
		if len(matrix) != height {
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(matrix), height)
		}
		for y, row := range matrix {
			if len(row) != width {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), width)
			}
		}
	}
	g := &Grid{width: width, height: height, nodes: newNodes(width, height)}
	if matrix != nil {
		for y, row := range matrix {
			for x, v := range row {
				if v != 0 {
					g.nodes[y][x].walkable = Blocked()
				}
			}
		}
	}

	return g, nil
}

// NewGridFromWalkables constructs a grid whose cells carry the given
// Walkable states, deep-copying the input. Useful when border cells are
// part of the initial layout rather than applied one SetWalkableAt at a
// time.
//
// Returns ErrEmptyGrid if cells has no rows or no columns, and
// ErrShapeMismatch if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func NewGridFromWalkables(cells [][]Walkable) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), w)
		}
	}
	g := &Grid{width: w, height: h, nodes: newNodes(w, h)}
	for y, row := range cells {
		for x, wk := range row {
			g.nodes[y][x].walkable = wk
		}
	}

	return g, nil
}

// newNodes allocates the row-major node array with every cell open.
func newNodes(width, height int) [][]*Node {
	nodes := make([][]*Node, height)
	for y := 0; y < height; y++ {
		row := make([]*Node, width)
		for x := 0; x < width; x++ {
			row[x] = &Node{X: x, Y: y}
		}
		nodes[y] = row
	}

	return nodes
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Inside reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// NodeAt returns the node at (x,y) as of the grid's current iteration.
//
// Fast path: the caller must guarantee Inside(x, y); out-of-bounds
// coordinates panic on the array index. Use Node for the bounds-guarded
// variant. Complexity: O(1).
func (g *Grid) NodeAt(x, y int) *Node {
	return g.nodes[y][x].sync(g.iteration)
}

// Node returns the node at (x,y) as of the grid's current iteration,
// or ErrOutOfBounds if (x,y) lies outside the grid. The total
// counterpart of NodeAt. Complexity: O(1).
func (g *Grid) Node(x, y int) (*Node, error) {
	if !g.Inside(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, g.width, g.height)
	}

	return g.NodeAt(x, y), nil
}

// WalkableAt reports whether the cell at (x,y) may be entered from no
// particular direction: false outside the grid, false on blocked cells,
// and true on open or border cells (a border blocks only its own side).
// Complexity: O(1).
func (g *Grid) WalkableAt(x, y int) bool {
	return g.WalkableAtFrom(x, y, DirNone)
}

// WalkableAtFrom reports whether the cell at (x,y) may be entered from
// the given side. Out-of-bounds coordinates are never walkable.
// Complexity: O(1).
func (g *Grid) WalkableAtFrom(x, y int, side Direction) bool {
	if !g.Inside(x, y) {
		return false
	}

	return g.nodes[y][x].walkable.EnterableFrom(side)
}

// SetWalkableAt overwrites the walkable state of the cell at (x,y).
// The write is not versioned: it changes the obstacle layout itself and
// is visible under every iteration.
//
// Fast path: the caller must guarantee Inside(x, y); out-of-bounds
// coordinates panic on the array index. Use SetWalkable for the
// bounds-guarded variant. Complexity: O(1).
func (g *Grid) SetWalkableAt(x, y int, w Walkable) {
	g.nodes[y][x].walkable = w
}

// SetWalkable overwrites the walkable state of the cell at (x,y), or
// returns ErrOutOfBounds if (x,y) lies outside the grid. The total
// counterpart of SetWalkableAt. Complexity: O(1).
func (g *Grid) SetWalkable(x, y int, w Walkable) error {
	if !g.Inside(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.nodes[y][x].walkable = w

	return nil
}
