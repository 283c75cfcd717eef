package grid

// Neighbors enumerates the cells adjacent to n that may legally be
// stepped into from n, in a fixed order: up, right, down, left, then —
// when opts.AllowDiagonal — up-left, up-right, down-right, down-left.
// Illegal directions are simply absent from the result.
//
// An orthogonal step is legal iff the destination admits entry from the
// side facing the origin AND the origin admits exit through the side
// facing the destination (its own border tag on that side blocks
// leaving, not just entering). This double check is what lets a
// one-sided border block movement in exactly one direction.
//
// A diagonal step is first gated by the two orthogonal steps framing
// its corner: both must be legal under opts.DontCrossCorners, either
// one suffices otherwise. A gated diagonal is then validated against
// border tags along the move itself: the target from both sides facing
// the origin, and each flanking cell from the side it turns toward the
// move. All four checks must pass.
//
// Every returned node is a snapshot at the grid's current iteration.
// Complexity: O(1) — at most 8 neighbors, constant work each.
func (g *Grid) Neighbors(n *Node, opts NeighborOptions) []*Node {
	x, y := n.X, n.Y
	neighbors := make([]*Node, 0, 8)

	// Orthogonal passes, recorded for diagonal gating:
	// s0=up, s1=right, s2=down, s3=left.
	s0 := g.WalkableAtFrom(x, y-1, DirBottom) && g.WalkableAtFrom(x, y, DirTop)
	s1 := g.WalkableAtFrom(x+1, y, DirLeft) && g.WalkableAtFrom(x, y, DirRight)
	s2 := g.WalkableAtFrom(x, y+1, DirTop) && g.WalkableAtFrom(x, y, DirBottom)
	s3 := g.WalkableAtFrom(x-1, y, DirRight) && g.WalkableAtFrom(x, y, DirLeft)

	if s0 {
		neighbors = append(neighbors, g.NodeAt(x, y-1))
	}
	if s1 {
		neighbors = append(neighbors, g.NodeAt(x+1, y))
	}
	if s2 {
		neighbors = append(neighbors, g.NodeAt(x, y+1))
	}
	if s3 {
		neighbors = append(neighbors, g.NodeAt(x-1, y))
	}
	if !opts.AllowDiagonal {
		return neighbors
	}

	// Diagonal gates from the framing orthogonal passes:
	// d0=up-left, d1=up-right, d2=down-right, d3=down-left.
	var d0, d1, d2, d3 bool
	if opts.DontCrossCorners {
		d0, d1, d2, d3 = s3 && s0, s0 && s1, s1 && s2, s2 && s3
	} else {
		d0, d1, d2, d3 = s3 || s0, s0 || s1, s1 || s2, s2 || s3
	}

	if d0 && g.diagonalClear(x, y, -1, -1) {
		neighbors = append(neighbors, g.NodeAt(x-1, y-1))
	}
	if d1 && g.diagonalClear(x, y, +1, -1) {
		neighbors = append(neighbors, g.NodeAt(x+1, y-1))
	}
	if d2 && g.diagonalClear(x, y, +1, +1) {
		neighbors = append(neighbors, g.NodeAt(x+1, y+1))
	}
	if d3 && g.diagonalClear(x, y, -1, +1) {
		neighbors = append(neighbors, g.NodeAt(x-1, y+1))
	}

	return neighbors
}

// diagonalClear validates the border tags along the diagonal move from
// (x,y) toward (x+dx, y+dy), with dx, dy ∈ {-1, +1}:
//
//   - the target must admit entry from its vertical side facing the
//     origin and from its horizontal side facing the origin;
//   - the vertical flank (x, y+dy) must admit the move past its
//     horizontal side facing the target;
//   - the horizontal flank (x+dx, y) must admit the move past its
//     vertical side facing the target.
//
// Complexity: O(1).
func (g *Grid) diagonalClear(x, y, dx, dy int) bool {
	// Sides of the target facing back toward the origin.
	backV, backH := DirBottom, DirRight
	if dy > 0 {
		backV = DirTop
	}
	if dx > 0 {
		backH = DirLeft
	}

	return g.WalkableAtFrom(x+dx, y+dy, backV) &&
		g.WalkableAtFrom(x+dx, y+dy, backH) &&
		g.WalkableAtFrom(x, y+dy, backH.Opposite()) &&
		g.WalkableAtFrom(x+dx, y, backV.Opposite())
}
