package grid

// Clone returns a new Grid with identical dimensions and a freshly
// allocated node array whose cells copy only the walkable state from
// the source — the attribute as currently set, not a versioned read.
// The clone's iteration starts at 0, and no Node instance is shared
// with the source: each side accumulates search state independently.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	clone := &Grid{width: g.width, height: g.height, nodes: newNodes(g.width, g.height)}
	for y, row := range g.nodes {
		for x, n := range row {
			clone.nodes[y][x].walkable = n.walkable
		}
	}

	return clone
}

// Increment advances the grid's iteration counter by 1 and nothing
// else. Subsequent snapshots (NodeAt, Neighbors) present reset search
// state on every node they touch, so one obstacle layout serves many
// independent search passes without reallocating the node array.
//
// Grid never advances the counter implicitly; calling Increment between
// logically independent passes is the owner's job. Complexity: O(1).
func (g *Grid) Increment() {
	g.iteration++
}

// Iteration returns the current generation counter. Callers running
// passes concurrently must coordinate Increment and node access
// externally; the counter itself carries no atomicity guarantees.
func (g *Grid) Iteration() uint64 {
	return g.iteration
}
