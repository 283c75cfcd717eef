package grid

// Node is a single grid cell: immutable (X, Y) identity, a Walkable
// permeability state, and mutable per-search state that search
// algorithms (A*, BFS, …) scribble on while they run.
//
// The search fields are versioned by the owning Grid's iteration
// counter using a lazy-reset scheme: each node remembers the generation
// of its last sync, and a snapshot taken under a newer generation zeroes
// the fields before handing the node out. Writes made exclusively under
// one generation are therefore never observed by reads under another,
// without the Grid ever reallocating its node array.
type Node struct {
	// X and Y are the node's coordinates in its Grid, fixed at creation.
	X, Y int

	// G, H and F are path-cost accumulators owned by the search layer;
	// the grid only versions them, it assigns them no meaning.
	G, H, F float64
	// Opened and Closed are open/closed-list flags owned by the search
	// layer.
	Opened, Closed bool
	// Parent links back along the best path found so far; owned by the
	// search layer.
	Parent *Node

	walkable Walkable
	stamp    uint64 // generation of the last search-state sync
}

// Walkable returns the node's current permeability state. Not
// versioned: the walkable attribute is part of the obstacle layout, not
// of per-search state.
func (n *Node) Walkable() Walkable { return n.walkable }

// sync presents the node as of generation gen: if the node's last sync
// predates gen, all search state is reset to its zero value first.
// Complexity: O(1).
func (n *Node) sync(gen uint64) *Node {
	if n.stamp != gen {
		n.G, n.H, n.F = 0, 0, 0
		n.Opened, n.Closed = false, false
		n.Parent = nil
		n.stamp = gen
	}
	return n
}
