// Package grid defines core types and options for the grid subpackage
// of github.com/kavrelan/walkgrid.
package grid

// Direction identifies one cardinal side of a cell, or no side at all.
//
// It serves two roles: as the tag of a one-sided border cell (the side
// from which the cell cannot be entered) and as the approach side in
// walkability queries. DirNone means "no particular side", which is how
// a query that does not care about approach direction is expressed.
type Direction int

const (
	// DirNone denotes the absence of a direction.
	DirNone Direction = iota
	// DirTop is the side facing decreasing y.
	DirTop
	// DirRight is the side facing increasing x.
	DirRight
	// DirBottom is the side facing increasing y.
	DirBottom
	// DirLeft is the side facing decreasing x.
	DirLeft
)

// Opposite returns the side facing d: Top↔Bottom, Left↔Right.
// DirNone maps to itself. Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for diagnostics.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Walkable is the permeability state of a cell: fully open, fully
// blocked, or a one-sided border that admits entry from every direction
// except the tagged one.
//
// The zero value is Open; Walkable values are immutable and compared
// by value.
type Walkable struct {
	blocked bool
	border  Direction
}

// Open returns a cell state enterable from every direction.
func Open() Walkable { return Walkable{} }

// Blocked returns a cell state enterable from no direction.
func Blocked() Walkable { return Walkable{blocked: true} }

// Border returns a one-sided border state: enterable from every
// direction except side. Border(DirNone) normalizes to Open().
func Border(side Direction) Walkable {
	if side == DirNone {
		return Open()
	}
	return Walkable{border: side}
}

// EnterableFrom reports whether a cell in this state may be entered
// from the given side. DirNone means "from no particular side", under
// which a border cell reads as enterable (only an exact side match
// blocks). Complexity: O(1).
func (w Walkable) EnterableFrom(side Direction) bool {
	if w.blocked {
		return false
	}
	if w.border != DirNone {
		return side != w.border
	}
	return true
}

// IsBlocked reports whether the state admits entry from no direction.
func (w Walkable) IsBlocked() bool { return w.blocked }

// IsOpen reports whether the state admits entry from every direction.
func (w Walkable) IsOpen() bool { return !w.blocked && w.border == DirNone }

// BorderSide returns the tagged side of a one-sided border, or DirNone
// for open and blocked states.
func (w Walkable) BorderSide() Direction {
	if w.blocked {
		return DirNone
	}
	return w.border
}

// String renders the state for diagnostics: "open", "blocked", or
// "border(side)".
func (w Walkable) String() string {
	switch {
	case w.blocked:
		return "blocked"
	case w.border != DirNone:
		return "border(" + w.border.String() + ")"
	default:
		return "open"
	}
}

// NeighborOptions contains tunable parameters for neighbor enumeration.
type NeighborOptions struct {
	// AllowDiagonal includes the four diagonal directions in the
	// enumeration.
	AllowDiagonal bool
	// DontCrossCorners, when diagonals are allowed, requires BOTH
	// orthogonal moves framing a diagonal to be legal before the
	// diagonal is considered; when false, EITHER suffices.
	DontCrossCorners bool
}

// DefaultNeighborOptions returns a NeighborOptions with default
// settings: orthogonal movement only.
func DefaultNeighborOptions() NeighborOptions {
	return NeighborOptions{AllowDiagonal: false, DontCrossCorners: false}
}
