package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrelan/walkgrid/grid"
)

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, grid.DirBottom, grid.DirTop.Opposite())
	assert.Equal(t, grid.DirTop, grid.DirBottom.Opposite())
	assert.Equal(t, grid.DirRight, grid.DirLeft.Opposite())
	assert.Equal(t, grid.DirLeft, grid.DirRight.Opposite())
	assert.Equal(t, grid.DirNone, grid.DirNone.Opposite())
}

func TestWalkable_EnterableFrom(t *testing.T) {
	all := []grid.Direction{grid.DirNone, grid.DirTop, grid.DirRight, grid.DirBottom, grid.DirLeft}

	for _, d := range all {
		assert.True(t, grid.Open().EnterableFrom(d), "open cell must admit %v", d)
		assert.False(t, grid.Blocked().EnterableFrom(d), "blocked cell must refuse %v", d)
	}

	// A border admits every side except its own tag, including the
	// "no particular side" query.
	b := grid.Border(grid.DirLeft)
	assert.False(t, b.EnterableFrom(grid.DirLeft))
	assert.True(t, b.EnterableFrom(grid.DirNone))
	assert.True(t, b.EnterableFrom(grid.DirTop))
	assert.True(t, b.EnterableFrom(grid.DirRight))
	assert.True(t, b.EnterableFrom(grid.DirBottom))
}

func TestWalkable_Normalization(t *testing.T) {
	// Border(DirNone) carries no tag and is plain open.
	assert.Equal(t, grid.Open(), grid.Border(grid.DirNone))
	assert.True(t, grid.Border(grid.DirNone).IsOpen())
	assert.Equal(t, grid.DirNone, grid.Blocked().BorderSide())
}

// TestWalkableAtFrom_Border exercises the directional read through the
// grid: a border-tagged cell is walkable from every side but its tag,
// and reads walkable under the side-less query.
func TestWalkableAtFrom_Border(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)
	g.SetWalkableAt(1, 1, grid.Border(grid.DirTop))

	assert.True(t, g.WalkableAt(1, 1))
	assert.False(t, g.WalkableAtFrom(1, 1, grid.DirTop))
	assert.True(t, g.WalkableAtFrom(1, 1, grid.DirBottom))
	assert.True(t, g.WalkableAtFrom(1, 1, grid.DirLeft))
	assert.True(t, g.WalkableAtFrom(1, 1, grid.DirRight))

	// Out of bounds is never walkable, whatever the side.
	assert.False(t, g.WalkableAtFrom(-1, 0, grid.DirTop))
	assert.False(t, g.WalkableAtFrom(0, 3, grid.DirNone))
}

//----------------------------------------------------------------------------//
// Fast-path vs total accessors
//----------------------------------------------------------------------------//

func TestNodeAccessors(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)

	n := g.NodeAt(1, 0)
	assert.Equal(t, 1, n.X)
	assert.Equal(t, 0, n.Y)

	got, err := g.Node(1, 0)
	require.NoError(t, err)
	assert.Same(t, n, got, "both accessors must address the same node")

	_, err = g.Node(2, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.Panics(t, func() { g.NodeAt(2, 0) }, "fast path must fault out of bounds")
}

func TestSetWalkable(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)

	g.SetWalkableAt(0, 1, grid.Blocked())
	assert.False(t, g.WalkableAt(0, 1))

	require.NoError(t, g.SetWalkable(0, 1, grid.Open()))
	assert.True(t, g.WalkableAt(0, 1))

	assert.ErrorIs(t, g.SetWalkable(-1, 0, grid.Blocked()), grid.ErrOutOfBounds)
	assert.Panics(t, func() { g.SetWalkableAt(-1, 0, grid.Blocked()) })
}

// TestSetWalkableAt_NotVersioned confirms that walkability writes cut
// across generations: they mutate the layout itself.
func TestSetWalkableAt_NotVersioned(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)

	g.SetWalkableAt(1, 1, grid.Blocked())
	g.Increment()
	assert.False(t, g.WalkableAt(1, 1), "layout change must survive Increment")
}
