package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrelan/walkgrid/grid"
)

// TestClone_CopiesLayout verifies that a clone reproduces the walkable
// attribute of every cell — open, blocked, and border alike — as
// currently set on the source.
func TestClone_CopiesLayout(t *testing.T) {
	g, err := grid.NewGrid(3, 2, [][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	g.SetWalkableAt(0, 1, grid.Border(grid.DirRight))

	c := g.Clone()
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.False(t, c.WalkableAt(1, 0))
	assert.True(t, c.WalkableAt(0, 0))
	assert.Equal(t, grid.DirRight, c.NodeAt(0, 1).Walkable().BorderSide())
}

// TestClone_Independence verifies that walkability mutations on either
// side stay invisible to the other, and that no Node is shared.
func TestClone_Independence(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)
	c := g.Clone()

	assert.NotSame(t, g.NodeAt(1, 1), c.NodeAt(1, 1))

	c.SetWalkableAt(1, 1, grid.Blocked())
	assert.True(t, g.WalkableAt(1, 1), "clone mutation leaked into the source")

	g.SetWalkableAt(2, 2, grid.Blocked())
	assert.True(t, c.WalkableAt(2, 2), "source mutation leaked into the clone")
}

// TestClone_FreshIterationAndState verifies that the clone starts at
// generation 0 with untouched search state, whatever the source's
// counter or in-flight search looked like.
func TestClone_FreshIterationAndState(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)
	g.Increment()
	g.Increment()
	g.NodeAt(0, 0).Opened = true

	c := g.Clone()
	assert.Equal(t, uint64(0), c.Iteration())
	assert.False(t, c.NodeAt(0, 0).Opened, "search state must not travel through Clone")
}
