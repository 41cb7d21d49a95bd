package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		}
	})

	t.Run("starts fully walled and unvisited", func(t *testing.T) {
		g, err := NewGrid(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Width())
		assert.Equal(t, 3, g.Height())

		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				cell, err := g.CellAt(row, col)
				require.NoError(t, err)
				assert.True(t, cell.HasNorthWall())
				assert.True(t, cell.HasSouthWall())
				assert.True(t, cell.HasEastWall())
				assert.True(t, cell.HasWestWall())
				assert.False(t, cell.visited)
			}
		}
	})

	t.Run("bounds-checks cell access", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			_, err := g.CellAt(pos[0], pos[1])
			assert.Error(t, err, "pos %v", pos)
		}
	})
}

func TestOpenPassage(t *testing.T) {
	t.Run("updates both sides of the shared edge", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)

		require.NoError(t, g.openPassage(CellPosition{Row: 1, Col: 1}, East))

		from, _ := g.CellAt(1, 1)
		to, _ := g.CellAt(1, 2)
		assert.False(t, from.HasEastWall())
		assert.False(t, to.HasWestWall())

		// Unrelated walls stay up.
		assert.True(t, from.HasNorthWall())
		assert.True(t, to.HasEastWall())
	})

	t.Run("rejects edges leaving the grid", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		assert.Error(t, g.openPassage(CellPosition{Row: 0, Col: 0}, North))
		assert.Error(t, g.openPassage(CellPosition{Row: 1, Col: 1}, South))
	})
}

func TestLifecycle(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	t.Run("boundaries require a carved grid", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		assert.ErrorIs(t, g.OpenBoundaries(), ErrInvalidState)
	})

	t.Run("finalize requires a bounded grid", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.CarveDFS(CellPosition{}, r))

		_, err = g.Finalize()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("double carve fails with AlreadyCarved", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.CarveDFS(CellPosition{}, r))

		assert.ErrorIs(t, g.CarveDFS(CellPosition{}, r), ErrAlreadyCarved)
		assert.ErrorIs(t, g.CarveWilson(CellPosition{}, r), ErrAlreadyCarved)
	})

	t.Run("boundaries cannot be opened twice", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.CarveDFS(CellPosition{}, r))
		require.NoError(t, g.OpenBoundaries())

		assert.ErrorIs(t, g.OpenBoundaries(), ErrInvalidState)
	})

	t.Run("full forward pass reaches a finalized maze", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.CarveDFS(CellPosition{}, r))
		require.NoError(t, g.OpenBoundaries())

		m, err := g.Finalize()
		require.NoError(t, err)
		assert.Equal(t, 3, m.Width())
		assert.Equal(t, 3, m.Height())
	})
}
