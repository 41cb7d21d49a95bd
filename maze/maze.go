/*
Package maze generates perfect mazes over rectangular grids.

A perfect maze is a spanning tree over the cell-adjacency graph: exactly
one simple path exists between any two cells, with no loops and no
unreachable cells. The package models the grid as cells with four
boolean wall flags, carves passages with a seedable randomized algorithm
("dfs" or "wilson"), punches an entrance and an exit through the outer
perimeter, and hands the result out as an immutable Maze value that
renderers and repositories consume read-only.
*/
package maze

import (
	"fmt"
	"strings"
)

// Maze is the finished artifact: a finalized grid plus its entrance and
// exit markers. It is immutable and safe for concurrent readers.
type Maze struct {
	grid *Grid
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.height }

// CellAt returns a copy of the cell at (row, col).
func (m *Maze) CellAt(row, col int) (Cell, error) {
	return m.grid.CellAt(row, col)
}

// Entrance returns the boundary opening leading into the maze.
func (m *Maze) Entrance() BoundaryOpening { return m.grid.entrance }

// Exit returns the boundary opening leading out of the maze.
func (m *Maze) Exit() BoundaryOpening { return m.grid.exit }

// String renders the maze as ASCII, one "+---+" band per cell row.
func (m *Maze) String() string {
	var b strings.Builder

	b.WriteString("+")
	for col := 0; col < m.grid.width; col++ {
		cell := m.grid.at(CellPosition{Row: 0, Col: col})
		if cell.NorthWall {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for row := 0; row < m.grid.height; row++ {
		first := m.grid.at(CellPosition{Row: row, Col: 0})
		if first.WestWall {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for col := 0; col < m.grid.width; col++ {
			cell := m.grid.at(CellPosition{Row: row, Col: col})
			b.WriteString("   ")
			if cell.EastWall {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < m.grid.width; col++ {
			cell := m.grid.at(CellPosition{Row: row, Col: col})
			if cell.SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Wall bits used by Snapshot cells.
const (
	wallNorthBit uint8 = 1 << iota
	wallSouthBit
	wallEastBit
	wallWestBit
)

// Snapshot is a flat, serializable view of a finalized maze: row-major
// wall bitmasks plus the boundary markers.
type Snapshot struct {
	Width    int
	Height   int
	Cells    []uint8
	Entrance BoundaryOpening
	Exit     BoundaryOpening
}

// Snapshot flattens the maze for persistence.
func (m *Maze) Snapshot() Snapshot {
	cells := make([]uint8, len(m.grid.cells))
	for i := range m.grid.cells {
		c := &m.grid.cells[i]
		var mask uint8
		if c.NorthWall {
			mask |= wallNorthBit
		}
		if c.SouthWall {
			mask |= wallSouthBit
		}
		if c.EastWall {
			mask |= wallEastBit
		}
		if c.WestWall {
			mask |= wallWestBit
		}
		cells[i] = mask
	}
	return Snapshot{
		Width:    m.grid.width,
		Height:   m.grid.height,
		Cells:    cells,
		Entrance: m.grid.entrance,
		Exit:     m.grid.exit,
	}
}

// FromSnapshot rebuilds a finalized maze from a snapshot, validating
// dimensions, wall consistency across every shared edge, and that both
// markers sit on the perimeter with their outward wall open. Corrupt or
// hand-rolled snapshots are rejected rather than revived.
func FromSnapshot(s Snapshot) (*Maze, error) {
	g, err := NewGrid(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if len(s.Cells) != s.Width*s.Height {
		return nil, fmt.Errorf("maze: snapshot has %d cells, want %d", len(s.Cells), s.Width*s.Height)
	}

	for i, mask := range s.Cells {
		g.cells[i] = Cell{
			NorthWall: mask&wallNorthBit != 0,
			SouthWall: mask&wallSouthBit != 0,
			EastWall:  mask&wallEastBit != 0,
			WestWall:  mask&wallWestBit != 0,
		}
	}

	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			p := CellPosition{Row: row, Col: col}
			for _, d := range [2]Direction{South, East} {
				n := p.Move(d)
				if !g.inBounds(n) {
					continue
				}
				if g.at(p).HasWall(d) != g.at(n).HasWall(d.Opposite()) {
					return nil, fmt.Errorf("maze: snapshot wall mismatch between (%d,%d) and (%d,%d)",
						p.Row, p.Col, n.Row, n.Col)
				}
			}
		}
	}

	for _, opening := range [2]BoundaryOpening{s.Entrance, s.Exit} {
		if opening.Side < North || opening.Side > West {
			return nil, fmt.Errorf("maze: snapshot marker side %d is not a direction", opening.Side)
		}
		if !g.inBounds(opening.Pos) || g.inBounds(opening.Pos.Move(opening.Side)) {
			return nil, fmt.Errorf("maze: snapshot marker %s of (%d,%d) is not on the perimeter",
				opening.Side, opening.Pos.Row, opening.Pos.Col)
		}
		if g.at(opening.Pos).HasWall(opening.Side) {
			return nil, fmt.Errorf("maze: snapshot marker %s of (%d,%d) is walled shut",
				opening.Side, opening.Pos.Row, opening.Pos.Col)
		}
	}

	g.entrance = s.Entrance
	g.exit = s.Exit
	g.state = stateFinalized
	return &Maze{grid: g}, nil
}
