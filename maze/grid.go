package maze

import "fmt"

// state tracks the grid through its lifecycle. Transitions only move
// forward: building -> carving -> carved -> bounded -> finalized.
type state int

const (
	stateBuilding state = iota
	stateCarving
	stateCarved
	stateBounded
	stateFinalized
)

func (s state) String() string {
	switch s {
	case stateBuilding:
		return "building"
	case stateCarving:
		return "carving"
	case stateCarved:
		return "carved"
	case stateBounded:
		return "bounded"
	case stateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size rectangular array of cells. It owns every cell
// exclusively; all mutation goes through bounds-checked methods so the
// wall flags of adjacent cells can never disagree.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major: cells[row*width+col]
	state  state

	entrance BoundaryOpening
	exit     BoundaryOpening
}

// NewGrid allocates a fully walled, unvisited grid. Every adjacency is
// closed: the passage graph starts with zero edges.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{
			NorthWall: true,
			SouthWall: true,
			EastWall:  true,
			WestWall:  true,
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		state:  stateBuilding,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(p CellPosition) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// at returns the cell at p. Callers must have bounds-checked p.
func (g *Grid) at(p CellPosition) *Cell {
	return &g.cells[p.Row*g.width+p.Col]
}

// CellAt returns a copy of the cell at (row, col).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	p := CellPosition{Row: row, Col: col}
	if !g.inBounds(p) {
		return Cell{}, fmt.Errorf("maze: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.width, g.height)
	}
	return *g.at(p), nil
}

// unvisitedNeighbors collects the grid-adjacent neighbors of p that have
// not been visited yet, in the fixed direction order.
func (g *Grid) unvisitedNeighbors(p CellPosition) []Direction {
	var result []Direction
	for _, d := range orderedDirections {
		n := p.Move(d)
		if g.inBounds(n) && !g.at(n).visited {
			result = append(result, d)
		}
	}
	return result
}

// openPassage removes the wall between p and its neighbor in direction d,
// updating both cells so the shared edge stays consistent.
func (g *Grid) openPassage(p CellPosition, d Direction) error {
	n := p.Move(d)
	if !g.inBounds(p) || !g.inBounds(n) {
		return fmt.Errorf("maze: no adjacency %s of (%d,%d)", d, p.Row, p.Col)
	}
	g.at(p).setWall(d, false)
	g.at(n).setWall(d.Opposite(), false)
	return nil
}

// openToOutside removes the outward-facing wall of a perimeter cell. The
// step in direction d must leave the grid, otherwise the "opening" would
// be an internal passage and corrupt the spanning tree.
func (g *Grid) openToOutside(p CellPosition, d Direction) error {
	if !g.inBounds(p) {
		return fmt.Errorf("maze: cell (%d,%d) out of bounds for %dx%d grid", p.Row, p.Col, g.width, g.height)
	}
	if g.inBounds(p.Move(d)) {
		return fmt.Errorf("maze: %s of (%d,%d) is not the outer boundary", d, p.Row, p.Col)
	}
	g.at(p).setWall(d, false)
	return nil
}

func (g *Grid) anyVisited() bool {
	for i := range g.cells {
		if g.cells[i].visited {
			return true
		}
	}
	return false
}

// OpenBoundaries punches the entrance and exit through the outer
// perimeter of a carved grid. Policy: the entrance is the north wall of
// the top-left cell, the exit the south wall of the bottom-right cell,
// matching the canonical renderer's expectations. On a 1x1 grid both
// land on the same cell but keep opposite sides.
func (g *Grid) OpenBoundaries() error {
	if g.state != stateCarved {
		return fmt.Errorf("%w: open boundaries on %s grid", ErrInvalidState, g.state)
	}

	entrance := BoundaryOpening{Pos: CellPosition{Row: 0, Col: 0}, Side: North}
	exit := BoundaryOpening{Pos: CellPosition{Row: g.height - 1, Col: g.width - 1}, Side: South}

	if err := g.openToOutside(entrance.Pos, entrance.Side); err != nil {
		return err
	}
	if err := g.openToOutside(exit.Pos, exit.Side); err != nil {
		return err
	}

	g.entrance = entrance
	g.exit = exit
	g.state = stateBounded
	return nil
}

// Finalize seals a bounded grid into an immutable Maze. After this the
// grid accepts no further mutation and the maze is safe to share.
func (g *Grid) Finalize() (*Maze, error) {
	if g.state != stateBounded {
		return nil, fmt.Errorf("%w: finalize %s grid", ErrInvalidState, g.state)
	}
	g.state = stateFinalized
	return &Maze{grid: g}, nil
}
