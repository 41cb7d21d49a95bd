package maze

// Direction identifies one of the four edges of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// orderedDirections fixes the neighbor enumeration order. Carving picks
// among candidates with the random source, so the order itself must be
// stable or a fixed seed would not reproduce the same maze.
var orderedDirections = [4]Direction{North, South, East, West}

var directionDeltas = [4]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// Opposite returns the direction pointing back at the caller, i.e. the
// side from which a neighbor sees the shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell in a maze grid. A freshly built cell has
// all four walls up; carving lowers them pairwise with its neighbors.
type Cell struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool

	// visited is only meaningful while carving is in progress.
	visited bool
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool { return c.NorthWall }

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool { return c.SouthWall }

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool { return c.EastWall }

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool { return c.WestWall }

// HasWall reports whether the wall on the given side is up.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	default:
		return c.WestWall
	}
}

func (c *Cell) setWall(d Direction, up bool) {
	switch d {
	case North:
		c.NorthWall = up
	case South:
		c.SouthWall = up
	case East:
		c.EastWall = up
	case West:
		c.WestWall = up
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int
	Col int
}

// Move returns the position one step in the given direction.
func (p CellPosition) Move(d Direction) CellPosition {
	delta := directionDeltas[d]
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// BoundaryOpening marks a perimeter cell whose outward-facing wall has
// been removed, forming the maze's entrance or exit.
type BoundaryOpening struct {
	Pos  CellPosition
	Side Direction
}
