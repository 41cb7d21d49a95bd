package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Carving algorithm selectors accepted by Generate.
const (
	AlgorithmDFS    = "dfs"
	AlgorithmWilson = "wilson"
)

// Generate builds, carves, bounds and finalizes a maze in one call.
//
// Carving starts from the top-left cell (0,0). The entrance opens the
// north wall of (0,0), the exit the south wall of the bottom-right
// cell. With the same dimensions, algorithm and random source state the
// result is identical, wall for wall. A nil source falls back to a
// time-seeded one, which is only appropriate when reproducibility does
// not matter.
func Generate(width, height int, algorithm string, r RandSource) (*Maze, error) {
	carve, err := carverFor(algorithm)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if err := carve(grid, CellPosition{Row: 0, Col: 0}, r); err != nil {
		return nil, err
	}
	if err := grid.OpenBoundaries(); err != nil {
		return nil, err
	}
	return grid.Finalize()
}

// carverFor resolves the algorithm selector before anything is
// allocated.
func carverFor(algorithm string) (func(*Grid, CellPosition, RandSource) error, error) {
	switch algorithm {
	case AlgorithmDFS:
		return (*Grid).CarveDFS, nil
	case AlgorithmWilson:
		return (*Grid).CarveWilson, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}
