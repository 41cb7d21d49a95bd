package maze

import "fmt"

// RandSource supplies the randomness for carving. *math/rand.Rand
// satisfies it; tests substitute scripted sources. All tie-breaking goes
// through the source, so a fixed source yields a fixed maze.
type RandSource interface {
	Intn(n int) int
}

// CarveDFS carves a perfect maze with the randomized depth-first
// ("recursive backtracker") algorithm, run over an explicit stack so
// large grids cannot exhaust the call stack.
//
// Starting from start, it repeatedly picks a random unvisited neighbor
// of the cell on top of the stack, opens the shared wall, and descends;
// when a cell has no unvisited neighbors it backtracks. Every cell is
// visited exactly once, so the opened passages form a spanning tree:
// width*height-1 edges, one simple path between any two cells.
func (g *Grid) CarveDFS(start CellPosition, r RandSource) error {
	if err := g.beginCarve(start); err != nil {
		return err
	}

	g.at(start).visited = true
	stack := make([]CellPosition, 0, g.width*g.height)
	stack = append(stack, start)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates := g.unvisitedNeighbors(current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[r.Intn(len(candidates))]
		next := current.Move(d)
		if err := g.openPassage(current, d); err != nil {
			return err
		}
		g.at(next).visited = true
		stack = append(stack, next)
	}

	g.state = stateCarved
	return nil
}

// CarveWilson carves a perfect maze with Wilson's algorithm: loop-erased
// random walks from unvisited cells into the growing tree. start seeds
// the tree. Slower than DFS but yields an unbiased uniform spanning
// tree; exposed as the "wilson" strategy.
func (g *Grid) CarveWilson(start CellPosition, r RandSource) error {
	if err := g.beginCarve(start); err != nil {
		return err
	}

	g.at(start).visited = true
	remaining := g.width*g.height - 1

	for remaining > 0 {
		walkStart := g.randomUnvisited(r)

		// Random walk until the tree is hit, remembering only the last
		// exit direction per cell. Revisiting a cell overwrites its
		// direction, which erases the loop.
		exits := make(map[CellPosition]Direction)
		pos := walkStart
		for !g.at(pos).visited {
			d := g.randomDirection(pos, r)
			exits[pos] = d
			pos = pos.Move(d)
		}

		// Commit the loop-erased path.
		for pos = walkStart; !g.at(pos).visited; {
			d := exits[pos]
			if err := g.openPassage(pos, d); err != nil {
				return err
			}
			g.at(pos).visited = true
			remaining--
			pos = pos.Move(d)
		}
	}

	g.state = stateCarved
	return nil
}

func (g *Grid) beginCarve(start CellPosition) error {
	if g.state != stateBuilding {
		if g.anyVisited() {
			return fmt.Errorf("%w: carve on %s grid", ErrAlreadyCarved, g.state)
		}
		return fmt.Errorf("%w: carve on %s grid", ErrInvalidState, g.state)
	}
	if !g.inBounds(start) {
		return fmt.Errorf("maze: start cell (%d,%d) out of bounds for %dx%d grid", start.Row, start.Col, g.width, g.height)
	}
	g.state = stateCarving
	return nil
}

// randomUnvisited draws grid positions from the source until one is
// unvisited. Callers guarantee at least one unvisited cell remains.
func (g *Grid) randomUnvisited(r RandSource) CellPosition {
	for {
		pos := CellPosition{Row: r.Intn(g.height), Col: r.Intn(g.width)}
		if !g.at(pos).visited {
			return pos
		}
	}
}

// randomDirection picks an in-bounds direction from pos.
func (g *Grid) randomDirection(pos CellPosition, r RandSource) Direction {
	var candidates []Direction
	for _, d := range orderedDirections {
		if g.inBounds(pos.Move(d)) {
			candidates = append(candidates, d)
		}
	}
	return candidates[r.Intn(len(candidates))]
}
