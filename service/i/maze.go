package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

// MazeService generates mazes and serves their stored and rendered
// forms.
type MazeService interface {
	// Create generates, finalizes and persists a new maze. A nil seed
	// lets the service pick one; the used seed is recorded so the maze
	// can be regenerated bit for bit.
	Create(width, height int, algorithm string, seed *int64) (*dmn.MazeRecord, error)

	// ByID retrieves a stored maze record.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)

	// PNG returns the rendered PNG bytes for a stored maze.
	PNG(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// Rasterizer renders a finalized maze into an image stream.
type Rasterizer interface {
	// Encode writes the rendered maze to w.
	Encode(m *maze.Maze, w io.Writer) error
}

// RenderCache caches rendered maze images. Get returns the cached bytes
// for the key or, on a miss, invokes render, stores its result and
// returns it. Implementations may make render single-flight.
type RenderCache interface {
	Get(ctx context.Context, key string, render func() ([]byte, error)) ([]byte, error)
}
