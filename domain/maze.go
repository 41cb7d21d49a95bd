package domain

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

// MazeRecord is the BSON version of a generated maze for database
// storage: generation parameters plus the flattened wall grid. The wall
// flags, not the rendered image, are the source of truth; renderings
// are derived and cached elsewhere.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Algorithm string    `bson:"algorithm"`
	Seed      int64     `bson:"seed"`
	Cells     []byte    `bson:"cells"`
	Entrance  Opening   `bson:"entrance"`
	Exit      Opening   `bson:"exit"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Opening is the stored form of a boundary opening.
type Opening struct {
	Row  int `bson:"row"`
	Col  int `bson:"col"`
	Side int `bson:"side"`
}

// NewMazeRecord flattens a finalized maze into a storable record.
func NewMazeRecord(id uuid.UUID, algorithm string, seed int64, m *maze.Maze) *MazeRecord {
	s := m.Snapshot()
	return &MazeRecord{
		ID:        id,
		Width:     s.Width,
		Height:    s.Height,
		Algorithm: algorithm,
		Seed:      seed,
		Cells:     s.Cells,
		Entrance:  openingFrom(s.Entrance),
		Exit:      openingFrom(s.Exit),
		CreatedAt: time.Now().UTC(),
	}
}

// Maze revives the stored wall grid as an immutable maze. Records
// corrupted in storage fail validation here instead of reaching a
// renderer.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	return maze.FromSnapshot(maze.Snapshot{
		Width:    r.Width,
		Height:   r.Height,
		Cells:    r.Cells,
		Entrance: r.Entrance.boundaryOpening(),
		Exit:     r.Exit.boundaryOpening(),
	})
}

func openingFrom(b maze.BoundaryOpening) Opening {
	return Opening{Row: b.Pos.Row, Col: b.Pos.Col, Side: int(b.Side)}
}

func (o Opening) boundaryOpening() maze.BoundaryOpening {
	return maze.BoundaryOpening{
		Pos:  maze.CellPosition{Row: o.Row, Col: o.Col},
		Side: maze.Direction(o.Side),
	}
}
