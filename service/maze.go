package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

// DefaultMaxDimension caps requested maze sizes unless configured
// otherwise. Purely a service policy; the maze package itself only
// rejects non-positive dimensions.
const DefaultMaxDimension = 512

// ErrDimensionTooLarge is returned when a requested maze exceeds the
// configured dimension cap. A client error, like the maze package's
// own input sentinels.
var ErrDimensionTooLarge = errors.New("service: maze dimensions exceed the configured limit")

// Maze generates mazes, persists their wall grids and serves rendered
// images through the cache.
type Maze struct {
	repo         i.MazeRepo
	cache        i.RenderCache
	rasterizer   i.Rasterizer
	logger       *log.Logger
	maxDimension int

	// seedFn supplies seeds for requests that do not pin one.
	seedFn func() int64
}

// MazeConfig holds dependencies for the maze service.
type MazeConfig struct {
	Repo         i.MazeRepo
	Cache        i.RenderCache
	Rasterizer   i.Rasterizer
	Logger       *log.Logger
	MaxDimension int

	// SeedFn overrides how unseeded requests draw their seed. Nil means
	// the global math/rand source.
	SeedFn func() int64
}

// NewMaze creates the maze service.
func NewMaze(config MazeConfig) (*Maze, error) {
	if config.Repo == nil || config.Cache == nil || config.Rasterizer == nil {
		return nil, fmt.Errorf("service: maze service needs a repo, a cache and a rasterizer")
	}
	if config.MaxDimension <= 0 {
		config.MaxDimension = DefaultMaxDimension
	}
	if config.SeedFn == nil {
		config.SeedFn = rand.Int63
	}
	return &Maze{
		repo:         config.Repo,
		cache:        config.Cache,
		rasterizer:   config.Rasterizer,
		logger:       config.Logger,
		maxDimension: config.MaxDimension,
		seedFn:       config.SeedFn,
	}, nil
}

// Create generates, finalizes and persists a new maze. A nil seed draws
// a fresh one; either way the seed lands in the record, so the same
// maze can be regenerated bit for bit.
func (s *Maze) Create(width, height int, algorithm string, seed *int64) (*dmn.MazeRecord, error) {
	if width > s.maxDimension || height > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d with limit %d", ErrDimensionTooLarge, width, height, s.maxDimension)
	}

	usedSeed := s.seedFn()
	if seed != nil {
		usedSeed = *seed
	}

	m, err := maze.Generate(width, height, algorithm, rand.New(rand.NewSource(usedSeed)))
	if err != nil {
		return nil, err
	}

	record := dmn.NewMazeRecord(uuid.New(), algorithm, usedSeed, m)
	if err := s.repo.Save(record); err != nil {
		return nil, fmt.Errorf("service: storing maze %s: %w", record.ID, err)
	}

	if s.logger != nil {
		s.logger.Printf("generated %dx%d %s maze %s (seed %d)", width, height, algorithm, record.ID, usedSeed)
	}
	return record, nil
}

// ByID retrieves a stored maze record.
func (s *Maze) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(id)
}

// PNG returns the rendered PNG for a stored maze, rendering through the
// cache so repeated requests for the same maze hit Redis instead of the
// rasterizer.
func (s *Maze) PNG(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return s.cache.Get(ctx, id.String(), func() ([]byte, error) {
		record, err := s.repo.ByID(id)
		if err != nil {
			return nil, err
		}

		m, err := record.Maze()
		if err != nil {
			return nil, fmt.Errorf("service: reviving maze %s: %w", id, err)
		}

		var buf bytes.Buffer
		if err := s.rasterizer.Encode(m, &buf); err != nil {
			return nil, fmt.Errorf("service: rendering maze %s: %w", id, err)
		}
		return buf.Bytes(), nil
	})
}
