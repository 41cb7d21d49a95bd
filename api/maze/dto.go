// Package mazeapi provides structures and utilities for maze generation requests and responses.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// CreateRequest represents a request to generate a new maze.
type CreateRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Algorithm string `json:"algorithm" binding:"required"`
	Seed      *int64 `json:"seed"`
}

// MazeResponse represents a stored maze without its wall grid.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Algorithm string    `json:"algorithm"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

func mazeResponseFrom(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID,
		Width:     record.Width,
		Height:    record.Height,
		Algorithm: record.Algorithm,
		Seed:      record.Seed,
		CreatedAt: record.CreatedAt,
	}
}
