/*
Package raster renders finalized mazes to raster images.

Each cell becomes a square block of pixels with 1-pixel-wide walls drawn
along its closed edges: corridors white, walls black, the way the
classic maze printouts look. The renderer only reads the maze's
immutable wall flags and never mutates it.
*/
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/beka-birhanu/mazegen-api/maze"
)

// DefaultCellPixels is the edge length of one cell block, including the
// shared wall line.
const DefaultCellPixels = 10

// minCellPixels leaves at least a 2-pixel corridor between wall lines.
const minCellPixels = 3

var (
	wallColor     = color.Gray{Y: 0}
	corridorColor = color.Gray{Y: 255}
)

// PNG renders mazes as grayscale PNG images.
type PNG struct {
	cellPixels int
}

// NewPNG creates a renderer drawing each cell as a cellPixels-sized
// block. Values below 3 would leave no corridor to see.
func NewPNG(cellPixels int) (*PNG, error) {
	if cellPixels < minCellPixels {
		return nil, fmt.Errorf("raster: cell size %d below minimum %d", cellPixels, minCellPixels)
	}
	return &PNG{cellPixels: cellPixels}, nil
}

// Render draws the maze onto a fresh grayscale image. The image is
// width*cellPixels+1 by height*cellPixels+1 so the outermost wall lines
// have their own pixel row and column.
func (p *PNG) Render(m *maze.Maze) (*image.Gray, error) {
	px := p.cellPixels
	img := image.NewGray(image.Rect(0, 0, m.Width()*px+1, m.Height()*px+1))

	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			img.SetGray(x, y, corridorColor)
		}
	}

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			cell, err := m.CellAt(row, col)
			if err != nil {
				return nil, err
			}

			x0, y0 := col*px, row*px
			x1, y1 := x0+px, y0+px

			if cell.HasNorthWall() {
				p.hline(img, x0, x1, y0)
			}
			if cell.HasSouthWall() {
				p.hline(img, x0, x1, y1)
			}
			if cell.HasWestWall() {
				p.vline(img, x0, y0, y1)
			}
			if cell.HasEastWall() {
				p.vline(img, x1, y0, y1)
			}

			// Corner posts are always drawn so open edges still meet
			// clean junctions.
			img.SetGray(x0, y0, wallColor)
			img.SetGray(x1, y0, wallColor)
			img.SetGray(x0, y1, wallColor)
			img.SetGray(x1, y1, wallColor)
		}
	}

	return img, nil
}

// Encode renders the maze and writes it as PNG to w.
func (p *PNG) Encode(m *maze.Maze, w io.Writer) error {
	img, err := p.Render(m)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Save renders the maze and writes it as a PNG file at path. I/O errors
// from the filesystem propagate untouched.
func (p *PNG) Save(m *maze.Maze, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := p.Encode(m, f); err != nil {
		return err
	}
	return f.Close()
}

func (p *PNG) hline(img *image.Gray, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		img.SetGray(x, y, wallColor)
	}
}

func (p *PNG) vline(img *image.Gray, x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		img.SetGray(x, y, wallColor)
	}
}
