// Package render turns grids, reconstructions and projections into PNG
// artifacts on disk.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/kozaktomas/eigenfaces/internal/pixels"
)

// MontageOptions control the tile layout of a montage.
type MontageOptions struct {
	Columns int // tiles per row
	Scale   int // integer upscale factor per tile
	Gap     int // spacing around and between tiles, in output pixels
}

// DefaultMontageOptions returns a layout that works for 52x52 grids.
func DefaultMontageOptions() MontageOptions {
	return MontageOptions{Columns: 5, Scale: 4, Gap: 4}
}

// Montage composes grids into a single grayscale image, left to right,
// top to bottom. Each tile is normalized to the full brightness range
// independently so component vectors with negative values render as
// proper eigenface images.
func Montage(grids []pixels.Grid, opts MontageOptions) (*image.Gray, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("no grids to render")
	}
	if opts.Columns < 1 || opts.Scale < 1 || opts.Gap < 0 {
		return nil, fmt.Errorf("invalid montage options %+v", opts)
	}

	rows, cols := grids[0].Rows, grids[0].Cols
	for i, g := range grids {
		if g.Rows != rows || g.Cols != cols {
			return nil, fmt.Errorf("grid %d shape %dx%d does not match %dx%d", i, g.Rows, g.Cols, rows, cols)
		}
	}

	tileW := cols * opts.Scale
	tileH := rows * opts.Scale
	gridCols := opts.Columns
	gridRows := (len(grids) + gridCols - 1) / gridCols

	width := opts.Gap + gridCols*(tileW+opts.Gap)
	height := opts.Gap + gridRows*(tileH+opts.Gap)

	canvas := image.NewGray(image.Rect(0, 0, width, height))
	// Mid-gray background keeps tile borders visible for both dark and
	// light faces.
	for i := range canvas.Pix {
		canvas.Pix[i] = 32
	}

	for i, g := range grids {
		tile := grayTile(g)
		x := opts.Gap + (i%gridCols)*(tileW+opts.Gap)
		y := opts.Gap + (i/gridCols)*(tileH+opts.Gap)
		dst := image.Rect(x, y, x+tileW, y+tileH)
		draw.NearestNeighbor.Scale(canvas, dst, tile, tile.Bounds(), draw.Src, nil)
	}

	return canvas, nil
}

// grayTile converts a grid into an 8-bit grayscale image, stretching
// the grid's own value range to 0-255.
func grayTile(g pixels.Grid) *image.Gray {
	lo, hi := g.Pix[0], g.Pix[0]
	for _, v := range g.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := g.At(r, c)
			var level uint8
			if hi > lo {
				level = uint8((v - lo) / (hi - lo) * 255)
			} else {
				level = 128 // flat grid
			}
			img.SetGray(c, r, color.Gray{Y: level})
		}
	}
	return img
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
