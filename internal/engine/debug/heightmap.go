package debug

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
)

// Heightmap renders a row-major grid of heights as grayscale, mapping the
// lowest sample to black and the highest to white. A flat field is mid-gray.
func Heightmap(heights []float64, cols, rows int) (*image.Gray, error) {
	if cols <= 0 || rows <= 0 || len(heights) != cols*rows {
		return nil, fmt.Errorf("heightmap: %d samples for %dx%d grid", len(heights), cols, rows)
	}

	lo, hi := floats.Min(heights), floats.Max(heights)
	span := hi - lo

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := uint8(128)
			if span > 0 {
				v = uint8((heights[row*cols+col]-lo)/span*255 + 0.5)
			}
			img.SetGray(col, row, color.Gray{Y: v})
		}
	}
	return img, nil
}
