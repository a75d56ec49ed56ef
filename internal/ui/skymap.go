package ui

import (
	"fmt"
	"io"

	"github.com/litescript/starfield/internal/catalog"
)

// WriteSkyMap renders the whole catalog once as a plain equirectangular
// text map (RA 0-360 across, Dec +90 to -90 down), for non-TTY output.
// Cells contested by several stars keep the brightest one.
func WriteSkyMap(w io.Writer, records []catalog.StarRecord, width, height int) {
	canvas := make([][]rune, height)
	mags := make([][]float64, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		mags[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			mags[y][x] = 99
		}
	}

	for _, star := range records {
		x, y := projectFlat(star.RADeg, star.DecDeg, width, height)
		if star.Mag >= mags[y][x] {
			continue
		}
		mags[y][x] = star.Mag
		canvas[y][x] = starGlyph(star.Mag)
	}

	for y := 0; y < height; y++ {
		fmt.Fprintln(w, string(canvas[y]))
	}
	fmt.Fprintf(w, "%d stars | RA 0-360° left to right, Dec +90° to -90° top to bottom\n", len(records))
}

// projectFlat maps RA/Dec onto the full canvas, clamping at the edges.
func projectFlat(raDeg, decDeg float64, width, height int) (int, int) {
	x := int(raDeg / 360 * float64(width))
	y := int((90 - decDeg) / 180 * float64(height))
	if x < 0 {
		x = 0
	}
	if x >= width {
		x = width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}
	return x, y
}
