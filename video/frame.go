package video

import (
	"github.com/rasterlab/scanstream/pixel"
	"github.com/rasterlab/scanstream/sim"
)

// A Frame is one complete pass of the output signal as observed by the
// sink: border scanlines included, in element order.
type Frame struct {
	Geometry Geometry
	Index    uint64
	Elements []byte

	// Virtual times at which the sink retired the first and the last
	// element of the frame.
	Start, End sim.VTimeInSec
}

// Line returns the packed elements of scanline y, counted from the top of
// the frame (borders included).
func (f *Frame) Line(y int) []byte {
	epl := f.Geometry.ElementsPerLine()
	return f.Elements[y*epl : (y+1)*epl]
}

// PixelAt returns the color of the pixel at frame coordinates (x, y),
// borders included.
func (f *Frame) PixelAt(x, y int) pixel.Color {
	idx := y*f.Geometry.ResX + x
	elem := f.Elements[idx>>1]

	if idx&1 == 1 {
		return pixel.Color(elem >> 3 & 7)
	}

	return pixel.Color(elem & 7)
}
