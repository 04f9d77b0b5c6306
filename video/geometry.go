// Package video models the analog output side of the pipeline: the frame
// geometry, the element wire protocol, the paced sink, and the external
// timing generator.
package video

import "log"

// Geometry is the fixed configuration surface of the output signal. The
// active region is ResX by ActiveLines; BorderTop and BorderBottom
// constant-color scanlines surround it.
type Geometry struct {
	ResX         int
	ActiveLines  int
	BorderTop    int
	BorderBottom int
}

// SCART is the reference geometry: a 320x240 active region inside a
// 304-line frame.
var SCART = Geometry{
	ResX:         320,
	ActiveLines:  240,
	BorderTop:    42,
	BorderBottom: 22,
}

// MustValidate panics if the geometry cannot be streamed.
func (g Geometry) MustValidate() {
	if g.ResX <= 0 || g.ResX%2 != 0 {
		log.Panicf("ResX must be positive and even, got %d", g.ResX)
	}

	if g.ActiveLines <= 0 {
		log.Panicf("ActiveLines must be positive, got %d", g.ActiveLines)
	}

	if g.BorderTop < 0 || g.BorderBottom < 0 {
		log.Panic("border line counts cannot be negative")
	}
}

// TotalLines returns the number of scanlines in one frame.
func (g Geometry) TotalLines() int {
	return g.BorderTop + g.ActiveLines + g.BorderBottom
}

// ElementsPerLine returns the number of transferred elements per scanline.
// Two pixels pack into each element.
func (g Geometry) ElementsPerLine() int {
	return g.ResX / 2
}

// TopElements returns the element count of the top border segment.
func (g Geometry) TopElements() int {
	return g.BorderTop * g.ElementsPerLine()
}

// ActiveElements returns the element count of the active region segment.
func (g Geometry) ActiveElements() int {
	return g.ActiveLines * g.ElementsPerLine()
}

// BottomElements returns the element count of the bottom border segment.
func (g Geometry) BottomElements() int {
	return g.BorderBottom * g.ElementsPerLine()
}

// ElementsPerFrame returns the total number of elements in one frame. It
// always equals the sum of the three segment counts.
func (g Geometry) ElementsPerFrame() int {
	return g.TotalLines() * g.ElementsPerLine()
}
