package pixel

import "log"

// A Store owns the packed pixel buffer for the active region of the output.
// Each byte holds two horizontally adjacent pixels: the pixel at an even
// linear index occupies bits 0-2, the pixel at the following odd index
// occupies bits 3-5.
//
// The buffer is allocated once, starts all black, and is read by the
// transfer pipeline while application code keeps writing to it. There is no
// locking. The race is benign: writes merge color bits with OR, so a
// concurrent reader can observe a stale color but never a value outside the
// 3-bit range.
type Store struct {
	resX, resY int
	data       []byte
}

// NewStore creates a zero-initialized store for a resX by resY active
// region. resX must be even since two pixels pack into one element.
func NewStore(resX, resY int) *Store {
	if resX <= 0 || resY <= 0 {
		log.Panic("store dimensions must be positive")
	}

	if resX%2 != 0 {
		log.Panic("store width must be even")
	}

	return &Store{
		resX: resX,
		resY: resY,
		data: make([]byte, resX/2*resY),
	}
}

// ResX returns the width of the active region in pixels.
func (s *Store) ResX() int {
	return s.resX
}

// ResY returns the height of the active region in scanlines.
func (s *Store) ResY() int {
	return s.resY
}

// WritePixel merges color into the pixel at (x, y). Coordinates outside the
// store are clamped to the nearest edge, on both axes to [0, size-1].
// The write is an OR: painting a pixel twice yields the union of the color
// bits, not the last color.
func (s *Store) WritePixel(x, y int, color Color) {
	if x < 0 {
		x = 0
	}
	if x > s.resX-1 {
		x = s.resX - 1
	}
	if y < 0 {
		y = 0
	}
	if y > s.resY-1 {
		y = s.resY - 1
	}

	idx := y*s.resX + x
	if idx&1 == 1 {
		s.data[idx>>1] |= byte(color&7) << 3
	} else {
		s.data[idx>>1] |= byte(color & 7)
	}
}

// Raw returns the backing buffer. The transfer pipeline streams these bytes
// directly; callers must not resize or reslice it.
func (s *Store) Raw() []byte {
	return s.data
}
