// Package pixel provides the packed-pixel store that feeds the streaming
// pipeline.
package pixel

// A Color is a 3-bit RGB value. Bit 0 is red, bit 1 is green, bit 2 is blue.
type Color uint8

// The 8 colors that the 3-bit signal path can produce.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Palette lists all colors in value order.
var Palette = [8]Color{
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	}

	return "invalid"
}
