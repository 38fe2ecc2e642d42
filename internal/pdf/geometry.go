package pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// anchorMargin is the distance in points between a corner anchor and the page edges.
const anchorMargin = 30

type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	Center      Position = "center"
)

// ParsePosition maps a request value onto one of the five named positions.
// Anything unrecognized resolves to Center.
func ParsePosition(s string) Position {
	switch p := Position(strings.ToLower(strings.TrimSpace(s))); p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return p
	default:
		return Center
	}
}

type Point struct {
	X, Y float64
}

// AnchorFor returns the page-space point watermark content is centered on.
// It ignores the size of the content itself.
func AnchorFor(pos Position, pageWidth, pageHeight float64) Point {
	switch pos {
	case TopLeft:
		return Point{anchorMargin, pageHeight - anchorMargin}
	case TopRight:
		return Point{pageWidth - anchorMargin, pageHeight - anchorMargin}
	case BottomLeft:
		return Point{anchorMargin, anchorMargin}
	case BottomRight:
		return Point{pageWidth - anchorMargin, anchorMargin}
	default:
		return Point{pageWidth / 2, pageHeight / 2}
	}
}

// RGB holds color channels normalized into [0,1].
type RGB struct {
	R, G, B float64
}

var black = RGB{}

// HexToRGB parses a 6 digit hex color with or without a leading '#'.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return RGB{
		R: float64((v>>16)&0xFF) / 255,
		G: float64((v>>8)&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}, nil
}

// Hex renders c as #RRGGBB, the form pdfcpu accepts in watermark descriptions.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
