package pdf

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultFontSize = 50
	DefaultOpacity  = 0.3
	DefaultScale    = 1.0
	DefaultColor    = "#808080"
	DefaultFont     = "Helvetica-Bold"
)

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseFontSize always yields a usable point size.
func ParseFontSize(s string) int {
	f, ok := parseFloat(s)
	if !ok || f < 1 {
		return DefaultFontSize
	}
	return int(math.Round(f))
}

// ParseRotation returns degrees normalized into [-180, 180]; invalid input means no rotation.
func ParseRotation(s string) float64 {
	f, ok := parseFloat(s)
	if !ok {
		return 0
	}
	f = math.Mod(f, 360)
	switch {
	case f > 180:
		f -= 360
	case f < -180:
		f += 360
	}
	return f
}

func ParseOpacity(s string) float64 {
	f, ok := parseFloat(s)
	if !ok {
		f = DefaultOpacity
	}
	return clampOpacity(f)
}

func clampOpacity(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func ParseScale(s string) float64 {
	f, ok := parseFloat(s)
	if !ok || f <= 0 {
		return DefaultScale
	}
	return f
}

// ParseBool accepts the usual form encodings of a checkbox.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

var coreFonts = map[string]bool{
	"Courier": true, "Courier-Bold": true, "Courier-Oblique": true, "Courier-BoldOblique": true,
	"Helvetica": true, "Helvetica-Bold": true, "Helvetica-Oblique": true, "Helvetica-BoldOblique": true,
	"Times-Roman": true, "Times-Bold": true, "Times-Italic": true, "Times-BoldItalic": true,
	"Symbol": true, "ZapfDingbats": true,
}

// ParseFont accepts one of the 14 standard PDF fonts and falls back to DefaultFont.
func ParseFont(s string) string {
	if s = strings.TrimSpace(s); coreFonts[s] {
		return s
	}
	return DefaultFont
}
