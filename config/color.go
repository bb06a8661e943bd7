package config

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdefABCDEF"

// ParseHexColor parses a hex color string (e.g., "#ff8c00") into RGB values.
// The leading # is optional. Returns r, g, b values and true if valid, or
// 0, 0, 0 and false if invalid.
func ParseHexColor(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 || strings.Trim(hex, hexDigits) != "" {
		return 0, 0, 0, false
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8), true
}

// NormalizeHexColor returns hex in the canonical "#RRGGBB" form.
func NormalizeHexColor(hex string) (string, bool) {
	r, g, b, ok := ParseHexColor(hex)
	if !ok {
		return "", false
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return strings.ToUpper(c.Hex()), true
}
