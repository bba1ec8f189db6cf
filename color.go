package qrstyle

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// ParseColor parses a 3, 6 or 8 hex digit color string with optional leading
// '#'. The 3-digit form expands each nibble by replication (0xF -> 0xFF).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	parse := func(sub string) (uint8, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return uint8(v), nil
	}

	switch len(hex) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := parse(hex[i : i+1])
			if err != nil {
				return Color{}, err
			}
			c[i] = v * 17
		}
		return RGB(c[0], c[1], c[2]), nil
	case 6, 8:
		var c [4]uint8
		c[3] = 255
		for i := 0; i < len(hex)/2; i++ {
			v, err := parse(hex[2*i : 2*i+2])
			if err != nil {
				return Color{}, err
			}
			c[i] = v
		}
		return RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Hex returns the color as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBAString returns the color as a CSS rgb()/rgba() value.
func (c Color) RGBAString() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func (c Color) String() string { return c.Hex() }
