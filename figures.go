package qrstyle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Neighborhood reports the dark/light state of modules around the one being
// drawn. dx runs right, dy runs down; (0,0) is the module itself. A nil
// Neighborhood means the module is treated as fully isolated. Both the real
// matrix and the synthesized circular edge grid satisfy this, so the shape
// logic below never sees a concrete grid.
type Neighborhood interface {
	Dark(dx, dy int) bool
}

// fnum formats a coordinate without trailing zeros, matching hand-written SVG.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rotateTransform builds a rotate(deg,cx,cy) transform about the shape's own
// center, or "" for a zero rotation so square shapes stay free of transform
// attribute noise.
func rotateTransform(x, y, size, rotation float64) string {
	if math.Abs(rotation) < 1e-4 {
		return ""
	}
	cx := x + size/2
	cy := y + size/2
	// Snap to 4 decimals so right-angle rotations print as whole degrees.
	deg := math.Round(180*rotation/math.Pi*1e4) / 1e4
	return fmt.Sprintf("rotate(%s,%s,%s)", fnum(deg), fnum(cx), fnum(cy))
}

func svgCircle(cx, cy, r float64, transform string) string {
	if transform != "" {
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" transform="%s"/>`,
			fnum(cx), fnum(cy), fnum(r), transform)
	}
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"/>`, fnum(cx), fnum(cy), fnum(r))
}

func svgRect(x, y, width, height float64, transform string) string {
	if transform != "" {
		return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" transform="%s"/>`,
			fnum(x), fnum(y), fnum(width), fnum(height), transform)
	}
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"/>`,
		fnum(x), fnum(y), fnum(width), fnum(height))
}

func svgPath(d, clipRule, transform string) string {
	var b strings.Builder
	b.WriteString(`<path d="`)
	b.WriteString(d)
	b.WriteString(`"`)
	if clipRule != "" {
		fmt.Fprintf(&b, ` clip-rule="%s"`, clipRule)
	}
	if transform != "" {
		fmt.Fprintf(&b, ` transform="%s"`, transform)
	}
	b.WriteString("/>")
	return b.String()
}

// dotDrawer draws one module shape per call. The neighbor-sensitive types
// inspect the four adjacent modules through the Neighborhood capability.
type dotDrawer struct {
	typ DotType
}

func (d dotDrawer) draw(x, y, size float64, n Neighborhood) string {
	switch d.typ {
	case DotDots:
		return d.basicDot(x, y, size, 0)
	case DotRounded:
		return d.drawRounded(x, y, size, n)
	case DotExtraRounded:
		return d.drawExtraRounded(x, y, size, n)
	case DotClassy:
		return d.drawClassy(x, y, size, n)
	case DotClassyRounded:
		return d.drawClassyRounded(x, y, size, n)
	default:
		return d.basicSquare(x, y, size, 0)
	}
}

func (dotDrawer) basicDot(x, y, size, rotation float64) string {
	return svgCircle(x+size/2, y+size/2, size/2, rotateTransform(x, y, size, rotation))
}

func (dotDrawer) basicSquare(x, y, size, rotation float64) string {
	return svgRect(x, y, size, size, rotateTransform(x, y, size, rotation))
}

// basicSideRounded rounds the right side at rotation 0.
func (dotDrawer) basicSideRounded(x, y, size, rotation float64) string {
	half := size / 2
	d := fmt.Sprintf("M %s %s v %s h %s a %s %s 0 0 0 0 %s",
		fnum(x), fnum(y), fnum(size), fnum(half), fnum(half), fnum(half), fnum(-size))
	return svgPath(d, "", rotateTransform(x, y, size, rotation))
}

// basicCornerRounded rounds the top-right corner at rotation 0.
func (dotDrawer) basicCornerRounded(x, y, size, rotation float64) string {
	half := size / 2
	d := fmt.Sprintf("M %s %s v %s h %s v %s a %s %s 0 0 0 %s %s",
		fnum(x), fnum(y), fnum(size), fnum(size), fnum(-half),
		fnum(half), fnum(half), fnum(-half), fnum(-half))
	return svgPath(d, "", rotateTransform(x, y, size, rotation))
}

// basicCornerExtraRounded rounds the top-right corner with a full-size radius.
func (dotDrawer) basicCornerExtraRounded(x, y, size, rotation float64) string {
	d := fmt.Sprintf("M %s %s v %s h %s a %s %s 0 0 0 %s %s",
		fnum(x), fnum(y), fnum(size), fnum(size),
		fnum(size), fnum(size), fnum(-size), fnum(-size))
	return svgPath(d, "", rotateTransform(x, y, size, rotation))
}

// basicCornersRounded rounds the bottom-left and top-right corners.
func (dotDrawer) basicCornersRounded(x, y, size, rotation float64) string {
	half := size / 2
	d := fmt.Sprintf("M %s %s v %s a %s %s 0 0 0 %s %s h %s v %s a %s %s 0 0 0 %s %s",
		fnum(x), fnum(y), fnum(half),
		fnum(half), fnum(half), fnum(half), fnum(half),
		fnum(half), fnum(-half),
		fnum(half), fnum(half), fnum(-half), fnum(-half))
	return svgPath(d, "", rotateTransform(x, y, size, rotation))
}

func neighborBits(n Neighborhood) (left, right, top, bottom bool) {
	if n == nil {
		return false, false, false, false
	}
	return n.Dark(-1, 0), n.Dark(1, 0), n.Dark(0, -1), n.Dark(0, 1)
}

func countBits(bits ...bool) int {
	c := 0
	for _, b := range bits {
		if b {
			c++
		}
	}
	return c
}

// adjacentPairRotation maps which adjacent neighbor pair is occupied to the
// rotation of a shape whose rounded corner must face away from the pair.
func adjacentPairRotation(left, right, top, bottom bool) float64 {
	switch {
	case left && top:
		return math.Pi / 2
	case top && right:
		return math.Pi
	case right && bottom:
		return -math.Pi / 2
	default:
		return 0
	}
}

// singleNeighborRotation maps the one occupied side to the rotation whose
// rounded side faces away from it.
func singleNeighborRotation(top, right, bottom bool) float64 {
	switch {
	case top:
		return math.Pi / 2
	case right:
		return math.Pi
	case bottom:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (d dotDrawer) drawRounded(x, y, size float64, n Neighborhood) string {
	left, right, top, bottom := neighborBits(n)
	count := countBits(left, right, top, bottom)

	if count == 0 {
		return d.basicDot(x, y, size, 0)
	}
	if count > 2 || (left && right) || (top && bottom) {
		return d.basicSquare(x, y, size, 0)
	}
	if count == 2 {
		return d.basicCornerRounded(x, y, size, adjacentPairRotation(left, right, top, bottom))
	}
	return d.basicSideRounded(x, y, size, singleNeighborRotation(top, right, bottom))
}

func (d dotDrawer) drawExtraRounded(x, y, size float64, n Neighborhood) string {
	left, right, top, bottom := neighborBits(n)
	count := countBits(left, right, top, bottom)

	if count == 0 {
		return d.basicDot(x, y, size, 0)
	}
	if count > 2 || (left && right) || (top && bottom) {
		return d.basicSquare(x, y, size, 0)
	}
	if count == 2 {
		return d.basicCornerExtraRounded(x, y, size, adjacentPairRotation(left, right, top, bottom))
	}
	return d.basicSideRounded(x, y, size, singleNeighborRotation(top, right, bottom))
}

func (d dotDrawer) drawClassy(x, y, size float64, n Neighborhood) string {
	left, right, top, bottom := neighborBits(n)

	if countBits(left, right, top, bottom) == 0 {
		return d.basicCornersRounded(x, y, size, math.Pi/2)
	}
	if !left && !top {
		return d.basicCornerRounded(x, y, size, -math.Pi/2)
	}
	if !right && !bottom {
		return d.basicCornerRounded(x, y, size, math.Pi/2)
	}
	return d.basicSquare(x, y, size, 0)
}

func (d dotDrawer) drawClassyRounded(x, y, size float64, n Neighborhood) string {
	left, right, top, bottom := neighborBits(n)

	if countBits(left, right, top, bottom) == 0 {
		return d.basicCornersRounded(x, y, size, math.Pi/2)
	}
	if !left && !top {
		return d.basicCornerExtraRounded(x, y, size, -math.Pi/2)
	}
	if !right && !bottom {
		return d.basicCornerExtraRounded(x, y, size, math.Pi/2)
	}
	return d.basicSquare(x, y, size, 0)
}

// cornerSquareDrawer draws the 7x7 finder ornament. The rotation encodes
// which of the three finder corners the shape occupies, not any neighbor
// state: these shapes are fixed parametric paths.
type cornerSquareDrawer struct {
	typ CornerSquareType
}

func (c cornerSquareDrawer) draw(x, y, size, rotation float64) string {
	switch c.typ {
	case CornerSquareDot:
		return c.basicDot(x, y, size, rotation)
	case CornerSquareExtraRounded:
		return c.basicExtraRounded(x, y, size, rotation)
	default:
		return c.basicSquare(x, y, size, rotation)
	}
}

// basicDot draws a ring: two concentric circles joined with the evenodd rule.
func (cornerSquareDrawer) basicDot(x, y, size, rotation float64) string {
	dotSize := size / 7
	half := size / 2
	innerRadius := half - dotSize

	d := fmt.Sprintf("M %s %s a %s %s 0 1 0 0.1 0 z m 0 %s a %s %s 0 1 1 -0.1 0 Z",
		fnum(x+half), fnum(y),
		fnum(half), fnum(half),
		fnum(dotSize),
		fnum(innerRadius), fnum(innerRadius))
	return svgPath(d, "evenodd", rotateTransform(x, y, size, rotation))
}

// basicSquare draws a hollow square, one module thick.
func (cornerSquareDrawer) basicSquare(x, y, size, rotation float64) string {
	dotSize := size / 7
	inner := size - 2*dotSize

	d := fmt.Sprintf("M %s %s v %s h %s v %s z M %s %s h %s v %s h %s z",
		fnum(x), fnum(y),
		fnum(size), fnum(size), fnum(-size),
		fnum(x+dotSize), fnum(y+dotSize),
		fnum(inner), fnum(inner), fnum(-inner))
	return svgPath(d, "evenodd", rotateTransform(x, y, size, rotation))
}

func (cornerSquareDrawer) basicExtraRounded(x, y, size, rotation float64) string {
	dotSize := size / 7

	outer := fmt.Sprintf(
		"M %s %s v %s a %s %s 0 0 0 %s %s h %s a %s %s 0 0 0 %s %s v %s a %s %s 0 0 0 %s %s h %s a %s %s 0 0 0 %s %s",
		fnum(x), fnum(y+2.5*dotSize),
		fnum(2*dotSize),
		fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(2.5*dotSize),
		fnum(2*dotSize),
		fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(-2.5*dotSize),
		fnum(-2*dotSize),
		fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(-2.5*dotSize), fnum(-2.5*dotSize),
		fnum(-2*dotSize),
		fnum(2.5*dotSize), fnum(2.5*dotSize), fnum(-2.5*dotSize), fnum(2.5*dotSize))

	inner := fmt.Sprintf(
		"M %s %s h %s a %s %s 0 0 1 %s %s v %s a %s %s 0 0 1 %s %s h %s a %s %s 0 0 1 %s %s v %s a %s %s 0 0 1 %s %s",
		fnum(x+2.5*dotSize), fnum(y+dotSize),
		fnum(2*dotSize),
		fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(1.5*dotSize),
		fnum(2*dotSize),
		fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(-1.5*dotSize), fnum(1.5*dotSize),
		fnum(-2*dotSize),
		fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(-1.5*dotSize), fnum(-1.5*dotSize),
		fnum(-2*dotSize),
		fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(1.5*dotSize), fnum(-1.5*dotSize))

	return svgPath(outer+" "+inner, "evenodd", rotateTransform(x, y, size, rotation))
}

// cornerDotDrawer draws the 3x3 finder center.
type cornerDotDrawer struct {
	typ CornerDotType
}

func (c cornerDotDrawer) draw(x, y, size, rotation float64) string {
	if c.typ == CornerDotSquare {
		return svgRect(x, y, size, size, rotateTransform(x, y, size, rotation))
	}
	return svgCircle(x+size/2, y+size/2, size/2, rotateTransform(x, y, size, rotation))
}
