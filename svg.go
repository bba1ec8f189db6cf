package qrstyle

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"
	"sync/atomic"

	_ "golang.org/x/image/webp"
)

// renderSeq hands every composer a distinct id so def names stay unique when
// several rendered documents end up inlined in one page.
var renderSeq atomic.Uint64

// svgComposer assembles one SVG document from a matrix and a style. Each
// composer owns an instance id; all clip-path and gradient names carry it.
type svgComposer struct {
	opts *Options
	id   uint64
}

func newSVGComposer(opts *Options) *svgComposer {
	return &svgComposer{opts: opts, id: renderSeq.Add(1)}
}

// gridNeighborhood adapts an arbitrary dark predicate over a square grid to
// the Neighborhood capability the shape drawers consume.
type gridNeighborhood struct {
	row, col, count int
	dark            func(row, col int) bool
}

func (g gridNeighborhood) Dark(dx, dy int) bool {
	r, c := g.row+dy, g.col+dx
	if r < 0 || c < 0 || r >= g.count || c >= g.count {
		return false
	}
	return g.dark(r, c)
}

func (c *svgComposer) roundSize(v float64) float64 {
	if c.opts.Dots.RoundSize {
		return math.Floor(v)
	}
	return v
}

// compose renders the complete document.
func (c *svgComposer) compose(matrix *Matrix) string {
	count := matrix.Size()
	minSize := float64(min(c.opts.Width, c.opts.Height) - 2*c.opts.Margin)
	realSize := minSize
	if c.opts.Shape == ShapeCircle {
		realSize = minSize / math.Sqrt2
	}
	dotSize := c.roundSize(realSize / float64(count))

	var hideX, hideY int
	if len(c.opts.Image) > 0 {
		hideX, hideY = c.imageHideArea(count, dotSize)
	}

	var defs, elements strings.Builder

	bgDefs, bgElements := c.renderBackground()
	defs.WriteString(bgDefs)
	elements.WriteString(bgElements)

	dotDefs, dotElements := c.renderDots(matrix, count, dotSize, hideX, hideY)
	defs.WriteString(dotDefs)
	elements.WriteString(dotElements)

	cornerDefs, cornerElements := c.renderCorners(count, dotSize)
	defs.WriteString(cornerDefs)
	elements.WriteString(cornerElements)

	if len(c.opts.Image) > 0 {
		elements.WriteString(c.renderImage(count, dotSize, hideX, hideY))
	}

	shapeRendering := ""
	if c.opts.Dots.RoundSize {
		shapeRendering = ` shape-rendering="crispEdges"`
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d"%s>
<defs>
%s
</defs>
%s
</svg>`,
		c.opts.Width, c.opts.Height, c.opts.Width, c.opts.Height,
		shapeRendering, defs.String(), elements.String())
}

func (c *svgComposer) renderBackground() (string, string) {
	bg := &c.opts.Background
	name := fmt.Sprintf("background-color-%d", c.id)

	width, height := c.opts.Width, c.opts.Height
	if bg.Round > 0 {
		size := min(width, height)
		width, height = size, size
	}
	x := c.roundSize(float64(c.opts.Width-width) / 2)
	y := c.roundSize(float64(c.opts.Height-height) / 2)

	rx := 0.0
	if bg.Round > 0 {
		rx = float64(height) / 2 * bg.Round
	}
	rxAttr := ""
	if rx > 0 {
		rxAttr = fmt.Sprintf(` rx="%s"`, fnum(rx))
	}

	var defs strings.Builder
	fmt.Fprintf(&defs,
		"<clipPath id=\"clip-path-%s\"><rect x=\"%s\" y=\"%s\" width=\"%d\" height=\"%d\"%s/></clipPath>\n",
		name, fnum(x), fnum(y), width, height, rxAttr)

	gradDefs, fill := c.createColor(bg.Gradient, bg.Color, 0,
		0, 0, float64(c.opts.Height), float64(c.opts.Width), name)
	defs.WriteString(gradDefs)

	elements := fmt.Sprintf(
		"<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"%s\" clip-path=\"url(#clip-path-%s)\"/>\n",
		c.opts.Width, c.opts.Height, fill, name)

	return defs.String(), elements
}

func (c *svgComposer) renderDots(matrix *Matrix, count int, dotSize float64, hideX, hideY int) (string, string) {
	xBeg := c.roundSize((float64(c.opts.Width) - float64(count)*dotSize) / 2)
	yBeg := c.roundSize((float64(c.opts.Height) - float64(count)*dotSize) / 2)

	drawer := dotDrawer{typ: c.opts.Dots.Type}
	name := fmt.Sprintf("dot-color-%d", c.id)

	visible := func(row, col int) bool {
		return c.shouldDrawDot(matrix, row, col, hideX, hideY) && matrix.IsDark(row, col)
	}

	var clipContent strings.Builder
	for row := 0; row < count; row++ {
		for col := 0; col < count; col++ {
			if !visible(row, col) {
				continue
			}
			x := xBeg + float64(col)*dotSize
			y := yBeg + float64(row)*dotSize
			n := gridNeighborhood{row: row, col: col, count: count, dark: visible}
			clipContent.WriteString(drawer.draw(x, y, dotSize, n))
			clipContent.WriteByte('\n')
		}
	}

	if c.opts.Shape == ShapeCircle {
		clipContent.WriteString(c.renderCircleEdgeDots(matrix, count, dotSize, xBeg, yBeg, drawer))
	}

	var defs strings.Builder
	fmt.Fprintf(&defs, "<clipPath id=\"clip-path-%s\">\n%s</clipPath>\n", name, clipContent.String())

	gradDefs, fill := c.createColor(c.opts.Dots.Gradient, c.opts.Dots.Color, 0,
		0, 0, float64(c.opts.Height), float64(c.opts.Width), name)
	defs.WriteString(gradDefs)

	elements := fmt.Sprintf(
		"<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"%s\" clip-path=\"url(#clip-path-%s)\"/>\n",
		c.opts.Width, c.opts.Height, fill, name)

	return defs.String(), elements
}

// renderCircleEdgeDots fills the ring between the inscribed code and the
// enclosing circle with modules copied from the matrix edges, so the circular
// shape reads as a continuation of the code rather than a hard cutoff.
func (c *svgComposer) renderCircleEdgeDots(matrix *Matrix, count int, dotSize, xBeg, yBeg float64, drawer dotDrawer) string {
	minSize := float64(min(c.opts.Width, c.opts.Height) - 2*c.opts.Margin)
	additional := int(c.roundSize((minSize/dotSize - float64(count)) / 2))
	if additional < 0 {
		additional = 0
	}
	fakeCount := count + 2*additional
	xFakeBeg := xBeg - float64(additional)*dotSize
	yFakeBeg := yBeg - float64(additional)*dotSize
	center := float64(fakeCount) / 2

	innerLow := additional - 1
	if innerLow < 0 {
		innerLow = 0
	}
	innerHigh := fakeCount - additional

	fake := make([][]bool, fakeCount)
	for i := range fake {
		fake[i] = make([]bool, fakeCount)
	}

	for row := 0; row < fakeCount; row++ {
		for col := 0; col < fakeCount; col++ {
			if row >= innerLow && row <= innerHigh && col >= innerLow && col <= innerHigh {
				continue
			}
			dist := math.Hypot(float64(row)-center, float64(col)-center)
			if dist > center {
				continue
			}

			// Sample the matrix edges for organic-looking filler.
			sourceCol := col - additional
			if col < 2*additional {
				sourceCol = col
			} else if col >= count {
				sourceCol = col - 2*additional
			}
			sourceRow := row - additional
			if row < 2*additional {
				sourceRow = row
			} else if row >= count {
				sourceRow = row - 2*additional
			}

			if sourceRow >= 0 && sourceRow < count && sourceCol >= 0 && sourceCol < count &&
				matrix.IsDark(sourceRow, sourceCol) {
				fake[row][col] = true
			}
		}
	}

	dark := func(row, col int) bool { return fake[row][col] }

	var out strings.Builder
	for row := 0; row < fakeCount; row++ {
		for col := 0; col < fakeCount; col++ {
			if !fake[row][col] {
				continue
			}
			x := xFakeBeg + float64(col)*dotSize
			y := yFakeBeg + float64(row)*dotSize
			n := gridNeighborhood{row: row, col: col, count: fakeCount, dark: dark}
			out.WriteString(drawer.draw(x, y, dotSize, n))
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (c *svgComposer) renderCorners(count int, dotSize float64) (string, string) {
	xBeg := c.roundSize((float64(c.opts.Width) - float64(count)*dotSize) / 2)
	yBeg := c.roundSize((float64(c.opts.Height) - float64(count)*dotSize) / 2)

	squareSize := dotSize * 7
	dotCenterSize := dotSize * 3

	corners := []struct {
		column, row int
		rotation    float64
	}{
		{0, 0, 0},
		{1, 0, math.Pi / 2},
		{0, 1, -math.Pi / 2},
	}

	var defs, elements strings.Builder
	for _, corner := range corners {
		x := xBeg + float64(corner.column)*dotSize*float64(count-7)
		y := yBeg + float64(corner.row)*dotSize*float64(count-7)

		sqDefs, sqElements := c.renderCornerSquare(x, y, squareSize, corner.rotation, corner.column, corner.row)
		defs.WriteString(sqDefs)
		elements.WriteString(sqElements)

		dotDefs, dotElements := c.renderCornerDot(x+2*dotSize, y+2*dotSize, dotCenterSize, corner.rotation, corner.column, corner.row)
		defs.WriteString(dotDefs)
		elements.WriteString(dotElements)
	}

	return defs.String(), elements.String()
}

func (c *svgComposer) renderCornerSquare(x, y, size, rotation float64, column, row int) (string, string) {
	name := fmt.Sprintf("corners-square-color-%d-%d-%d", column, row, c.id)
	shape := cornerSquareDrawer{typ: c.opts.CornersSquare.Type}.draw(x, y, size, rotation)

	var defs strings.Builder
	fmt.Fprintf(&defs, "<clipPath id=\"clip-path-%s\">\n%s\n</clipPath>\n", name, shape)

	gradDefs, fill := c.createColor(c.opts.CornersSquare.Gradient, c.opts.CornersSquare.Color,
		rotation, x, y, size, size, name)
	defs.WriteString(gradDefs)

	elements := fmt.Sprintf(
		"<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\" clip-path=\"url(#clip-path-%s)\"/>\n",
		fnum(x), fnum(y), fnum(size), fnum(size), fill, name)

	return defs.String(), elements
}

func (c *svgComposer) renderCornerDot(x, y, size, rotation float64, column, row int) (string, string) {
	name := fmt.Sprintf("corners-dot-color-%d-%d-%d", column, row, c.id)
	shape := cornerDotDrawer{typ: c.opts.CornersDot.Type}.draw(x, y, size, rotation)

	var defs strings.Builder
	fmt.Fprintf(&defs, "<clipPath id=\"clip-path-%s\">\n%s\n</clipPath>\n", name, shape)

	gradDefs, fill := c.createColor(c.opts.CornersDot.Gradient, c.opts.CornersDot.Color,
		rotation, x, y, size, size, name)
	defs.WriteString(gradDefs)

	elements := fmt.Sprintf(
		"<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\" clip-path=\"url(#clip-path-%s)\"/>\n",
		fnum(x), fnum(y), fnum(size), fnum(size), fill, name)

	return defs.String(), elements
}

func (c *svgComposer) renderImage(count int, dotSize float64, hideX, hideY int) string {
	xBeg := c.roundSize((float64(c.opts.Width) - float64(count)*dotSize) / 2)
	yBeg := c.roundSize((float64(c.opts.Height) - float64(count)*dotSize) / 2)

	width := float64(hideX) * dotSize
	height := float64(hideY) * dotSize

	margin := c.opts.ImageOptions.Margin
	dx := xBeg + c.roundSize(margin+(float64(count)*dotSize-width)/2)
	dy := yBeg + c.roundSize(margin+(float64(count)*dotSize-height)/2)
	dw := width - 2*margin
	dh := height - 2*margin

	dataURL := fmt.Sprintf("data:%s;base64,%s",
		sniffImageMIME(c.opts.Image),
		base64.StdEncoding.EncodeToString(c.opts.Image))

	return fmt.Sprintf(
		"<image href=\"%s\" xlink:href=\"%s\" x=\"%s\" y=\"%s\" width=\"%spx\" height=\"%spx\"/>\n",
		dataURL, dataURL, fnum(dx), fnum(dy), fnum(dw), fnum(dh))
}

func sniffImageMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("RIFF")) && len(data) > 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/png"
	}
}

// createColor resolves a gradient-or-solid paint. Gradients become a defs
// entry referenced by url(#name); solid colors are returned as a plain hex
// fill with no defs at all.
func (c *svgComposer) createColor(gradient *Gradient, color Color, additionalRotation, x, y, height, width float64, name string) (string, string) {
	if gradient == nil {
		return "", color.Hex()
	}

	var defs strings.Builder
	switch gradient.Type {
	case GradientRadial:
		cx := x + width/2
		cy := y + height/2
		r := math.Max(width, height) / 2
		fmt.Fprintf(&defs,
			"<radialGradient id=\"%s\" gradientUnits=\"userSpaceOnUse\" fx=\"%s\" fy=\"%s\" cx=\"%s\" cy=\"%s\" r=\"%s\">\n",
			name, fnum(cx), fnum(cy), fnum(cx), fnum(cy), fnum(r))
		writeGradientStops(&defs, gradient.Stops)
		defs.WriteString("</radialGradient>\n")
	default:
		x0, y0, x1, y1 := linearEndpoints(gradient.Rotation, additionalRotation, x, y, width, height)
		fmt.Fprintf(&defs,
			"<linearGradient id=\"%s\" gradientUnits=\"userSpaceOnUse\" x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\">\n",
			name, fnum(math.Round(x0)), fnum(math.Round(y0)), fnum(math.Round(x1)), fnum(math.Round(y1)))
		writeGradientStops(&defs, gradient.Stops)
		defs.WriteString("</linearGradient>\n")
	}
	return defs.String(), fmt.Sprintf("url(#%s)", name)
}

func writeGradientStops(b *strings.Builder, stops []ColorStop) {
	for _, stop := range stops {
		fmt.Fprintf(b, "<stop offset=\"%s%%\" stop-color=\"%s\"/>\n",
			fnum(stop.Offset*100), stop.Color.Hex())
	}
}

// linearEndpoints projects a rotation onto the painted box so the gradient
// axis spans the whole box in the requested direction. The four branches
// cover one 90-degree band each.
func linearEndpoints(gradRotation, additionalRotation, x, y, width, height float64) (x0, y0, x1, y1 float64) {
	rotation := math.Mod(gradRotation+additionalRotation, 2*math.Pi)
	positive := math.Mod(rotation+2*math.Pi, 2*math.Pi)

	x0, y0 = x+width/2, y+height/2
	x1, y1 = x0, y0

	switch {
	case positive <= 0.25*math.Pi || positive > 1.75*math.Pi:
		x0 -= width / 2
		y0 -= height / 2 * math.Tan(rotation)
		x1 += width / 2
		y1 += height / 2 * math.Tan(rotation)
	case positive <= 0.75*math.Pi:
		y0 -= height / 2
		x0 -= width / 2 / math.Tan(rotation)
		y1 += height / 2
		x1 += width / 2 / math.Tan(rotation)
	case positive <= 1.25*math.Pi:
		x0 += width / 2
		y0 += height / 2 * math.Tan(rotation)
		x1 -= width / 2
		y1 -= height / 2 * math.Tan(rotation)
	default:
		y0 += height / 2
		x0 += width / 2 / math.Tan(rotation)
		y1 -= height / 2
		x1 -= width / 2 / math.Tan(rotation)
	}
	return x0, y0, x1, y1
}

// shouldDrawDot filters modules drawn by the dot layer: the finder-pattern
// ring and center are drawn by their own layers, and the logo window is left
// empty when background hiding is on. The white separator modules inside the
// finder region still belong to the dot layer.
func (c *svgComposer) shouldDrawDot(m *Matrix, row, col, hideX, hideY int) bool {
	if c.opts.ImageOptions.HideBackgroundDots && len(c.opts.Image) > 0 {
		count := m.Size()
		xStart := (count - hideX) / 2
		xEnd := (count + hideX) / 2
		yStart := (count - hideY) / 2
		yEnd := (count + hideY) / 2
		if row >= yStart && row < yEnd && col >= xStart && col < xEnd {
			return false
		}
	}
	return !m.IsFinderOuter(row, col) && !m.IsFinderInner(row, col)
}

// imageHideArea derives the occluded module window from the logo's real
// aspect ratio and the error-correction budget.
func (c *svgComposer) imageHideArea(count int, dotSize float64) (int, int) {
	coverLevel := c.opts.ImageOptions.Size * c.opts.QR.ErrorCorrection.Percentage()
	maxHiddenDots := int(math.Floor(coverLevel * float64(count*count)))
	maxHiddenAxisDots := count - 14
	if maxHiddenAxisDots < 0 {
		maxHiddenAxisDots = 0
	}

	w, h := logoDimensions(c.opts.Image)
	res := calculateImageSize(w, h, maxHiddenDots, maxHiddenAxisDots, dotSize)
	return res.hideXDots, res.hideYDots
}

// logoDimensions reads the pixel dimensions from the logo header. Unknown or
// broken formats fall back to a square aspect.
func logoDimensions(data []byte) (uint, uint) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 1, 1
	}
	return uint(cfg.Width), uint(cfg.Height)
}
