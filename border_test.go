package qrstyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const borderTestSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300">
<defs></defs>
<rect x="0" y="0" width="300" height="300" fill="white"/>
</svg>`

func TestBorderApplyFrame(t *testing.T) {
	border := NewBorder(10, Black).WithRound(0.2)
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, `stroke="#000000"`)
	assert.Contains(t, result, `stroke-width="10"`)
	assert.Contains(t, result, `fill="none"`)
	// rx = 300/2*0.2 - 10/2 = 25
	assert.Contains(t, result, `rx="25"`)
	assert.True(t, strings.HasSuffix(result, "</svg>"))
}

func TestBorderRectGeometry(t *testing.T) {
	border := NewBorder(10, Black)
	attrs := border.rectAttributes(300, 300, border.Main)

	assert.Equal(t, 5.0, attrs.x)
	assert.Equal(t, 5.0, attrs.y)
	assert.Equal(t, 290.0, attrs.width)
	assert.Equal(t, 290.0, attrs.height)
	assert.Equal(t, 0.0, attrs.rx)
}

func TestBorderRectGeometryLandscape(t *testing.T) {
	border := NewBorder(10, Black)
	attrs := border.rectAttributes(400, 300, border.Main)

	// Frame is square on the smaller dimension, centered horizontally.
	assert.Equal(t, 55.0, attrs.x)
	assert.Equal(t, 5.0, attrs.y)
	assert.Equal(t, 290.0, attrs.width)
}

func TestBorderInnerAdjustment(t *testing.T) {
	border := NewBorder(20, Black).
		WithInnerBorder(BorderOptions{Thickness: 4, Color: RGB(0, 255, 0)})
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, `stroke="#00FF00"`)
	assert.Contains(t, result, `stroke-width="4"`)
	// Inner rect: base x = (300-300+4)/2 = 2, adjusted by -4+20 -> 18;
	// width = 296 + 2*(4-20) = 264.
	assert.Contains(t, result, `x="18" y="18" width="264" height="264"`)
}

func TestBorderOuterAndDash(t *testing.T) {
	border := NewBorder(10, Black)
	border.Main.DashArray = "5,5"
	border.WithOuterBorder(BorderOptions{Thickness: 2, Color: RGB(255, 0, 0)})
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, `stroke-dasharray="5,5"`)
	assert.Contains(t, result, `stroke="#FF0000"`)
}

func TestBorderCurvedText(t *testing.T) {
	border := NewBorder(20, RGB(0x33, 0x33, 0x33)).
		WithRound(0.5).
		WithStyledText(PositionTop, "SCAN ME", "font-size: 14px; fill: #333;")
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, "SCAN ME")
	assert.Contains(t, result, "<textPath")
	assert.Contains(t, result, "border-top-text-path-")
	assert.Contains(t, result, `startOffset="50%"`)
	// Arc radius = (300-20)/2 = 140.
	assert.Contains(t, result, "A 140,140 0 0 1")
	// The path definition lands inside the existing defs block.
	defsClose := strings.Index(result, "</defs>")
	pathPos := strings.Index(result, "border-top-text-path-")
	require.GreaterOrEqual(t, defsClose, 0)
	assert.Less(t, pathPos, defsClose)
}

func TestBorderStraightText(t *testing.T) {
	border := NewBorder(20, Black).
		WithText(PositionBottom, "VISIT US").
		WithText(PositionLeft, "LEFT SIDE")
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, "VISIT US")
	assert.NotContains(t, result, "textPath")
	// Bottom text: y = 150 + 140 + 10 = 300.
	assert.Contains(t, result, `x="150" y="300"`)
	// Left text rotates -90 about its anchor at x = 150 - 140 - 10 = 0.
	assert.Contains(t, result, `rotate(-90,0,150)`)
}

func TestBorderImageDecoration(t *testing.T) {
	border := NewBorder(10, Black).
		WithImage(PositionTop, "https://example.com/logo.png")
	result := border.Apply(borderTestSVG, 300, 300)

	assert.Contains(t, result, `<image href="https://example.com/logo.png"`)
	// Top image: x = 5 + 145 = 150, y = 5.
	assert.Contains(t, result, `x="150" y="5"`)
}

func TestBorderDecorationOrderDeterministic(t *testing.T) {
	border := NewBorder(10, Black).
		WithText(PositionLeft, "L").
		WithText(PositionTop, "T")
	result := border.Apply(borderTestSVG, 300, 300)

	// Top renders before left regardless of configuration order.
	assert.Less(t, strings.Index(result, ">T</text>"), strings.Index(result, ">L</text>"))
}

func TestBorderInjectWithoutDefs(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"></svg>`
	border := NewBorder(5, Black).WithRound(0.5).WithText(PositionTop, "X")
	result := border.Apply(svg, 100, 100)

	assert.Contains(t, result, "<defs>")
	assert.Contains(t, result, "</defs>")
	assert.True(t, strings.HasSuffix(result, "</svg>"))
}

func TestBorderApplyWithoutClosingTag(t *testing.T) {
	result := NewBorder(5, Black).Apply("<not-svg/>", 100, 100)
	assert.Contains(t, result, "<rect")
}

func TestBorderRoundClamped(t *testing.T) {
	assert.Equal(t, 1.0, NewBorder(5, Black).WithRound(3).Round)
	assert.Equal(t, 0.0, NewBorder(5, Black).WithRound(-1).Round)
}
