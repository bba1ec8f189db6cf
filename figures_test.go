package qrstyle

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubNeighbors marks specific (dx, dy) offsets as dark.
type stubNeighbors map[[2]int]bool

func (s stubNeighbors) Dark(dx, dy int) bool { return s[[2]int{dx, dy}] }

func neighbors(offsets ...[2]int) stubNeighbors {
	s := stubNeighbors{}
	for _, o := range offsets {
		s[o] = true
	}
	return s
}

var (
	left   = [2]int{-1, 0}
	right  = [2]int{1, 0}
	top    = [2]int{0, -1}
	bottom = [2]int{0, 1}
)

func TestRotateTransform(t *testing.T) {
	assert.Equal(t, "", rotateTransform(0, 0, 10, 0))
	assert.Equal(t, "", rotateTransform(0, 0, 10, 0.00001))
	assert.Equal(t, "rotate(90,5,5)", rotateTransform(0, 0, 10, math.Pi/2))
	assert.Equal(t, "rotate(-90,15,15)", rotateTransform(10, 10, 10, -math.Pi/2))
	assert.Equal(t, "rotate(180,5,5)", rotateTransform(0, 0, 10, math.Pi))
}

func TestSquareDotIgnoresNeighbors(t *testing.T) {
	d := dotDrawer{typ: DotSquare}
	svg := d.draw(0, 0, 10, neighbors(left, right, top, bottom))
	assert.Contains(t, svg, "<rect")
	assert.NotContains(t, svg, "transform")
}

func TestDotsTypeAlwaysCircle(t *testing.T) {
	d := dotDrawer{typ: DotDots}
	svg := d.draw(10, 20, 10, neighbors(left, top))
	assert.Equal(t, `<circle cx="15" cy="25" r="5"/>`, svg)
}

func TestRoundedIsolatedIsCircle(t *testing.T) {
	d := dotDrawer{typ: DotRounded}
	assert.Contains(t, d.draw(0, 0, 10, neighbors()), "<circle")
	assert.Contains(t, d.draw(0, 0, 10, nil), "<circle")
}

func TestRoundedOppositePairIsSquare(t *testing.T) {
	d := dotDrawer{typ: DotRounded}
	assert.Contains(t, d.draw(0, 0, 10, neighbors(left, right)), "<rect")
	assert.Contains(t, d.draw(0, 0, 10, neighbors(top, bottom)), "<rect")
}

func TestRoundedCrowdedIsSquare(t *testing.T) {
	d := dotDrawer{typ: DotRounded}
	assert.Contains(t, d.draw(0, 0, 10, neighbors(left, top, bottom)), "<rect")
	assert.Contains(t, d.draw(0, 0, 10, neighbors(left, right, top, bottom)), "<rect")
}

func TestRoundedAdjacentPairRotations(t *testing.T) {
	d := dotDrawer{typ: DotRounded}
	tests := []struct {
		name      string
		n         stubNeighbors
		transform string
	}{
		{"left+top", neighbors(left, top), `rotate(90,5,5)`},
		{"top+right", neighbors(top, right), `rotate(180,5,5)`},
		{"right+bottom", neighbors(right, bottom), `rotate(-90,5,5)`},
		{"bottom+left", neighbors(bottom, left), ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := d.draw(0, 0, 10, tt.n)
			assert.Contains(t, svg, "<path")
			if tt.transform == "" {
				assert.NotContains(t, svg, "transform")
			} else {
				assert.Contains(t, svg, tt.transform)
			}
		})
	}
}

func TestRoundedSingleNeighborRotations(t *testing.T) {
	d := dotDrawer{typ: DotRounded}
	assert.Contains(t, d.draw(0, 0, 10, neighbors(top)), "rotate(90,5,5)")
	assert.Contains(t, d.draw(0, 0, 10, neighbors(right)), "rotate(180,5,5)")
	assert.Contains(t, d.draw(0, 0, 10, neighbors(bottom)), "rotate(-90,5,5)")
	svg := d.draw(0, 0, 10, neighbors(left))
	assert.Contains(t, svg, "<path")
	assert.NotContains(t, svg, "transform")
}

func TestAdaptiveDegradeToSquareExhaustive(t *testing.T) {
	offsets := [][2]int{left, right, top, bottom}
	for _, typ := range []DotType{DotRounded, DotExtraRounded} {
		d := dotDrawer{typ: typ}
		for mask := 0; mask < 16; mask++ {
			n := stubNeighbors{}
			count := 0
			for i, o := range offsets {
				if mask&(1<<i) != 0 {
					n[o] = true
					count++
				}
			}
			opposite := (n[left] && n[right]) || (n[top] && n[bottom])
			svg := d.draw(0, 0, 10, n)
			if count > 2 || opposite {
				assert.Contains(t, svg, "<rect", "type %v mask %04b", typ, mask)
			} else {
				assert.NotContains(t, svg, "<rect", "type %v mask %04b", typ, mask)
			}
		}
	}
}

func TestExtraRoundedUsesFullRadius(t *testing.T) {
	d := dotDrawer{typ: DotExtraRounded}
	svg := d.draw(0, 0, 10, neighbors(left, top))
	// Full-size corner radius, not half.
	assert.Contains(t, svg, "a 10 10 0 0 0")
}

func TestClassyRules(t *testing.T) {
	d := dotDrawer{typ: DotClassy}

	isolated := d.draw(0, 0, 10, neighbors())
	assert.Contains(t, isolated, "<path")
	assert.Contains(t, isolated, "rotate(90,5,5)")

	openTopLeft := d.draw(0, 0, 10, neighbors(right, bottom))
	assert.Contains(t, openTopLeft, "rotate(-90,5,5)")

	openBottomRight := d.draw(0, 0, 10, neighbors(left, top))
	assert.Contains(t, openBottomRight, "rotate(90,5,5)")

	crowded := d.draw(0, 0, 10, neighbors(left, top, right, bottom))
	assert.Contains(t, crowded, "<rect")
}

func TestClassyRoundedMatchesClassyShapeSelection(t *testing.T) {
	classy := dotDrawer{typ: DotClassy}
	rounded := dotDrawer{typ: DotClassyRounded}

	for name, n := range map[string]stubNeighbors{
		"isolated": neighbors(),
		"open-tl":  neighbors(right, bottom),
		"open-br":  neighbors(left, top),
		"crowded":  neighbors(left, right, top, bottom),
	} {
		a := classy.draw(0, 0, 10, n)
		b := rounded.draw(0, 0, 10, n)
		assert.Equal(t,
			strings.Contains(a, "<rect"), strings.Contains(b, "<rect"),
			"selection mismatch for %s", name)
	}
}

func TestCornerSquareShapes(t *testing.T) {
	square := cornerSquareDrawer{typ: CornerSquareSquare}.draw(0, 0, 70, 0)
	assert.Contains(t, square, `clip-rule="evenodd"`)
	assert.Contains(t, square, "v 70 h 70")
	assert.Contains(t, square, "h 50 v 50")

	dot := cornerSquareDrawer{typ: CornerSquareDot}.draw(0, 0, 70, 0)
	assert.Contains(t, dot, `clip-rule="evenodd"`)
	assert.Contains(t, dot, "a 35 35 0 1 0 0.1 0")
	assert.Contains(t, dot, "a 25 25 0 1 1 -0.1 0")

	extra := cornerSquareDrawer{typ: CornerSquareExtraRounded}.draw(0, 0, 70, 0)
	assert.Contains(t, extra, "a 25 25 0 0 0")
	assert.Contains(t, extra, "a 15 15 0 0 1")
}

func TestCornerSquareRotation(t *testing.T) {
	svg := cornerSquareDrawer{typ: CornerSquareSquare}.draw(0, 0, 70, math.Pi/2)
	assert.Contains(t, svg, "rotate(90,35,35)")
}

func TestCornerDotShapes(t *testing.T) {
	dot := cornerDotDrawer{typ: CornerDotDot}.draw(0, 0, 30, 0)
	assert.Equal(t, `<circle cx="15" cy="15" r="15"/>`, dot)

	square := cornerDotDrawer{typ: CornerDotSquare}.draw(10, 10, 30, 0)
	assert.Equal(t, `<rect x="10" y="10" width="30" height="30"/>`, square)
}
