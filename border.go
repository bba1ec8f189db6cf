package qrstyle

import (
	"fmt"
	"strings"
)

// Position names one side of the code for border decorations.
type Position int

const (
	PositionTop Position = iota
	PositionRight
	PositionBottom
	PositionLeft
)

func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	}
	return "unknown"
}

// decorationKind distinguishes text from image decorations.
type decorationKind int

const (
	decorationText decorationKind = iota
	decorationImage
)

// Decoration is a text or image ornament placed on one border side.
type Decoration struct {
	kind  decorationKind
	value string
	style string
}

// TextDecoration places the given text along a border side.
func TextDecoration(text string) Decoration {
	return Decoration{kind: decorationText, value: text}
}

// ImageDecoration places an image, referenced by URL or data URI, on a
// border side.
func ImageDecoration(src string) Decoration {
	return Decoration{kind: decorationImage, value: src}
}

// WithStyle attaches an inline CSS style to the decoration.
func (d Decoration) WithStyle(style string) Decoration {
	d.style = style
	return d
}

// BorderOptions styles one border stroke.
type BorderOptions struct {
	// Thickness of the stroke in pixels.
	Thickness float64
	Color     Color
	// DashArray is an optional SVG stroke-dasharray value, e.g. "5,5".
	DashArray string
}

// Border decorates a rendered document with up to three concentric frames
// and per-side text or image ornaments. Apply works on any SVG markup; it
// never re-renders the code itself.
type Border struct {
	// Main is the primary frame stroke.
	Main BorderOptions
	// Round is the corner roundness in [0, 1]; at 0.5 and above text
	// decorations follow a circular arc instead of a straight baseline.
	Round float64
	// Inner and Outer are optional extra frames.
	Inner *BorderOptions
	Outer *BorderOptions

	decorations [4]*Decoration
}

// NewBorder returns a border with the given main stroke.
func NewBorder(thickness float64, color Color) *Border {
	return &Border{Main: BorderOptions{Thickness: thickness, Color: color}}
}

// WithRound sets the corner roundness, clamped to [0, 1].
func (b *Border) WithRound(round float64) *Border {
	if round < 0 {
		round = 0
	} else if round > 1 {
		round = 1
	}
	b.Round = round
	return b
}

// WithInnerBorder adds a frame inside the main one.
func (b *Border) WithInnerBorder(o BorderOptions) *Border {
	b.Inner = &o
	return b
}

// WithOuterBorder adds a frame outside the main one.
func (b *Border) WithOuterBorder(o BorderOptions) *Border {
	b.Outer = &o
	return b
}

// WithDecoration places a decoration on one side, replacing any previous
// decoration there.
func (b *Border) WithDecoration(pos Position, d Decoration) *Border {
	if pos >= PositionTop && pos <= PositionLeft {
		b.decorations[pos] = &d
	}
	return b
}

// WithText places plain text on one side.
func (b *Border) WithText(pos Position, text string) *Border {
	return b.WithDecoration(pos, TextDecoration(text))
}

// WithStyledText places styled text on one side.
func (b *Border) WithStyledText(pos Position, text, style string) *Border {
	return b.WithDecoration(pos, TextDecoration(text).WithStyle(style))
}

// WithImage places an image on one side.
func (b *Border) WithImage(pos Position, src string) *Border {
	return b.WithDecoration(pos, ImageDecoration(src))
}

// Apply injects the border frames and decorations into svg, which must be a
// document of the given pixel dimensions, and returns the decorated markup.
func (b *Border) Apply(svg string, width, height int) string {
	w := float64(width)
	h := float64(height)
	id := renderSeq.Add(1)

	var defs, elements strings.Builder

	elements.WriteString(b.frameRect(b.rectAttributes(w, h, b.Main)))

	if b.Inner != nil {
		attrs := b.rectAttributes(w, h, *b.Inner)
		attrs.x = attrs.x - b.Inner.Thickness + b.Main.Thickness
		attrs.y = attrs.y - b.Inner.Thickness + b.Main.Thickness
		attrs.width += 2 * (b.Inner.Thickness - b.Main.Thickness)
		attrs.height += 2 * (b.Inner.Thickness - b.Main.Thickness)
		attrs.rx = attrs.rx + b.Inner.Thickness - b.Main.Thickness
		if attrs.rx < 0 {
			attrs.rx = 0
		}
		elements.WriteString(b.frameRect(attrs))
	}

	if b.Outer != nil {
		elements.WriteString(b.frameRect(b.rectAttributes(w, h, *b.Outer)))
	}

	for pos := PositionTop; pos <= PositionLeft; pos++ {
		d := b.decorations[pos]
		if d == nil {
			continue
		}
		switch d.kind {
		case decorationText:
			pathDef, textElem := b.textDecoration(pos, d, w, h, id)
			defs.WriteString(pathDef)
			elements.WriteString(textElem)
		case decorationImage:
			elements.WriteString(b.imageDecoration(pos, d, w, h))
		}
	}

	return injectIntoSVG(svg, defs.String(), elements.String())
}

type borderRectAttrs struct {
	x, y          float64
	width, height float64
	stroke        Color
	strokeWidth   float64
	dashArray     string
	rx            float64
}

func (b *Border) rectAttributes(width, height float64, o BorderOptions) borderRectAttrs {
	size := width
	if height < size {
		size = height
	}
	rx := size/2*b.Round - o.Thickness/2
	if rx < 0 {
		rx = 0
	}
	return borderRectAttrs{
		x:           (width - size + o.Thickness) / 2,
		y:           (height - size + o.Thickness) / 2,
		width:       size - o.Thickness,
		height:      size - o.Thickness,
		stroke:      o.Color,
		strokeWidth: o.Thickness,
		dashArray:   o.DashArray,
		rx:          rx,
	}
}

func (b *Border) frameRect(a borderRectAttrs) string {
	dash := ""
	if a.dashArray != "" {
		dash = fmt.Sprintf(` stroke-dasharray="%s"`, a.dashArray)
	}
	return fmt.Sprintf(
		"<rect fill=\"none\" x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" stroke=\"%s\" stroke-width=\"%s\"%s rx=\"%s\"/>\n",
		fnum(a.x), fnum(a.y), fnum(a.width), fnum(a.height),
		a.stroke.Hex(), fnum(a.strokeWidth), dash, fnum(a.rx))
}

func (b *Border) textDecoration(pos Position, d *Decoration, width, height float64, id uint64) (string, string) {
	thickness := b.Main.Thickness
	size := width
	if height < size {
		size = height
	}
	cx := width / 2
	cy := height / 2
	textRadius := (size - thickness) / 2

	style := d.style
	if style == "" {
		style = "font-size: 14px; font-family: Arial, sans-serif;"
	}

	if b.Round >= 0.5 {
		pathID := fmt.Sprintf("border-%s-text-path-%d", pos, id)

		var pathD string
		switch pos {
		case PositionTop:
			pathD = fmt.Sprintf("M %s,%s A %s,%s 0 0 1 %s,%s",
				fnum(cx-textRadius), fnum(cy), fnum(textRadius), fnum(textRadius), fnum(cx+textRadius), fnum(cy))
		case PositionBottom:
			pathD = fmt.Sprintf("M %s,%s A %s,%s 0 0 0 %s,%s",
				fnum(cx-textRadius), fnum(cy), fnum(textRadius), fnum(textRadius), fnum(cx+textRadius), fnum(cy))
		case PositionLeft:
			pathD = fmt.Sprintf("M %s,%s A %s,%s 0 0 0 %s,%s",
				fnum(cx), fnum(cy-textRadius), fnum(textRadius), fnum(textRadius), fnum(cx), fnum(cy+textRadius))
		default:
			pathD = fmt.Sprintf("M %s,%s A %s,%s 0 0 1 %s,%s",
				fnum(cx), fnum(cy-textRadius), fnum(textRadius), fnum(textRadius), fnum(cx), fnum(cy+textRadius))
		}

		pathDef := fmt.Sprintf("<path id=\"%s\" d=\"%s\" fill=\"none\"/>\n", pathID, pathD)
		textElem := fmt.Sprintf(
			"<text style=\"%s\">\n  <textPath xlink:href=\"#%s\" href=\"#%s\" startOffset=\"50%%\" text-anchor=\"middle\" dominant-baseline=\"central\">%s</textPath>\n</text>\n",
			style, pathID, pathID, d.value)
		return pathDef, textElem
	}

	borderOffset := thickness / 2
	halfSize := (size - thickness) / 2

	var x, y, rotation float64
	switch pos {
	case PositionTop:
		x, y = cx, cy-halfSize-borderOffset
	case PositionBottom:
		x, y = cx, cy+halfSize+borderOffset
	case PositionLeft:
		x, y, rotation = cx-halfSize-borderOffset, cy, -90
	default:
		x, y, rotation = cx+halfSize+borderOffset, cy, 90
	}

	transform := ""
	if rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s,%s,%s)"`, fnum(rotation), fnum(x), fnum(y))
	}

	textElem := fmt.Sprintf(
		"<text x=\"%s\" y=\"%s\" text-anchor=\"middle\" dominant-baseline=\"middle\" style=\"%s\"%s>%s</text>\n",
		fnum(x), fnum(y), style, transform, d.value)
	return "", textElem
}

func (b *Border) imageDecoration(pos Position, d *Decoration, width, height float64) string {
	thickness := b.Main.Thickness
	size := width
	if height < size {
		size = height
	}

	x := (width - size + thickness) / 2
	y := (height - size + thickness) / 2

	switch pos {
	case PositionTop:
		x += (size - thickness) / 2
	case PositionRight:
		x += size - thickness
		y += (size - thickness) / 2
	case PositionBottom:
		x += (size - thickness) / 2
		y += size - thickness
	case PositionLeft:
		y += (size - thickness) / 2
	}

	styleAttr := ""
	if d.style != "" {
		styleAttr = fmt.Sprintf(` style="%s"`, d.style)
	}

	return fmt.Sprintf("<image href=\"%s\" xlink:href=\"%s\" x=\"%s\" y=\"%s\"%s/>\n",
		d.value, d.value, fnum(x), fnum(y), styleAttr)
}

// injectIntoSVG splices defs into the document's defs block (creating one if
// needed) and elements just before the closing tag, so everything drawn here
// paints on top of the code.
func injectIntoSVG(svg, defs, elements string) string {
	closePos := strings.LastIndex(svg, "</svg>")
	if closePos < 0 {
		return strings.TrimRight(svg, " \t\n") + "\n" + elements
	}

	var out strings.Builder
	out.Grow(len(svg) + len(defs) + len(elements) + 32)

	if defs != "" {
		if defsClose := strings.Index(svg, "</defs>"); defsClose >= 0 && defsClose < closePos {
			out.WriteString(svg[:defsClose])
			out.WriteString(defs)
			out.WriteString(svg[defsClose:closePos])
		} else {
			out.WriteString(svg[:closePos])
			out.WriteString("<defs>\n")
			out.WriteString(defs)
			out.WriteString("</defs>\n")
		}
	} else {
		out.WriteString(svg[:closePos])
	}

	out.WriteString(elements)
	out.WriteString("</svg>")
	return out.String()
}
