// Package qrstyle renders visually styled QR codes as SVG markup with
// customizable dot shapes, finder-pattern ornaments, gradients, embedded
// logos, circular clipping and decorative borders. Raster and document
// output is handled by the raster and pdfdoc subpackages.
package qrstyle

import "fmt"

// DotType selects the visual style for ordinary QR modules.
type DotType int

const (
	// DotSquare draws plain square modules.
	DotSquare DotType = iota
	// DotDots draws circular modules.
	DotDots
	// DotRounded draws squares that round their free sides based on neighbors.
	DotRounded
	// DotClassy rounds one diagonal pair of corners based on neighbors.
	DotClassy
	// DotClassyRounded is DotClassy with larger corner radii.
	DotClassyRounded
	// DotExtraRounded is DotRounded with full-size corner radii.
	DotExtraRounded
)

func (t DotType) String() string {
	switch t {
	case DotSquare:
		return "square"
	case DotDots:
		return "dots"
	case DotRounded:
		return "rounded"
	case DotClassy:
		return "classy"
	case DotClassyRounded:
		return "classy-rounded"
	case DotExtraRounded:
		return "extra-rounded"
	}
	return "unknown"
}

// ParseDotType maps a kebab-case name to a DotType. Unknown names fall back
// to DotSquare so URL parameters degrade gracefully.
func ParseDotType(s string) DotType {
	switch s {
	case "dots":
		return DotDots
	case "rounded":
		return DotRounded
	case "classy":
		return DotClassy
	case "classy-rounded":
		return DotClassyRounded
	case "extra-rounded":
		return DotExtraRounded
	default:
		return DotSquare
	}
}

// CornerSquareType selects the style of the 7x7 finder-pattern ornament.
type CornerSquareType int

const (
	CornerSquareSquare CornerSquareType = iota
	CornerSquareDot
	CornerSquareExtraRounded
)

func (t CornerSquareType) String() string {
	switch t {
	case CornerSquareDot:
		return "dot"
	case CornerSquareExtraRounded:
		return "extra-rounded"
	}
	return "square"
}

// ParseCornerSquareType maps a name to a CornerSquareType, defaulting to square.
func ParseCornerSquareType(s string) CornerSquareType {
	switch s {
	case "dot":
		return CornerSquareDot
	case "extra-rounded":
		return CornerSquareExtraRounded
	default:
		return CornerSquareSquare
	}
}

// CornerDotType selects the style of the 3x3 finder-pattern center.
type CornerDotType int

const (
	CornerDotDot CornerDotType = iota
	CornerDotSquare
)

func (t CornerDotType) String() string {
	if t == CornerDotSquare {
		return "square"
	}
	return "dot"
}

// ParseCornerDotType maps a name to a CornerDotType, defaulting to dot.
func ParseCornerDotType(s string) CornerDotType {
	if s == "square" {
		return CornerDotSquare
	}
	return CornerDotDot
}

// GradientType selects linear or radial gradients.
type GradientType int

const (
	GradientLinear GradientType = iota
	GradientRadial
)

// ShapeType selects the overall shape of the rendered code.
type ShapeType int

const (
	// ShapeSquare renders the plain square module grid.
	ShapeSquare ShapeType = iota
	// ShapeCircle fits the grid into a circle and fills the leftover edge
	// area with synthesized dots.
	ShapeCircle
)

// ErrorCorrectionLevel is one of the four QR redundancy levels.
type ErrorCorrectionLevel int

const (
	// ECLow recovers ~7% of damaged data.
	ECLow ErrorCorrectionLevel = iota
	// ECMedium recovers ~15%.
	ECMedium
	// ECQuart recovers ~25%.
	ECQuart
	// ECHigh recovers ~30%.
	ECHigh
)

// Percentage returns the approximate redundancy ratio for the level.
func (l ErrorCorrectionLevel) Percentage() float64 {
	switch l {
	case ECLow:
		return 0.07
	case ECMedium:
		return 0.15
	case ECHigh:
		return 0.30
	default:
		return 0.25
	}
}

// ParseErrorCorrectionLevel accepts the conventional single letters L/M/Q/H.
func ParseErrorCorrectionLevel(s string) ErrorCorrectionLevel {
	switch s {
	case "L", "l":
		return ECLow
	case "M", "m":
		return ECMedium
	case "H", "h":
		return ECHigh
	default:
		return ECQuart
	}
}

// EncodingMode is the QR data encoding mode.
type EncodingMode int

const (
	// ModeAuto lets the encoder pick the densest mode that fits the data.
	ModeAuto EncodingMode = iota
	ModeNumeric
	ModeAlphanumeric
	ModeByte
	ModeKanji
)

// DetectMode returns the densest encoding mode able to represent data.
func DetectMode(data string) EncodingMode {
	numeric := true
	alphanumeric := true
	for _, c := range data {
		if c < '0' || c > '9' {
			numeric = false
		}
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
		case c == ' ', c == '$', c == '%', c == '*', c == '+', c == '-', c == '.', c == '/', c == ':':
		default:
			alphanumeric = false
		}
	}
	if numeric {
		return ModeNumeric
	}
	if alphanumeric {
		return ModeAlphanumeric
	}
	return ModeByte
}

// OutputFormat selects the serialization of a rendered code.
type OutputFormat int

const (
	FormatSVG OutputFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
	FormatPDF
)

// MimeType returns the MIME type for the format.
func (f OutputFormat) MimeType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	case FormatPDF:
		return "application/pdf"
	}
	return "image/svg+xml"
}

// Extension returns the conventional file extension for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	case FormatPDF:
		return "pdf"
	}
	return "svg"
}

// ParseOutputFormat maps a name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "svg", "":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "pdf":
		return FormatPDF, nil
	}
	return FormatSVG, fmt.Errorf("unknown output format %q", s)
}
