package qrstyle

import "fmt"

// DotsOptions styles the ordinary modules.
type DotsOptions struct {
	Type     DotType
	Color    Color
	Gradient *Gradient
	// RoundSize floors the module pixel size to a whole number, which avoids
	// anti-aliasing seams between adjacent modules. When false the exact
	// fractional size is kept and the crisp-edges rendering hint is dropped.
	RoundSize bool
}

// CornersSquareOptions styles the 7x7 finder-pattern ornaments.
type CornersSquareOptions struct {
	Type     CornerSquareType
	Color    Color
	Gradient *Gradient
}

// CornersDotOptions styles the 3x3 finder-pattern centers.
type CornersDotOptions struct {
	Type     CornerDotType
	Color    Color
	Gradient *Gradient
}

// BackgroundOptions styles the canvas background.
type BackgroundOptions struct {
	Color    Color
	Gradient *Gradient
	// Round is the corner radius ratio in [0, 0.5]; 0.5 yields a circle.
	Round float64
}

// ImageOptions controls logo embedding.
type ImageOptions struct {
	// Size is the logo area relative to the code, in [0, 1].
	Size float64
	// HideBackgroundDots suppresses the modules behind the logo.
	HideBackgroundDots bool
	// Margin around the logo in pixels.
	Margin float64
	// SaveAsBlob embeds the logo bytes as a base64 data URI.
	SaveAsBlob bool
}

// QROptions configure the symbol encoder.
type QROptions struct {
	// Version 0 selects the smallest version that fits the data; 1..40 force
	// a specific version.
	Version         int
	ErrorCorrection ErrorCorrectionLevel
	// Mode overrides encoding mode auto-detection.
	Mode EncodingMode
}

// Options is the full, validated style configuration for one QR code.
// Build one with NewBuilder; a built Options value is never mutated by the
// renderer. Changing it requires rebuilding the matrix (see QRCode.Regenerate).
type Options struct {
	Data   string
	Width  int
	Height int
	Margin int
	Shape  ShapeType
	// Image holds raw logo bytes (PNG, JPEG or WebP).
	Image []byte

	QR            QROptions
	Dots          DotsOptions
	CornersSquare CornersSquareOptions
	CornersDot    CornersDotOptions
	Background    BackgroundOptions
	ImageOptions  ImageOptions
}

// Builder assembles Options step by step and validates them on Build.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder preloaded with the defaults: 300x300 canvas,
// square black dots on white, error correction level Q, logo area 0.4 with
// hidden background dots.
func NewBuilder() *Builder {
	return &Builder{opts: Options{
		Width:  300,
		Height: 300,
		QR:     QROptions{ErrorCorrection: ECQuart},
		Dots: DotsOptions{
			Type:      DotSquare,
			Color:     Black,
			RoundSize: true,
		},
		CornersSquare: CornersSquareOptions{Type: CornerSquareSquare, Color: Black},
		CornersDot:    CornersDotOptions{Type: CornerDotDot, Color: Black},
		Background:    BackgroundOptions{Color: White},
		ImageOptions: ImageOptions{
			Size:               0.4,
			HideBackgroundDots: true,
			SaveAsBlob:         true,
		},
	}}
}

// Data sets the string to encode.
func (b *Builder) Data(data string) *Builder {
	b.opts.Data = data
	return b
}

// Width sets the canvas width in pixels.
func (b *Builder) Width(w int) *Builder {
	b.opts.Width = w
	return b
}

// Height sets the canvas height in pixels.
func (b *Builder) Height(h int) *Builder {
	b.opts.Height = h
	return b
}

// Size sets both canvas dimensions.
func (b *Builder) Size(s int) *Builder {
	b.opts.Width, b.opts.Height = s, s
	return b
}

// Margin sets the blank margin around the code in pixels.
func (b *Builder) Margin(m int) *Builder {
	b.opts.Margin = m
	return b
}

// Shape sets the overall shape.
func (b *Builder) Shape(s ShapeType) *Builder {
	b.opts.Shape = s
	return b
}

// Image sets the raw logo bytes to embed.
func (b *Builder) Image(data []byte) *Builder {
	b.opts.Image = data
	return b
}

// QR sets the encoder options.
func (b *Builder) QR(o QROptions) *Builder {
	b.opts.QR = o
	return b
}

// Dots sets the module style.
func (b *Builder) Dots(o DotsOptions) *Builder {
	b.opts.Dots = o
	return b
}

// CornersSquare sets the finder ornament style.
func (b *Builder) CornersSquare(o CornersSquareOptions) *Builder {
	b.opts.CornersSquare = o
	return b
}

// CornersDot sets the finder center style.
func (b *Builder) CornersDot(o CornersDotOptions) *Builder {
	b.opts.CornersDot = o
	return b
}

// Background sets the background style.
func (b *Builder) Background(o BackgroundOptions) *Builder {
	if o.Round < 0 {
		o.Round = 0
	} else if o.Round > 0.5 {
		o.Round = 0.5
	}
	b.opts.Background = o
	return b
}

// ImageOptions sets the logo embedding options.
func (b *Builder) ImageOptions(o ImageOptions) *Builder {
	if o.Size < 0 {
		o.Size = 0
	} else if o.Size > 1 {
		o.Size = 1
	}
	b.opts.ImageOptions = o
	return b
}

// Options validates the configuration and returns it without touching the
// encoder. Most callers want Build instead.
func (b *Builder) Options() (*Options, error) {
	o := b.opts
	if o.Data == "" {
		return nil, ErrMissingData
	}
	if o.Width < 21 || o.Height < 21 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasTooSmall, o.Width, o.Height)
	}
	if o.QR.Version < 0 || o.QR.Version > 40 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, o.QR.Version)
	}
	return &o, nil
}

// Build validates the configuration, encodes the data and returns a
// renderable QRCode.
func (b *Builder) Build() (*QRCode, error) {
	opts, err := b.Options()
	if err != nil {
		return nil, err
	}
	return New(opts)
}
