package qrstyle

import (
	"fmt"
	"os"

	"github.com/cristianadrielbraun/qrstyle/pdfdoc"
	"github.com/cristianadrielbraun/qrstyle/raster"
)

// QRCode is an encoded symbol paired with its style, ready to render any
// number of times. Rendering never mutates the QRCode, so one value may be
// rendered from multiple goroutines; Update and Regenerate are not safe to
// call concurrently with renders.
type QRCode struct {
	opts   *Options
	matrix *Matrix
}

// New encodes opts.Data and returns a renderable QRCode. Most callers build
// opts through NewBuilder, which also validates them.
func New(opts *Options) (*QRCode, error) {
	matrix, err := NewMatrix(opts.Data, opts.QR)
	if err != nil {
		return nil, err
	}
	return &QRCode{opts: opts, matrix: matrix}, nil
}

// RenderSVG renders the code as an SVG document.
func (q *QRCode) RenderSVG() string {
	return newSVGComposer(q.opts).compose(q.matrix)
}

// Render serializes the code in the given format.
func (q *QRCode) Render(format OutputFormat) ([]byte, error) {
	switch format {
	case FormatSVG:
		return []byte(q.RenderSVG()), nil
	case FormatPNG:
		return raster.Render(q.RenderSVG(), q.opts.Width, q.opts.Height, raster.PNG)
	case FormatJPEG:
		return raster.Render(q.RenderSVG(), q.opts.Width, q.opts.Height, raster.JPEG)
	case FormatWebP:
		return raster.Render(q.RenderSVG(), q.opts.Width, q.opts.Height, raster.WebP)
	case FormatPDF:
		return pdfdoc.Render(q.RenderSVG(), q.opts.Width, q.opts.Height)
	}
	return nil, fmt.Errorf("unknown output format %d", format)
}

// Save renders the code and writes it to path.
func (q *QRCode) Save(path string, format OutputFormat) error {
	data, err := q.Render(format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Update replaces the encoded data and rebuilds the matrix. The style is
// kept as-is.
func (q *QRCode) Update(data string) error {
	if data == "" {
		return ErrMissingData
	}
	matrix, err := NewMatrix(data, q.opts.QR)
	if err != nil {
		return err
	}
	q.opts.Data = data
	q.matrix = matrix
	return nil
}

// Regenerate rebuilds the matrix from the current options. Call it after
// mutating the value returned by OptionsMut.
func (q *QRCode) Regenerate() error {
	matrix, err := NewMatrix(q.opts.Data, q.opts.QR)
	if err != nil {
		return err
	}
	q.matrix = matrix
	return nil
}

// ModuleCount returns the number of modules per side of the encoded symbol.
func (q *QRCode) ModuleCount() int {
	return q.matrix.Size()
}

// Options returns the active configuration. Treat it as read-only; use
// OptionsMut to change it.
func (q *QRCode) Options() *Options {
	return q.opts
}

// OptionsMut returns the configuration for mutation. Changes to Data or QR
// only take effect after Regenerate.
func (q *QRCode) OptionsMut() *Options {
	return q.opts
}
