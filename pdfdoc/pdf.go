// Package pdfdoc wraps rendered codes in single-page PDF documents. The SVG
// is rasterized first and the bitmap embedded at the page size, so the page
// dimensions match the requested pixel canvas point for point.
package pdfdoc

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/cristianadrielbraun/qrstyle/raster"
)

// Render produces a one-page PDF of the given SVG document.
func Render(svg string, width, height int) ([]byte, error) {
	pngBytes, err := raster.Render(svg, width, height, raster.PNG)
	if err != nil {
		return nil, err
	}

	w, h := float64(width), float64(height)
	pdf := fpdf.New("P", "pt", "", "")
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(pngBytes))
	pdf.ImageOptions("qr", 0, 0, w, h, false, opt, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfdoc: write document: %w", err)
	}
	return buf.Bytes(), nil
}
