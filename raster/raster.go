// Package raster rasterizes SVG documents into PNG, JPEG and WebP bytes.
// The parser ignores unsupported SVG features instead of failing, so
// documents carrying clip paths still rasterize their plain geometry.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Format selects the raster encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	WebP
)

const jpegQuality = 92

var ErrEmptySVG = errors.New("raster: empty svg document")

// Render rasterizes svg onto a width x height canvas and encodes it in the
// given format.
func Render(svg string, width, height int, format Format) ([]byte, error) {
	img, err := Rasterize(svg, width, height)
	if err != nil {
		return nil, err
	}
	return Encode(img, format)
}

// Rasterize draws svg scaled to fit and centered on a white width x height
// canvas.
func Rasterize(svg string, width, height int) (*image.RGBA, error) {
	if strings.TrimSpace(svg) == "" {
		return nil, ErrEmptySVG
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid canvas %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: parse svg: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(width), float64(height)
	}
	scale := min(float64(width)/vw, float64(height)/vh)
	tw, th := vw*scale, vh*scale
	icon.SetTarget((float64(width)-tw)/2, (float64(height)-th)/2, tw, th)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}

// Encode serializes img in the given format.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case WebP:
		err = nativewebp.Encode(&buf, img, nil)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("raster: encode: %w", err)
	}
	return buf.Bytes(), nil
}
