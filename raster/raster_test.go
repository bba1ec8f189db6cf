package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">
<rect x="0" y="0" width="100" height="100" fill="white"/>
<rect x="25" y="25" width="50" height="50" fill="black"/>
</svg>`

func TestRenderPNG(t *testing.T) {
	data, err := Render(testSVG, 100, 100, PNG)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestRenderJPEG(t *testing.T) {
	data, err := Render(testSVG, 100, 100, JPEG)
	require.NoError(t, err)
	require.Greater(t, len(data), 2)
	assert.Equal(t, []byte{0xFF, 0xD8}, data[:2])
}

func TestRenderWebP(t *testing.T) {
	data, err := Render(testSVG, 100, 100, WebP)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestRasterizePixels(t *testing.T) {
	img, err := Rasterize(testSVG, 100, 100)
	require.NoError(t, err)

	// Center is the black square, corners stay white.
	r, g, b, _ := img.At(50, 50).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	r, _, _, _ = img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestRasterizeScalesToFit(t *testing.T) {
	img, err := Rasterize(testSVG, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// The 50x50 center square doubles with the canvas.
	r, _, _, _ := img.At(100, 100).RGBA()
	assert.Zero(t, r)
}

func TestRasterizeEmptySVG(t *testing.T) {
	_, err := Rasterize("   ", 100, 100)
	assert.ErrorIs(t, err, ErrEmptySVG)
}

func TestRasterizeInvalidCanvas(t *testing.T) {
	_, err := Rasterize(testSVG, 0, 100)
	assert.Error(t, err)
}
