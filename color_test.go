package qrstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"six digit", "#1A2B3C", Color{0x1A, 0x2B, 0x3C, 0xFF}},
		{"no hash", "1A2B3C", Color{0x1A, 0x2B, 0x3C, 0xFF}},
		{"three digit expands", "#F0A", Color{0xFF, 0x00, 0xAA, 0xFF}},
		{"eight digit with alpha", "#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"black", "#000", Black},
		{"white", "#FFFFFF", White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#12", "#12345", "#GGGGGG", "#1234567"} {
		_, err := ParseColor(input)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", input)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#1A2B3C", "#ABCDEF"} {
		c, err := ParseColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}
}

func TestColorHexAlpha(t *testing.T) {
	assert.Equal(t, "#0A0B0C80", RGBA(0x0A, 0x0B, 0x0C, 0x80).Hex())
	assert.Equal(t, "#0A0B0C", RGB(0x0A, 0x0B, 0x0C).Hex())
}

func TestColorRGBAString(t *testing.T) {
	assert.Equal(t, "rgb(1, 2, 3)", RGB(1, 2, 3).RGBAString())
	assert.Equal(t, "rgba(0, 0, 0, 0.000)", Transparent.RGBAString())
}

func TestStopClamping(t *testing.T) {
	assert.Equal(t, 0.0, Stop(-0.5, Black).Offset)
	assert.Equal(t, 1.0, Stop(1.5, Black).Offset)
	assert.Equal(t, 0.25, Stop(0.25, Black).Offset)
}

func TestGradientConstructors(t *testing.T) {
	g := SimpleLinear(Black, White)
	require.Len(t, g.Stops, 2)
	assert.Equal(t, GradientLinear, g.Type)
	assert.Equal(t, 0.0, g.Rotation)

	r := SimpleRadial(Black, White)
	assert.Equal(t, GradientRadial, r.Type)

	rot := LinearGradientRotated(1.5, Stop(0, Black), Stop(1, White))
	assert.Equal(t, 1.5, rot.Rotation)
}

func TestGradientValidate(t *testing.T) {
	assert.NoError(t, SimpleLinear(Black, White).Validate())
	assert.ErrorIs(t, LinearGradient().Validate(), ErrEmptyGradient)
}
