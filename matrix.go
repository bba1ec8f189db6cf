package qrstyle

import (
	"fmt"

	qrcode "github.com/yeqown/go-qrcode/v2"
)

// Matrix is an immutable square grid of dark/light modules produced by the
// encoder. All lookups are bounds-safe: out-of-range coordinates read as
// light, so callers never need to range-check neighbor queries.
type Matrix struct {
	modules []bool
	size    int
}

// matrixSink captures the encoder's bit matrix in memory. It satisfies the
// encoder's writer contract so no intermediate image is ever produced.
type matrixSink struct {
	m *Matrix
}

func (s *matrixSink) Write(mat qrcode.Matrix) error {
	size := mat.Width()
	m := &Matrix{size: size, modules: make([]bool, size*size)}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if v.IsSet() {
			m.modules[y*size+x] = true
		}
	})
	s.m = m
	return nil
}

func (s *matrixSink) Close() error { return nil }

// NewMatrix encodes data with the given options and wraps the resulting grid.
func NewMatrix(data string, opts QROptions) (*Matrix, error) {
	encOpts := []qrcode.EncodeOption{
		encoderLevel(opts.ErrorCorrection),
	}
	if opts.Version > 0 {
		encOpts = append(encOpts, qrcode.WithVersion(opts.Version))
	}
	if mode, ok := encoderMode(opts.Mode); ok {
		encOpts = append(encOpts, mode)
	}

	qrc, err := qrcode.NewWith(data, encOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var sink matrixSink
	if err := qrc.Save(&sink); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return sink.m, nil
}

func encoderLevel(l ErrorCorrectionLevel) qrcode.EncodeOption {
	switch l {
	case ECLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case ECMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case ECHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	}
}

func encoderMode(m EncodingMode) (qrcode.EncodeOption, bool) {
	switch m {
	case ModeNumeric:
		return qrcode.WithEncodingMode(qrcode.EncModeNumeric), true
	case ModeAlphanumeric:
		return qrcode.WithEncodingMode(qrcode.EncModeAlphanumeric), true
	case ModeByte:
		return qrcode.WithEncodingMode(qrcode.EncModeByte), true
	case ModeKanji:
		return qrcode.WithEncodingMode(qrcode.EncModeJP), true
	}
	return nil, false
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int { return m.size }

// IsDark reports whether the module at (row, col) is dark. Out-of-range
// coordinates are light.
func (m *Matrix) IsDark(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.modules[row*m.size+col]
}

// Neighbor reports the module at a signed offset from (row, col).
func (m *Matrix) Neighbor(row, col, dx, dy int) bool {
	return m.IsDark(row+dy, col+dx)
}

// finderLocal translates (row, col) into the local 0..6 frame of whichever
// fixed finder corner contains it. Finder patterns sit at the top-left,
// top-right and bottom-left corners for every version.
func (m *Matrix) finderLocal(row, col int) (localRow, localCol int, ok bool) {
	switch {
	case row >= 0 && row < 7 && col >= 0 && col < 7:
		return row, col, true
	case row >= 0 && row < 7 && col >= m.size-7 && col < m.size:
		return row, col - (m.size - 7), true
	case row >= m.size-7 && row < m.size && col >= 0 && col < 7:
		return row - (m.size - 7), col, true
	}
	return 0, 0, false
}

// IsFinder reports whether (row, col) lies inside one of the three 7x7
// finder-pattern regions.
func (m *Matrix) IsFinder(row, col int) bool {
	_, _, ok := m.finderLocal(row, col)
	return ok
}

// IsFinderOuter reports whether (row, col) is on the 7x7 border ring of a
// finder pattern.
func (m *Matrix) IsFinderOuter(row, col int) bool {
	r, c, ok := m.finderLocal(row, col)
	if !ok {
		return false
	}
	return r == 0 || r == 6 || c == 0 || c == 6
}

// IsFinderInner reports whether (row, col) is in the 3x3 center dot of a
// finder pattern.
func (m *Matrix) IsFinderInner(row, col int) bool {
	r, c, ok := m.finderLocal(row, col)
	if !ok {
		return false
	}
	return r >= 2 && r <= 4 && c >= 2 && c <= 4
}
