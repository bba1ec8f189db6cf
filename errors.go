package qrstyle

import "errors"

// Configuration errors are reported by the options builder before any
// geometry is computed. Render-time failures (encoder, image decode, SVG
// parse in the adapters) wrap these or their own causes with %w.
var (
	// ErrMissingData is returned when no data was provided for encoding.
	ErrMissingData = errors.New("no data provided for QR code")

	// ErrCanvasTooSmall is returned when width or height is below 21px,
	// the smallest possible module count.
	ErrCanvasTooSmall = errors.New("canvas dimensions too small")

	// ErrInvalidVersion is returned for explicit version numbers outside 1..40.
	ErrInvalidVersion = errors.New("invalid QR code version")

	// ErrInvalidColor is returned for malformed hex color strings.
	ErrInvalidColor = errors.New("invalid color format")

	// ErrEmptyGradient is returned by strict callers for gradients with no
	// color stops. The renderer itself degrades them to an empty paint.
	ErrEmptyGradient = errors.New("gradient must have at least one color stop")

	// ErrGeneration is returned when the underlying encoder rejects the data,
	// e.g. data too large for a fixed version.
	ErrGeneration = errors.New("QR code generation failed")
)
