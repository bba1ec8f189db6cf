package qrstyle

// ColorStop is one point along a gradient's color ramp.
type ColorStop struct {
	// Offset is the stop position in [0, 1].
	Offset float64
	// Color at this stop.
	Color Color
}

// Stop returns a color stop with the offset clamped to [0, 1].
func Stop(offset float64, color Color) ColorStop {
	if offset < 0 {
		offset = 0
	} else if offset > 1 {
		offset = 1
	}
	return ColorStop{Offset: offset, Color: color}
}

// Gradient describes a linear or radial color ramp. A gradient with no stops
// degenerates to an empty paint; callers that consider that an error should
// call Validate themselves.
type Gradient struct {
	Type GradientType
	// Rotation in radians. Only meaningful for linear gradients.
	Rotation float64
	Stops    []ColorStop
}

// Validate reports ErrEmptyGradient for a gradient with no color stops.
// The renderer itself accepts such gradients and paints nothing.
func (g *Gradient) Validate() error {
	if len(g.Stops) == 0 {
		return ErrEmptyGradient
	}
	return nil
}

// LinearGradient returns a linear gradient with rotation 0.
func LinearGradient(stops ...ColorStop) *Gradient {
	return &Gradient{Type: GradientLinear, Stops: stops}
}

// LinearGradientRotated returns a linear gradient with the given rotation
// in radians.
func LinearGradientRotated(rotation float64, stops ...ColorStop) *Gradient {
	return &Gradient{Type: GradientLinear, Rotation: rotation, Stops: stops}
}

// RadialGradient returns a radial gradient centered on the painted box.
func RadialGradient(stops ...ColorStop) *Gradient {
	return &Gradient{Type: GradientRadial, Stops: stops}
}

// SimpleLinear is a two-stop linear gradient from start to end.
func SimpleLinear(start, end Color) *Gradient {
	return LinearGradient(Stop(0, start), Stop(1, end))
}

// SimpleRadial is a two-stop radial gradient from center to edge.
func SimpleRadial(center, edge Color) *Gradient {
	return RadialGradient(Stop(0, center), Stop(1, edge))
}
