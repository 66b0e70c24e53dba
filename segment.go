package spline

// Segment is one cubic polynomial piece of a solved 2D spline, spanning two
// consecutive control points. X and Y hold the per-axis coefficients; both
// axes share the parameter range [0, TMax].
type Segment struct {
	X    Cubic
	Y    Cubic
	TMax float64
}

// Eval evaluates the segment at t.
func (s Segment) Eval(t float64) Point {
	return Point{
		X: s.X.Eval(t),
		Y: s.Y.Eval(t),
	}
}

// Deriv evaluates the segment's tangent vector at t.
func (s Segment) Deriv(t float64) Vec2 {
	return Vec2{
		X: s.X.Deriv(t),
		Y: s.Y.Deriv(t),
	}
}

// Start returns the segment's start point, which is the earlier of the two
// control points it interpolates.
func (s Segment) Start() Point {
	return s.Eval(0)
}

// End returns the segment's end point, which is the later of the two control
// points it interpolates.
func (s Segment) End() Point {
	return s.Eval(s.TMax)
}
