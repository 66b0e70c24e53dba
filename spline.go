package spline

import "slices"

// Default parameters applied by [New].
const (
	// DefaultVelocity scales inter-point distances into parameter spans
	// under constant-velocity parametrization.
	DefaultVelocity = 0.01
	// DefaultMaxDistance is how far a query may be from the curve before
	// [Spline.Locate] reports no match.
	DefaultMaxDistance = 100.0
)

// Spline owns an ordered list of control points and the piecewise-cubic
// curve interpolating them. The curve is recomputed synchronously on every
// structural mutation; the order of insertion defines the order of the
// curve's segments. Duplicate points are permitted.
type Spline struct {
	points []Point
	curve  []Segment

	constVelocity bool

	// Velocity is the constant-velocity scale factor: with constant-velocity
	// parametrization enabled, a segment's parameter span is the distance
	// between its end points times Velocity.
	Velocity float64
	// MaxDistance is the furthest a query may be from the curve for
	// [Spline.Locate] to report a qualifying segment.
	MaxDistance float64
}

// New returns an empty spline with default parameters, using uniform
// parametrization.
func New() *Spline {
	return &Spline{
		Velocity:    DefaultVelocity,
		MaxDistance: DefaultMaxDistance,
	}
}

// Points returns the control points in insertion order. The returned slice
// is the spline's backing storage and must not be mutated.
func (s *Spline) Points() []Point {
	return s.points
}

// Curve returns the solved curve, one segment per adjacent pair of control
// points; it is empty while the spline has fewer than two points. Segment k
// interpolates points k and k+1 at t = 0 and t = TMax respectively. The
// returned slice is the spline's cache and must not be mutated.
func (s *Spline) Curve() []Segment {
	return s.curve
}

// AddPoint appends the point (x, y), with both coordinates rounded down to
// integers, and recomputes the curve.
func (s *Spline) AddPoint(x, y float64) {
	s.points = append(s.points, Pt(x, y).Floor())
	s.Recompute()
}

// RemovePoint removes the first control point equal to pt and recomputes the
// curve. Removing a point that isn't in the spline is a no-op, not an error.
func (s *Spline) RemovePoint(pt Point) {
	if i := slices.Index(s.points, pt); i != -1 {
		s.points = slices.Delete(s.points, i, i+1)
	}
	s.Recompute()
}

// RemovePointIndex removes the control point at index i and recomputes the
// curve. Out-of-range indices are a no-op.
func (s *Spline) RemovePointIndex(i int) {
	if i >= 0 && i < len(s.points) {
		s.points = slices.Delete(s.points, i, i+1)
	}
	s.Recompute()
}

// RemoveLastPoint removes the most recently inserted control point, if any,
// and recomputes the curve.
func (s *Spline) RemoveLastPoint() {
	if len(s.points) > 0 {
		s.points = s.points[:len(s.points)-1]
	}
	s.Recompute()
}

// SetPoint moves the control point at index i to (x, y) and recomputes the
// curve. Out-of-range indices are a no-op. Unlike [Spline.AddPoint], the
// coordinates are not rounded, so points can be dragged smoothly.
func (s *Spline) SetPoint(i int, x, y float64) {
	if i < 0 || i >= len(s.points) {
		return
	}
	s.points[i] = Pt(x, y)
	s.Recompute()
}

// SetConstVelocity selects between constant-velocity (true) and uniform
// (false) parametrization. It does not recompute the curve; the new
// parametrization takes effect on the next recomputation.
func (s *Spline) SetConstVelocity(b bool) {
	s.constVelocity = b
}

// Recompute re-solves both coordinate axes with the current parametrization
// and rebuilds the cached curve. Mutation operations call it themselves;
// it only needs to be called explicitly after changing [Spline.Velocity] or
// switching parametrizations.
func (s *Spline) Recompute() {
	n := len(s.points)
	if n < 2 {
		s.curve = nil
		return
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range s.points {
		xs[i], ys[i] = pt.Splat()
	}

	var sx, sy []cubicSpan
	if s.constVelocity {
		steps := make([]float64, n-1)
		for i := range steps {
			steps[i] = s.points[i].Distance(s.points[i+1]) * s.Velocity
		}
		sx = solveNonUniform(xs, steps)
		sy = solveNonUniform(ys, steps)
	} else {
		sx = solveUniform(xs)
		sy = solveUniform(ys)
	}

	s.curve = make([]Segment, n-1)
	for i := range s.curve {
		s.curve[i] = Segment{
			X:    sx[i].Cubic,
			Y:    sy[i].Cubic,
			TMax: sx[i].TMax,
		}
	}
}

// NearestPoint returns the control point closest to (x, y) among those
// within maxDist of it. Exact ties are broken in favor of the first-inserted
// point. The second return value is false when no point qualifies.
func (s *Spline) NearestPoint(x, y, maxDist float64) (Point, bool) {
	q := Pt(x, y)
	var best Point
	bestD2 := maxDist * maxDist
	found := false
	for _, pt := range s.points {
		d2 := q.DistanceSquared(pt)
		if d2 > maxDist*maxDist {
			continue
		}
		if !found || d2 < bestD2 {
			best = pt
			bestD2 = d2
			found = true
		}
	}
	return best, found
}

// InsertPoint splices the point (x, y), with coordinates rounded down to
// integers, into the curve next to its closest approach: it is prepended
// when the query falls off the front of the curve, appended when it falls
// off the back or doesn't come within [Spline.MaxDistance] of any segment,
// and otherwise inserted directly after the start point of the closest
// segment. On a spline with fewer than two points it behaves like
// [Spline.AddPoint]. The curve is recomputed afterwards.
func (s *Spline) InsertPoint(x, y float64) {
	if len(s.curve) == 0 {
		s.AddPoint(x, y)
		return
	}

	pt := Pt(x, y).Floor()
	switch loc := s.Locate(x, y); loc.Kind {
	case BeforeStart:
		s.points = slices.Insert(s.points, 0, pt)
	case AtSegment:
		s.points = slices.Insert(s.points, loc.Segment+1, pt)
	default:
		// AfterEnd and NoMatch both append.
		s.points = append(s.points, pt)
	}
	s.Recompute()
}

// Flatten samples the curve into a polyline with steps points per segment
// plus the final end point, for consumers that draw the spline as straight
// line segments.
func (s *Spline) Flatten(steps int) []Point {
	if len(s.curve) == 0 || steps < 1 {
		return nil
	}
	pts := make([]Point, 0, len(s.curve)*steps+1)
	for _, seg := range s.curve {
		for i := 0; i < steps; i++ {
			t := seg.TMax * float64(i) / float64(steps)
			pts = append(pts, seg.Eval(t))
		}
	}
	return append(pts, s.curve[len(s.curve)-1].End())
}
