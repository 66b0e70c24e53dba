package spline

import "math"

// LocationKind discriminates the result of [Spline.Locate].
type LocationKind int

const (
	// NoMatch means no point of the curve is within [Spline.MaxDistance] of
	// the query.
	NoMatch LocationKind = iota
	// BeforeStart means the query falls off the front end of the curve.
	BeforeStart
	// AfterEnd means the query falls off the back end of the curve.
	AfterEnd
	// AtSegment means the closest approach lies on the segment reported in
	// [Location.Segment].
	AtSegment
)

// Location is the result of a nearest-curve query.
type Location struct {
	Kind LocationKind
	// Segment indexes the closest segment. It is only valid when Kind is
	// AtSegment.
	Segment int
	// Distance is the distance from the query to its closest approach on
	// the curve.
	Distance float64
}

const (
	// imagTolerance bounds how far from the real axis a root estimate may
	// sit and still count as a real critical point.
	imagTolerance = 1e-6
	// endTolerance widens the off-the-end checks so that queries next to
	// the first or last control point report BeforeStart or AfterEnd
	// instead of splitting the outermost segments.
	endTolerance = 1.0
	// coeffEpsilon is the threshold below which a polynomial coefficient is
	// treated as zero when classifying degenerate segments.
	coeffEpsilon = 1e-12
)

// Locate finds the closest approach of the curve to the query point (x, y).
// The scan keeps strict improvements only, so when two segments are equally
// close the lower-indexed one wins.
//
// A query further than [Spline.MaxDistance] from the curve reports NoMatch
// no matter which segment was nominally closest. A query whose closest
// approach lies on the first segment, nearly at the first control point,
// reports BeforeStart; symmetrically for the last segment and AfterEnd.
//
// The curve must have at least one segment; callers must guard splines with
// fewer than two points.
func (s *Spline) Locate(x, y float64) Location {
	q := Pt(x, y)

	bestSeg := 0
	bestD2 := math.Inf(1)
	for k, seg := range s.curve {
		if d2, _ := nearestOnSegment(seg, q); d2 < bestD2 {
			bestD2 = d2
			bestSeg = k
		}
	}

	dist := math.Sqrt(bestD2)
	switch {
	case bestD2 > s.MaxDistance*s.MaxDistance:
		return Location{Kind: NoMatch, Distance: dist}
	case bestSeg == 0 && q.Distance(s.points[0]) < dist+endTolerance:
		return Location{Kind: BeforeStart, Distance: dist}
	case bestSeg == len(s.curve)-1 && q.Distance(s.points[len(s.points)-1]) < dist+endTolerance:
		return Location{Kind: AfterEnd, Distance: dist}
	}
	return Location{Kind: AtSegment, Segment: bestSeg, Distance: dist}
}

// nearestOnSegment returns the squared distance from q to its closest
// approach on seg, and the parameter of that approach.
//
// The squared distance to the segment is a degree-6 polynomial in the
// segment parameter; both axes fold into the same seven coefficients.
// Candidate minima are the two segment ends and the real roots of the
// degree-5 derivative that fall within [0, TMax].
func nearestOnSegment(seg Segment, q Point) (distSq, t float64) {
	var k [7]float64
	distPolyAxis(&k, seg.X, q.X)
	distPolyAxis(&k, seg.Y, q.Y)

	evalSq := func(t float64) float64 {
		v := k[6]
		for i := 5; i >= 0; i-- {
			v = v*t + k[i]
		}
		return v
	}

	distSq = evalSq(0)
	t = 0
	if d := evalSq(seg.TMax); d < distSq {
		distSq = d
		t = seg.TMax
	}
	consider := func(tc float64) {
		if tc < 0 || tc > seg.TMax {
			return
		}
		if d := evalSq(tc); d < distSq {
			distSq = d
			t = tc
		}
	}

	if math.Abs(k[3]) < coeffEpsilon && math.Abs(k[4]) < coeffEpsilon &&
		math.Abs(k[5]) < coeffEpsilon && math.Abs(k[6]) < coeffEpsilon {
		// Linear segment: the squared distance is a plain parabola with a
		// single closed-form critical point, no root solve needed. If even
		// the quadratic term vanishes the segment is a point and the ends
		// have it covered.
		if math.Abs(k[2]) > coeffEpsilon {
			consider(-k[1] / (2 * k[2]))
		}
		return distSq, t
	}

	deriv := []float64{k[1], 2 * k[2], 3 * k[3], 4 * k[4], 5 * k[5], 6 * k[6]}
	for len(deriv) > 1 && math.Abs(deriv[len(deriv)-1]) < coeffEpsilon {
		deriv = deriv[:len(deriv)-1]
	}
	for _, z := range Roots(deriv) {
		if math.Abs(imag(z)) <= imagTolerance {
			consider(real(z))
		}
	}
	return distSq, t
}

// distPolyAxis accumulates one axis's contribution to the squared-distance
// polynomial: the square of the axis cubic shifted by the query coordinate.
func distPolyAxis(k *[7]float64, c Cubic, q float64) {
	a0 := c[0] - q
	a1, a2, a3 := c[1], c[2], c[3]
	k[0] += a0 * a0
	k[1] += 2 * a0 * a1
	k[2] += a1*a1 + 2*a0*a2
	k[3] += 2 * (a0*a3 + a1*a2)
	k[4] += a2*a2 + 2*a1*a3
	k[5] += 2 * a2 * a3
	k[6] += a3 * a3
}
