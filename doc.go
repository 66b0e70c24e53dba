// Package spline maintains an ordered sequence of 2D control points and
// incrementally derives a smooth piecewise-cubic curve that interpolates
// them. It was designed to serve as the data model of interactive curve
// editors, where points are added, moved, and removed one at a time and the
// curve is re-solved synchronously after every change.
//
// # Splines
//
// [Spline] owns the point list and the solved curve. Two parametrizations
// are supported: the classic natural cubic spline with unit parameter
// spacing per segment, and an arclength ("constant velocity")
// parametrization where each segment's parameter span is proportional to the
// Euclidean distance between its end points. Both reduce to a tridiagonal
// linear system per coordinate axis, solved with the Thomas algorithm.
//
// The solved curve is exposed as a slice of [Segment] values, each holding
// the per-axis cubic coefficients and the shared parameter span. Rendering
// layers consume these directly, or sampled into a polyline via
// [Spline.Flatten].
//
// # Queries
//
// [Spline.NearestPoint] finds the closest existing control point within a
// radius. [Spline.Locate] finds the closest approach to the curve itself: it
// expresses the squared distance to each segment as a degree-6 polynomial in
// the segment parameter and finds the interior critical points with a
// Durand–Kerner root solver (see [Roots]). [Spline.InsertPoint] builds on
// Locate to splice new points into the middle of the curve, or onto either
// end when the query falls off the front or back.
//
// # Concurrency
//
// Spline is not safe for concurrent use. All operations run synchronously to
// completion; callers in multi-goroutine contexts must provide their own
// mutual exclusion.
package spline
