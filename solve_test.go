package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

const solveEpsilon = 1e-9

func TestSolveUniformInterpolates(t *testing.T) {
	vals := []float64{0, 3, 1, 4, 2}
	spans := solveUniform(vals)
	if len(spans) != len(vals)-1 {
		t.Fatalf("got %d spans, want %d", len(spans), len(vals)-1)
	}
	for i, sp := range spans {
		diff(t, vals[i], sp.Eval(0), cmpopts.EquateApprox(0, solveEpsilon))
		diff(t, vals[i+1], sp.Eval(sp.TMax), cmpopts.EquateApprox(0, solveEpsilon))
		diff(t, 1.0, sp.TMax)
	}
}

func TestSolveUniformSystem(t *testing.T) {
	// The quadratic coefficients must satisfy the defining tridiagonal
	// system with natural boundary conditions.
	vals := []float64{2, -1, 4, 0, 3, 3}
	spans := solveUniform(vals)
	n := len(spans)

	c := make([]float64, n+1)
	for i, sp := range spans {
		c[i] = sp.Cubic[2]
	}
	last := spans[n-1]
	c[n] = last.Cubic[2] + 3*last.Cubic[3]

	diff(t, 0.0, c[0])
	diff(t, 0.0, c[n], cmpopts.EquateApprox(0, solveEpsilon))
	for i := 1; i < n; i++ {
		lhs := c[i-1] + 4*c[i] + c[i+1]
		rhs := 3 * (vals[i+1] - 2*vals[i] + vals[i-1])
		diff(t, rhs, lhs, cmpopts.EquateApprox(0, solveEpsilon))
	}
}

func TestSolveUniformSmoothness(t *testing.T) {
	vals := []float64{0, 5, -2, 7, 1}
	spans := solveUniform(vals)
	for i := 0; i+1 < len(spans); i++ {
		// First derivative continuity at the interior knots.
		diff(t, spans[i+1].Deriv(0), spans[i].Deriv(spans[i].TMax),
			cmpopts.EquateApprox(0, solveEpsilon))
		// Second derivative continuity: 2a₂ + 6a₃t is continuous as well.
		d2End := 2*spans[i].Cubic[2] + 6*spans[i].Cubic[3]*spans[i].TMax
		d2Start := 2 * spans[i+1].Cubic[2]
		diff(t, d2Start, d2End, cmpopts.EquateApprox(0, solveEpsilon))
	}
}

func TestSolveUniformCollinear(t *testing.T) {
	// Equally spaced collinear values must solve to exactly linear pieces.
	spans := solveUniform([]float64{0, 10, 20})
	for _, sp := range spans {
		diff(t, 0.0, sp.Cubic[2], cmpopts.EquateApprox(0, solveEpsilon))
		diff(t, 0.0, sp.Cubic[3], cmpopts.EquateApprox(0, solveEpsilon))
	}
}

func TestSolveNonUniformInterpolates(t *testing.T) {
	vals := []float64{0, 2, 5, 3}
	steps := []float64{1.5, 0.5, 2}
	spans := solveNonUniform(vals, steps)
	if len(spans) != len(vals)-1 {
		t.Fatalf("got %d spans, want %d", len(spans), len(vals)-1)
	}
	for i, sp := range spans {
		diff(t, steps[i], sp.TMax)
		diff(t, vals[i], sp.Eval(0), cmpopts.EquateApprox(0, solveEpsilon))
		diff(t, vals[i+1], sp.Eval(sp.TMax), cmpopts.EquateApprox(0, solveEpsilon))
	}
}

func TestSolveNonUniformSmoothness(t *testing.T) {
	vals := []float64{1, 4, -3, 0, 2}
	steps := []float64{0.3, 1.2, 0.7, 2.1}
	spans := solveNonUniform(vals, steps)
	for i := 0; i+1 < len(spans); i++ {
		diff(t, spans[i+1].Deriv(0), spans[i].Deriv(spans[i].TMax),
			cmpopts.EquateApprox(0, solveEpsilon))
		d2End := 2*spans[i].Cubic[2] + 6*spans[i].Cubic[3]*spans[i].TMax
		d2Start := 2 * spans[i+1].Cubic[2]
		diff(t, d2Start, d2End, cmpopts.EquateApprox(0, solveEpsilon))
	}
}

func TestSolveNonUniformZeroStep(t *testing.T) {
	// Coincident points produce a zero step; the clamp must keep all
	// coefficients finite.
	spans := solveNonUniform([]float64{5, 5, 8}, []float64{0, 1})
	for _, sp := range spans {
		for _, a := range sp.Cubic {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				t.Fatalf("got non-finite coefficient %v", a)
			}
		}
	}
}

func TestSolveTooFewValues(t *testing.T) {
	if got := solveUniform([]float64{3}); got != nil {
		t.Errorf("got %v for a single value, want no spans", got)
	}
	if got := solveNonUniform([]float64{3}, nil); got != nil {
		t.Errorf("got %v for a single value, want no spans", got)
	}
	if got := solveUniform(nil); got != nil {
		t.Errorf("got %v for no values, want no spans", got)
	}
}

func TestCubicEvalDeriv(t *testing.T) {
	c := Cubic{1, -2, 3, 0.5}
	diff(t, 1.0, c.Eval(0))
	diff(t, 2.5, c.Eval(1))

	// Compare the analytic derivative against a finite difference.
	const delta = 1e-6
	for _, ts := range []float64{0, 0.25, 0.5, 1, 2} {
		approx := (c.Eval(ts+delta) - c.Eval(ts)) / delta
		diff(t, approx, c.Deriv(ts), cmpopts.EquateApprox(0, delta*100))
	}
}
