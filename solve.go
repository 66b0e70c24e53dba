package spline

//! Natural cubic spline solvers, one coordinate axis at a time.
//!
//! Both variants pin the second derivative to zero at the ends and reduce to
//! a tridiagonal linear system on the quadratic coefficients at the knots,
//! solved by forward elimination and back substitution (the Thomas
//! algorithm). The uniform variant is the special case where every segment
//! spans one parameter unit, which simplifies the forward sweep.

// Cubic holds the coefficients of a₀ + a₁t + a₂t² + a₃t³, lowest degree
// first.
type Cubic [4]float64

// Eval evaluates the cubic at t.
func (c Cubic) Eval(t float64) float64 {
	return c[0] + t*(c[1]+t*(c[2]+t*c[3]))
}

// Deriv evaluates the first derivative of the cubic at t.
func (c Cubic) Deriv(t float64) float64 {
	return c[1] + t*(2*c[2]+t*3*c[3])
}

// cubicSpan is one solved polynomial piece of a 1D spline, valid for
// parameters in [0, TMax].
type cubicSpan struct {
	Cubic
	TMax float64
}

// minStep bounds parameter spans away from zero so that coincident control
// points cannot poison the solve with NaNs.
const minStep = 1e-9

// solveUniform computes the natural cubic spline through vals with unit
// parameter spacing, returning one span per adjacent pair of values. A
// single value yields no spans.
func solveUniform(vals []float64) []cubicSpan {
	n := len(vals) - 1
	if n < 1 {
		return nil
	}

	// Quadratic coefficients at the knots. Natural ends pin c[0] and c[n] to
	// zero; each interior knot i satisfies
	//	c[i-1] + 4c[i] + c[i+1] = 3(y[i+1] - 2y[i] + y[i-1])
	c := make([]float64, n+1)
	if n > 1 {
		diag := make([]float64, n)
		rhs := make([]float64, n)
		diag[1] = 4
		rhs[1] = 3 * (vals[2] - 2*vals[1] + vals[0])
		for i := 2; i < n; i++ {
			diag[i] = 4 - 1/diag[i-1]
			rhs[i] = 3*(vals[i+1]-2*vals[i]+vals[i-1]) - rhs[i-1]/diag[i-1]
		}
		for i := n - 1; i >= 1; i-- {
			c[i] = (rhs[i] - c[i+1]) / diag[i]
		}
	}

	spans := make([]cubicSpan, n)
	for i := 0; i < n; i++ {
		a3 := (c[i+1] - c[i]) / 3
		a1 := vals[i+1] - vals[i] - c[i] - a3
		spans[i] = cubicSpan{Cubic{vals[i], a1, c[i], a3}, 1}
	}
	return spans
}

// solveNonUniform computes the natural cubic spline through vals where
// segment i covers the parameter span steps[i]. len(steps) must be
// len(vals)-1; steps are clamped below by minStep.
func solveNonUniform(vals, steps []float64) []cubicSpan {
	n := len(vals) - 1
	if n < 1 {
		return nil
	}

	h := make([]float64, n)
	for i, s := range steps {
		h[i] = max(s, minStep)
	}

	// Interior knot i satisfies
	//	h[i-1]c[i-1] + 2(h[i-1]+h[i])c[i] + h[i]c[i+1] =
	//		3((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	// with natural ends c[0] = c[n] = 0.
	c := make([]float64, n+1)
	if n > 1 {
		diag := make([]float64, n)
		rhs := make([]float64, n)
		diag[1] = 2 * (h[0] + h[1])
		rhs[1] = 3 * ((vals[2]-vals[1])/h[1] - (vals[1]-vals[0])/h[0])
		for i := 2; i < n; i++ {
			w := h[i-1] / diag[i-1]
			diag[i] = 2*(h[i-1]+h[i]) - w*h[i-1]
			rhs[i] = 3*((vals[i+1]-vals[i])/h[i]-(vals[i]-vals[i-1])/h[i-1]) - w*rhs[i-1]
		}
		for i := n - 1; i >= 1; i-- {
			c[i] = (rhs[i] - h[i]*c[i+1]) / diag[i]
		}
	}

	spans := make([]cubicSpan, n)
	for i := 0; i < n; i++ {
		a3 := (c[i+1] - c[i]) / (3 * h[i])
		a1 := (vals[i+1]-vals[i])/h[i] - h[i]*(2*c[i]+c[i+1])/3
		spans[i] = cubicSpan{Cubic{vals[i], a1, c[i], a3}, h[i]}
	}
	return spans
}
