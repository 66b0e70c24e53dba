package spline

import "math/cmplx"

//! Durand–Kerner (Weierstrass) simultaneous root iteration.
//!
//! All root estimates are refined at once: each estimate is corrected by the
//! ratio of the polynomial value to the product of differences from the
//! other estimates. With distinct initial estimates the iteration converges
//! to all roots of the polynomial at once.

const (
	rootsMaxIter   = 100
	rootsTolerance = 1e-12
)

// Roots computes the complex roots of the real polynomial
//
//	c[0] + c[1]x + c[2]x² + … + c[n]xⁿ
//
// with coefficients given lowest degree first. It returns one root per
// degree. The leading coefficient must be meaningfully non-zero; callers
// dealing with possibly degenerate polynomials must trim trailing
// coefficients themselves before calling.
//
// The iteration runs for at most rootsMaxIter rounds, stopping early once
// the largest estimate update falls below rootsTolerance. There is no
// explicit convergence failure: whatever the final estimates are is what is
// returned, and callers filter implausible roots (for example by imaginary
// part) downstream. Results are deterministic for identical coefficients.
func Roots(coeffs []float64) []complex128 {
	n := len(coeffs) - 1
	if n < 1 {
		return nil
	}

	// Normalize to monic.
	monic := make([]complex128, n+1)
	for i, c := range coeffs {
		monic[i] = complex(c/coeffs[n], 0)
	}

	// Initial estimates are powers of 0.4+0.9i, which is neither real nor a
	// root of unity.
	roots := make([]complex128, n)
	p := complex(1, 0)
	for i := range roots {
		p *= complex(0.4, 0.9)
		roots[i] = p
	}

	next := make([]complex128, n)
	for iter := 0; iter < rootsMaxIter; iter++ {
		var maxDelta float64
		for i, zi := range roots {
			num := evalPoly(monic, zi)
			den := complex(1, 0)
			for j, zj := range roots {
				if j != i {
					den *= zi - zj
				}
			}
			next[i] = zi - num/den
			if d := cmplx.Abs(next[i] - zi); d > maxDelta {
				maxDelta = d
			}
		}
		copy(roots, next)
		if maxDelta < rootsTolerance {
			break
		}
	}
	return roots
}

// evalPoly evaluates a polynomial with coefficients in ascending degree
// order at z, using Horner's method.
func evalPoly(coeffs []complex128, z complex128) complex128 {
	var out complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		out = out*z + coeffs[i]
	}
	return out
}
