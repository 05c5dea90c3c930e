// Copyright 2025 James Ross
package dedup

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// OptimalParam searches (b, r) with b*r <= numPerm for the pair that
// minimizes the weighted sum of the false-positive and false-negative
// probability mass of banded LSH at the given similarity threshold. Ported
// from the corpus's own optimal_param (datasketch's LSH parameter search),
// replacing scipy.integrate.quad with repeated-refinement Trapezoidal
// integration until successive estimates agree within 1e-6.
func OptimalParam(threshold float64, numPerm int, falsePositiveWeight, falseNegativeWeight float64) (bands, rows int) {
	minError := math.Inf(1)
	bands, rows = 1, numPerm

	for b := 1; b <= numPerm; b++ {
		maxR := numPerm / b
		for r := 1; r <= maxR; r++ {
			fp := integrateRange(0, threshold, func(s float64) float64 {
				return 1 - math.Pow(1-math.Pow(s, float64(r)), float64(b))
			})
			fn := integrateRange(threshold, 1, func(s float64) float64 {
				return 1 - (1 - math.Pow(1-math.Pow(s, float64(r)), float64(b)))
			})
			errScore := fp*falsePositiveWeight + fn*falseNegativeWeight
			if errScore < minError {
				minError = errScore
				bands, rows = b, r
			}
		}
	}
	return bands, rows
}

// integrateRange adaptively refines a trapezoidal estimate of f over
// [a, b] by doubling the sample count until successive estimates differ
// by at most 1e-6, or a point count ceiling is hit.
func integrateRange(a, b float64, f func(float64) float64) float64 {
	if a >= b {
		return 0
	}
	const tol = 1e-6
	const maxPoints = 1 << 14

	prev := math.Inf(1)
	for n := 32; n <= maxPoints; n *= 2 {
		xs := make([]float64, n+1)
		ys := make([]float64, n+1)
		step := (b - a) / float64(n)
		for i := 0; i <= n; i++ {
			x := a + float64(i)*step
			xs[i] = x
			ys[i] = f(x)
		}
		cur := integrate.Trapezoidal(xs, ys)
		if math.Abs(cur-prev) < tol {
			return cur
		}
		prev = cur
	}
	return prev
}
