package geometry

import "math"

// QuadraticRoots solves a*t^2 + b*t + c = 0 and returns the real roots.
//
// A vanishing a falls back to the linear equation (one root, or none when b
// is also zero). A non-positive discriminant yields no roots, so tangent
// rays count as misses. The two-root case uses the cancellation-free form
// q = -(b + sign(b)*sqrt(disc))/2, roots q/a and c/q.
func QuadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc <= 0 {
		return nil
	}

	sign := 1.0
	if b < 0 {
		sign = -1.0
	}
	q := -(b + sign*math.Sqrt(disc)) / 2.0

	r0 := q / a
	r1 := r0
	if q != 0 {
		r1 = c / q
	}
	return []float64{r0, r1}
}
