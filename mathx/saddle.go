// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// halfLog2Pi is log(2*pi)/2.
const halfLog2Pi = 0.9189385332046727417803297364056176398

// Saddle-point expansion helpers for log probability masses, after
// Catherine Loader, "Fast and Accurate Computation of Binomial
// Probabilities" (2000). Computing a Poisson or binomial mass through
// its factorials overflows for arguments far smaller than the mass
// itself warrants; decomposing the log mass into a Stirling error and
// a deviance term keeps every intermediate in range.

// StirlingError returns log(z!) - log(sqrt(2*pi*z)*(z/e)^z), the error
// of the Stirling approximation at z > 0. StirlingError(0) is 0.
func StirlingError(z float64) float64 {
	if z == 0 {
		return 0
	}
	if z < 15 {
		lg, _ := math.Lgamma(z + 1)
		return lg - (z+0.5)*math.Log(z) + z - halfLog2Pi
	}
	// Asymptotic series; converges to full precision for z >= 15.
	z2 := z * z
	return (s0 - (s1-(s2-(s3-s4/z2)/z2)/z2)/z2) / z
}

const (
	s0 = 1.0 / 12
	s1 = 1.0 / 360
	s2 = 1.0 / 1260
	s3 = 1.0 / 1680
	s4 = 1.0 / 1188
)

// DeviancePart returns x*log(x/mu) + mu - x. The direct form cancels
// badly when x is within ~10% of mu, which is exactly where probability
// masses peak; there it is evaluated by a power series in
// (x-mu)/(x+mu) instead. Both x and mu must be positive.
func DeviancePart(x, mu float64) float64 {
	if math.Abs(x-mu) < 0.1*(x+mu) {
		d := x - mu
		v := d / (x + mu)
		s := v * d
		ej := 2 * x * v
		v2 := v * v
		for j := 1; ; j++ {
			ej *= v2
			next := s + ej/float64(2*j+1)
			if next == s {
				return next
			}
			s = next
		}
	}
	return x*math.Log(x/mu) + mu - x
}

// LogFactorial returns log(k!) for k >= 0.
func LogFactorial(k int) float64 {
	lg, _ := math.Lgamma(float64(k) + 1)
	return lg
}
