// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the numeric kernels behind the distribution
// implementations: compensated floating-point arithmetic and the
// special-function expansions used to keep probabilities accurate at
// extreme arguments.
package mathx // import "github.com/probstat/distrib/mathx"

import "math"

const (
	// splitM multiplies a double so that rounding discards exactly
	// the low bits, leaving a high part with 26 bits of significand.
	// Dekker (1971).
	splitM = 1 + 0x1p27

	// 2*x*x neither overflows nor underflows for x in
	// [safeLower, safeUpper]. Outside that range the argument is
	// rescaled by 2^±600 (an exact operation) before squaring.
	safeUpper = 0x1p500
	safeLower = 0x1p-500
	scaleUp   = 0x1p600
	scaleDown = 0x1p-600
)

// Sqrt2XX returns sqrt(2*x*x), accurate to about 1 ULP for any finite
// x >= 0. The naive x*math.Sqrt2 can be off by more than 1 ULP, and
// squaring directly overflows above ~9.5e153 and loses the low bits of
// x*x everywhere; Sqrt2XX recovers the squaring error with an
// error-free transformation and folds it into a compensated square
// root.
//
// The caller must pass a non-negative value; the sign is stripped by
// the squaring, so a negative argument returns a defined but
// meaningless result rather than an error. NaN propagates and +Inf
// returns +Inf.
func Sqrt2XX(x float64) float64 {
	if x > safeUpper {
		if math.IsInf(x, 1) {
			return x
		}
		return sqrt2aa(x*scaleDown) * scaleUp
	}
	if x < safeLower {
		return sqrt2aa(x*scaleUp) * scaleDown
	}
	return sqrt2aa(x)
}

// sqrt2aa computes sqrt(2*a*a) assuming 2*a*a neither overflows nor
// underflows.
func sqrt2aa(a float64) float64 {
	// Error-free product: x + xx == 2*a*a exactly. The split of 2a
	// is (2ha, 2la) since doubling is exact.
	x := 2 * a * a
	ha, la := split(a)
	xx := productLow(2*ha, 2*la, ha, la, x)

	c := math.Sqrt(x)
	if xx == 0 {
		// No low-order bits were lost squaring a (e.g. a == 0 or
		// a == 1); c is already correctly rounded.
		return c
	}

	// Dekker's compensated sqrt: correct c by the residual of c*c
	// against the extended-precision square x + xx.
	hc, lc := split(c)
	u := c * c
	uu := productLow(hc, lc, hc, lc, u)
	cc := (x - u - uu + xx) * 0.5 / c
	return c + cc
}

// split returns the Dekker decomposition of v: a high part holding the
// top 26 bits of the significand and a low part with the remaining bits
// and sign information, such that v == hi + lo exactly. Splitting a NaN
// or infinity yields NaN parts.
func split(v float64) (hi, lo float64) {
	c := splitM * v
	hi = c - (c - v)
	lo = v - hi
	return
}

// productLow returns the rounding error of the product xy = x*y given
// the split parts of both factors: xy + productLow(...) == x*y exactly
// (Shewchuk, theorem 18).
func productLow(hx, lx, hy, ly, xy float64) float64 {
	return lx*ly - (((xy - hx*hy) - lx*hy) - hx*ly)
}
