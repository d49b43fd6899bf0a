// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// ErfDifference returns erf(y) - erf(x) without the catastrophic
// cancellation the direct difference suffers in the tails. erf
// saturates to ±1 around |z| = 6, so when x and y have the same sign
// the direct difference rounds to 0 long before the true value
// underflows; rewriting through erfc keeps the full range:
//
//	x, y >= +1/2: erfc(x) - erfc(y)
//	x, y <= -1/2: erfc(-y) - erfc(-x)
//	otherwise:    erf(y) - erf(x)
//
// The central case has no cancellation because erf is bounded by 1/2
// in magnitude on at least one side of the difference.
func ErfDifference(x, y float64) float64 {
	if x >= 0.5 && y >= 0.5 {
		return math.Erfc(x) - math.Erfc(y)
	}
	if x <= -0.5 && y <= -0.5 {
		return math.Erfc(-y) - math.Erfc(-x)
	}
	return math.Erf(y) - math.Erf(x)
}
