// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides exact, numerically robust evaluation of
// probability distribution functions: densities, cumulative and
// survival probabilities, and their inverses, for a fixed set of
// continuous and discrete distributions.
//
// Each distribution is an immutable value built by a validating
// factory; every method is a pure function of the parameters and its
// arguments, so any number of goroutines may share one instance
// without synchronization. Samplers inherit the concurrency contract
// of the random generator they are bound to, which is usually "one
// goroutine at a time".
//
// Distributions keep their cumulative and survival functions accurate
// in both tails: where the 1-CDF identity or a naive formula would
// collapse to 0 or 1, a dedicated form is used instead. The
// package-level functions (LogPDF, Survival, Probability, ...) supply
// the default derivations for third-party implementations of the Dist
// and DiscreteDist interfaces.
package dist // import "github.com/probstat/distrib/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
