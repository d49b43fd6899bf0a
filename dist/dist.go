// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// A Dist is a continuous statistical distribution.
//
// The interface lists only the required methods. The derived
// operations — log density, survival probability, ranged probability
// and the inverse survival function — are provided by the
// package-level functions of the same names, which use a
// distribution's own implementation when it has one (see LogPDFer and
// friends) and fall back to the textbook identities otherwise.
type Dist interface {
	// PDF returns the value of the probability density function of
	// this distribution at x. Where the derivative does not exist,
	// each distribution documents and fixes its own convention.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function at x, P(X <= x). It is non-decreasing over the
	// whole real line and saturates to 0 below the support and to
	// 1 above it. A NaN argument yields NaN.
	CDF(x float64) float64

	// InvCDF returns the generalized inverse (quantile function)
	// of the CDF: the smallest x with CDF(x) >= p. InvCDF(0) is
	// the support's lower bound and InvCDF(1) its upper bound. It
	// returns an *ArgError of kind ErrInvalidProbability when p is
	// outside [0, 1].
	InvCDF(p float64) (float64, error)

	// Mean returns the distribution's mean. It may be NaN or
	// infinite where the mean is undefined.
	Mean() float64

	// Variance returns the distribution's variance. It may be NaN
	// or infinite where the variance is undefined.
	Variance() float64

	// Support returns the bounds of the distribution's support:
	// CDF is 0 at and below lo' for every lo' < lo and 1 at and
	// above hi. They equal InvCDF(0) and InvCDF(1).
	Support() (lo, hi float64)
}

// A DiscreteDist is a statistical distribution over the integers.
type DiscreteDist interface {
	// PMF returns the probability mass at k, P(X == k).
	PMF(k int) float64

	// CDF returns P(X <= k). It is non-decreasing and saturates to
	// 0 below the support and to 1 at and above its upper bound.
	CDF(k int) float64

	// InvCDF returns the smallest k with CDF(k) >= p, the
	// generalized inverse of the CDF. InvCDF(0) is the support's
	// lower bound and InvCDF(1) its upper bound. It returns an
	// *ArgError of kind ErrInvalidProbability when p is outside
	// [0, 1].
	InvCDF(p float64) (int, error)

	// Mean returns the distribution's mean.
	Mean() float64

	// Variance returns the distribution's variance.
	Variance() float64

	// Support returns the inclusive integer bounds of the support.
	Support() (lo, hi int)
}

// A LogPDFer computes its log density directly. Distributions
// implement it whenever log(PDF(x)) loses precision — in particular
// deep in the tails, where the density underflows to 0 while its
// logarithm is still a perfectly ordinary negative number.
type LogPDFer interface {
	LogPDF(x float64) float64
}

// A Survivaler computes P(X > x) directly. Distributions implement it
// whenever 1-CDF(x) cancels, i.e. as soon as CDF(x) rounds to 1.
type Survivaler interface {
	Survival(x float64) float64
}

// An InvSurvivaler computes the inverse survival function directly.
// Distributions implement it when InvCDF(1-p) loses resolution for p
// near 0 or 1.
type InvSurvivaler interface {
	InvSurvival(p float64) (float64, error)
}

// A Prober computes ranged probabilities P(x0 < X <= x1) directly,
// avoiding the cancellation of the CDF difference when both endpoints
// are in the same tail.
type Prober interface {
	Probability(x0, x1 float64) (float64, error)
}

// Discrete counterparts of the override interfaces above.

type LogPMFer interface {
	LogPMF(k int) float64
}

type DiscreteSurvivaler interface {
	Survival(k int) float64
}

type DiscreteInvSurvivaler interface {
	InvSurvival(p float64) (int, error)
}

type DiscreteProber interface {
	Probability(k0, k1 int) (float64, error)
}

// medianer is an internal override hook: a distribution with a cheap
// median lets the default ranged Probability difference survival
// functions instead of CDFs when both endpoints lie above the median.
type medianer interface {
	median() float64
}

// LogPDF returns the natural log of d's density at x, using d's own
// LogPDF when it provides one.
func LogPDF(d Dist, x float64) float64 {
	if o, ok := d.(LogPDFer); ok {
		return o.LogPDF(x)
	}
	return math.Log(d.PDF(x))
}

// Survival returns P(X > x) for d, using d's own Survival when it
// provides one and 1-CDF(x) otherwise.
func Survival(d Dist, x float64) float64 {
	if o, ok := d.(Survivaler); ok {
		return o.Survival(x)
	}
	return 1 - d.CDF(x)
}

// Probability returns P(x0 < X <= x1) for d. It returns an *ArgError
// of kind ErrInvalidRange when x0 > x1.
//
// The default is CDF(x1) - CDF(x0); when d has a known median and both
// endpoints lie at or above it, the survival difference
// Survival(x0) - Survival(x1) is used instead so upper-tail ranges do
// not cancel to 0.
func Probability(d Dist, x0, x1 float64) (float64, error) {
	if x0 > x1 {
		return 0, errRange(x0, x1)
	}
	if o, ok := d.(Prober); ok {
		return o.Probability(x0, x1)
	}
	if m, ok := d.(medianer); ok && x0 >= m.median() {
		return Survival(d, x0) - Survival(d, x1), nil
	}
	return d.CDF(x1) - d.CDF(x0), nil
}

// InvSurvival returns the generalized inverse of d's survival
// function: the smallest x with Survival(x) <= p. The default is
// InvCDF(1-p); distributions override it when that composition rounds
// p away. It returns an *ArgError of kind ErrInvalidProbability when p
// is outside [0, 1].
func InvSurvival(d Dist, p float64) (float64, error) {
	if o, ok := d.(InvSurvivaler); ok {
		return o.InvSurvival(p)
	}
	if !(p >= 0 && p <= 1) {
		return nan, errProbability(p)
	}
	return d.InvCDF(1 - p)
}

// LogPMF returns the natural log of d's mass at k, using d's own
// LogPMF when it provides one.
func LogPMF(d DiscreteDist, k int) float64 {
	if o, ok := d.(LogPMFer); ok {
		return o.LogPMF(k)
	}
	return math.Log(d.PMF(k))
}

// DiscreteSurvival returns P(X > k) for d, using d's own Survival when
// it provides one and 1-CDF(k) otherwise.
func DiscreteSurvival(d DiscreteDist, k int) float64 {
	if o, ok := d.(DiscreteSurvivaler); ok {
		return o.Survival(k)
	}
	return 1 - d.CDF(k)
}

// DiscreteProbability returns P(k0 < X <= k1) for d. It returns an
// *ArgError of kind ErrInvalidRange when k0 > k1.
func DiscreteProbability(d DiscreteDist, k0, k1 int) (float64, error) {
	if k0 > k1 {
		return 0, errRange(float64(k0), float64(k1))
	}
	if o, ok := d.(DiscreteProber); ok {
		return o.Probability(k0, k1)
	}
	return d.CDF(k1) - d.CDF(k0), nil
}

// DiscreteInvSurvival returns the smallest k with Survival(k) <= p,
// defaulting to InvCDF(1-p). It returns an *ArgError of kind
// ErrInvalidProbability when p is outside [0, 1].
func DiscreteInvSurvival(d DiscreteDist, p float64) (int, error) {
	if o, ok := d.(DiscreteInvSurvivaler); ok {
		return o.InvSurvival(p)
	}
	if !(p >= 0 && p <= 1) {
		return 0, errProbability(p)
	}
	return d.InvCDF(1 - p)
}

// quantileSearch returns the smallest k in d's support with
// CDF(k) >= p, for p in (0, 1). It brackets the answer using the
// Chebyshev inequality on d's moments and refines by bisection, so the
// cost is O(log range) CDF evaluations even for huge-mean
// distributions.
func quantileSearch(d DiscreteDist, p float64) int {
	lo, hi := d.Support()
	l, h := chebyshevBracket(d, p, 1-p)

	// The Chebyshev bound can clip the answer when p is very close
	// to a CDF step; grow the bracket until CDF(h) >= p holds.
	for d.CDF(int(h)) < p {
		if h >= int64(hi) {
			return hi
		}
		delta := h - l + 1
		l = h
		h += delta
		if h > int64(hi) {
			h = int64(hi)
		}
	}
	for l > int64(lo) && d.CDF(int(l)) >= p {
		delta := h - l + 1
		h = l
		l -= delta
		if l < int64(lo) {
			l = int64(lo)
		}
	}

	// Invariant: CDF(h) >= p and (l == lo or CDF(l) < p).
	for h-l > 1 {
		m := l + (h-l)/2
		if d.CDF(int(m)) >= p {
			h = m
		} else {
			l = m
		}
	}
	if l == int64(lo) && d.CDF(int(l)) >= p {
		return int(l)
	}
	return int(h)
}

// survivalSearch returns the smallest k in d's support with
// Survival(k) <= p, for p in (0, 1). It is quantileSearch on the
// survival function: evaluating the survival side directly preserves
// resolution when p is far below the spacing of 1-p.
func survivalSearch(d DiscreteDist, p float64) int {
	lo, hi := d.Support()
	l, h := chebyshevBracket(d, 1-p, p)

	for DiscreteSurvival(d, int(h)) > p {
		if h >= int64(hi) {
			return hi
		}
		delta := h - l + 1
		l = h
		h += delta
		if h > int64(hi) {
			h = int64(hi)
		}
	}
	for l > int64(lo) && DiscreteSurvival(d, int(l)) <= p {
		delta := h - l + 1
		h = l
		l -= delta
		if l < int64(lo) {
			l = int64(lo)
		}
	}

	for h-l > 1 {
		m := l + (h-l)/2
		if DiscreteSurvival(d, int(m)) <= p {
			h = m
		} else {
			l = m
		}
	}
	if l == int64(lo) && DiscreteSurvival(d, int(l)) <= p {
		return int(l)
	}
	return int(h)
}

// chebyshevBracket returns an int64 bracket around the p-quantile of d
// derived from the one-sided Chebyshev inequality: the quantile lies in
// [mu - sigma*sqrt(q/p), mu + sigma*sqrt(p/q)] where q = 1-p. The
// bracket degrades gracefully to the full support when the moments are
// degenerate. p and q are passed separately so callers working on the
// survival side can supply the accurate complement.
func chebyshevBracket(d DiscreteDist, p, q float64) (l, h int64) {
	lo, hi := d.Support()
	l, h = int64(lo), int64(hi)
	mu := d.Mean()
	sigma := math.Sqrt(d.Variance())
	if !(sigma > 0) || math.IsInf(sigma, 1) || math.IsNaN(mu) {
		return l, h
	}
	if b := math.Floor(mu - sigma*math.Sqrt(q/p)); b > float64(l) && b <= float64(h) {
		l = int64(b) - 1
	}
	if b := math.Ceil(mu + sigma*math.Sqrt(p/q)); b < float64(h) && b >= float64(l) {
		h = int64(b) + 1
	}
	return l, h
}
