// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext"

	"github.com/probstat/distrib/mathx"
)

// A Binomial is a binomial distribution: the number of successes in n
// independent Bernoulli trials, each succeeding with probability p.
// With n = 1 this is the Bernoulli distribution.
type Binomial struct {
	n    int
	p, q float64 // q = 1-p
}

// NewBinomial returns the binomial distribution for n trials with
// success probability p. n must be non-negative and p in [0, 1]; the
// degenerate p = 0 and p = 1 cases are valid.
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, errParameter("n", float64(n), 0, inf)
	}
	if !(p >= 0 && p <= 1) {
		return Binomial{}, errParameter("p", p, 0, 1)
	}
	return Binomial{n: n, p: p, q: 1 - p}, nil
}

func (b Binomial) PMF(k int) float64 {
	if k < 0 || k > b.n {
		return 0
	}
	return math.Exp(b.LogPMF(k))
}

// LogPMF computes the log mass via the saddle-point expansion rather
// than a binomial coefficient and powers, which overflow and underflow
// for n in the thousands. The k = 0 and k = n edges use the deviance
// form when the relevant probability is small, where n*log1p-style
// powers lose accuracy.
func (b Binomial) LogPMF(k int) float64 {
	if k < 0 || k > b.n {
		return math.Inf(-1)
	}
	if b.n == 0 {
		return 0
	}
	switch {
	case b.p == 0:
		if k == 0 {
			return 0
		}
		return math.Inf(-1)
	case b.p == 1:
		if k == b.n {
			return 0
		}
		return math.Inf(-1)
	}
	n := float64(b.n)
	x := float64(k)
	switch k {
	case 0:
		if b.p < 0.1 {
			return -mathx.DeviancePart(n, n*b.q) - n*b.p
		}
		return n * math.Log(b.q)
	case b.n:
		if b.q < 0.1 {
			return -mathx.DeviancePart(n, n*b.p) - n*b.q
		}
		return n * math.Log(b.p)
	}
	r := mathx.StirlingError(n) - mathx.StirlingError(x) -
		mathx.StirlingError(n-x) - mathx.DeviancePart(x, n*b.p) -
		mathx.DeviancePart(n-x, n*b.q)
	f := 2 * math.Pi * x * (n - x) / n
	return r - 0.5*math.Log(f)
}

func (b Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.n {
		return 1
	}
	// P(X <= k) is the regularized incomplete beta I_q(n-k, k+1).
	return mathext.RegIncBeta(float64(b.n-k), float64(k)+1, b.q)
}

// Survival is the complementary incomplete beta directly, accurate
// where 1-CDF cancels in the upper tail.
func (b Binomial) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	if k >= b.n {
		return 0
	}
	// P(X > k) is I_p(k+1, n-k).
	return mathext.RegIncBeta(float64(k)+1, float64(b.n-k), b.p)
}

func (b Binomial) InvCDF(pr float64) (int, error) {
	if !(pr >= 0 && pr <= 1) {
		return 0, errProbability(pr)
	}
	switch pr {
	case 0:
		return 0, nil
	case 1:
		return b.n, nil
	}
	return quantileSearch(b, pr), nil
}

func (b Binomial) InvSurvival(pr float64) (int, error) {
	if !(pr >= 0 && pr <= 1) {
		return 0, errProbability(pr)
	}
	switch pr {
	case 0:
		return b.n, nil
	case 1:
		return 0, nil
	}
	return survivalSearch(b, pr), nil
}

func (b Binomial) Mean() float64     { return float64(b.n) * b.p }
func (b Binomial) Variance() float64 { return float64(b.n) * b.p * b.q }

func (b Binomial) Support() (lo, hi int) { return 0, b.n }

// NormalApprox returns the normal approximation of b. Because the
// binomial distribution is discrete and the normal distribution is
// continuous, the caller must apply a continuity correction:
// b.PMF(k) maps to n.CDF(k+0.5) - n.CDF(k-0.5) and b.CDF(k) to
// n.CDF(k+0.5). The approximation degenerates (and errors) when the
// variance is 0.
func (b Binomial) NormalApprox() (Normal, error) {
	return NewNormal(b.Mean(), math.Sqrt(b.Variance()))
}

// Sampler returns a sampler bound to rng, drawing by inverse transform
// through the CDF.
func (b Binomial) Sampler(rng *rand.Rand) Sampler[int] {
	return SamplerFunc[int](func() int {
		k, _ := b.InvCDF(rng.Float64())
		return k
	})
}
