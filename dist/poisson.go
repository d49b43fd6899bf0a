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

// A Poisson is a Poisson distribution with the given mean.
type Poisson struct {
	mean float64
}

// NewPoisson returns the Poisson distribution with the given mean.
// mean must be positive.
func NewPoisson(mean float64) (Poisson, error) {
	if !(mean > 0) {
		return Poisson{}, errParameter("mean", mean, 0, inf)
	}
	return Poisson{mean: mean}, nil
}

func (p Poisson) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	return math.Exp(p.LogPMF(k))
}

// LogPMF computes the log mass through the Stirling-error/deviance
// decomposition of the saddle-point expansion. The textbook
// mean^k*exp(-mean)/k! overflows its numerator long before the mass
// itself underflows; the decomposition keeps every term in range for
// any representable k and mean.
func (p Poisson) LogPMF(k int) float64 {
	if k < 0 {
		return math.Inf(-1)
	}
	if k == 0 {
		return -p.mean
	}
	x := float64(k)
	return -mathx.StirlingError(x) - mathx.DeviancePart(x, p.mean) -
		0.5*math.Log(2*math.Pi*x)
}

func (p Poisson) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return mathext.GammaIncRegComp(float64(k)+1, p.mean)
}

// Survival is the lower regularized incomplete gamma directly; the
// 1-CDF identity is useless once CDF rounds to 1, a few standard
// deviations above the mean.
func (p Poisson) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	return mathext.GammaIncReg(float64(k)+1, p.mean)
}

func (p Poisson) InvCDF(pr float64) (int, error) {
	if !(pr >= 0 && pr <= 1) {
		return 0, errProbability(pr)
	}
	switch pr {
	case 0:
		return 0, nil
	case 1:
		return math.MaxInt32, nil
	}
	return quantileSearch(p, pr), nil
}

// InvSurvival searches the survival function directly, keeping
// resolution for p far below the spacing of 1-p.
func (p Poisson) InvSurvival(pr float64) (int, error) {
	if !(pr >= 0 && pr <= 1) {
		return 0, errProbability(pr)
	}
	switch pr {
	case 0:
		return math.MaxInt32, nil
	case 1:
		return 0, nil
	}
	return survivalSearch(p, pr), nil
}

func (p Poisson) Mean() float64     { return p.mean }
func (p Poisson) Variance() float64 { return p.mean }

func (p Poisson) Support() (lo, hi int) { return 0, math.MaxInt32 }

const (
	// Below this mean the multiplication method needs few uniform
	// draws and exp(-mean) is comfortably normal.
	poissonSmallMean = 40

	// Above half of MaxInt32 the exact sampler's intermediate
	// arithmetic would leave 32-bit integer range; switch to the
	// Gaussian limit, which is indistinguishable at that scale.
	poissonGaussianMean = math.MaxInt32 / 2
)

// Sampler returns a sampler bound to rng. Small means use Knuth's
// exact multiplication method; means up to poissonGaussianMean use
// exact inversion of the CDF at a uniform deviate; larger means use a
// rounded Gaussian approximation.
func (p Poisson) Sampler(rng *rand.Rand) Sampler[int] {
	switch {
	case p.mean < poissonSmallMean:
		return SamplerFunc[int](func() int {
			return poissonKnuth(rng, p.mean)
		})
	case p.mean <= poissonGaussianMean:
		return SamplerFunc[int](func() int {
			return quantileSearch(p, rng.Float64())
		})
	}
	sd := math.Sqrt(p.mean)
	return SamplerFunc[int](func() int {
		k := math.Round(p.mean + sd*rng.NormFloat64())
		if k < 0 {
			return 0
		}
		if k > math.MaxInt32 {
			return math.MaxInt32
		}
		return int(k)
	})
}

// poissonKnuth is the classic multiplication method: multiply uniform
// deviates until the product drops below exp(-mean). Exact, with
// mean+1 draws per sample on average.
func poissonKnuth(rng *rand.Rand, mean float64) int {
	t := math.Exp(-mean)
	k := 0
	for prod := rng.Float64(); prod > t; prod *= rng.Float64() {
		k++
	}
	return k
}
