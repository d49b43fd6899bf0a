// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A Laplace is a Laplace (double exponential) distribution with
// location mu and scale beta.
type Laplace struct {
	mu, beta float64
	log2Beta float64 // log(2*beta), the log-density normalization term
}

// NewLaplace returns the Laplace distribution with the given location
// and scale. beta must be positive.
func NewLaplace(mu, beta float64) (Laplace, error) {
	if !(beta > 0) {
		return Laplace{}, errParameter("beta", beta, 0, inf)
	}
	return Laplace{mu: mu, beta: beta, log2Beta: math.Log(2 * beta)}, nil
}

// PDF returns the density at x. The density is not differentiable at
// mu; by convention PDF(mu) is the peak value 1/(2*beta).
func (l Laplace) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-l.mu) / l.beta) / (2 * l.beta)
}

func (l Laplace) LogPDF(x float64) float64 {
	return -math.Abs(x-l.mu)/l.beta - l.log2Beta
}

func (l Laplace) CDF(x float64) float64 {
	if x <= l.mu {
		return 0.5 * math.Exp((x-l.mu)/l.beta)
	}
	return 1 - 0.5*math.Exp(-(x-l.mu)/l.beta)
}

// Survival mirrors CDF so that each tail is a bare exponential with no
// subtraction from 1.
func (l Laplace) Survival(x float64) float64 {
	if x >= l.mu {
		return 0.5 * math.Exp(-(x-l.mu) / l.beta)
	}
	return 1 - 0.5*math.Exp((x-l.mu)/l.beta)
}

func (l Laplace) InvCDF(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return nan, errProbability(p)
	}
	switch {
	case p == 0:
		return math.Inf(-1), nil
	case p == 1:
		return inf, nil
	case p == 0.5:
		return l.mu, nil
	case p < 0.5:
		return l.mu + l.beta*math.Log(2*p), nil
	}
	return l.mu - l.beta*math.Log(2*(1-p)), nil
}

// InvSurvival mirrors InvCDF through the symmetry about mu; composing
// InvCDF with 1-p would round small p away.
func (l Laplace) InvSurvival(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return nan, errProbability(p)
	}
	switch {
	case p == 0:
		return inf, nil
	case p == 1:
		return math.Inf(-1), nil
	case p == 0.5:
		return l.mu, nil
	case p < 0.5:
		return l.mu - l.beta*math.Log(2*p), nil
	}
	return l.mu + l.beta*math.Log(2*(1-p)), nil
}

func (l Laplace) Mean() float64     { return l.mu }
func (l Laplace) Variance() float64 { return 2 * l.beta * l.beta }

func (l Laplace) Support() (lo, hi float64) { return math.Inf(-1), inf }

// median is the hook that lets the default ranged Probability split at
// mu and difference survival functions in the upper tail.
func (l Laplace) median() float64 { return l.mu }

// Sampler returns a sampler bound to rng, drawing by exponential
// symmetry: an exponential deviate with scale beta, reflected to
// either side of mu with equal probability.
func (l Laplace) Sampler(rng *rand.Rand) Sampler[float64] {
	return SamplerFunc[float64](func() float64 {
		e := l.beta * rng.ExpFloat64()
		if rng.Uint64()&1 == 0 {
			return l.mu + e
		}
		return l.mu - e
	})
}
