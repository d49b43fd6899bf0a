// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A UniformInt is the discrete uniform distribution on the integers
// [lower, upper], both bounds inclusive.
type UniformInt struct {
	lower, upper int
	n            float64 // number of outcomes
}

// NewUniformInt returns the discrete uniform distribution on
// [lower, upper]. lower must not exceed upper.
func NewUniformInt(lower, upper int) (UniformInt, error) {
	if lower > upper {
		return UniformInt{}, errParameter("lower", float64(lower), math.Inf(-1), float64(upper))
	}
	return UniformInt{
		lower: lower,
		upper: upper,
		n:     float64(upper) - float64(lower) + 1,
	}, nil
}

func (u UniformInt) PMF(k int) float64 {
	if k < u.lower || k > u.upper {
		return 0
	}
	return 1 / u.n
}

func (u UniformInt) LogPMF(k int) float64 {
	if k < u.lower || k > u.upper {
		return math.Inf(-1)
	}
	return -math.Log(u.n)
}

func (u UniformInt) CDF(k int) float64 {
	switch {
	case k < u.lower:
		return 0
	case k >= u.upper:
		return 1
	}
	return (float64(k) - float64(u.lower) + 1) / u.n
}

func (u UniformInt) Survival(k int) float64 {
	switch {
	case k < u.lower:
		return 1
	case k >= u.upper:
		return 0
	}
	return (float64(u.upper) - float64(k)) / u.n
}

func (u UniformInt) InvCDF(p float64) (int, error) {
	if !(p >= 0 && p <= 1) {
		return 0, errProbability(p)
	}
	if p == 0 {
		return u.lower, nil
	}
	// Smallest k with (k-lower+1)/n >= p.
	k := u.lower + int(math.Ceil(p*u.n)) - 1
	return u.clamp(k), nil
}

func (u UniformInt) InvSurvival(p float64) (int, error) {
	if !(p >= 0 && p <= 1) {
		return 0, errProbability(p)
	}
	if p == 0 {
		return u.upper, nil
	}
	// Smallest k with (upper-k)/n <= p.
	k := int(math.Ceil(float64(u.upper) - p*u.n))
	return u.clamp(k), nil
}

func (u UniformInt) clamp(k int) int {
	if k < u.lower {
		return u.lower
	}
	if k > u.upper {
		return u.upper
	}
	return k
}

func (u UniformInt) Mean() float64 {
	return (float64(u.lower) + float64(u.upper)) / 2
}

func (u UniformInt) Variance() float64 {
	return (u.n*u.n - 1) / 12
}

func (u UniformInt) Support() (lo, hi int) { return u.lower, u.upper }

// Sampler returns a sampler bound to rng.
func (u UniformInt) Sampler(rng *rand.Rand) Sampler[int] {
	span := u.upper - u.lower + 1
	return SamplerFunc[int](func() int {
		return u.lower + rng.IntN(span)
	})
}
