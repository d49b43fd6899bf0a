// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A Constant is the degenerate continuous distribution whose entire
// mass sits on a single value. It mostly serves to pin down the
// contract's boundary behavior: a one-point support, a CDF that steps
// from 0 to 1, and an inverse that is the same point for every valid
// probability.
type Constant struct {
	value float64
}

// NewConstant returns the distribution concentrated at value, which
// must not be NaN.
func NewConstant(value float64) (Constant, error) {
	if math.IsNaN(value) {
		return Constant{}, errParameter("value", value, math.Inf(-1), inf)
	}
	return Constant{value: value}, nil
}

// PDF returns 1 at the point of support and 0 elsewhere. A point mass
// has no true density; the unit spike is this distribution's fixed
// convention.
func (c Constant) PDF(x float64) float64 {
	if x == c.value {
		return 1
	}
	return 0
}

func (c Constant) LogPDF(x float64) float64 {
	if x == c.value {
		return 0
	}
	return math.Inf(-1)
}

func (c Constant) CDF(x float64) float64 {
	switch {
	case x < c.value:
		return 0
	case x >= c.value:
		return 1
	}
	return nan // NaN argument
}

func (c Constant) Survival(x float64) float64 {
	switch {
	case x < c.value:
		return 1
	case x >= c.value:
		return 0
	}
	return nan
}

func (c Constant) InvCDF(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return nan, errProbability(p)
	}
	return c.value, nil
}

func (c Constant) InvSurvival(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return nan, errProbability(p)
	}
	return c.value, nil
}

func (c Constant) Mean() float64     { return c.value }
func (c Constant) Variance() float64 { return 0 }

func (c Constant) Support() (lo, hi float64) { return c.value, c.value }

// Sampler returns a sampler that yields the constant regardless of the
// random source.
func (c Constant) Sampler(_ *rand.Rand) Sampler[float64] {
	return SamplerFunc[float64](func() float64 { return c.value })
}
