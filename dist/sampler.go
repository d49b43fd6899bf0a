// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "iter"

// A Sampler produces one variate per call from the distribution and
// random generator it was built from. Distributions do not retain the
// samplers they create.
//
// A Sampler is safe for concurrent use only if its generator is;
// generators are typically stateful and unsynchronized, so give each
// goroutine its own generator (or its own sampler bound to an
// independently seeded one).
type Sampler[T int | float64] interface {
	Sample() T
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc[T int | float64] func() T

func (f SamplerFunc[T]) Sample() T { return f() }

// Samples adapts a Sampler into a lazy, effectively unbounded
// sequence. Ranging over the result draws one variate per iteration;
// the sequence can be ranged over again, continuing from the
// generator's current state.
func Samples[T int | float64](s Sampler[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(s.Sample()) {
		}
	}
}

// SamplesN is like Samples but yields at most n variates.
func SamplesN[T int | float64](s Sampler[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			if !yield(s.Sample()) {
				return
			}
		}
	}
}
