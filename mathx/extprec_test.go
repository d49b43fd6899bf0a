// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

// refSqrt2xx computes sqrt(2*x*x) with 200-bit arithmetic and rounds
// the result to a float64, giving the correctly rounded reference.
func refSqrt2xx(x float64) float64 {
	if math.IsInf(x, 1) {
		return x
	}
	b := new(big.Float).SetPrec(200).SetFloat64(x)
	b.Mul(b, b)
	b.Mul(b, new(big.Float).SetPrec(200).SetInt64(2))
	b.Sqrt(b)
	f, _ := b.Float64()
	return f
}

// ulpDiff returns the distance in representable values between two
// non-negative floats.
func ulpDiff(a, b float64) uint64 {
	ua, ub := math.Float64bits(a), math.Float64bits(b)
	if ua > ub {
		return ua - ub
	}
	return ub - ua
}

func TestSqrt2XX(t *testing.T) {
	cases := []float64{
		0,
		math.SmallestNonzeroFloat64,
		0x1p-1022, // smallest normal
		0x1p-501,  // just inside the underflow-avoidance path
		0x1p-500,  // largest value on that path's boundary
		1e-10,
		0.5,
		1,
		math.Sqrt2,
		2,
		3.141592653589793,
		1e10,
		1e150,
		1e300,
		0x1p500, // boundary of the direct path
		0x1p501, // just inside the overflow-avoidance path
		math.MaxFloat64,
	}
	for _, x := range cases {
		got := Sqrt2XX(x)
		want := refSqrt2xx(x)
		if d := ulpDiff(want, got); d > 1 {
			t.Errorf("Sqrt2XX(%g) = %g, want %g (%d ULPs apart)", x, got, want, d)
		}
	}
}

func TestSqrt2XXSpecial(t *testing.T) {
	if got := Sqrt2XX(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Sqrt2XX(+Inf) = %v, want +Inf", got)
	}
	if got := Sqrt2XX(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Sqrt2XX(NaN) = %v, want NaN", got)
	}
	if got := Sqrt2XX(0); got != 0 {
		t.Errorf("Sqrt2XX(0) = %v, want 0", got)
	}
}

func TestSqrt2XXRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		// Random significand across the full exponent range,
		// exercising both rescaling paths.
		x := math.Ldexp(1+rng.Float64(), rng.IntN(2000)-1000)
		got := Sqrt2XX(x)
		want := refSqrt2xx(x)
		if d := ulpDiff(want, got); d > 1 {
			t.Fatalf("Sqrt2XX(%g) = %g, want %g (%d ULPs apart)", x, got, want, d)
		}
	}
}

// TestSqrt2XXBeatsNaive pins down why the compensated form exists: the
// naive product drifts beyond 1 ULP from the correctly rounded result
// for some arguments where Sqrt2XX stays within it.
func TestSqrt2XXBeatsNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	worstNaive := uint64(0)
	for i := 0; i < 100000; i++ {
		x := math.Ldexp(1+rng.Float64(), rng.IntN(100)-50)
		want := refSqrt2xx(x)
		if d := ulpDiff(want, x*math.Sqrt2); d > worstNaive {
			worstNaive = d
		}
		if d := ulpDiff(want, Sqrt2XX(x)); d > 1 {
			t.Fatalf("Sqrt2XX(%g): %d ULPs from reference", x, d)
		}
	}
	if worstNaive < 2 {
		t.Skipf("naive product never exceeded 1 ULP in this sample")
	}
}

func TestSplit(t *testing.T) {
	for _, v := range []float64{0, 1, math.Pi, 1e-30, 1e30, -2.5, math.Sqrt2} {
		hi, lo := split(v)
		if hi+lo != v {
			t.Errorf("split(%g): %g + %g != %g", v, hi, lo, v)
		}
		// The high part must carry at most 26 bits of significand
		// so that hi*hi is exact.
		if hi != 0 {
			frac, exp := math.Frexp(hi)
			if scaled := math.Ldexp(frac, 27); scaled != math.Trunc(scaled) {
				t.Errorf("split(%g): high part %g (exp %d) has more than 27 bits", v, hi, exp)
			}
		}
	}
}

func BenchmarkSqrt2XX(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sqrt2XX(1.2345678987654321e-7)
	}
}
