// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func stdNormal(t *testing.T) Normal {
	t.Helper()
	n, err := NewNormal(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNormal(t *testing.T) {
	n := stdNormal(t)
	testFunc(t, "PDF", n.PDF, map[float64]float64{
		-2: 0.05399096651318806,
		-1: 0.24197072451914337,
		0:  0.3989422804014327,
		1:  0.24197072451914337,
		2:  0.05399096651318806,
	})
	testFunc(t, "CDF", n.CDF, map[float64]float64{
		-1:                0.15865525393145705,
		0:                 0.5,
		1:                 0.8413447460685429,
		1.959963984540054: 0.975,
	})
	if got := n.CDF(math.NaN()); !math.IsNaN(got) {
		t.Errorf("CDF(NaN) = %v, want NaN", got)
	}
	if got := n.Mean(); got != 0 {
		t.Errorf("Mean() = %v, want 0", got)
	}
	if got := n.Variance(); got != 1 {
		t.Errorf("Variance() = %v, want 1", got)
	}
	testComplement(t, "Normal", n, []float64{-8, -2, 0, 1, 3, 8})
	testRoundTrip(t, "Normal", n, []float64{
		1e-12, 0.001, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999, 1 - 1e-12,
	})
}

func TestNormalAgainstDistuv(t *testing.T) {
	for _, c := range []struct{ mean, sd float64 }{{0, 1}, {2, 3}, {-10, 0.25}} {
		n, err := NewNormal(c.mean, c.sd)
		if err != nil {
			t.Fatal(err)
		}
		ref := distuv.Normal{Mu: c.mean, Sigma: c.sd}
		for _, z := range []float64{-6, -3, -1.5, -0.5, 0, 0.5, 1.5, 3, 6} {
			x := c.mean + z*c.sd
			if want, got := ref.Prob(x), n.PDF(x); !releq(want, got, 1e-12) {
				t.Errorf("N(%v, %v): PDF(%v) = %v, want %v", c.mean, c.sd, x, got, want)
			}
			if want, got := ref.CDF(x), n.CDF(x); !releq(want, got, 1e-12) {
				t.Errorf("N(%v, %v): CDF(%v) = %v, want %v", c.mean, c.sd, x, got, want)
			}
			if want, got := ref.Survival(x), Survival(n, x); !releq(want, got, 1e-12) {
				t.Errorf("N(%v, %v): Survival(%v) = %v, want %v", c.mean, c.sd, x, got, want)
			}
		}
		for _, p := range []float64{1e-10, 0.001, 0.25, 0.5, 0.977, 1 - 1e-10} {
			want := ref.Quantile(p)
			got, err := n.InvCDF(p)
			if err != nil {
				t.Fatal(err)
			}
			if !releq(want, got, 1e-10) && math.Abs(want-got) > 1e-12 {
				t.Errorf("N(%v, %v): InvCDF(%v) = %v, want %v", c.mean, c.sd, p, got, want)
			}
		}
	}
}

// TestNormalTails exercises the functions where the naive identities
// collapse: the survival function, the log density and ranged
// probabilities deep in a tail.
func TestNormalTails(t *testing.T) {
	n := stdNormal(t)

	// The upper tail at 9 sigma is about 1.13e-19, far below the
	// resolution of 1-CDF.
	s := Survival(n, 9)
	if !(s > 1e-20 && s < 1e-18) {
		t.Errorf("Survival(9) = %v, want ~1.13e-19", s)
	}
	if got := 1 - n.CDF(9); got != 0 {
		t.Errorf("1 - CDF(9) = %v; expected the identity to collapse to 0", got)
	}

	// The density at 40 sigma underflows; its logarithm is ordinary.
	if got := LogPDF(n, 40); !aeq(-800.9189385332047, got) {
		t.Errorf("LogPDF(40) = %v, want -800.9189385332047", got)
	}
	if got := math.Log(n.PDF(40)); !math.IsInf(got, -1) {
		t.Errorf("log(PDF(40)) = %v; expected underflow to -Inf", got)
	}

	// P(10 < X <= 11) is small but well-defined; the CDF difference
	// is exactly 0.
	p, err := Probability(n, 10, 11)
	if err != nil {
		t.Fatal(err)
	}
	ref := distuv.Normal{Mu: 0, Sigma: 1}
	if want := ref.Survival(10) - ref.Survival(11); !releq(want, p, 1e-10) {
		t.Errorf("Probability(10, 11) = %v, want %v", p, want)
	}
	if diff := n.CDF(11) - n.CDF(10); diff != 0 {
		t.Errorf("CDF(11) - CDF(10) = %v; expected cancellation to 0", diff)
	}

	// InvSurvival keeps resolution for tiny p where InvCDF(1-p)
	// saturates.
	x, err := InvSurvival(n, 1e-19)
	if err != nil {
		t.Fatal(err)
	}
	if got := Survival(n, x); !releq(1e-19, got, 1e-6) {
		t.Errorf("Survival(InvSurvival(1e-19)) = %v (x = %v)", got, x)
	}
}

func TestNormalCentral(t *testing.T) {
	n := stdNormal(t)
	p, err := Probability(n, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.6826894921370859, p) {
		t.Errorf("Probability(-1, 1) = %v, want 0.6826894921370859", p)
	}
	if _, err := Probability(n, 1, -1); err == nil {
		t.Error("Probability(1, -1) did not fail")
	}
}

func TestNormalSampler(t *testing.T) {
	n := stdNormal(t)
	rng := rand.New(rand.NewPCG(42, 43))
	s := n.Sampler(rng)
	const N = 20000
	sum, sum2 := 0.0, 0.0
	for x := range SamplesN(s, N) {
		sum += x
		sum2 += x * x
	}
	mean := sum / N
	variance := sum2/N - mean*mean
	if math.Abs(mean) > 0.05 {
		t.Errorf("sample mean = %v, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Errorf("sample variance = %v, want ~1", variance)
	}
}
