// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*(1-0.00000001) <= got && got <= expect*(1+0.00000001)
}

// releq returns whether got is within rel of want in relative terms.
// NaNs compare equal; infinities and zero require exact equality.
func releq(want, got, rel float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0) || want == 0:
		return want == got
	}
	return math.Abs(got-want) <= rel*math.Abs(want)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

func testIntFunc(t *testing.T, name string, f func(int) float64, vals map[int]float64) {
	t.Helper()
	ks := make([]int, 0, len(vals))
	for k := range vals {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	for _, k := range ks {
		want, got := vals[k], f(k)
		if !aeq(want, got) {
			t.Errorf("%s(%d) = %v, want %v", name, k, got, want)
		}
	}
}

// testDiscreteCDF checks that d's CDF is the running sum of its PMF
// over the low end of the support, and that it is 0 just below the
// support.
func testDiscreteCDF(t *testing.T, name string, d DiscreteDist) {
	t.Helper()
	lo, hi := d.Support()
	if hi > lo+1000 {
		hi = lo + 1000
	}
	if got := d.CDF(lo - 1); got != 0 {
		t.Errorf("%s: CDF(%d) = %v, want 0", name, lo-1, got)
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += d.PMF(k)
		if got := d.CDF(k); math.Abs(got-sum) > 1e-10 {
			t.Errorf("%s: CDF(%d) = %v, want running PMF sum %v", name, k, got, sum)
		}
	}
}

// testRoundTrip checks CDF(InvCDF(p)) == p. Only meaningful for
// continuous distributions with strictly increasing CDFs.
func testRoundTrip(t *testing.T, name string, d Dist, ps []float64) {
	t.Helper()
	for _, p := range ps {
		x, err := d.InvCDF(p)
		if err != nil {
			t.Errorf("%s: InvCDF(%v) failed: %v", name, p, err)
			continue
		}
		if got := d.CDF(x); !releq(p, got, 1e-8) {
			t.Errorf("%s: CDF(InvCDF(%v)) = %v (x = %v)", name, p, got, x)
		}
	}
}

// testComplement checks CDF(x) + Survival(x) == 1.
func testComplement(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	for _, x := range xs {
		if sum := d.CDF(x) + Survival(d, x); !aeq(1, sum) {
			t.Errorf("%s: CDF(%v) + Survival(%v) = %v, want 1", name, x, x, sum)
		}
	}
}
