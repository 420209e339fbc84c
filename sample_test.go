// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncgamma

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestRvsBounds(t *testing.T) {
	d := TruncGamma{Alpha: 4, Theta: 25, A: 50, B: 200}
	xs, err := d.Rvs(2000, rand.NewSource(1))
	if err != nil {
		t.Fatalf("Rvs: unexpected error %v", err)
	}
	if len(xs) != 2000 {
		t.Fatalf("Rvs: want 2000 samples, got %d", len(xs))
	}
	for i, x := range xs {
		if x < 50 || x > 200 {
			t.Fatalf("sample %d = %v outside [50, 200]", i, x)
		}
	}
}

func TestRvsReproducible(t *testing.T) {
	xs1, err := Sample(100, 0.5, 0, 1000, 50, rand.NewSource(123))
	if err != nil {
		t.Fatalf("Sample: unexpected error %v", err)
	}
	xs2, err := Sample(100, 0.5, 0, 1000, 50, rand.NewSource(123))
	if err != nil {
		t.Fatalf("Sample: unexpected error %v", err)
	}
	for i := range xs1 {
		if xs1[i] != xs2[i] {
			t.Fatalf("sample %d differs between identically seeded runs: %v vs %v", i, xs1[i], xs2[i])
		}
	}
}

func TestSampleMoments(t *testing.T) {
	// Law-of-large-numbers check: the empirical mean and CV of a large
	// sample must converge to the requested targets.
	const n = 100000
	xs, err := Sample(100, 0.5, 0, 1000, n, rand.NewSource(123))
	if err != nil {
		t.Fatalf("Sample: unexpected error %v", err)
	}
	if len(xs) != n {
		t.Fatalf("Sample: want %d values, got %d", n, len(xs))
	}
	for i, x := range xs {
		if x < 0 || x > 1000 {
			t.Fatalf("sample %d = %v outside [0, 1000]", i, x)
		}
	}

	mean := stat.Mean(xs, nil)
	if mean < 99 || mean > 101 {
		t.Errorf("sample mean: want 100 ± 1, got %v", mean)
	}
	cv := stat.StdDev(xs, nil) / mean
	if cv < 0.48 || cv > 0.52 {
		t.Errorf("sample cv: want 0.5 ± 0.02, got %v", cv)
	}
}

func TestSampleQuantiles(t *testing.T) {
	// The empirical CDF at the solved distribution's quartiles must sit
	// near the quartile probabilities.
	const n = 100000
	d, err := Solve(100, 0.5, 0, 1000)
	if err != nil {
		t.Fatalf("Solve: unexpected error %v", err)
	}
	xs, err := d.Rvs(n, rand.NewSource(7))
	if err != nil {
		t.Fatalf("Rvs: unexpected error %v", err)
	}
	for _, q := range []float64{0.25, 0.5, 0.75} {
		xq, err := d.InvCDF(q)
		if err != nil {
			t.Fatalf("InvCDF(%v): unexpected error %v", q, err)
		}
		count := 0
		for _, x := range xs {
			if x <= xq {
				count++
			}
		}
		frac := float64(count) / n
		if frac < q-0.01 || frac > q+0.01 {
			t.Errorf("empirical CDF at quantile %v: want %v ± 0.01, got %v", q, q, frac)
		}
	}
}

func TestRandInBounds(t *testing.T) {
	d := TruncGamma{Alpha: 4, Theta: 25, A: 10, B: 500}
	x, err := d.Rand(rand.NewSource(42))
	if err != nil {
		t.Fatalf("Rand: unexpected error %v", err)
	}
	if x < 10 || x > 500 {
		t.Errorf("Rand = %v outside [10, 500]", x)
	}
}

func TestRvsNilSource(t *testing.T) {
	// A nil source falls back to the shared global stream.
	d := TruncGamma{Alpha: 4, Theta: 25, A: 0, B: 1000}
	xs, err := d.Rvs(10, nil)
	if err != nil {
		t.Fatalf("Rvs with nil source: unexpected error %v", err)
	}
	for i, x := range xs {
		if x < 0 || x > 1000 {
			t.Errorf("sample %d = %v outside [0, 1000]", i, x)
		}
	}
}

func TestSampleValidation(t *testing.T) {
	if _, err := Sample(100, 0.5, 0, 1000, 0, nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("size 0: want ErrInvalidParam, got %v", err)
	}
	if _, err := Sample(-1, 0.5, 0, 1000, 10, nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("negative mean: want ErrInvalidParam, got %v", err)
	}
	d := TruncGamma{Alpha: 4, Theta: 25, A: 0, B: 1000}
	if _, err := d.Rvs(-3, nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("negative size: want ErrInvalidParam, got %v", err)
	}
	if _, err := (TruncGamma{Alpha: 0, Theta: 25, A: 0, B: 1000}).Rvs(5, nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("invalid shape: want ErrInvalidParam, got %v", err)
	}
}
