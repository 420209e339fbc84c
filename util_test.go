// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncgamma

import (
	"math"
	"testing"
)

// aeq returns whether expect and got agree to a 1e-8 relative tolerance.
func aeq(expect, got float64) bool {
	return aeqTol(expect, got, 1e-8)
}

func aeqTol(expect, got, tol float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return false
	}
	diff := math.Abs(expect - got)
	return diff <= tol*math.Max(math.Abs(expect), math.Abs(got)) || diff <= tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}
