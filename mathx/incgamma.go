// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the special functions needed by the truncated
// gamma distribution: the regularized lower incomplete gamma function and
// its inverse.
//
// The numerics are delegated to gonum's mathext package, which is stable
// for shape parameters spanning many orders of magnitude. Unlike mathext,
// which panics on domain violations, these wrappers validate their
// arguments and return errors.
package mathx

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// ErrDomain is returned when an argument falls outside a function's
// domain by more than floating tolerance.
var ErrDomain = errors.New("argument outside function domain")

// ErrNumerical is returned when the iterative inversion of the incomplete
// gamma function fails to produce a usable value.
var ErrNumerical = errors.New("incomplete gamma inversion failed")

// clampTol is how far a probability may drift outside [0, 1] before it is
// treated as a domain error rather than floating noise.
const clampTol = 1e-10

// GammaIncReg returns the regularized lower incomplete gamma function
//
//	P(a, x) = 1/Γ(a) ∫₀ˣ t^(a-1) e^(-t) dt
//
// for a > 0 and x ≥ 0. P(a, x) is monotone increasing in x, with
// P(a, 0) = 0 and P(a, x) → 1 as x → ∞.
func GammaIncReg(a, x float64) (float64, error) {
	if !(a > 0) {
		return math.NaN(), fmt.Errorf("%w: shape a = %v, need a > 0", ErrDomain, a)
	}
	if x < 0 || math.IsNaN(x) {
		return math.NaN(), fmt.Errorf("%w: x = %v, need x ≥ 0", ErrDomain, x)
	}
	return mathext.GammaIncReg(a, x), nil
}

// GammaIncRegInv returns x such that GammaIncReg(a, x) = p for a > 0 and
// p in [0, 1]. Probabilities within clamp tolerance of [0, 1] are clamped;
// anything farther out is a domain error. By convention p = 1 maps to +Inf.
func GammaIncRegInv(a, p float64) (float64, error) {
	if !(a > 0) {
		return math.NaN(), fmt.Errorf("%w: shape a = %v, need a > 0", ErrDomain, a)
	}
	switch {
	case p >= 0 && p <= 1:
		// In domain.
	case p < 0 && p > -clampTol:
		p = 0
	case p > 1 && p < 1+clampTol:
		p = 1
	default:
		return math.NaN(), fmt.Errorf("%w: probability p = %v, need p in [0, 1]", ErrDomain, p)
	}
	switch p {
	case 0:
		return 0, nil
	case 1:
		return math.Inf(1), nil
	}
	x := mathext.GammaIncRegInv(a, p)
	if math.IsNaN(x) || x < 0 {
		return math.NaN(), fmt.Errorf("%w: a = %v, p = %v", ErrNumerical, a, p)
	}
	return x, nil
}
