// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncgamma

import (
	"fmt"
	"math"

	"github.com/wkingc/truncgamma/mathx"
)

// minMass is the smallest truncated-interval probability mass the moment
// and sampling formulas accept. Differences of regularized incomplete
// gamma values carry on the order of 1e-16 absolute error, so smaller
// masses leave too few significant digits to work with.
const minMass = 1e-12

// varTol is the relative tolerance below which a negative computed
// variance is attributed to floating cancellation and clamped to zero.
const varTol = 1e-8

// TruncGamma is a gamma distribution with shape Alpha and scale Theta,
// truncated to the interval [A, B]: probability mass outside the interval
// is discarded and the remainder renormalized.
//
// All methods require Alpha > 0, Theta > 0 and 0 <= A < B; use Validate
// or New to check. Moments and quantiles are recomputed from the
// parameters on each call.
type TruncGamma struct {
	// Alpha is the shape parameter. Alpha > 0.
	Alpha float64

	// Theta is the scale parameter. Theta > 0.
	Theta float64

	// A and B are the lower and upper truncation bounds. 0 <= A < B.
	A, B float64
}

// New returns the gamma distribution with the given shape and scale
// truncated to [a, b]. It fails with ErrInvalidParam if a parameter
// violates its precondition and with ErrDegenerateMass if the interval
// carries negligible probability mass.
func New(alpha, theta, a, b float64) (TruncGamma, error) {
	d := TruncGamma{Alpha: alpha, Theta: theta, A: a, B: b}
	if err := d.Validate(); err != nil {
		return TruncGamma{}, err
	}
	if _, err := d.Mass(); err != nil {
		return TruncGamma{}, err
	}
	return d, nil
}

// Validate reports whether the parameters satisfy Alpha > 0, Theta > 0
// and 0 <= A < B.
func (d TruncGamma) Validate() error {
	switch {
	case !(d.Alpha > 0):
		return fmt.Errorf("%w: shape alpha = %v, need alpha > 0", ErrInvalidParam, d.Alpha)
	case !(d.Theta > 0):
		return fmt.Errorf("%w: scale theta = %v, need theta > 0", ErrInvalidParam, d.Theta)
	case d.A < 0 || math.IsNaN(d.A):
		return fmt.Errorf("%w: lower bound A = %v, need A >= 0", ErrInvalidParam, d.A)
	case !(d.B > d.A):
		return fmt.Errorf("%w: upper bound B = %v, need B > A = %v", ErrInvalidParam, d.B, d.A)
	}
	return nil
}

// Mass returns the probability that an untruncated Gamma(Alpha, Theta)
// variate falls in [A, B]. This is the normalizing denominator of every
// truncated moment; if it is negligible both bounds sit in the
// distribution's far tail and Mass fails with ErrDegenerateMass.
func (d TruncGamma) Mass() (float64, error) {
	_, _, mass, err := d.massChecked()
	return mass, err
}

// massChecked returns the untruncated CDF at both bounds along with their
// difference, verified against minMass.
func (d TruncGamma) massChecked() (pa, pb, mass float64, err error) {
	pa, err = mathx.GammaIncReg(d.Alpha, d.A/d.Theta)
	if err != nil {
		return 0, 0, math.NaN(), err
	}
	pb, err = mathx.GammaIncReg(d.Alpha, d.B/d.Theta)
	if err != nil {
		return 0, 0, math.NaN(), err
	}
	mass = pb - pa
	if mass < minMass {
		return 0, 0, math.NaN(), fmt.Errorf("%w: P[A <= X <= B] = %.3g for alpha = %v, theta = %v, bounds [%v, %v]",
			ErrDegenerateMass, mass, d.Alpha, d.Theta, d.A, d.B)
	}
	return pa, pb, mass, nil
}

// RawMoment returns the kth raw moment E[X^k | A <= X <= B] for k >= 1.
//
// Raising the shape by k turns the moment integrand back into a gamma
// density, so the moment is a ratio of regularized incomplete gamma
// differences scaled by theta^k Γ(alpha+k)/Γ(alpha):
//
//	E[X^k | A<=X<=B] = theta^k · Π_{i<k}(alpha+i) ·
//	    [P(alpha+k, B/theta) − P(alpha+k, A/theta)] /
//	    [P(alpha,   B/theta) − P(alpha,   A/theta)]
func (d TruncGamma) RawMoment(k int) (float64, error) {
	if k < 1 {
		return math.NaN(), fmt.Errorf("%w: moment order k = %d, need k >= 1", ErrInvalidParam, k)
	}
	_, _, mass, err := d.massChecked()
	if err != nil {
		return math.NaN(), err
	}
	ak := d.Alpha + float64(k)
	na, err := mathx.GammaIncReg(ak, d.A/d.Theta)
	if err != nil {
		return math.NaN(), err
	}
	nb, err := mathx.GammaIncReg(ak, d.B/d.Theta)
	if err != nil {
		return math.NaN(), err
	}
	coef := 1.0
	for i := 0; i < k; i++ {
		coef *= (d.Alpha + float64(i)) * d.Theta
	}
	return coef * (nb - na) / mass, nil
}

// Mean returns the mean of the truncated distribution.
func (d TruncGamma) Mean() (float64, error) {
	return d.RawMoment(1)
}

// Variance returns the variance of the truncated distribution,
// m2 − m1². A slightly negative result within floating tolerance is
// clamped to zero; a larger negative result indicates an upstream
// numerical failure and is reported rather than clamped.
func (d TruncGamma) Variance() (float64, error) {
	m1, err := d.RawMoment(1)
	if err != nil {
		return math.NaN(), err
	}
	m2, err := d.RawMoment(2)
	if err != nil {
		return math.NaN(), err
	}
	v := m2 - m1*m1
	if v < 0 {
		if v < -varTol*m2 {
			return math.NaN(), fmt.Errorf("%w: variance = %v from moments m1 = %v, m2 = %v", mathx.ErrNumerical, v, m1, m2)
		}
		v = 0
	}
	return v, nil
}

// CV returns the coefficient of variation of the truncated distribution,
// the ratio of its standard deviation to its mean.
func (d TruncGamma) CV() (float64, error) {
	m, err := d.Mean()
	if err != nil {
		return math.NaN(), err
	}
	v, err := d.Variance()
	if err != nil {
		return math.NaN(), err
	}
	return math.Sqrt(v) / m, nil
}

// A Summary holds the first two central moments of a truncated gamma
// distribution together with its coefficient of variation.
type Summary struct {
	Mean     float64
	Variance float64
	CV       float64
}

// Describe returns the truncated mean, variance, and coefficient of
// variation in one call.
func (d TruncGamma) Describe() (Summary, error) {
	m, err := d.Mean()
	if err != nil {
		return Summary{}, err
	}
	v, err := d.Variance()
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: m, Variance: v, CV: math.Sqrt(v) / m}, nil
}

// Describe reports the moments of the gamma distribution with the given
// shape and scale truncated to [a, b], without invoking the solver. It is
// the diagnostic counterpart of Sample for already-known parameters.
func Describe(alpha, theta, a, b float64) (Summary, error) {
	d, err := New(alpha, theta, a, b)
	if err != nil {
		return Summary{}, err
	}
	return d.Describe()
}
