// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncgamma

import (
	"fmt"
	"math"
)

// Search budgets and tolerances for the moment-matching solver. Bisection
// runs until the bracket shrinks to bisectTol relative width (at most
// maxBisect steps) or the residual falls below residTol. These constants
// pin the solved alpha and theta down to the last few significant digits,
// so they are part of the reproducibility contract.
const (
	maxExpand = 60       // bracket expansion attempts per direction
	maxBisect = 200      // bisection steps
	bisectTol = 1e-13    // relative bracket width
	residTol  = 1e-10    // absolute residual
	minStep   = 1 + 1e-6 // smallest expansion step before a direction is closed
)

// Solve finds the shape and scale (alpha, theta) such that the gamma
// distribution truncated to [a, b] has mean meanTarget and coefficient of
// variation cvTarget.
//
// The two-dimensional system is reduced to a scalar search: for each
// trial alpha, theta is solved so that the truncated mean matches
// meanTarget exactly (the mean is monotone increasing in theta at fixed
// alpha and bounds), and alpha is then bracketed and bisected on the CV
// residual (the CV is monotone decreasing in alpha at fixed mean).
// Brackets are established by geometric doubling and halving from the
// untruncated starting point alpha0 = 1/cvTarget², theta0 = meanTarget/alpha.
//
// Solve fails with ErrUnboundedSearch if no sign change appears within
// the expansion budget (the targets are not achievable on [a, b]), with
// ErrConvergence if bisection exhausts its iteration budget, and with
// ErrDegenerateMass if the truncation interval loses all probability mass
// at the parameters visited. On success, re-evaluating the truncated
// moments at the returned parameters reproduces the targets to roughly
// 1e-6 relative accuracy or better.
func Solve(meanTarget, cvTarget, a, b float64) (TruncGamma, error) {
	if err := validateTargets(meanTarget, cvTarget, a, b); err != nil {
		return TruncGamma{}, err
	}

	g := func(alpha float64) (float64, error) {
		theta, err := solveTheta(alpha, meanTarget, a, b)
		if err != nil {
			return math.NaN(), err
		}
		cv, err := TruncGamma{Alpha: alpha, Theta: theta, A: a, B: b}.CV()
		if err != nil {
			return math.NaN(), err
		}
		return cv - cvTarget, nil
	}

	alpha0 := 1 / (cvTarget * cvTarget)
	lo, hi, glo, ghi, err := bracket(g, alpha0)
	if err != nil {
		return TruncGamma{}, err
	}
	alpha, err := bisect(g, lo, hi, glo, ghi)
	if err != nil {
		return TruncGamma{}, err
	}

	theta, err := solveTheta(alpha, meanTarget, a, b)
	if err != nil {
		return TruncGamma{}, err
	}
	return TruncGamma{Alpha: alpha, Theta: theta, A: a, B: b}, nil
}

// validateTargets checks the Solve preconditions before any numerical
// work starts.
func validateTargets(meanTarget, cvTarget, a, b float64) error {
	switch {
	case !(meanTarget > 0):
		return fmt.Errorf("%w: mean target = %v, need mean > 0", ErrInvalidParam, meanTarget)
	case !(cvTarget > 0):
		return fmt.Errorf("%w: cv target = %v, need cv > 0", ErrInvalidParam, cvTarget)
	case a < 0 || math.IsNaN(a):
		return fmt.Errorf("%w: lower bound A = %v, need A >= 0", ErrInvalidParam, a)
	case !(b > a):
		return fmt.Errorf("%w: upper bound B = %v, need B > A = %v", ErrInvalidParam, b, a)
	}
	// The mean of any distribution supported on [a, b] lies strictly
	// inside the interval, so a target outside it can never bracket.
	if meanTarget <= a || meanTarget >= b {
		return fmt.Errorf("%w: mean target = %v not inside truncation interval (%v, %v)",
			ErrUnboundedSearch, meanTarget, a, b)
	}
	return nil
}

// solveTheta finds the scale theta at which the gamma distribution with
// shape alpha truncated to [a, b] has the given mean.
func solveTheta(alpha, meanTarget, a, b float64) (float64, error) {
	f := func(theta float64) (float64, error) {
		m, err := TruncGamma{Alpha: alpha, Theta: theta, A: a, B: b}.Mean()
		if err != nil {
			return math.NaN(), err
		}
		return m - meanTarget, nil
	}
	lo, hi, flo, fhi, err := bracket(f, meanTarget/alpha)
	if err != nil {
		return math.NaN(), err
	}
	return bisect(f, lo, hi, flo, fhi)
}

type scalarFunc func(x float64) (float64, error)

// bracket expands geometrically outward from x0 > 0 until f changes sign
// across [lo, hi], returning the bracket and the residuals at its ends.
//
// A strongly truncated interval leaves only a narrow window of parameters
// with usable probability mass, so a probe that fails to evaluate must
// not close its direction outright: the step factor shrinks toward 1 and
// the probe retries, walking the expansion up to the edge of the feasible
// window. A direction is closed only once its step underflows. If the
// starting point itself cannot be evaluated, a usable start is searched
// geometrically on both sides first. Only when every direction is
// exhausted without a sign change is the search declared unbounded.
func bracket(f scalarFunc, x0 float64) (lo, hi, flo, fhi float64, err error) {
	f0, err := f(x0)
	if err != nil {
		x0, f0, err = feasibleStart(f, x0, err)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	lo, hi, flo, fhi = x0, x0, f0, f0
	stepLo, stepHi := 2.0, 2.0
	for i := 0; i < maxExpand; i++ {
		if (flo > 0) != (fhi > 0) || flo == 0 || fhi == 0 {
			return lo, hi, flo, fhi, nil
		}
		if stepLo < minStep && stepHi < minStep {
			break
		}
		if stepLo >= minStep {
			if fl, lerr := f(lo / stepLo); lerr != nil {
				stepLo = math.Sqrt(stepLo)
			} else {
				lo, flo = lo/stepLo, fl
			}
		}
		if stepHi >= minStep {
			if fh, herr := f(hi * stepHi); herr != nil {
				stepHi = math.Sqrt(stepHi)
			} else {
				hi, fhi = hi*stepHi, fh
			}
		}
	}
	if (flo > 0) != (fhi > 0) || flo == 0 || fhi == 0 {
		return lo, hi, flo, fhi, nil
	}
	return 0, 0, 0, 0, fmt.Errorf("%w: no sign change on [%v, %v], residuals [%v, %v]",
		ErrUnboundedSearch, lo, hi, flo, fhi)
}

// feasibleStart probes geometrically on both sides of x0 for a point at
// which f evaluates, for heuristic starting points that land outside the
// feasible region. If none is found the original failure is returned.
func feasibleStart(f scalarFunc, x0 float64, cause error) (float64, float64, error) {
	step := 2.0
	for i := 0; i < maxExpand; i++ {
		if v, err := f(x0 / step); err == nil {
			return x0 / step, v, nil
		}
		if v, err := f(x0 * step); err == nil {
			return x0 * step, v, nil
		}
		step *= 2
	}
	return 0, 0, cause
}

// bisect narrows a sign-change bracket down to a root. f must be monotone
// across [lo, hi] with residuals flo and fhi of opposite sign (or zero).
func bisect(f scalarFunc, lo, hi, flo, fhi float64) (float64, error) {
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	var mid, fmid float64
	for i := 0; i < maxBisect; i++ {
		mid = (lo + hi) / 2
		var err error
		fmid, err = f(mid)
		if err != nil {
			return math.NaN(), err
		}
		if math.Abs(fmid) < residTol || hi-lo < bisectTol*math.Abs(mid) {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	return math.NaN(), fmt.Errorf("%w: residual %v on [%v, %v] after %d iterations",
		ErrConvergence, fmid, lo, hi, maxBisect)
}
