// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncgamma

import "errors"

// ErrInvalidParam is returned when a caller-supplied parameter violates
// its precondition: non-positive shape, scale, mean or CV target, a
// negative lower bound, an upper bound at or below the lower bound, or a
// sample size below one.
var ErrInvalidParam = errors.New("invalid truncated gamma parameter")

// ErrDegenerateMass is returned when the truncation interval carries
// negligible probability mass under the given shape and scale, so the
// truncated distribution is numerically undefined.
var ErrDegenerateMass = errors.New("truncation interval has negligible probability mass")

// ErrUnboundedSearch is returned when the moment-matching solver cannot
// bracket a solution within its expansion budget, meaning the target mean
// and CV are not achievable on the given interval.
var ErrUnboundedSearch = errors.New("no parameter bracket matches the target moments")

// ErrConvergence is returned when the root search exhausts its iteration
// budget without meeting tolerance.
var ErrConvergence = errors.New("moment matching failed to converge")
