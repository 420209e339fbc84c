// Copyright 2025 Wade K. Copeland. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package truncgamma generates random variates from a gamma distribution
// truncated to a closed interval [A, B].
//
// Rather than the usual shape/scale parameterization, the high-level entry
// points accept the desired mean and coefficient of variation of the
// truncated distribution itself. Solve inverts the truncated-moment
// equations to recover the underlying shape alpha and scale theta, and
// Sample then draws variates by mapping uniform draws through the inverse
// CDF restricted to the truncated probability interval.
//
// All operations are pure apart from consuming values from a caller-owned
// random source; concurrent callers must use independent sources.
package truncgamma // import "github.com/wkingc/truncgamma"
