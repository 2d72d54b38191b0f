// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package satfunc implements end-point scaling (EPS) of saturation
// functions for reservoir post-processing. Horizontal scaling maps a
// saturation between the scaled (model) domain and the unscaled
// (tabulated) domain; vertical scaling remaps function values so that
// per-cell maxima and critical-saturation values match model targets.
//  References:
//   [1] Schlumberger (2014) ECLIPSE Technical Description, chapter on
//       Saturation Table Scaling
package satfunc

import "math"

// sentinel magnitude marking unset/defaulted values in ECL result sets
const defaultedLimit = 1.0e20

// TableEndPoints holds the saturation nodes of one unscaled (tabulated)
// saturation function. In the two-point scaling option Disp == Low.
type TableEndPoints struct {
	Low  float64 // connate or critical saturation (left node)
	Disp float64 // displacing critical saturation (middle node)
	High float64 // maximum saturation (right node)
}

// SaturationPoint is one evaluation request tied to an active cell
type SaturationPoint struct {
	Cell int     // linearised active cell index
	Sat  float64 // saturation value
}

// SaturationPoints is an ordered batch of evaluation points
type SaturationPoints []SaturationPoint

// PointValue pairs a saturation node with the function value there
type PointValue struct {
	Sat float64
	Val float64
}

// FunctionValues holds the tabulated function value at the displacing
// and maximum saturation nodes of one saturation function
type FunctionValues struct {
	Disp PointValue
	Max  PointValue
}

// InvalidEndpointBehaviour selects the output of a horizontal scaling
// law for cells whose scaled end-points are not ordered in [0,1]
type InvalidEndpointBehaviour int

const (
	// UseUnscaled emits the input saturation unchanged
	UseUnscaled InvalidEndpointBehaviour = iota

	// IgnorePoint emits NaN so downstream consumers can exclude the point
	IgnorePoint
)

// EPSEvaluator is a horizontal end-point scaling law. Eval maps scaled
// (model) saturations onto the tabulated domain; Reverse is its inverse.
// Implementations are immutable after construction and hence safe for
// concurrent use; the variant set is fixed: TwoPointScaling and
// ThreePointScaling.
type EPSEvaluator interface {
	Eval(tep TableEndPoints, sp SaturationPoints) []float64
	Reverse(tep TableEndPoints, sp SaturationPoints) []float64
	Clone() EPSEvaluator
}

// VerticalScaler rescales already-computed function values so per-cell
// extrema match model targets. The variant set is fixed:
// PureVerticalScaling and CritSatVerticalScaling.
type VerticalScaler interface {
	VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64
	Clone() VerticalScaler
}

// defaultedScaledSaturation returns the per-cell scaled saturation s
// unless it carries the 1e20 defaulted sentinel, in which case the
// table's unscaled node dflt is used instead
func defaultedScaledSaturation(s, dflt float64) float64 {
	if math.Abs(s) < defaultedLimit {
		return s
	}
	return dflt
}

// validSaturation accepts saturations in [0,1]. Written with negated
// comparisons so NaN end-points pass through and propagate.
func validSaturation(s float64) bool {
	return !(s < 0.0) && !(s > 1.0)
}

// handleInvalidEndpoint resolves one evaluation point whose scaled
// end-points failed the validity check
func handleInvalidEndpoint(pt SaturationPoint, behaviour InvalidEndpointBehaviour, out []float64) []float64 {
	if behaviour == IgnorePoint {
		return append(out, math.NaN())
	}
	return append(out, pt.Sat)
}
