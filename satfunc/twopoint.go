// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// TwoPointScaling maps saturations between the scaled model domain
// [smin, smax] of each cell and the tabulated domain [tep.Low, tep.High].
// The displacing node of the table is ignored in this option.
type TwoPointScaling struct {
	smin          []float64
	smax          []float64
	handleInvalid InvalidEndpointBehaviour
}

// NewTwoPointScaling returns a two-point horizontal scaling law from
// per-cell scaled minimum and maximum saturation arrays
func NewTwoPointScaling(smin, smax []float64, behaviour InvalidEndpointBehaviour) (*TwoPointScaling, error) {
	if len(smin) != len(smax) {
		return nil, chk.Err("size mismatch between minimum and maximum saturation arrays: %d != %d", len(smin), len(smax))
	}
	return &TwoPointScaling{smin: smin, smax: smax, handleInvalid: behaviour}, nil
}

// sMin returns the scaled connate/critical saturation of one cell,
// falling back to the table's unscaled node when defaulted
func (o *TwoPointScaling) sMin(cell int, tep TableEndPoints) float64 {
	return defaultedScaledSaturation(o.smin[cell], tep.Low)
}

// sMax returns the scaled maximum saturation of one cell, falling back
// to the table's unscaled node when defaulted
func (o *TwoPointScaling) sMax(cell int, tep TableEndPoints) float64 {
	return defaultedScaledSaturation(o.smax[cell], tep.High)
}

// Eval maps each scaled (model) saturation in sp onto the tabulated
// domain [tep.Low, tep.High]
func (o *TwoPointScaling) Eval(tep TableEndPoints, sp SaturationPoints) []float64 {
	srng := tep.High - tep.Low

	effsat := make([]float64, 0, len(sp))
	for _, pt := range sp {

		sLO := o.sMin(pt.Cell, tep)
		sHI := o.sMax(pt.Cell, tep)

		if !validSaturation(sLO) || !validSaturation(sHI) {
			effsat = handleInvalidEndpoint(pt, o.handleInvalid, effsat)
			continue
		}

		switch {
		case !(pt.Sat > sLO): // s <= sLO
			effsat = append(effsat, tep.Low)
		case !(pt.Sat < sHI): // s >= sHI
			effsat = append(effsat, tep.High)
		default: // s in (sLO, sHI)
			t := (pt.Sat - sLO) / (sHI - sLO)
			effsat = append(effsat, tep.Low+t*srng)
		}
	}
	return effsat
}

// Reverse maps each tabulated saturation in sp back onto the scaled
// (model) domain [smin, smax] of its cell
func (o *TwoPointScaling) Reverse(tep TableEndPoints, sp SaturationPoints) []float64 {
	srng := tep.High - tep.Low

	unscaledsat := make([]float64, 0, len(sp))
	for _, pt := range sp {

		sLO := o.sMin(pt.Cell, tep)
		sHI := o.sMax(pt.Cell, tep)

		if !validSaturation(sLO) || !validSaturation(sHI) {
			unscaledsat = handleInvalidEndpoint(pt, o.handleInvalid, unscaledsat)
			continue
		}

		switch {
		case !(pt.Sat > tep.Low): // s <= minimum tabulated saturation
			unscaledsat = append(unscaledsat, sLO)
		case !(pt.Sat < tep.High): // s >= maximum tabulated saturation
			unscaledsat = append(unscaledsat, sHI)
		default: // s in (tep.Low, tep.High)
			t := (pt.Sat - tep.Low) / srng
			unscaledsat = append(unscaledsat, sLO+t*(sHI-sLO))
		}
	}
	return unscaledsat
}

// Clone returns a deep value copy
func (o *TwoPointScaling) Clone() EPSEvaluator {
	return &TwoPointScaling{
		smin:          append([]float64(nil), o.smin...),
		smax:          append([]float64(nil), o.smax...),
		handleInvalid: o.handleInvalid,
	}
}
