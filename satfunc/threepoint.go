// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// ThreePointScaling maps saturations between the scaled model domain
// and the tabulated domain through two linear sub-segments: per cell,
// [smin, sdisp] maps onto [tep.Low, tep.Disp] and [sdisp, smax] onto
// [tep.Disp, tep.High]
type ThreePointScaling struct {
	smin          []float64
	sdisp         []float64
	smax          []float64
	handleInvalid InvalidEndpointBehaviour
}

// NewThreePointScaling returns a three-point horizontal scaling law
// from per-cell scaled minimum, displacing and maximum saturations
func NewThreePointScaling(smin, sdisp, smax []float64, behaviour InvalidEndpointBehaviour) (*ThreePointScaling, error) {
	if len(sdisp) != len(smin) || len(sdisp) != len(smax) {
		return nil, chk.Err("size mismatch between minimum, displacing and maximum saturation arrays: %d, %d, %d", len(smin), len(sdisp), len(smax))
	}
	return &ThreePointScaling{smin: smin, sdisp: sdisp, smax: smax, handleInvalid: behaviour}, nil
}

func (o *ThreePointScaling) sMin(cell int, tep TableEndPoints) float64 {
	return defaultedScaledSaturation(o.smin[cell], tep.Low)
}

func (o *ThreePointScaling) sDisp(cell int, tep TableEndPoints) float64 {
	return defaultedScaledSaturation(o.sdisp[cell], tep.Disp)
}

func (o *ThreePointScaling) sMax(cell int, tep TableEndPoints) float64 {
	return defaultedScaledSaturation(o.smax[cell], tep.High)
}

// Eval maps each scaled (model) saturation in sp onto the tabulated
// domain, selecting the sub-segment by the cell's displacing saturation
func (o *ThreePointScaling) Eval(tep TableEndPoints, sp SaturationPoints) []float64 {
	effsat := make([]float64, 0, len(sp))
	for _, pt := range sp {

		sLO := o.sMin(pt.Cell, tep)
		sR := o.sDisp(pt.Cell, tep)
		sHI := o.sMax(pt.Cell, tep)

		if !validSaturation(sLO) || !validSaturation(sR) || !validSaturation(sHI) {
			effsat = handleInvalidEndpoint(pt, o.handleInvalid, effsat)
			continue
		}

		switch {
		case !(pt.Sat > sLO): // s <= sLO
			effsat = append(effsat, tep.Low)
		case !(pt.Sat < sHI): // s >= sHI
			effsat = append(effsat, tep.High)
		case pt.Sat < sR: // s in (sLO, sR)
			t := (pt.Sat - sLO) / (sR - sLO)
			effsat = append(effsat, tep.Low+t*(tep.Disp-tep.Low))
		default: // s in [sR, sHI)
			t := (pt.Sat - sR) / (sHI - sR)
			effsat = append(effsat, tep.Disp+t*(tep.High-tep.Disp))
		}
	}
	return effsat
}

// Reverse maps each tabulated saturation in sp back onto the scaled
// (model) domain, selecting the sub-segment by the table's displacing node
func (o *ThreePointScaling) Reverse(tep TableEndPoints, sp SaturationPoints) []float64 {
	unscaledsat := make([]float64, 0, len(sp))
	for _, pt := range sp {

		sLO := o.sMin(pt.Cell, tep)
		sR := o.sDisp(pt.Cell, tep)
		sHI := o.sMax(pt.Cell, tep)

		if !validSaturation(sLO) || !validSaturation(sR) || !validSaturation(sHI) {
			unscaledsat = handleInvalidEndpoint(pt, o.handleInvalid, unscaledsat)
			continue
		}

		switch {
		case !(pt.Sat > tep.Low): // s <= minimum tabulated saturation
			unscaledsat = append(unscaledsat, sLO)
		case !(pt.Sat < tep.High): // s >= maximum tabulated saturation
			unscaledsat = append(unscaledsat, sHI)
		case pt.Sat < tep.Disp: // s in (tep.Low, tep.Disp)
			t := (pt.Sat - tep.Low) / (tep.Disp - tep.Low)
			unscaledsat = append(unscaledsat, sLO+t*(sR-sLO))
		default: // s in [tep.Disp, tep.High)
			t := (pt.Sat - tep.Disp) / (tep.High - tep.Disp)
			unscaledsat = append(unscaledsat, sR+t*(sHI-sR))
		}
	}
	return unscaledsat
}

// Clone returns a deep value copy
func (o *ThreePointScaling) Clone() EPSEvaluator {
	return &ThreePointScaling{
		smin:          append([]float64(nil), o.smin...),
		sdisp:         append([]float64(nil), o.sdisp...),
		smax:          append([]float64(nil), o.smax...),
		handleInvalid: o.handleInvalid,
	}
}
