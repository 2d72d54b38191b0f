// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import "github.com/cpmech/gosl/chk"

// PureVerticalScaling rescales function values by a constant per-cell
// ratio so that the value at the maximum saturation matches the model
// target fmax
type PureVerticalScaling struct {
	fmax []float64
}

// NewPureVerticalScaling returns a pure vertical scaling law from the
// per-cell target function values at the maximum saturation
func NewPureVerticalScaling(fmax []float64) *PureVerticalScaling {
	return &PureVerticalScaling{fmax: fmax}
}

// VertScale rescales val[i] by fmax[cell]/f.Max.Val. The ratio is not
// sanitised: zero or negative tabulated values pass through as given.
func (o *PureVerticalScaling) VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64 {
	chk.IntAssert(len(val), len(sp))

	maxVal := f.Max.Val

	ret := make([]float64, len(val))
	for i, pt := range sp {
		ret[i] = val[i] * o.fmax[pt.Cell] / maxVal
	}
	return ret
}

// Clone returns a deep value copy
func (o *PureVerticalScaling) Clone() VerticalScaler {
	return &PureVerticalScaling{fmax: append([]float64(nil), o.fmax...)}
}

// CritSatVerticalScaling rescales function values so that both the
// value at the displacing (critical) saturation and the value at the
// maximum saturation match the model targets fdisp and fmax
type CritSatVerticalScaling struct {
	sdisp []float64
	fdisp []float64
	fmax  []float64
}

// NewCritSatVerticalScaling returns a critical-saturation vertical
// scaling law from per-cell displacing saturations and target function
// values at the displacing and maximum saturations
func NewCritSatVerticalScaling(sdisp, fdisp, fmax []float64) (*CritSatVerticalScaling, error) {
	if len(fdisp) != len(sdisp) || len(fdisp) != len(fmax) {
		return nil, chk.Err("size mismatch between displacing saturation and function value arrays: %d, %d, %d", len(sdisp), len(fdisp), len(fmax))
	}
	return &CritSatVerticalScaling{sdisp: sdisp, fdisp: fdisp, fmax: fmax}, nil
}

// VertScale rescales each val[i]. Below the cell's displacing
// saturation the left interval is purely proportional. Above it the
// interpolation parameter is taken from the value axis when the table
// separates the two function values, from the saturation axis when only
// the saturations separate, and when both degenerate the target fmax is
// picked, almost arbitrarily.
func (o *CritSatVerticalScaling) VertScale(f FunctionValues, sp SaturationPoints, val []float64) []float64 {
	chk.IntAssert(len(val), len(sp))

	fdisp, sdisp := f.Disp.Val, f.Disp.Sat
	fmax, smax := f.Max.Val, f.Max.Sat
	sepfv := fmax > fdisp
	sepS := sdisp > smax

	ret := make([]float64, len(val))
	for i, pt := range sp {
		y := val[i]

		s := pt.Sat
		sr := o.sdisp[pt.Cell]
		fr := o.fdisp[pt.Cell]
		fm := o.fmax[pt.Cell]

		switch {
		case !(s > sr): // s <= sr: pure vertical scaling in left interval
			y *= fr / fdisp
		case sepfv: // normal case: f(smax) > f(sr)
			t := (y - fdisp) / (fmax - fdisp)
			y = fr + t*(fm-fr)
		case sepS: // f(smax) == f(sr): use linear function of saturation
			t := (s - sdisp) / (smax - sdisp)
			y = fr + t*(fm-fr)
		default: // smax == sr; almost arbitrarily pick fmax of the cell
			y = fm
		}
		ret[i] = y
	}
	return ret
}

// Clone returns a deep value copy
func (o *CritSatVerticalScaling) Clone() VerticalScaler {
	return &CritSatVerticalScaling{
		sdisp: append([]float64(nil), o.sdisp...),
		fdisp: append([]float64(nil), o.fdisp...),
		fmax:  append([]float64(nil), o.fmax...),
	}
}
