// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/magnesj/opm-flowdiagnostics-applications/ecl"
)

// haveKeywordAnyGrid reports whether kw is present in at least one
// active grid
func haveKeywordAnyGrid(g ecl.Graph, init ecl.InitData, kw string) bool {
	for _, grid := range g.ActiveGrids() {
		if init.HaveKeyword(kw, grid) {
			return true
		}
	}
	return false
}

// haveScaledRelPermAtCritSat reports whether the result set carries a
// scaled relperm-at-critical-saturation keyword for the given phase,
// which switches vertical scaling from the pure to the critical-
// saturation variant
func haveScaledRelPermAtCritSat(g ecl.Graph, init ecl.InitData, phase ecl.PhaseIndex, subSys SubSystem) bool {
	switch phase {
	case ecl.Aqua:
		return haveKeywordAnyGrid(g, init, "KRWR")
	case ecl.Liquid:
		if subSys == OilGas {
			return haveKeywordAnyGrid(g, init, "KROGR")
		}
		return haveKeywordAnyGrid(g, init, "KROWR")
	case ecl.Vapour:
		return haveKeywordAnyGrid(g, init, "KRGR")
	}
	return false
}

// dispVals extracts the per-region tabulated function values at the
// displacing saturation node
func dispVals(fvals []FunctionValues) []float64 {
	d := make([]float64, len(fvals))
	for i, fv := range fvals {
		d[i] = fv.Disp.Val
	}
	return d
}

// maxVals extracts the per-region tabulated function values at the
// maximum saturation node
func maxVals(fvals []FunctionValues) []float64 {
	d := make([]float64, len(fvals))
	for i, fv := range fvals {
		d[i] = fv.Max.Val
	}
	return d
}

// VerticalFromECLOutput constructs the vertical scaling law matching
// opt. Relative-permeability curves backed by a scaled value at the
// critical displacing saturation use the critical-saturation variant;
// everything else uses pure vertical scaling.
func VerticalFromECLOutput(g ecl.Graph, init ecl.InitData, opt EPSOptions, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	haveScaleCRS := haveScaledRelPermAtCritSat(g, init, opt.ThisPh, opt.SubSys)

	if opt.Curve == CapPress || !haveScaleCRS {
		return pureVerticalScalingFunction(g, init, opt, fvals)
	}
	if opt.Curve == Relperm && haveScaleCRS {
		return critSatVerticalScalingFunction(g, init, opt, tep, fvals)
	}
	return nil, chk.Err("invalid vertical scaling request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

// UnscaledFunctionValues assembles per-region tabulated function values
// by probing the external table evaluator at the unscaled maximum node
// (pure vertical scaling) or at both the displacing and maximum nodes
// (critical-saturation vertical scaling)
func UnscaledFunctionValues(g ecl.Graph, init ecl.InitData, ep RawTableEndPoints, opt EPSOptions, evalSF SatFuncEvaluator) ([]FunctionValues, error) {
	haveScaleCRS := haveScaledRelPermAtCritSat(g, init, opt.ThisPh, opt.SubSys)

	if opt.Curve == CapPress || !haveScaleCRS {
		optCpy := opt
		optCpy.Use3PtScaling = false

		uep, err := twoPointUnscaledEndPoints(ep, optCpy)
		if err != nil {
			return nil, err
		}

		ret := make([]FunctionValues, len(uep))
		for i, tep := range uep {
			ret[i].Max.Sat = tep.High
			ret[i].Max.Val = evalSF(i, ret[i].Max.Sat)
		}
		return ret, nil
	}

	optCpy := opt
	optCpy.Use3PtScaling = true

	uep, err := threePointUnscaledEndPoints(ep, optCpy)
	if err != nil {
		return nil, err
	}

	ret := make([]FunctionValues, len(uep))
	for i, tep := range uep {
		ret[i].Disp.Sat = tep.Disp
		ret[i].Disp.Val = evalSF(i, ret[i].Disp.Sat)

		ret[i].Max.Sat = tep.High
		ret[i].Max.Val = evalSF(i, ret[i].Max.Sat)
	}
	return ret, nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// pure vertical scaling

func pureVerticalScalingFunction(g ecl.Graph, init ecl.InitData, opt EPSOptions, fvals []FunctionValues) (VerticalScaler, error) {
	dflt := maxVals(fvals)

	if opt.Curve == Relperm {
		switch opt.SubSys {
		case OilGas:
			switch opt.ThisPh {
			case ecl.Aqua:
				return nil, chk.Err("cannot create vertical scaling for water relperm in an oil/gas system")
			case ecl.Vapour:
				return pureVerticalRelperm(g, init, dflt, "KRG"), nil
			}
			return pureVerticalRelperm(g, init, dflt, "KRO"), nil
		case OilWater:
			switch opt.ThisPh {
			case ecl.Vapour:
				return nil, chk.Err("cannot create vertical scaling for gas relperm in an oil/water system")
			case ecl.Aqua:
				return pureVerticalRelperm(g, init, dflt, "KRW"), nil
			}
			return pureVerticalRelperm(g, init, dflt, "KRO"), nil
		}
	}

	if opt.Curve == CapPress {
		switch opt.ThisPh {
		case ecl.Liquid:
			return nil, chk.Err("creating capillary pressure vertical scaling as a function of oil saturation is not supported")
		case ecl.Vapour:
			return pureVerticalCapPress(g, init, dflt, "PCG")
		case ecl.Aqua:
			return pureVerticalCapPress(g, init, dflt, "PCW")
		}
	}

	return nil, chk.Err("invalid pure vertical scaling request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

func pureVerticalRelperm(g ecl.Graph, init ecl.InitData, dflt []float64, kw string) VerticalScaler {
	scaledMaxKr := GridDefaultedVector(g, init, kw, dflt, nil)
	return NewPureVerticalScaling(scaledMaxKr)
}

func pureVerticalCapPress(g ecl.Graph, init ecl.InitData, dflt []float64, kw string) (VerticalScaler, error) {
	usys, err := ecl.UnitSystemFromHeader(init.IntHeader())
	if err != nil {
		return nil, err
	}

	scaledMaxPc := GridDefaultedVector(g, init, kw, dflt, usys.PressureToSI)
	return NewPureVerticalScaling(scaledMaxPc), nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// critical-saturation vertical scaling

func critSatVerticalScalingFunction(g ecl.Graph, init ecl.InitData, opt EPSOptions, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	switch opt.SubSys {
	case OilWater:
		switch opt.ThisPh {
		case ecl.Vapour:
			return nil, chk.Err("cannot create critical saturation vertical scaling for gas relperm in an oil/water system")
		case ecl.Aqua:
			return critSatVerticalKrWater(g, init, tep, fvals)
		}
		return critSatVerticalKrOilWater(g, init, tep, fvals)
	case OilGas:
		switch opt.ThisPh {
		case ecl.Aqua:
			return nil, chk.Err("cannot create critical saturation vertical scaling for water relperm in an oil/gas system")
		case ecl.Vapour:
			return critSatVerticalKrGas(g, init, tep, fvals)
		}
		return critSatVerticalKrOilGas(g, init, tep, fvals)
	}
	return nil, chk.Err("invalid critical saturation vertical scaling request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

// critSatScaledValues reads the scaled function values at the
// displacing (kwDisp) and maximum (kwMax) saturations, defaulting to
// the tabulated values per region
func critSatScaledValues(g ecl.Graph, init ecl.InitData, fvals []FunctionValues, kwDisp, kwMax string) (fdisp, fmax []float64) {
	fdisp = GridDefaultedVector(g, init, kwDisp, dispVals(fvals), nil)
	fmax = GridDefaultedVector(g, init, kwMax, maxVals(fvals), nil)
	return
}

func critSatVerticalKrGas(g ecl.Graph, init ecl.InitData, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	sdisp := make([]float64, g.TotalCells())

	if ecl.OilActive(init.IntHeader()) {
		sogcr := GridDefaultedVector(g, init, "SOGCR", tep.Crit.OilInGas, nil)
		swl := GridDefaultedVector(g, init, "SWL", tep.Conn.Water, nil)
		for i := range sdisp {
			sdisp[i] = 1.0 - (sogcr[i] + swl[i])
		}
	} else { // oil not active (G/W system)
		swcr := GridDefaultedVector(g, init, "SWCR", tep.Crit.Water, nil)
		for i := range sdisp {
			sdisp[i] = 1.0 - swcr[i]
		}
	}

	fdisp, fmax := critSatScaledValues(g, init, fvals, "KRGR", "KRG")
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatVerticalKrOilGas(g ecl.Graph, init ecl.InitData, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	sdisp := make([]float64, g.TotalCells())

	sgcr := GridDefaultedVector(g, init, "SGCR", tep.Crit.Gas, nil)
	swl := GridDefaultedVector(g, init, "SWL", tep.Conn.Water, nil)
	for i := range sdisp {
		sdisp[i] = 1.0 - (sgcr[i] + swl[i])
	}

	fdisp, fmax := critSatScaledValues(g, init, fvals, "KRORG", "KRO")
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatVerticalKrOilWater(g ecl.Graph, init ecl.InitData, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	sdisp := make([]float64, g.TotalCells())

	swcr := GridDefaultedVector(g, init, "SWCR", tep.Crit.Water, nil)
	sgl := GridDefaultedVector(g, init, "SGL", tep.Conn.Gas, nil)
	for i := range sdisp {
		sdisp[i] = 1.0 - (swcr[i] + sgl[i])
	}

	fdisp, fmax := critSatScaledValues(g, init, fvals, "KRORW", "KRO")
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}

func critSatVerticalKrWater(g ecl.Graph, init ecl.InitData, tep RawTableEndPoints, fvals []FunctionValues) (VerticalScaler, error) {
	sdisp := make([]float64, g.TotalCells())

	if ecl.OilActive(init.IntHeader()) {
		sowcr := GridDefaultedVector(g, init, "SOWCR", tep.Crit.OilInWater, nil)
		sgl := GridDefaultedVector(g, init, "SGL", tep.Conn.Gas, nil)
		for i := range sdisp {
			sdisp[i] = 1.0 - (sowcr[i] + sgl[i])
		}
	} else { // oil not active (G/W system)
		sgcr := GridDefaultedVector(g, init, "SGCR", tep.Crit.Gas, nil)
		for i := range sdisp {
			sdisp[i] = 1.0 - sgcr[i]
		}
	}

	fdisp, fmax := critSatScaledValues(g, init, fvals, "KRWR", "KRW")
	return NewCritSatVerticalScaling(sdisp, fdisp, fmax)
}
