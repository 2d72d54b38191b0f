// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/magnesj/opm-flowdiagnostics-applications/ecl"
)

// FunctionCategory selects the curve family being scaled
type FunctionCategory int

const (
	Relperm FunctionCategory = iota + 1
	CapPress
)

// SubSystem selects the two-phase subsystem of the full model
type SubSystem int

const (
	OilWater SubSystem = iota + 1
	OilGas
)

// EPSOptions configures construction of one scaling law
type EPSOptions struct {
	Curve         FunctionCategory
	SubSys        SubSystem
	ThisPh        ecl.PhaseIndex
	Use3PtScaling bool // alternative (three-point) scaling option active
}

// ConnateSat holds per-region connate saturations of each phase
type ConnateSat struct {
	Oil   []float64
	Gas   []float64
	Water []float64
}

// CriticalSat holds per-region critical saturations. Oil carries one
// set per displacing phase.
type CriticalSat struct {
	OilInGas   []float64
	OilInWater []float64
	Gas        []float64
	Water      []float64
}

// MaximumSat holds per-region maximum saturations of each phase
type MaximumSat struct {
	Oil   []float64
	Gas   []float64
	Water []float64
}

// RawTableEndPoints collects the unscaled saturation end-points of the
// tabulated saturation functions, one entry per saturation region
type RawTableEndPoints struct {
	Conn ConnateSat
	Crit CriticalSat
	SMax MaximumSat
}

// SatFuncEvaluator computes the tabulated function value (relative
// permeability or capillary pressure) of table/region i at the unscaled
// saturation s. Supplied by the host's table-lookup machinery.
type SatFuncEvaluator func(i int, s float64) float64

// unscaledTwoPt builds per-region table end-points for the two-point
// option; the displacing node collapses onto the left node
func unscaledTwoPt(min, max []float64) []TableEndPoints {
	chk.IntAssert(len(min), len(max))

	tep := make([]TableEndPoints, len(min))
	for i, smin := range min {
		tep[i] = TableEndPoints{Low: smin, Disp: smin, High: max[i]}
	}
	return tep
}

// unscaledThreePt builds per-region table end-points for the
// three-point option
func unscaledThreePt(min, disp, max []float64) []TableEndPoints {
	chk.IntAssert(len(min), len(disp))
	chk.IntAssert(len(min), len(max))

	tep := make([]TableEndPoints, len(min))
	for i := range min {
		tep[i] = TableEndPoints{Low: min[i], Disp: disp[i], High: max[i]}
	}
	return tep
}

// dispNodes derives per-region displacing saturations as 1 - s1 - s2
func dispNodes(s1, s2 []float64) []float64 {
	sr := make([]float64, len(s1))
	for i := range s1 {
		sr[i] = 1.0 - (s1[i] + s2[i])
	}
	return sr
}

// HorizontalFromECLOutput constructs the horizontal scaling law
// matching opt from the scaled end-point arrays of the result set.
// Capillary-pressure curves and relative-permeability curves without
// the alternative scaling option use two-point scaling; relative
// permeability with the alternative option uses three-point scaling.
func HorizontalFromECLOutput(g ecl.Graph, init ecl.InitData, opt EPSOptions) (EPSEvaluator, error) {
	if opt.Curve == CapPress || !opt.Use3PtScaling {
		return twoPointScalingFunction(g, init, opt)
	}
	if opt.Curve == Relperm && opt.Use3PtScaling {
		return threePointScalingFunction(g, init, opt)
	}
	return nil, chk.Err("invalid EPS request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

// UnscaledEndPoints extracts the per-region unscaled table end-points
// matching opt from the raw end-point sets
func UnscaledEndPoints(ep RawTableEndPoints, opt EPSOptions) ([]TableEndPoints, error) {
	if opt.Curve == CapPress || !opt.Use3PtScaling {
		return twoPointUnscaledEndPoints(ep, opt)
	}
	if opt.Curve == Relperm && opt.Use3PtScaling {
		return threePointUnscaledEndPoints(ep, opt)
	}
	return nil, chk.Err("invalid EPS request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// two-point option

func twoPointScalingFunction(g ecl.Graph, init ecl.InitData, opt EPSOptions) (EPSEvaluator, error) {
	if opt.Curve == Relperm {
		switch opt.SubSys {
		case OilWater:
			switch opt.ThisPh {
			case ecl.Vapour:
				return nil, chk.Err("cannot create an EPS for gas relperm in an oil/water system")
			case ecl.Aqua:
				return twoPointKrWater(g, init)
			}
			return twoPointKrOilWater(g, init)
		case OilGas:
			switch opt.ThisPh {
			case ecl.Aqua:
				return nil, chk.Err("cannot create an EPS for water relperm in an oil/gas system")
			case ecl.Vapour:
				return twoPointKrGas(g, init)
			}
			return twoPointKrOilGas(g, init)
		}
	}

	if opt.Curve == CapPress {
		switch opt.ThisPh {
		case ecl.Liquid:
			return nil, chk.Err("creating capillary pressure EPS as a function of oil saturation is not supported")
		case ecl.Vapour:
			return twoPointPcGasOil(g, init)
		case ecl.Aqua:
			return twoPointPcOilWater(g, init)
		}
	}

	return nil, chk.Err("invalid two-point EPS request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

func twoPointKrGas(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sgcr := ecl.LinearisedCellData(g, init, "SGCR")
	sgu := ecl.LinearisedCellData(g, init, "SGU")

	if len(sgcr) != len(sgu) || len(sgcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching gas end-point specifications (SGCR and/or SGU)")
	}
	return NewTwoPointScaling(sgcr, sgu, UseUnscaled)
}

func twoPointKrOilGas(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sogcr := ecl.LinearisedCellData(g, init, "SOGCR")

	if len(sogcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/gas system")
	}

	smax := make([]float64, len(sogcr))
	for i := range smax {
		smax[i] = 1.0
	}

	// adjust maximum S_o for scaled connate gas saturations
	sgl := ecl.LinearisedCellData(g, init, "SGL")
	if len(sgl) != len(sogcr) {
		return nil, chk.Err("missing or mismatching connate gas saturation in oil/gas system")
	}
	for i, s := range sgl {
		smax[i] -= s
	}

	// adjust maximum S_o for scaled connate water saturations (if relevant)
	swl := ecl.LinearisedCellData(g, init, "SWL")
	switch {
	case len(swl) == len(sogcr):
		for i, s := range swl {
			smax[i] -= s
		}
	case len(swl) != 0:
		return nil, chk.Err("mismatching connate water saturation in oil/gas system")
	}

	return NewTwoPointScaling(sogcr, smax, UseUnscaled)
}

func twoPointKrOilWater(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sowcr := ecl.LinearisedCellData(g, init, "SOWCR")

	if len(sowcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/water system")
	}

	smax := make([]float64, len(sowcr))
	for i := range smax {
		smax[i] = 1.0
	}

	// adjust maximum S_o for scaled connate water saturations
	swl := ecl.LinearisedCellData(g, init, "SWL")
	if len(swl) != len(sowcr) {
		return nil, chk.Err("missing or mismatching connate water saturation in oil/water system")
	}
	for i, s := range swl {
		smax[i] -= s
	}

	// adjust maximum S_o for scaled connate gas saturations (if relevant)
	sgl := ecl.LinearisedCellData(g, init, "SGL")
	switch {
	case len(sgl) == len(sowcr):
		for i, s := range sgl {
			smax[i] -= s
		}
	case len(sgl) != 0:
		return nil, chk.Err("mismatching connate gas saturation in oil/water system")
	}

	return NewTwoPointScaling(sowcr, smax, UseUnscaled)
}

func twoPointKrWater(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	swcr := ecl.LinearisedCellData(g, init, "SWCR")
	swu := ecl.LinearisedCellData(g, init, "SWU")

	if len(swcr) == 0 || len(swu) == 0 {
		return nil, chk.Err("missing water end-point specifications (SWCR and/or SWU)")
	}
	return NewTwoPointScaling(swcr, swu, UseUnscaled)
}

func twoPointPcGasOil(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	// dedicated scaled connate gas saturation for Pc first, general
	// scaled value as fallback
	sgl := ecl.LinearisedCellData(g, init, "SGLPC")
	if len(sgl) == 0 {
		sgl = ecl.LinearisedCellData(g, init, "SGL")
	}

	sgu := ecl.LinearisedCellData(g, init, "SGU")

	if len(sgl) != len(sgu) || len(sgl) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching connate or maximum gas saturation in Pcgo EPS")
	}
	return NewTwoPointScaling(sgl, sgu, UseUnscaled)
}

func twoPointPcOilWater(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	// dedicated scaled connate water saturation for Pc first, general
	// scaled value as fallback
	swl := ecl.LinearisedCellData(g, init, "SWLPC")
	if len(swl) == 0 {
		swl = ecl.LinearisedCellData(g, init, "SWL")
	}

	swu := ecl.LinearisedCellData(g, init, "SWU")

	if len(swl) != len(swu) || len(swl) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching connate or maximum water saturation in Pcow EPS")
	}
	return NewTwoPointScaling(swl, swu, UseUnscaled)
}

func twoPointUnscaledEndPoints(ep RawTableEndPoints, opt EPSOptions) ([]TableEndPoints, error) {
	if opt.Curve == CapPress {
		// left node is connate saturation, right node is max saturation
		switch opt.ThisPh {
		case ecl.Liquid:
			return nil, chk.Err("no capillary pressure function for oil")
		case ecl.Aqua:
			return unscaledTwoPt(ep.Conn.Water, ep.SMax.Water), nil
		case ecl.Vapour:
			return unscaledTwoPt(ep.Conn.Gas, ep.SMax.Gas), nil
		}
	}

	if opt.Curve == Relperm {
		// left node is critical saturation, right node is max saturation
		switch opt.SubSys {
		case OilGas:
			switch opt.ThisPh {
			case ecl.Aqua:
				return nil, chk.Err("void request for unscaled water saturation end-points in oil-gas system")
			case ecl.Liquid:
				return unscaledTwoPt(ep.Crit.OilInGas, ep.SMax.Oil), nil
			case ecl.Vapour:
				return unscaledTwoPt(ep.Crit.Gas, ep.SMax.Gas), nil
			}
		case OilWater:
			switch opt.ThisPh {
			case ecl.Aqua:
				return unscaledTwoPt(ep.Crit.Water, ep.SMax.Water), nil
			case ecl.Liquid:
				return unscaledTwoPt(ep.Crit.OilInWater, ep.SMax.Oil), nil
			case ecl.Vapour:
				return nil, chk.Err("void request for unscaled gas saturation end-points in oil-water system")
			}
		}
	}

	return nil, chk.Err("invalid two-point end-point request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// three-point option

func threePointScalingFunction(g ecl.Graph, init ecl.InitData, opt EPSOptions) (EPSEvaluator, error) {
	switch opt.SubSys {
	case OilWater:
		switch opt.ThisPh {
		case ecl.Vapour:
			return nil, chk.Err("cannot create a three-point EPS for gas relperm in an oil/water system")
		case ecl.Aqua:
			return threePointKrWater(g, init)
		}
		return threePointKrOilWater(g, init)
	case OilGas:
		switch opt.ThisPh {
		case ecl.Aqua:
			return nil, chk.Err("cannot create a three-point EPS for water relperm in an oil/gas system")
		case ecl.Vapour:
			return threePointKrGas(g, init)
		}
		return threePointKrOilGas(g, init)
	}
	return nil, chk.Err("invalid three-point EPS request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}

func threePointKrGas(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sgcr := ecl.LinearisedCellData(g, init, "SGCR")
	sgu := ecl.LinearisedCellData(g, init, "SGU")

	if len(sgcr) != len(sgu) || len(sgcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching gas end-point specifications (SGCR and/or SGU)")
	}

	sr := make([]float64, g.TotalCells())
	for i := range sr {
		sr[i] = 1.0
	}

	// adjust displacing saturation for connate water
	swl := ecl.LinearisedCellData(g, init, "SWL")
	switch {
	case len(swl) == len(sgcr):
		for i, s := range swl {
			sr[i] -= s
		}
	case len(swl) != 0:
		return nil, chk.Err("connate water saturation array mismatch in three-point scaling option")
	}

	// adjust displacing saturation for critical S_o in O/G system
	sogcr := ecl.LinearisedCellData(g, init, "SOGCR")
	switch {
	case len(sogcr) == len(sgcr):
		for i, s := range sogcr {
			sr[i] -= s
		}
	case len(sogcr) != 0:
		return nil, chk.Err("critical oil saturation (O/G system) array size mismatch in three-point scaling option")
	}

	return NewThreePointScaling(sgcr, sr, sgu, UseUnscaled)
}

func threePointKrOilGas(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sogcr := ecl.LinearisedCellData(g, init, "SOGCR")

	if len(sogcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/gas system")
	}

	smax := make([]float64, len(sogcr))
	sdisp := make([]float64, len(sogcr))
	for i := range smax {
		smax[i] = 1.0
		sdisp[i] = 1.0
	}

	// adjust maximum S_o for scaled connate gas saturations
	sgl := ecl.LinearisedCellData(g, init, "SGL")
	if len(sgl) != len(sogcr) {
		return nil, chk.Err("missing or mismatching connate gas saturation in oil/gas system")
	}
	for i, s := range sgl {
		smax[i] -= s
	}

	// adjust displacing S_o for scaled critical gas saturation
	sgcr := ecl.LinearisedCellData(g, init, "SGCR")
	if len(sgcr) != len(sogcr) {
		return nil, chk.Err("missing or mismatching scaled critical gas saturation in oil/gas system")
	}
	for i, s := range sgcr {
		sdisp[i] -= s
	}

	// adjust displacing and maximum S_o for scaled connate water
	// saturations (if relevant)
	swl := ecl.LinearisedCellData(g, init, "SWL")
	switch {
	case len(swl) == len(sogcr):
		for i, s := range swl {
			sdisp[i] -= s
			smax[i] -= s
		}
	case len(swl) != 0:
		return nil, chk.Err("mismatching scaled connate water saturation in oil/gas system")
	}

	return NewThreePointScaling(sogcr, sdisp, smax, UseUnscaled)
}

func threePointKrOilWater(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	sowcr := ecl.LinearisedCellData(g, init, "SOWCR")

	if len(sowcr) != g.TotalCells() {
		return nil, chk.Err("missing or mismatching critical oil saturation in oil/water system")
	}

	smax := make([]float64, len(sowcr))
	sdisp := make([]float64, len(sowcr))
	for i := range smax {
		smax[i] = 1.0
		sdisp[i] = 1.0
	}

	// adjust maximum S_o for scaled connate water saturations
	swl := ecl.LinearisedCellData(g, init, "SWL")
	if len(swl) != len(sowcr) {
		return nil, chk.Err("missing or mismatching connate water saturation in oil/water system")
	}
	for i, s := range swl {
		smax[i] -= s
	}

	// adjust displacing S_o for scaled critical water saturations
	swcr := ecl.LinearisedCellData(g, init, "SWCR")
	if len(swcr) != len(sowcr) {
		return nil, chk.Err("missing or mismatching scaled critical water saturation in oil/water system")
	}
	for i, s := range swcr {
		sdisp[i] -= s
	}

	// adjust displacing and maximum S_o for scaled connate gas
	// saturations (if relevant)
	sgl := ecl.LinearisedCellData(g, init, "SGL")
	switch {
	case len(sgl) == len(sowcr):
		for i, s := range sgl {
			sdisp[i] -= s
			smax[i] -= s
		}
	case len(sgl) != 0:
		return nil, chk.Err("mismatching connate gas saturation in oil/water system")
	}

	return NewThreePointScaling(sowcr, sdisp, smax, UseUnscaled)
}

func threePointKrWater(g ecl.Graph, init ecl.InitData) (EPSEvaluator, error) {
	swcr := ecl.LinearisedCellData(g, init, "SWCR")
	swu := ecl.LinearisedCellData(g, init, "SWU")

	if len(swcr) != g.TotalCells() || len(swcr) != len(swu) {
		return nil, chk.Err("missing water end-point specifications (SWCR and/or SWU)")
	}

	sdisp := make([]float64, len(swcr))
	for i := range sdisp {
		sdisp[i] = 1.0
	}

	// adjust displacing S_w for scaled critical oil saturation
	sowcr := ecl.LinearisedCellData(g, init, "SOWCR")
	switch {
	case len(sowcr) == len(swcr):
		for i, s := range sowcr {
			sdisp[i] -= s
		}
	case len(sowcr) != 0:
		return nil, chk.Err("missing or mismatching scaled critical oil saturation in oil/water system")
	}

	// adjust displacing S_w for scaled connate gas saturation
	sgl := ecl.LinearisedCellData(g, init, "SGL")
	switch {
	case len(sgl) == len(swcr):
		for i, s := range sgl {
			sdisp[i] -= s
		}
	case len(sgl) != 0:
		return nil, chk.Err("missing or mismatching scaled connate gas saturation in oil/water system")
	}

	return NewThreePointScaling(swcr, sdisp, swu, UseUnscaled)
}

func threePointUnscaledEndPoints(ep RawTableEndPoints, opt EPSOptions) ([]TableEndPoints, error) {
	// left node is critical saturation, middle node is displacing
	// critical saturation, and right node is maximum saturation
	switch opt.SubSys {
	case OilGas:
		switch opt.ThisPh {
		case ecl.Aqua:
			return nil, chk.Err("void request for unscaled water saturation end-points in oil-gas system")
		case ecl.Liquid:
			return unscaledThreePt(ep.Crit.OilInGas, dispNodes(ep.Crit.Gas, ep.Conn.Water), ep.SMax.Oil), nil
		case ecl.Vapour:
			return unscaledThreePt(ep.Crit.Gas, dispNodes(ep.Crit.OilInGas, ep.Conn.Water), ep.SMax.Gas), nil
		}
	case OilWater:
		switch opt.ThisPh {
		case ecl.Aqua:
			return unscaledThreePt(ep.Crit.Water, dispNodes(ep.Crit.OilInWater, ep.Conn.Gas), ep.SMax.Water), nil
		case ecl.Liquid:
			return unscaledThreePt(ep.Crit.OilInWater, dispNodes(ep.Crit.Water, ep.Conn.Gas), ep.SMax.Oil), nil
		case ecl.Vapour:
			return nil, chk.Err("void request for unscaled gas saturation end-points in oil-water system")
		}
	}
	return nil, chk.Err("invalid three-point end-point request: curve=%d subsys=%d phase=%v", opt.Curve, opt.SubSys, opt.ThisPh)
}
