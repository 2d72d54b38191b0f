// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_threepoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("threepoint01. node mapping and segment selection")

	eps, err := NewThreePointScaling([]float64{0.1}, []float64{0.4}, []float64{0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}

	tep := TableEndPoints{Low: 0.0, Disp: 0.2, High: 1.0}

	// nodes: sLO->Low, sHI->High; sR maps onto Disp through the right
	// segment (t=0)
	res := eps.Eval(tep, sats(0, 0.1, 0.4, 0.9))
	chk.Array(tst, "nodes", 1e-15, res, []float64{0.0, 0.2, 1.0})

	// left segment midpoint: s=0.25 => t=0.5 => 0.1; right segment
	// midpoint: s=0.65 => t=0.5 => 0.6
	res = eps.Eval(tep, sats(0, 0.25, 0.65))
	chk.Array(tst, "midpoints", 1e-15, res, []float64{0.1, 0.6})
}

func Test_threepoint02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("threepoint02. continuity at the displacing saturation")

	eps, err := NewThreePointScaling([]float64{0.15}, []float64{0.55}, []float64{0.85}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}

	tep := TableEndPoints{Low: 0.05, Disp: 0.35, High: 0.95}

	sR := 0.55
	h := 1e-9
	res := eps.Eval(tep, sats(0, sR-h, sR, sR+h))

	// both segments agree at s == sR up to O(h)
	chk.Float64(tst, "left limit", 1e-7, res[0], tep.Disp)
	chk.Float64(tst, "at sR", 1e-15, res[1], tep.Disp)
	chk.Float64(tst, "right limit", 1e-7, res[2], tep.Disp)

	// segments keep their order: mapping is monotone across the batch
	S := utl.LinSpace(0.16, 0.84, 35)
	sp := make(SaturationPoints, len(S))
	for i, s := range S {
		sp[i] = SaturationPoint{Cell: 0, Sat: s}
	}
	mapped := eps.Eval(tep, sp)
	for i := 1; i < len(mapped); i++ {
		if mapped[i] < mapped[i-1] {
			tst.Errorf("mapping is not monotone at i=%d: %v < %v\n", i, mapped[i], mapped[i-1])
			return
		}
	}
}

func Test_threepoint03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("threepoint03. eval/reverse identity and reverse branching")

	eps, err := NewThreePointScaling([]float64{0.1}, []float64{0.4}, []float64{0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}

	tep := TableEndPoints{Low: 0.0, Disp: 0.2, High: 1.0}

	S := utl.LinSpace(0.11, 0.89, 21)
	sp := make(SaturationPoints, len(S))
	for i, s := range S {
		sp[i] = SaturationPoint{Cell: 0, Sat: s}
	}

	fwd := eps.Eval(tep, sp)
	back := make(SaturationPoints, len(fwd))
	for i, s := range fwd {
		back[i] = SaturationPoint{Cell: 0, Sat: s}
	}
	inv := eps.Reverse(tep, back)

	chk.Array(tst, "reverse(eval(s)) == s", 1e-13, inv, S)

	// reverse clamps the table bounds onto the cell's scaled bounds
	res := eps.Reverse(tep, sats(0, 0.0, 1.0, 0.2))
	chk.Array(tst, "reverse bounds", 1e-15, res, []float64{0.1, 0.9, 0.4})
}

func Test_threepoint04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("threepoint04. degenerate sub-segments take the boundary branches")

	// sLO == sR: the left sub-segment has zero width; a point exactly
	// at the bound takes the s <= sLO branch, never dividing by zero
	eps, err := NewThreePointScaling([]float64{0.3}, []float64{0.3}, []float64{0.8}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}

	tep := TableEndPoints{Low: 0.1, Disp: 0.3, High: 0.9}

	res := eps.Eval(tep, sats(0, 0.3, 0.55, 0.8))
	chk.Float64(tst, "at degenerate bound", 1e-15, res[0], tep.Low)
	chk.Float64(tst, "right segment midpoint", 1e-15, res[1], 0.6)
	chk.Float64(tst, "at sHI", 1e-15, res[2], tep.High)

	// sR == sHI mirrors on the other side
	eps, err = NewThreePointScaling([]float64{0.2}, []float64{0.7}, []float64{0.7}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}
	res = eps.Eval(tep, sats(0, 0.7, 0.45))
	chk.Float64(tst, "at sHI==sR", 1e-15, res[0], tep.High)
	chk.Float64(tst, "left segment midpoint", 1e-15, res[1], 0.2)
}

func Test_threepoint05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("threepoint05. invalid end-points and construction errors")

	tep := TableEndPoints{Low: 0.0, Disp: 0.2, High: 1.0}

	// displacing saturation outside [0,1] triggers the policy even
	// with valid outer bounds
	eps, err := NewThreePointScaling([]float64{0.1}, []float64{1.2}, []float64{0.9}, UseUnscaled)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}
	chk.Array(tst, "use-unscaled", 1e-17, eps.Eval(tep, sats(0, 0.5)), []float64{0.5})

	eps, err = NewThreePointScaling([]float64{0.1}, []float64{1.2}, []float64{0.9}, IgnorePoint)
	if err != nil {
		tst.Errorf("NewThreePointScaling failed: %v\n", err)
		return
	}
	res := eps.Eval(tep, sats(0, 0.5))
	if !math.IsNaN(res[0]) {
		tst.Errorf("result should be NaN, got %v\n", res[0])
		return
	}

	if _, err := NewThreePointScaling([]float64{0.1}, []float64{0.4, 0.5}, []float64{0.9}, UseUnscaled); err == nil {
		tst.Errorf("size mismatch should have failed\n")
	}
}
