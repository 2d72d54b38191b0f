// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/magnesj/opm-flowdiagnostics-applications/ecl"
)

// GridDefaultedVector builds a dense per-active-cell array for keyword
// kw. Cells whose raw value is finite (magnitude below the 1e20
// sentinel) take cvrt(value); all other cells take the default of their
// saturation region, dflt[SATNUM-1], with SATNUM itself defaulting to
// region 1 when absent. The returned slice is freshly allocated.
func GridDefaultedVector(g ecl.Graph, init ecl.InitData, kw string, dflt []float64, cvrt func(float64) float64) []float64 {
	if len(dflt) == 0 {
		chk.Panic("empty region default array for keyword %q", kw)
	}
	if cvrt == nil {
		cvrt = func(v float64) float64 { return v }
	}

	ret := make([]float64, 0, g.TotalCells())

	for _, grid := range g.ActiveGrids() {
		nc := g.NumCells(grid)

		var snum []int
		if init.HaveKeyword("SATNUM", grid) {
			snum = init.IntCellData("SATNUM", grid)
		}

		var val []float64
		if init.HaveKeyword(kw, grid) {
			val = init.CellData(kw, grid)
		}

		for c := 0; c < nc; c++ {
			region := 1
			if snum != nil {
				region = snum[c]
			}
			if val != nil && math.Abs(val[c]) < defaultedLimit {
				ret = append(ret, cvrt(val[c]))
			} else {
				ret = append(ret, dflt[region-1])
			}
		}
	}
	return ret
}
