// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_gridvec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gridvec01. absent keyword broadcasts region defaults")

	c := newMockCase(4)
	c.setItg("SATNUM", "main", []int{1, 1, 2, 2})

	dflt := []float64{0.12, 0.34}

	v := GridDefaultedVector(c, c, "SOWCR", dflt, nil)
	chk.Array(tst, "defaults", 1e-17, v, []float64{0.12, 0.12, 0.34, 0.34})
}

func Test_gridvec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gridvec02. sentinel cells fall back, finite cells convert")

	c := newMockCase(4)
	c.setItg("SATNUM", "main", []int{1, 2, 1, 2})
	c.setDbl("PCW", "main", []float64{2.0, -1.0e21, 3.0, 1.0e20})

	dflt := []float64{10.0, 20.0}

	v := GridDefaultedVector(c, c, "PCW", dflt, func(p float64) float64 { return p * 1.0e5 })
	chk.Array(tst, "mixed", 1e-12, v, []float64{2.0e5, 20.0, 3.0e5, 20.0})
}

func Test_gridvec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gridvec03. missing SATNUM defaults to region 1; multi-grid order")

	c := newMockCase(2)
	c.grids = []string{"main", "lgr1"}
	c.ncells = map[string]int{"main": 2, "lgr1": 2}
	c.setItg("SATNUM", "lgr1", []int{2, 2})
	c.setDbl("SWL", "lgr1", []float64{0.05, 1.0e21})

	dflt := []float64{0.1, 0.2}

	// main grid: no SATNUM (region 1), no SWL => 0.1 everywhere;
	// lgr1: region 2 with one finite value
	v := GridDefaultedVector(c, c, "SWL", dflt, nil)
	chk.Array(tst, "grid-major", 1e-17, v, []float64{0.1, 0.1, 0.05, 0.2})
}
