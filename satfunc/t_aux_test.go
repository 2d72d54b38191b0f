// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/magnesj/opm-flowdiagnostics-applications/ecl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// mockCase is an in-memory ecl.Graph + ecl.InitData for testing the
// factory layer and the defaulted array builder
type mockCase struct {
	grids  []string
	ncells map[string]int
	dbl    map[string]map[string][]float64 // kw -> grid -> values
	itg    map[string]map[string][]int
	ih     []int
}

// newMockCase returns an empty single-grid case with nc cells
func newMockCase(nc int) *mockCase {
	ih := make([]int, 100)
	ih[ecl.InteheadUnit] = 1  // metric
	ih[ecl.InteheadPhase] = 7 // oil + water + gas
	return &mockCase{
		grids:  []string{"main"},
		ncells: map[string]int{"main": nc},
		dbl:    make(map[string]map[string][]float64),
		itg:    make(map[string]map[string][]int),
		ih:     ih,
	}
}

func (o *mockCase) setDbl(kw, grid string, v []float64) {
	if o.dbl[kw] == nil {
		o.dbl[kw] = make(map[string][]float64)
	}
	o.dbl[kw][grid] = v
}

func (o *mockCase) setItg(kw, grid string, v []int) {
	if o.itg[kw] == nil {
		o.itg[kw] = make(map[string][]int)
	}
	o.itg[kw][grid] = v
}

func (o *mockCase) ActiveGrids() []string      { return o.grids }
func (o *mockCase) NumCells(gridID string) int { return o.ncells[gridID] }
func (o *mockCase) IntHeader() []int           { return o.ih }

func (o *mockCase) TotalCells() (n int) {
	for _, g := range o.grids {
		n += o.ncells[g]
	}
	return
}

func (o *mockCase) HaveKeyword(kw, gridID string) bool {
	if _, ok := o.dbl[kw][gridID]; ok {
		return true
	}
	_, ok := o.itg[kw][gridID]
	return ok
}

func (o *mockCase) CellData(kw, gridID string) []float64 { return o.dbl[kw][gridID] }
func (o *mockCase) IntCellData(kw, gridID string) []int  { return o.itg[kw][gridID] }

// sats builds a batch of evaluation points in one cell
func sats(cell int, vals ...float64) SaturationPoints {
	sp := make(SaturationPoints, len(vals))
	for i, s := range vals {
		sp[i] = SaturationPoint{Cell: cell, Sat: s}
	}
	return sp
}
