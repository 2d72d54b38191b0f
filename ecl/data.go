// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ecl holds the narrow surface through which the scaling engine
// reads an ECL result set: cell counts per active grid, raw per-cell
// keyword vectors from the INIT file, the INTEHEAD header and the unit
// system it selects. Grid topology, file parsing and keyword decoding
// live behind these interfaces; nothing here owns I/O.
package ecl

// Positions of the unit-system code and the active-phase bitmask within
// the INTEHEAD keyword vector of an ECL INIT file.
const (
	InteheadUnit  = 2
	InteheadPhase = 14
)

// Graph describes the active cells of an ECL case, grid by grid. Cells
// are linearised grid-major: all cells of the first active grid, then
// all cells of the second, and so on.
type Graph interface {

	// ActiveGrids returns the IDs of all active grids, main grid first
	ActiveGrids() []string

	// NumCells returns the number of active cells in one grid
	NumCells(gridID string) int

	// TotalCells returns the number of active cells over all grids
	TotalCells() int
}

// InitData provides raw keyword data from an ECL INIT result file.
// CellData and IntCellData return an empty slice when the keyword is
// absent for the given grid.
type InitData interface {
	HaveKeyword(kw, gridID string) bool
	CellData(kw, gridID string) []float64
	IntCellData(kw, gridID string) []int
	IntHeader() []int // INTEHEAD vector of the main grid
}

// LinearisedCellData collects the per-cell vector of keyword kw across
// all active grids of g, in grid-major cell order. Returns nil if the
// keyword is absent in any active grid.
func LinearisedCellData(g Graph, init InitData, kw string) []float64 {
	for _, grid := range g.ActiveGrids() {
		if !init.HaveKeyword(kw, grid) {
			return nil
		}
	}
	ret := make([]float64, 0, g.TotalCells())
	for _, grid := range g.ActiveGrids() {
		ret = append(ret, init.CellData(kw, grid)...)
	}
	return ret
}

// OilActive reports whether oil is among the active phases of the run
// described by the INTEHEAD vector ih.
func OilActive(ih []int) bool {
	return (ih[InteheadPhase] & 1) != 0
}
