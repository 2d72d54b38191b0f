// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecl

import "github.com/cpmech/gosl/chk"

// Pressure units of the convention unit systems, in Pascal
const (
	barsa = 1.0e5
	psia  = 6894.75729316836
	atm   = 101325.0
)

// UnitSystem converts raw stored values from one of the ECL convention
// unit systems into the engine's working units (SI)
type UnitSystem struct {
	name     string
	pressure float64 // raw pressure -> Pascal
}

// NewUnitSystem returns the unit system selected by the usys code of
// the INTEHEAD keyword: 1=metric, 2=field, 3=lab, 4=PVT-M
func NewUnitSystem(usys int) (*UnitSystem, error) {
	switch usys {
	case 1:
		return &UnitSystem{name: "Metric", pressure: barsa}, nil
	case 2:
		return &UnitSystem{name: "Field", pressure: psia}, nil
	case 3:
		return &UnitSystem{name: "Lab", pressure: atm}, nil
	case 4:
		return &UnitSystem{name: "PVT-M", pressure: atm}, nil
	}
	return nil, chk.Err("unit system code %d is not supported", usys)
}

// UnitSystemFromHeader resolves the unit system embedded in an INTEHEAD vector
func UnitSystemFromHeader(ih []int) (*UnitSystem, error) {
	return NewUnitSystem(ih[InteheadUnit])
}

// Name returns the convention name of the unit system
func (o *UnitSystem) Name() string {
	return o.name
}

// Pressure returns the multiplicative factor taking a raw pressure
// value into Pascal
func (o *UnitSystem) Pressure() float64 {
	return o.pressure
}

// PressureToSI converts a raw stored pressure value into Pascal
func (o *UnitSystem) PressureToSI(p float64) float64 {
	return p * o.pressure
}
