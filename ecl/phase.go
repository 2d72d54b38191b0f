// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecl

// PhaseIndex enumerates the fluid phases of an ECL result set
type PhaseIndex int

const (
	Aqua   PhaseIndex = iota // water phase
	Liquid                   // oil phase
	Vapour                   // gas phase
)

// String returns the phase name
func (p PhaseIndex) String() string {
	switch p {
	case Aqua:
		return "Aqua"
	case Liquid:
		return "Liquid"
	case Vapour:
		return "Vapour"
	}
	return "unknown"
}
