// Copyright 2024 The OPM Flow Diagnostics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotScaling draws the scaled-to-tabulated saturation mapping of eps
// for one cell, sampling npts model saturations over [0,1], and saves
// the figure to fname
func PlotScaling(eps EPSEvaluator, tep TableEndPoints, cell, npts int, label, fname string) error {
	S := utl.LinSpace(0, 1, npts)

	sp := make(SaturationPoints, npts)
	for i, s := range S {
		sp[i] = SaturationPoint{Cell: cell, Sat: s}
	}
	Seff := eps.Eval(tep, sp)

	pts := make(plotter.XYs, npts)
	for i := range S {
		pts[i].X = S[i]
		pts[i].Y = Seff[i]
	}

	p := plot.New()
	p.X.Label.Text = "s"
	p.Y.Label.Text = "s unscaled"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(io.Sf("%s cell %d", label, cell), line)

	return p.Save(4*vg.Inch, 4*vg.Inch, fname)
}
