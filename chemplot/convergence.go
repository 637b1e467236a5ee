/*
 * convergence.go, part of gouff.
 *
 * Copyright 2024 The Gouff Authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemplot renders an optimization trajectory as a
// convergence figure: energy and gradient RMS against iteration, on a
// log-scale Y axis, the way gochem's own chemplot package rendered
// Ramachandran scatter plots, but with gonum.org/v1/plot standing in
// for the long-abandoned plotinum this package used to depend on.
package chemplot

import (
	"github.com/rmera/gouff"
	"github.com/rmera/gouff/optimize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicConvergencePlot(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "magnitude (log scale)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Add(plotter.NewGrid())
	return p, nil
}

// Convergence builds a two-line plot of energy and gradient RMS versus
// iteration from an optimize trajectory. It fails with InvalidInput if
// traj is empty.
func Convergence(traj []optimize.Progress) (*plot.Plot, error) {
	if len(traj) == 0 {
		return nil, gouff.NewError(gouff.InvalidInput, "chemplot: empty trajectory")
	}

	p, err := basicConvergencePlot("Optimization convergence")
	if err != nil {
		return nil, err
	}

	energy := make(plotter.XYs, len(traj))
	gradRMS := make(plotter.XYs, len(traj))
	for i, rec := range traj {
		x := float64(rec.Iteration)
		energy[i].X = x
		energy[i].Y = absLog(rec.Energy)
		gradRMS[i].X = x
		gradRMS[i].Y = absLog(rec.GradRMS)
	}

	if err := plotutil.AddLines(p, "|energy|", energy, "grad RMS", gradRMS); err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "chemplot: %v", err)
	}
	return p, nil
}

// absLog floors a value away from zero so it stays representable on a
// log-scale axis even when energy crosses zero or grms underflows.
func absLog(v float64) float64 {
	if v < 0 {
		v = -v
	}
	if v < 1e-12 {
		v = 1e-12
	}
	return v
}
