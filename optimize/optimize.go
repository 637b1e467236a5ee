/*
 * optimize.go, part of gouff.
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

// Package optimize drives local geometry relaxation of a molecule.Graph
// against a forcefield.Field, by steepest descent with backtracking or
// by wiring gonum.org/v1/gonum/optimize's LBFGS method. Both methods
// mutate the Graph passed to Run in place.
package optimize

import (
	"math"

	"github.com/rmera/gouff"
	"github.com/rmera/gouff/forcefield"
	"github.com/rmera/gouff/molecule"
	gonumopt "gonum.org/v1/gonum/optimize"
)

// Progress is one reported step of an optimization: the iteration
// index it was recorded at, the energy and gradient-RMS at that point,
// and a snapshot of positions (nil unless the run stores trajectories).
type Progress struct {
	Iteration int
	Energy    float64
	GradRMS   float64
	Positions []float64
}

// ProgressFunc receives every Progress record the running optimizer
// reports: one per iteration for steepest descent, one per objective
// evaluation plus one per major iteration for L-BFGS. A panic inside it
// propagates to Run's caller.
type ProgressFunc func(Progress)

// Settings configures a Run.
type Settings struct {
	MaxIterations   int
	GradTolerance   float64
	EnergyTolerance float64
	Method          string // "steepest_descent" or "lbfgs" (default)
	StoreTrajectory bool
}

// DefaultSettings returns the settings spec.md §4.4 names as defaults.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations:   500,
		GradTolerance:   1e-4,
		EnergyTolerance: 1e-8,
		Method:          "lbfgs",
		StoreTrajectory: true,
	}
}

// Result is the outcome of a Run.
type Result struct {
	Converged     bool
	Iterations    int
	FinalEnergy   float64
	FinalGradNorm float64
	Trajectory    []Progress
}

// Run optimizes g in place against f using settings, invoking cb (if
// non-nil) with each Progress record the chosen method reports. A non-nil
// error return is reserved for setup failures, not for solver
// non-convergence — a failed line search is reported as
// Result{Converged: false, ...}.
func Run(g *molecule.Graph, f *forcefield.Field, settings Settings, cb ProgressFunc) (Result, error) {
	if g.NumAtoms() == 0 {
		return Result{}, gouff.NewError(gouff.InvalidInput, "cannot optimize a graph with no atoms")
	}

	switch settings.Method {
	case "steepest_descent":
		return steepestDescent(g, f, settings, cb)
	default:
		return lbfgs(g, f, settings, cb)
	}
}

func gradRMS(grad []float64, n int) float64 {
	sumSq := 0.0
	for _, v := range grad {
		sumSq += v * v
	}
	return math.Sqrt(sumSq) / math.Sqrt(float64(n))
}

func snapshotPositions(g *molecule.Graph, store bool) []float64 {
	if !store {
		return nil
	}
	pos := g.Positions()
	out := make([]float64, len(pos))
	copy(out, pos)
	return out
}

// steepestDescent is a backtracking steepest-descent relaxation,
// translated in behavior from the hand-written solver this module's
// L-BFGS path supersedes as the default: adaptive step size, up to 20
// halvings per iteration, and a tiny unnormalized fallback step when
// every halving still fails to lower the energy.
func steepestDescent(g *molecule.Graph, f *forcefield.Field, settings Settings, cb ProgressFunc) (Result, error) {
	n := g.NumAtoms()
	stepSize := 0.01
	prevEnergy := f.Energy(g)

	var trajectory []Progress
	lastReported := prevEnergy

	emit := func(iter int, energy, grms float64) {
		p := Progress{
			Iteration: iter,
			Energy:    energy,
			GradRMS:   grms,
			Positions: snapshotPositions(g, settings.StoreTrajectory),
		}
		trajectory = append(trajectory, p)
		if cb != nil {
			cb(p)
		}
	}

	for iter := 0; iter < settings.MaxIterations; iter++ {
		grad := f.Gradient(g)
		grms := gradRMS(grad, n)

		emit(iter, prevEnergy, grms)
		energyChange := math.Abs(prevEnergy - lastReported)
		lastReported = prevEnergy

		if grms < settings.GradTolerance {
			return Result{
				Converged:     true,
				Iterations:    iter,
				FinalEnergy:   prevEnergy,
				FinalGradNorm: grms,
				Trajectory:    trajectory,
			}, nil
		}

		gradNorm := math.Sqrt(sumSquares(grad))
		direction := make([]float64, len(grad))
		if gradNorm > 0 {
			for i, v := range grad {
				direction[i] = -v / gradNorm
			}
		}

		alpha := stepSize
		positions := g.Positions()
		trial := make([]float64, len(positions))

		for ls := 0; ls < 20; ls++ {
			for i := range positions {
				trial[i] = positions[i] + alpha*direction[i]
			}
			_ = g.SetPositions(trial)
			trialEnergy := f.Energy(g)

			if trialEnergy < prevEnergy {
				prevEnergy = trialEnergy
				stepSize = math.Min(alpha*1.2, 0.5)
				break
			}
			alpha *= 0.5
			if ls == 19 {
				for i := range positions {
					trial[i] = positions[i] - 1e-4*grad[i]
				}
				_ = g.SetPositions(trial)
				prevEnergy = f.Energy(g)
				stepSize = 0.001
			}
		}

		if iter > 0 && energyChange < settings.EnergyTolerance {
			finalGrad := f.Gradient(g)
			finalGRMS := gradRMS(finalGrad, n)
			return Result{
				Converged:     true,
				Iterations:    iter,
				FinalEnergy:   prevEnergy,
				FinalGradNorm: finalGRMS,
				Trajectory:    trajectory,
			}, nil
		}
	}

	finalGrad := f.Gradient(g)
	finalGRMS := gradRMS(finalGrad, n)
	return Result{
		Converged:     false,
		Iterations:    settings.MaxIterations,
		FinalEnergy:   prevEnergy,
		FinalGradNorm: finalGRMS,
		Trajectory:    trajectory,
	}, nil
}

func sumSquares(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return s
}

// lbfgs relaxes g using gonum.org/v1/gonum/optimize's LBFGS method. The
// Problem's Func/Grad closures write the candidate vector back into g
// before evaluating the field, and a gonumopt.Recorder emits one
// Progress per evaluation gonum's inner loop performs — including
// line-search trial points — plus one each time gonum reports a
// completed major iteration, which is why trajectory iteration numbers
// are monotonic but not contiguous with the solver's own major
// iteration count.
func lbfgs(g *molecule.Graph, f *forcefield.Field, settings Settings, cb ProgressFunc) (Result, error) {
	n := g.NumAtoms()
	x0 := g.Positions()

	rec := &progressRecorder{
		g:     g,
		n:     n,
		store: settings.StoreTrajectory,
		cb:    cb,
	}

	problem := gonumopt.Problem{
		Func: func(x []float64) float64 {
			_ = g.SetPositions(x)
			return f.Energy(g)
		},
		Grad: func(grad, x []float64) {
			_ = g.SetPositions(x)
			copy(grad, f.Gradient(g))
		},
	}

	gonumSettings := &gonumopt.Settings{
		GradientThreshold: settings.GradTolerance,
		MajorIterations:   settings.MaxIterations,
		Recorder:          rec,
		Converger: &gonumopt.FunctionConverge{
			Absolute:   settings.EnergyTolerance,
			Iterations: 1,
		},
	}

	method := &gonumopt.LBFGS{}

	res, err := gonumopt.Minimize(problem, x0, gonumSettings, method)

	converged := err == nil && res != nil &&
		(res.Status == gonumopt.GradientThreshold || res.Status == gonumopt.FunctionConvergence)

	var finalX []float64
	if res != nil {
		finalX = res.X
	} else {
		finalX = x0
	}
	_ = g.SetPositions(finalX)

	finalEnergy := f.Energy(g)
	finalGrad := f.Gradient(g)
	finalGRMS := gradRMS(finalGrad, n)

	iterations := 0
	if res != nil {
		iterations = int(res.Stats.MajorIterations)
	}

	return Result{
		Converged:     converged,
		Iterations:    iterations,
		FinalEnergy:   finalEnergy,
		FinalGradNorm: finalGRMS,
		Trajectory:    rec.trajectory,
	}, nil
}

// progressRecorder adapts gonum's per-evaluation Recorder interface
// into this module's Progress snapshots.
type progressRecorder struct {
	g          *molecule.Graph
	n          int
	store      bool
	cb         ProgressFunc
	iter       int
	trajectory []Progress
}

func (r *progressRecorder) Init() error { return nil }

func (r *progressRecorder) Record(loc *gonumopt.Location, op gonumopt.Operation, stats *gonumopt.Stats) error {
	if op&(gonumopt.FuncEvaluation|gonumopt.GradEvaluation|gonumopt.MajorIteration) == 0 {
		return nil
	}
	grms := gradRMS(loc.Gradient, r.n)
	p := Progress{
		Iteration: r.iter,
		Energy:    loc.F,
		GradRMS:   grms,
		Positions: snapshotPositions(r.g, r.store),
	}
	r.iter++
	r.trajectory = append(r.trajectory, p)
	if r.cb != nil {
		r.cb(p)
	}
	return nil
}
