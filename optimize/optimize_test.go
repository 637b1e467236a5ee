package optimize

import (
	"math"
	"testing"

	"github.com/rmera/gouff/forcefield"
	"github.com/rmera/gouff/molecule"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func distortedWater() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 8, Symbol: "O", Pos: r3.Vec{X: 0, Y: 0, Z: 0.1173}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0.15, Y: 0.7572 + 0.05, Z: -0.4692}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: -0.7572, Z: -0.4692}})
	if err := g.PerceiveBondsDefault(); err != nil {
		panic(err)
	}
	return g
}

func distortedMethane() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 6, Symbol: "C", Pos: r3.Vec{X: 0, Y: 0, Z: 0}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0.8, Y: 0.8, Z: 0.8}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0.9, Y: -0.629, Z: -0.629}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: -0.629, Y: 0.629, Z: -0.629}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: -0.629, Y: -0.629, Z: 0.629}})
	if err := g.PerceiveBondsDefault(); err != nil {
		panic(err)
	}
	return g
}

func TestRunEmptyGraphFails(t *testing.T) {
	g := molecule.New()
	f := forcefield.New()
	_, err := Run(g, f, DefaultSettings(), nil)
	require.Error(t, err)
}

func TestLBFGSDistortedWaterConverges(t *testing.T) {
	g := distortedWater()
	f := forcefield.New()
	require.NoError(t, f.Setup(g))
	initialEnergy := f.Energy(g)

	settings := DefaultSettings()
	settings.Method = "lbfgs"
	settings.MaxIterations = 200

	res, err := Run(g, f, settings, nil)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Less(t, res.FinalEnergy, initialEnergy)
	require.False(t, math.IsNaN(res.FinalEnergy))
}

func TestSteepestDescentMonotonic(t *testing.T) {
	g := distortedWater()
	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	settings := DefaultSettings()
	settings.Method = "steepest_descent"
	settings.MaxIterations = 50

	res, err := Run(g, f, settings, nil)
	require.NoError(t, err)
	for i := 1; i < len(res.Trajectory); i++ {
		require.LessOrEqual(t, res.Trajectory[i].Energy, res.Trajectory[i-1].Energy+1e-6)
	}
}

func TestProgressCallbackInvokedWithIncreasingIterations(t *testing.T) {
	g := distortedWater()
	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	last := -1
	settings := DefaultSettings()
	settings.MaxIterations = 50

	_, err := Run(g, f, settings, func(p Progress) {
		require.GreaterOrEqual(t, p.Iteration, last)
		last = p.Iteration
	})
	require.NoError(t, err)
}

func TestTrajectoryOmitsPositionsWhenNotStoring(t *testing.T) {
	g := distortedWater()
	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	settings := DefaultSettings()
	settings.StoreTrajectory = false
	settings.MaxIterations = 50

	res, err := Run(g, f, settings, nil)
	require.NoError(t, err)
	for _, p := range res.Trajectory {
		require.Nil(t, p.Positions)
	}
}

func TestConvergedResultSatisfiesToleranceInvariant(t *testing.T) {
	for _, method := range []string{"lbfgs", "steepest_descent"} {
		g := distortedWater()
		f := forcefield.New()
		require.NoError(t, f.Setup(g))

		settings := DefaultSettings()
		settings.Method = method
		settings.MaxIterations = 200

		res, err := Run(g, f, settings, nil)
		require.NoError(t, err)
		if !res.Converged {
			continue
		}

		byGrad := res.FinalGradNorm < settings.GradTolerance
		byEnergy := false
		if n := len(res.Trajectory); n >= 2 {
			delta := math.Abs(res.Trajectory[n-1].Energy - res.Trajectory[n-2].Energy)
			byEnergy = delta < settings.EnergyTolerance
		}
		require.True(t, byGrad || byEnergy,
			"%s: Converged true but neither grad nor energy tolerance satisfied (gradRMS=%g, tol=%g)",
			method, res.FinalGradNorm, settings.GradTolerance)
	}
}

func TestLBFGSDistortedMethaneRestoresGeometry(t *testing.T) {
	g := distortedMethane()
	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	settings := DefaultSettings()
	settings.MaxIterations = 300

	_, err := Run(g, f, settings, nil)
	require.NoError(t, err)

	c := g.Atom(0).Pos
	for i := 1; i < g.NumAtoms(); i++ {
		h := g.Atom(i).Pos
		d := r3.Norm(r3.Sub(h, c))
		require.InDelta(t, 1.09, d, 0.15)
	}
}
