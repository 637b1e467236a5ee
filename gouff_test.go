package gouff_test

import (
	"math"
	"testing"

	"github.com/rmera/gouff/forcefield"
	"github.com/rmera/gouff/molecule"
	"github.com/rmera/gouff/optimize"
	"github.com/rmera/gouff/typer"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func water() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 8, Symbol: "O", Pos: r3.Vec{X: 0, Y: 0, Z: 0.1173}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: 0.7572, Z: -0.4692}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: -0.7572, Z: -0.4692}})
	return g
}

func methane() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 6, Symbol: "C", Pos: r3.Vec{X: 0, Y: 0, Z: 0}})
	signs := [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	for _, s := range signs {
		g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0.629 * s[0], Y: 0.629 * s[1], Z: 0.629 * s[2]}})
	}
	return g
}

func benzene() *molecule.Graph {
	g := molecule.New()
	const nRing = 6
	ringR := 1.39
	chR := 1.39 + 1.09
	for i := 0; i < nRing; i++ {
		theta := 2 * math.Pi * float64(i) / nRing
		g.AddAtom(molecule.Atom{Number: 6, Symbol: "C", Pos: r3.Vec{X: ringR * math.Cos(theta), Y: ringR * math.Sin(theta), Z: 0}})
	}
	for i := 0; i < nRing; i++ {
		theta := 2 * math.Pi * float64(i) / nRing
		g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: chR * math.Cos(theta), Y: chR * math.Sin(theta), Z: 0}})
	}
	return g
}

// TestSeedWaterAtReferenceGeometry is scenario 1.
func TestSeedWaterAtReferenceGeometry(t *testing.T) {
	g := water()
	require.NoError(t, g.PerceiveBondsDefault())
	require.Equal(t, 2, g.NumBonds())
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 1, g.Degree(2))

	labels, err := typer.Assign(g)
	require.NoError(t, err)
	require.Equal(t, []string{"O_3", "H_", "H_"}, labels)

	f := forcefield.New()
	require.NoError(t, f.Setup(g))
	e := f.Energy(g)
	require.False(t, math.IsNaN(e))
	require.Less(t, math.Abs(e), 100.0)
}

// TestSeedMethaneNearTetrahedral is scenario 2.
func TestSeedMethaneNearTetrahedral(t *testing.T) {
	g := methane()
	require.NoError(t, g.PerceiveBondsDefault())
	require.Equal(t, 4, g.NumBonds())
	require.Equal(t, 4, g.Degree(0))

	labels, err := typer.Assign(g)
	require.NoError(t, err)
	require.Equal(t, []string{"C_3", "H_", "H_", "H_", "H_"}, labels)
}

// TestSeedBenzene is scenario 3.
func TestSeedBenzene(t *testing.T) {
	g := benzene()
	require.NoError(t, g.PerceiveBondsDefault())
	require.Equal(t, 12, g.NumBonds())

	labels, err := typer.Assign(g)
	require.NoError(t, err)
	var nCR, nH int
	for _, l := range labels {
		switch l {
		case "C_R":
			nCR++
		case "H_":
			nH++
		}
	}
	require.Equal(t, 6, nCR)
	require.Equal(t, 6, nH)

	f := forcefield.New()
	require.NoError(t, f.Setup(g))
	e := f.Energy(g)
	require.False(t, math.IsNaN(e))
	require.False(t, math.IsInf(e, 0))
	for _, gi := range f.Gradient(g) {
		require.False(t, math.IsNaN(gi))
		require.False(t, math.IsInf(gi, 0))
	}
}

// TestSeedFiniteDifferenceWater is scenario 4.
func TestSeedFiniteDifferenceWater(t *testing.T) {
	g := water()
	require.NoError(t, g.PerceiveBondsDefault())
	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	const h = 1e-5
	pos := g.Positions()
	analytic := f.Gradient(g)

	for i := range pos {
		trial := append([]float64(nil), pos...)
		trial[i] = pos[i] + h
		require.NoError(t, g.SetPositions(trial))
		ePlus := f.Energy(g)

		trial[i] = pos[i] - h
		require.NoError(t, g.SetPositions(trial))
		eMinus := f.Energy(g)

		require.NoError(t, g.SetPositions(pos))

		numeric := (ePlus - eMinus) / (2 * h)
		tolerance := math.Max(1e-3, 0.05*math.Abs(analytic[i]))
		require.InDelta(t, numeric, analytic[i], tolerance, "coordinate %d", i)
	}
}

// TestSeedDistortedWaterLBFGS is scenario 5.
func TestSeedDistortedWaterLBFGS(t *testing.T) {
	g := water()
	g.Atoms()[1].Pos = r3.Add(g.Atoms()[1].Pos, r3.Vec{X: 0.15, Y: 0.05, Z: 0.0})
	require.NoError(t, g.PerceiveBondsDefault())

	f := forcefield.New()
	require.NoError(t, f.Setup(g))
	initialEnergy := f.Energy(g)

	settings := optimize.DefaultSettings()
	settings.Method = "lbfgs"
	settings.MaxIterations = 200

	result, err := optimize.Run(g, f, settings, nil)
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.Less(t, result.FinalEnergy, initialEnergy)
}

// TestSeedDistortedMethaneLBFGS is scenario 6.
func TestSeedDistortedMethaneLBFGS(t *testing.T) {
	g := methane()
	g.Atoms()[1].Pos = r3.Add(g.Atoms()[1].Pos, r3.Vec{X: 0.2, Y: 0.1, Z: 0.0})
	g.Atoms()[2].Pos = r3.Add(g.Atoms()[2].Pos, r3.Vec{X: -0.1, Y: 0.2, Z: 0.1})
	require.NoError(t, g.PerceiveBondsDefault())

	f := forcefield.New()
	require.NoError(t, f.Setup(g))

	settings := optimize.DefaultSettings()
	settings.MaxIterations = 300

	_, err := optimize.Run(g, f, settings, nil)
	require.NoError(t, err)

	c := g.Atom(0).Pos
	for i := 1; i < g.NumAtoms(); i++ {
		d := r3.Norm(r3.Sub(g.Atom(i).Pos, c))
		require.InDelta(t, 1.09, d, 0.15)
	}
}
