package forcefield

import (
	"math"
	"testing"

	"github.com/rmera/gouff/molecule"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func water() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 8, Symbol: "O", Pos: r3.Vec{X: 0, Y: 0, Z: 0.1173}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: 0.7572, Z: -0.4692}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: -0.7572, Z: -0.4692}})
	if err := g.PerceiveBondsDefault(); err != nil {
		panic(err)
	}
	return g
}

func methane() *molecule.Graph {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 6, Symbol: "C", Pos: r3.Vec{X: 0, Y: 0, Z: 0}})
	signs := [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	for _, s := range signs {
		g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0.629 * s[0], Y: 0.629 * s[1], Z: 0.629 * s[2]}})
	}
	if err := g.PerceiveBondsDefault(); err != nil {
		panic(err)
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
	if err := g.PerceiveBondsDefault(); err != nil {
		panic(err)
	}
	return g
}

func TestSetupWaterCounts(t *testing.T) {
	g := water()
	f := New()
	require.NoError(t, f.Setup(g))
	require.Equal(t, []string{"O_3", "H_", "H_"}, f.AtomTypes())
	require.Equal(t, 1, f.AngleCount())
	require.Equal(t, 0, f.TorsionCount())
	require.Equal(t, 0, f.PairCount())
}

func TestEnergyComponentsSumExactly(t *testing.T) {
	g := methane()
	f := New()
	require.NoError(t, f.Setup(g))
	c := f.EnergyComponents(g)
	require.Equal(t, c.Bond+c.Angle+c.Torsion+c.VdW, c.Total)
	require.Equal(t, c.Total, f.Energy(g))
}

func TestEnergyNonNegativeAtEquilibriumApprox(t *testing.T) {
	g := water()
	f := New()
	require.NoError(t, f.Setup(g))
	e := f.Energy(g)
	require.False(t, math.IsNaN(e))
	require.False(t, math.IsInf(e, 0))
	require.GreaterOrEqual(t, e, 0.0)
}

func TestFragmentsSingleMoleculeIsOneComponent(t *testing.T) {
	g := water()
	f := New()
	require.NoError(t, f.Setup(g))
	frags := f.Fragments(g)
	require.Len(t, frags, 1)
	require.Equal(t, []int{0, 1, 2}, frags[0])
}

func TestFragmentsTwoDisjointMolecules(t *testing.T) {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 8, Symbol: "O", Pos: r3.Vec{X: 0, Y: 0, Z: 0}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 0, Y: 0, Z: 0.96}})
	g.AddAtom(molecule.Atom{Number: 8, Symbol: "O", Pos: r3.Vec{X: 20, Y: 0, Z: 0}})
	g.AddAtom(molecule.Atom{Number: 1, Symbol: "H", Pos: r3.Vec{X: 20, Y: 0, Z: 0.96}})
	require.NoError(t, g.PerceiveBondsDefault())

	f := New()
	require.NoError(t, f.Setup(g))
	frags := f.Fragments(g)
	require.Len(t, frags, 2)
	require.Equal(t, []int{0, 1}, frags[0])
	require.Equal(t, []int{2, 3}, frags[1])
}

func TestSetupUnknownTypeFails(t *testing.T) {
	g := molecule.New()
	g.AddAtom(molecule.Atom{Number: 118, Symbol: "Zz", Pos: r3.Vec{}})
	f := New()
	err := f.Setup(g)
	require.Error(t, err)
}

func TestGradientFiniteDifferenceWater(t *testing.T) {
	g := water()
	f := New()
	require.NoError(t, f.Setup(g))
	checkGradientFiniteDifference(t, f, g)
}

func TestGradientFiniteDifferenceMethane(t *testing.T) {
	g := methane()
	f := New()
	require.NoError(t, f.Setup(g))
	checkGradientFiniteDifference(t, f, g)
}

func TestGradientFiniteDifferenceBenzene(t *testing.T) {
	g := benzene()
	f := New()
	require.NoError(t, f.Setup(g))
	checkGradientFiniteDifference(t, f, g)
}

// checkGradientFiniteDifference compares the analytic gradient against
// a central finite difference at every coordinate, within a tolerance
// loose enough to absorb the angle/torsion guards' floor terms.
func checkGradientFiniteDifference(t *testing.T, f *Field, g *molecule.Graph) {
	t.Helper()
	const h = 1e-5
	pos := g.Positions()
	analytic := f.Gradient(g)

	for i := range pos {
		perturbed := append([]float64(nil), pos...)
		perturbed[i] = pos[i] + h
		require.NoError(t, g.SetPositions(perturbed))
		ePlus := f.Energy(g)

		perturbed[i] = pos[i] - h
		require.NoError(t, g.SetPositions(perturbed))
		eMinus := f.Energy(g)

		require.NoError(t, g.SetPositions(pos))

		numeric := (ePlus - eMinus) / (2 * h)
		require.InDelta(t, numeric, analytic[i], 1e-2, "coordinate %d", i)
	}
}
