package chemgraph

import (
	"testing"

	"github.com/rmera/gouff/molecule"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
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

func TestViewNodeCount(t *testing.T) {
	v := NewView(water())
	require.Equal(t, 3, v.Nodes().Len())
}

func TestViewHasEdgeBetween(t *testing.T) {
	v := NewView(water())
	require.True(t, v.HasEdgeBetween(0, 1))
	require.False(t, v.HasEdgeBetween(1, 2))
}

func TestViewWeightIsBondOrder(t *testing.T) {
	v := NewView(water())
	w, ok := v.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 1.0, w)

	_, ok = v.Weight(1, 2)
	require.False(t, ok)
}

func TestViewConnectedComponents(t *testing.T) {
	v := NewView(water())
	components := topo.ConnectedComponents(v)
	require.Len(t, components, 1)
	require.Len(t, components[0], 3)
}

func TestViewOutOfRangeNode(t *testing.T) {
	v := NewView(water())
	require.Nil(t, v.Node(99))
}
