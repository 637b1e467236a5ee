/*
 * chemgraph.go, part of gouff.
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

// Package chemgraph exposes a molecule.Graph as a gonum.org/v1/gonum/graph
// graph.Weighted, so the rest of the gonum graph ecosystem (shortest
// path, connected components, traversal) can operate on a molecular
// topology without gouff reimplementing any of it. Atom indices are
// used directly as node IDs since molecule.Graph is already
// index-stable; there is no pointer-wrapping layer to maintain, unlike
// the teacher's historical chemgraph adapter over its pointer-linked
// Atom/Bond graph.
package chemgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/rmera/gouff/molecule"
)

// node is a trivial graph.Node wrapping an atom index.
type node int64

func (n node) ID() int64 { return int64(n) }

// edge is a graph.WeightedEdge wrapping one molecule.Bond. Its weight
// is the bond order, the only per-bond scalar molecule.Graph carries.
type edge struct {
	from, to node
	order    int
}

func (e edge) From() graph.Node         { return e.from }
func (e edge) To() graph.Node           { return e.to }
func (e edge) Weight() float64          { return float64(e.order) }
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from, order: e.order} }

// View adapts a *molecule.Graph into a read-only gonum graph.Weighted.
// It holds no state of its own beyond the wrapped Graph, so it goes
// stale exactly when the Graph's bonds change — callers that mutate
// connectivity should build a fresh View rather than reuse one.
type View struct {
	g *molecule.Graph
}

// NewView wraps g as a gonum graph.Weighted.
func NewView(g *molecule.Graph) *View {
	return &View{g: g}
}

// Node returns the node for id, or nil if id is out of range.
func (v *View) Node(id int64) graph.Node {
	if id < 0 || id >= int64(v.g.NumAtoms()) {
		return nil
	}
	return node(id)
}

// Nodes returns every atom index as a graph.Nodes iterator.
func (v *View) Nodes() graph.Nodes {
	nodes := make([]graph.Node, v.g.NumAtoms())
	for i := range nodes {
		nodes[i] = node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbors of atom id.
func (v *View) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(v.g.NumAtoms()) {
		return iterator.NewOrderedNodes(nil)
	}
	neighbors := v.g.Neighbors(int(id))
	nodes := make([]graph.Node, len(neighbors))
	for i, n := range neighbors {
		nodes[i] = node(n)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether xid and yid are bonded.
func (v *View) HasEdgeBetween(xid, yid int64) bool {
	return v.g.BondOrderBetween(int(xid), int(yid)) > 0
}

// Edge returns the bond between uid and vid, or nil if they are not
// bonded.
func (v *View) Edge(uid, vid int64) graph.Edge {
	return v.WeightedEdge(uid, vid)
}

// EdgeBetween satisfies graph.Undirected, letting gonum's topology
// algorithms (e.g. graph/topo.ConnectedComponents) operate on a View
// directly.
func (v *View) EdgeBetween(uid, vid int64) graph.Edge {
	return v.Edge(uid, vid)
}

// WeightedEdge returns the weighted bond between uid and vid, or nil
// if they are not bonded.
func (v *View) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	order := v.g.BondOrderBetween(int(uid), int(vid))
	if order == 0 {
		return nil
	}
	return edge{from: node(uid), to: node(vid), order: order}
}

// Weight returns the bond order between xid and yid as the edge
// weight, following graph.Weighted's (w, ok) convention: ok is false
// if they are not bonded, true with w=0 if xid == yid.
func (v *View) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return 0, true
	}
	order := v.g.BondOrderBetween(int(xid), int(yid))
	if order == 0 {
		return 0, false
	}
	return float64(order), true
}
