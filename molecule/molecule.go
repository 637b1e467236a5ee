/*
 * molecule.go, part of gouff.
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

// Package molecule holds the atom/bond graph gouff operates on: an
// ordered, index-stable sequence of atoms and a sequence of bonds
// between them. Unlike gochem's historical pointer-linked
// Atom/Bond/Molecule trio, this graph is a pair of parallel slices —
// adjacency is derived from the bond slice on demand rather than kept
// as a live pointer web, which keeps ownership simple for a force
// field that only ever needs to read positions and connectivity.
package molecule

import (
	"sort"

	"github.com/rmera/gouff"
	"github.com/rmera/gouff/elements"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is one atom: its atomic number, the symbol it was parsed or
// constructed with (kept even though it is redundant with Number, per
// the as-parsed invariant), and its position in Angstroms.
type Atom struct {
	Number int
	Symbol string
	Pos    r3.Vec
}

// Bond is an unordered pair of atom indices and an integer order (1,
// 2, 3, or 4 for aromatic).
type Bond struct {
	I, J  int
	Order int
}

// Graph is gouff's molecular graph: atoms and bonds, index-based and
// owned by value. Atom indices are stable for the life of the Graph.
type Graph struct {
	Comment string
	Name    string

	atoms []Atom
	bonds []Bond
}

// New returns an empty molecular graph.
func New() *Graph {
	return &Graph{}
}

// NumAtoms returns the number of atoms in the graph.
func (g *Graph) NumAtoms() int { return len(g.atoms) }

// NumBonds returns the number of bonds in the graph.
func (g *Graph) NumBonds() int { return len(g.bonds) }

// Atom returns the atom at index i.
func (g *Graph) Atom(i int) Atom { return g.atoms[i] }

// Atoms returns the full atom slice. Callers must not retain it across
// a mutating call (AddAtom may reallocate it, SetPositions rewrites it).
func (g *Graph) Atoms() []Atom { return g.atoms }

// Bond returns the bond at index i.
func (g *Graph) Bond(i int) Bond { return g.bonds[i] }

// Bonds returns the full bond slice. Callers must not retain it across
// AddBond or PerceiveBonds, which may reallocate or rewrite it.
func (g *Graph) Bonds() []Bond { return g.bonds }

// AddAtom appends an atom and returns its new index.
func (g *Graph) AddAtom(a Atom) int {
	g.atoms = append(g.atoms, a)
	return len(g.atoms) - 1
}

// AddBond appends a bond. It does not check for duplicate or
// self-bonds; per the data model invariant, callers must not insert
// either.
func (g *Graph) AddBond(b Bond) {
	g.bonds = append(g.bonds, b)
}

// Positions flattens all atom positions into a length-3N slice,
// atom-major, xyz-minor.
func (g *Graph) Positions() []float64 {
	out := make([]float64, 3*len(g.atoms))
	for i, a := range g.atoms {
		out[3*i] = a.Pos.X
		out[3*i+1] = a.Pos.Y
		out[3*i+2] = a.Pos.Z
	}
	return out
}

// SetPositions overwrites every atom's position from a flat length-3N
// slice, atom-major xyz-minor. It fails with an InvalidInput error if
// the length does not match 3*NumAtoms().
func (g *Graph) SetPositions(pos []float64) error {
	if len(pos) != 3*len(g.atoms) {
		return gouff.NewError(gouff.InvalidInput, "position slice length %d, want %d", len(pos), 3*len(g.atoms))
	}
	for i := range g.atoms {
		g.atoms[i].Pos = r3.Vec{X: pos[3*i], Y: pos[3*i+1], Z: pos[3*i+2]}
	}
	return nil
}

// DefaultBondTolerance is the default tolerance PerceiveBondsDefault
// adds to the sum of two covalent radii.
const DefaultBondTolerance = 0.45

const minBondDistance = 0.4

// PerceiveBondsDefault calls PerceiveBonds with the default 0.45 Å
// tolerance.
func (g *Graph) PerceiveBondsDefault() error {
	return g.PerceiveBonds(DefaultBondTolerance)
}

// PerceiveBonds clears the bond list and reinserts single bonds
// between every atom pair (i, j), i < j, whose distance d satisfies
// 0.4 Å <= d <= r_i + r_j + tolerance, where r_i, r_j are covalent
// radii from the elements table. This is O(N^2), which is acceptable
// for the small structures this module targets.
func (g *Graph) PerceiveBonds(tolerance float64) error {
	n := len(g.atoms)
	radii := make([]float64, n)
	for i, a := range g.atoms {
		el, err := elements.ByNumber(a.Number)
		if err != nil {
			return err
		}
		radii[i] = el.CovalentRadius
	}

	g.bonds = g.bonds[:0]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := r3.Norm(r3.Sub(g.atoms[i].Pos, g.atoms[j].Pos))
			maxBond := radii[i] + radii[j] + tolerance
			if d >= minBondDistance && d <= maxBond {
				g.bonds = append(g.bonds, Bond{I: i, J: j, Order: 1})
			}
		}
	}
	return nil
}

// Adjacency returns, for each atom index, the sorted list of bonded
// neighbor indices. It is computed fresh from the current bond slice;
// callers that need it repeatedly (as the force field's Setup does)
// should call it once and reuse the result rather than re-derive it
// per query.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, len(g.atoms))
	for _, b := range g.bonds {
		adj[b.I] = append(adj[b.I], b.J)
		adj[b.J] = append(adj[b.J], b.I)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

// Degree returns the number of bonds touching atom i.
func (g *Graph) Degree(i int) int {
	n := 0
	for _, b := range g.bonds {
		if b.I == i || b.J == i {
			n++
		}
	}
	return n
}

// Neighbors returns the atom indices bonded to atom i.
func (g *Graph) Neighbors(i int) []int {
	var out []int
	for _, b := range g.bonds {
		if b.I == i {
			out = append(out, b.J)
		} else if b.J == i {
			out = append(out, b.I)
		}
	}
	return out
}

// BondOrderBetween returns the bond order between i and j, or 0 if
// they are not bonded.
func (g *Graph) BondOrderBetween(i, j int) int {
	for _, b := range g.bonds {
		if (b.I == i && b.J == j) || (b.I == j && b.J == i) {
			return b.Order
		}
	}
	return 0
}
