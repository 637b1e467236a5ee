/*
 * typer.go, part of gouff.
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

// Package typer assigns a UFF atom-type label to every atom of a
// molecular graph. It is a pure function of atomic number and local
// degree — it never looks at positions.
package typer

import (
	"github.com/rmera/gouff"
	"github.com/rmera/gouff/molecule"
	"github.com/rmera/gouff/uffparam"
)

// hasCarbonNeighborDeg3 implements the aromaticity heuristic frozen by
// the spec this package is built against: an atom is treated as part
// of an aromatic ring if any of its neighbors is a degree-3 carbon.
// This misclassifies extended conjugated systems that aren't simple
// six-membered rings, a known limitation carried over as-is.
func hasCarbonNeighborDeg3(g *molecule.Graph, i int) bool {
	for _, n := range g.Neighbors(i) {
		if g.Atom(n).Number == 6 && g.Degree(n) == 3 {
			return true
		}
	}
	return false
}

// Assign returns one UFF type label per atom in g, in atom order.
func Assign(g *molecule.Graph) ([]string, error) {
	n := g.NumAtoms()
	labels := make([]string, n)

	for i := 0; i < n; i++ {
		a := g.Atom(i)
		deg := g.Degree(i)
		var label string

		switch a.Number {
		case 1:
			label = "H_"
		case 2:
			label = "He4+4"
		case 3:
			label = "Li"
		case 4:
			label = "Be3+2"
		case 5:
			if deg <= 2 {
				label = "B_2"
			} else {
				label = "B_3"
			}
		case 6:
			switch {
			case deg <= 1:
				label = "C_1"
			case deg == 2:
				label = "C_2"
			case deg == 3:
				if hasCarbonNeighborDeg3(g, i) {
					label = "C_R"
				} else {
					label = "C_2"
				}
			default:
				label = "C_3"
			}
		case 7:
			switch {
			case deg <= 1:
				label = "N_1"
			case deg == 2:
				label = "N_2"
			case deg == 3:
				if hasCarbonNeighborDeg3(g, i) {
					label = "N_R"
				} else {
					label = "N_3"
				}
			default:
				label = "N_3"
			}
		case 8:
			switch {
			case deg <= 1:
				label = "O_2"
			case deg == 2:
				if hasCarbonNeighborDeg3(g, i) {
					label = "O_R"
				} else {
					label = "O_3"
				}
			default:
				label = "O_3"
			}
		case 9:
			label = "F_"
		case 10:
			label = "Ne4+4"
		case 11:
			label = "Na"
		case 12:
			label = "Mg3+2"
		case 13:
			label = "Al3"
		case 14:
			label = "Si3"
		case 15:
			if deg <= 3 {
				label = "P_3+3"
			} else {
				label = "P_3+5"
			}
		case 16:
			switch {
			case deg <= 2:
				label = "S_3+2"
			case deg <= 4:
				label = "S_3+4"
			default:
				label = "S_3+6"
			}
		case 17:
			label = "Cl"
		case 18:
			label = "Ar4+4"
		case 19:
			label = "K_"
		case 20:
			label = "Ca6+2"
		case 26:
			label = "Fe3+2"
		case 27:
			label = "Co6+3"
		case 28:
			label = "Ni4+2"
		case 29:
			label = "Cu3+1"
		case 30:
			label = "Zn3+2"
		case 35:
			label = "Br"
		case 53:
			label = "I_"
		default:
			candidate := a.Symbol + "_3"
			switch {
			case uffparam.Has(candidate):
				label = candidate
			case uffparam.Has(a.Symbol + "_"):
				label = a.Symbol + "_"
			case uffparam.Has(a.Symbol):
				label = a.Symbol
			default:
				err := gouff.NewError(gouff.UnknownType, "no UFF type for element %s (Z=%d)", a.Symbol, a.Number)
				err.Decorate("typer.Assign")
				return nil, err
			}
		}

		labels[i] = label
	}

	return labels, nil
}
