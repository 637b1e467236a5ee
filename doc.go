/*
 * doc.go, part of gouff.
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

/*Package gouff computes Universal Force Field energies and analytic
gradients for a molecular structure, and relaxes it towards a nearby
stationary point.

The heavy lifting lives in the subpackages:

	molecule    atom/bond graph, distance-based bond perception
	chemgraph   gonum/graph adapter over a molecule.Graph, used by forcefield
	elements    periodic-table lookups (covalent/vdW radii, mass)
	uffparam    the UFF per-type parameter dictionary
	typer       UFF atom-type assignment
	forcefield  bond/angle/torsion/van der Waals energy and gradient,
	            plus connected-component diagnostics via chemgraph
	optimize    steepest-descent and L-BFGS geometry relaxation
	molio       XYZ and SDF/MOL readers, XYZ writer
	trajio      compressed on-disk trajectory encoding
	chemplot    energy/gradient convergence plots
	config      TOML settings loading

This package itself only carries the shared Error type used across
the subpackages above.*/
package gouff
