/*
 * forcefield.go, part of gouff.
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

// Package forcefield evaluates the Universal Force Field potential
// energy and its analytic gradient over a molecule.Graph. A Field is
// stateful: Setup must run once (and again after any connectivity
// change) before Energy/Gradient are meaningful, mirroring the
// prepare-then-evaluate split of gochem's own energy collaborators.
package forcefield

import (
	"math"
	"sort"

	"github.com/rmera/gouff"
	"github.com/rmera/gouff/chemgraph"
	"github.com/rmera/gouff/molecule"
	"github.com/rmera/gouff/typer"
	"github.com/rmera/gouff/uffparam"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg2rad = math.Pi / 180.0

	bondCoeff = 664.12

	degenerateDistance = 1e-10
	degenerateNormal   = 1e-20
	sinFloor           = 1e-10
	kThreshold         = 1e-10
	barrierThreshold   = 1e-10

	sp3Theta0  = 109.47
	sp2ThetaA  = 120.0
	sp2ThetaB  = 111.2
	hybridTol  = 5.0
	linearTol  = 0.01
)

type angle struct{ i, j, k int }
type torsion struct{ i, j, k, l int }
type pair struct{ i, j int }

// Components is the per-term energy breakdown of a Field evaluation.
type Components struct {
	Bond    float64
	Angle   float64
	Torsion float64
	VdW     float64
	Total   float64
}

// Field is a UFF energy/gradient evaluator bound to one molecular
// topology. Its precomputed lists (angles, torsions, nonbonded pairs)
// are valid only while the bound Graph's bonds are unchanged; callers
// must call Setup again after AddBond or PerceiveBonds.
type Field struct {
	types     []string
	params    []uffparam.Params
	angles    []angle
	torsions  []torsion
	pairs     []pair
}

// New returns an unconfigured Field. Call Setup before Energy/Gradient.
func New() *Field {
	return &Field{}
}

// Setup assigns UFF types to every atom of g and builds the angle,
// torsion and nonbonded pair lists used by Energy/Gradient. It fails
// with an UnknownType error if the typer rejects any atom.
func (f *Field) Setup(g *molecule.Graph) error {
	types, err := typer.Assign(g)
	if err != nil {
		e, ok := err.(*gouff.Error)
		if ok {
			e.Decorate("forcefield.Field.Setup")
		}
		return err
	}

	params := make([]uffparam.Params, len(types))
	for i, t := range types {
		p, err := uffparam.Get(t)
		if err != nil {
			e, ok := err.(*gouff.Error)
			if ok {
				e.Decorate("forcefield.Field.Setup")
			}
			return err
		}
		params[i] = p
	}

	adj := g.Adjacency()

	var angles []angle
	for j, neighbors := range adj {
		for a := 0; a < len(neighbors); a++ {
			for b := a + 1; b < len(neighbors); b++ {
				angles = append(angles, angle{i: neighbors[a], j: j, k: neighbors[b]})
			}
		}
	}

	var torsions []torsion
	for _, b := range g.Bonds() {
		j, k := b.I, b.J
		for _, i := range adj[j] {
			if i == k {
				continue
			}
			for _, l := range adj[k] {
				if l == j || l == i {
					continue
				}
				torsions = append(torsions, torsion{i: i, j: j, k: k, l: l})
			}
		}
	}

	excluded := make(map[[2]int]bool)
	for _, b := range g.Bonds() {
		excluded[orderedPair(b.I, b.J)] = true
	}
	for _, a := range angles {
		excluded[orderedPair(a.i, a.k)] = true
	}

	var pairs []pair
	n := g.NumAtoms()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !excluded[[2]int{i, j}] {
				pairs = append(pairs, pair{i: i, j: j})
			}
		}
	}

	f.types = types
	f.params = params
	f.angles = angles
	f.torsions = torsions
	f.pairs = pairs
	return nil
}

func orderedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// AtomTypes returns the label sequence assigned by the last Setup.
func (f *Field) AtomTypes() []string { return f.types }

// PairCount returns the number of nonbonded pairs built by Setup.
func (f *Field) PairCount() int { return len(f.pairs) }

// AngleCount returns the number of angle triples built by Setup.
func (f *Field) AngleCount() int { return len(f.angles) }

// TorsionCount returns the number of dihedral quadruples built by Setup.
func (f *Field) TorsionCount() int { return len(f.torsions) }

// Fragments returns the connected components of g's bonded topology,
// each as a sorted slice of atom indices, via chemgraph's gonum graph
// adapter. A multi-fragment result is expected for a system built from
// several non-bonded molecules; a fragment of size 1 inside a
// structure meant to be a single molecule usually flags a bond
// perception failure rather than a real monoatomic species.
func (f *Field) Fragments(g *molecule.Graph) [][]int {
	view := chemgraph.NewView(g)
	components := topo.ConnectedComponents(view)
	out := make([][]int, len(components))
	for i, comp := range components {
		idx := make([]int, len(comp))
		for j, n := range comp {
			idx[j] = int(n.ID())
		}
		sort.Ints(idx)
		out[i] = idx
	}
	return out
}

// bondLength returns the UFF natural bond length r0 for bond b.
func (f *Field) bondLength(b molecule.Bond) float64 {
	pi := f.params[b.I]
	pj := f.params[b.J]
	order := b.Order
	if order < 1 {
		order = 1
	}
	rBO := -0.1332 * (pi.R1 + pj.R1) * math.Log(float64(order))
	chiDiff := math.Sqrt(pi.Xi) - math.Sqrt(pj.Xi)
	rEN := pi.R1 * pj.R1 * chiDiff * chiDiff / (pi.Xi*pi.R1 + pj.Xi*pj.R1)
	return pi.R1 + pj.R1 + rBO - rEN
}

func (f *Field) bondForceConstant(b molecule.Bond, r0 float64) float64 {
	pi := f.params[b.I]
	pj := f.params[b.J]
	return bondCoeff * pi.Z1 * pj.Z1 / (r0 * r0 * r0)
}

// bondStretchEnergy returns the sum of ½k(r-r0)² over every bond in g.
func (f *Field) bondStretchEnergy(g *molecule.Graph) float64 {
	e := 0.0
	for bi := 0; bi < g.NumBonds(); bi++ {
		b := g.Bond(bi)
		r := r3.Norm(r3.Sub(g.Atom(b.I).Pos, g.Atom(b.J).Pos))
		r0 := f.bondLength(b)
		k := f.bondForceConstant(b, r0)
		dr := r - r0
		e += 0.5 * k * dr * dr
	}
	return e
}

func (f *Field) bondStretchGradient(g *molecule.Graph, grad []r3.Vec) {
	for bi := 0; bi < g.NumBonds(); bi++ {
		b := g.Bond(bi)
		i, j := b.I, b.J
		rij := r3.Sub(g.Atom(i).Pos, g.Atom(j).Pos)
		r := r3.Norm(rij)
		if r < degenerateDistance {
			continue
		}
		r0 := f.bondLength(b)
		k := f.bondForceConstant(b, r0)
		scale := k * (r - r0) / r
		dE := r3.Scale(scale, rij)
		grad[i] = r3.Add(grad[i], dE)
		grad[j] = r3.Sub(grad[j], dE)
	}
}

// angleBendEnergy returns the sum of the truncated-Fourier bend energy
// over every angle triple built by Setup.
func (f *Field) angleBendEnergy(g *molecule.Graph) float64 {
	e := 0.0
	for _, a := range f.angles {
		i, j, k := a.i, a.j, a.k
		rji := r3.Sub(g.Atom(i).Pos, g.Atom(j).Pos)
		rjk := r3.Sub(g.Atom(k).Pos, g.Atom(j).Pos)
		dji := r3.Norm(rji)
		djk := r3.Norm(rjk)
		if dji < degenerateDistance || djk < degenerateDistance {
			continue
		}

		cosTheta := clamp(r3.Dot(rji, rjk) / (dji * djk))
		theta := math.Acos(cosTheta)

		pi, pj, pk := f.params[i], f.params[j], f.params[k]
		theta0 := pj.Theta0 * deg2rad

		rijSum := pi.R1 + pj.R1
		rjkSum := pj.R1 + pk.R1
		cosTheta0 := math.Cos(theta0)
		sinTheta0 := math.Sin(theta0)
		rikSq := rijSum*rijSum + rjkSum*rjkSum - 2.0*rijSum*rjkSum*cosTheta0
		rik := math.Sqrt(math.Max(rikSq, 0.01))
		rik5 := rik * rik * rik * rik * rik

		K := bondCoeff * pi.Z1 * pk.Z1 / rik5
		K *= rijSum * rjkSum
		K *= 3.0*rijSum*rjkSum*(1.0-cosTheta0*cosTheta0) - rikSq*cosTheta0

		if math.Abs(K) < kThreshold {
			continue
		}

		if math.Abs(theta0-math.Pi) < linearTol {
			e += K * (1.0 + cosTheta)
			continue
		}

		C2 := 1.0 / (4.0 * sinTheta0 * sinTheta0)
		C1 := -4.0 * C2 * cosTheta0
		C0 := C2 * (2.0*cosTheta0*cosTheta0 + 1.0)
		e += K * (C0 + C1*cosTheta + C2*math.Cos(2.0*theta))
	}
	return e
}

func (f *Field) angleBendGradient(g *molecule.Graph, grad []r3.Vec) {
	for _, a := range f.angles {
		i, j, k := a.i, a.j, a.k
		rji := r3.Sub(g.Atom(i).Pos, g.Atom(j).Pos)
		rjk := r3.Sub(g.Atom(k).Pos, g.Atom(j).Pos)
		dji := r3.Norm(rji)
		djk := r3.Norm(rjk)
		if dji < degenerateDistance || djk < degenerateDistance {
			continue
		}

		cosTheta := clamp(r3.Dot(rji, rjk) / (dji * djk))
		theta := math.Acos(cosTheta)
		sinTheta := math.Sin(theta)
		if math.Abs(sinTheta) < sinFloor {
			sinTheta = sinFloor
		}

		pi, pj, pk := f.params[i], f.params[j], f.params[k]
		theta0 := pj.Theta0 * deg2rad
		cosTheta0 := math.Cos(theta0)
		sinTheta0 := math.Sin(theta0)

		rijSum := pi.R1 + pj.R1
		rjkSum := pj.R1 + pk.R1
		rikSq := rijSum*rijSum + rjkSum*rjkSum - 2.0*rijSum*rjkSum*cosTheta0
		rik := math.Sqrt(math.Max(rikSq, 0.01))
		rik5 := rik * rik * rik * rik * rik

		K := bondCoeff * pi.Z1 * pk.Z1 / rik5
		K *= rijSum * rjkSum
		K *= 3.0*rijSum*rjkSum*(1.0-cosTheta0*cosTheta0) - rikSq*cosTheta0

		if math.Abs(K) < kThreshold {
			continue
		}

		var dEdTheta float64
		if math.Abs(theta0-math.Pi) < linearTol {
			dEdTheta = -K * sinTheta
		} else {
			C2 := 1.0 / (4.0 * sinTheta0 * sinTheta0)
			C1 := -4.0 * C2 * cosTheta0
			dEdTheta = K * (-C1*sinTheta - 2.0*C2*math.Sin(2.0*theta))
		}

		uji := r3.Scale(1.0/dji, rji)
		ujk := r3.Scale(1.0/djk, rjk)

		dThetaDri := r3.Scale(-1.0/(dji*sinTheta), r3.Sub(ujk, r3.Scale(cosTheta, uji)))
		dThetaDrk := r3.Scale(-1.0/(djk*sinTheta), r3.Sub(uji, r3.Scale(cosTheta, ujk)))
		dThetaDrj := r3.Scale(-1.0, r3.Add(dThetaDri, dThetaDrk))

		grad[i] = r3.Add(grad[i], r3.Scale(dEdTheta, dThetaDri))
		grad[j] = r3.Add(grad[j], r3.Scale(dEdTheta, dThetaDrj))
		grad[k] = r3.Add(grad[k], r3.Scale(dEdTheta, dThetaDrk))
	}
}

// dihedral returns the signed dihedral angle (radians) for p1-p2-p3-p4,
// or (0, false) if either bond-plane normal is degenerate.
func dihedral(p1, p2, p3, p4 r3.Vec) (phi float64, ok bool) {
	b1 := r3.Sub(p2, p1)
	b2 := r3.Sub(p3, p2)
	b3 := r3.Sub(p4, p3)

	n1 := r3.Cross(b1, b2)
	n2 := r3.Cross(b2, b3)
	n1Norm := r3.Norm(n1)
	n2Norm := r3.Norm(n2)
	if n1Norm < degenerateDistance || n2Norm < degenerateDistance {
		return 0, false
	}
	n1 = r3.Scale(1.0/n1Norm, n1)
	n2 = r3.Scale(1.0/n2Norm, n2)

	cosPhi := clamp(r3.Dot(n1, n2))
	phi = math.Acos(cosPhi)
	if r3.Dot(n1, b3) < 0.0 {
		phi = -phi
	}
	return phi, true
}

func isSP3(theta0 float64) bool { return math.Abs(theta0-sp3Theta0) < hybridTol }
func isSP2(theta0 float64) bool {
	return math.Abs(theta0-sp2ThetaA) < hybridTol || math.Abs(theta0-sp2ThetaB) < hybridTol
}

// torsionParams returns the periodicity n, reference phase phi0 and
// barrier V for the bond between types pj and pk.
func torsionParams(pj, pk uffparam.Params) (n int, phi0, v float64) {
	jSP3, kSP3 := isSP3(pj.Theta0), isSP3(pk.Theta0)
	jSP2, kSP2 := isSP2(pj.Theta0), isSP2(pk.Theta0)

	switch {
	case jSP3 && kSP3:
		return 3, math.Pi, math.Sqrt(math.Abs(pj.Vi * pk.Vi))
	case jSP2 && kSP2:
		return 2, math.Pi, 5.0 * math.Sqrt(math.Abs(pj.Uj*pk.Uj))
	case (jSP3 && kSP2) || (jSP2 && kSP3):
		return 6, 0.0, 1.0
	default:
		return 3, math.Pi, 0.5
	}
}

func (f *Field) torsionEnergy(g *molecule.Graph) float64 {
	e := 0.0
	for _, t := range f.torsions {
		phi, ok := dihedral(g.Atom(t.i).Pos, g.Atom(t.j).Pos, g.Atom(t.k).Pos, g.Atom(t.l).Pos)
		if !ok {
			continue
		}
		n, phi0, v := torsionParams(f.params[t.j], f.params[t.k])
		if v < barrierThreshold {
			continue
		}
		e += 0.5 * v * (1.0 - math.Cos(float64(n)*phi0)*math.Cos(float64(n)*phi))
	}
	return e
}

func (f *Field) torsionGradient(g *molecule.Graph, grad []r3.Vec) {
	for _, t := range f.torsions {
		p1, p2, p3, p4 := g.Atom(t.i).Pos, g.Atom(t.j).Pos, g.Atom(t.k).Pos, g.Atom(t.l).Pos

		b1 := r3.Sub(p2, p1)
		b2 := r3.Sub(p3, p2)
		b3 := r3.Sub(p4, p3)

		n1 := r3.Cross(b1, b2)
		n2 := r3.Cross(b2, b3)
		n1Sq := r3.Dot(n1, n1)
		n2Sq := r3.Dot(n2, n2)
		if n1Sq < degenerateNormal || n2Sq < degenerateNormal {
			continue
		}

		b2Norm := r3.Norm(b2)
		if b2Norm < degenerateDistance {
			continue
		}

		phi, ok := dihedral(p1, p2, p3, p4)
		if !ok {
			continue
		}

		n, phi0, v := torsionParams(f.params[t.j], f.params[t.k])
		if v < barrierThreshold {
			continue
		}

		dEdPhi := 0.5 * v * float64(n) * math.Cos(float64(n)*phi0) * math.Sin(float64(n)*phi)

		dPhiDp1 := r3.Scale(-b2Norm/n1Sq, n1)
		dPhiDp4 := r3.Scale(b2Norm/n2Sq, n2)

		b2SqNorm := b2Norm * b2Norm
		dotB1B2 := r3.Dot(b1, b2) / b2SqNorm
		dotB3B2 := r3.Dot(b3, b2) / b2SqNorm

		dPhiDp2 := r3.Add(r3.Scale(-dotB1B2-1.0, dPhiDp1), r3.Scale(dotB3B2, dPhiDp4))
		dPhiDp3 := r3.Add(r3.Scale(-dotB3B2-1.0, dPhiDp4), r3.Scale(dotB1B2, dPhiDp1))

		grad[t.i] = r3.Add(grad[t.i], r3.Scale(dEdPhi, dPhiDp1))
		grad[t.j] = r3.Add(grad[t.j], r3.Scale(dEdPhi, dPhiDp2))
		grad[t.k] = r3.Add(grad[t.k], r3.Scale(dEdPhi, dPhiDp3))
		grad[t.l] = r3.Add(grad[t.l], r3.Scale(dEdPhi, dPhiDp4))
	}
}

func (f *Field) vdwEnergy(g *molecule.Graph) float64 {
	e := 0.0
	for _, p := range f.pairs {
		pi, pj := f.params[p.i], f.params[p.j]
		xij := math.Sqrt(pi.X1 * pj.X1)
		dij := math.Sqrt(pi.D1 * pj.D1)

		r := r3.Norm(r3.Sub(g.Atom(p.i).Pos, g.Atom(p.j).Pos))
		if r < degenerateDistance {
			continue
		}

		x := xij / r
		x6 := x * x * x * x * x * x
		x12 := x6 * x6
		e += dij * (x12 - 2.0*x6)
	}
	return e
}

func (f *Field) vdwGradient(g *molecule.Graph, grad []r3.Vec) {
	for _, p := range f.pairs {
		pi, pj := f.params[p.i], f.params[p.j]
		xij := math.Sqrt(pi.X1 * pj.X1)
		dij := math.Sqrt(pi.D1 * pj.D1)

		rij := r3.Sub(g.Atom(p.i).Pos, g.Atom(p.j).Pos)
		r := r3.Norm(rij)
		if r < degenerateDistance {
			continue
		}

		x := xij / r
		x6 := x * x * x * x * x * x
		x12 := x6 * x6

		dEdr := dij * 12.0 * (x6 - x12) / r
		dE := r3.Scale(dEdr/r, rij)
		grad[p.i] = r3.Add(grad[p.i], dE)
		grad[p.j] = r3.Sub(grad[p.j], dE)
	}
}

func clamp(x float64) float64 {
	if x > 1.0 {
		return 1.0
	}
	if x < -1.0 {
		return -1.0
	}
	return x
}

// Energy returns the total UFF potential energy of g, in kcal/mol.
// Setup must have been called on the current topology.
func (f *Field) Energy(g *molecule.Graph) float64 {
	return f.bondStretchEnergy(g) + f.angleBendEnergy(g) + f.torsionEnergy(g) + f.vdwEnergy(g)
}

// EnergyComponents returns the per-term breakdown; Total sums the four
// terms to bit-for-bit precision.
func (f *Field) EnergyComponents(g *molecule.Graph) Components {
	c := Components{
		Bond:    f.bondStretchEnergy(g),
		Angle:   f.angleBendEnergy(g),
		Torsion: f.torsionEnergy(g),
		VdW:     f.vdwEnergy(g),
	}
	c.Total = c.Bond + c.Angle + c.Torsion + c.VdW
	return c
}

// Gradient returns the length-3N analytic gradient of Energy, flattened
// atom-major xyz-minor to match molecule.Graph.Positions.
func (f *Field) Gradient(g *molecule.Graph) []float64 {
	n := g.NumAtoms()
	grad := make([]r3.Vec, n)
	f.bondStretchGradient(g, grad)
	f.angleBendGradient(g, grad)
	f.torsionGradient(g, grad)
	f.vdwGradient(g, grad)

	out := make([]float64, 3*n)
	for i, v := range grad {
		out[3*i] = v.X
		out[3*i+1] = v.Y
		out[3*i+2] = v.Z
	}
	return out
}
