/*
 * elements.go, part of gouff.
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

// Package elements is the periodic-table collaborator: a small,
// read-only table of atomic number, symbol, mass, and the covalent
// and van der Waals radii the rest of gouff needs. It plays the same
// role gochem's symbolMass/symbolCovrad/symbolVdW maps in
// atomicdata.go play for the top-level chem package, except keyed by
// both symbol and atomic number. The symbol index is built once, on the
// first BySymbol call, under a sync.Once.
package elements

import (
	"strings"
	"sync"

	"github.com/rmera/gouff"
)

// Element is one periodic-table entry.
type Element struct {
	Number         int
	Symbol         string
	Name           string
	Mass           float64 // amu
	CovalentRadius float64 // Angstroms
	VdWRadius      float64 // Angstroms
}

// MaxAtomicNumber is the highest atomic number this table carries.
const MaxAtomicNumber = 54

// table holds hydrogen (Z=1) through xenon (Z=54), the same span
// tabulated in the reference C++ engine's element_data.cpp: it covers
// every element the UFF typer in this repository can label and every
// seed scenario in the test suite.
var table = [MaxAtomicNumber + 1]Element{
	{0, "X", "Dummy", 0, 0, 0},
	{1, "H", "Hydrogen", 1.008, 0.31, 1.20},
	{2, "He", "Helium", 4.003, 0.28, 1.40},
	{3, "Li", "Lithium", 6.941, 1.28, 1.82},
	{4, "Be", "Beryllium", 9.012, 0.96, 1.53},
	{5, "B", "Boron", 10.811, 0.84, 1.92},
	{6, "C", "Carbon", 12.011, 0.76, 1.70},
	{7, "N", "Nitrogen", 14.007, 0.71, 1.55},
	{8, "O", "Oxygen", 15.999, 0.66, 1.52},
	{9, "F", "Fluorine", 18.998, 0.57, 1.47},
	{10, "Ne", "Neon", 20.180, 0.58, 1.54},
	{11, "Na", "Sodium", 22.990, 1.66, 2.27},
	{12, "Mg", "Magnesium", 24.305, 1.41, 1.73},
	{13, "Al", "Aluminum", 26.982, 1.21, 1.84},
	{14, "Si", "Silicon", 28.086, 1.11, 2.10},
	{15, "P", "Phosphorus", 30.974, 1.07, 1.80},
	{16, "S", "Sulfur", 32.065, 1.05, 1.80},
	{17, "Cl", "Chlorine", 35.453, 1.02, 1.75},
	{18, "Ar", "Argon", 39.948, 1.06, 1.88},
	{19, "K", "Potassium", 39.098, 2.03, 2.75},
	{20, "Ca", "Calcium", 40.078, 1.76, 2.31},
	{21, "Sc", "Scandium", 44.956, 1.70, 2.11},
	{22, "Ti", "Titanium", 47.867, 1.60, 1.87},
	{23, "V", "Vanadium", 50.942, 1.53, 1.79},
	{24, "Cr", "Chromium", 51.996, 1.39, 1.89},
	{25, "Mn", "Manganese", 54.938, 1.39, 1.97},
	{26, "Fe", "Iron", 55.845, 1.32, 1.94},
	{27, "Co", "Cobalt", 58.933, 1.26, 1.92},
	{28, "Ni", "Nickel", 58.693, 1.24, 1.63},
	{29, "Cu", "Copper", 63.546, 1.32, 1.40},
	{30, "Zn", "Zinc", 65.380, 1.22, 1.39},
	{31, "Ga", "Gallium", 69.723, 1.22, 1.87},
	{32, "Ge", "Germanium", 72.640, 1.20, 2.11},
	{33, "As", "Arsenic", 74.922, 1.19, 1.85},
	{34, "Se", "Selenium", 78.960, 1.20, 1.90},
	{35, "Br", "Bromine", 79.904, 1.20, 1.85},
	{36, "Kr", "Krypton", 83.798, 1.16, 2.02},
	{37, "Rb", "Rubidium", 85.468, 2.20, 3.03},
	{38, "Sr", "Strontium", 87.620, 1.95, 2.49},
	{39, "Y", "Yttrium", 88.906, 1.90, 2.19},
	{40, "Zr", "Zirconium", 91.224, 1.75, 1.86},
	{41, "Nb", "Niobium", 92.906, 1.64, 2.07},
	{42, "Mo", "Molybdenum", 95.960, 1.54, 2.09},
	{43, "Tc", "Technetium", 98.000, 1.47, 2.09},
	{44, "Ru", "Ruthenium", 101.070, 1.46, 2.07},
	{45, "Rh", "Rhodium", 102.906, 1.42, 1.95},
	{46, "Pd", "Palladium", 106.420, 1.39, 2.02},
	{47, "Ag", "Silver", 107.868, 1.45, 1.72},
	{48, "Cd", "Cadmium", 112.411, 1.44, 1.58},
	{49, "In", "Indium", 114.818, 1.42, 1.93},
	{50, "Sn", "Tin", 118.710, 1.39, 2.17},
	{51, "Sb", "Antimony", 121.760, 1.39, 2.06},
	{52, "Te", "Tellurium", 127.600, 1.38, 2.06},
	{53, "I", "Iodine", 126.905, 1.39, 1.98},
	{54, "Xe", "Xenon", 131.293, 1.40, 2.16},
}

var (
	bySymbolOnce sync.Once
	bySymbol     map[string]int
)

func buildSymbolIndex() {
	bySymbol = make(map[string]int, len(table))
	for i, e := range table {
		bySymbol[e.Symbol] = i
	}
}

// ByNumber looks up an element by atomic number. The table is never
// mutated and the symbol index is built under a sync.Once, so
// concurrent callers never need external synchronization.
func ByNumber(z int) (Element, error) {
	if z < 1 || z > MaxAtomicNumber {
		return Element{}, gouff.NewError(gouff.UnknownElement, "atomic number %d out of range [1, %d]", z, MaxAtomicNumber)
	}
	return table[z], nil
}

// BySymbol looks up an element by its (case-sensitive) chemical
// symbol, e.g. "H", "Cl", "Fe".
func BySymbol(s string) (Element, error) {
	bySymbolOnce.Do(buildSymbolIndex)
	s = strings.TrimSpace(s)
	i, ok := bySymbol[s]
	if !ok {
		return Element{}, gouff.NewError(gouff.UnknownElement, "unknown element symbol %q", s)
	}
	return table[i], nil
}
