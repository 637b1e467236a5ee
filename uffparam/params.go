/*
 * params.go, part of gouff.
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

// Package uffparam is the UFF parameter table collaborator: a static,
// read-only dictionary from a UFF atom-type label (e.g. "C_3", "H_")
// to the per-type constants the force field evaluator needs. It plays
// the role gochem's symbolMass/symbolCovrad maps in atomicdata.go play
// for elements, but keyed by UFF label rather than element symbol.
package uffparam

import (
	"sort"

	"github.com/rmera/gouff"
)

// Params is one UFF type's parameter record, following Rappé et al.
// (1992). The force field evaluator only reads R1, Theta0, X1, D1, Z1,
// Vi, Uj and Xi; Zeta, Hard and Radius are carried for completeness
// (Hard and Radius parameterize charge equilibration, which is out of
// scope — gouff does no electrostatics).
type Params struct {
	Label  string
	R1     float64 // natural bond radius, Angstroms
	Theta0 float64 // natural bond angle, degrees
	X1     float64 // nonbond distance, Angstroms
	D1     float64 // nonbond well depth, kcal/mol
	Zeta   float64 // nonbond scale
	Z1     float64 // effective charge
	Vi     float64 // sp3 torsion barrier, kcal/mol
	Uj     float64 // sp2 torsion barrier, kcal/mol
	Xi     float64 // GMP electronegativity
	Hard   float64 // hardness
	Radius float64 // charge radius
}

var table = map[string]Params{
	"H_":     {"H_", 0.354, 180.00, 2.886, 0.044, 12.000, 0.712, 0.000, 0.000, 4.528, 6.9452, 0.371},
	"He4+4":  {"He4+4", 0.849, 90.00, 2.362, 0.056, 15.240, 0.098, 0.000, 0.000, 9.660, 14.9200, 0.300},
	"Li":     {"Li", 1.336, 180.00, 2.451, 0.025, 12.000, 0.050, 0.000, 2.000, 3.006, 2.3860, 1.557},
	"Be3+2":  {"Be3+2", 1.074, 109.47, 2.745, 0.085, 12.000, 1.565, 0.000, 2.000, 4.877, 4.4430, 1.240},
	"B_2":    {"B_2", 0.828, 120.00, 4.083, 0.180, 12.052, 1.755, 0.000, 2.000, 5.110, 4.7500, 0.822},
	"B_3":    {"B_3", 0.837, 109.47, 4.083, 0.180, 12.052, 1.755, 0.000, 2.000, 5.110, 4.7500, 0.822},
	"C_1":    {"C_1", 0.706, 180.00, 3.851, 0.105, 12.730, 1.912, 0.000, 2.000, 5.343, 5.3430, 0.759},
	"C_2":    {"C_2", 0.732, 120.00, 3.851, 0.105, 12.730, 1.912, 0.000, 2.000, 5.343, 5.3430, 0.759},
	"C_R":    {"C_R", 0.729, 120.00, 3.851, 0.105, 12.730, 1.912, 0.000, 2.000, 5.343, 5.3430, 0.759},
	"C_3":    {"C_3", 0.757, 109.47, 3.851, 0.105, 12.730, 1.912, 2.119, 2.000, 5.343, 5.3430, 0.759},
	"N_1":    {"N_1", 0.656, 180.00, 3.660, 0.069, 13.407, 2.544, 0.000, 2.000, 6.899, 5.8000, 0.715},
	"N_2":    {"N_2", 0.685, 111.20, 3.660, 0.069, 13.407, 2.544, 0.000, 2.000, 6.899, 5.8000, 0.715},
	"N_R":    {"N_R", 0.699, 120.00, 3.660, 0.069, 13.407, 2.544, 0.000, 2.000, 6.899, 5.8000, 0.715},
	"N_3":    {"N_3", 0.700, 106.70, 3.660, 0.069, 13.407, 2.544, 0.000, 2.000, 6.899, 5.8000, 0.715},
	"O_1":    {"O_1", 0.639, 180.00, 3.500, 0.060, 14.085, 2.300, 0.000, 2.000, 8.741, 6.6820, 0.669},
	"O_2":    {"O_2", 0.634, 120.00, 3.500, 0.060, 14.085, 2.300, 0.000, 2.000, 8.741, 6.6820, 0.669},
	"O_R":    {"O_R", 0.680, 110.00, 3.500, 0.060, 14.085, 2.300, 0.000, 2.000, 8.741, 6.6820, 0.669},
	"O_3":    {"O_3", 0.658, 104.51, 3.500, 0.060, 14.085, 2.300, 0.000, 2.000, 8.741, 6.6820, 0.669},
	"F_":     {"F_", 0.668, 180.00, 3.364, 0.050, 14.762, 1.735, 0.000, 0.000, 10.874, 7.4740, 0.706},
	"Ne4+4":  {"Ne4+4", 0.920, 90.00, 3.243, 0.042, 15.440, 0.194, 0.000, 0.000, 11.040, 10.5500, 0.000},
	"Na":     {"Na", 1.539, 180.00, 2.983, 0.030, 12.000, 0.000, 0.000, 2.000, 2.843, 2.2960, 2.085},
	"Mg3+2":  {"Mg3+2", 1.421, 109.47, 3.021, 0.111, 12.000, 1.345, 0.000, 2.000, 3.951, 3.6930, 1.500},
	"Al3":    {"Al3", 1.244, 109.47, 4.499, 0.505, 11.278, 1.792, 0.000, 2.000, 4.060, 3.5900, 1.201},
	"Si3":    {"Si3", 1.117, 109.47, 4.295, 0.402, 12.175, 2.323, 1.225, 2.000, 4.168, 3.4870, 1.176},
	"P_3+3":  {"P_3+3", 1.101, 93.80, 4.147, 0.305, 13.072, 2.863, 2.400, 2.000, 5.463, 4.0000, 1.102},
	"P_3+5":  {"P_3+5", 1.056, 109.47, 4.147, 0.305, 13.072, 2.863, 2.400, 2.000, 5.463, 4.0000, 1.102},
	"S_3+2":  {"S_3+2", 1.064, 92.10, 4.035, 0.274, 13.969, 2.703, 0.484, 2.000, 6.928, 4.4860, 1.047},
	"S_3+4":  {"S_3+4", 1.049, 103.20, 4.035, 0.274, 13.969, 2.703, 0.484, 2.000, 6.928, 4.4860, 1.047},
	"S_3+6":  {"S_3+6", 1.027, 109.47, 4.035, 0.274, 13.969, 2.703, 0.484, 2.000, 6.928, 4.4860, 1.047},
	"Cl":     {"Cl", 1.044, 180.00, 3.947, 0.227, 14.866, 2.348, 0.000, 0.000, 8.564, 4.9460, 0.994},
	"Ar4+4":  {"Ar4+4", 1.032, 90.00, 3.868, 0.185, 15.763, 0.300, 0.000, 0.000, 9.465, 6.3550, 0.000},
	"K_":     {"K_", 1.953, 180.00, 3.812, 0.035, 12.000, 0.000, 0.000, 2.000, 2.421, 1.9200, 2.586},
	"Ca6+2":  {"Ca6+2", 1.761, 90.00, 3.399, 0.238, 12.000, 1.100, 0.000, 2.000, 3.231, 2.8810, 2.000},
	"Fe3+2":  {"Fe3+2", 1.412, 109.47, 4.540, 0.055, 12.000, 1.100, 0.000, 2.000, 4.500, 3.5000, 1.500},
	"Co6+3":  {"Co6+3", 1.241, 90.00, 4.420, 0.014, 12.000, 1.100, 0.000, 2.000, 5.000, 3.5000, 1.500},
	"Ni4+2":  {"Ni4+2", 1.164, 90.00, 4.170, 0.015, 12.000, 1.100, 0.000, 2.000, 5.200, 3.5000, 1.500},
	"Cu3+1":  {"Cu3+1", 1.302, 109.47, 3.495, 0.005, 12.000, 1.100, 0.000, 2.000, 4.200, 3.5000, 1.500},
	"Zn3+2":  {"Zn3+2", 1.193, 109.47, 2.763, 0.124, 12.000, 1.308, 0.000, 2.000, 5.106, 4.2850, 1.250},
	"Br":     {"Br", 1.192, 180.00, 4.189, 0.251, 15.700, 2.519, 0.000, 0.000, 7.790, 4.2350, 1.141},
	"I_":     {"I_", 1.382, 180.00, 4.500, 0.339, 14.574, 2.650, 0.000, 0.000, 6.822, 3.7620, 1.333},
}

// Get returns the parameter record for label, or an UnknownType error
// if it is not present.
func Get(label string) (Params, error) {
	p, ok := table[label]
	if !ok {
		return Params{}, gouff.NewError(gouff.UnknownType, "no UFF parameters for type %q", label)
	}
	return p, nil
}

// Has reports whether label is present in the table.
func Has(label string) bool {
	_, ok := table[label]
	return ok
}

// All returns every registered label, sorted, mainly for tests.
func All() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
