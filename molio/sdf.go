/*
 * sdf.go, part of gouff.
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

package molio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/gouff"
	"github.com/rmera/gouff/elements"
	"github.com/rmera/gouff/molecule"
	"gonum.org/v1/gonum/spatial/r3"
)

// ParseSDF reads the fixed-column MOL v2000 atom/bond block subset: a
// name line, two header/comment lines, a counts line (atom count in
// columns 0-2, bond count in 3-5), then that many atom lines (x in
// [0,10), y in [10,20), z in [20,30), symbol in [31,34)) and bond lines
// (atoms 1-indexed in [0,3) and [3,6), order in [6,9)). Bond order 4
// (aromatic) passes straight through as molecule.Bond.Order.
func ParseSDF(r io.Reader) (*molecule.Graph, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: empty input")
	}
	name := scanner.Text()

	if !scanner.Scan() {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: missing header line")
	}
	comment := ""
	if scanner.Scan() {
		comment = scanner.Text()
	}

	if !scanner.Scan() {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: missing counts line")
	}
	countsLine := scanner.Text()
	if len(countsLine) < 6 {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: counts line too short")
	}
	numAtoms, err := strconv.Atoi(strings.TrimSpace(countsLine[0:3]))
	if err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: invalid counts line %q", countsLine)
	}
	numBonds, err := strconv.Atoi(strings.TrimSpace(countsLine[3:6]))
	if err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: invalid counts line %q", countsLine)
	}

	g := molecule.New()
	g.Name = name
	g.Comment = comment

	for i := 0; i < numAtoms; i++ {
		if !scanner.Scan() {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: expected %d atoms, got %d", numAtoms, i)
		}
		line := scanner.Text()
		if len(line) < 34 {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: atom line too short %q", line)
		}
		x, errx := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		y, erry := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		z, errz := strconv.ParseFloat(strings.TrimSpace(line[20:30]), 64)
		if errx != nil || erry != nil || errz != nil {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: malformed atom coordinates %q", line)
		}
		symbol := strings.TrimSpace(line[31:34])

		el, err := elements.BySymbol(symbol)
		if err != nil {
			if e, ok := err.(*gouff.Error); ok {
				e.Decorate("molio.ParseSDF")
			}
			return nil, err
		}

		g.AddAtom(molecule.Atom{Number: el.Number, Symbol: symbol, Pos: r3.Vec{X: x, Y: y, Z: z}})
	}

	for i := 0; i < numBonds; i++ {
		if !scanner.Scan() {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: expected %d bonds, got %d", numBonds, i)
		}
		line := scanner.Text()
		if len(line) < 9 {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: bond line too short %q", line)
		}
		a1, err1 := strconv.Atoi(strings.TrimSpace(line[0:3]))
		a2, err2 := strconv.Atoi(strings.TrimSpace(line[3:6]))
		order, err3 := strconv.Atoi(strings.TrimSpace(line[6:9]))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, gouff.NewError(gouff.InvalidInput, "SDF: malformed bond line %q", line)
		}

		g.AddBond(molecule.Bond{I: a1 - 1, J: a2 - 1, Order: order})
	}

	if err := scanner.Err(); err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "SDF: read error: %v", err)
	}

	return g, nil
}
