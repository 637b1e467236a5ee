/*
 * xyz.go, part of gouff.
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

// Package molio reads and writes the plain-text molecule formats gouff
// accepts as a library: XYZ and the SDF/MOL v2000 atom/bond-block
// subset. Neither is a CLI front end; both are plumbing for an
// embedder that already has a file (or any io.Reader) in hand.
package molio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/gouff"
	"github.com/rmera/gouff/elements"
	"github.com/rmera/gouff/molecule"
	"gonum.org/v1/gonum/spatial/r3"
)

// ParseXYZ reads a minimal XYZ file: an atom count, a free-form comment
// line, then that many "symbol x y z" lines. It calls
// PerceiveBondsDefault on the resulting graph before returning it.
func ParseXYZ(r io.Reader) (*molecule.Graph, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, gouff.NewError(gouff.InvalidInput, "XYZ: empty input")
	}
	countLine := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "XYZ: invalid atom count %q", countLine)
	}
	if n < 0 {
		return nil, gouff.NewError(gouff.InvalidInput, "XYZ: negative atom count %d", n)
	}

	if !scanner.Scan() {
		return nil, gouff.NewError(gouff.InvalidInput, "XYZ: missing comment line")
	}
	comment := scanner.Text()

	g := molecule.New()
	g.Comment = comment

	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, gouff.NewError(gouff.InvalidInput, "XYZ: expected %d atoms, got %d", n, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, gouff.NewError(gouff.InvalidInput, "XYZ: malformed atom line %q", scanner.Text())
		}
		symbol := fields[0]
		x, errx := strconv.ParseFloat(fields[1], 64)
		y, erry := strconv.ParseFloat(fields[2], 64)
		z, errz := strconv.ParseFloat(fields[3], 64)
		if errx != nil || erry != nil || errz != nil {
			return nil, gouff.NewError(gouff.InvalidInput, "XYZ: malformed coordinate triple %q", scanner.Text())
		}

		el, err := elements.BySymbol(symbol)
		if err != nil {
			if e, ok := err.(*gouff.Error); ok {
				e.Decorate("molio.ParseXYZ")
			}
			return nil, err
		}

		g.AddAtom(molecule.Atom{Number: el.Number, Symbol: symbol, Pos: r3.Vec{X: x, Y: y, Z: z}})
	}

	if err := scanner.Err(); err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "XYZ: read error: %v", err)
	}

	if err := g.PerceiveBondsDefault(); err != nil {
		return nil, err
	}
	return g, nil
}

// WriteXYZ writes g in the same "count\ncomment\nsymbol x y z..." shape
// ParseXYZ reads, using Go's default float formatting.
func WriteXYZ(w io.Writer, g *molecule.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%s\n", g.NumAtoms(), g.Comment); err != nil {
		return err
	}
	for i := 0; i < g.NumAtoms(); i++ {
		a := g.Atom(i)
		if _, err := fmt.Fprintf(bw, "%s %v %v %v\n", a.Symbol, a.Pos.X, a.Pos.Y, a.Pos.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}
