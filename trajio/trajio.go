/*
 * trajio.go, part of gouff.
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

// Package trajio persists an optimize.Progress trajectory as a
// compressed binary stream, the same many-frame-compaction idea
// gochem's dcd and xtc readers apply to MD trajectories, just with a
// modern zstd codec and a record layout gouff controls end to end
// instead of a third-party simulation package's wire format.
package trajio

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gouff"
	"github.com/rmera/gouff/optimize"
)

// WriteCompressed encodes traj as a sequence of length-prefixed binary
// records through a zstd encoder writing to w.
func WriteCompressed(w io.Writer, traj []optimize.Progress) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return gouff.NewError(gouff.InvalidInput, "trajio: cannot open zstd encoder: %v", err)
	}
	defer enc.Close()

	if err := binary.Write(enc, binary.LittleEndian, int64(len(traj))); err != nil {
		return err
	}

	for _, p := range traj {
		if err := writeRecord(enc, p); err != nil {
			return err
		}
	}
	return enc.Close()
}

func writeRecord(w io.Writer, p optimize.Progress) error {
	fields := []interface{}{
		int64(p.Iteration),
		p.Energy,
		p.GradRMS,
		int64(len(p.Positions)),
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	if len(p.Positions) > 0 {
		if err := binary.Write(w, binary.LittleEndian, p.Positions); err != nil {
			return err
		}
	}
	return nil
}

// ReadCompressed decodes a trajectory written by WriteCompressed.
func ReadCompressed(r io.Reader) ([]optimize.Progress, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "trajio: cannot open zstd decoder: %v", err)
	}
	defer dec.Close()

	var count int64
	if err := binary.Read(dec, binary.LittleEndian, &count); err != nil {
		return nil, gouff.NewError(gouff.InvalidInput, "trajio: cannot read record count: %v", err)
	}

	traj := make([]optimize.Progress, count)
	for i := range traj {
		p, err := readRecord(dec)
		if err != nil {
			return nil, gouff.NewError(gouff.InvalidInput, "trajio: record %d: %v", i, err)
		}
		traj[i] = p
	}
	return traj, nil
}

func readRecord(r io.Reader) (optimize.Progress, error) {
	var iteration, posLen int64
	var energy, gradRMS float64

	if err := binary.Read(r, binary.LittleEndian, &iteration); err != nil {
		return optimize.Progress{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &energy); err != nil {
		return optimize.Progress{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &gradRMS); err != nil {
		return optimize.Progress{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &posLen); err != nil {
		return optimize.Progress{}, err
	}

	var positions []float64
	if posLen > 0 {
		positions = make([]float64, posLen)
		if err := binary.Read(r, binary.LittleEndian, positions); err != nil {
			return optimize.Progress{}, err
		}
	}

	return optimize.Progress{
		Iteration: int(iteration),
		Energy:    energy,
		GradRMS:   gradRMS,
		Positions: positions,
	}, nil
}
