/*
 * config.go, part of gouff.
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

// Package config loads an optimization run descriptor from TOML: which
// file to read, which method and tolerances to relax it with, and
// where to write the result. It is ambient plumbing for an embedder,
// not a CLI.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rmera/gouff"
	"github.com/rmera/gouff/optimize"
)

// RawRun is the literal TOML shape Load unmarshals into, pre-populated
// with defaults before unmarshaling so a config file only needs to
// name the fields it wants to override.
type RawRun struct {
	Input           string
	Output          string
	Method          string
	MaxIterations   int
	GradTolerance   float64
	EnergyTolerance float64
	StoreTrajectory bool
}

// Run is a fully resolved run descriptor: an input/output path pair
// and the optimize.Settings to relax the input with.
type Run struct {
	Input    string
	Output   string
	Settings optimize.Settings
}

func (rc RawRun) toRun() Run {
	return Run{
		Input:  rc.Input,
		Output: rc.Output,
		Settings: optimize.Settings{
			MaxIterations:   rc.MaxIterations,
			GradTolerance:   rc.GradTolerance,
			EnergyTolerance: rc.EnergyTolerance,
			Method:          rc.Method,
			StoreTrajectory: rc.StoreTrajectory,
		},
	}
}

// Load reads path as TOML and returns the resolved Run. Fields absent
// from the file keep optimize.DefaultSettings()'s values.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, gouff.NewError(gouff.InvalidInput, "config: cannot read %s: %v", path, err)
	}

	defaults := optimize.DefaultSettings()
	rc := RawRun{
		Output:          "out.xyz",
		Method:          defaults.Method,
		MaxIterations:   defaults.MaxIterations,
		GradTolerance:   defaults.GradTolerance,
		EnergyTolerance: defaults.EnergyTolerance,
		StoreTrajectory: defaults.StoreTrajectory,
	}

	if err := toml.Unmarshal(data, &rc); err != nil {
		return Run{}, gouff.NewError(gouff.InvalidInput, "config: malformed TOML in %s: %v", path, err)
	}
	if rc.Input == "" {
		return Run{}, gouff.NewError(gouff.InvalidInput, "config: %s has no input file", path)
	}

	return rc.toRun(), nil
}
