/*
Copyright © 2020 the SeaChem authors.
This file is part of SeaChem.

SeaChem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SeaChem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SeaChem.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package seachem synthesizes internally consistent, depth-resolved marine
// chemistry profiles (nutrients, redox-sensitive species, organic matter,
// and carbonate chemistry) for a given ocean location and depth. The
// resulting seeds are intended as boundary conditions for downstream
// metabolic and ecosystem models.
//
// The package is organized as a cascade of profile models evaluated in a
// fixed dependency order, with dissolved oxygen acting as the master
// variable: oxygen drives a smooth, continuous transition of nitrogen,
// sulfur, and metal speciation with depth. Any of the oxygen, phosphate,
// and temperature inputs can be overridden by measured values, and the
// overridden value propagates to every downstream consumer.
//
// All concentrations are in μmol/kg unless otherwise noted.
package seachem

import (
	"errors"
	"math"
)

// Version gives the version number.
const Version = "0.1.0"

// Canonical failure classes for the profile cascade. Models wrap these
// with fmt.Errorf and %w so that callers can test with errors.Is.
var (
	// ErrUnknownBiome indicates a biome name that is absent from a
	// required parameter table.
	ErrUnknownBiome = errors.New("unknown biome")

	// ErrMissingKey indicates that an upstream chemical state is missing
	// a key that a downstream model requires.
	ErrMissingKey = errors.New("missing dependency key")

	// ErrLocationNotResolved indicates that a location could not be
	// matched to any marine province (for example, a point on land).
	ErrLocationNotResolved = errors.New("location not resolved to a province")
)

// ChemicalState maps compound identifiers to concentrations in μmol/kg.
// Each model in the cascade owns a disjoint key set, so merging states
// never overwrites existing keys.
type ChemicalState map[string]float64

// merge copies all entries of o into s.
func (s ChemicalState) merge(o ChemicalState) {
	for k, v := range o {
		s[k] = v
	}
}

// Clone returns a copy of s.
func (s ChemicalState) Clone() ChemicalState {
	o := make(ChemicalState, len(s))
	o.merge(s)
	return o
}

// ProfileFunc is a pure function from depth [m] to concentration
// [μmol/kg], closed over the parameters of a single biome. Negative
// depths are clamped to zero before evaluation and outputs are clamped
// to be non-negative.
type ProfileFunc func(depth float64) float64

// Overrides optionally replaces internally modeled values with measured
// ones. A nil field means the internal model is used. When a field is
// set, every model that is derived from that quantity recomputes using
// the override rather than the internal value.
type Overrides struct {
	Oxygen      *float64 // μmol/kg; bypasses the oxygen model.
	Phosphate   *float64 // μmol/kg; bypasses the phosphate model.
	Temperature *float64 // °C; bypasses the biome sea-surface temperature.
}

// Float returns a pointer to v, for concisely populating Overrides.
func Float(v float64) *float64 { return &v }

// clampDepth maps negative depths to zero.
func clampDepth(depth float64) float64 {
	if depth < 0 {
		return 0
	}
	return depth
}

// clampConc maps negative concentrations to zero.
func clampConc(c float64) float64 {
	if c < 0 {
		return 0
	}
	return c
}

// gauss is an unnormalized Gaussian bump centered at center with the
// given width (standard deviation).
func gauss(depth, center, width float64) float64 {
	d := depth - center
	return math.Exp(-d * d / (2 * width * width))
}
