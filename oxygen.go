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

package seachem

import "math"

// OxygenModel computes the vertical dissolved oxygen profile, the master
// variable of the cascade. The profile has three layers: a saturated
// surface, an oxygen minimum zone (OMZ) core at a biome-specific depth
// and intensity, and a stable deep value.
type OxygenModel struct {
	params *ParameterStore
}

// NewOxygenModel creates an oxygen model backed by the given parameter
// store.
func NewOxygenModel(params *ParameterStore) *OxygenModel {
	return &OxygenModel{params: params}
}

// Profile returns the dissolved oxygen profile function for the given
// biome, or ErrUnknownBiome if the biome is not in the oxygen parameter
// table.
//
// The profile is a logistic baseline from the surface saturation value to
// the deep value, normalized so the value at depth 0 equals the surface
// saturation exactly, minus a surface-anchored Gaussian depression whose
// amplitude is solved analytically so the value at the OMZ core depth
// equals the configured OMZ intensity exactly.
func (m *OxygenModel) Profile(biome string) (ProfileFunc, error) {
	p, err := m.params.oxygen(biome)
	if err != nil {
		return nil, err
	}

	logistic := func(z float64) float64 {
		return 1 / (1 + math.Exp((z-p.OxyclineDepth)/p.OxyclineWidth))
	}
	g0 := logistic(0)
	baseline := func(z float64) float64 {
		return p.DeepValue + (p.SurfaceSaturation-p.DeepValue)*logistic(z)/g0
	}

	// The raw Gaussian dip is offset by its surface value so the dip
	// vanishes at z=0, keeping the surface exactly saturated. The
	// amplitude is then solved so baseline-minus-dip at the OMZ core
	// equals the configured intensity.
	dip := func(z float64) float64 {
		return gauss(z, p.OMZDepth, p.OMZWidth)
	}
	d0 := dip(0)
	amp := (baseline(p.OMZDepth) - p.OMZIntensity) / (1 - d0)

	return func(depth float64) float64 {
		z := clampDepth(depth)
		return clampConc(baseline(z) - amp*(dip(z)-d0))
	}, nil
}

// Concentration evaluates the oxygen profile for biome at the given
// depth [m], returning μmol/kg.
func (m *OxygenModel) Concentration(biome string, depth float64) (float64, error) {
	f, err := m.Profile(biome)
	if err != nil {
		return 0, err
	}
	return f(depth), nil
}

// SurfaceSaturation returns the saturated surface oxygen concentration
// for biome [μmol/kg].
func (m *OxygenModel) SurfaceSaturation(biome string) (float64, error) {
	p, err := m.params.oxygen(biome)
	if err != nil {
		return 0, err
	}
	return p.SurfaceSaturation, nil
}
