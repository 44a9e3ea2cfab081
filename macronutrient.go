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

// MacronutrientModel computes phosphate and silicate profiles. Phosphate
// follows a logistic transition from a surface to a deep value across the
// nutricline; silicate is a stoichiometric multiple of phosphate plus a
// depth-gated deep regeneration term. Silicate is always derived from the
// phosphate value actually in force, so a phosphate override propagates
// into silicate.
type MacronutrientModel struct {
	params *ParameterStore
}

// NewMacronutrientModel creates a macronutrient model backed by the given
// parameter store.
func NewMacronutrientModel(params *ParameterStore) *MacronutrientModel {
	return &MacronutrientModel{params: params}
}

// PhosphateProfile returns the phosphate profile function for biome. The
// logistic transition is normalized so the value at depth 0 equals the
// biome's surface phosphate constant exactly.
func (m *MacronutrientModel) PhosphateProfile(biome string) (ProfileFunc, error) {
	p, err := m.params.macronutrients(biome)
	if err != nil {
		return nil, err
	}
	logistic := func(z float64) float64 {
		return 1 / (1 + math.Exp(-(z-p.NutriclineDepth)/p.NutriclineWidth))
	}
	g0 := logistic(0)
	return func(depth float64) float64 {
		z := clampDepth(depth)
		frac := (logistic(z) - g0) / (1 - g0)
		return clampConc(p.PhosphateSurface + (p.PhosphateDeep-p.PhosphateSurface)*frac)
	}, nil
}

// Silicate derives the silicate concentration [μmol/kg] from the
// phosphate value in force at the given depth:
//
//	silicate = SiPRatio·phosphate + SiRegenSlope·max(0, depth−SiRegenDepth)
func (m *MacronutrientModel) Silicate(biome string, depth, phosphate float64) (float64, error) {
	p, err := m.params.macronutrients(biome)
	if err != nil {
		return 0, err
	}
	z := clampDepth(depth)
	regen := p.SiRegenSlope * math.Max(0, z-p.SiRegenDepth)
	return clampConc(p.SiPRatio*phosphate + regen), nil
}

// State evaluates phosphate and silicate for biome at the given depth.
// If phosphateOverride is non-nil, the measured value replaces the
// internal phosphate model verbatim for both the phosphate entry and the
// silicate derivation.
func (m *MacronutrientModel) State(biome string, depth float64, phosphateOverride *float64) (ChemicalState, error) {
	var phosphate float64
	if phosphateOverride != nil {
		phosphate = clampConc(*phosphateOverride)
	} else {
		f, err := m.PhosphateProfile(biome)
		if err != nil {
			return nil, err
		}
		phosphate = f(depth)
	}
	silicate, err := m.Silicate(biome, depth, phosphate)
	if err != nil {
		return nil, err
	}
	return ChemicalState{
		"phosphate": phosphate,
		"silicate":  silicate,
	}, nil
}
