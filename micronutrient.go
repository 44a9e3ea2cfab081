/*
Copyright © 2021 the SeaChem authors.
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

import "fmt"

// seawaterDensity is the nominal density of seawater [kg/L] used for
// volumetric-to-gravimetric unit conversions.
const seawaterDensity = 1.025

// MicronutrientModel computes trace metal and vitamin concentrations.
// Trace metals are linear proxies of phosphate through fixed per-biome
// metal:phosphorus ratios; vitamins are fixed per-biome surface values.
type MicronutrientModel struct {
	params *ParameterStore
}

// NewMicronutrientModel creates a micronutrient model backed by the given
// parameter store.
func NewMicronutrientModel(params *ParameterStore) *MicronutrientModel {
	return &MicronutrientModel{params: params}
}

// State computes trace metals (Zn, Cd, Ni, Cu, Co) and vitamins (B1,
// B12) for biome, reading the phosphate concentration from the supplied
// macronutrient state. A macro state without a "phosphate" entry is an
// ErrMissingKey failure.
//
// Metal ratios are mmol metal per mol P, converted to μmol/kg; vitamin
// parameters are pmol/L, converted to μmol/kg using the nominal seawater
// density.
func (m *MicronutrientModel) State(biome string, macro ChemicalState) (ChemicalState, error) {
	p, err := m.params.micronutrients(biome)
	if err != nil {
		return nil, err
	}
	phosphate, ok := macro["phosphate"]
	if !ok {
		return nil, fmt.Errorf("seachem: micronutrients: %w: %q", ErrMissingKey, "phosphate")
	}

	// mmol metal : mol P times μmol P/kg gives nmol metal/kg; divide by
	// 1000 for μmol/kg.
	metal := func(ratio float64) float64 {
		return clampConc(ratio * phosphate / 1000)
	}
	// pmol/L to μmol/kg.
	vitamin := func(pM float64) float64 {
		return clampConc(pM * 1e-6 / seawaterDensity)
	}

	return ChemicalState{
		"zinc":      metal(p.ZnPRatio),
		"cadmium":   metal(p.CdPRatio),
		"nickel":    metal(p.NiPRatio),
		"copper":    metal(p.CuPRatio),
		"cobalt":    metal(p.CoPRatio),
		"thiamine":  vitamin(p.ThiaminePM),
		"cobalamin": vitamin(p.CobalaminPM),
	}, nil
}
