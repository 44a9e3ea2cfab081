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

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMicronutrientMetalProxy(t *testing.T) {
	params := DefaultParameterStore()
	m := NewMicronutrientModel(params)
	const phosphate = 2.0
	for biome, p := range params.Micronutrients {
		state, err := m.State(biome, ChemicalState{"phosphate": phosphate})
		if err != nil {
			t.Fatal(err)
		}
		want := map[string]float64{
			"zinc":    p.ZnPRatio * phosphate / 1000,
			"cadmium": p.CdPRatio * phosphate / 1000,
			"nickel":  p.NiPRatio * phosphate / 1000,
			"copper":  p.CuPRatio * phosphate / 1000,
			"cobalt":  p.CoPRatio * phosphate / 1000,
		}
		for key, w := range want {
			if !scalar.EqualWithinAbsOrRel(state[key], w, testTolerance, testTolerance) {
				t.Errorf("%s: %s = %g, want %g", biome, key, state[key], w)
			}
		}
	}
}

func TestMicronutrientVitaminConversion(t *testing.T) {
	params := DefaultParameterStore()
	m := NewMicronutrientModel(params)
	p := params.Micronutrients["Coastal"]
	state, err := m.State("Coastal", ChemicalState{"phosphate": 1.0})
	if err != nil {
		t.Fatal(err)
	}
	// pmol/L to μmol/kg through the nominal seawater density.
	if want := p.ThiaminePM * 1e-6 / 1.025; !scalar.EqualWithinAbsOrRel(state["thiamine"], want, testTolerance, testTolerance) {
		t.Errorf("thiamine = %g, want %g", state["thiamine"], want)
	}
	if want := p.CobalaminPM * 1e-6 / 1.025; !scalar.EqualWithinAbsOrRel(state["cobalamin"], want, testTolerance, testTolerance) {
		t.Errorf("cobalamin = %g, want %g", state["cobalamin"], want)
	}
}

func TestMicronutrientMissingPhosphate(t *testing.T) {
	m := NewMicronutrientModel(DefaultParameterStore())
	if _, err := m.State("Coastal", ChemicalState{"silicate": 10}); !errors.Is(err, ErrMissingKey) {
		t.Errorf("got %v, want ErrMissingKey", err)
	}
}

func TestMicronutrientUnknownBiome(t *testing.T) {
	m := NewMicronutrientModel(DefaultParameterStore())
	if _, err := m.State("Atlantis", ChemicalState{"phosphate": 1}); !errors.Is(err, ErrUnknownBiome) {
		t.Errorf("got %v, want ErrUnknownBiome", err)
	}
}
