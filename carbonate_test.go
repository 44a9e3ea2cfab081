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
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCarbonateAtSaturation(t *testing.T) {
	params := DefaultParameterStore()
	m := NewSeawaterChemistryModel(params)
	for biome, p := range params.Carbonate {
		sat := params.Oxygen[biome].SurfaceSaturation
		res, err := m.Evaluate(biome, sat, nil)
		if err != nil {
			t.Fatal(err)
		}
		// No apparent oxygen utilization at saturation: pure Henry's
		// law equilibrium.
		want := solubility(p.SST) * p.PCO2 / seawaterDensity
		if !scalar.EqualWithinAbsOrRel(res.CO2, want, testTolerance, testTolerance) {
			t.Errorf("%s: CO2 at saturation = %g, want %g", biome, res.CO2, want)
		}
	}
}

func TestCarbonateBiologicalPump(t *testing.T) {
	params := DefaultParameterStore()
	m := NewSeawaterChemistryModel(params)
	sat := params.Oxygen["Trade-Winds"].SurfaceSaturation

	atSat, err := m.Evaluate("Trade-Winds", sat, nil)
	if err != nil {
		t.Fatal(err)
	}
	depleted, err := m.Evaluate("Trade-Winds", sat-100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := atSat.CO2 + 0.77*100; !scalar.EqualWithinAbsOrRel(depleted.CO2, want, 1e-9, 1e-9) {
		t.Errorf("CO2 with AOU=100 is %g, want %g", depleted.CO2, want)
	}

	// Supersaturated oxygen must not remove CO2: AOU clamps at zero.
	super, err := m.Evaluate("Trade-Winds", sat+50, nil)
	if err != nil {
		t.Fatal(err)
	}
	if super.CO2 != atSat.CO2 {
		t.Errorf("CO2 with supersaturated oxygen = %g, want %g", super.CO2, atSat.CO2)
	}
}

func TestCarbonatePHRounding(t *testing.T) {
	m := NewSeawaterChemistryModel(DefaultParameterStore())
	for _, biome := range []string{"Polar", "Westerlies", "Trade-Winds", "Coastal"} {
		res, err := m.Evaluate(biome, 200, nil)
		if err != nil {
			t.Fatal(err)
		}
		if rounded := math.Round(res.PH*100) / 100; res.PH != rounded {
			t.Errorf("%s: pH %v is not rounded to 2 decimal places", biome, res.PH)
		}
	}
}

// A temperature override must recompute both pH and CO2, not just one of
// them.
func TestCarbonateTemperatureOverride(t *testing.T) {
	params := DefaultParameterStore()
	m := NewSeawaterChemistryModel(params)
	p := params.Carbonate["Westerlies"]

	base, err := m.Evaluate("Westerlies", 200, nil)
	if err != nil {
		t.Fatal(err)
	}
	warm, err := m.Evaluate("Westerlies", 200, Float(p.SST+10))
	if err != nil {
		t.Fatal(err)
	}
	if warm.CO2 >= base.CO2 {
		t.Errorf("CO2 at +10 °C = %g; want below %g (solubility falls with temperature)", warm.CO2, base.CO2)
	}
	if warm.PH >= base.PH {
		t.Errorf("pH at +10 °C = %g; want below %g", warm.PH, base.PH)
	}
}

func TestCarbonateUnknownBiome(t *testing.T) {
	m := NewSeawaterChemistryModel(DefaultParameterStore())
	if _, err := m.Evaluate("Atlantis", 200, nil); !errors.Is(err, ErrUnknownBiome) {
		t.Errorf("got %v, want ErrUnknownBiome", err)
	}
}
