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

func TestInhibition(t *testing.T) {
	const k = 8.0
	if got := Inhibition(0, k); got != 1 {
		t.Errorf("inhibition at zero oxygen = %g, want 1", got)
	}
	if got := Inhibition(k, k); got != 0.5 {
		t.Errorf("inhibition at the half-saturation concentration = %g, want 0.5", got)
	}
	if got := Inhibition(1e6, k); got > 1e-4 {
		t.Errorf("inhibition at high oxygen = %g, want ≈ 0", got)
	}
	// Negative oxygen is clamped, so the factor never exceeds 1.
	if got := Inhibition(-10, k); got != 1 {
		t.Errorf("inhibition at negative oxygen = %g, want 1", got)
	}
}

// The nitrate deficit must grow monotonically as oxygen falls at the OMZ
// core, approaching potential·maxDenitrification as oxygen approaches 0.
func TestNitrateDeficitMonotonic(t *testing.T) {
	params := DefaultParameterStore()
	m := NewRedoxSpeciationModel(params)
	const (
		biome     = "Trade-Winds"
		phosphate = 2.0
	)
	p := params.Redox[biome]
	depth := params.Oxygen[biome].OMZDepth
	potential := p.NPRatio * phosphate

	prev := -1.0
	for _, o2 := range []float64{200, 100, 50, 20, 10, 5, 1, 0.1, 0} {
		state, err := m.State(biome, depth, o2, phosphate)
		if err != nil {
			t.Fatal(err)
		}
		deficit := potential - state["nitrate"]
		if deficit <= prev {
			t.Errorf("deficit at O2=%g is %g, not greater than %g", o2, deficit, prev)
		}
		prev = deficit
	}
	limit := potential * p.MaxDenitrification
	if !scalar.EqualWithinAbsOrRel(prev, limit, 1e-9, 1e-9) {
		t.Errorf("deficit at zero oxygen = %g, want %g", prev, limit)
	}
}

// The redox profiles must be continuous in oxygen: small oxygen changes
// produce proportionally small changes in every species.
func TestRedoxContinuityInOxygen(t *testing.T) {
	params := DefaultParameterStore()
	m := NewRedoxSpeciationModel(params)
	const depth, phosphate = 500.0, 2.0
	for o2 := 0.0; o2 < 50; o2 += 0.25 {
		a, err := m.State("Trade-Winds", depth, o2, phosphate)
		if err != nil {
			t.Fatal(err)
		}
		b, err := m.State("Trade-Winds", depth, o2+0.25, phosphate)
		if err != nil {
			t.Fatal(err)
		}
		for key := range a {
			d := a[key] - b[key]
			if d < 0 {
				d = -d
			}
			if d > 1 {
				t.Errorf("%s jumps by %g between O2=%g and %g", key, d, o2, o2+0.25)
			}
		}
	}
}

// The anammox sink may only remove nitrite and ammonium, and both pools
// must stay non-negative afterwards.
func TestAnammoxSink(t *testing.T) {
	params := DefaultParameterStore()
	withoutSink := DefaultParameterStore()
	for biome, p := range withoutSink.Redox {
		p.KAnammox = 0
		withoutSink.Redox[biome] = p
	}
	m := NewRedoxSpeciationModel(params)
	mNoSink := NewRedoxSpeciationModel(withoutSink)

	for _, biome := range params.Biomes() {
		for _, o2 := range []float64{0, 2, 10, 50, 200} {
			for z := 0.0; z <= 2000; z += 100 {
				after, err := m.State(biome, z, o2, 2.0)
				if err != nil {
					t.Fatal(err)
				}
				before, err := mNoSink.State(biome, z, o2, 2.0)
				if err != nil {
					t.Fatal(err)
				}
				if after["nitrite"] > before["nitrite"]+testTolerance {
					t.Errorf("%s z=%g O2=%g: nitrite grew across the anammox sink: %g > %g",
						biome, z, o2, after["nitrite"], before["nitrite"])
				}
				if after["ammonium"] > before["ammonium"]+testTolerance {
					t.Errorf("%s z=%g O2=%g: ammonium grew across the anammox sink: %g > %g",
						biome, z, o2, after["ammonium"], before["ammonium"])
				}
				if after["nitrite"] < 0 || after["ammonium"] < 0 {
					t.Errorf("%s z=%g O2=%g: negative pool after anammox: nitrite=%g ammonium=%g",
						biome, z, o2, after["nitrite"], after["ammonium"])
				}
			}
		}
	}
}

func TestRedoxAllNonNegative(t *testing.T) {
	params := DefaultParameterStore()
	m := NewRedoxSpeciationModel(params)
	for _, biome := range params.Biomes() {
		for _, o2 := range []float64{0, 5, 100, 300} {
			for z := 0.0; z <= 4000; z += 200 {
				state, err := m.State(biome, z, o2, 1.5)
				if err != nil {
					t.Fatal(err)
				}
				for key, v := range state {
					if v < 0 {
						t.Errorf("%s z=%g O2=%g: %s = %g; want ≥ 0", biome, z, o2, key, v)
					}
				}
			}
		}
	}
}

// Sulfide production must be matched by sulfate loss.
func TestSulfurMassBalance(t *testing.T) {
	params := DefaultParameterStore()
	m := NewRedoxSpeciationModel(params)
	for _, biome := range params.Biomes() {
		baseline := params.Redox[biome].SulfateBaseline
		for _, o2 := range []float64{0, 1, 20, 250} {
			state, err := m.State(biome, 500, o2, 2.0)
			if err != nil {
				t.Fatal(err)
			}
			total := state["sulfate"] + state["sulfide"]
			if !scalar.EqualWithinAbsOrRel(total, baseline, 1e-6, 1e-6) {
				t.Errorf("%s O2=%g: sulfate+sulfide = %g, want %g", biome, o2, total, baseline)
			}
		}
	}
}

func TestRedoxUnknownBiome(t *testing.T) {
	params := DefaultParameterStore()
	m := NewRedoxSpeciationModel(params)
	if _, err := m.State("Atlantis", 100, 200, 1); !errors.Is(err, ErrUnknownBiome) {
		t.Errorf("got %v, want ErrUnknownBiome", err)
	}

	// A biome present in the redox table but missing from the oxygen
	// table must also fail: the OMZ geometry cannot be resolved.
	params.Redox["Ghost"] = params.Redox["Coastal"]
	if _, err := m.State("Ghost", 100, 200, 1); !errors.Is(err, ErrUnknownBiome) {
		t.Errorf("missing oxygen parameters: got %v, want ErrUnknownBiome", err)
	}
}
