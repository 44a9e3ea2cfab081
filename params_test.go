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

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultParameterStoreComplete(t *testing.T) {
	s := DefaultParameterStore()
	want := []string{"Coastal", "Polar", "Trade-Winds", "Westerlies"}
	if got := s.Biomes(); !reflect.DeepEqual(got, want) {
		t.Errorf("biomes: got %v, want %v", got, want)
	}
}

func TestBiomesRequiresEveryTable(t *testing.T) {
	s := DefaultParameterStore()
	// A biome missing from any one table is not usable.
	s.Oxygen["Ghost"] = OxygenParams{}
	for _, name := range s.Biomes() {
		if name == "Ghost" {
			t.Error("biome missing from most tables listed as complete")
		}
	}
}

func TestLoadParameterStore(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "params.toml")
	content := `
[oxygen."Trade-Winds"]
surface_saturation = 230.0
deep_value = 155.0
oxycline_depth = 130.0
oxycline_width = 55.0
omz_depth = 1200.0
omz_intensity = 15.0
omz_width = 250.0
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadParameterStore(file)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Oxygen["Trade-Winds"]
	if p.OMZDepth != 1200 || p.SurfaceSaturation != 230 {
		t.Errorf("Trade-Winds oxygen not overridden: %+v", p)
	}
	// Untouched tables keep their defaults.
	if got, want := s.Oxygen["Polar"].SurfaceSaturation, DefaultParameterStore().Oxygen["Polar"].SurfaceSaturation; got != want {
		t.Errorf("Polar surface saturation = %g, want default %g", got, want)
	}
	if got, want := s.Macronutrients["Trade-Winds"], DefaultParameterStore().Macronutrients["Trade-Winds"]; got != want {
		t.Errorf("Trade-Winds macronutrients changed: %+v", got)
	}
}

func TestLoadParameterStoreMissingFile(t *testing.T) {
	if _, err := LoadParameterStore(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("want error for a missing parameter file")
	}
}
