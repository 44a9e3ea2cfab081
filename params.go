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
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// OxygenParams holds the dissolved oxygen profile constants for one biome.
type OxygenParams struct {
	// SurfaceSaturation is the saturated surface concentration [μmol/kg].
	// The modeled profile equals this value exactly at depth 0.
	SurfaceSaturation float64 `toml:"surface_saturation"`
	// DeepValue is the stable abyssal concentration [μmol/kg].
	DeepValue float64 `toml:"deep_value"`
	// OxyclineDepth and OxyclineWidth [m] set the inflection point and
	// steepness of the surface-to-deep logistic transition.
	OxyclineDepth float64 `toml:"oxycline_depth"`
	OxyclineWidth float64 `toml:"oxycline_width"`
	// OMZDepth [m] is the oxygen minimum zone core depth, OMZIntensity
	// [μmol/kg] is the concentration at the core, and OMZWidth [m] is
	// the standard deviation of the Gaussian depression.
	OMZDepth     float64 `toml:"omz_depth"`
	OMZIntensity float64 `toml:"omz_intensity"`
	OMZWidth     float64 `toml:"omz_width"`
}

// MacronutrientParams holds the phosphate and silicate constants for one biome.
type MacronutrientParams struct {
	PhosphateSurface float64 `toml:"phosphate_surface"` // μmol/kg
	PhosphateDeep    float64 `toml:"phosphate_deep"`    // μmol/kg
	// NutriclineDepth and NutriclineWidth [m] parameterize the logistic
	// transition between the surface and deep phosphate values.
	NutriclineDepth float64 `toml:"nutricline_depth"`
	NutriclineWidth float64 `toml:"nutricline_width"`
	// SiPRatio is the Redfield-like Si:P stoichiometric ratio.
	SiPRatio float64 `toml:"si_p_ratio"`
	// SiRegenDepth [m] and SiRegenSlope [μmol/kg/m] control the linear
	// deep-water silicate regeneration term, which activates only below
	// SiRegenDepth.
	SiRegenDepth float64 `toml:"si_regen_depth"`
	SiRegenSlope float64 `toml:"si_regen_slope"`
}

// RedoxParams holds the nitrogen, metal, and sulfur speciation constants
// for one biome. The half-saturation constants K* parameterize the
// continuous oxygen inhibition factor k/(k+O2) for each anaerobic process.
type RedoxParams struct {
	// NPRatio is the Redfield N:P ratio used to derive potential nitrate
	// from phosphate.
	NPRatio float64 `toml:"n_p_ratio"`
	// MaxDenitrification is the maximum fraction of potential nitrate
	// removed by denitrification at the OMZ core.
	MaxDenitrification float64 `toml:"max_denitrification"`

	KDenit   float64 `toml:"k_denit"`   // μmol/kg O2
	KMetal   float64 `toml:"k_metal"`   // μmol/kg O2
	KSulfate float64 `toml:"k_sulfate"` // μmol/kg O2

	// Primary nitrite maximum near the base of the euphotic zone.
	PNMDepth   float64 `toml:"pnm_depth"`    // m
	PNMWidth   float64 `toml:"pnm_width"`    // m
	PNMAmpFrac float64 `toml:"pnm_amp_frac"` // fraction of potential nitrate

	// Secondary nitrite maximum, driven by the nitrate deficit.
	SNMRatio      float64 `toml:"snm_ratio"`       // fraction of nitrate deficit
	SNMWidthRatio float64 `toml:"snm_width_ratio"` // fraction of OMZ width

	// Ammonium: background plus a shallow remineralization peak and a
	// deep peak at the OMZ core.
	AmmoniumSurface   float64 `toml:"ammonium_surface"`    // μmol/kg
	ShallowPeakDepth  float64 `toml:"shallow_peak_depth"`  // m
	ShallowPeakWidth  float64 `toml:"shallow_peak_width"`  // m
	ShallowPeakHeight float64 `toml:"shallow_peak_height"` // μmol/kg
	DeepPeakHeight    float64 `toml:"deep_peak_height"`    // μmol/kg

	// KAnammox is the bimolecular anammox rate constant [kg/μmol].
	KAnammox float64 `toml:"k_anammox"`

	// Dissolved metals [nmol/kg]: oxic baselines and maximum values
	// under fully reducing conditions.
	FeOxic float64 `toml:"fe_oxic"`
	FeMax  float64 `toml:"fe_max"`
	MnOxic float64 `toml:"mn_oxic"`
	MnMax  float64 `toml:"mn_max"`

	// SulfateBaseline [μmol/kg] and the maximum fraction of it converted
	// to sulfide under fully reducing conditions.
	SulfateBaseline  float64 `toml:"sulfate_baseline"`
	MaxSulfReduction float64 `toml:"max_sulf_reduction"`
}

// MicronutrientParams holds the trace metal and vitamin constants for one
// biome. Metal ratios are mmol metal per mol phosphorus; vitamins are
// surface concentrations in pmol/L.
type MicronutrientParams struct {
	ZnPRatio float64 `toml:"zn_p_ratio"`
	CdPRatio float64 `toml:"cd_p_ratio"`
	NiPRatio float64 `toml:"ni_p_ratio"`
	CuPRatio float64 `toml:"cu_p_ratio"`
	CoPRatio float64 `toml:"co_p_ratio"`

	ThiaminePM  float64 `toml:"thiamine_pm"`
	CobalaminPM float64 `toml:"cobalamin_pm"`
}

// OrganicParams holds the bulk organic matter constants for one biome.
type OrganicParams struct {
	DOCSurface    float64 `toml:"doc_surface"`    // μmol C/kg
	DOCRefractory float64 `toml:"doc_refractory"` // μmol C/kg
	DOCScale      float64 `toml:"doc_scale"`      // e-folding depth, m
	POCSurface    float64 `toml:"poc_surface"`    // μmol C/kg
	POCRefractory float64 `toml:"poc_refractory"` // μmol C/kg
	POCScale      float64 `toml:"poc_scale"`      // e-folding depth, m

	// Productive selects the euphotic-zone biochemical composition used
	// for high-productivity biomes, as opposed to oligotrophic gyres.
	Productive bool `toml:"productive"`
}

// CarbonateParams holds the seawater CO2 system constants for one biome.
type CarbonateParams struct {
	SST    float64 `toml:"sst"`     // default sea surface temperature, °C
	PCO2   float64 `toml:"pco2"`    // atmospheric pCO2, μatm
	PHBase float64 `toml:"ph_base"` // baseline pH at reference conditions
}

// ParameterStore holds the per-biome constant tables for every model in
// the cascade. Biome name is the join key across all tables; a name that
// does not resolve in a required table fails the whole cascade.
//
// The store is treated as immutable after construction.
type ParameterStore struct {
	Oxygen         map[string]OxygenParams        `toml:"oxygen"`
	Macronutrients map[string]MacronutrientParams `toml:"macronutrients"`
	Redox          map[string]RedoxParams         `toml:"redox"`
	Micronutrients map[string]MicronutrientParams `toml:"micronutrients"`
	Organic        map[string]OrganicParams       `toml:"organic"`
	Carbonate      map[string]CarbonateParams     `toml:"carbonate"`
}

// DefaultParameterStore returns the built-in canonical parameter tables
// for the four Longhurst biomes: Polar, Westerlies, Trade-Winds, and
// Coastal. Where historical parameterizations disagree (notably the
// Trade-Winds OMZ), this table is authoritative; the Trade-Winds OMZ core
// is fixed at 500 m.
func DefaultParameterStore() *ParameterStore {
	return &ParameterStore{
		Oxygen: map[string]OxygenParams{
			"Polar": {
				SurfaceSaturation: 350, DeepValue: 300,
				OxyclineDepth: 400, OxyclineWidth: 150,
				OMZDepth: 800, OMZIntensity: 250, OMZWidth: 300,
			},
			"Westerlies": {
				SurfaceSaturation: 280, DeepValue: 180,
				OxyclineDepth: 150, OxyclineWidth: 60,
				OMZDepth: 900, OMZIntensity: 120, OMZWidth: 300,
			},
			"Trade-Winds": {
				SurfaceSaturation: 225, DeepValue: 150,
				OxyclineDepth: 120, OxyclineWidth: 50,
				OMZDepth: 500, OMZIntensity: 20, OMZWidth: 200,
			},
			"Coastal": {
				SurfaceSaturation: 250, DeepValue: 120,
				OxyclineDepth: 60, OxyclineWidth: 25,
				OMZDepth: 350, OMZIntensity: 5, OMZWidth: 150,
			},
		},
		Macronutrients: map[string]MacronutrientParams{
			"Polar": {
				PhosphateSurface: 1.2, PhosphateDeep: 2.3,
				NutriclineDepth: 300, NutriclineWidth: 120,
				SiPRatio: 25, SiRegenDepth: 1500, SiRegenSlope: 0.02,
			},
			"Westerlies": {
				PhosphateSurface: 0.3, PhosphateDeep: 2.4,
				NutriclineDepth: 200, NutriclineWidth: 80,
				SiPRatio: 3, SiRegenDepth: 2000, SiRegenSlope: 0.015,
			},
			"Trade-Winds": {
				PhosphateSurface: 0.05, PhosphateDeep: 2.6,
				NutriclineDepth: 150, NutriclineWidth: 60,
				SiPRatio: 1.5, SiRegenDepth: 2000, SiRegenSlope: 0.01,
			},
			"Coastal": {
				PhosphateSurface: 0.5, PhosphateDeep: 2.8,
				NutriclineDepth: 80, NutriclineWidth: 40,
				SiPRatio: 2.5, SiRegenDepth: 1000, SiRegenSlope: 0.02,
			},
		},
		Redox: map[string]RedoxParams{
			"Polar": {
				NPRatio: 16, MaxDenitrification: 0.05,
				KDenit: 8, KMetal: 15, KSulfate: 2,
				PNMDepth: 60, PNMWidth: 30, PNMAmpFrac: 0.01,
				SNMRatio: 0.08, SNMWidthRatio: 0.5,
				AmmoniumSurface:  0.1,
				ShallowPeakDepth: 40, ShallowPeakWidth: 25, ShallowPeakHeight: 0.3,
				DeepPeakHeight: 0.3, KAnammox: 0.05,
				FeOxic: 0.6, FeMax: 1.5, MnOxic: 0.3, MnMax: 4,
				SulfateBaseline: 28000, MaxSulfReduction: 1e-5,
			},
			"Westerlies": {
				NPRatio: 16, MaxDenitrification: 0.3,
				KDenit: 8, KMetal: 15, KSulfate: 2,
				PNMDepth: 80, PNMWidth: 30, PNMAmpFrac: 0.015,
				SNMRatio: 0.08, SNMWidthRatio: 0.5,
				AmmoniumSurface:  0.05,
				ShallowPeakDepth: 60, ShallowPeakWidth: 30, ShallowPeakHeight: 0.2,
				DeepPeakHeight: 0.5, KAnammox: 0.05,
				FeOxic: 0.4, FeMax: 2.5, MnOxic: 0.2, MnMax: 8,
				SulfateBaseline: 28000, MaxSulfReduction: 5e-5,
			},
			"Trade-Winds": {
				NPRatio: 16, MaxDenitrification: 0.8,
				KDenit: 8, KMetal: 15, KSulfate: 2,
				PNMDepth: 100, PNMWidth: 35, PNMAmpFrac: 0.02,
				SNMRatio: 0.1, SNMWidthRatio: 0.5,
				AmmoniumSurface:  0.02,
				ShallowPeakDepth: 80, ShallowPeakWidth: 35, ShallowPeakHeight: 0.1,
				DeepPeakHeight: 0.8, KAnammox: 0.05,
				FeOxic: 0.3, FeMax: 8, MnOxic: 0.2, MnMax: 20,
				SulfateBaseline: 28000, MaxSulfReduction: 2e-4,
			},
			"Coastal": {
				NPRatio: 16, MaxDenitrification: 0.6,
				KDenit: 8, KMetal: 15, KSulfate: 2,
				PNMDepth: 40, PNMWidth: 20, PNMAmpFrac: 0.02,
				SNMRatio: 0.1, SNMWidthRatio: 0.5,
				AmmoniumSurface:  0.2,
				ShallowPeakDepth: 50, ShallowPeakWidth: 25, ShallowPeakHeight: 0.5,
				DeepPeakHeight: 1.0, KAnammox: 0.05,
				FeOxic: 0.6, FeMax: 25, MnOxic: 0.5, MnMax: 50,
				SulfateBaseline: 28000, MaxSulfReduction: 5e-4,
			},
		},
		Micronutrients: map[string]MicronutrientParams{
			"Polar": {
				ZnPRatio: 2.5, CdPRatio: 0.35, NiPRatio: 1.8,
				CuPRatio: 1.2, CoPRatio: 0.08,
				ThiaminePM: 120, CobalaminPM: 1.5,
			},
			"Westerlies": {
				ZnPRatio: 2.0, CdPRatio: 0.3, NiPRatio: 1.8,
				CuPRatio: 1.2, CoPRatio: 0.07,
				ThiaminePM: 180, CobalaminPM: 1.0,
			},
			"Trade-Winds": {
				ZnPRatio: 1.8, CdPRatio: 0.25, NiPRatio: 1.6,
				CuPRatio: 1.0, CoPRatio: 0.05,
				ThiaminePM: 250, CobalaminPM: 0.5,
			},
			"Coastal": {
				ZnPRatio: 2.2, CdPRatio: 0.35, NiPRatio: 2.0,
				CuPRatio: 1.5, CoPRatio: 0.1,
				ThiaminePM: 400, CobalaminPM: 2.0,
			},
		},
		Organic: map[string]OrganicParams{
			"Polar": {
				DOCSurface: 60, DOCRefractory: 40, DOCScale: 300,
				POCSurface: 3, POCRefractory: 0.2, POCScale: 200,
				Productive: true,
			},
			"Westerlies": {
				DOCSurface: 70, DOCRefractory: 42, DOCScale: 300,
				POCSurface: 2, POCRefractory: 0.15, POCScale: 250,
				Productive: false,
			},
			"Trade-Winds": {
				DOCSurface: 78, DOCRefractory: 42, DOCScale: 350,
				POCSurface: 1, POCRefractory: 0.1, POCScale: 250,
				Productive: false,
			},
			"Coastal": {
				DOCSurface: 90, DOCRefractory: 45, DOCScale: 250,
				POCSurface: 8, POCRefractory: 0.4, POCScale: 150,
				Productive: true,
			},
		},
		Carbonate: map[string]CarbonateParams{
			"Polar":       {SST: 2, PCO2: 360, PHBase: 8.15},
			"Westerlies":  {SST: 15, PCO2: 400, PHBase: 8.10},
			"Trade-Winds": {SST: 26, PCO2: 410, PHBase: 8.05},
			"Coastal":     {SST: 18, PCO2: 420, PHBase: 8.05},
		},
	}
}

// LoadParameterStore reads TOML parameter tables from filename and merges
// them over the built-in defaults. A biome entry present in the file
// replaces the corresponding built-in entry wholesale, so all fields of
// that entry must be given.
func LoadParameterStore(filename string) (*ParameterStore, error) {
	s := DefaultParameterStore()
	if _, err := toml.DecodeFile(filename, s); err != nil {
		return nil, fmt.Errorf("seachem: reading parameter file %s: %w", filename, err)
	}
	return s, nil
}

// Biomes returns the sorted names of all biomes present in every
// parameter table.
func (s *ParameterStore) Biomes() []string {
	var names []string
	for name := range s.Oxygen {
		if _, ok := s.Macronutrients[name]; !ok {
			continue
		}
		if _, ok := s.Redox[name]; !ok {
			continue
		}
		if _, ok := s.Micronutrients[name]; !ok {
			continue
		}
		if _, ok := s.Organic[name]; !ok {
			continue
		}
		if _, ok := s.Carbonate[name]; !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *ParameterStore) oxygen(biome string) (OxygenParams, error) {
	p, ok := s.Oxygen[biome]
	if !ok {
		return OxygenParams{}, fmt.Errorf("seachem: oxygen parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}

func (s *ParameterStore) macronutrients(biome string) (MacronutrientParams, error) {
	p, ok := s.Macronutrients[biome]
	if !ok {
		return MacronutrientParams{}, fmt.Errorf("seachem: macronutrient parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}

func (s *ParameterStore) redox(biome string) (RedoxParams, error) {
	p, ok := s.Redox[biome]
	if !ok {
		return RedoxParams{}, fmt.Errorf("seachem: redox parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}

func (s *ParameterStore) micronutrients(biome string) (MicronutrientParams, error) {
	p, ok := s.Micronutrients[biome]
	if !ok {
		return MicronutrientParams{}, fmt.Errorf("seachem: micronutrient parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}

func (s *ParameterStore) organic(biome string) (OrganicParams, error) {
	p, ok := s.Organic[biome]
	if !ok {
		return OrganicParams{}, fmt.Errorf("seachem: organic matter parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}

func (s *ParameterStore) carbonate(biome string) (CarbonateParams, error) {
	p, ok := s.Carbonate[biome]
	if !ok {
		return CarbonateParams{}, fmt.Errorf("seachem: carbonate parameters: %w: %q", ErrUnknownBiome, biome)
	}
	return p, nil
}
