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
	"fmt"
	"math"
	"strings"
)

// BiomeResolver maps a geographic location to the Longhurst biome and
// province containing it. Implementations are expected to be constructed
// once and then used read-only; see package province.
type BiomeResolver interface {
	// ResolveBiome returns the biome name and province code for the
	// given location, or ErrLocationNotResolved if the point is not
	// within any marine province.
	ResolveBiome(lat, lon float64) (biome, provinceCode string, err error)
}

// nameTranslation maps internal compound names to canonical external
// metabolite identifiers. Internal keys absent from this table but
// already carrying the canonical "_e" suffix pass through unchanged.
var nameTranslation = map[string]string{
	"oxygen":    "o2_e",
	"phosphate": "pi_e",
	"silicate":  "sio4_e",
	"nitrate":   "no3_e",
	"nitrite":   "no2_e",
	"ammonium":  "nh4_e",
	"iron":      "fe2_e",
	"manganese": "mn2_e",
	"sulfate":   "so4_e",
	"sulfide":   "h2s_e",
	"zinc":      "zn2_e",
	"cadmium":   "cd2_e",
	"nickel":    "ni2_e",
	"copper":    "cu2_e",
	"cobalt":    "cobalt2_e",
	"thiamine":  "thm_e",
	"cobalamin": "cbl1_e",
	"co2":       "co2_e",
	"don":       "don_e",
	"dop":       "dop_e",
	"glucose":   "glc__D_e",
	"galactose": "gal_e",
	"mannose":   "man_e",
	"arabinose": "arab__L_e",
	"alanine":   "ala__L_e",
	"glycine":   "gly_e",
	"glutamate": "glu__L_e",
	"serine":    "ser__L_e",
	"aspartate": "asp__L_e",
	"leucine":   "leu__L_e",
	"palmitate": "hdca_e",
	"oleate":    "ocdcea_e",
	"glycerol":  "glyc_e",
}

// currencyMetabolites is the closed set of small-molecule cofactors that
// are never emitted in a seed: they are cellular currency, not boundary
// species.
var currencyMetabolites = map[string]bool{
	"atp_e":   true,
	"adp_e":   true,
	"amp_e":   true,
	"nad_e":   true,
	"nadh_e":  true,
	"nadp_e":  true,
	"nadph_e": true,
	"coa_e":   true,
	"ppi_e":   true,
	"h_e":     true,
	"h2o_e":   true,
}

// Metadata describes the provenance and bulk properties of a seed.
type Metadata struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DepthM       float64 `json:"depth_m"`
	ProvinceCode string  `json:"province_code"`
	Biome        string  `json:"biome"`
	PH           float64 `json:"pH"`
	DOCTotal     float64 `json:"DOC_total_umolC_kg"`
	POCTotal     float64 `json:"POC_total_umolC_kg"`
	Units        string  `json:"units"`
}

// Seed is a standardized chemical boundary condition for one location
// and depth: a chemical state keyed by canonical metabolite identifiers
// plus provenance metadata. A Seed is constructed fresh per call and not
// modified after being returned.
type Seed struct {
	State    ChemicalState `json:"state"`
	Metadata Metadata      `json:"metadata"`
}

// SeedRequest is the parameter object for Generator.Seed.
type SeedRequest struct {
	Latitude  float64
	Longitude float64
	Depth     float64 // m, clamped to ≥ 0
	Overrides Overrides
}

// Generator orchestrates the profile model cascade and is the sole
// public entry point for seed generation. It holds no mutable state and
// may be used concurrently for independent locations.
type Generator struct {
	Params   *ParameterStore
	Resolver BiomeResolver

	oxygen  *OxygenModel
	macro   *MacronutrientModel
	redox   *RedoxSpeciationModel
	micro   *MicronutrientModel
	organic *OrganicMatterModel
	carb    *SeawaterChemistryModel
}

// NewGenerator creates a seed generator from a parameter store and a
// biome resolver.
func NewGenerator(params *ParameterStore, resolver BiomeResolver) *Generator {
	return &Generator{
		Params:   params,
		Resolver: resolver,
		oxygen:   NewOxygenModel(params),
		macro:    NewMacronutrientModel(params),
		redox:    NewRedoxSpeciationModel(params),
		micro:    NewMicronutrientModel(params),
		organic:  NewOrganicMatterModel(params),
		carb:     NewSeawaterChemistryModel(params),
	}
}

// Seed generates a standardized chemical seed for the requested location
// and depth. The models are evaluated in dependency order, each consuming
// the already-resolved upstream values; if any stage fails, the whole
// call fails and no partial seed is returned.
func (g *Generator) Seed(req SeedRequest) (*Seed, error) {
	biome, provinceCode, err := g.Resolver.ResolveBiome(req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("seachem: resolving (%g, %g): %w", req.Latitude, req.Longitude, err)
	}
	depth := clampDepth(req.Depth)

	// Oxygen, the master variable.
	var oxygen float64
	if req.Overrides.Oxygen != nil {
		oxygen = clampConc(*req.Overrides.Oxygen)
	} else {
		oxygen, err = g.oxygen.Concentration(biome, depth)
		if err != nil {
			return nil, err
		}
	}

	macro, err := g.macro.State(biome, depth, req.Overrides.Phosphate)
	if err != nil {
		return nil, err
	}

	redox, err := g.redox.State(biome, depth, oxygen, macro["phosphate"])
	if err != nil {
		return nil, err
	}

	micro, err := g.micro.State(biome, macro)
	if err != nil {
		return nil, err
	}

	organic, err := g.organic.State(biome, depth)
	if err != nil {
		return nil, err
	}

	carb, err := g.carb.Evaluate(biome, oxygen, req.Overrides.Temperature)
	if err != nil {
		return nil, err
	}

	merged := ChemicalState{"oxygen": oxygen, "co2": carb.CO2}
	merged.merge(macro)
	merged.merge(redox)
	merged.merge(micro)
	merged.merge(organic.State)

	state, err := standardize(merged)
	if err != nil {
		return nil, err
	}
	// Proton activity from pH. The proton is itself a currency
	// metabolite, so it is removed again below with the rest of the
	// exclusion set; deriving it here keeps the exclusion pass the only
	// place that decides what is emitted.
	state["h_e"] = math.Pow(10, -carb.PH)
	for name := range currencyMetabolites {
		delete(state, name)
	}

	return &Seed{
		State: state,
		Metadata: Metadata{
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			DepthM:       depth,
			ProvinceCode: provinceCode,
			Biome:        biome,
			PH:           carb.PH,
			DOCTotal:     organic.DOC,
			POCTotal:     organic.POC,
			Units:        "umol/kg",
		},
	}, nil
}

// standardize translates every internal compound name to its canonical
// external identifier. Names missing from the translation table pass
// through only if they already follow the canonical "_e" suffix
// convention.
func standardize(internal ChemicalState) (ChemicalState, error) {
	out := make(ChemicalState, len(internal))
	for name, conc := range internal {
		if canonical, ok := nameTranslation[name]; ok {
			out[canonical] = conc
			continue
		}
		if strings.HasSuffix(name, "_e") {
			out[name] = conc
			continue
		}
		return nil, fmt.Errorf("seachem: no canonical identifier for compound %q", name)
	}
	return out, nil
}
