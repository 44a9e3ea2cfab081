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

import "math"

// Depth zone boundaries [m].
const (
	euphoticMaxDepth    = 150
	mesopelagicMaxDepth = 1000
)

// depthZone classifies a depth into the euphotic, mesopelagic, or deep
// zone.
type depthZone int

const (
	euphotic depthZone = iota
	mesopelagic
	deep
)

func zoneAt(depth float64) depthZone {
	switch {
	case depth <= euphoticMaxDepth:
		return euphotic
	case depth <= mesopelagicMaxDepth:
		return mesopelagic
	default:
		return deep
	}
}

// classFractions is the biochemical partition of bulk organic carbon
// into the three macromolecular classes. Fractions sum to 1.
type classFractions struct {
	protein, carbohydrate, lipid float64
}

// Composition by depth zone. In the euphotic zone, fresh production makes
// composition depend on biome productivity; below the euphotic zone the
// partition is zone-uniform across biomes as degradation converges the
// material.
var (
	euphoticProductive   = classFractions{protein: 0.35, carbohydrate: 0.45, lipid: 0.20}
	euphoticOligotrophic = classFractions{protein: 0.25, carbohydrate: 0.55, lipid: 0.20}
	mesopelagicFractions = classFractions{protein: 0.30, carbohydrate: 0.55, lipid: 0.15}
	deepFractions        = classFractions{protein: 0.20, carbohydrate: 0.65, lipid: 0.15}
)

// Monomer partitions within each class, as fractions of the class total.
// Each table sums to 1.
var (
	proteinMonomers = map[string]float64{
		"alanine":   0.18,
		"glycine":   0.22,
		"glutamate": 0.18,
		"serine":    0.14,
		"aspartate": 0.16,
		"leucine":   0.12,
	}
	carbohydrateMonomers = map[string]float64{
		"glucose":   0.40,
		"galactose": 0.25,
		"mannose":   0.20,
		"arabinose": 0.15,
	}
	lipidMonomers = map[string]float64{
		"palmitate": 0.45,
		"oleate":    0.35,
		"glycerol":  0.20,
	}
)

// Dissolved organic matter stoichiometry by depth zone. Ratios grow with
// depth as the remaining material becomes more refractory.
var (
	docCNRatio = map[depthZone]float64{euphotic: 12, mesopelagic: 16, deep: 22}
	docCPRatio = map[depthZone]float64{euphotic: 180, mesopelagic: 300, deep: 500}
)

// OrganicMatterModel computes bulk dissolved and particulate organic
// carbon pools, their biochemical partition into monomer classes, and
// dissolved organic nitrogen and phosphorus.
type OrganicMatterModel struct {
	params *ParameterStore
}

// NewOrganicMatterModel creates an organic matter model backed by the
// given parameter store.
func NewOrganicMatterModel(params *ParameterStore) *OrganicMatterModel {
	return &OrganicMatterModel{params: params}
}

// OrganicResult is the output of the organic matter model: the monomer
// and DON/DOP chemical state plus the bulk pool totals [μmol C/kg].
type OrganicResult struct {
	State ChemicalState
	DOC   float64
	POC   float64
}

// Bulk evaluates the bulk DOC and POC pools [μmol C/kg] for biome at the
// given depth. Each pool decays exponentially from its surface value to a
// deep refractory value with a per-pool e-folding depth scale.
func (m *OrganicMatterModel) Bulk(biome string, depth float64) (doc, poc float64, err error) {
	p, err := m.params.organic(biome)
	if err != nil {
		return 0, 0, err
	}
	z := clampDepth(depth)
	doc = clampConc(p.DOCRefractory + (p.DOCSurface-p.DOCRefractory)*math.Exp(-z/p.DOCScale))
	poc = clampConc(p.POCRefractory + (p.POCSurface-p.POCRefractory)*math.Exp(-z/p.POCScale))
	return doc, poc, nil
}

// State evaluates the organic matter pools for biome at the given depth,
// partitioning the combined organic carbon into named monomers and
// deriving DON and DOP from the bulk DOC through depth-zone C:N and C:P
// ratios.
func (m *OrganicMatterModel) State(biome string, depth float64) (*OrganicResult, error) {
	p, err := m.params.organic(biome)
	if err != nil {
		return nil, err
	}
	doc, poc, err := m.Bulk(biome, depth)
	if err != nil {
		return nil, err
	}

	zone := zoneAt(clampDepth(depth))
	var fracs classFractions
	switch zone {
	case euphotic:
		if p.Productive {
			fracs = euphoticProductive
		} else {
			fracs = euphoticOligotrophic
		}
	case mesopelagic:
		fracs = mesopelagicFractions
	default:
		fracs = deepFractions
	}

	total := doc + poc
	state := make(ChemicalState)
	for name, frac := range proteinMonomers {
		state[name] = clampConc(total * fracs.protein * frac)
	}
	for name, frac := range carbohydrateMonomers {
		state[name] = clampConc(total * fracs.carbohydrate * frac)
	}
	for name, frac := range lipidMonomers {
		state[name] = clampConc(total * fracs.lipid * frac)
	}
	state["don"] = clampConc(doc / docCNRatio[zone])
	state["dop"] = clampConc(doc / docCPRatio[zone])

	return &OrganicResult{State: state, DOC: doc, POC: poc}, nil
}
