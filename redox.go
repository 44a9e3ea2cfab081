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

// RedoxSpeciationModel computes nitrogen, metal, and sulfur speciation as
// continuous functions of the dissolved oxygen concentration.
//
// Every anaerobic process is gated by the continuous inhibition factor
// k/(k+O2) with a process-specific half-saturation constant, rather than
// by discrete oxic/suboxic/anoxic thresholds. The continuous form keeps
// every species profile free of discontinuities at threshold crossings
// and differentiable with respect to oxygen.
type RedoxSpeciationModel struct {
	params *ParameterStore
}

// NewRedoxSpeciationModel creates a redox speciation model backed by the
// given parameter store.
func NewRedoxSpeciationModel(params *ParameterStore) *RedoxSpeciationModel {
	return &RedoxSpeciationModel{params: params}
}

// Inhibition is the continuous oxygen inhibition factor k/(k+o2): 0 at
// high oxygen, approaching 1 as oxygen approaches 0. k is the
// half-saturation oxygen concentration of the inhibited process.
func Inhibition(o2, k float64) float64 {
	return k / (k + clampConc(o2))
}

// State computes the redox-sensitive species for biome at the given depth
// [m], using the already-resolved oxygen and phosphate concentrations
// [μmol/kg] from the upstream models (or their measured overrides).
//
// The returned keys are nitrate, nitrite, ammonium, iron, manganese,
// sulfate, and sulfide, all in μmol/kg.
func (m *RedoxSpeciationModel) State(biome string, depth, oxygen, phosphate float64) (ChemicalState, error) {
	p, err := m.params.redox(biome)
	if err != nil {
		return nil, err
	}
	// The OMZ geometry is shared with the oxygen model, so an unknown
	// biome in the oxygen table also fails here.
	ox, err := m.params.oxygen(biome)
	if err != nil {
		return nil, err
	}

	z := clampDepth(depth)
	o2 := clampConc(oxygen)
	fDenit := Inhibition(o2, p.KDenit)

	// Nitrate: the potential (no-loss) concentration from the Redfield
	// N:P ratio, minus a denitrification deficit localized at the OMZ.
	potential := p.NPRatio * clampConc(phosphate)
	deficitMag := potential * p.MaxDenitrification * fDenit
	nitrate := clampConc(potential - deficitMag*gauss(z, ox.OMZDepth, ox.OMZWidth))

	// Nitrite: the primary maximum near the base of the euphotic zone
	// plus a secondary maximum driven by the nitrate deficit.
	pnm := p.PNMAmpFrac * potential * gauss(z, p.PNMDepth, p.PNMWidth)
	snm := p.SNMRatio * deficitMag * gauss(z, ox.OMZDepth, ox.OMZWidth*p.SNMWidthRatio)
	nitrite := pnm + snm

	// Ammonium: background plus shallow remineralization, plus
	// accumulation in the OMZ where nitrification is suppressed.
	ammonium := p.AmmoniumSurface +
		p.ShallowPeakHeight*gauss(z, p.ShallowPeakDepth, p.ShallowPeakWidth) +
		p.DeepPeakHeight*fDenit*gauss(z, ox.OMZDepth, ox.OMZWidth)

	// Anammox consumes nitrite and ammonium jointly; without this sink
	// the secondary nitrite maximum and the OMZ ammonium peak would
	// coexist with no loss pathway.
	loss := p.KAnammox * nitrite * ammonium * fDenit
	nitrite = clampConc(nitrite - loss)
	ammonium = clampConc(ammonium - loss)

	// Dissolved metals interpolate between the trace oxic baseline and
	// the reducing-condition maximum. Parameters are nmol/kg; outputs
	// are re-based to μmol/kg.
	fMetal := Inhibition(o2, p.KMetal)
	iron := (p.FeOxic + (p.FeMax-p.FeOxic)*fMetal) / 1000
	manganese := (p.MnOxic + (p.MnMax-p.MnOxic)*fMetal) / 1000

	// Sulfate reduction.
	sulfide := p.SulfateBaseline * p.MaxSulfReduction * Inhibition(o2, p.KSulfate)
	sulfate := p.SulfateBaseline - sulfide

	return ChemicalState{
		"nitrate":   nitrate,
		"nitrite":   nitrite,
		"ammonium":  ammonium,
		"iron":      clampConc(iron),
		"manganese": clampConc(manganese),
		"sulfate":   clampConc(sulfate),
		"sulfide":   clampConc(sulfide),
	}, nil
}
