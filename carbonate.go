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

const (
	// preindustrialPCO2 is the pre-industrial atmospheric CO2 partial
	// pressure [μatm] used as the pH reference.
	preindustrialPCO2 = 280

	// referenceTemperature [°C] for the pH temperature adjustment.
	referenceTemperature = 15

	// respiratoryCORatio converts apparent oxygen utilization to
	// respired CO2 [mol C per mol O2].
	respiratoryCORatio = 0.77

	// pH sensitivities to pCO2 [1/μatm] and temperature [1/°C].
	phPCO2Coeff = 0.001
	phTempCoeff = 0.008

	// Henry's law solubility: K0 at 25 °C [mol/(L·atm)] and the
	// van 't Hoff temperature dependence [K].
	henryK025      = 0.034
	henryVantHoffK = 2400
)

// SeawaterChemistryModel computes dissolved CO2 and pH. Dissolved CO2 is
// the temperature-dependent Henry's law equilibrium with atmospheric
// pCO2 plus a biological pump correction from apparent oxygen
// utilization; pH is a linearized adjustment of a biome baseline for
// pCO2 and temperature deviations.
type SeawaterChemistryModel struct {
	params *ParameterStore
}

// NewSeawaterChemistryModel creates a seawater chemistry model backed by
// the given parameter store.
func NewSeawaterChemistryModel(params *ParameterStore) *SeawaterChemistryModel {
	return &SeawaterChemistryModel{params: params}
}

// CarbonateResult holds the seawater CO2 system outputs.
type CarbonateResult struct {
	CO2 float64 // dissolved CO2, μmol/kg
	PH  float64 // rounded to 2 decimal places
}

// solubility is the Henry's law solubility constant K0 [mol/(L·atm)] at
// temperature t [°C].
func solubility(t float64) float64 {
	return henryK025 * math.Exp(henryVantHoffK*(1/(t+273.15)-1/298.15))
}

// Evaluate computes dissolved CO2 and pH for biome, given the
// already-resolved oxygen concentration at depth [μmol/kg]. If
// temperature is non-nil it overrides the biome's default sea surface
// temperature for both the CO2 solubility and the pH adjustment.
func (m *SeawaterChemistryModel) Evaluate(biome string, oxygen float64, temperature *float64) (*CarbonateResult, error) {
	p, err := m.params.carbonate(biome)
	if err != nil {
		return nil, err
	}
	ox, err := m.params.oxygen(biome)
	if err != nil {
		return nil, err
	}

	t := p.SST
	if temperature != nil {
		t = *temperature
	}

	// Equilibrium with the atmosphere: K0 [mol/(L·atm)] times pCO2
	// [μatm] gives μmol/L; divide by density for μmol/kg.
	co2 := solubility(t) * p.PCO2 / seawaterDensity

	// Biological pump: respiration adds CO2 in proportion to the
	// apparent oxygen utilization.
	aou := math.Max(0, ox.SurfaceSaturation-clampConc(oxygen))
	co2 += respiratoryCORatio * aou

	ph := p.PHBase - phPCO2Coeff*(p.PCO2-preindustrialPCO2) - phTempCoeff*(t-referenceTemperature)
	ph = math.Round(ph*100) / 100

	return &CarbonateResult{CO2: clampConc(co2), PH: ph}, nil
}
