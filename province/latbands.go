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

package province

import (
	"fmt"
	"math"

	"github.com/oceanmodel/seachem"
)

// LatitudeBands is a deterministic biome resolver that classifies
// locations by latitude band alone: |lat| ≥ 60° is Polar, |lat| ≥ 30° is
// Westerlies, and the tropics are Trade-Winds. It never resolves the
// Coastal biome, which requires polygon geometry. It is intended for
// tests and as a default when no province shapefile is available.
type LatitudeBands struct{}

// ResolveBiome implements seachem.BiomeResolver. The province code is a
// synthetic band identifier. Out-of-range coordinates are an
// ErrLocationNotResolved failure.
func (LatitudeBands) ResolveBiome(lat, lon float64) (string, string, error) {
	if math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return "", "", fmt.Errorf("province: (%g, %g): %w", lat, lon, seachem.ErrLocationNotResolved)
	}
	switch {
	case math.Abs(lat) >= 60:
		return "Polar", "BAND-POLR", nil
	case math.Abs(lat) >= 30:
		return "Westerlies", "BAND-WEST", nil
	default:
		return "Trade-Winds", "BAND-TRAD", nil
	}
}
