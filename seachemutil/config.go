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

package seachemutil

import (
	"math"
	"os"

	"github.com/lnashier/viper"

	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/province"
)

// nan is the flag default marking a disabled override.
var nan = math.NaN()

// parameterStore returns the built-in parameter tables, with the
// configured parameter file (if any) merged over them.
func parameterStore(cfg *viper.Viper) (*seachem.ParameterStore, error) {
	file := os.ExpandEnv(cfg.GetString("ParameterFile"))
	if file == "" {
		return seachem.DefaultParameterStore(), nil
	}
	log.WithField("file", file).Info("loading parameter tables")
	return seachem.LoadParameterStore(file)
}

// resolver returns the configured biome resolver: a shapefile-backed
// province repository if a shapefile is configured, otherwise the
// latitude-band classifier.
func resolver(cfg *viper.Viper) (seachem.BiomeResolver, error) {
	file := os.ExpandEnv(cfg.GetString("ProvinceShapefile"))
	if file == "" {
		log.Info("no province shapefile configured; using latitude bands")
		return province.LatitudeBands{}, nil
	}
	log.WithField("file", file).Info("loading province polygons")
	return province.NewRepository(file)
}

// generator constructs a seed generator from the configuration.
func generator(cfg *viper.Viper) (*seachem.Generator, error) {
	params, err := parameterStore(cfg)
	if err != nil {
		return nil, err
	}
	r, err := resolver(cfg)
	if err != nil {
		return nil, err
	}
	return seachem.NewGenerator(params, r), nil
}

// overrides collects the measured-value overrides from the
// configuration. A NaN value means the corresponding override is
// disabled.
func overrides(cfg *viper.Viper) seachem.Overrides {
	var o seachem.Overrides
	if v := cfg.GetFloat64("OverrideOxygen"); !math.IsNaN(v) {
		o.Oxygen = seachem.Float(v)
	}
	if v := cfg.GetFloat64("OverridePhosphate"); !math.IsNaN(v) {
		o.Phosphate = seachem.Float(v)
	}
	if v := cfg.GetFloat64("OverrideTemperature"); !math.IsNaN(v) {
		o.Temperature = seachem.Float(v)
	}
	return o
}
