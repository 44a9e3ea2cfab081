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

// Package seachemutil wires the seachem seed generator into a
// command-line interface.
package seachemutil

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oceanmodel/seachem"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to SeaChem.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ParameterFile",
			usage: `
              ParameterFile is the path to a TOML file of per-biome parameter
              tables that are merged over the built-in defaults. Biomes given
              in the file replace the built-in entry wholesale.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ProvinceShapefile",
			usage: `
              ProvinceShapefile is the path to a marine province polygon
              shapefile with BIOME and PROVCODE attribute columns. If empty,
              a latitude-band biome classification is used instead.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "lat",
			usage: `
              lat is the latitude of the location of interest [degrees north].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "lon",
			usage: `
              lon is the longitude of the location of interest [degrees east].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "depth",
			usage: `
              depth is the depth of interest [m].`,
			shorthand:  "d",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags()},
		},
		{
			name: "MaxDepth",
			usage: `
              MaxDepth is the maximum depth of the profile sweep [m].`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "Step",
			usage: `
              Step is the depth step of the profile sweep [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "Keys",
			usage: `
              Keys is the list of canonical seed keys collected by the
              profile sweep.`,
			defaultVal: []string{"o2_e", "pi_e", "no3_e", "no2_e", "nh4_e", "co2_e"},
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "OverrideOxygen",
			usage: `
              OverrideOxygen replaces the modeled dissolved oxygen with a
              measured value [μmol/kg]. The override propagates to all
              oxygen-dependent models. NaN disables the override.`,
			defaultVal: nan,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "OverridePhosphate",
			usage: `
              OverridePhosphate replaces the modeled phosphate with a measured
              value [μmol/kg]. The override propagates to silicate and the
              redox and micronutrient models. NaN disables the override.`,
			defaultVal: nan,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "OverrideTemperature",
			usage: `
              OverrideTemperature replaces the biome default sea surface
              temperature [°C] in the seawater chemistry model. NaN disables
              the override.`,
			defaultVal: nan,
			flagsets:   []*pflag.FlagSet{seedCmd.Flags(), profileCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SEACHEM")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, v, option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(seedCmd)
	Root.AddCommand(profileCmd)
	Root.AddCommand(biomesCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("seachem: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "seachem",
	Short: "A marine chemistry seed generator.",
	Long: `SeaChem synthesizes internally consistent, depth-resolved marine chemistry
profiles for a given ocean location, for use as boundary conditions in
metabolic and ecosystem models. Use the subcommands specified below to access
the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SEACHEM_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of SeaChem.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("SeaChem v%s\n", seachem.Version)
	},
	DisableAutoGenTag: true,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a chemical seed for one location and depth.",
	Long: `seed resolves the biome at the given location, evaluates the profile model
cascade at the given depth, and writes the standardized seed as JSON to
standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generator(Cfg)
		if err != nil {
			return err
		}
		seed, err := g.Seed(seachem.SeedRequest{
			Latitude:  Cfg.GetFloat64("lat"),
			Longitude: Cfg.GetFloat64("lon"),
			Depth:     Cfg.GetFloat64("depth"),
			Overrides: overrides(Cfg),
		})
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"biome":    seed.Metadata.Biome,
			"province": seed.Metadata.ProvinceCode,
		}).Info("generated seed")
		return writeJSON(cmd, seed)
	},
	DisableAutoGenTag: true,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Generate a depth profile at one location.",
	Long: `profile sweeps depth from the surface to MaxDepth at the fixed Step,
generating a seed at each depth and collecting the requested keys. The
collected profile is written as JSON to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := generator(Cfg)
		if err != nil {
			return err
		}
		keys, err := cast.ToStringSliceE(Cfg.Get("Keys"))
		if err != nil {
			return err
		}
		p, err := g.DepthProfile(seachem.ProfileRequest{
			Latitude:  Cfg.GetFloat64("lat"),
			Longitude: Cfg.GetFloat64("lon"),
			MaxDepth:  Cfg.GetFloat64("MaxDepth"),
			Step:      Cfg.GetFloat64("Step"),
			Keys:      keys,
			Overrides: overrides(Cfg),
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd, p)
	},
	DisableAutoGenTag: true,
}

var biomesCmd = &cobra.Command{
	Use:   "biomes",
	Short: "List the biomes in the parameter tables.",
	Long: `biomes lists the names of the biomes that are present in every model's
parameter table, after merging any supplied parameter file over the built-in
defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parameterStore(Cfg)
		if err != nil {
			return err
		}
		for _, name := range params.Biomes() {
			cmd.Println(name)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// Execute runs the root command, logging any error.
func Execute() {
	if err := Root.Execute(); err != nil {
		log.WithError(err).Error("seachem failed")
		os.Exit(1)
	}
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
