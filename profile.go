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

	"gonum.org/v1/gonum/floats"
)

// ProfileRequest describes a depth sweep at one location: seeds are
// generated from the surface to MaxDepth at the fixed Step, and the named
// Keys are collected per depth.
type ProfileRequest struct {
	Latitude  float64
	Longitude float64
	MaxDepth  float64 // m
	Step      float64 // m, must be > 0
	Keys      []string
	Overrides Overrides
}

// Profile is a depth-resolved collection of seed values: Depths and each
// entry of Values are parallel slices.
type Profile struct {
	Depths []float64            `json:"depths_m"`
	Values map[string][]float64 `json:"values"`
}

// DepthProfile sweeps depth from 0 to req.MaxDepth at req.Step, calling
// Seed at each depth and collecting the requested keys. It is purely a
// consumer of Seed: any failure at any depth fails the whole sweep.
func (g *Generator) DepthProfile(req ProfileRequest) (*Profile, error) {
	if req.Step <= 0 {
		return nil, fmt.Errorf("seachem: depth profile step must be positive; got %g", req.Step)
	}
	if req.MaxDepth < 0 {
		return nil, fmt.Errorf("seachem: depth profile maximum depth must be non-negative; got %g", req.MaxDepth)
	}
	n := int(req.MaxDepth/req.Step) + 1
	depths := make([]float64, n)
	if n > 1 {
		floats.Span(depths, 0, float64(n-1)*req.Step)
	}

	p := &Profile{
		Depths: depths,
		Values: make(map[string][]float64, len(req.Keys)),
	}
	for _, key := range req.Keys {
		p.Values[key] = make([]float64, n)
	}
	for i, depth := range depths {
		seed, err := g.Seed(SeedRequest{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Depth:     depth,
			Overrides: req.Overrides,
		})
		if err != nil {
			return nil, err
		}
		for _, key := range req.Keys {
			v, ok := seed.State[key]
			if !ok {
				return nil, fmt.Errorf("seachem: depth profile: seed has no key %q", key)
			}
			p.Values[key][i] = v
		}
	}
	return p, nil
}
