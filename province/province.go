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

// Package province resolves geographic locations to marine biogeographic
// provinces. The primary implementation loads a province polygon
// shapefile once into a spatial index and then serves read-only lookups;
// a latitude-band fallback resolver is provided for use without a
// polygon dataset.
package province

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"

	"github.com/oceanmodel/seachem"
)

// Shapefile attribute columns holding the biome name and province code.
const (
	biomeColumn = "BIOME"
	codeColumn  = "PROVCODE"
)

// feature is one province polygon with its attributes.
type feature struct {
	geom.Polygonal
	biome string
	code  string
}

// Repository is a load-once spatial index of marine province polygons.
// After construction it is read-only and safe for concurrent use.
type Repository struct {
	index *rtree.Rtree
}

// NewRepository reads province polygons from the given shapefile,
// reprojects them to geographic (longitude/latitude) coordinates, and
// builds the spatial index. The shapefile must have BIOME and PROVCODE
// attribute columns.
func NewRepository(filename string) (*Repository, error) {
	dec, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, fmt.Errorf("province: opening %s: %w", filename, err)
	}
	defer dec.Close()

	inSR, err := dec.SR()
	if err != nil {
		return nil, fmt.Errorf("province: reading spatial reference of %s: %w", filename, err)
	}
	outSR, err := proj.Parse("+proj=longlat")
	if err != nil {
		return nil, err
	}
	trans, err := inSR.NewTransform(outSR)
	if err != nil {
		return nil, err
	}

	index := rtree.NewTree(25, 50)
	for {
		g, fields, more := dec.DecodeRowFields(biomeColumn, codeColumn)
		if !more {
			break
		}
		gg, err := g.Transform(trans)
		if err != nil {
			return nil, err
		}
		poly, ok := gg.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("province: %s: province shapes must be polygons; got %T", filename, gg)
		}
		index.Insert(&feature{
			Polygonal: poly,
			biome:     fields[biomeColumn],
			code:      fields[codeColumn],
		})
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("province: decoding %s: %w", filename, err)
	}
	return &Repository{index: index}, nil
}

// ResolveBiome returns the biome name and province code of the province
// containing the given location, or seachem.ErrLocationNotResolved if
// the point is not inside any province polygon (for example, on land or
// outside dataset coverage).
func (r *Repository) ResolveBiome(lat, lon float64) (string, string, error) {
	p := geom.Point{X: lon, Y: lat}
	for _, fI := range r.index.SearchIntersect(p.Bounds()) {
		f := fI.(*feature)
		if p.Within(f.Polygonal) != geom.Outside {
			return f.biome, f.code, nil
		}
	}
	return "", "", fmt.Errorf("province: (%g, %g): %w", lat, lon, seachem.ErrLocationNotResolved)
}
