// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ddt-go/ddt/triangulation"
)

// geoFeatureCollection and geoFeature mirror the minimal subset of RFC
// 7946 GeoJSON this package needs: one Polygon (triangle) feature per
// finite cell, tagged with its home tile.
// Unlike WriteVTU/WritePLY, GeoJSON is built with encoding/json rather
// than hand-written text, since it is a small, irregularly-nested
// document rather than a flat, bulk numeric array.
type geoFeatureCollection struct {
	Type     string        `json:"type"`
	Features []geoFeature  `json:"features"`
}

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoGeometry    `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoGeometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// WriteGeoJSON writes tri's finite cells as a GeoJSON FeatureCollection
// of Polygon features, one per cell, each tagged with the home tile of
// its first vertex. Only dim 2 is supported: GeoJSON coordinates are
// 2D/2.5D by convention.
func WriteGeoJSON(w io.Writer, tri *triangulation.Triangulation) error {
	if tri.Dim() != 2 {
		return fmt.Errorf("iox.WriteGeoJSON: GeoJSON export requires dim 2, got %d", tri.Dim())
	}
	fc := geoFeatureCollection{Type: "FeatureCollection"}
	for _, c := range tri.Kernel().FiniteCells() {
		ring := make([][]float64, 0, len(c)+1)
		for _, v := range c {
			p := tri.Kernel().Point(v)
			ring = append(ring, []float64{p[0], p[1]})
		}
		if len(ring) > 0 {
			ring = append(ring, ring[0]) // GeoJSON polygons must be closed rings
		}
		home := tri.Home(c[0])
		fc.Features = append(fc.Features, geoFeature{
			Type:       "Feature",
			Geometry:   geoGeometry{Type: "Polygon", Coordinates: [][][]float64{ring}},
			Properties: map[string]any{"home": int(home)},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
