// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangulation owns one tile's local Delaunay triangulation: the
// kernel plus the per-vertex (home tile, info) data, the tile's bounding
// box, and the bootstrap/splay-time queries (axis extreme points, bbox
// points, finite neighbors) the star-splaying algorithm drives. Grounded on
// CGAL::DDT::Tile and CGAL::DDT::Data.
package triangulation

import (
	"encoding/gob"

	"github.com/ddt-go/ddt/partition"
)

// Data is the payload every vertex in any tile carries: the home tile of the
// vertex (invariant after first insertion, per spec §3) and an opaque,
// possibly-empty user payload. Grounded on CGAL::DDT::Data<Id,Flag>
// (property_map/Data.h / data.h), generalized from a flag to an arbitrary
// Info value.
type Data struct {
	Home partition.ID
	Info any
}

func init() {
	// Register the zero-value Info kinds InfoMap callers are most likely to
	// plug in, so gob can round-trip a Data.Info field that was left as the
	// zero interface value (nil) or a plain empty struct.
	gob.Register(struct{}{})
}
