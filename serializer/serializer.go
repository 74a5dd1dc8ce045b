// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serializer implements the durable-storage contract of spec §4.5:
// a tile is either held only in memory (serializer.None) or backed by a
// file under a prefix directory (serializer.File). Grounded on
// CGAL::DDT::{No,File}_serializer and on gofem's own gob-vs-text Encoder
// choice in fem/fileio.go (GetEncoder/GetDecoder).
package serializer

import (
	"io"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
)

// Streamer is anything able to serialize and restore its own full state —
// satisfied by *triangulation.Triangulation. Serializer is deliberately
// written against this narrow interface rather than kernel.Kernel
// directly, so the native stream includes whatever a tile needs to
// restore completely (kernel state and per-vertex home/info Data), not
// just the geometry.
type Streamer interface {
	EncodeTo(w io.Writer) error
	DecodeFrom(r io.Reader) error
}

// Serializer is the durable-storage contract every tilestore.Store uses to
// load and evict tiles. Every method must be safe for concurrent calls
// with distinct ids (spec §5 R3); calls for the same id are never made
// concurrently because the tile container only calls in while holding
// that tile's pin.
type Serializer interface {
	// HasTile reports whether durable storage holds id.
	HasTile(id partition.ID) bool

	// LoadMeta cheaply loads just id's bounding box, without touching the
	// (possibly large) triangulation stream. Returns false if id is not
	// present.
	LoadMeta(id partition.ID) (geom.Bbox, bool)

	// Load fully restores id's state into dst. Returns false if id is not
	// present.
	Load(id partition.ID, dst Streamer) bool

	// Save durably persists id's bbox and state. Returns false on I/O
	// failure; the caller (tilestore.Store) treats false as "eviction
	// aborted, tile stays resident" per spec §4.6 invariant (d).
	Save(id partition.ID, bbox geom.Bbox, src Streamer) bool
}
