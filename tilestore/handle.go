// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tilestore

import (
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/triangulation"
)

// Handle is the lazy pin-and-load iterator wrapper spec §4.6 calls "the
// only supported way to touch a tile from outside the container":
// construction pins (and, if needed, loads) the tile; Close unpins it.
// Modeled on the teacher's deterministic defer-cleanup idiom
// (fem.Start/defer fem.End, out.Start/defer out.End) and on the original
// source's Usage<PairIterator> dereference-pins/destruction-unpins
// contract (Tile.h).
type Handle struct {
	store *Store
	id    partition.ID
	tri   *triangulation.Triangulation
}

// Open pins and loads id from s, returning a Handle the caller must Close
// exactly once (typically via defer).
func Open(s *Store, id partition.ID) *Handle {
	return &Handle{store: s, id: id, tri: s.Pin(id)}
}

// Tri returns the pinned triangulation. Valid until Close.
func (h *Handle) Tri() *triangulation.Triangulation { return h.tri }

// ID returns the handle's tile id.
func (h *Handle) ID() partition.ID { return h.id }

// Close unpins the tile, making it evictable again.
func (h *Handle) Close() {
	h.store.Unpin(h.id)
}
