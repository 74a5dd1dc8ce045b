// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition implements the Partitioner contract of the ddt engine: a
// total, deterministic, pure function from a point to the id of the tile it
// belongs to. Concrete variants are grounded on
// CGAL::DDT::{Const,Grid,Random}_partitioner.
package partition

import "github.com/ddt-go/ddt/geom"

// ID identifies a tile. It is totally ordered and survives both text and
// binary serialization (it is a plain int, which encoding/gob and
// strconv.Itoa already round-trip exactly).
type ID int

// Partitioner assigns every point to exactly one tile id (spec invariant I5)
// and enumerates the valid ids. Implementations must never panic or error:
// a Partitioner is a pure function.
type Partitioner interface {
	// ID returns the tile that owns p.
	ID(p geom.Point) ID
	// Size returns the number of valid ids.
	Size() int
	// Each calls yield once per valid id, in ascending order, stopping early
	// if yield returns false. This is the idiomatic Go replacement for the
	// original's begin()/end() iterator pair.
	Each(yield func(ID) bool)
}

// IDs collects every id produced by p.Each into a slice, in ascending order.
func IDs(p Partitioner) []ID {
	ids := make([]ID, 0, p.Size())
	p.Each(func(id ID) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}
