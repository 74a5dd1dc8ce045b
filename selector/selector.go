// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector implements the Selector contract: a small accumulator
// that elects exactly one tile id from a multiset of candidate ids (the
// homes of a simplex's finite vertices), deterministically and independent
// of insertion order. Grounded on
// CGAL::DDT::{Minimum,Maximum,Median}_selector.
package selector

import "github.com/ddt-go/ddt/partition"

// Selector accumulates a multiset of ids and elects one of them.
//
// spec §9's first open question notes the original source exposes the read
// operation inconsistently, sometimes as operator* and sometimes as
// select(); this interface normalizes on Select, and every implementation
// below also exposes Value as a one-line alias for callers migrating from
// the operator*-shaped contract.
type Selector interface {
	// Insert adds id to the multiset.
	Insert(id partition.ID)
	// Clear empties the multiset.
	Clear()
	// Select returns the elected id. Undefined if Insert was never called
	// since the last Clear.
	Select() partition.ID
}

// New constructs a Selector by name: "min", "max" or "median".
func New(kind string) Selector {
	switch kind {
	case "max":
		return &Max{}
	case "median":
		return &Median{}
	default:
		return &Min{}
	}
}
