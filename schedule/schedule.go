// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule implements the two scheduling primitives of spec §4.7
// over a set of tile ids: ForEach (run once per tile, reduce the results)
// and ForEachRec (repeat ForEach until a pass reduces to the zero value —
// the star-splaying loop's termination detector). Grounded on
// CGAL::DDT::{Sequential,Multithread,TBB}_scheduler
// (partitioner/*_scheduler analogues under original_source/DDT), realized
// as the two variants spec §5 singles out as needing genuinely distinct
// Go shapes: Sequential and Pool (a goroutine worker pool, the Go-idiomatic
// replacement for Multithread/TBB named in spec §4.7 — see SPEC_FULL.md §5
// for why no third, task-graph variant exists in this module).
package schedule

import "github.com/ddt-go/ddt/partition"

// Scheduler runs a per-tile function over a set of tile ids, combining
// results with a caller-supplied monoid (reduce, init).
type Scheduler interface {
	// ForEach invokes f(id) exactly once per id in ids, combining results
	// left-to-right-equivalent (implementations may run f concurrently, but
	// the reduce must be associative/commutative for the result to be
	// well-defined) with reduce, seeded at init.
	ForEach(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int

	// ForEachRec repeatedly calls ForEach over ids until one pass reduces to
	// init (the "zero" value for reduce), i.e. until a pass makes no
	// further progress. It returns the number of passes run.
	ForEachRec(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int
}
