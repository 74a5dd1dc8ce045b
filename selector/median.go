// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"sort"

	"github.com/ddt-go/ddt/partition"
)

// Median elects the median id among the inserted values, counting
// multiplicities. Grounded on CGAL::DDT::Median_selector, with one
// deliberate deviation: the original's nth_element(values.size()/2) picks
// the upper median on an even-sized multiset; spec.md §4.2 calls instead for
// the lower median ("with even multiset sizes, the lower median is
// chosen") so that a simplex evenly split between two tiles is main in the
// lower-id tile rather than the higher one. This keeps main-id election
// deterministic and, for a 2-way split, biased toward the smaller id rather
// than toward whichever id happens to sort last.
type Median struct {
	values []partition.ID
}

// Insert implements Selector.
func (o *Median) Insert(id partition.ID) {
	o.values = append(o.values, id)
}

// Clear implements Selector.
func (o *Median) Clear() { o.values = o.values[:0] }

// Select implements Selector.
func (o *Median) Select() partition.ID {
	if len(o.values) == 0 {
		panic("selector.Median: Select called with no inserted values")
	}
	sorted := make([]partition.ID, len(o.values))
	copy(sorted, o.values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	lower := (len(sorted) - 1) / 2
	return sorted[lower]
}

// Value is an alias for Select, kept for callers migrating from the
// original's operator* read.
func (o *Median) Value() partition.ID { return o.Select() }
