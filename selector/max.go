// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import "github.com/ddt-go/ddt/partition"

// Max elects the maximum id among the inserted values. Grounded on
// CGAL::DDT::Maximum_selector.
type Max struct {
	valid bool
	value partition.ID
}

// Insert implements Selector.
func (o *Max) Insert(id partition.ID) {
	if !o.valid || id > o.value {
		o.value = id
		o.valid = true
	}
}

// Clear implements Selector.
func (o *Max) Clear() { o.valid = false }

// Select implements Selector.
func (o *Max) Select() partition.ID {
	if !o.valid {
		panic("selector.Max: Select called with no inserted values")
	}
	return o.value
}

// Value is an alias for Select, kept for callers migrating from the
// original's operator* read.
func (o *Max) Value() partition.ID { return o.Select() }
