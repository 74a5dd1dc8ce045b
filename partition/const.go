// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"strconv"

	"github.com/ddt-go/ddt/geom"
)

// Const is the single-tile partitioner: every point belongs to the same id.
// Grounded on CGAL::DDT::Const_partitioner.
type Const struct {
	id ID
}

// NewConst returns a Const partitioner that always answers id.
func NewConst(id ID) Const { return Const{id: id} }

// ID implements Partitioner.
func (c Const) ID(p geom.Point) ID { return c.id }

// Size implements Partitioner.
func (c Const) Size() int { return 1 }

// Each implements Partitioner.
func (c Const) Each(yield func(ID) bool) { yield(c.id) }

func (c Const) String() string { return "Const(" + strconv.Itoa(int(c.id)) + ")" }
