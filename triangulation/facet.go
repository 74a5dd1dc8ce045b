// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulation

import "github.com/ddt-go/ddt/kernel"

// Facet identifies one (D-1)-face of a triangulation: the face of Cell
// opposite the vertex at index Opposite. Grounded on
// CGAL::DDT::Facet_index's (cell, index_of_covertex) pair
// (traits/Facet_index.h), supplemented per spec §9 since the distillation
// only names cell/vertex iteration.
type Facet struct {
	Cell     kernel.Cell
	Opposite int
}

// Vertices returns the facet's own D vertices: Cell with the vertex at
// Opposite removed.
func (f Facet) Vertices() []kernel.Vertex {
	out := make([]kernel.Vertex, 0, len(f.Cell)-1)
	for i, v := range f.Cell {
		if i == f.Opposite {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Facets enumerates every (cell, covertex) facet of every finite cell.
// Grounded on Facet_index.h's increment rule (covertex index 0..dim, then
// advance to the next cell), realized here as a flat slice rather than a
// lazy iterator since Go callers just range over it.
func (t *Triangulation) Facets() []Facet {
	cells := t.kern.FiniteCells()
	out := make([]Facet, 0, len(cells)*(t.dim+1))
	for _, c := range cells {
		for i := range c {
			out = append(out, Facet{Cell: c, Opposite: i})
		}
	}
	return out
}
