// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel defines the contract of the Delaunay kernel that the ddt
// engine treats as a trusted external collaborator (spec §1, §6.1): a
// triangulation is assumed Delaunay-correct after every Insert, and the
// engine never re-derives geometric predicates itself.
//
// Simple, the kernel implementation in this package, is a reference/test
// stand-in only: a brute-force incremental Bowyer-Watson triangulation that
// works in any dimension D by solving a D x D circumcenter system per
// candidate cell. It exists so the rest of the engine is testable without a
// production geometry library (e.g. a CGAL binding) wired in; it is not
// claimed to be numerically robust or fast enough for production use.
package kernel

import (
	"io"

	"github.com/ddt-go/ddt/geom"
)

// Vertex is an opaque handle into a Kernel's vertex set. Non-negative
// handles are real, finite vertices; negative handles are part of the
// kernel's internal unbounded hull scaffolding and are never finite.
type Vertex int

// Cell is a D+1-tuple of vertex handles forming one simplex of the
// triangulation.
type Cell []Vertex

// Kernel is the external Delaunay triangulation contract consumed by
// triangulation.Triangulation. See the package doc for the scope of the
// reference implementation, Simple.
type Kernel interface {
	// Dim returns the ambient dimension D.
	Dim() int

	// Insert adds p, returning its vertex handle and whether a new vertex
	// was created (false when p duplicates an existing point exactly).
	Insert(p geom.Point) (Vertex, bool)

	// BulkInsert inserts every point in pts, returning the handles of the
	// vertices that were newly created (duplicates are omitted).
	BulkInsert(pts []geom.Point) []Vertex

	// IsFinite reports whether v is a real, finite vertex.
	IsFinite(v Vertex) bool

	// Point returns the coordinates of a finite vertex. Undefined for an
	// infinite vertex.
	Point(v Vertex) geom.Point

	// Neighbors returns the vertices adjacent to v in the 1-skeleton,
	// including infinite ones; callers filter with IsFinite as needed.
	Neighbors(v Vertex) []Vertex

	// Cells returns every simplex of the triangulation, finite or not.
	Cells() []Cell

	// FiniteCells returns only the simplices whose vertices are all finite.
	FiniteCells() []Cell

	// Validate runs the kernel's internal consistency check (e.g. that
	// every cell is still Delaunay with respect to every live vertex).
	Validate() error

	// Clone returns an independent deep copy.
	Clone() Kernel

	// EncodeTo and DecodeFrom serialize and restore the kernel's full state,
	// binary-preferred per spec §4.3.
	EncodeTo(w io.Writer) error
	DecodeFrom(r io.Reader) error
}

// Factory constructs an empty Kernel of the given dimension.
type Factory func(dim int) Kernel
