// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the point and bounding-box algebra shared by every
// other ddt package: an immutable D-dimensional coordinate type with a
// deterministic order, and an axis-aligned bounding box that tiles and
// triangulations accumulate as vertices are inserted.
package geom

import (
	"fmt"
	"math"
)

// Point is an immutable D-dimensional coordinate. D may be 2, 3 or any other
// dimension; nothing in this package assumes a fixed dimension.
type Point []float64

// NewPoint copies c into a new Point so that later mutation of the caller's
// slice cannot change a Point after construction.
func NewPoint(c ...float64) Point {
	p := make(Point, len(c))
	copy(p, c)
	return p
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// At returns the i-th coordinate.
func (p Point) At(i int) float64 { return p[i] }

// Equal reports whether p and q have the same coordinates exactly. The
// Partitioner's output, not coordinate re-comparison, is what downstream code
// trusts (spec §4.1); this equality is used only to detect literal duplicate
// points on insertion.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Less gives a deterministic lexicographic order over points, used to make
// test output and tile-local vertex enumeration reproducible.
func (p Point) Less(q Point) bool {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return len(p) < len(q)
}

// String renders p as "(x, y, z)".
func (p Point) String() string {
	s := "("
	for i, c := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g", c)
	}
	return s + ")"
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Dist2 returns the squared Euclidean distance between p and q.
func Dist2(p, q Point) float64 {
	var s float64
	for i := range p {
		d := p[i] - q[i]
		s += d * d
	}
	return s
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Sqrt(Dist2(p, q))
}
