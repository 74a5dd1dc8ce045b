// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Bbox is an axis-aligned bounding box in D dimensions. It is modeled on
// CGAL::DDT::Bbox (bbox.h): an empty box starts at (+inf, -inf) per axis so
// that accumulating points via Expand always produces the right
// answer, including for the first point inserted.
type Bbox struct {
	Min, Max []float64
}

// NewBbox returns an empty bbox of dimension d, ready for accumulation.
func NewBbox(d int) Bbox {
	min := make([]float64, d)
	max := make([]float64, d)
	for i := 0; i < d; i++ {
		min[i] = math.Inf(1)
		max[i] = math.Inf(-1)
	}
	return Bbox{Min: min, Max: max}
}

// Dim returns the number of axes.
func (b Bbox) Dim() int { return len(b.Min) }

// Empty reports whether the bbox has never been expanded.
func (b Bbox) Empty() bool {
	for i := range b.Min {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}

// Expand grows b, in place, to also cover p.
func (b Bbox) Expand(p Point) {
	for i := range b.Min {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union grows b, in place, to also cover other.
func (b Bbox) Union(other Bbox) {
	for i := range b.Min {
		if other.Min[i] < b.Min[i] {
			b.Min[i] = other.Min[i]
		}
		if other.Max[i] > b.Max[i] {
			b.Max[i] = other.Max[i]
		}
	}
}

// Contains reports whether p lies within [Min, Max] on every axis.
func (b Bbox) Contains(p Point) bool {
	for i := range b.Min {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// OnBoundary reports whether p touches the bbox surface on at least one
// axis, within tol. Used to find the "bbox points" of a tile (spec §4.3
// get_bbox_points): vertices lying on the current bbox.
func (b Bbox) OnBoundary(p Point, tol float64) bool {
	for i := range b.Min {
		if math.Abs(p[i]-b.Min[i]) <= tol || math.Abs(p[i]-b.Max[i]) <= tol {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of b.
func (b Bbox) Clone() Bbox {
	min := make([]float64, len(b.Min))
	max := make([]float64, len(b.Max))
	copy(min, b.Min)
	copy(max, b.Max)
	return Bbox{Min: min, Max: max}
}
