// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulation

import (
	"fmt"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
)

// Triangulation owns one tile's local Delaunay triangulation: a kernel
// instance, the (home, info) Data of every vertex it holds (local or
// foreign), and the running bounding box of its local vertices. Grounded on
// CGAL::DDT::Tile.
type Triangulation struct {
	id   partition.ID
	dim  int
	kern kernel.Kernel
	data map[kernel.Vertex]Data
	bbox geom.Bbox
}

// New constructs an empty triangulation for tile id, of dimension dim, whose
// geometric kernel is built by factory.
func New(id partition.ID, dim int, factory kernel.Factory) *Triangulation {
	return &Triangulation{
		id:   id,
		dim:  dim,
		kern: factory(dim),
		data: make(map[kernel.Vertex]Data),
		bbox: geom.NewBbox(dim),
	}
}

// ID returns the tile's identity.
func (t *Triangulation) ID() partition.ID { return t.id }

// Dim returns the ambient dimension.
func (t *Triangulation) Dim() int { return t.dim }

// Kernel exposes the underlying Delaunay kernel, for callers (e.g. iox
// writers) that need direct cell/vertex access.
func (t *Triangulation) Kernel() kernel.Kernel { return t.kern }

// Bbox returns the running bounding box of this tile's local vertices
// (spec §3: "a bounding box of the points whose home is this tile").
func (t *Triangulation) Bbox() geom.Bbox { return t.bbox }

// BboxOf returns the degenerate, single-point bbox of vertex v, so that
// callers can accumulate it into Bbox() the same way the original source's
// insert.h does ("tri.bbox() += tri.bbox(v)").
func (t *Triangulation) BboxOf(v kernel.Vertex) geom.Bbox {
	b := geom.NewBbox(t.dim)
	b.Expand(t.kern.Point(v))
	return b
}

// VertexData returns the Data attached to v.
func (t *Triangulation) VertexData(v kernel.Vertex) Data { return t.data[v] }

// Home returns the home tile of vertex v.
func (t *Triangulation) Home(v kernel.Vertex) partition.ID { return t.data[v].Home }

// NumVertices returns the number of finite vertices currently held (local
// and foreign).
func (t *Triangulation) NumVertices() int { return len(t.data) }

// Insert attempts to insert every point in pts, tagging newly created
// vertex i with homes[i] and infos[i] (infos may be nil). Duplicate
// coordinates are silent no-ops (spec §7). When recordInserted is false
// the returned slice is nil, saving the caller the bookkeeping cost when
// it does not need the list. Grounded on
// CGAL::DDT::Tile_triangulation::insert via insert.h's splay_tile.
func (t *Triangulation) Insert(pts []geom.Point, homes []partition.ID, infos []any, recordInserted bool) []kernel.Vertex {
	var inserted []kernel.Vertex
	for i, p := range pts {
		v, created := t.kern.Insert(p)
		if !created {
			continue
		}
		var info any
		if infos != nil {
			info = infos[i]
		}
		home := homes[i]
		t.data[v] = Data{Home: home, Info: info}
		if home == t.id {
			t.bbox.Expand(p)
		}
		if recordInserted {
			inserted = append(inserted, v)
		}
	}
	return inserted
}

// InsertLocal is Insert specialized for the common case of a batch of
// points whose home is this tile (the initial bootstrap partition, before
// any cross-tile traffic exists).
func (t *Triangulation) InsertLocal(pts []geom.Point, infos []any, recordInserted bool) []kernel.Vertex {
	homes := make([]partition.ID, len(pts))
	for i := range homes {
		homes[i] = t.id
	}
	return t.Insert(pts, homes, infos, recordInserted)
}

// FiniteNeighbors returns, for every finite neighbor n of any vertex in vs
// that is not itself in vs, the mapping from home(n) to the set of such n,
// deduplicated. Grounded on CGAL::DDT::Tile_triangulation::finite_neighbors
// (called get_finite_neighbors in insert.h).
func (t *Triangulation) FiniteNeighbors(vs []kernel.Vertex) map[partition.ID][]kernel.Vertex {
	in := make(map[kernel.Vertex]bool, len(vs))
	for _, v := range vs {
		in[v] = true
	}
	seen := make(map[kernel.Vertex]bool)
	out := make(map[partition.ID][]kernel.Vertex)
	for _, v := range vs {
		for _, n := range t.kern.Neighbors(v) {
			if !t.kern.IsFinite(n) || in[n] || seen[n] {
				continue
			}
			seen[n] = true
			home := t.data[n].Home
			out[home] = append(out[home], n)
		}
	}
	return out
}

// AxisExtremePoints returns the (at most 2*dim) finite vertices minimizing
// or maximizing each coordinate axis, deduplicated. Used once at bootstrap
// to seed full-graph propagation (spec §4.8). Grounded on
// CGAL::DDT::Tile_triangulation::axis_extreme_points (get_axis_extreme_points
// in insert.h).
func (t *Triangulation) AxisExtremePoints() []kernel.Vertex {
	if len(t.data) == 0 {
		return nil
	}
	minV := make([]kernel.Vertex, t.dim)
	maxV := make([]kernel.Vertex, t.dim)
	minC := make([]float64, t.dim)
	maxC := make([]float64, t.dim)
	first := true
	for v := range t.data {
		p := t.kern.Point(v)
		for i := 0; i < t.dim; i++ {
			if first || p[i] < minC[i] {
				minC[i] = p[i]
				minV[i] = v
			}
			if first || p[i] > maxC[i] {
				maxC[i] = p[i]
				maxV[i] = v
			}
		}
		first = false
	}
	seen := make(map[kernel.Vertex]bool, 2*t.dim)
	var out []kernel.Vertex
	for i := 0; i < t.dim; i++ {
		if !seen[minV[i]] {
			seen[minV[i]] = true
			out = append(out, minV[i])
		}
		if !seen[maxV[i]] {
			seen[maxV[i]] = true
			out = append(out, maxV[i])
		}
	}
	return out
}

// bboxPointTol is the tolerance used by BboxPoints to decide whether a
// vertex lies "on" the current bbox boundary.
const bboxPointTol = 1e-12

// BboxPoints returns the vertices of this tile lying on its current local
// bbox. Grounded on CGAL::DDT::Tile_triangulation::get_bbox_points
// (algo_ddt.hpp's send_all_bbox_points step).
func (t *Triangulation) BboxPoints() []kernel.Vertex {
	if t.bbox.Empty() {
		return nil
	}
	var out []kernel.Vertex
	for v, d := range t.data {
		if d.Home != t.id {
			continue
		}
		if t.bbox.OnBoundary(t.kern.Point(v), bboxPointTol) {
			out = append(out, v)
		}
	}
	return out
}

// IsValid runs the kernel's internal consistency check and additionally
// verifies, locally, that every vertex this tile holds records a home id
// (invariant I1) and that the kernel has not gone inconsistent (a
// prerequisite for invariants I2/I3, which are checked globally by the
// engine's finalization pass).
func (t *Triangulation) IsValid() error {
	if err := t.kern.Validate(); err != nil {
		return err
	}
	for _, c := range t.kern.FiniteCells() {
		for _, v := range c {
			if _, ok := t.data[v]; !ok {
				return fmt.Errorf("triangulation %v: finite vertex %v has no Data (violates I1)", t.id, v)
			}
		}
	}
	return nil
}
