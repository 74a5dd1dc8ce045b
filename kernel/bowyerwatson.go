// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/ddt-go/ddt/geom"
)

// superRange is the half-width of the bounding region the initial super
// simplex is built to enclose. Input coordinates are expected to fit well
// inside [-superRange, superRange]^D; see New's doc comment.
const superRange = 1e6

// Simple is a brute-force, any-dimension incremental Bowyer-Watson Delaunay
// triangulation. See the package doc comment for its intended (test-only)
// scope.
type Simple struct {
	dim    int
	points map[Vertex]geom.Point
	cells  map[string]Cell
	nextID Vertex
}

// New constructs an empty Simple kernel of the given dimension, seeded with
// a super simplex that encloses every point of [-1e6, 1e6]^dim when
// dim <= 4; for dim >= 5 it does not cover the corners of that cube.
// Match kernel.Factory.
func New(dim int) Kernel { return NewSimple(dim) }

// NewSimple is the concretely-typed constructor behind New.
func NewSimple(dim int) *Simple {
	s := &Simple{
		dim:    dim,
		points: make(map[Vertex]geom.Point),
		cells:  make(map[string]Cell),
	}
	s.seedSuperSimplex()
	return s
}

// seedSuperSimplex builds dim+1 oversized vertices (negative handles, hence
// never finite) and the single cell they form.
func (s *Simple) seedSuperSimplex() {
	base := make(geom.Point, s.dim)
	for i := range base {
		base[i] = -superRange
	}
	cell := make(Cell, s.dim+1)
	s.points[-1] = base.Clone()
	cell[0] = -1
	for i := 0; i < s.dim; i++ {
		p := base.Clone()
		p[i] = base[i] + 10*superRange
		v := Vertex(-2 - i)
		s.points[v] = p
		cell[i+1] = v
	}
	s.cells[cellKey(cell)] = cell
}

// Dim implements Kernel.
func (s *Simple) Dim() int { return s.dim }

// Insert implements Kernel.
func (s *Simple) Insert(p geom.Point) (Vertex, bool) {
	for v, q := range s.points {
		if v >= 0 && q.Equal(p) {
			return v, false
		}
	}
	return s.insertNew(p), true
}

// BulkInsert implements Kernel.
func (s *Simple) BulkInsert(pts []geom.Point) []Vertex {
	created := make([]Vertex, 0, len(pts))
	for _, p := range pts {
		if v, ok := s.Insert(p); ok {
			created = append(created, v)
		}
	}
	return created
}

func (s *Simple) insertNew(p geom.Point) Vertex {
	id := s.nextID
	s.nextID++
	s.points[id] = p.Clone()

	var bad []Cell
	for key, c := range s.cells {
		pts := s.cellPoints(c)
		if inCircumsphere(pts, p) {
			bad = append(bad, c)
			delete(s.cells, key)
		}
	}

	type faceInfo struct {
		face  []Vertex
		count int
	}
	faces := make(map[string]faceInfo)
	for _, c := range bad {
		for omit := range c {
			face := make([]Vertex, 0, len(c)-1)
			for i, v := range c {
				if i != omit {
					face = append(face, v)
				}
			}
			key := cellKey(face)
			fi := faces[key]
			fi.face = face
			fi.count++
			faces[key] = fi
		}
	}
	for _, fi := range faces {
		if fi.count != 1 {
			continue
		}
		nc := make(Cell, 0, len(fi.face)+1)
		nc = append(nc, fi.face...)
		nc = append(nc, id)
		s.cells[cellKey(nc)] = nc
	}
	return id
}

func (s *Simple) cellPoints(c Cell) []geom.Point {
	pts := make([]geom.Point, len(c))
	for i, v := range c {
		pts[i] = s.points[v]
	}
	return pts
}

// IsFinite implements Kernel.
func (s *Simple) IsFinite(v Vertex) bool { return v >= 0 }

// Point implements Kernel.
func (s *Simple) Point(v Vertex) geom.Point {
	if v < 0 {
		chk.Panic("kernel.Simple: Point called on infinite vertex %d", v)
	}
	return s.points[v]
}

// Neighbors implements Kernel.
func (s *Simple) Neighbors(v Vertex) []Vertex {
	seen := make(map[Vertex]bool)
	var out []Vertex
	for _, c := range s.cells {
		has := false
		for _, u := range c {
			if u == v {
				has = true
				break
			}
		}
		if !has {
			continue
		}
		for _, u := range c {
			if u != v && !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	return out
}

// Cells implements Kernel.
func (s *Simple) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for _, c := range s.cells {
		out = append(out, c)
	}
	return out
}

// FiniteCells implements Kernel.
func (s *Simple) FiniteCells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for _, c := range s.cells {
		finite := true
		for _, v := range c {
			if v < 0 {
				finite = false
				break
			}
		}
		if finite {
			out = append(out, c)
		}
	}
	return out
}

// Validate implements Kernel: every live cell's circumsphere must contain no
// other vertex (the Delaunay empty-circumsphere property).
func (s *Simple) Validate() error {
	for key, c := range s.cells {
		pts := s.cellPoints(c)
		for v, p := range s.points {
			skip := false
			for _, u := range c {
				if u == v {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			if inCircumsphere(pts, p) {
				return fmt.Errorf("kernel.Simple: cell %s is not Delaunay: vertex %d lies inside its circumsphere", key, v)
			}
		}
	}
	return nil
}

// Clone implements Kernel.
func (s *Simple) Clone() Kernel {
	out := &Simple{
		dim:    s.dim,
		points: make(map[Vertex]geom.Point, len(s.points)),
		cells:  make(map[string]Cell, len(s.cells)),
		nextID: s.nextID,
	}
	for v, p := range s.points {
		out.points[v] = p.Clone()
	}
	for k, c := range s.cells {
		cc := make(Cell, len(c))
		copy(cc, c)
		out.cells[k] = cc
	}
	return out
}

func cellKey(vs []Vertex) string {
	sorted := make([]int, len(vs))
	for i, v := range vs {
		sorted[i] = int(v)
	}
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

// inCircumsphere reports whether p lies strictly inside the circumsphere of
// the simplex spanned by pts (len(pts) == D+1). Degenerate (near-singular)
// simplices conservatively report false.
func inCircumsphere(pts []geom.Point, p geom.Point) bool {
	center, r2, ok := circumsphere(pts)
	if !ok {
		return false
	}
	d2 := geom.Dist2(p, geom.NewPoint(center...))
	const eps = 1e-9
	return d2 < r2*(1-eps)
}

// circumsphere solves for the center and squared radius of the sphere
// through every point in pts, using the standard "equidistant from the
// base point" linear system: for i=1..D,
//
//	2*(pts[i]-pts[0]) . center = |pts[i]|^2 - |pts[0]|^2
func circumsphere(pts []geom.Point) (center []float64, r2 float64, ok bool) {
	d := len(pts) - 1
	base := pts[0]
	a := make([][]float64, d)
	b := make([]float64, d)
	for i := 1; i <= d; i++ {
		row := make([]float64, d)
		var rhsI, rhs0 float64
		for k := 0; k < d; k++ {
			row[k] = 2 * (pts[i][k] - base[k])
			rhsI += pts[i][k] * pts[i][k]
			rhs0 += base[k] * base[k]
		}
		a[i-1] = row
		b[i-1] = rhsI - rhs0
	}
	inv := make([][]float64, d)
	for i := range inv {
		inv[i] = make([]float64, d)
	}
	_, err := la.MatInv(inv, a, 1e-14)
	if err != nil {
		return nil, 0, false
	}
	center = make([]float64, d)
	la.MatVecMul(center, 1, inv, b)
	r2 = geom.Dist2(base, geom.NewPoint(center...))
	return center, r2, true
}
