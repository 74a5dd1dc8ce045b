// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ddt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/iox"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/pointset"
	"github.com/ddt-go/ddt/selector"
	"github.com/ddt-go/ddt/splay"
	"github.com/ddt-go/ddt/tilestore"
	"github.com/ddt-go/ddt/triangulation"
)

// Engine orchestrates one distributed triangulation run: it owns the
// tile container, the point-set traffic, and the configuration the run
// was built from. Grounded on CGAL::DDT's top-level algo_ddt.hpp driver.
type Engine struct {
	cfg    Config
	store  *tilestore.Store
	points *pointset.Container
	ids    []partition.ID
}

// New validates cfg (after filling defaults), and constructs an Engine
// ready for Run. An invalid configuration makes New panic with the error
// returned by Config.Validate; neither New nor Run recovers it.
func New(cfg Config) *Engine {
	cfg.SetDefault()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	ids := partition.IDs(cfg.Partitioner)
	return &Engine{
		cfg:    cfg,
		store:  tilestore.New(cfg.Dim, cfg.Budget, cfg.Kernel, cfg.Serializer),
		points: pointset.New(ids),
		ids:    ids,
	}
}

// Run inserts pts (with optional parallel infos) via Bootstrap, then
// drives Splay to quiescence (spec §4.8). It returns the number of splay
// passes required to reach a fixed point.
func (e *Engine) Run(pts []geom.Point, infos []any) (passes int) {
	splay.Bootstrap(e.store, e.points, e.cfg.Scheduler, e.ids, e.cfg.Partitioner.ID, pts, infos)
	return splay.Splay(e.store, e.points, e.cfg.Scheduler, e.ids)
}

// Tiles returns the ids of every tile the partitioner defines.
func (e *Engine) Tiles() []partition.ID { return e.ids }

// IsValid implements spec §4.9's is_valid(): per-tile kernel validity
// plus I1 (checked by triangulation.Triangulation.IsValid), and globally
// that no finite cell is main in more than one tile. It does not check
// that every cell of the global triangulation is main in some tile.
func (e *Engine) IsValid() error {
	mainOwner := make(map[string]partition.ID)
	for _, id := range e.ids {
		h := tilestore.Open(e.store, id)
		tri := h.Tri()
		if err := tri.IsValid(); err != nil {
			h.Close()
			return fmt.Errorf("tile %v: %w", id, err)
		}
		for _, c := range tri.Kernel().FiniteCells() {
			owner, ok := MainOwner(tri, c, e.cfg.Selector)
			if !ok {
				continue
			}
			if owner != id {
				continue // only the electing tile itself records ownership
			}
			key := cellKey(tri, c)
			if prev, seen := mainOwner[key]; seen && prev != id {
				h.Close()
				return fmt.Errorf("cell %s is main in both tile %v and tile %v", key, prev, id)
			}
			mainOwner[key] = id
		}
		h.Close()
	}
	return nil
}

// MainOwner elects the tile that owns cell c, by feeding the home of
// every vertex of c into sel (spec §4.2/§4.9: "a simplex main in
// T with a vertex whose home is T'" — election is over the cell's vertex
// homes). ok is false only if c has no vertex at all.
func MainOwner(tri interface {
	Home(kernel.Vertex) partition.ID
}, c kernel.Cell, sel selector.Selector) (partition.ID, bool) {
	sel.Clear()
	found := false
	for _, v := range c {
		sel.Insert(tri.Home(v))
		found = true
	}
	if !found {
		return 0, false
	}
	return sel.Select(), true
}

// cellKey identifies a simplex by the coordinates of its vertices rather
// than their local kernel.Vertex handles: the same global cell is seen by
// every tile that holds one of its vertices, each under that tile's own,
// independently-numbered local kernel, so only the actual point
// coordinates are a meaningful cross-tile identity.
func cellKey(tri *triangulation.Triangulation, c kernel.Cell) string {
	pts := make([]string, len(c))
	for i, v := range c {
		pts[i] = tri.Kernel().Point(v).String()
	}
	sort.Strings(pts)
	return strings.Join(pts, "|")
}

// MainCells returns, across every tile, the finite cells for which that
// tile is the elected main owner (spec §4.9 "iteration over main cells
// ... across all tiles").
func (e *Engine) MainCells() map[partition.ID][]kernel.Cell {
	out := make(map[partition.ID][]kernel.Cell)
	for _, id := range e.ids {
		h := tilestore.Open(e.store, id)
		tri := h.Tri()
		for _, c := range tri.Kernel().FiniteCells() {
			owner, ok := MainOwner(tri, c, e.cfg.Selector)
			if ok && owner == id {
				out[id] = append(out[id], c)
			}
		}
		h.Close()
	}
	return out
}

// MainFacets returns, across every tile, the facets of that tile's main
// cells (spec §9 supplement: facet-level iteration mirroring
// CGAL::DDT::Facet_index, alongside MainCells' cell-granular iteration).
func (e *Engine) MainFacets() map[partition.ID][]triangulation.Facet {
	out := make(map[partition.ID][]triangulation.Facet)
	for id, cells := range e.MainCells() {
		for _, c := range cells {
			for i := range c {
				out[id] = append(out[id], triangulation.Facet{Cell: c, Opposite: i})
			}
		}
	}
	return out
}

// WriteVTU writes tile id's current triangulation to w as VTU (spec
// §6.4/iox.WriteVTU), pinning and unpinning it through the tile store
// exactly like any other tile access (spec §4.6's "only supported way to
// touch a tile from outside the container").
func (e *Engine) WriteVTU(id partition.ID, w io.Writer) error {
	h := tilestore.Open(e.store, id)
	defer h.Close()
	return iox.WriteVTU(w, h.Tri())
}

// AdjacencyGraph returns the Tile_id x Tile_id multigraph edge counts of
// spec §4.9: an edge (T, T') exists (with multiplicity = occurrence
// count) iff there is a simplex main in T with a vertex whose home is T'.
func (e *Engine) AdjacencyGraph() map[[2]partition.ID]int {
	edges := make(map[[2]partition.ID]int)
	mainCells := e.MainCells()
	for t, cells := range mainCells {
		h := tilestore.Open(e.store, t)
		tri := h.Tri()
		for _, c := range cells {
			for _, v := range c {
				tp := tri.Home(v)
				edges[[2]partition.ID{t, tp}]++
			}
		}
		h.Close()
	}
	return edges
}
