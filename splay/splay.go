// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splay implements the core loop of spec §4.8: bootstrap (insert
// the initial partition and broadcast axis-extreme points) followed by
// repeated star-splaying until quiescence. Grounded line-for-line on
// _examples/original_source/DDT/include/CGAL/DDT/insert.h's splay_tile,
// insert_and_send_all_axis_extreme_points and splay_stars.
package splay

import (
	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/pointset"
	"github.com/ddt-go/ddt/schedule"
	"github.com/ddt-go/ddt/tilestore"
)

// tile pops its inbox, inserts everything into its local triangulation,
// and forwards each newly inserted vertex's finite foreign neighbors to
// their home tiles. Returns the number of points sent onward. Grounded on
// insert.h's splay_tile; this is the one routine both Bootstrap and Splay
// are built from.
func tile(store *tilestore.Store, points *pointset.Container, id partition.ID) int {
	items := points.PopInbox(id)
	if len(items) == 0 {
		return 0
	}

	h := tilestore.Open(store, id)
	defer h.Close()
	tri := h.Tri()

	pts := make([]geom.Point, len(items))
	homes := make([]partition.ID, len(items))
	infos := make([]any, len(items))
	for i, it := range items {
		pts[i] = it.Point
		homes[i] = it.Home
		infos[i] = it.Info
	}
	inserted := tri.Insert(pts, homes, infos, true)
	if len(inserted) == 0 {
		return 0
	}

	byHome := tri.FiniteNeighbors(inserted)
	sent := 0
	for peer, vs := range byHome {
		if peer == id {
			continue // local neighbors are already in this tile
		}
		out := make([]pointset.Item, len(vs))
		for i, v := range vs {
			out[i] = pointset.Item{Point: tri.Kernel().Point(v), Home: tri.Home(v), Info: tri.VertexData(v).Info}
		}
		points.Send(id, peer, out)
		sent += len(out)
	}
	return sent
}

// Bootstrap partitions pts (with parallel infos, may be nil) by assigning
// each to partitioner.ID(p)'s inbox, then runs one pass of tile over
// every id in ids via sch, and additionally broadcasts each tile's
// axis-extreme local vertices to every other tile — the minimal cover
// that guarantees the subsequent Splay loop converges (spec §4.8 steps
// 1-4). Returns the number of points sent by the extreme-point broadcast
// plus the first splay_tile pass, mirroring
// insert_and_send_all_axis_extreme_points's return value.
func Bootstrap(store *tilestore.Store, points *pointset.Container, sch schedule.Scheduler, ids []partition.ID, assign func(geom.Point) partition.ID, pts []geom.Point, infos []any) int {
	byTile := make(map[partition.ID][]pointset.Item)
	for i, p := range pts {
		home := assign(p)
		var info any
		if infos != nil {
			info = infos[i]
		}
		byTile[home] = append(byTile[home], pointset.Item{Point: p, Home: home, Info: info})
	}
	for id, items := range byTile {
		points.Send(id, id, items) // own inbox: outbox[id][id] flushes straight back to id
	}
	points.Flush()

	count := sch.ForEach(ids, func(id partition.ID) int {
		count := tile(store, points, id)

		h := tilestore.Open(store, id)
		extremes := h.Tri().AxisExtremePoints()
		tri := h.Tri()
		out := make([]pointset.Item, len(extremes))
		for i, v := range extremes {
			out[i] = pointset.Item{Point: tri.Kernel().Point(v), Home: tri.Home(v), Info: tri.VertexData(v).Info}
		}
		points.SendExtremePoints(id, out, ids)
		h.Close()

		return count + len(out)*(len(ids)-1) // broadcast reaches every id but id itself
	}, func(acc, v int) int { return acc + v }, 0)

	// the pass above only appended to each tile's outbox (the foreign
	// neighbors sent by tile() and the axis-extreme broadcast); flush them
	// into their destination inboxes so Splay's first pass has something
	// to pop.
	points.Flush()
	return count
}

// Splay repeats tile over every id in ids, flushing the pointset
// container between passes, until a full pass produces zero sends (spec
// §4.8 splay_stars / §4.7 for_each_rec termination detection). It
// implements the same pass-until-quiescent loop as
// schedule.Scheduler.ForEachRec, but a bare ForEachRec cannot be used here: each
// tile's Send calls only append to Container's outbox (spec §4.4), and
// nothing moves those into a peer's inbox until Flush runs, so the loop
// must flush once per pass, not just once before the first pass. Returns
// the number of passes run; upon return, invariants I1-I4 hold (assuming
// Bootstrap already ran).
func Splay(store *tilestore.Store, points *pointset.Container, sch schedule.Scheduler, ids []partition.ID) int {
	passes := 0
	for {
		passes++
		sent := sch.ForEach(ids, func(id partition.ID) int {
			return tile(store, points, id)
		}, func(acc, v int) int { return acc + v }, 0)
		points.Flush()
		if sent == 0 {
			return passes
		}
	}
}
