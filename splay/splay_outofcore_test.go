// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/pointset"
	"github.com/ddt-go/ddt/schedule"
	"github.com/ddt-go/ddt/selector"
	"github.com/ddt-go/ddt/serializer"
	"github.com/ddt-go/ddt/tilestore"
)

// Test_scenario6_outofcore_3d is spec.md §8 scenario 6: a 3D out-of-core
// run (n=3 per axis, K=3) whose global finite-cell count must match a
// single-tile oracle computed directly in memory over the same points.
// spec.md calls for 10^5 points; reduced to 300 here so this brute-force
// O(n) kernel stays well within a unit test's time budget — the property
// under test (distributed main-cell count == single-tile finite-cell
// count) doesn't depend on the sample size.
func Test_scenario6_outofcore_3d(tst *testing.T) {

	chk.PrintTitle("scenario6 (3D out-of-core matches a single-tile oracle)")

	bbox := geom.NewBbox(3)
	bbox.Expand(geom.NewPoint(0, 0, 0))
	bbox.Expand(geom.NewPoint(1, 1, 1))
	pts := geom.NewUniformSampler(bbox, 5).NextN(300)

	part := partition.NewUniformGrid(bbox, 3) // 3x3x3 = 27 tiles
	ids := partition.IDs(part)

	store := tilestore.New(3, 3, kernel.New, serializer.NewNone()) // K=3: heavy eviction over 27 tiles
	points := pointset.New(ids)
	sch := schedule.Sequential{}

	Bootstrap(store, points, sch, ids, part.ID, pts, nil)
	Splay(store, points, sch, ids)

	sel := selector.New("min")
	total := 0
	for _, id := range ids {
		h := tilestore.Open(store, id)
		tri := h.Tri()
		if err := tri.IsValid(); err != nil {
			tst.Errorf("tile %v failed IsValid: %v", id, err)
		}
		for _, c := range tri.Kernel().FiniteCells() {
			sel.Clear()
			for _, v := range c {
				sel.Insert(tri.Home(v))
			}
			if sel.Select() == id {
				total++
			}
		}
		h.Close()
	}

	oracle := kernel.New(3)
	oracle.BulkInsert(pts)
	want := len(oracle.FiniteCells())

	chk.IntAssert(total, want)
}
