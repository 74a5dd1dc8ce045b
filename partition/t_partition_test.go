// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/geom"
)

func Test_const01(tst *testing.T) {

	chk.PrintTitle("const01")

	c := NewConst(7)
	if c.Size() != 1 {
		tst.Errorf("Const.Size() should be 1, got %d", c.Size())
	}
	if c.ID(geom.NewPoint(1, 2)) != 7 {
		tst.Errorf("Const should always return id 7")
	}
	if c.ID(geom.NewPoint(-99, 42)) != 7 {
		tst.Errorf("Const should always return id 7, regardless of point")
	}

	ids := IDs(c)
	chk.IntAssert(len(ids), 1)
	chk.IntAssert(int(ids[0]), 7)
}

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01 (2x2 grid)")

	b := geom.NewBbox(2)
	b.Expand(geom.NewPoint(0, 0))
	b.Expand(geom.NewPoint(10, 10))

	g := NewUniformGrid(b, 2)
	chk.IntAssert(g.Size(), 4)

	// every corner must land in a distinct cell
	seen := map[ID]bool{}
	for _, p := range []geom.Point{
		geom.NewPoint(1, 1),
		geom.NewPoint(9, 1),
		geom.NewPoint(1, 9),
		geom.NewPoint(9, 9),
	} {
		id := g.ID(p)
		if seen[id] {
			tst.Errorf("point %v collided with an earlier cell id %v", p, id)
		}
		seen[id] = true
	}
	chk.IntAssert(len(seen), 4)

	ids := IDs(g)
	chk.IntAssert(len(ids), 4)
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("grid02 (ID is a pure function of the point)")

	b := geom.NewBbox(1)
	b.Expand(geom.NewPoint(0))
	b.Expand(geom.NewPoint(4))

	g := NewUniformGrid(b, 4)

	// a point sitting exactly on an interior grid line must always resolve
	// to the same id, no matter how many times ID is called (spec §9 open
	// question on grid boundary snapping).
	p := geom.NewPoint(2)
	first := g.ID(p)
	for i := 0; i < 100; i++ {
		if g.ID(p) != first {
			tst.Errorf("Grid.ID is not deterministic for a boundary point")
		}
	}
}

func Test_random01(tst *testing.T) {

	chk.PrintTitle("random01")

	r := NewRandom(3, 5, 123)
	chk.IntAssert(r.Size(), 3)

	for i := 0; i < 200; i++ {
		id := r.ID(geom.NewPoint(float64(i)))
		if id < 3 || id > 5 {
			tst.Errorf("Random.ID returned id %v outside [3,5]", id)
		}
	}

	ids := IDs(r)
	chk.IntAssert(len(ids), 3)
}
