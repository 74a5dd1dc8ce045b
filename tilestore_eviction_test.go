// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ddt

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/selector"
	"github.com/ddt-go/ddt/serializer"
)

// countingSerializer wraps a real serializer.Serializer and counts Save
// (eviction) and Load (reload) calls per tile id, so scenario 4 (spec §8)
// can observe that every tile was actually evicted and reloaded at least
// once under a tight memory budget.
type countingSerializer struct {
	serializer.Serializer
	mu    sync.Mutex
	saves map[partition.ID]int
	loads map[partition.ID]int
}

func newCountingSerializer(inner serializer.Serializer) *countingSerializer {
	return &countingSerializer{
		Serializer: inner,
		saves:      make(map[partition.ID]int),
		loads:      make(map[partition.ID]int),
	}
}

func (c *countingSerializer) Save(id partition.ID, bbox geom.Bbox, src serializer.Streamer) bool {
	ok := c.Serializer.Save(id, bbox, src)
	if ok {
		c.mu.Lock()
		c.saves[id]++
		c.mu.Unlock()
	}
	return ok
}

func (c *countingSerializer) Load(id partition.ID, dst serializer.Streamer) bool {
	ok := c.Serializer.Load(id, dst)
	if ok {
		c.mu.Lock()
		c.loads[id]++
		c.mu.Unlock()
	}
	return ok
}

func (c *countingSerializer) countsFor(id partition.ID) (saved, loaded int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves[id], c.loads[id]
}

// Test_scenario4_eviction_stress is spec.md §8 scenario 4: 9 tiles,
// K=2, max_concurrency=1. The run must complete, the final triangulation
// must be globally valid, and every tile must have been evicted and
// reloaded at least once.
func Test_scenario4_eviction_stress(tst *testing.T) {

	chk.PrintTitle("scenario4 (9 tiles, K=2, every tile evicted and reloaded at least once)")

	bbox := geom.NewBbox(2)
	bbox.Expand(geom.NewPoint(0, 0))
	bbox.Expand(geom.NewPoint(9, 9))
	part := partition.NewUniformGrid(bbox, 3) // 3x3 = 9 tiles

	ser := newCountingSerializer(serializer.NewFile(filepath.Join(tst.TempDir(), "tile_")))
	eng := New(Config{
		Dim:         2,
		Partitioner: part,
		Selector:    selector.New("min"),
		Concurrency: 1,
		Budget:      2, // K=2: at most 2 of the 9 tiles resident at once
		Serializer:  ser,
	})

	pts := geom.NewUniformSampler(bbox, 41).NextN(200)
	eng.Run(pts, nil)

	if err := eng.IsValid(); err != nil {
		tst.Errorf("IsValid failed after eviction stress: %v", err)
	}

	for _, id := range eng.Tiles() {
		saved, loaded := ser.countsFor(id)
		if saved == 0 {
			tst.Errorf("tile %v was never evicted (saved) under the tight budget", id)
		}
		if loaded == 0 {
			tst.Errorf("tile %v was never reloaded under the tight budget", id)
		}
	}
}
