// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/partition"
)

func sum(acc, v int) int { return acc + v }

func Test_sequential01_foreach(tst *testing.T) {

	chk.PrintTitle("sequential01 (ForEach visits every id exactly once)")

	ids := []partition.ID{0, 1, 2, 3}
	var visited sync.Map
	total := Sequential{}.ForEach(ids, func(id partition.ID) int {
		visited.Store(id, true)
		return 1
	}, sum, 0)

	chk.IntAssert(total, len(ids))
	for _, id := range ids {
		if _, ok := visited.Load(id); !ok {
			tst.Errorf("Sequential.ForEach never visited id %v", id)
		}
	}
}

func Test_sequential02_foreachrec_converges(tst *testing.T) {

	chk.PrintTitle("sequential02 (ForEachRec stops once a pass contributes nothing)")

	remaining := map[partition.ID]int{0: 2, 1: 0, 2: 1}
	var mu sync.Mutex
	passes := Sequential{}.ForEachRec([]partition.ID{0, 1, 2}, func(id partition.ID) int {
		mu.Lock()
		defer mu.Unlock()
		if remaining[id] > 0 {
			remaining[id]--
			return 1
		}
		return 0
	}, sum, 0)

	if passes < 3 {
		tst.Errorf("expected at least 3 passes to drain remaining work, got %d", passes)
	}
	for id, r := range remaining {
		if r != 0 {
			tst.Errorf("id %v still has %d remaining after convergence", id, r)
		}
	}
}

func Test_pool01_foreach_visits_all(tst *testing.T) {

	chk.PrintTitle("pool01 (Pool.ForEach visits every id exactly once, concurrently)")

	ids := make([]partition.ID, 50)
	for i := range ids {
		ids[i] = partition.ID(i)
	}

	var mu sync.Mutex
	seen := map[partition.ID]int{}
	p := NewPool(8)
	total := p.ForEach(ids, func(id partition.ID) int {
		mu.Lock()
		seen[id]++
		mu.Unlock()
		return 1
	}, sum, 0)

	chk.IntAssert(total, len(ids))
	for _, id := range ids {
		if seen[id] != 1 {
			tst.Errorf("id %v was visited %d times, want exactly 1", id, seen[id])
		}
	}
}

func Test_pool02_newpool_clamps_workers(tst *testing.T) {

	chk.PrintTitle("pool02 (NewPool clamps non-positive worker counts to 1)")

	p := NewPool(0)
	chk.IntAssert(p.Workers, 1)

	p2 := NewPool(-5)
	chk.IntAssert(p2.Workers, 1)
}

func Test_pool03_foreachrec_converges(tst *testing.T) {

	chk.PrintTitle("pool03 (Pool.ForEachRec converges to the same result as Sequential)")

	var mu sync.Mutex
	remaining := map[partition.ID]int{0: 3, 1: 1, 2: 0, 3: 2}
	p := NewPool(4)
	passes := p.ForEachRec([]partition.ID{0, 1, 2, 3}, func(id partition.ID) int {
		mu.Lock()
		defer mu.Unlock()
		if remaining[id] > 0 {
			remaining[id]--
			return 1
		}
		return 0
	}, sum, 0)

	if passes < 4 {
		tst.Errorf("expected at least 4 passes, got %d", passes)
	}
	for id, r := range remaining {
		if r != 0 {
			tst.Errorf("id %v still has %d remaining after convergence", id, r)
		}
	}
}
