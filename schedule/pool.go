// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"sync"

	"github.com/ddt-go/ddt/partition"
)

// Pool is a fixed-size goroutine worker pool pulling tile ids from a
// buffered channel (spec §4.7's "Multithread": "a fixed pool of worker
// threads pulls tiles from a thread-safe queue; each tile is processed by
// at most one worker at a time"). Mutual exclusion per tile is enforced
// by the caller's tilestore.Store pin discipline (§5 R1), not by Pool
// itself — Pool only bounds how many tiles are in flight at once.
//
// This is the sole concurrent scheduler in this module; spec §4.7 also
// names a task-graph (TBB) variant, which SPEC_FULL.md §5 documents as
// intentionally not implemented — Go's goroutines plus a buffered channel
// already give the same "bounded concurrent workers pulling from a shared
// queue" semantics a task graph would, without binding a C++ library.
type Pool struct {
	Workers int
}

// NewPool constructs a Pool with the given worker count. Workers <= 0 is
// treated as 1.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{Workers: workers}
}

// ForEach implements Scheduler: it fans ids out across p.Workers
// goroutines and reduces their per-id results under a single mutex, since
// reduce is not assumed to be safe for concurrent calls.
func (p *Pool) ForEach(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int {
	work := make(chan partition.ID, len(ids))
	var mu sync.Mutex
	acc := init

	var wg sync.WaitGroup
	wg.Add(p.Workers)
	for i := 0; i < p.Workers; i++ {
		go func() {
			defer wg.Done()
			for id := range work {
				v := f(id)
				mu.Lock()
				acc = reduce(acc, v)
				mu.Unlock()
			}
		}()
	}
	for _, id := range ids {
		work <- id
	}
	close(work)
	wg.Wait()
	return acc
}

// ForEachRec implements Scheduler: a pass completes (all workers idle),
// its reduce is collected, and the next pass is launched if the reduce is
// not init — spec §4.7's "for_each_rec ... relaunches if nonzero".
func (p *Pool) ForEachRec(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int {
	passes := 0
	for {
		passes++
		if p.ForEach(ids, f, reduce, init) == init {
			return passes
		}
	}
}
