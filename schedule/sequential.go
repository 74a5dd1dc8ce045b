// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import "github.com/ddt-go/ddt/partition"

// Sequential runs every tile on the calling goroutine, in the order ids
// are given. Trivially correct (spec §4.7): no concurrency, no pin
// contention possible.
type Sequential struct{}

// ForEach implements Scheduler.
func (Sequential) ForEach(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int {
	acc := init
	for _, id := range ids {
		acc = reduce(acc, f(id))
	}
	return acc
}

// ForEachRec implements Scheduler.
func (s Sequential) ForEachRec(ids []partition.ID, f func(partition.ID) int, reduce func(acc, v int) int, init int) int {
	passes := 0
	for {
		passes++
		if s.ForEach(ids, f, reduce, init) == init {
			return passes
		}
	}
}
