// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tilestore implements the Tile container of spec §4.6: the
// memory-budget manager and sole access path to triangulation.Triangulation
// values. Grounded on CGAL::DDT::Tile's Usage<PairIterator> bookkeeping
// (Tile.h) and on the teacher's deterministic defer-cleanup idiom
// (fem.Start/fem.End, out.Start/out.End).
package tilestore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/serializer"
	"github.com/ddt-go/ddt/triangulation"
)

// usage tracks the residency state of one tile, mirroring the original
// source's Usage<PairIterator>: whether it is currently loaded in memory,
// how many outstanding pins it holds, and a monotonically increasing
// stamp used to pick an LRU eviction victim.
type usage struct {
	inMemory bool
	pins     int
	stamp    uint64
}

// Store is the memory-budget manager and sole access path to tiles (spec
// §4.6). Budget == 0 means unbounded (pure in-memory mode, matching a
// serializer.None backend). Store enforces the single-writer-per-tile
// rule (§5 R1) with one mutex per tile id, acquired by Handle.
type Store struct {
	mu      sync.Mutex
	budget  int
	clock   uint64
	dim     int
	factory kernel.Factory
	ser     serializer.Serializer

	tiles   map[partition.ID]*triangulation.Triangulation
	use     map[partition.ID]*usage
	tileMus map[partition.ID]*sync.Mutex
}

// New constructs a Store of the given dimension and in-memory budget
// (0 = unbounded), backed by ser for eviction/restore and factory for
// building each tile's kernel.
func New(dim int, budget int, factory kernel.Factory, ser serializer.Serializer) *Store {
	return &Store{
		budget:  budget,
		dim:     dim,
		factory: factory,
		ser:     ser,
		tiles:   make(map[partition.ID]*triangulation.Triangulation),
		use:     make(map[partition.ID]*usage),
		tileMus: make(map[partition.ID]*sync.Mutex),
	}
}

func (s *Store) tileMu(id partition.ID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.tileMus[id]
	if !ok {
		m = &sync.Mutex{}
		s.tileMus[id] = m
	}
	return m
}

func (s *Store) usageOf(id partition.ID) *usage {
	u, ok := s.use[id]
	if !ok {
		u = &usage{}
		s.use[id] = u
	}
	return u
}

// InMemoryCount returns the number of tiles currently resident in memory.
func (s *Store) InMemoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, u := range s.use {
		if u.inMemory {
			n++
		}
	}
	return n
}

// Pin increments id's pin count (spec §4.6), loading it into memory first
// if necessary — evicting a zero-pin resident tile if the budget is full.
// Pin panics if the budget is exhausted and no zero-pin victim exists,
// which spec §4.6 calls "caller error" (a configuration/scheduling bug,
// not a runtime condition callers are expected to recover from).
func (s *Store) Pin(id partition.ID) *triangulation.Triangulation {
	s.tileMu(id).Lock() // serializes pin acquisition per id (R1)

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.usageOf(id)
	if !u.inMemory {
		s.ensureRoom(id)
		s.load(id)
	}
	u.pins++
	s.clock++
	u.stamp = s.clock
	return s.tiles[id]
}

// Unpin decrements id's pin count. The tile becomes evictable once the
// count reaches zero, but Unpin never evicts eagerly (spec §4.6).
func (s *Store) Unpin(id partition.ID) {
	s.mu.Lock()
	u := s.usageOf(id)
	if u.pins > 0 {
		u.pins--
	}
	s.mu.Unlock()
	s.tileMu(id).Unlock()
}

// ensureRoom evicts a zero-pin resident tile of highest load cost (LRU by
// last-use stamp, per spec §4.6's "acceptable" tie-break) if the in-memory
// budget is full. Must be called with s.mu held.
func (s *Store) ensureRoom(incoming partition.ID) {
	if s.budget <= 0 {
		return // unbounded
	}
	if s.InMemoryCountLocked() < s.budget {
		return
	}
	victim, ok := s.lruVictimLocked()
	if !ok {
		panic(fmt.Sprintf("tilestore: budget %d exhausted pinning tile %v, no zero-pin victim to evict", s.budget, incoming))
	}
	s.evictLocked(victim)
	if s.use[victim].inMemory {
		panic(fmt.Sprintf("tilestore: saving tile %v failed, cannot evict it to make room for tile %v", victim, incoming))
	}
}

// InMemoryCountLocked is InMemoryCount for callers already holding s.mu.
func (s *Store) InMemoryCountLocked() int {
	n := 0
	for _, u := range s.use {
		if u.inMemory {
			n++
		}
	}
	return n
}

func (s *Store) lruVictimLocked() (partition.ID, bool) {
	var best partition.ID
	var bestStamp uint64
	found := false
	ids := make([]partition.ID, 0, len(s.use))
	for id := range s.use {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] }) // deterministic tie-break
	for _, id := range ids {
		u := s.use[id]
		if !u.inMemory || u.pins != 0 {
			continue
		}
		if !found || u.stamp < bestStamp {
			found = true
			best = id
			bestStamp = u.stamp
		}
	}
	return best, found
}

// evictLocked saves the tile and drops its in-memory copy.
// Per spec §4.6 invariant (d), a failed save aborts eviction: the tile
// stays resident and the caller's Pin will panic instead of silently
// losing data (retried once by serializer.File internally already).
func (s *Store) evictLocked(id partition.ID) {
	t := s.tiles[id]
	if t != nil {
		if !s.ser.Save(id, t.Bbox(), t) {
			return // eviction aborted: tile stays resident
		}
	}
	delete(s.tiles, id)
	s.use[id].inMemory = false
}

// load restores or creates id's triangulation. Must be called with s.mu
// held and id not already in memory.
func (s *Store) load(id partition.ID) {
	t := triangulation.New(id, s.dim, s.factory)
	s.ser.Load(id, t) // no-op if id is not yet durable; t stays empty
	s.tiles[id] = t
	s.usageOf(id).inMemory = true
}

// Flush saves every in-memory tile with zero pins, without evicting it
// from memory.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.use {
		if !u.inMemory || u.pins != 0 {
			continue
		}
		t := s.tiles[id]
		if !s.ser.Save(id, t.Bbox(), t) {
			return fmt.Errorf("tilestore: flush failed saving tile %v", id)
		}
	}
	return nil
}
