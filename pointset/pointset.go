// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointset implements the inter-tile point traffic of the ddt
// engine: the outbox/inbox pair every tile uses to hand newly-relevant
// points to its peers between scheduler passes (spec §4.4).
//
// spec.md's §9 Open Question 2 notes the original source splits this into
// two structures, Messaging_container (outbox/inbox plumbing) and
// Point_set_container (the point storage itself), and explicitly allows a
// unified implementation. Container below is that unification: one type
// owning both the outbox and inbox state of every tile, grounded on
// CGAL::DDT::Messaging_container (Messaging_container.h) and
// CGAL::DDT::Point_set_container (Point_set_container.h).
package pointset

import (
	"sync"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
)

// Item is one point in transit between tiles: its coordinates, the home
// tile it was originally inserted under (invariant once assigned, spec
// §3), and its opaque info payload.
type Item struct {
	Point geom.Point
	Home  partition.ID
	Info  any
}

// Container owns, for every tile id, an outbox keyed by destination peer
// and an inbox of items waiting to be inserted on the next pass. All
// mutation is safe for concurrent use by multiple scheduler workers,
// following spec §5's R2: the outbox of T is only ever written by T's own
// worker (while T is pinned), but Flush writes into many peers' inboxes
// concurrently, so each peer inbox is guarded by its own mutex.
type Container struct {
	mu     sync.Mutex // guards outbox and the inboxMu map itself
	outbox map[partition.ID]map[partition.ID][]Item

	inboxMu map[partition.ID]*sync.Mutex
	inbox   map[partition.ID][]Item
}

// New constructs an empty Container with inboxes/outboxes pre-allocated
// for every id in ids.
func New(ids []partition.ID) *Container {
	c := &Container{
		outbox:  make(map[partition.ID]map[partition.ID][]Item, len(ids)),
		inboxMu: make(map[partition.ID]*sync.Mutex, len(ids)),
		inbox:   make(map[partition.ID][]Item, len(ids)),
	}
	for _, id := range ids {
		c.outbox[id] = make(map[partition.ID][]Item)
		c.inboxMu[id] = &sync.Mutex{}
	}
	return c
}

// Send appends items to from's outbox destined for peer. Only the worker
// currently holding from's tile pin may call this (R2).
func (c *Container) Send(from, peer partition.ID, items []Item) {
	if len(items) == 0 {
		return
	}
	c.mu.Lock()
	box, ok := c.outbox[from]
	if !ok {
		box = make(map[partition.ID][]Item)
		c.outbox[from] = box
	}
	c.mu.Unlock()
	box[peer] = append(box[peer], items...)
}

// SendAll broadcasts items from tile `from` to every id in peers other
// than from itself. Used for the bootstrap axis-extreme-point broadcast
// (spec §4.8 step 3) and, more generally, whenever a tile must reach
// every other tile rather than a single destination.
func (c *Container) SendAll(from partition.ID, items []Item, peers []partition.ID) {
	for _, p := range peers {
		if p == from {
			continue
		}
		c.Send(from, p, items)
	}
}

// SendExtremePoints is SendAll specialized for the bootstrap's
// axis-extreme broadcast; it is a documentation-only alias kept separate
// from SendAll so call sites read the way insert.h's
// insert_and_send_all_axis_extreme_points does.
func (c *Container) SendExtremePoints(from partition.ID, extremes []Item, peers []partition.ID) {
	c.SendAll(from, extremes, peers)
}

// Flush moves every outbox entry into its destination's inbox (the "send"
// step of spec §4.4: "moves outbox[T][U] into inbox[U] for every U != T;
// points sent to T itself become the next-round inbox of T"), and empties
// every outbox. It returns the total number of items moved. The splay
// loop does not use this count to stop; splay.Splay stops on the send
// count reduced by its own ForEach pass.
func (c *Container) Flush() int {
	c.mu.Lock()
	outbox := c.outbox
	c.outbox = make(map[partition.ID]map[partition.ID][]Item, len(outbox))
	for id := range outbox {
		c.outbox[id] = make(map[partition.ID][]Item)
	}
	c.mu.Unlock()

	total := 0
	for _, box := range outbox {
		for peer, items := range box {
			if len(items) == 0 {
				continue
			}
			lock := c.inboxLock(peer)
			lock.Lock()
			c.inbox[peer] = append(c.inbox[peer], items...)
			lock.Unlock()
			total += len(items)
		}
	}
	return total
}

// PopInbox returns and clears tile id's pending inbox. Only the worker
// holding id's pin may call this, immediately after pinning, per the
// splay loop's "pop its inbox, insert into the local triangulation" step.
func (c *Container) PopInbox(id partition.ID) []Item {
	lock := c.inboxLock(id)
	lock.Lock()
	defer lock.Unlock()
	items := c.inbox[id]
	c.inbox[id] = nil
	return items
}

func (c *Container) inboxLock(id partition.ID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.inboxMu[id]
	if !ok {
		lock = &sync.Mutex{}
		c.inboxMu[id] = lock
	}
	return lock
}
