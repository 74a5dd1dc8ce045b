// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serializer

import (
	"bytes"
	"sync"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
)

// None is the memory-only serializer (spec §4.5 "No_serializer"): it never
// evicts because it never forgets what it is given, and HasTile only
// answers true for tiles it has actually been Save'd. It exists so
// tilestore.Store can run in pure in-memory mode (Budget == 0 meaning
// "unbounded") without a special-cased code path.
type None struct {
	mu    sync.Mutex
	bbox  map[partition.ID]geom.Bbox
	state map[partition.ID][]byte
}

// NewNone constructs an empty None serializer.
func NewNone() *None {
	return &None{
		bbox:  make(map[partition.ID]geom.Bbox),
		state: make(map[partition.ID][]byte),
	}
}

// HasTile implements Serializer.
func (n *None) HasTile(id partition.ID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.bbox[id]
	return ok
}

// LoadMeta implements Serializer.
func (n *None) LoadMeta(id partition.ID) (geom.Bbox, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	b, ok := n.bbox[id]
	return b, ok
}

// Load implements Serializer.
func (n *None) Load(id partition.ID, dst Streamer) bool {
	n.mu.Lock()
	data, ok := n.state[id]
	n.mu.Unlock()
	if !ok {
		return false
	}
	return dst.DecodeFrom(bytes.NewReader(data)) == nil
}

// Save implements Serializer.
func (n *None) Save(id partition.ID, bbox geom.Bbox, src Streamer) bool {
	var buf bytes.Buffer
	if err := src.EncodeTo(&buf); err != nil {
		return false
	}
	n.mu.Lock()
	n.bbox[id] = bbox.Clone()
	n.state[id] = buf.Bytes()
	n.mu.Unlock()
	return true
}
