// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulation

import (
	"encoding/gob"
	"io"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/kernel"
)

// wireData is the gob-friendly shape of a single vertex's Data, used by
// EncodeTo/DecodeFrom so the full per-vertex home/info bookkeeping
// survives a round trip through a serializer.Serializer, not just the raw
// kernel geometry.
type wireData struct {
	Vertex kernel.Vertex
	Data   Data
}

// EncodeTo writes this tile's full state — kernel geometry plus every
// vertex's Data — to w. Implements serializer.Streamer. Grounded on
// gofem's Domain.SaveSol/SaveIvs pair (fem/fileio.go): geometry and
// bookkeeping are encoded as two back-to-back gob values in one stream,
// the same way Sol and internal variables are.
func (t *Triangulation) EncodeTo(w io.Writer) error {
	if err := t.kern.EncodeTo(w); err != nil {
		return err
	}
	entries := make([]wireData, 0, len(t.data))
	for v, d := range t.data {
		entries = append(entries, wireData{Vertex: v, Data: d})
	}
	return gob.NewEncoder(w).Encode(entries)
}

// DecodeFrom replaces this tile's state with what was written by
// EncodeTo, and recomputes Bbox from the restored local (home == t.id)
// vertices.
func (t *Triangulation) DecodeFrom(r io.Reader) error {
	if err := t.kern.DecodeFrom(r); err != nil {
		return err
	}
	var entries []wireData
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return err
	}
	t.data = make(map[kernel.Vertex]Data, len(entries))
	for _, e := range entries {
		t.data[e.Vertex] = e.Data
	}
	b := geom.NewBbox(t.dim)
	for v, d := range t.data {
		if d.Home != t.id || !t.kern.IsFinite(v) {
			continue
		}
		b.Expand(t.kern.Point(v))
	}
	t.bbox = b
	return nil
}
