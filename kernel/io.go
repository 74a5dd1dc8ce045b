// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"encoding/gob"
	"io"

	"github.com/ddt-go/ddt/geom"
)

// wireState is the on-disk shape of a Simple kernel, used by EncodeTo/DecodeFrom
// following the Encode/Decode pair gofem's fem.GetEncoder/GetDecoder use for
// Domain snapshots (fem/fileio.go).
type wireState struct {
	Dim    int
	NextID Vertex
	Points map[Vertex][]float64
	Cells  []Cell
}

// EncodeTo gob-encodes the kernel's full state (vertices and live cells) to
// w, for use by serializer.File as the "native triangulation stream".
func (s *Simple) EncodeTo(w io.Writer) error {
	ws := wireState{
		Dim:    s.dim,
		NextID: s.nextID,
		Points: make(map[Vertex][]float64, len(s.points)),
		Cells:  make([]Cell, 0, len(s.cells)),
	}
	for v, p := range s.points {
		ws.Points[v] = []float64(p)
	}
	for _, c := range s.cells {
		ws.Cells = append(ws.Cells, c)
	}
	return gob.NewEncoder(w).Encode(&ws)
}

// DecodeFrom replaces the kernel's state with what was written by EncodeTo.
func (s *Simple) DecodeFrom(r io.Reader) error {
	var ws wireState
	if err := gob.NewDecoder(r).Decode(&ws); err != nil {
		return err
	}
	s.dim = ws.Dim
	s.nextID = ws.NextID
	s.points = make(map[Vertex]geom.Point, len(ws.Points))
	for v, c := range ws.Points {
		s.points[v] = geom.NewPoint(c...)
	}
	s.cells = make(map[string]Cell, len(ws.Cells))
	for _, c := range ws.Cells {
		s.cells[cellKey(c)] = c
	}
	return nil
}
