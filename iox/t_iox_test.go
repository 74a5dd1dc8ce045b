// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/triangulation"
)

func newTestTile() *triangulation.Triangulation {
	tr := triangulation.New(0, 2, kernel.New)
	tr.InsertLocal([]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(0, 1),
		geom.NewPoint(1, 1),
	}, nil, true)
	return tr
}

func Test_vtu01_writevtu(tst *testing.T) {

	chk.PrintTitle("vtu01 (WriteVTU emits well-formed-looking VTU XML)")

	tr := newTestTile()
	var buf bytes.Buffer
	if err := WriteVTU(&buf, tr); err != nil {
		tst.Fatalf("WriteVTU failed: %v", err)
	}
	out := buf.String()
	for _, tag := range []string{"<VTKFile", "<UnstructuredGrid>", "<Points>", "<Cells>"} {
		if !strings.Contains(out, tag) {
			tst.Errorf("WriteVTU output missing %q", tag)
		}
	}
}

func Test_vtu02_rejects_unsupported_dim(tst *testing.T) {

	chk.PrintTitle("vtu02 (WriteVTU rejects dim outside {2,3})")

	tr := triangulation.New(0, 5, kernel.New)
	var buf bytes.Buffer
	if err := WriteVTU(&buf, tr); err == nil {
		tst.Errorf("WriteVTU should reject dim 5")
	}
}

func Test_pvtu01_writepvtu(tst *testing.T) {

	chk.PrintTitle("pvtu01 (WritePVTU lists every piece in id order)")

	pieces := map[partition.ID]string{2: "tile_2.vtu", 0: "tile_0.vtu", 1: "tile_1.vtu"}
	var buf bytes.Buffer
	if err := WritePVTU(&buf, 2, pieces); err != nil {
		tst.Fatalf("WritePVTU failed: %v", err)
	}
	out := buf.String()
	i0 := strings.Index(out, "tile_0.vtu")
	i1 := strings.Index(out, "tile_1.vtu")
	i2 := strings.Index(out, "tile_2.vtu")
	if !(i0 < i1 && i1 < i2) {
		tst.Errorf("WritePVTU did not list pieces in ascending id order")
	}
}

func Test_ply01_writeply(tst *testing.T) {

	chk.PrintTitle("ply01 (WritePLY emits a valid-looking PLY header)")

	tr := newTestTile()
	var buf bytes.Buffer
	if err := WritePLY(&buf, tr); err != nil {
		tst.Fatalf("WritePLY failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "ply\n") {
		tst.Errorf("PLY output must start with the magic 'ply' line")
	}
	if !strings.Contains(out, "end_header") {
		tst.Errorf("PLY output missing end_header")
	}
}

func Test_ply02_rejects_unsupported_dim(tst *testing.T) {

	chk.PrintTitle("ply02 (WritePLY rejects dim outside {2,3})")

	tr := triangulation.New(0, 1, kernel.New)
	var buf bytes.Buffer
	if err := WritePLY(&buf, tr); err == nil {
		tst.Errorf("WritePLY should reject dim 1")
	}
}

func Test_geojson01_writegeojson(tst *testing.T) {

	chk.PrintTitle("geojson01 (WriteGeoJSON emits a FeatureCollection)")

	tr := newTestTile()
	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, tr); err != nil {
		tst.Fatalf("WriteGeoJSON failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"FeatureCollection"`) {
		tst.Errorf("GeoJSON output missing FeatureCollection type")
	}
	if !strings.Contains(out, `"Polygon"`) {
		tst.Errorf("GeoJSON output missing Polygon geometry")
	}
}

func Test_geojson02_rejects_unsupported_dim(tst *testing.T) {

	chk.PrintTitle("geojson02 (WriteGeoJSON requires dim 2)")

	tr := triangulation.New(0, 3, kernel.New)
	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, tr); err == nil {
		tst.Errorf("WriteGeoJSON should reject dim 3")
	}
}

func Test_dot01_writedot(tst *testing.T) {

	chk.PrintTitle("dot01 (WriteDOT writes a graph with self-loops skipped)")

	edges := map[[2]partition.ID]int{
		{0, 1}: 3,
		{1, 0}: 1,
		{2, 2}: 5, // self-loop, must be skipped
	}
	var buf bytes.Buffer
	if err := WriteDOT(&buf, edges); err != nil {
		tst.Fatalf("WriteDOT failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "graph ddt_adjacency {") {
		tst.Errorf("WriteDOT missing graph header")
	}
	if strings.Contains(out, "2 -- 2") {
		tst.Errorf("WriteDOT should have skipped the self-loop edge")
	}
	if !strings.Contains(out, "0 -- 1") {
		tst.Errorf("WriteDOT missing expected edge 0 -- 1")
	}
}

func Test_native01_roundtrip_binary(tst *testing.T) {

	chk.PrintTitle("native01 (WriteNative/ReadNative binary roundtrip)")

	tr := newTestTile()
	var buf bytes.Buffer
	if err := WriteNative(&buf, tr, true); err != nil {
		tst.Fatalf("WriteNative failed: %v", err)
	}

	tr2 := triangulation.New(0, 2, kernel.New)
	if err := ReadNative(&buf, tr2); err != nil {
		tst.Fatalf("ReadNative failed: %v", err)
	}
	chk.IntAssert(tr2.NumVertices(), tr.NumVertices())
}

func Test_native02_ascii_is_readable_text(tst *testing.T) {

	chk.PrintTitle("native02 (ASCII native dump is plain text, not gob binary)")

	tr := newTestTile()
	var buf bytes.Buffer
	if err := WriteNative(&buf, tr, false); err != nil {
		tst.Fatalf("WriteNative (ascii) failed: %v", err)
	}
	if !strings.Contains(buf.String(), "ddt-native") {
		tst.Errorf("ASCII native dump missing its header line")
	}
}
