// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox implements the engine's output formats (spec §6.3/§6.4):
// the native round-trip stream, and read-only export formats for
// downstream tools (PLY, VTU/PVTU, GeoJSON, DOT). Grounded on gofem's
// fem.GetEncoder/GetDecoder gob-vs-json choice (fem/fileio.go) and on
// tools/GenVtu.go's hand-written VTK XML writer.
package iox

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ddt-go/ddt/triangulation"
)

// WriteNative writes tri's full, round-trippable state to w. binary
// selects gob (via Triangulation.EncodeTo) over the human-readable ASCII
// dump, mirroring fem.GetEncoder's "gob" vs "json" switch — here the
// ASCII alternative is a plain text dump rather than JSON, since it exists
// for a human to read, not for a second implementation to parse (see
// ReadNative).
func WriteNative(w io.Writer, tri *triangulation.Triangulation, binary bool) error {
	if binary {
		return tri.EncodeTo(w)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ddt-native dim=%d id=%v\n", tri.Dim(), tri.ID())
	for _, c := range tri.Kernel().FiniteCells() {
		for _, v := range c {
			fmt.Fprintf(bw, "%v:%s@%v ", v, tri.Kernel().Point(v).String(), tri.Home(v))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// ReadNative restores tri from r, written by WriteNative with binary
// true. The ASCII variant is write-only (a readable dump for humans and
// other tools, not a second wire format this package also parses); r
// must have been produced with binary=true.
func ReadNative(r io.Reader, tri *triangulation.Triangulation) error {
	return tri.DecodeFrom(r)
}
