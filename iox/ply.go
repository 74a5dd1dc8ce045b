// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/triangulation"
)

// WritePLY writes tri's finite cells to w as an ASCII Stanford PLY mesh
// (vertices plus face list), for inspection in mesh viewers. Only
// dimension 2 or 3 is supported: PLY has no native simplex element for
// higher dimensions, so WritePLY returns an error rather than emitting a
// degenerate file for dim > 3.
func WritePLY(w io.Writer, tri *triangulation.Triangulation) error {
	if tri.Dim() != 2 && tri.Dim() != 3 {
		return fmt.Errorf("iox.WritePLY: PLY export requires dim 2 or 3, got %d", tri.Dim())
	}
	cells := tri.Kernel().FiniteCells()
	verts := make(map[kernel.Vertex]int)
	order := make([]kernel.Vertex, 0)
	for _, c := range cells {
		for _, v := range c {
			if _, ok := verts[v]; !ok {
				verts[v] = len(order)
				order = append(order, v)
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat ascii 1.0\n")
	fmt.Fprintf(bw, "element vertex %d\n", len(order))
	fmt.Fprintf(bw, "property float x\nproperty float y\nproperty float z\n")
	fmt.Fprintf(bw, "element face %d\n", len(cells))
	fmt.Fprintf(bw, "property list uchar int vertex_indices\nend_header\n")
	for _, v := range order {
		p := tri.Kernel().Point(v)
		z := 0.0
		if tri.Dim() == 3 {
			z = p[2]
		}
		fmt.Fprintf(bw, "%.15g %.15g %.15g\n", p[0], p[1], z)
	}
	for _, c := range cells {
		fmt.Fprintf(bw, "%d", len(c))
		for _, v := range c {
			fmt.Fprintf(bw, " %d", verts[v])
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
