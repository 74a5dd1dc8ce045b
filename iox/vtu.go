// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/triangulation"
)

// vtkCellType maps an ambient dimension to the VTK cell type code for a
// full-dimensional simplex, the same table tools/GenVtu.go hard-codes via
// shp.VTK_* (shp's constants cover the FEM shape library's richer cell
// zoo; here only the two simplex types the engine ever emits are named).
const (
	vtkTriangle = 5
	vtkTetra    = 10
)

// WriteVTU writes tri's finite cells as an ASCII VTK UnstructuredGrid
// (.vtu), in the same hand-written-XML style as tools/GenVtu.go (string
// formatting into a writer, not encoding/xml — the files are large,
// flat, and never need Go-side re-parsing). Only dim 2 or 3 is
// supported, matching WritePLY's restriction.
func WriteVTU(w io.Writer, tri *triangulation.Triangulation) error {
	cellType, err := vtkCellTypeFor(tri.Dim())
	if err != nil {
		return err
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
	fmt.Fprint(bw, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	fmt.Fprintf(bw, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(order), len(cells))

	fmt.Fprint(bw, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range order {
		p := tri.Kernel().Point(v)
		z := 0.0
		if tri.Dim() == 3 {
			z = p[2]
		}
		fmt.Fprintf(bw, "%23.15e %23.15e %23.15e ", p[0], p[1], z)
	}
	fmt.Fprint(bw, "\n</DataArray>\n</Points>\n")

	fmt.Fprint(bw, "<PointData Scalars=\"home\">\n<DataArray type=\"Int32\" Name=\"home\" format=\"ascii\">\n")
	for _, v := range order {
		fmt.Fprintf(bw, "%d ", int(tri.Home(v)))
	}
	fmt.Fprint(bw, "\n</DataArray>\n</PointData>\n")

	fmt.Fprint(bw, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range cells {
		for _, v := range c {
			fmt.Fprintf(bw, "%d ", verts[v])
		}
	}
	fmt.Fprint(bw, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for _, c := range cells {
		offset += len(c)
		fmt.Fprintf(bw, "%d ", offset)
	}
	fmt.Fprint(bw, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for range cells {
		fmt.Fprintf(bw, "%d ", cellType)
	}
	fmt.Fprint(bw, "\n</DataArray>\n</Cells>\n")

	fmt.Fprint(bw, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	return bw.Flush()
}

// WritePVTU writes the lightweight parallel-collection wrapper (.pvtu)
// tying together one VTU piece per tile, the same role tools/GenVtu.go's
// b_pvd_ge .pvd collection buffer plays across time steps, here applied
// across tiles instead of time steps.
func WritePVTU(w io.Writer, dim int, pieceFiles map[partition.ID]string) error {
	if _, err := vtkCellTypeFor(dim); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "<?xml version=\"1.0\"?>\n<VTKFile type=\"PUnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<PUnstructuredGrid GhostLevel=\"0\">\n")
	fmt.Fprint(bw, "<PPoints><PDataArray type=\"Float64\" NumberOfComponents=\"3\"/></PPoints>\n")
	fmt.Fprint(bw, "<PPointData Scalars=\"home\"><PDataArray type=\"Int32\" Name=\"home\"/></PPointData>\n")
	for _, id := range sortedIDs(pieceFiles) {
		fmt.Fprintf(bw, "<Piece Source=\"%s\"/>\n", pieceFiles[id])
	}
	fmt.Fprint(bw, "</PUnstructuredGrid>\n</VTKFile>\n")
	return bw.Flush()
}

func vtkCellTypeFor(dim int) (int, error) {
	switch dim {
	case 2:
		return vtkTriangle, nil
	case 3:
		return vtkTetra, nil
	default:
		return 0, fmt.Errorf("iox.WriteVTU: VTU export requires dim 2 or 3, got %d", dim)
	}
}

func sortedIDs(m map[partition.ID]string) []partition.ID {
	ids := make([]partition.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
