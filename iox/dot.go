// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"fmt"
	"io"
	"sort"

	"github.com/ddt-go/ddt/partition"
)

// WriteDOT writes edges (as produced by ddt.Engine.AdjacencyGraph) as a
// Graphviz DOT multigraph, for visualizing tile adjacency (spec §4.9).
// Self-loops (a tile adjacent to itself) are skipped: they carry no
// cross-tile information.
func WriteDOT(w io.Writer, edges map[[2]partition.ID]int) error {
	keys := make([][2]partition.ID, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	if _, err := fmt.Fprintln(w, "graph ddt_adjacency {"); err != nil {
		return err
	}
	for _, k := range keys {
		if k[0] == k[1] {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %d -- %d [weight=%d];\n", k[0], k[1], edges[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
