// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ddt-run reads a whitespace-separated point cloud and runs the
// distributed triangulation engine over it, writing each tile's finite
// cells (main and non-main) as VTU. Grounded on main.go's flag-parse / defer-recover /
// Start-Run-End shape, generalized from one .sim file argument to a
// point-file argument plus partitioning flags.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ddt-go/ddt"
	"github.com/ddt-go/ddt/geom"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/schedule"
	"github.com/ddt-go/ddt/selector"
	"github.com/ddt-go/ddt/serializer"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	dim := flag.Int("dim", 2, "ambient dimension")
	gridN := flag.Int("grid", 2, "tiles per axis (grid partitioner)")
	sel := flag.String("selector", "min", "main-simplex selector: min, max, median")
	budget := flag.Int("budget", 0, "in-memory tile budget; 0 = unbounded")
	workers := flag.Int("workers", 1, "scheduler worker count; 1 = sequential")
	dirOut := flag.String("diroutput", "", "output directory for per-tile VTU; empty = skip")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: ddt-run [flags] <points-file>")
		os.Exit(2)
	}

	pts, err := readPoints(flag.Arg(0), *dim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	bbox := geom.NewBbox(*dim)
	for _, p := range pts {
		bbox.Expand(p)
	}

	cfg := ddt.Config{
		Dim:         *dim,
		Budget:      *budget,
		Concurrency: *workers,
		Partitioner: partition.NewUniformGrid(bbox, *gridN),
		Selector:    selector.New(*sel),
		Serializer:  serializer.NewNone(),
	}
	if *workers > 1 {
		cfg.Scheduler = schedule.NewPool(*workers)
	} else {
		cfg.Scheduler = schedule.Sequential{}
	}

	eng := ddt.New(cfg)
	passes := eng.Run(pts, nil)
	fmt.Printf("converged after %d splay passes\n", passes)

	if err := eng.IsValid(); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v\n", err)
	}

	if *dirOut != "" {
		if err := os.MkdirAll(*dirOut, 0777); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		for _, id := range eng.Tiles() {
			path := fmt.Sprintf("%s/tile_%v.vtu", *dirOut, id)
			fh, err := os.Create(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(1)
			}
			err = eng.WriteVTU(id, fh)
			fh.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "WARNING: tile %v: %v\n", id, err)
			}
		}
	}
}

func readPoints(path string, dim int) ([]geom.Point, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var pts []geom.Point
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < dim {
			return nil, fmt.Errorf("readPoints: line %q has fewer than %d coordinates", line, dim)
		}
		p := make(geom.Point, dim)
		for i := 0; i < dim; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, err
			}
			p[i] = v
		}
		pts = append(pts, p)
	}
	return pts, sc.Err()
}
