// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import "github.com/ddt-go/ddt/geom"

// PointSource abstracts a large external point supply an engine run
// could stream from instead of holding every point in memory up front
// (e.g. a LAS/LAZ point cloud reader — the motivating case in
// original_source/DDT's point-cloud-scale partitioner examples).
// Documented here as the shape a production point reader would
// implement; this module ships no concrete implementation, since a real
// LAS reader pulls in a C-library binding outside this corpus's
// dependency surface, per SPEC_FULL.md §9.
type PointSource interface {
	// Next returns the next point and whether one was available.
	Next() (geom.Point, bool)
}
