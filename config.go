// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ddt is the top-level distributed Delaunay triangulation engine:
// construction-time configuration, the Run entry point driving
// splay.Bootstrap/splay.Splay to quiescence, and the finalization queries
// of spec §4.9. Grounded on CGAL::DDT's top-level algo_ddt.hpp driver and,
// for the ambient configuration/validation shape, on gofem's
// inp.Data/inp.Data.PostProcess (inp/sim.go).
package ddt

import (
	"fmt"

	"github.com/ddt-go/ddt/ddterr"
	"github.com/ddt-go/ddt/kernel"
	"github.com/ddt-go/ddt/partition"
	"github.com/ddt-go/ddt/schedule"
	"github.com/ddt-go/ddt/selector"
	"github.com/ddt-go/ddt/serializer"
)

// Config is the engine's construction-time configuration, modeled
// directly on inp.Data/inp.SolverData's "plain struct + SetDefault +
// PostProcess-style Validate" shape. Unlike inp.Data, the fields that
// hold behavior (Partitioner, Selector, Serializer, Scheduler) are
// interfaces rather than JSON-tagged strings, because this module
// constructs those collaborators with code (geom.Bbox, kernel.Factory)
// that does not round-trip through JSON the way gofem's "encoder" name
// does; Dim, Budget and Concurrency remain JSON-tagged so the numeric
// part of a run's configuration can still be recorded alongside a
// triangulation's metadata sidecar (spec §6.3/§6.4).
type Config struct {
	Dim         int `json:"dim"`
	Budget      int `json:"budget"`      // K of spec §4.6; 0 = unbounded
	Concurrency int `json:"concurrency"` // max_concurrency of spec §5 R4

	Partitioner partition.Partitioner `json:"-"`
	Selector    selector.Selector     `json:"-"`
	Serializer  serializer.Serializer `json:"-"`
	Scheduler   schedule.Scheduler    `json:"-"`
	Kernel      kernel.Factory        `json:"-"`
}

// SetDefault fills in the fields a caller is allowed to leave zero: an
// in-memory-only serializer, a sequential scheduler, and the reference
// kernel.Simple. Mirrors inp.Data.SetDefault's "pick the safe default
// encoder" pattern.
func (c *Config) SetDefault() {
	if c.Serializer == nil {
		c.Serializer = serializer.NewNone()
	}
	if c.Scheduler == nil {
		c.Scheduler = schedule.Sequential{}
	}
	if c.Kernel == nil {
		c.Kernel = kernel.New
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
}

// Validate enforces spec §7's "Invalid configuration" fatal checks and
// §5 R4's "K >= max_concurrency + 1", mirroring inp.Data.PostProcess's
// directory/encoder sanity checks.
func (c *Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("%w: Dim must be positive, got %d", ddterr.ErrInvalidConfig, c.Dim)
	}
	if c.Partitioner == nil {
		return fmt.Errorf("%w: Partitioner is required", ddterr.ErrInvalidConfig)
	}
	if c.Selector == nil {
		return fmt.Errorf("%w: Selector is required", ddterr.ErrInvalidConfig)
	}
	if c.Budget > 0 && c.Budget < c.Concurrency+1 {
		return fmt.Errorf("%w: Budget (%d) must be >= Concurrency+1 (%d) per R4", ddterr.ErrInvalidConfig, c.Budget, c.Concurrency+1)
	}
	return nil
}
