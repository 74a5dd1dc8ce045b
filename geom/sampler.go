// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math/rand/v2"

// UniformSampler draws points uniformly distributed inside a bbox. It is the
// Go counterpart of CGAL::DDT's Uniform_point_in_bbox_generator, used to
// build the synthetic point clouds exercised by the out-of-core and random
// partitioner tests.
type UniformSampler struct {
	bbox Bbox
	rng  *rand.Rand
}

// NewUniformSampler returns a sampler over bbox seeded deterministically from
// seed so that test runs are reproducible.
func NewUniformSampler(bbox Bbox, seed uint64) *UniformSampler {
	return &UniformSampler{
		bbox: bbox,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next draws one point uniformly from the sampler's bbox.
func (s *UniformSampler) Next() Point {
	d := s.bbox.Dim()
	p := make(Point, d)
	for i := 0; i < d; i++ {
		lo, hi := s.bbox.Min[i], s.bbox.Max[i]
		p[i] = lo + s.rng.Float64()*(hi-lo)
	}
	return p
}

// NextN draws n points uniformly from the sampler's bbox.
func (s *UniformSampler) NextN(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = s.Next()
	}
	return pts
}
