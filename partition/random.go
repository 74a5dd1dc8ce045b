// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"math/rand/v2"

	"github.com/ddt-go/ddt/geom"
)

// Random assigns points to a uniformly random id in [a, b]. For testing
// only, as in CGAL::DDT::Random_partitioner: it is correct but defeats the
// purpose of spatial locality.
type Random struct {
	a, b ID
	rng  *rand.Rand
}

// NewRandom returns a Random partitioner over ids [a, b], seeded for
// reproducibility.
func NewRandom(a, b ID, seed uint64) *Random {
	return &Random{a: a, b: b, rng: rand.New(rand.NewPCG(seed, seed))}
}

// ID implements Partitioner.
func (r *Random) ID(p geom.Point) ID {
	n := int(r.b-r.a) + 1
	return r.a + ID(r.rng.IntN(n))
}

// Size implements Partitioner.
func (r *Random) Size() int { return int(r.b-r.a) + 1 }

// Each implements Partitioner.
func (r *Random) Each(yield func(ID) bool) {
	for i := r.a; i <= r.b; i++ {
		if !yield(i) {
			return
		}
	}
}
