// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ddt-go/ddt/partition"
)

func Test_min01(tst *testing.T) {

	chk.PrintTitle("min01")

	s := &Min{}
	for _, id := range []partition.ID{5, 1, 3} {
		s.Insert(id)
	}
	chk.IntAssert(int(s.Select()), 1)
	chk.IntAssert(int(s.Value()), 1)

	s.Clear()
	s.Insert(9)
	chk.IntAssert(int(s.Select()), 9)
}

func Test_min02_panics_empty(tst *testing.T) {

	chk.PrintTitle("min02 (panics with no inserted values)")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Select should panic when nothing was Inserted")
		}
	}()
	(&Min{}).Select()
}

func Test_max01(tst *testing.T) {

	chk.PrintTitle("max01")

	s := &Max{}
	for _, id := range []partition.ID{5, 1, 3} {
		s.Insert(id)
	}
	chk.IntAssert(int(s.Select()), 5)
	chk.IntAssert(int(s.Value()), 5)
}

func Test_median01_odd(tst *testing.T) {

	chk.PrintTitle("median01 (odd multiset)")

	s := &Median{}
	for _, id := range []partition.ID{5, 1, 3} {
		s.Insert(id)
	}
	chk.IntAssert(int(s.Select()), 3)
}

func Test_median02_even_picks_lower(tst *testing.T) {

	chk.PrintTitle("median02 (even multiset picks the lower median, per spec)")

	s := &Median{}
	for _, id := range []partition.ID{1, 2, 3, 4} {
		s.Insert(id)
	}
	// sorted = [1,2,3,4]; lower median index = (4-1)/2 = 1 -> value 2
	chk.IntAssert(int(s.Select()), 2)
}

func Test_median03_order_independent(tst *testing.T) {

	chk.PrintTitle("median03 (order of Insert must not matter)")

	a := &Median{}
	b := &Median{}
	for _, id := range []partition.ID{4, 1, 3, 2} {
		a.Insert(id)
	}
	for _, id := range []partition.ID{1, 2, 3, 4} {
		b.Insert(id)
	}
	if a.Select() != b.Select() {
		tst.Errorf("Median.Select must be independent of insertion order")
	}
}

func Test_new01_by_name(tst *testing.T) {

	chk.PrintTitle("new01 (New constructs by name)")

	cases := []struct {
		kind string
		want partition.ID
	}{
		{"min", 1},
		{"max", 5},
		{"median", 3},
		{"unknown-defaults-to-min", 1},
	}
	for _, c := range cases {
		s := New(c.kind)
		for _, id := range []partition.ID{5, 1, 3} {
			s.Insert(id)
		}
		if s.Select() != c.want {
			tst.Errorf("New(%q).Select() = %v, want %v", c.kind, s.Select(), c.want)
		}
	}
}
