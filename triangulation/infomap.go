// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulation

// InfoMap projects a vertex's Data to a typed value, generalizing the
// original source's swappable property maps (property_map/Constant_property_map.h,
// property_map/First_property_map.h) into one small generic type instead of
// a family of interfaces: a caller can plug a constant projection, a
// first-field projection, or any custom function without Tile itself
// knowing which one is in use.
type InfoMap[T any] struct {
	constant T
	fn       func(Data) T
}

// ConstantInfoMap returns an InfoMap that ignores its input and always
// answers v. Grounded on CGAL::DDT::Constant_property_map.
func ConstantInfoMap[T any](v T) InfoMap[T] {
	return InfoMap[T]{constant: v}
}

// FirstInfoMap returns an InfoMap that type-asserts Data.Info to T, falling
// back to the zero value when Info is unset or of a different type.
// Grounded on CGAL::DDT::First_property_map.
func FirstInfoMap[T any]() InfoMap[T] {
	return InfoMap[T]{fn: func(d Data) T {
		if v, ok := d.Info.(T); ok {
			return v
		}
		var zero T
		return zero
	}}
}

// FuncInfoMap wraps an arbitrary projection function.
func FuncInfoMap[T any](fn func(Data) T) InfoMap[T] {
	return InfoMap[T]{fn: fn}
}

// Get applies the map to d.
func (m InfoMap[T]) Get(d Data) T {
	if m.fn != nil {
		return m.fn(d)
	}
	return m.constant
}
