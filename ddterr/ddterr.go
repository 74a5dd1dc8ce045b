// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ddterr defines the sentinel errors and fatal-condition panic
// helper for the engine's two-tier error model: recoverable conditions
// are returned as plain errors; programming-error conditions (budget
// exhaustion, an invalid configuration) panic; ddt.Engine.Run does not
// recover them. Grounded on gofem's
// fem.Stop/fem.PanicOrNot (fem/errorhandler.go), simplified from their
// MPI-aware all-reduce form since this module is single-process
// goroutine-concurrent (spec §4.7), not distributed.
package ddterr

import (
	"errors"
	"fmt"
)

// Sentinel errors a caller can match with errors.Is.
var (
	// ErrBudgetExhausted names the condition in which tilestore.Store's
	// in-memory budget is full and no zero-pin eviction victim exists.
	// tilestore.Store.Pin reports that condition by panicking with a
	// plain message; no code in this module returns or wraps this value.
	ErrBudgetExhausted = errors.New("ddt: in-memory tile budget exhausted with no evictable victim")

	// ErrKernelFailure names a kernel.Kernel inconsistency reported by
	// Validate. triangulation.Triangulation.IsValid passes the kernel's
	// own error through unwrapped; no code returns this value.
	ErrKernelFailure = errors.New("ddt: kernel reported an inconsistent triangulation")

	// ErrSerializerFailure names a failed serializer.Serializer Save.
	// Save reports failure as a false result; no code returns this value.
	ErrSerializerFailure = errors.New("ddt: serializer I/O failed")

	// ErrInvalidConfig is returned by ddt.Config.Validate.
	ErrInvalidConfig = errors.New("ddt: invalid configuration")

	// ErrDuplicatePoint documents spec §7's "duplicate coordinates are a
	// silent no-op, not an error" — this sentinel is never actually
	// returned; it exists so callers have something to errors.Is against
	// if a future Kernel implementation chooses to surface duplicates
	// instead of silently discarding them.
	ErrDuplicatePoint = errors.New("ddt: duplicate point")
)

// Fatalf panics with the error fmt.Errorf(format, args...); it wraps a
// sentinel only when format uses %w. Mirrors
// fem.PanicOrNot's "dopanic" branch: callers use Fatalf for conditions
// that indicate a programming or configuration error rather than a
// recoverable runtime failure.
func Fatalf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
