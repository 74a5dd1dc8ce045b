// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ddtlog wraps log/slog the same shape gofem's inp.InitLogFile /
// inp.LogErr / inp.LogErrCond wrap the plain log package
// (inp/logging.go): one process-wide logger, a per-worker log file
// naming convention, and small err/condition helpers. slog is used in
// place of the teacher's bare log package because its structured
// key/value fields attach naturally to the engine's required events
// (tile_loaded, tile_saved, pass_complete) without hand-rolled
// string formatting.
package ddtlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var logFile *os.File

// logger is the process-wide structured logger, defaulting to stderr
// until Init is called.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init opens "<dirout>/<fnamekey>_w<worker>.log" and connects the
// package-wide logger to it, mirroring InitLogFile's "<dirout>/<fnamekey>_p<rank>.log"
// per-process naming, generalized from MPI rank to scheduler worker index
// since this module's concurrency model is goroutines, not processes
// (spec §4.7/§5).
func Init(dirout, fnamekey string, worker int) error {
	fh, err := os.Create(fmt.Sprintf("%s/%s_w%d.log", dirout, fnamekey, worker))
	if err != nil {
		return err
	}
	logFile = fh
	logger = slog.New(slog.NewTextHandler(fh, nil))
	return nil
}

// New returns a logger writing to w, tagged with the given worker rank —
// for callers (e.g. tests) that want an isolated logger instead of the
// package-wide one Init configures.
func New(w io.Writer, rank int) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil)).With("worker", rank)
}

// Flush closes the log file opened by Init (mirrors FlushLog).
func Flush() {
	if logFile != nil {
		logFile.Close()
	}
}

// Default returns the package-wide logger.
func Default() *slog.Logger { return logger }

// Err logs err (if non-nil) against msg and reports whether the caller
// should treat this as a stop condition. Mirrors inp.LogErr.
func Err(err error, msg string, args ...any) (stop bool) {
	if err != nil {
		logger.Error(msg, append(args, "err", err)...)
		return true
	}
	return false
}

// ErrCond logs msg as an error when condition is true and reports
// condition back, mirroring inp.LogErrCond.
func ErrCond(condition bool, msg string, args ...any) (stop bool) {
	if condition {
		logger.Error(msg, args...)
	}
	return condition
}
