// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ddtlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_new01_tags_worker(tst *testing.T) {

	chk.PrintTitle("new01 (New tags every record with the worker rank)")

	var buf bytes.Buffer
	l := New(&buf, 3)
	l.Info("hello")
	out := buf.String()
	if !strings.Contains(out, "worker=3") {
		tst.Errorf("log output missing worker=3, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		tst.Errorf("log output missing the message, got %q", out)
	}
}

func Test_err01_logs_and_reports_stop(tst *testing.T) {

	chk.PrintTitle("err01 (Err logs and reports stop=true on a non-nil error)")

	// swap the package logger temporarily so this test does not depend on
	// (or disturb) the process-wide default.
	var buf bytes.Buffer
	prev := logger
	logger = New(&buf, 0)
	defer func() { logger = prev }()

	if Err(nil, "should not log") {
		tst.Errorf("Err(nil, ...) should report stop=false")
	}
	if buf.Len() != 0 {
		tst.Errorf("Err(nil, ...) should not log anything")
	}

	if !Err(errContentFor("boom"), "save failed") {
		tst.Errorf("Err should report stop=true for a non-nil error")
	}
	if !strings.Contains(buf.String(), "save failed") {
		tst.Errorf("Err should have logged the message")
	}
}

func Test_errcond01(tst *testing.T) {

	chk.PrintTitle("errcond01 (ErrCond mirrors its condition and logs only when true)")

	var buf bytes.Buffer
	prev := logger
	logger = New(&buf, 1)
	defer func() { logger = prev }()

	if ErrCond(false, "unreachable") {
		tst.Errorf("ErrCond(false, ...) should report false")
	}
	if buf.Len() != 0 {
		tst.Errorf("ErrCond(false, ...) should not log")
	}
	if !ErrCond(true, "budget low") {
		tst.Errorf("ErrCond(true, ...) should report true")
	}
	if !strings.Contains(buf.String(), "budget low") {
		tst.Errorf("ErrCond(true, ...) should have logged the message")
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

func errContentFor(s string) error { return testErr(s) }
