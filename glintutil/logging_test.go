/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package glintutil

import (
	"bytes"
	"fmt"
	"testing"
)

func TestMemoryLogger(t *testing.T) {
	ml := NewMemoryLogger(5)

	ml.LogDebug("test")
	ml.LogInfo("test")

	if ml.String() != `debug: test
test` {
		t.Error("unexpected result:", ml.String())
		return
	}

	if res := fmt.Sprint(ml.Slice()); res != "[debug: test test]" {
		t.Error("unexpected result:", res)
		return
	}

	ml.Reset()
	ml.LogError("test1")

	if res := fmt.Sprint(ml.Slice()); res != "[error: test1]" {
		t.Error("unexpected result:", res)
		return
	}

	if res := ml.Size(); res != 1 {
		t.Error("unexpected result:", res)
		return
	}
}

func TestNullAndStdOutLoggerCallable(t *testing.T) {
	nl := NewNullLogger()
	nl.LogDebug("test")
	nl.LogInfo("test")
	nl.LogError("test")

	sol := NewStdOutLogger()
	sol.stdlog = func(v ...interface{}) {}
	sol.LogDebug("test")
	sol.LogInfo("test")
	sol.LogError("test")
}

func TestLogLevelLoggerRejectsUnknownLevel(t *testing.T) {
	ml := NewMemoryLogger(5)
	if _, err := NewLogLevelLogger(ml, "bogus"); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestLogLevelLoggerFiltering(t *testing.T) {
	ml := NewMemoryLogger(5)
	ll, err := NewLogLevelLogger(ml, "debug")
	if err != nil {
		t.Fatal(err)
	}

	ll.LogDebug("d")
	ll.LogInfo("i")
	ll.LogError("e")

	if ml.String() != `debug: d
i
error: e` {
		t.Error("unexpected result:", ml.String())
	}

	ml.Reset()
	ll, _ = NewLogLevelLogger(ml, "info")
	ll.LogDebug("d")
	ll.LogInfo("i")
	ll.LogError("e")

	if ml.String() != `i
error: e` {
		t.Error("unexpected result:", ml.String())
	}

	ml.Reset()
	ll, _ = NewLogLevelLogger(ml, "error")
	if ll.Level() != Error {
		t.Errorf("unexpected level: %v", ll.Level())
	}
	ll.LogDebug("d")
	ll.LogInfo("i")
	ll.LogError("e")

	if ml.String() != `error: e` {
		t.Error("unexpected result:", ml.String())
	}
}

func TestBufferLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	bl := NewBufferLogger(buf)

	bl.LogDebug("d")
	bl.LogInfo("i")
	bl.LogError("e")

	want := "debug: d\ni\nerror: e\n"
	if buf.String() != want {
		t.Errorf("unexpected result: %q, want %q", buf.String(), want)
	}
}
