/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package glintutil carries glint's ambient stack: the level-aware logging
that backs the lexer's and parser's non-fatal diagnostics feeds
(SPEC_FULL.md §2 "Logging"), adapted from the teacher's util package.
*/
package glintutil

import (
	"fmt"
	"io"
	"log"
	"strings"

	"devt.de/krotik/common/datautil"
)

/*
Logger is the minimal logging surface the lexer, parser and compiler depend
on. It is satisfied by MemoryLogger, StdOutLogger, and NullLogger below.
*/
type Logger interface {
	LogError(v ...interface{})
	LogInfo(v ...interface{})
	LogDebug(v ...interface{})
}

/*
LogLevel names one of the three logging tiers glint supports, mirroring the
teacher's util.LogLevel.
*/
type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Error LogLevel = "error"
)

/*
LogLevelLogger wraps a Logger with level-based filtering.
*/
type LogLevelLogger struct {
	logger Logger
	level  LogLevel
}

/*
NewLogLevelLogger wraps logger, filtering messages below level.
*/
func NewLogLevelLogger(logger Logger, level string) (*LogLevelLogger, error) {
	l := LogLevel(strings.ToLower(level))
	if l != Debug && l != Info && l != Error {
		return nil, fmt.Errorf("invalid log level: %v", level)
	}
	return &LogLevelLogger{logger: logger, level: l}, nil
}

func (ll *LogLevelLogger) Level() LogLevel {
	return ll.level
}

func (ll *LogLevelLogger) LogError(v ...interface{}) {
	ll.logger.LogError(v...)
}

func (ll *LogLevelLogger) LogInfo(v ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(v...)
	}
}

func (ll *LogLevelLogger) LogDebug(v ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(v...)
	}
}

/*
MemoryLogger collects log messages in a devt.de/krotik/common/datautil
RingBuffer. lexer.Lexer and parser.Parser each hold one internally to back
their own Diagnostics() feeds; it is also exported as a standalone Logger for
callers that want a queryable in-memory log independent of a single compile
call.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a memory logger retaining the last size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (ml *MemoryLogger) LogInfo(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(v...))
}

func (ml *MemoryLogger) LogDebug(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
Slice returns the current log contents in insertion order.
*/
func (ml *MemoryLogger) Slice() []string {
	raw := ml.RingBuffer.Slice()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}

/*
StdOutLogger writes log messages via the standard log package.
*/
type StdOutLogger struct {
	stdlog func(v ...interface{})
}

func NewStdOutLogger() *StdOutLogger {
	return &StdOutLogger{stdlog: log.Print}
}

func (sl *StdOutLogger) LogError(v ...interface{}) {
	sl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (sl *StdOutLogger) LogInfo(v ...interface{}) {
	sl.stdlog(fmt.Sprint(v...))
}

func (sl *StdOutLogger) LogDebug(v ...interface{}) {
	sl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
NullLogger discards every message.
*/
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (nl *NullLogger) LogError(v ...interface{}) {}
func (nl *NullLogger) LogInfo(v ...interface{})  {}
func (nl *NullLogger) LogDebug(v ...interface{}) {}

/*
BufferLogger writes log messages to an io.Writer, e.g. for capturing
glintc's diagnostics output into a file.
*/
type BufferLogger struct {
	buf io.Writer
}

func NewBufferLogger(buf io.Writer) *BufferLogger {
	return &BufferLogger{buf: buf}
}

func (bl *BufferLogger) LogError(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (bl *BufferLogger) LogInfo(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprint(v...))
}

func (bl *BufferLogger) LogDebug(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}
