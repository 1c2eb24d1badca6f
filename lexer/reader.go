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
Package lexer tokenizes glint source text into a flat, arena-backed token
stream. The lexer is byte-oriented (C1 reader, C3 classifier) and a pure
single pass: it never backtracks and never fails fatally, it only flags
individual tokens as malformed or incomplete.
*/
package lexer

/*
reader is a non-owning cursor over an input byte buffer. It never reads past
the end of the buffer; out-of-range peeks return NUL so callers never need to
special-case EOF.
*/
type reader struct {
	data []byte
	pos  int
}

/*
newReader creates a reader over the given buffer starting at offset 0.
*/
func newReader(data []byte) *reader {
	return &reader{data: data}
}

/*
valid returns true while there is at least one more byte to read.
*/
func (r *reader) valid() bool {
	return r.pos < len(r.data)
}

/*
current returns the byte at the current offset, or 0 if the reader has run
past the end of the buffer.
*/
func (r *reader) current() byte {
	if r.pos >= len(r.data) {
		return 0
	}
	return r.data[r.pos]
}

/*
peek returns the byte one past the current offset, or 0 if out of range.
*/
func (r *reader) peek() byte {
	if r.pos+1 >= len(r.data) {
		return 0
	}
	return r.data[r.pos+1]
}

/*
advance returns the current byte and moves the cursor forward by one.
*/
func (r *reader) advance() byte {
	b := r.current()
	if r.pos < len(r.data) {
		r.pos++
	}
	return b
}

/*
position returns the current byte offset.
*/
func (r *reader) position() int {
	return r.pos
}

/*
sliceFrom returns a borrowed view of the buffer from offset to the current
position.
*/
func (r *reader) sliceFrom(offset int) []byte {
	end := r.pos
	if end > len(r.data) {
		end = len(r.data)
	}
	if offset < 0 || offset > end {
		return nil
	}
	return r.data[offset:end]
}
