/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"fmt"

	"github.com/glint-lang/glint/glintutil"
)

/*
isSpecial mirrors spec.md §4.2 point 4: any ASCII punctuation byte is
"special" except the underscore, which is always treated as part of an
identifier.
*/
func isSpecial(b byte) bool {
	if b == '_' {
		return false
	}
	if b >= 0x21 && b <= 0x7e {
		switch {
		case b >= '0' && b <= '9':
			return false
		case b >= 'a' && b <= 'z':
			return false
		case b >= 'A' && b <= 'Z':
			return false
		}
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

/*
Lexer is a single-pass, stateful tokenizer (spec.md §4.2, component C3). It
owns a token arena and produces a linked list of tokens, tracking line/column
positions and leading-whitespace indentation as it goes.
*/
type Lexer struct {
	r      *reader
	arena  *Arena
	logger *glintutil.MemoryLogger // records non-fatal lexer diagnostics

	currentLine            int
	lastNewlineOffset      int // offset just past the last newline, used to compute column
	trackIndents           bool
	indentTrackingDisabled bool

	head *Token
	tail *Token
}

/*
New creates a lexer over the given input buffer. The input must remain valid
for the lifetime of the lexer only if the caller later wants to recompute
spans against it; token values themselves are always arena-owned copies.
*/
func New(input []byte) *Lexer {
	return NewSized(input, tokenBlockSize, tokenBlockSize)
}

/*
NewSized creates a lexer whose token arena uses the given initial block size
and grow increment, per compiler.Config's TokenArenaBlockSize/
ArenaGrowIncrement options.
*/
func NewSized(input []byte, blockSize, growIncrement int) *Lexer {
	return &Lexer{
		r:            newReader(input),
		arena:        NewArenaSize(blockSize, growIncrement),
		logger:       glintutil.NewMemoryLogger(64),
		currentLine:  1,
		trackIndents: true,
	}
}

/*
Arena returns the token arena backing every Token this lexer has produced,
for a caller (compiler.Compile) that wants to keep it alive alongside the
AST arena until Result.Free is called.
*/
func (l *Lexer) Arena() *Arena {
	return l.arena
}

/*
DisableIndentTracking turns off indent-token emission entirely for the rest
of this lexer's run, for callers that only need the operator/literal token
stream (e.g. syntax highlighting) and have no use for spec.md §4.2's
indent-space/indent-tab tokens.
*/
func (l *Lexer) DisableIndentTracking() {
	l.trackIndents = false
	l.indentTrackingDisabled = true
}

/*
Diagnostics returns the non-fatal lexer diagnostics recorded so far (e.g.
malformed numbers, unterminated strings), newest last.
*/
func (l *Lexer) Diagnostics() []string {
	return l.logger.Slice()
}

func (l *Lexer) diagf(format string, args ...interface{}) {
	l.logger.LogError(fmt.Sprintf(format, args...))
}

/*
Run lexes the entire input and returns the head of the resulting token list,
or nil for empty/whitespace-only input. The lexer is total: it always
returns a complete list, even for malformed input (spec.md §4.2 "Failure
semantics").
*/
func (l *Lexer) Run() *Token {
	for {
		tok := l.next()
		if tok == nil {
			break
		}
		l.append(tok)
	}
	return l.head
}

/*
append links tok onto the chronological token list and arranges the
Successive flag per spec.md §4.2.
*/
func (l *Lexer) append(tok *Token) {
	if l.tail != nil {
		l.tail.Next = tok
	}
	if l.head == nil {
		l.head = tok
	}
	if tok.Flags.Type() != TypeIndent && tok.Flags.Type() != TypeIndentSpace && tok.Flags.Type() != TypeIndentTab {
		if l.tail != nil && !l.isIndentToken(l.tail) && l.tail.End.Offset == tok.Start.Offset {
			tok.Flags |= Successive
		}
	}
	l.tail = tok
}

func (l *Lexer) isIndentToken(t *Token) bool {
	ty := t.Flags.Type()
	return ty == TypeIndent || ty == TypeIndentSpace || ty == TypeIndentTab
}

/*
next classifies and consumes exactly one token, per the precedence order in
spec.md §4.2.
*/
func (l *Lexer) next() *Token {
	for {
		if !l.r.valid() {
			return nil
		}

		b := l.r.current()

		if b == '\n' || b == '\r' {
			l.consumeNewline()
			continue
		}

		if isSpace(b) {
			if tok := l.lexIndentOrSkip(); tok != nil {
				return tok
			}
			continue
		}

		if isDigit(b) {
			return l.lexNumber()
		}

		if b == '"' || b == '`' {
			return l.lexString(b)
		}

		if isSpecial(b) {
			return l.lexSpecial()
		}

		return l.lexIdentifier()
	}
}

func (l *Lexer) position() SourcePosition {
	off := l.r.position()
	return SourcePosition{Line: l.currentLine, Column: off - l.lastNewlineOffset + 1, Offset: off}
}

/*
consumeNewline folds "\r\n" into one logical newline, per spec.md §4.2 point 1.
*/
func (l *Lexer) consumeNewline() {
	b := l.r.advance()
	if b == '\r' && l.r.current() == '\n' {
		l.r.advance()
	}
	l.currentLine++
	l.lastNewlineOffset = l.r.position()
	if !l.indentTrackingDisabled {
		l.trackIndents = true
	}
}

/*
lexIndentOrSkip implements spec.md §4.2 point 2. Returns nil when the run is
discarded (not at line start, or the line is purely blank).
*/
func (l *Lexer) lexIndentOrSkip() *Token {
	start := l.position()
	startOffset := l.r.position()
	first := l.r.current()

	for isSpace(l.r.current()) && l.r.current() == first {
		l.r.advance()
	}

	if !l.trackIndents {
		return nil
	}

	// Purely blank line: suppress emission per spec.md §4.2 point 2.
	if l.r.current() == '\n' || l.r.current() == '\r' || !l.r.valid() {
		return nil
	}

	typ := TypeIndentSpace
	if first == '\t' {
		typ = TypeIndentTab
	}

	value := l.arena.copyBytes(l.r.sliceFrom(startOffset))
	tok := l.arena.alloc()
	*tok = Token{
		Flags:  typ,
		Length: len(value),
		Value:  value,
		Start:  start,
		End:    l.position(),
	}
	l.trackIndents = false
	return tok
}

/*
lexNumber implements spec.md §4.2 point 3.
*/
func (l *Lexer) lexNumber() *Token {
	start := l.position()
	startOffset := l.r.position()

	typ := TypeInteger
	malformed := false
	dots := 0

	for l.r.valid() {
		b := l.r.current()
		if isDigit(b) {
			l.r.advance()
			continue
		}
		if b == '.' {
			dots++
			if dots > 1 {
				malformed = true
			} else {
				typ = TypeDouble
			}
			l.r.advance()
			continue
		}
		if isSpace(b) || b == '\n' || b == '\r' {
			break
		}
		if isSpecial(b) {
			break
		}
		// A trailing 'f' on a double ends the number; it is handled below.
		if b == 'f' && typ == TypeDouble {
			break
		}
		// Any other stray byte mid-number: flag malformed but keep consuming,
		// per spec.md §4.2 point 3.
		malformed = true
		l.r.advance()
	}

	// Trailing 'f' on a double promotes to float.
	if typ == TypeDouble && l.r.current() == 'f' {
		l.r.advance()
		typ = TypeFloat
	}

	value := l.arena.copyBytes(l.r.sliceFrom(startOffset))
	flags := TypeNumber | typ
	if malformed {
		flags |= TypeErrorMalformed
		l.diagf("malformed number %q at %s", value, start)
	}

	tok := l.arena.alloc()
	*tok = Token{Flags: flags, Length: len(value), Value: value, Start: start, End: l.position()}
	l.trackIndents = false
	return tok
}

/*
lexString implements spec.md §4.2 "String sub-lexer". quote is either '"'
(a plain string, newlines terminate it as error-incomplete) or '`' (a
template string, newlines are allowed and tracked).
*/
func (l *Lexer) lexString(quote byte) *Token {
	start := l.position()
	l.r.advance() // opening quote
	payloadStart := l.r.position()

	incomplete := false
	for {
		if !l.r.valid() {
			incomplete = true
			break
		}
		b := l.r.current()
		if b == quote {
			break
		}
		if b == '\n' {
			if quote == '"' {
				incomplete = true
				break
			}
			l.currentLine++
			l.r.advance()
			l.lastNewlineOffset = l.r.position()
			continue
		}
		l.r.advance()
	}

	payload := l.r.sliceFrom(payloadStart)
	value := l.arena.copyBytes(payload)

	if !incomplete {
		l.r.advance() // closing quote
	}

	typ := TypeString
	if quote == '`' {
		typ = TypeTemplateString
	}
	flags := typ
	if incomplete {
		flags |= TypeError | TypeErrorIncomplete
		l.diagf("unterminated string starting at %s", start)
	}

	tok := l.arena.alloc()
	*tok = Token{Flags: flags, Length: len(value), Value: value, Start: start, End: l.position()}
	l.trackIndents = false
	return tok
}

/*
lexSpecial emits a single special-character token; multi-byte operators are
never fused here (spec.md §4.2 point 4) - fusion is deferred to the parser's
operator table via the Successive flag.
*/
func (l *Lexer) lexSpecial() *Token {
	start := l.position()
	startOffset := l.r.position()
	l.r.advance()
	value := l.arena.copyBytes(l.r.sliceFrom(startOffset))
	tok := l.arena.alloc()
	*tok = Token{Flags: TypeSpecial, Length: len(value), Value: value, Start: start, End: l.position()}
	l.trackIndents = false
	return tok
}

/*
lexIdentifier implements spec.md §4.2 point 5.
*/
func (l *Lexer) lexIdentifier() *Token {
	start := l.position()
	startOffset := l.r.position()

	for l.r.valid() {
		b := l.r.current()
		if isSpace(b) || b == '\n' || b == '\r' {
			break
		}
		if isSpecial(b) {
			break
		}
		l.r.advance()
	}

	value := l.arena.copyBytes(l.r.sliceFrom(startOffset))
	tok := l.arena.alloc()
	*tok = Token{Flags: TypeIdentifier, Length: len(value), Value: value, Start: start, End: l.position()}
	l.trackIndents = false
	return tok
}

