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

import "fmt"

/*
SourcePosition is a (line, column, byte-offset) triple. Line and column are
1-based, offset is 0-based, per spec.md §3.
*/
type SourcePosition struct {
	Line   int
	Column int
	Offset int
}

/*
String returns a human readable "line:column" representation.
*/
func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

/*
Flags is a bitset combining one or more TokenType bits with zero or more token
attributes (spec.md §3 "Token"). Most tokens carry a single type bit; numbers
carry TypeNumber plus TypeInteger, TypeDouble or TypeFloat, and error tokens
add TypeError/TypeErrorIncomplete/TypeErrorMalformed to their base type.
*/
type Flags uint32

/*
TokenType values. They occupy the low bits of Flags so that "Flags & TypeMask"
extracts the type bits. Unlike the C source this was distilled from,
error-malformed and error-incomplete each get their own bit (spec.md §9 flags
the original's conflation of the two as a bug not to be repeated).
*/
const (
	TypeIdentifier Flags = 1 << iota
	TypeNumber
	TypeInteger
	TypeFloat
	TypeDouble
	TypeIndent
	TypeIndentSpace
	TypeIndentTab
	TypeString
	TypeTemplateString
	TypeSpecial
	TypeError
	TypeErrorIncomplete
	TypeErrorMalformed

	numTypeBits = iota

	// Successive marks a non-indent token that starts exactly at the previous
	// non-indent token's End offset (End is exclusive), i.e. no byte separates
	// the two (spec.md §3 invariant ii).
	Successive Flags = 1 << numTypeBits
)

/*
TypeMask isolates the type portion of a Flags value.
*/
const TypeMask = Flags(1)<<numTypeBits - 1

/*
Type returns the TokenType bits of f, with attributes masked off.
*/
func (f Flags) Type() Flags {
	return f & TypeMask
}

/*
Has reports whether f carries every bit in want (type or attribute).
*/
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

/*
IsError reports whether f carries any of the three error bits.
*/
func (f Flags) IsError() bool {
	return f.Has(TypeError) || f.Has(TypeErrorIncomplete) || f.Has(TypeErrorMalformed)
}

var typeNames = map[Flags]string{
	TypeIdentifier:      "identifier",
	TypeNumber:          "number",
	TypeInteger:         "integer",
	TypeFloat:           "float",
	TypeDouble:          "double",
	TypeIndent:          "indent",
	TypeIndentSpace:     "indent-space",
	TypeIndentTab:       "indent-tab",
	TypeString:          "string",
	TypeTemplateString:  "template-string",
	TypeSpecial:         "special",
	TypeError:           "error",
	TypeErrorIncomplete: "error-incomplete",
	TypeErrorMalformed:  "error-malformed",
}

/*
String renders a Flags value as "type|attr|attr" for diagnostics and tests,
listing every set type bit in bit order (e.g. "number|double|error-malformed").
*/
func (f Flags) String() string {
	s := ""
	for bit := Flags(1); bit <= TypeMask; bit <<= 1 {
		if f&bit != 0 {
			if s != "" {
				s += "|"
			}
			s += typeNames[bit]
		}
	}
	if s == "" {
		s = "unknown"
	}
	if f.Has(Successive) {
		s += "|successive"
	}
	return s
}

/*
Token is a single lexical unit. Tokens form a singly linked list via Next in
chronological (start-offset) order. Token.Value is an arena-owned copy of the matched
source bytes - it is stable for the lifetime of the lexer regardless of
whether the caller keeps the original input buffer alive (spec.md §6).
*/
type Token struct {
	Flags  Flags
	Length int
	Value  []byte
	Start  SourcePosition
	End    SourcePosition
	Next   *Token
}

/*
Text returns the token value as a string.
*/
func (t *Token) Text() string {
	if t == nil {
		return ""
	}
	return string(t.Value)
}

/*
String renders a token for diagnostics: "type(value)@line:col".
*/
func (t *Token) String() string {
	if t == nil {
		return "<nil token>"
	}
	return fmt.Sprintf("%s(%q)@%s", t.Flags, t.Text(), t.Start)
}

/*
Equals reports whether t and other carry the same flags, length and value,
ignoring source position. It returns a message describing the first
difference found, matching the teacher's LexToken.Equals idiom.
*/
func (t *Token) Equals(other *Token) (bool, string) {
	if t == nil || other == nil {
		return t == other, "one token is nil"
	}
	if t.Flags != other.Flags {
		return false, fmt.Sprintf("flags differ: %v vs %v", t.Flags, other.Flags)
	}
	if t.Text() != other.Text() {
		return false, fmt.Sprintf("value differs: %q vs %q", t.Text(), other.Text())
	}
	return true, ""
}
