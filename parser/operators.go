/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "github.com/glint-lang/glint/lexer"

/*
Operator is a bitset combining one or more base operators with attribute
bits, per spec.md §4.3: "assign-type | assign | composite" for `:=`,
"assign-type | assign-const | composite" for `::`, and so on. Base operators
are flag bits (not a single enumerated value) precisely so two can combine
this way.
*/
type Operator uint32

const (
	OpAdd Operator = 1 << iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo // supplemented, SPEC_FULL.md §4 ("pyco_compiler.c" OP_MOD)
	OpAssign
	OpAssignType
	OpAssignConst
	OpEqual
	OpLess
	OpGreater
	OpAnd
	OpOr
	OpNot
	OpXor
	OpBitAnd // supplemented
	OpBitOr  // supplemented
	OpBitNot // supplemented
	OpLeftShift
	OpRightShift
	OpTernary
	OpGrouping
	OpCall
	OpIndex
	OpMemberAccess
	OpIncrement
	OpDecrement
	OpComment // "//" sentinel, base none per spec.md §4.3
	OpInvalid

	numBaseBits = iota

	// Composite marks an operator fused from two successive special tokens
	// (spec.md §4.3).
	Composite Operator = 1 << numBaseBits

	// Bitwise marks the supplemented bitwise family. spec.md §4.3's own
	// fusion example for "<<" reads "left-shift | bitwise | composite", but
	// "bitwise" is not among the closed base-operator list earlier in the
	// same section - it is an attribute, exactly like Composite, not a base.
	Bitwise Operator = 1 << (numBaseBits + 1)
)

/*
OpNone is the zero Operator: "no operator here" (spec.md §4.3's base value
`none`).
*/
const OpNone Operator = 0

/*
Has reports whether o carries every bit in want.
*/
func (o Operator) Has(want Operator) bool {
	return want != 0 && o&want == want
}

/*
IsComposite reports whether o was fused from two successive special tokens.
*/
func (o Operator) IsComposite() bool {
	return o.Has(Composite)
}

/*
IsInvalid reports whether o is the error sentinel.
*/
func (o Operator) IsInvalid() bool {
	return o.Has(OpInvalid)
}

/*
Powers are the binding powers the Pratt loop in parser.go consults, per
spec.md §4.3's three queries (prefix, infix, postfix). The numeric scale
here is rescaled from spec.md's literal table (which uses 0-14) to leave
room for the supplemented operator families; only relative order and
associativity direction are load-bearing, not the absolute numbers.
*/
type Powers struct {
	Left  int
	Right int
}

/*
PrefixPower returns the binding power used when o appears as a prefix
operator, and whether o is valid as one at all.
*/
func PrefixPower(o Operator) (power int, ok bool) {
	switch {
	case o.Has(OpNot) && !o.IsComposite(), o.Has(OpSubtract), o.Has(OpBitNot):
		return 170, true
	}
	return 0, false
}

/*
InfixPower returns the (left, right) binding powers used when o appears as
an infix operator, and whether o is valid as one. Mirrors spec.md §4.3's
table for the operators it names directly (ternary, the additive pair, the
combined multiply/equal/less/greater/shift tier, member access); every other
family is a documented supplement (SPEC_FULL.md §4), slotted in without
disturbing the relative order spec.md fixes for the tested operators.
*/
func InfixPower(o Operator) (p Powers, ok bool) {
	switch {
	case o.Has(OpAssign) && !o.IsComposite():
		// Plain "=" (e.g. "grid[i] = 0", spec.md §8 scenario 6), right
		// associative, loosest of all - spec.md's own table is silent on
		// assignment-as-expression, so this placement is a documented
		// Open Question resolution (see DESIGN.md).
		return Powers{10, 5}, true
	case o.Has(OpOr):
		return Powers{20, 30}, true
	case o.Has(OpAnd):
		return Powers{40, 50}, true
	case o.Has(OpTernary):
		return Powers{60, 55}, true
	case o.Has(OpAdd), o.Has(OpSubtract):
		return Powers{70, 80}, true
	case o.Has(Bitwise) && o.Has(OpBitOr):
		return Powers{90, 100}, true
	case o.Has(Bitwise) && o.Has(OpXor):
		return Powers{110, 120}, true
	case o.Has(Bitwise) && o.Has(OpBitAnd):
		return Powers{130, 140}, true
	case o.Has(OpMultiply), o.Has(OpDivide), o.Has(OpModulo),
		o.Has(OpEqual), o.Has(OpLess), o.Has(OpGreater),
		o.Has(OpLeftShift), o.Has(OpRightShift),
		o.Has(OpNot) && o.Has(OpAssign):
		// "!=" (not-equal): the lexer only ever fuses "!" with a successive
		// "=" into OpNot|OpAssign|Composite, so this is unambiguous with
		// plain unary "!"/"not", which never carries OpAssign.
		return Powers{150, 160}, true
	case o.Has(OpMemberAccess):
		// Right-tight: "a.b.c" parses as "a.(b.c)" per spec.md §4.3.
		return Powers{230, 220}, true
	}
	return Powers{}, false
}

/*
PostfixPower returns the binding power used when o appears as a postfix
operator, and whether o is valid as one.
*/
func PostfixPower(o Operator) (power int, ok bool) {
	switch {
	case o.Has(OpIndex), o.Has(OpIncrement), o.Has(OpDecrement):
		return 190, true
	}
	return 0, false
}

var keywordOperators = map[string]Operator{
	"not": OpNot,
	"and": OpAnd,
	"or":  OpOr,
	"xor": OpXor,
}

/*
Lookup is the pure function spec.md §4.3 describes: (current token, its
successor) -> Operator. It never mutates or consumes tokens; the parser
decides how many tokens to advance based on the result.
*/
func Lookup(tok, next *lexer.Token) Operator {
	if tok == nil {
		return OpNone
	}

	switch tok.Flags.Type() {
	case lexer.TypeIdentifier:
		if op, ok := keywordOperators[tok.Text()]; ok {
			return op
		}
		return OpNone
	case lexer.TypeSpecial:
		return lookupSpecial(tok, next)
	default:
		return OpNone
	}
}

/*
fused reports whether next immediately follows tok with no gap (the
successive flag) and is itself a special token, returning its first byte.
*/
func fused(next *lexer.Token) (byte, bool) {
	if next == nil || next.Flags.Type() != lexer.TypeSpecial || !next.Flags.Has(lexer.Successive) {
		return 0, false
	}
	if len(next.Value) == 0 {
		return 0, false
	}
	return next.Value[0], true
}

func lookupSpecial(tok, next *lexer.Token) Operator {
	if len(tok.Value) == 0 {
		return OpInvalid
	}
	b := tok.Value[0]
	second, isFused := fused(next)

	switch b {
	case '+':
		if isFused && second == '+' {
			return OpIncrement | Composite
		}
		if isFused && second == '=' {
			return OpAdd | OpAssign | Composite
		}
		return OpAdd
	case '-':
		if isFused && second == '-' {
			return OpDecrement | Composite
		}
		if isFused && second == '=' {
			return OpSubtract | OpAssign | Composite
		}
		return OpSubtract
	case '*':
		if isFused && second == '=' {
			return OpMultiply | OpAssign | Composite
		}
		return OpMultiply
	case '/':
		if isFused && second == '/' {
			return OpComment | Composite
		}
		if isFused && second == '=' {
			return OpDivide | OpAssign | Composite
		}
		return OpDivide
	case '%':
		if isFused && second == '=' {
			return OpModulo | OpAssign | Composite
		}
		return OpModulo
	case '=':
		if isFused && second == '=' {
			return OpEqual | OpAssign | Composite
		}
		return OpAssign
	case ':':
		if isFused && second == '=' {
			return OpAssignType | OpAssign | Composite
		}
		if isFused && second == ':' {
			return OpAssignType | OpAssignConst | Composite
		}
		return OpInvalid
	case '<':
		if isFused && second == '=' {
			return OpLess | OpAssign | Composite
		}
		if isFused && second == '<' {
			return OpLeftShift | Bitwise | Composite
		}
		return OpLess
	case '>':
		if isFused && second == '=' {
			return OpGreater | OpAssign | Composite
		}
		if isFused && second == '>' {
			return OpRightShift | Bitwise | Composite
		}
		return OpGreater
	case '!':
		if isFused && second == '=' {
			return OpNot | OpAssign | Composite
		}
		return OpNot
	case '&':
		if isFused && second == '=' {
			return OpBitAnd | Bitwise | OpAssign | Composite
		}
		if isFused && second == '&' {
			return OpAnd | Composite
		}
		return OpBitAnd | Bitwise
	case '|':
		if isFused && second == '=' {
			return OpBitOr | Bitwise | OpAssign | Composite
		}
		if isFused && second == '|' {
			return OpOr | Composite
		}
		return OpBitOr | Bitwise
	case '^':
		if isFused && second == '=' {
			return OpXor | Bitwise | OpAssign | Composite
		}
		return OpXor | Bitwise
	case '~':
		return OpBitNot | Bitwise
	case '?':
		return OpTernary
	case '(':
		return OpGrouping | OpCall
	case ')':
		return OpInvalid
	case '[':
		return OpIndex
	case ']':
		return OpInvalid
	case '.':
		return OpMemberAccess
	case ',', ';', '{', '}':
		return OpInvalid
	}

	return OpInvalid
}
