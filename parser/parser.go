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
Package parser implements the operator table (C5) and the Pratt/recursive-
descent parser (C6) described in spec.md §4.3 and §4.4. It consumes the
token list produced by package lexer and builds an AST into a package ast
Arena.
*/
package parser

import (
	"fmt"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/glintutil"
	"github.com/glint-lang/glint/lexer"
)

/*
argumentPartEmpty is the placeholder literal name spec.md §4.4's `for`
production uses for an elided header section ("up to three ;-separated
expression children (empty positions become ARGUMENT_PART_EMPTY
placeholders)").
*/
const argumentPartEmpty = "ARGUMENT_PART_EMPTY"

/*
Parser maintains the "current token" cursor spec.md §4.4 describes, advanced
by advance(). Unlike the teacher's channel-fed LABuffer, glint's
lexer already hands back a complete token list (spec.md §4.2's lexer is
total), so the parser materializes it into a slice for O(1) indexed peek
rather than buffering a channel.
*/
type Parser struct {
	tokens []*lexer.Token
	pos    int

	arena  *ast.Arena
	logger *glintutil.MemoryLogger
}

/*
New creates a parser over the token list starting at head, building nodes
into arena.
*/
func New(head *lexer.Token, arena *ast.Arena) *Parser {
	var tokens []*lexer.Token
	for t := head; t != nil; t = t.Next {
		tokens = append(tokens, t)
	}
	return &Parser{tokens: tokens, arena: arena, logger: glintutil.NewMemoryLogger(64)}
}

/*
Diagnostics returns the non-fatal parser diagnostics recorded so far, newest
last - the "diagnostics collector" spec.md §7 calls out as the natural
extension of the core's silent-mismatch policy.
*/
func (p *Parser) Diagnostics() []string {
	return p.logger.Slice()
}

func (p *Parser) diagf(format string, args ...interface{}) {
	p.logger.LogError(fmt.Sprintf(format, args...))
}

/*
Parse runs the parser to completion and returns the AST root (always a
scope node, per spec.md §8's literal scenarios) plus the diagnostics
recorded along the way.

Go's slice-backed arenas have no "allocator returned null" failure mode the
way spec.md §5/§7's resource-error class assumes; append only fails via an
unrecoverable runtime panic. recover() here is the idiomatic translation of
that resource-error class: a panic during parsing aborts the compile call
and surfaces as a *ParseError wrapping ErrOutOfMemory, exactly as spec.md
§5 requires ("propagated as an abort of the compile call").
*/
func Parse(head *lexer.Token, arena *ast.Arena) (root *ast.Node, diagnostics []string, err error) {
	p := New(head, arena)
	defer func() {
		if r := recover(); r != nil {
			err = newParseError(fmt.Errorf("%w: %v", ErrOutOfMemory, r), p.current())
		}
	}()
	root = p.parseScope()
	diagnostics = p.Diagnostics()
	return root, diagnostics, nil
}

// --- cursor -----------------------------------------------------------

func (p *Parser) current() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) *lexer.Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return nil
	}
	return p.tokens[idx]
}

func (p *Parser) advance() *lexer.Token {
	tok := p.current()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *Parser) skipIndents() {
	for isIndentToken(p.current()) {
		p.advance()
	}
}

func isIndentToken(tok *lexer.Token) bool {
	if tok == nil {
		return false
	}
	switch tok.Flags.Type() {
	case lexer.TypeIndent, lexer.TypeIndentSpace, lexer.TypeIndentTab:
		return true
	}
	return false
}

func isSpecialText(tok *lexer.Token, text string) bool {
	return tok != nil && tok.Flags.Type() == lexer.TypeSpecial && tok.Text() == text
}

func isKeyword(tok *lexer.Token, text string) bool {
	return tok != nil && tok.Flags.Type() == lexer.TypeIdentifier && tok.Text() == text
}

/*
expectSpecial consumes the current token if it is the special symbol text,
reporting whether it matched. A caller that gets false does not panic or
recover: per spec.md §4.4 "Failure semantics", a missing delimiter simply
leaves the production short and parsing continues from wherever the cursor
sits.
*/
func (p *Parser) expectSpecial(text string) bool {
	if isSpecialText(p.current(), text) {
		p.advance()
		return true
	}
	p.diagf("expected %q at %s", text, p.positionString())
	return false
}

func (p *Parser) expectKeyword(text string) bool {
	if isKeyword(p.current(), text) {
		p.advance()
		return true
	}
	p.diagf("expected keyword %q at %s", text, p.positionString())
	return false
}

func (p *Parser) positionString() string {
	if tok := p.current(); tok != nil {
		return tok.Start.String()
	}
	return "EOF"
}

/*
consumeOperator advances past op's token(s), returning its source spelling.
A composite operator (spec.md §4.3's "composite" attribute) spans two
physical special tokens fused via the successive flag; both are consumed
here and their text concatenated, so "++"/"=="/"<="/":=" etc. name their
expression node with the full two-character spelling spec.md §8's literal
scenarios show (e.g. `expr("++")`).
*/
func (p *Parser) consumeOperator(op Operator) string {
	first := p.advance()
	name := first.Text()
	if op.IsComposite() {
		second := p.advance()
		name += second.Text()
	}
	return name
}

/*
consumeLineComment implements the "//" sentinel spec.md §4.3 mentions and
§4.4 steps 1/3 reference ("consume to end-of-line"). Comments never become
tokens of their own kind (spec.md §9 "Comment handling" notes a dedicated
comment token would be cleaner but is not what the core grammar does); the
parser instead recognizes the fused "//" operator and skips every token
that starts on the same source line.
*/
func (p *Parser) consumeLineComment(op Operator) {
	line := p.current().Start.Line
	p.consumeOperator(op)
	for {
		tok := p.current()
		if tok == nil || tok.Start.Line != line {
			return
		}
		p.advance()
	}
}

// --- scope (spec.md §4.4 "Scope") --------------------------------------

/*
parseScope parses a brace-delimited or file-level sequence of items.
Callers that encountered an opening `{` must consume it themselves before
calling parseScope; parseScope consumes its own closing `}` (or stops
cleanly at end-of-stream for the file-level scope).
*/
func (p *Parser) parseScope() *ast.Node {
	scope := p.arena.New(ast.Scope, "")

	for {
		p.skipIndents()
		tok := p.current()
		if tok == nil {
			return scope
		}

		if isSpecialText(tok, "}") {
			p.advance()
			return scope
		}

		if isSpecialText(tok, "{") {
			p.advance()
			scope.AppendChild(p.parseScope())
			continue
		}

		if tok.Flags.Type() == lexer.TypeIdentifier {
			switch tok.Text() {
			case "if":
				scope.AppendChild(p.parseIf())
				continue
			case "for":
				scope.AppendChild(p.parseFor())
				continue
			case "while":
				scope.AppendChild(p.parseWhile())
				continue
			case "do":
				scope.AppendChild(p.parseDoWhile())
				continue
			case "continue":
				p.advance()
				scope.AppendChild(p.arena.New(ast.Continue, ""))
				continue
			case "break":
				p.advance()
				scope.AppendChild(p.arena.New(ast.Break, ""))
				continue
			}
		}

		before := p.pos
		if expr := p.parseExpression(0, false); expr != nil {
			scope.AppendChild(expr)
		}
		if p.pos == before {
			// No production consumed anything (an invalid or unrecognized
			// lead token): advance one token so the scope loop always makes
			// progress, per spec.md §4.4's permissive failure semantics.
			if p.current() == nil {
				return scope
			}
			p.advance()
		}
	}
}

// --- expression (spec.md §4.4 "Expression (Pratt)") --------------------

/*
parseExpression implements the four-step Pratt loop of spec.md §4.4.
inCallArguments corresponds to the `in-call-arguments` flag; minBinding is
the minimum binding power.
*/
func (p *Parser) parseExpression(minBinding int, inCallArguments bool) *ast.Node {
	lead := p.current()
	if lead == nil {
		return nil
	}
	if isSpecialText(lead, "{") || isSpecialText(lead, "}") {
		return nil
	}

	leadOp := Lookup(lead, p.peek(1))
	if leadOp.Has(OpComment) {
		p.consumeLineComment(leadOp)
		return nil
	}
	if leadOp.IsInvalid() && !isSpecialText(lead, "(") {
		// A closing delimiter or separator (")", "]", ",", ";") with nothing
		// to its left: no expression starts here. Per spec.md §4.4 "Failure
		// semantics" the production yields nil without consuming, leaving
		// the token for whichever enclosing production is expecting it
		// (parseFor's ";" separators, parseCall's ")"/",", ...).
		return nil
	}

	leadIsIdentifier := lead.Flags.Type() == lexer.TypeIdentifier
	var left *ast.Node

	if prefixPower, ok := PrefixPower(leadOp); ok {
		name := p.consumeOperator(leadOp)
		operand := p.parseExpression(prefixPower, inCallArguments)
		left = p.arena.New(ast.Expression, name)
		left.AppendChild(operand)
	} else if isSpecialText(lead, "(") {
		p.advance()
		inner := p.parseExpression(0, false)
		p.expectSpecial(")")
		left = p.arena.New(ast.Expression, "(")
		left.AppendChild(inner)
	} else {
		p.advance()
		left = p.arena.New(ast.Literal, lead.Text())
	}

	for {
		cur := p.current()
		if cur == nil {
			break
		}

		op := Lookup(cur, p.peek(1))
		if op == OpNone {
			break
		}

		if op.Has(OpComment) {
			p.consumeLineComment(op)
			continue
		}

		if postfixPower, ok := PostfixPower(op); ok && postfixPower >= minBinding {
			name := p.consumeOperator(op)
			if op.Has(OpIndex) {
				node := p.arena.New(ast.Expression, "[")
				node.AppendChild(left)
				node.AppendChild(p.parseExpression(0, false))
				p.expectSpecial("]")
				left = node
			} else {
				node := p.arena.New(ast.Expression, name)
				node.AppendChild(left)
				left = node
			}
			continue
		}

		if inCallArguments && isSpecialText(cur, ",") {
			break
		}

		if op.IsInvalid() {
			if isSpecialText(cur, ")") || isSpecialText(cur, "]") || isSpecialText(cur, "}") ||
				isSpecialText(cur, "{") || isSpecialText(cur, ",") || isSpecialText(cur, ";") ||
				isSpecialText(cur, ":") {
				// A closing delimiter or separator ends the expression; the
				// enclosing production (group, index, call, scope, for header,
				// ternary) consumes it.
				break
			}
			p.diagf("invalid operator token %q at %s", cur.Text(), cur.Start)
			return nil
		}

		if op.Has(OpAssignType) && (op.Has(OpAssign) || op.Has(OpAssignConst)) {
			return p.parseDeclaration(lead.Text(), op)
		}

		if leadIsIdentifier && op.Has(OpGrouping) && op.Has(OpCall) {
			left = p.parseCall(lead.Text())
			continue
		}

		powers, ok := InfixPower(op)
		if !ok || powers.Left < minBinding {
			break
		}

		name := p.consumeOperator(op)
		if op.Has(OpTernary) {
			middle := p.parseExpression(0, false)
			p.expectSpecial(":")
			right := p.parseExpression(powers.Right, false)
			node := p.arena.New(ast.Expression, name)
			node.AppendChild(left)
			node.AppendChild(middle)
			node.AppendChild(right)
			left = node
		} else {
			right := p.parseExpression(powers.Right, false)
			node := p.arena.New(ast.Expression, name)
			node.AppendChild(left)
			node.AppendChild(right)
			left = node
		}
	}

	return left
}

/*
parseCall implements spec.md §4.4 step 3's call production: consume `(`,
repeatedly parse argument expressions at power 0 with in-call-arguments set,
skipping commas, then consume `)`.
*/
func (p *Parser) parseCall(name string) *ast.Node {
	p.advance() // consume "("
	call := p.arena.New(ast.Call, name)

	for {
		p.skipIndents()
		tok := p.current()
		if tok == nil || isSpecialText(tok, ")") {
			break
		}
		if isSpecialText(tok, ",") {
			p.advance()
			continue
		}
		arg := p.parseExpression(0, true)
		if arg == nil {
			break
		}
		call.AppendChild(arg)
	}

	p.expectSpecial(")")
	return call
}

// --- declaration (spec.md §4.4 "Declaration") ---------------------------

/*
parseDeclaration handles `name := …` / `name :: …`, dispatching to the
function, struct, or plain variable form.
*/
func (p *Parser) parseDeclaration(name string, op Operator) *ast.Node {
	p.consumeOperator(op)
	p.skipIndents()

	switch {
	case isKeyword(p.current(), "function"):
		return p.parseFunctionDecl(name)
	case isKeyword(p.current(), "struct"):
		return p.parseStructDecl(name)
	}

	value := p.parseExpression(0, false)
	stmt := p.arena.New(ast.Statement, name)
	stmt.AppendChild(value)
	return stmt
}

/*
parseFunctionDecl implements the function-declaration production. The
fat-arrow "=>" form from spec.md §8 scenario 4 is explicitly not in the
grammar; when the body does not open with `{`, the function node is
produced with its arguments but an empty body scope, and no further input
is consumed - spec.md §8 documents this as the current, intentionally
unextended behavior.
*/
func (p *Parser) parseFunctionDecl(name string) *ast.Node {
	p.advance() // consume "function"
	fn := p.arena.New(ast.Function, name)

	p.expectSpecial("(")
	args := p.arena.New(ast.Arguments, "")
	for {
		p.skipIndents()
		tok := p.current()
		if tok == nil || isSpecialText(tok, ")") {
			break
		}
		if isSpecialText(tok, ",") {
			p.advance()
			continue
		}
		if tok.Flags.Type() != lexer.TypeIdentifier {
			p.advance()
			continue
		}
		paramName := p.advance().Text()
		param := p.arena.New(ast.Literal, paramName)
		if typTok := p.current(); typTok != nil && typTok.Flags.Type() == lexer.TypeIdentifier && typTok.Start.Line == tok.Start.Line {
			param.TypeRef = p.advance().Text()
		}
		args.AppendChild(param)
	}
	p.expectSpecial(")")
	fn.AppendChild(args)

	body := p.arena.New(ast.Scope, "")
	p.skipIndents()
	if isSpecialText(p.current(), "{") {
		p.advance()
		body = p.parseScope()
	}
	fn.AppendChild(body)

	return fn
}

/*
parseStructDecl implements the struct-declaration production. Fields are
separated by `;` or by starting on a new source line; a field's name and
type must share a line. Unlike the teacher's indent-flag-driven approach,
this tracks the source line of the last consumed field directly, since
spec.md's indent tokens are only emitted when a line actually begins with
whitespace and would otherwise miss zero-indent fields (see DESIGN.md).
*/
func (p *Parser) parseStructDecl(name string) *ast.Node {
	p.advance() // consume "struct"
	st := p.arena.New(ast.Struct, name)

	p.expectSpecial("{")
	lastFieldLine := -1
	for {
		p.skipIndents()
		tok := p.current()
		if tok == nil || isSpecialText(tok, "}") {
			break
		}
		if isSpecialText(tok, ";") {
			p.advance()
			continue
		}
		if tok.Flags.Type() != lexer.TypeIdentifier || tok.Start.Line == lastFieldLine {
			p.advance()
			continue
		}

		fieldName := p.advance().Text()
		field := p.arena.New(ast.StructField, fieldName)
		lastFieldLine = tok.Start.Line
		if typTok := p.current(); typTok != nil && typTok.Flags.Type() == lexer.TypeIdentifier && typTok.Start.Line == tok.Start.Line {
			field.TypeRef = p.advance().Text()
		}
		st.AppendChild(field)
	}
	p.expectSpecial("}")

	return st
}

// --- control flow (spec.md §4.4 "Control flow") -------------------------

/*
wrapCondition builds the "condition" expression wrapper spec.md §8 scenario
5's literal walkthrough shows around an `if`'s test expression.
*/
func (p *Parser) wrapCondition(expr *ast.Node) *ast.Node {
	wrap := p.arena.New(ast.Expression, "condition")
	wrap.AppendChild(expr)
	return wrap
}

func (p *Parser) parseBracedScope() *ast.Node {
	p.skipIndents()
	p.expectSpecial("{")
	return p.parseScope()
}

/*
parseIf implements the `if` production, including `else`/`else if`
chaining. The true branch is wrapped in an "if_true" node alongside its
"condition" wrapper, matching spec.md §8 scenario 5's literal tree shape;
`type` stays within the closed enum of spec.md §3 (both wrappers are `if`/
`expression` nodes respectively, distinguished only by `name`).
*/
func (p *Parser) parseIf() *ast.Node {
	p.advance() // consume "if"
	node := p.arena.New(ast.If, "")

	ifTrue := p.arena.New(ast.If, "if_true")
	cond := p.parseExpression(0, false)
	ifTrue.AppendChild(p.wrapCondition(cond))
	ifTrue.AppendChild(p.parseBracedScope())
	node.AppendChild(ifTrue)

	p.skipIndents()
	if isKeyword(p.current(), "else") {
		p.advance()
		p.skipIndents()
		elseNode := p.arena.New(ast.If, "else")
		if isKeyword(p.current(), "if") {
			elseNode.AppendChild(p.parseIf())
		} else {
			elseNode.AppendChild(p.parseBracedScope())
		}
		node.AppendChild(elseNode)
	}

	return node
}

/*
parseWhile implements the `while` production: a condition child followed by
a body scope.
*/
func (p *Parser) parseWhile() *ast.Node {
	p.advance() // consume "while"
	node := p.arena.New(ast.While, "")
	cond := p.parseExpression(0, false)
	node.AppendChild(p.wrapCondition(cond))
	node.AppendChild(p.parseBracedScope())
	return node
}

/*
parseDoWhile implements the `do … while` production: a body scope, the
`while` keyword, then a condition child.
*/
func (p *Parser) parseDoWhile() *ast.Node {
	p.advance() // consume "do"
	node := p.arena.New(ast.DoWhile, "")
	node.AppendChild(p.parseBracedScope())
	p.skipIndents()
	p.expectKeyword("while")
	cond := p.parseExpression(0, false)
	node.AppendChild(p.wrapCondition(cond))
	return node
}

/*
parseFor implements the C-style `for` production: an optional arguments
child with exactly three `;`-separated sections (an elided section becomes
an ARGUMENT_PART_EMPTY literal placeholder, each wrapped in an
"argument-expression" node per spec.md §8 scenario 6), then a body scope.
*/
func (p *Parser) parseFor() *ast.Node {
	p.advance() // consume "for"
	node := p.arena.New(ast.For, "")

	p.skipIndents()
	if !isSpecialText(p.current(), "{") {
		args := p.arena.New(ast.Arguments, "")
		for i := 0; i < 3; i++ {
			part := p.parseExpression(0, false)
			if part == nil {
				part = p.arena.New(ast.Literal, argumentPartEmpty)
			}
			wrap := p.arena.New(ast.Expression, "argument-expression")
			wrap.AppendChild(part)
			args.AppendChild(wrap)

			if i < 2 {
				p.skipIndents()
				if isSpecialText(p.current(), ";") {
					p.advance()
				}
			}
		}
		node.AppendChild(args)
	}

	node.AppendChild(p.parseBracedScope())
	return node
}
