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
Package compiler is the external façade spec.md §6 describes: a single
Compile entry point taking a byte buffer and an options record, and a
companion Free that releases the arenas backing the returned AST. It wires
together lexer.Lexer, ast.Arena and parser.Parser, none of which know about
each other's configuration - this package is where that configuration is
assembled from a Config (see config.go).
*/
package compiler

import (
	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/lexer"
	"github.com/glint-lang/glint/parser"
)

/*
Options bundles the input buffer with the Config spec.md §6 calls the
"options record selecting the allocator and a copy-input flag". There is no
allocator vtable to inject here - Go has one garbage-collected heap - so the
only allocator-shaped knobs that survive the translation are the arena block
sizes in Config.
*/
type Options struct {
	Config Config
}

/*
Result is the output of a single Compile call: the AST root, the head of the
token list Tokens was lexed into, and any non-fatal diagnostics the lexer or
parser recorded along the way (spec.md §7's "diagnostics collector"
extension). Free releases the arenas backing Root and Tokens.
*/
type Result struct {
	Root        *ast.Node
	Tokens      *lexer.Token
	Diagnostics []string

	tokenArena *lexer.Arena
	nodeArena  *ast.Arena
}

/*
Free releases the arenas backing r's AST and token list. Per spec.md §5
"Resource discipline", every exit path from Compile already releases
partially built arenas on failure; Free is the caller-facing release point
for a successful Result. Go's garbage collector reclaims the arena blocks
once nothing still references them - Free's job is to drop Result's own
references so that a caller who holds onto a stale Result doesn't
accidentally keep the arenas alive.
*/
func (r *Result) Free() {
	if r == nil {
		return
	}
	r.Root = nil
	r.Tokens = nil
	r.tokenArena = nil
	r.nodeArena = nil
}

/*
Compile lexes and parses input in a single synchronous call (spec.md §5:
"a compile call runs start-to-finish on the caller's thread"). When
opts.Config.CopyInput is set, input is copied before lexing and the lexer runs
over that private copy; otherwise it runs over input directly. In both cases
token Value fields are copies of the source bytes, so the returned Result
holds no reference to input and the caller may mutate or discard its buffer
once Compile returns.
*/
func Compile(input []byte, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = NewConfig(nil)
	}

	if cfg.Bool(CopyInput) {
		cp := make([]byte, len(input))
		copy(cp, input)
		input = cp
	}

	tokenBlockSize := cfg.Int(TokenArenaBlockSize)
	growIncrement := cfg.Int(ArenaGrowIncrement)
	nodeBlockSize := cfg.Int(NodeArenaBlockSize)

	lx := lexer.NewSized(input, tokenBlockSize, growIncrement)
	if !cfg.Bool(TrackIndents) {
		lx.DisableIndentTracking()
	}
	head := lx.Run()

	nodeArena := ast.NewArenaSize(nodeBlockSize, growIncrement)
	root, parseDiag, err := parser.Parse(head, nodeArena)
	if err != nil {
		return nil, err
	}

	diag := append([]string{}, lx.Diagnostics()...)
	diag = append(diag, parseDiag...)

	return &Result{
		Root:        root,
		Tokens:      head,
		Diagnostics: diag,
		tokenArena:  lx.Arena(),
		nodeArena:   nodeArena,
	}, nil
}
