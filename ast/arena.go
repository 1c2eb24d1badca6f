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
Package ast defines the glint abstract syntax tree: the arena-backed Node
type (C4), and a JSON-dump collaborator (C7) that walks the tree the way a
downstream tool (formatter, code generator) would.
*/
package ast

/*
nodeBlockSize is the number of nodes held by a single arena block, mirroring
lexer.tokenBlockSize - see spec.md §3 "Arenas" for the growth policy this
implements (chained fixed-size blocks, so existing node pointers never move).
*/
const nodeBlockSize = 128

/*
Arena is a bump allocator for Node values. Like the token arena, it never
relocates already-allocated nodes: child/parent/sibling pointers stay valid
for the arena's lifetime.
*/
type Arena struct {
	blocks  [][]Node
	grow    int // size of each block appended after the first
	current int
	used    int
	count   int
}

/*
NewArena creates an empty node arena with one pre-allocated block of the
default size.
*/
func NewArena() *Arena {
	return NewArenaSize(nodeBlockSize, nodeBlockSize)
}

/*
NewArenaSize creates an empty node arena whose first block holds blockSize
nodes and whose later blocks (on exhaustion) hold growIncrement nodes each -
see compiler.Config's NodeArenaBlockSize and ArenaGrowIncrement.
*/
func NewArenaSize(blockSize, growIncrement int) *Arena {
	if blockSize <= 0 {
		blockSize = nodeBlockSize
	}
	if growIncrement <= 0 {
		growIncrement = nodeBlockSize
	}
	return &Arena{blocks: [][]Node{make([]Node, blockSize)}, grow: growIncrement}
}

/*
New allocates a zeroed node of the given Type with the given Name.
*/
func (a *Arena) New(typ Type, name string) *Node {
	if a.used >= len(a.blocks[a.current]) {
		a.blocks = append(a.blocks, make([]Node, a.grow))
		a.current++
		a.used = 0
	}
	n := &a.blocks[a.current][a.used]
	a.used++
	a.count++
	n.Type = typ
	n.Name = name
	return n
}

/*
Len returns the total number of nodes allocated so far.
*/
func (a *Arena) Len() int {
	return a.count
}
