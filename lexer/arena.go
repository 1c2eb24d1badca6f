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

/*
tokenBlockSize is the number of tokens held by a single arena block. The
arena grows by chaining new blocks rather than reallocating a single backing
slice, so pointers returned by alloc remain valid for the arena's lifetime
(see spec.md §3 "Arenas" and §9 "Stable arena references").
*/
const tokenBlockSize = 256

/*
Arena is a bump allocator for Token values; the byte copies backing their
Value field are made by copyBytes. Tokens are never relocated once allocated: the arena is a chain
of fixed-size blocks, the re-architecture spec.md §9 calls option (a).
*/
type Arena struct {
	blocks  [][]Token
	grow    int // size of each block appended after the first
	current int // index into blocks of the block with free capacity
	used    int // number of tokens used in the current block
	count   int // total tokens allocated
}

/*
NewArena creates an empty token arena with one pre-allocated block of the
default size.
*/
func NewArena() *Arena {
	return NewArenaSize(tokenBlockSize, tokenBlockSize)
}

/*
NewArenaSize creates an empty token arena whose first block holds blockSize
tokens and whose later blocks (on exhaustion) hold growIncrement tokens each,
overriding the defaults - see compiler.Config's TokenArenaBlockSize and
ArenaGrowIncrement.
*/
func NewArenaSize(blockSize, growIncrement int) *Arena {
	if blockSize <= 0 {
		blockSize = tokenBlockSize
	}
	if growIncrement <= 0 {
		growIncrement = tokenBlockSize
	}
	return &Arena{blocks: [][]Token{make([]Token, blockSize)}, grow: growIncrement}
}

/*
alloc returns a pointer to a zeroed Token slot. The returned pointer is
stable for the lifetime of the arena.
*/
func (a *Arena) alloc() *Token {
	if a.used >= len(a.blocks[a.current]) {
		a.blocks = append(a.blocks, make([]Token, a.grow))
		a.current++
		a.used = 0
	}
	tok := &a.blocks[a.current][a.used]
	a.used++
	a.count++
	return tok
}

/*
Len returns the total number of tokens allocated so far.
*/
func (a *Arena) Len() int {
	return a.count
}

/*
copyBytes makes a fresh NUL-terminated copy of a borrowed byte slice (a
separate heap allocation, not storage inside the token blocks). Per spec.md
§6, token values must outlive the input buffer when the caller does not
request "copy input": the value is always a copy, never a view into the
source buffer.
*/
func (a *Arena) copyBytes(src []byte) []byte {
	out := make([]byte, len(src)+1) // +1 for the trailing NUL
	copy(out, src)
	return out[:len(src)]
}
