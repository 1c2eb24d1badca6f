/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package compiler

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
)

/*
Known configuration options, mirroring the teacher's config.WorkerCount-style
named constants in devt.de/krotik/ecal/config.
*/
const (
	// TokenArenaBlockSize is the number of tokens held by the first block of
	// the lexer's token arena (spec.md §3 "Arenas", initial block size).
	TokenArenaBlockSize = "TokenArenaBlockSize"

	// NodeArenaBlockSize is the number of nodes held by the first block of
	// the parser's AST arena.
	NodeArenaBlockSize = "NodeArenaBlockSize"

	// ArenaGrowIncrement is the block size used for every arena block
	// appended after the first, on exhaustion of the current block
	// (spec.md §3 "Arenas", growth policy).
	ArenaGrowIncrement = "ArenaGrowIncrement"

	// CopyInput selects spec.md §6's "copy input" flag: when true, the
	// compile call copies the input buffer before lexing and lexes the
	// copy; when false, it lexes the caller's buffer directly. Token Value
	// fields are copies either way (see lexer.Arena.copyBytes), so the
	// returned Result holds no reference to the input buffer.
	CopyInput = "CopyInput"

	// TrackIndents selects whether the lexer emits indent tokens at all
	// (spec.md §4.2 "Indent tracking"). Disabling this is an out-of-core
	// convenience some callers want when they only need the token stream
	// for highlighting, not for struct-field separation.
	TrackIndents = "TrackIndents"
)

/*
DefaultConfig is the default configuration, used whenever a caller passes a
nil or partial Config to Compile.
*/
var DefaultConfig = map[string]interface{}{
	TokenArenaBlockSize: 256,
	NodeArenaBlockSize:  128,
	ArenaGrowIncrement:  256,
	CopyInput:           false,
	TrackIndents:        true,
}

/*
Config is a flat option map, in the shape of the teacher's config package
(devt.de/krotik/ecal/config): named string keys over a DefaultConfig,
read with small typed accessor helpers built on
devt.de/krotik/common/errorutil.
*/
type Config map[string]interface{}

/*
NewConfig returns a Config seeded with DefaultConfig's values, then
overridden by the given overrides.
*/
func NewConfig(overrides map[string]interface{}) Config {
	c := make(Config, len(DefaultConfig))
	for k, v := range DefaultConfig {
		c[k] = v
	}
	for k, v := range overrides {
		c[k] = v
	}
	return c
}

/*
Int reads a config value as an int, falling back to DefaultConfig's value for
key if c is nil or does not carry key.
*/
func (c Config) Int(key string) int {
	v, ok := c[key]
	if !ok {
		v = DefaultConfig[key]
	}
	i, ok := v.(int)
	errorutil.AssertTrue(ok, fmt.Sprintf("config key %v is not an int: %v", key, v))
	return i
}

/*
Bool reads a config value as a bool, falling back to DefaultConfig's value
for key if c is nil or does not carry key.
*/
func (c Config) Bool(key string) bool {
	v, ok := c[key]
	if !ok {
		v = DefaultConfig[key]
	}
	b, ok := v.(bool)
	errorutil.AssertTrue(ok, fmt.Sprintf("config key %v is not a bool: %v", key, v))
	return b
}
