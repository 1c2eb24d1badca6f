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

import (
	"errors"
	"fmt"

	"github.com/glint-lang/glint/lexer"
)

/*
Sentinel errors for the resource-failure class spec.md §5/§7 describes
("resource errors: allocator failure. Propagated as an abort of the compile
call"). The core grammar productions never return these: an unexpected
token or missing delimiter yields a silent nil per spec.md §4.4 "Failure
semantics". These sentinels exist so a caller can errors.Is against a
specific resource failure, matching the teacher's ErrUnexpectedToken-style
vars in krotik-ecal/parser/parser.go (that file's sentinels were out-of-scope
resource errors there; glint's equivalents are scoped to the one resource
failure category spec.md actually specifies).
*/
var ErrOutOfMemory = errors.New("parser: arena allocation failed")

/*
ParseError wraps a resource-class failure with the token and position that
triggered it, for diagnostics. It is never returned for an ordinary grammar
mismatch - those productions return nil per spec.md §7's "swallows parser
mismatches silently" policy; ParseError is reserved for the failures that
must abort the whole compile call.
*/
type ParseError struct {
	Err   error
	Token *lexer.Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err, e.Token.Start)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error, tok *lexer.Token) *ParseError {
	return &ParseError{Err: err, Token: tok}
}
