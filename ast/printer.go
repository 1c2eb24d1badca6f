/*
 * glint
 *
 * Copyright 2026 The glint Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

/*
String returns a multi-line, indented tree dump of n, one node per line in a
"type(name)" style close to spec.md §8's literal scenarios: each line is the
type, then the quoted name if set, then the TypeRef if set, indented two
spaces per level (e.g. "statement(\"a\")" followed by "  literal(\"55\")").
Grounded on the teacher's ASTNode.String/levelString in
krotik-ecal/parser/helper.go, which uses stringutil.GenerateRollingString to
build indentation rather than strings.Repeat.
*/
func (n *Node) String() string {
	var buf bytes.Buffer
	n.levelString(0, &buf)
	return buf.String()
}

func (n *Node) levelString(indent int, buf *bytes.Buffer) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	buf.WriteString(n.Type.String())
	if n.Name != "" {
		buf.WriteString(fmt.Sprintf("(%q)", n.Name))
	}
	if n.TypeRef != "" {
		buf.WriteString(fmt.Sprintf(" %s", n.TypeRef))
	}
	buf.WriteString("\n")

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.levelString(indent+1, buf)
	}
}
