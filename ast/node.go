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

import "fmt"

/*
Type enumerates the AST node kinds glint's parser produces, exactly the set
named in spec.md §3.
*/
type Type int

const (
	Root Type = iota
	Literal
	Struct
	StructField
	Function
	Arguments
	Statement
	Expression
	Call
	If
	For
	ForIn // reserved: spec.md's grammar (§4.4) never constructs this node.
	While
	DoWhile
	Continue
	Break
	Scope
)

var typeNames = [...]string{
	"root", "literal", "struct", "struct-field", "function", "arguments",
	"statement", "expression", "call", "if", "for", "for-in", "while",
	"do-while", "continue", "break", "scope",
}

/*
String renders a node Type by name, for diagnostics and JSON dumps.
*/
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

/*
Flags are per-node attribute bits, analogous to lexer.Flags but for AST
nodes. Currently unused by the core grammar; reserved for downstream passes
(spec.md §3 "AST node" lists Flags as part of the record shape).
*/
type Flags uint32

/*
Node is one element of the AST (spec.md §3 "AST node", component C4). Nodes
are allocated from an Arena and never relocated, so Parent/FirstChild/
LastChild/NextSibling pointers are stable for the arena's lifetime.

Name is a borrowed or arena-owned byte view - typically the value of the
token that produced the node (an operator spelling, an identifier, a literal
spelling). TypeRef carries the declared-type spelling for struct fields and
function parameters (e.g. "int32"), the one place the grammar attaches a
second name to a node; it is the "optional payload region whose shape is
determined by type" spec.md §3 describes.
*/
type Node struct {
	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	NextSibling *Node

	Name    string
	Type    Type
	Flags   Flags
	TypeRef string
}

/*
AppendChild links child as the new last child of n.
*/
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	child.NextSibling = nil
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		return
	}
	n.LastChild.NextSibling = child
	n.LastChild = child
}

/*
Children returns the node's children as a slice, for callers that prefer
random access over walking NextSibling links.
*/
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

/*
ChildCount returns the number of direct children of n.
*/
func (n *Node) ChildCount() int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

/*
Walk performs a pre-order traversal of the subtree rooted at n, calling visit
for every node including n itself. If visit returns false for a node, Walk
does not descend into that node's children; the rest of the traversal
(that node's later siblings and their subtrees) still runs.
*/
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.Walk(visit)
	}
}

/*
Equals reports whether n and other describe the same tree shape (Type, Name,
TypeRef, and children recursively), ignoring arena identity and any parent
pointers. It returns a message describing the first difference found,
matching the teacher's ASTNode.Equals idiom in krotik-ecal/parser/helper.go.
*/
func (n *Node) Equals(other *Node) (bool, string) {
	if n == nil || other == nil {
		if n == other {
			return true, ""
		}
		return false, "one node is nil"
	}
	if n.Type != other.Type {
		return false, fmt.Sprintf("type differs: %v vs %v", n.Type, other.Type)
	}
	if n.Name != other.Name {
		return false, fmt.Sprintf("name differs: %q vs %q", n.Name, other.Name)
	}
	if n.TypeRef != other.TypeRef {
		return false, fmt.Sprintf("typeref differs: %q vs %q", n.TypeRef, other.TypeRef)
	}
	a, b := n.Children(), other.Children()
	if len(a) != len(b) {
		return false, fmt.Sprintf("%s: child count differs: %d vs %d", n.Name, len(a), len(b))
	}
	for i := range a {
		if ok, msg := a[i].Equals(b[i]); !ok {
			return false, msg
		}
	}
	return true, ""
}
