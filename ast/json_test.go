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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToJSONObject(t *testing.T) {
	arena := NewArena()
	stmt := arena.New(Statement, "a")
	stmt.AppendChild(arena.New(Literal, "55"))

	got := stmt.ToJSONObject()
	want := map[string]interface{}{
		"type": "statement",
		"name": "a",
		"children": []map[string]interface{}{
			{"type": "literal", "name": "55"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToJSONObject mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONObjectOmitsEmptyFields(t *testing.T) {
	arena := NewArena()
	n := arena.New(Scope, "")

	got := n.ToJSONObject()
	if _, ok := got["name"]; ok {
		t.Errorf("expected no \"name\" key for an unnamed node, got %v", got)
	}
	if _, ok := got["children"]; ok {
		t.Errorf("expected no \"children\" key for a childless node, got %v", got)
	}
	if _, ok := got["typeref"]; ok {
		t.Errorf("expected no \"typeref\" key when TypeRef is empty, got %v", got)
	}
}

func TestFromJSONObjectRoundTrip(t *testing.T) {
	arena := NewArena()
	field := arena.New(StructField, "x")
	field.TypeRef = "int32"
	s := arena.New(Struct, "point")
	s.AppendChild(field)

	obj := s.ToJSONObject()

	back := NewArena()
	rebuilt, err := FromJSONObject(back, obj)
	if err != nil {
		t.Fatalf("FromJSONObject: %v", err)
	}

	if ok, msg := s.Equals(rebuilt); !ok {
		t.Errorf("round trip mismatch: %s", msg)
	}
}

func TestFromJSONObjectMissingType(t *testing.T) {
	arena := NewArena()
	_, err := FromJSONObject(arena, map[string]interface{}{"name": "a"})
	if err == nil {
		t.Fatal("expected an error for a JSON object with no \"type\" key")
	}
}
