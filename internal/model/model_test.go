// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"testing"

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

func TestFlatFieldsFlattensOneOfs(t *testing.T) {
	a := field.NewSingle("a", 1, field.KindInt32, false)
	b := field.NewSingle("b", 2, field.KindString, false)
	oneOf := field.NewOneOf("demo.Msg", "choice", []*field.Field{a, b})
	plain := field.NewSingle("id", 3, field.KindInt32, false)

	m := &Message{FQName: "demo.Msg", Fields: []*field.Field{oneOf, plain}}
	flat := m.FlatFields()
	if len(flat) != 3 {
		t.Fatalf("FlatFields() returned %d fields, want 3", len(flat))
	}
	if flat[0].Name != "a" || flat[1].Name != "b" || flat[2].Name != "id" {
		t.Errorf("FlatFields() order = %v, want [a b id]", names(flat))
	}
}

func TestByFieldNumberAscending(t *testing.T) {
	a := field.NewSingle("text", 5, field.KindString, false)
	b := field.NewSingle("id", 1, field.KindInt32, false)
	m := &Message{FQName: "demo.Greeting", Fields: []*field.Field{a, b}}
	ordered := m.ByFieldNumberAscending()
	if ordered[0].Name != "id" || ordered[1].Name != "text" {
		t.Errorf("ByFieldNumberAscending() = %v, want [id text]", names(ordered))
	}
}

func names(fs []*field.Field) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}
