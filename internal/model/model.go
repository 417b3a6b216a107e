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

// Package model holds the message/enum tree built by the lookup engine's
// Phase 1 scan (spec §4.3). It plays the role the teacher's api.Message and
// api.Enum play for RPC client generation, trimmed to what a schema/codec
// compiler needs: no service/method/pagination/routing attributes, just the
// nested-message and field shape the emitters walk.
package model

import (
	"sort"

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

// Message is one protobuf message declaration, with its nested messages and
// enums, as scanned from a source file.
type Message struct {
	// FQName is the fully-qualified protobuf name, e.g.
	// ".proto.GetAccountDetailsResponse.AccountDetails".
	FQName string
	Name   string
	// SourceFile is the path of the .proto file this message was declared
	// in; the per-file symbol map (§3.3) is keyed on this.
	SourceFile string
	// Package is the protobuf package declared (or inherited) for this
	// message.
	Package string

	DocComment string
	Deprecated bool

	// Fields holds every field declared directly on the message, in
	// declaration order, mixing Single, OneOf, and Map variants. A OneOf
	// variant's own Children hold its member Single fields; they do not
	// additionally appear as top-level entries here.
	Fields   []*field.Field
	Messages []*Message
	Enums    []*Enum
	Parent   *Message

	// IsMapEntry is true for the compiler-synthesized nested message that
	// backs a `map<K, V>` field; such messages are never themselves
	// emitted, they only supply the key/value Kind pair.
	IsMapEntry bool

	// Comparable holds the field names from a `pbj.comparable` annotation,
	// in declared priority order. Empty/nil means not comparable.
	Comparable []string
}

// Enum is one protobuf enum declaration.
type Enum struct {
	FQName     string
	Name       string
	SourceFile string
	Package    string
	DocComment string
	Values     []*EnumValue
	Parent     *Message
}

// EnumValue is one named constant within an Enum.
type EnumValue struct {
	Name       string
	Number     int32
	DocComment string
}

// FlatFields returns every wire-visible field of m, in declaration order,
// flattening oneofs into their child Singles. This is the view the schema
// and binary/JSON codec emitters walk (§4.6): "flattened across oneofs."
func (m *Message) FlatFields() []*field.Field {
	var out []*field.Field
	for _, f := range m.Fields {
		if f.Variant == field.VariantOneOf {
			out = append(out, f.OneOfFields...)
			continue
		}
		out = append(out, f)
	}
	return out
}

// OneOfs returns the OneOf-variant fields declared directly on m, in
// declaration order.
func (m *Message) OneOfs() []*field.Field {
	var out []*field.Field
	for _, f := range m.Fields {
		if f.Variant == field.VariantOneOf {
			out = append(out, f)
		}
	}
	return out
}

// ByFieldNumberAscending returns FlatFields sorted by ascending field
// number, the canonical serialization order required by §4.6/§6.3 for
// binary codec emission ("wire-format emission follows ascending field
// number").
func (m *Message) ByFieldNumberAscending() []*field.Field {
	out := append([]*field.Field(nil), m.FlatFields()...)
	sort.Slice(out, func(i, j int) bool { return out[i].FieldNumber < out[j].FieldNumber })
	return out
}
