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

// Package field holds the type-classed representation of protobuf fields:
// a closed Kind variant (§3.1 of the design) plus the Field struct that
// generalizes over scalar, string/bytes, enum, message, repeated, map, and
// one-of field shapes (§3.2) behind one uniform API, instead of one class
// per shape.
package field

import "github.com/hiero-ledger/pbjc-go/internal/pbname"

// Kind is the closed variant over every field type a protobuf message field
// can have, as a tagged enum per the redesign flag in spec §9; the
// Single/OneOf/Map shape of a field is carried separately by Field.Variant
// (field.go). Go does not check switches over Kind for exhaustiveness, so a
// kind a switch does not list goes to its default branch.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt32
	KindUInt32
	KindSInt32
	KindFixed32
	KindSFixed32
	KindInt64
	KindUInt64
	KindSInt64
	KindFixed64
	KindSFixed64
	KindFloat
	KindDouble
	KindBool
	KindString
	KindBytes
	KindEnum
	KindMessage
	KindOneOf
	KindMap
)

// kindInfo carries the per-Kind facts that never depend on a specific field
// instance: wire type, default literal, display type name, boxed form.
type kindInfo struct {
	wireType     int
	defaultLit   string
	displayName  string
	boxedName    string
}

var kindTable = map[Kind]kindInfo{
	KindInt32:     {pbname.WireVarint, "0", "int32", "Integer"},
	KindUInt32:    {pbname.WireVarint, "0", "uint32", "Integer"},
	KindSInt32:    {pbname.WireVarint, "0", "int32", "Integer"},
	KindFixed32:   {pbname.WireFixed32, "0", "uint32", "Integer"},
	KindSFixed32:  {pbname.WireFixed32, "0", "int32", "Integer"},
	KindInt64:     {pbname.WireVarint, "0", "int64", "Long"},
	KindUInt64:    {pbname.WireVarint, "0", "uint64", "Long"},
	KindSInt64:    {pbname.WireVarint, "0", "int64", "Long"},
	KindFixed64:   {pbname.WireFixed64, "0", "uint64", "Long"},
	KindSFixed64:  {pbname.WireFixed64, "0", "int64", "Long"},
	KindFloat:     {pbname.WireFixed32, "0.0", "float32", "Float"},
	KindDouble:    {pbname.WireFixed64, "0.0", "float64", "Double"},
	KindBool:      {pbname.WireVarint, "false", "bool", "Boolean"},
	KindString:    {pbname.WireLengthDelimited, `""`, "string", "String"},
	KindBytes:     {pbname.WireLengthDelimited, "nil", "[]byte", "Bytes"},
	KindEnum:      {pbname.WireVarint, "0", "int32", "Integer"},
	KindMessage:   {pbname.WireLengthDelimited, "nil", "*Message", "Message"},
	KindOneOf:     {0, "nil", "OneOf", "OneOf"},
	KindMap:       {pbname.WireLengthDelimited, "nil", "map", "Map"},
}

// WireType returns the wire type used to encode a field of this Kind. OneOf
// carries 0 as a sentinel: the wire type is meaningless for a OneOf itself,
// only for its currently-set child field.
func (k Kind) WireType() int { return kindTable[k].wireType }

// DefaultLiteral returns the target-language literal for this Kind's
// zero value.
func (k Kind) DefaultLiteral() string { return kindTable[k].defaultLit }

// DisplayName returns the unboxed (primitive, where applicable) type name
// used in accessor signatures.
func (k Kind) DisplayName() string { return kindTable[k].displayName }

// BoxedName returns the boxed/object form name, used for optional-wrapper
// (nullable) representations.
func (k Kind) BoxedName() string { return kindTable[k].boxedName }

// IsScalarNumeric reports whether the Kind is one of the numeric (varint or
// fixed-width), bool or enum variants that support packed-repeated encoding.
func (k Kind) IsScalarNumeric() bool {
	switch k {
	case KindInt32, KindUInt32, KindSInt32, KindFixed32, KindSFixed32,
		KindInt64, KindUInt64, KindSInt64, KindFixed64, KindSFixed64,
		KindFloat, KindDouble, KindBool, KindEnum:
		return true
	}
	return false
}

// IsUnsigned reports whether native comparison needs an unsigned-aware
// comparator to produce correct compareTo-style ordering (§4.2).
func (k Kind) IsUnsigned() bool {
	switch k {
	case KindUInt32, KindFixed32, KindUInt64, KindFixed64:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt32:
		return "int32"
	case KindUInt32:
		return "uint32"
	case KindSInt32:
		return "sint32"
	case KindFixed32:
		return "fixed32"
	case KindSFixed32:
		return "sfixed32"
	case KindInt64:
		return "int64"
	case KindUInt64:
		return "uint64"
	case KindSInt64:
		return "sint64"
	case KindFixed64:
		return "fixed64"
	case KindSFixed64:
		return "sfixed64"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindEnum:
		return "enum"
	case KindMessage:
		return "message"
	case KindOneOf:
		return "oneof"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// WrapperMessageKinds maps the fully-qualified name of each of the nine
// google.protobuf wrapper ("optional primitive") messages to the scalar Kind
// it is rendered as. Per design note §9, these are never modeled as imported
// message types; IsOptionalWrapper (field.go) uses this table to detect them.
var WrapperMessageKinds = map[string]Kind{
	".google.protobuf.StringValue": KindString,
	".google.protobuf.Int32Value":  KindInt32,
	".google.protobuf.UInt32Value": KindUInt32,
	".google.protobuf.Int64Value":  KindInt64,
	".google.protobuf.UInt64Value": KindUInt64,
	".google.protobuf.FloatValue":  KindFloat,
	".google.protobuf.DoubleValue": KindDouble,
	".google.protobuf.BoolValue":   KindBool,
	".google.protobuf.BytesValue":  KindBytes,
}
