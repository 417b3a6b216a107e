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

// Package wire is the small runtime every generated binary codec (§4.6,
// §6.3) calls into. Rather than inlining tag-packing and varint math into
// every generated Marshal/Unmarshal method, the generated code calls these
// thin wrappers around google.golang.org/protobuf/encoding/protowire, the
// same low-level wire package the reference Go protobuf runtime itself
// builds on. Zigzag conversion is the one piece protowire does not expose,
// so it is hand-rolled here (the bit trick from the protobuf wire format
// spec, not guessed).
package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire types, mirrored from pbname so generated code only needs to import
// one package for tag/type constants.
const (
	Varint          = int(protowire.VarintType)
	Fixed64         = int(protowire.Fixed64Type)
	LengthDelimited = int(protowire.BytesType)
	Fixed32         = int(protowire.Fixed32Type)
)

// AppendTag appends a packed field-number/wire-type tag.
func AppendTag(b []byte, fieldNumber, wireType int) []byte {
	return protowire.AppendTag(b, protowire.Number(fieldNumber), protowire.Type(wireType))
}

// AppendVarint appends v as an unsigned varint.
func AppendVarint(b []byte, v uint64) []byte { return protowire.AppendVarint(b, v) }

// AppendFixed32 appends v as a little-endian 4-byte value.
func AppendFixed32(b []byte, v uint32) []byte { return protowire.AppendFixed32(b, v) }

// AppendFixed64 appends v as a little-endian 8-byte value.
func AppendFixed64(b []byte, v uint64) []byte { return protowire.AppendFixed64(b, v) }

// AppendBytes appends a length-delimited value (also used for embedded
// messages and strings).
func AppendBytes(b []byte, v []byte) []byte { return protowire.AppendBytes(b, v) }

// SizeTag returns the number of bytes AppendTag would write for fieldNumber.
func SizeTag(fieldNumber int) int { return protowire.SizeTag(protowire.Number(fieldNumber)) }

// SizeVarint returns the number of bytes AppendVarint would write for v.
func SizeVarint(v uint64) int { return protowire.SizeVarint(v) }

// SizeBytes returns the number of bytes AppendBytes would write for a value
// of length n, including its own length prefix.
func SizeBytes(n int) int { return protowire.SizeBytes(n) }

// ConsumeTag reads a tag from the front of b, returning the field number,
// wire type, and the number of bytes consumed (negative on error).
func ConsumeTag(b []byte) (fieldNumber, wireType, n int) {
	num, typ, nn := protowire.ConsumeTag(b)
	return int(num), int(typ), nn
}

// ConsumeVarint reads an unsigned varint from the front of b.
func ConsumeVarint(b []byte) (uint64, int) { return protowire.ConsumeVarint(b) }

// ConsumeFixed32 reads a little-endian 4-byte value from the front of b.
func ConsumeFixed32(b []byte) (uint32, int) { return protowire.ConsumeFixed32(b) }

// ConsumeFixed64 reads a little-endian 8-byte value from the front of b.
func ConsumeFixed64(b []byte) (uint64, int) { return protowire.ConsumeFixed64(b) }

// ConsumeBytes reads a length-delimited value from the front of b.
func ConsumeBytes(b []byte) ([]byte, int) { return protowire.ConsumeBytes(b) }

// CheckMaxSize reports a size-exceeded error if n, the decoded length of a
// length-delimited field (a string, bytes, embedded message, map entry, or
// packed-repeated run), is larger than max (§6.4's per-field default
// message size ceiling, §7's size-exceeded error). max <= 0 disables the
// check, matching "overridable per parse call" allowing a caller to opt out.
func CheckMaxSize(n, max int) error {
	if max > 0 && n > max {
		return fmt.Errorf("length-delimited field of %d bytes exceeds max message size of %d bytes", n, max)
	}
	return nil
}

// ConsumeFieldValue skips one field's value, used when an unrecognized
// field number is encountered during parsing (§4.6: unknown fields are
// skipped, not rejected, in lenient mode).
func ConsumeFieldValue(fieldNumber, wireType int, b []byte) int {
	return protowire.ConsumeFieldValue(protowire.Number(fieldNumber), protowire.Type(wireType), b)
}

// BoolToVarint maps a bool to the 1-byte varint protobuf uses on the wire.
func BoolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// ZigZagEncode32 maps a signed 32-bit value to an unsigned one so that
// small-magnitude negatives still varint-encode to a small number of bytes
// (the sint32 wire encoding).
func ZigZagEncode32(v int32) uint64 {
	return uint64(uint32((v << 1) ^ (v >> 31)))
}

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(v uint64) int32 {
	u := uint32(v)
	return int32(u>>1) ^ -int32(u&1)
}

// ZigZagEncode64 maps a signed 64-bit value to an unsigned one (the sint64
// wire encoding).
func ZigZagEncode64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigZagDecode64 is the inverse of ZigZagEncode64.
func ZigZagDecode64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// The functions below are the small hashing/ordering runtime generated
// model Equal/Hash/Compare methods call into (§4.2), so every generated
// model file needs only this one extra import beyond its own package.

// CombineHash folds a field's hash contribution into a running hash using
// the classic 31*h+x recurrence.
func CombineHash(h, v int32) int32 { return h*31 + v }

// HashBool returns a field's hash contribution for a bool value.
func HashBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// HashInt64 folds a 64-bit signed value into a 32-bit hash contribution.
func HashInt64(v int64) int32 { return HashUint64(uint64(v)) }

// HashUint64 folds a 64-bit unsigned value into a 32-bit hash contribution.
func HashUint64(v uint64) int32 { return int32(v ^ (v >> 32)) }

// HashFloat32 returns a field's hash contribution for a float32 value,
// using its bit pattern so equal-by-IEEE-754 values (but not NaN payloads)
// hash consistently with CompareFloat32/equality.
func HashFloat32(v float32) int32 { return int32(math.Float32bits(v)) }

// HashFloat64 returns a field's hash contribution for a float64 value.
func HashFloat64(v float64) int32 { return HashUint64(uint64(math.Float64bits(v))) }

// HashBytes returns a field's hash contribution for raw bytes (also used
// for strings, via HashString).
func HashBytes(b []byte) int32 {
	var h int32
	for _, c := range b {
		h = h*31 + int32(c)
	}
	return h
}

// HashString returns a field's hash contribution for a string value.
func HashString(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	return h
}

// CompareBool orders false before true.
func CompareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

// CompareInt64 is a three-way comparator for signed integers.
func CompareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareUint64 is a three-way comparator for unsigned integers, used for
// the uint32/fixed32/uint64/fixed64 Kinds that need unsigned-aware ordering
// (§4.2).
func CompareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareFloat32 is a bitwise-consistent comparator: ordinary ordering for
// non-NaN values, then a stable bit-pattern tiebreak so NaN (and -0.0 vs
// +0.0) compare predictably instead of every NaN comparison reporting
// "unordered" (§4.2).
func CompareFloat32(a, b float32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	ba, bb := math.Float32bits(a), math.Float32bits(b)
	switch {
	case ba == bb:
		return 0
	case ba < bb:
		return -1
	default:
		return 1
	}
}

// CompareFloat64 is CompareFloat32's 64-bit counterpart.
func CompareFloat64(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	ba, bb := math.Float64bits(a), math.Float64bits(b)
	switch {
	case ba == bb:
		return 0
	case ba < bb:
		return -1
	default:
		return 1
	}
}
