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

// Package jsonrt is the small runtime every generated JSON codec (§6.3)
// calls into, the JSON-side counterpart to internal/wire for the binary
// codec: generated MarshalJSON methods build an object by repeated calls
// into Append, then close it themselves, rather than each reimplementing
// comma/brace bookkeeping.
package jsonrt

import (
	"encoding/json"
	"strings"
)

// NewObject returns the opening byte of a JSON object, the starting buffer
// every generated MarshalJSON method appends members into.
func NewObject() []byte { return []byte{'{'} }

// CloseObject appends the closing brace, the last step of every generated
// MarshalJSON method.
func CloseObject(buf []byte) []byte { return append(buf, '}') }

// AppendRaw appends a `"name":value` member, inserting a leading comma if
// buf already holds at least one member. value must already be valid JSON
// text (a literal, an array, an object, or a pre-quoted string).
func AppendRaw(buf []byte, name, value string) []byte {
	if len(buf) > 1 {
		buf = append(buf, ',')
	}
	buf = append(buf, '"')
	buf = append(buf, name...)
	buf = append(buf, '"', ':')
	buf = append(buf, value...)
	return buf
}

// AppendString appends a `"name":"value"` member, JSON-escaping value.
func AppendString(buf []byte, name, value string) []byte {
	quoted, _ := json.Marshal(value)
	return AppendRaw(buf, name, string(quoted))
}

// AppendRawArray appends a `"name":[...]` member from pre-rendered element
// literals (each already quoted if its Kind requires it).
func AppendRawArray(buf []byte, name string, items []string) []byte {
	return AppendRaw(buf, name, "["+strings.Join(items, ",")+"]")
}

// AppendRawMap appends a `"name":{...}` member. keys must already be sorted
// (map iteration order is not stable, and §8 requires deterministic output);
// entries holds each key's pre-rendered value literal.
func AppendRawMap(buf []byte, name string, keys []string, entries map[string]string) []byte {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		kq, _ := json.Marshal(k)
		parts = append(parts, string(kq)+":"+entries[k])
	}
	return AppendRaw(buf, name, "{"+strings.Join(parts, ",")+"}")
}
