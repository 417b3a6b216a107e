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

// Package schemart holds the one shared type every generated schema
// artifact (§4.6) reuses, so FieldDescriptor is declared exactly once even
// when several messages share the same ".schema" package (§4.3's
// package-suffix rule groups by base package, not by message).
package schemart

// FieldDescriptor describes one wire-visible field (or, for a map field,
// one of its three synthetic parts: the map itself, its key, its value).
type FieldDescriptor struct {
	Name        string
	ProtoName   string
	FieldNumber int
	WireType    int
	Kind        string
	Repeated    bool
	IsMap       bool
	MapRole     string
}
