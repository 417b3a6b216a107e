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

package emit

import (
	"fmt"
	"strings"
)

// FieldDescriptorView is one entry in a message's schema artifact: a plain
// metadata record, not executable codec logic, so (unlike FieldView) it
// carries no Encode/Decode/Size statements of its own.
type FieldDescriptorView struct {
	GoName      string
	ProtoName   string
	FieldNumber int
	WireType    int
	KindName    string // e.g. "int32", "string", "message"
	Repeated    bool
	IsMap       bool
	IsEnum      bool
	IsMessage   bool

	// MapRole is "key" or "value" for the two synthetic descriptors a map
	// field contributes in addition to its own (§4.6: "maps produce three
	// descriptors"); empty for every other descriptor.
	MapRole string
}

// BuildSchemaDescriptors flattens a message's field views into the schema
// artifact's descriptor list: one descriptor per scalar/message/enum field,
// three for a map (the map field itself, then its key and value), one per
// oneof branch (oneof children already appear as individual FieldViews by
// the time BuildMessageView hands them here).
func BuildSchemaDescriptors(fields []FieldView) []FieldDescriptorView {
	var out []FieldDescriptorView
	for _, f := range fields {
		if f.IsMap {
			out = append(out, descriptorFor(f, ""))
			if f.MapKey != nil {
				out = append(out, descriptorFor(*f.MapKey, "key"))
			}
			if f.MapValue != nil {
				out = append(out, descriptorFor(*f.MapValue, "value"))
			}
			continue
		}
		out = append(out, descriptorFor(f, ""))
	}
	return out
}

func descriptorFor(f FieldView, role string) FieldDescriptorView {
	return FieldDescriptorView{
		GoName:      f.GoName,
		ProtoName:   f.ProtoName,
		FieldNumber: f.FieldNumber,
		WireType:    f.WireType,
		KindName:    f.Kind.DisplayName(),
		Repeated:    f.Repeated,
		IsMap:       f.IsMap,
		IsEnum:      f.IsEnum,
		IsMessage:   f.IsMessage,
		MapRole:     role,
	}
}

// BuildGetFieldStmt renders the body of the schema artifact's
// GetField(fieldNumber) dispatcher (§4.6). Only top-level descriptors
// (MapRole == "") are dispatchable by field number: a map's key/value
// descriptors reuse field numbers 1 and 2 inside their own entry message and
// would collide with unrelated top-level fields if dispatched from the same
// switch.
func BuildGetFieldStmt(descriptors []FieldDescriptorView, sliceName string) string {
	var b strings.Builder
	b.WriteString("switch fieldNumber {\n")
	idx := 0
	for _, d := range descriptors {
		if d.MapRole != "" {
			idx++
			continue
		}
		fmt.Fprintf(&b, "case %d:\n\treturn &%s[%d], true\n", d.FieldNumber, sliceName, idx)
		idx++
	}
	b.WriteString("default:\n\treturn nil, false\n}\n")
	return b.String()
}
