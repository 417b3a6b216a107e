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
	"strings"
	"testing"

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

func TestBuildSchemaDescriptorsScalarYieldsOneDescriptor(t *testing.T) {
	fields := []FieldView{
		{GoName: "Count", ProtoName: "count", FieldNumber: 1, Kind: field.KindInt32},
	}
	got := BuildSchemaDescriptors(fields)
	if len(got) != 1 {
		t.Fatalf("expected 1 descriptor for a scalar field, got %d", len(got))
	}
	if got[0].MapRole != "" {
		t.Errorf("scalar descriptor should have empty MapRole, got %q", got[0].MapRole)
	}
	if got[0].KindName != field.KindInt32.DisplayName() {
		t.Errorf("KindName = %q, want %q", got[0].KindName, field.KindInt32.DisplayName())
	}
}

func TestBuildSchemaDescriptorsMessageAndEnumFlags(t *testing.T) {
	fields := []FieldView{
		{GoName: "ReplyTo", ProtoName: "reply_to", FieldNumber: 5, Kind: field.KindMessage, IsMessage: true},
		{GoName: "Status", ProtoName: "status", FieldNumber: 6, Kind: field.KindEnum, IsEnum: true},
	}
	got := BuildSchemaDescriptors(fields)
	if len(got) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(got))
	}
	if !got[0].IsMessage || got[0].IsEnum {
		t.Errorf("message descriptor flags wrong: %+v", got[0])
	}
	if !got[1].IsEnum || got[1].IsMessage {
		t.Errorf("enum descriptor flags wrong: %+v", got[1])
	}
}

func TestBuildSchemaDescriptorsMapYieldsThreeDescriptors(t *testing.T) {
	key := FieldView{GoName: "Key", ProtoName: "key", FieldNumber: 1, Kind: field.KindString}
	value := FieldView{GoName: "Value", ProtoName: "value", FieldNumber: 2, Kind: field.KindInt32}
	fields := []FieldView{
		{
			GoName: "Scores", ProtoName: "scores", FieldNumber: 4,
			IsMap: true, MapKey: &key, MapValue: &value,
		},
	}
	got := BuildSchemaDescriptors(fields)
	if len(got) != 3 {
		t.Fatalf("expected 3 descriptors for a map field, got %d", len(got))
	}
	if got[0].MapRole != "" {
		t.Errorf("the map field's own descriptor should have empty MapRole, got %q", got[0].MapRole)
	}
	if got[1].MapRole != "key" {
		t.Errorf("second descriptor MapRole = %q, want \"key\"", got[1].MapRole)
	}
	if got[2].MapRole != "value" {
		t.Errorf("third descriptor MapRole = %q, want \"value\"", got[2].MapRole)
	}
}

func TestBuildGetFieldStmtExcludesMapRoleDescriptors(t *testing.T) {
	descriptors := []FieldDescriptorView{
		{FieldNumber: 1, MapRole: ""},
		{FieldNumber: 4, MapRole: ""},
		{FieldNumber: 1, MapRole: "key"},
		{FieldNumber: 2, MapRole: "value"},
	}
	stmt := BuildGetFieldStmt(descriptors, "fields")

	if !strings.Contains(stmt, "case 1:\n\treturn &fields[0], true\n") {
		t.Errorf("expected field 1 to dispatch to index 0:\n%s", stmt)
	}
	if !strings.Contains(stmt, "case 4:\n\treturn &fields[1], true\n") {
		t.Errorf("expected field 4 to dispatch to index 1 (map key/value still consume slice indices):\n%s", stmt)
	}
	if strings.Count(stmt, "case ") != 2 {
		t.Errorf("expected exactly 2 dispatchable cases (map key/value excluded), got:\n%s", stmt)
	}
	if !strings.Contains(stmt, "default:\n\treturn nil, false\n") {
		t.Errorf("expected a default case returning (nil, false):\n%s", stmt)
	}
}
