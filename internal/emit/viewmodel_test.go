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
	"testing"

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

func TestScalarGoTypeMapsKinds(t *testing.T) {
	cases := map[field.Kind]string{
		field.KindDouble: "float64",
		field.KindFloat:  "float32",
		field.KindInt64:  "int64",
		field.KindUInt64: "uint64",
		field.KindInt32:  "int32",
		field.KindUInt32: "uint32",
		field.KindBool:   "bool",
		field.KindString: "string",
		field.KindBytes:  "[]byte",
	}
	for k, want := range cases {
		if got := scalarGoType(k); got != want {
			t.Errorf("scalarGoType(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestDefaultLiteralPerGoType(t *testing.T) {
	cases := []struct {
		goType      string
		cannotBeNil bool
		want        string
	}{
		{"*Greeting", false, "nil"},
		{"string", false, `""`},
		{"bool", false, "false"},
		{"[]string", false, "nil"},
		{"[]string", true, "[]string{}"},
		{"map[string]int32", false, "map[string]int32{}"},
		{"int32", false, "int32(0)"},
	}
	for _, c := range cases {
		if got := defaultLiteral(c.goType, c.cannotBeNil); got != c.want {
			t.Errorf("defaultLiteral(%q, %v) = %q, want %q", c.goType, c.cannotBeNil, got, c.want)
		}
	}
}

func TestBuildMessageViewFromScan(t *testing.T) {
	tables, facade := scanSample(t)
	m, ok := tables.MessageByID[".ex.demo.Greeting"]
	if !ok {
		t.Fatalf("scan did not record .ex.demo.Greeting; known ids: %v", messageIDs(tables))
	}

	mv := BuildMessageView(m, facade)
	if mv.GoName != "Greeting" {
		t.Errorf("GoName = %q, want %q", mv.GoName, "Greeting")
	}
	if mv.Package != "ex.demo" {
		t.Errorf("Package = %q, want %q", mv.Package, "ex.demo")
	}
	if mv.SchemaPkg != "ex.demo.schema" {
		t.Errorf("SchemaPkg = %q, want %q", mv.SchemaPkg, "ex.demo.schema")
	}
	if mv.CodecPkg != "ex.demo.codec" {
		t.Errorf("CodecPkg = %q, want %q", mv.CodecPkg, "ex.demo.codec")
	}

	if len(mv.Fields) != 5 {
		t.Fatalf("expected 5 fields (message, count, tags, scores, reply_to), got %d", len(mv.Fields))
	}
	if len(mv.WireFields) != len(mv.Fields) {
		t.Errorf("WireFields should contain every field, got %d want %d", len(mv.WireFields), len(mv.Fields))
	}
	for i := 1; i < len(mv.WireFields); i++ {
		if mv.WireFields[i-1].FieldNumber > mv.WireFields[i].FieldNumber {
			t.Errorf("WireFields not in ascending field-number order: %d before %d",
				mv.WireFields[i-1].FieldNumber, mv.WireFields[i].FieldNumber)
		}
	}

	if len(mv.TestCases) == 0 {
		t.Error("expected at least one generated test case")
	}
	if mv.ModelImportAlias != "model" || mv.CodecImportAlias != "codec" {
		t.Errorf("unexpected import aliases: model=%q codec=%q", mv.ModelImportAlias, mv.CodecImportAlias)
	}
}

func TestBuildMessageViewMapFieldContributesThreeDescriptors(t *testing.T) {
	tables, facade := scanSample(t)
	m, ok := tables.MessageByID[".ex.demo.Greeting"]
	if !ok {
		t.Fatalf("scan did not record .ex.demo.Greeting")
	}
	mv := BuildMessageView(m, facade)

	var mapField *FieldView
	for i := range mv.Fields {
		if mv.Fields[i].ProtoName == "scores" {
			mapField = &mv.Fields[i]
		}
	}
	if mapField == nil {
		t.Fatal("expected a \"scores\" map field in Greeting")
	}
	if !mapField.IsMap || mapField.MapKey == nil || mapField.MapValue == nil {
		t.Fatalf("scores field not recognized as a map: %+v", mapField)
	}

	mapDescriptors := 0
	for _, d := range mv.SchemaDescriptors {
		if d.ProtoName == "scores" || d.MapRole != "" {
			mapDescriptors++
		}
	}
	if mapDescriptors != 3 {
		t.Errorf("expected 3 descriptors contributed by the map field, got %d", mapDescriptors)
	}
}
