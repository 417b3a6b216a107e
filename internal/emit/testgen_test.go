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

func TestBuildTestCasesAlwaysProducesAtLeastOneRow(t *testing.T) {
	mv := MessageView{GoName: "Empty"}
	cases := BuildTestCases(mv, "model", 0)
	if len(cases) != 1 {
		t.Fatalf("expected exactly 1 row for a message with no fields, got %d", len(cases))
	}
	if !strings.Contains(cases[0].Literal, "&model.Empty{}") {
		t.Errorf("Literal = %q", cases[0].Literal)
	}
}

func TestBuildTestCasesRespectsMaxCases(t *testing.T) {
	mv := MessageView{
		GoName: "M",
		Fields: []FieldView{{GoName: "Name", Kind: field.KindString}},
	}
	cases := BuildTestCases(mv, "model", 2)
	if len(cases) != 2 {
		t.Fatalf("expected the table to be capped at maxCases=2, got %d rows", len(cases))
	}
}

func TestBuildTestCasesCyclesFieldsIndependently(t *testing.T) {
	mv := MessageView{
		GoName: "M",
		Fields: []FieldView{
			{GoName: "Flag", Kind: field.KindBool},
			{GoName: "Name", Kind: field.KindString},
		},
	}
	cases := BuildTestCases(mv, "model", DefaultMaxTestCases)
	if len(cases) < 2 {
		t.Fatalf("expected at least 2 rows so both bool values are exercised, got %d", len(cases))
	}
	if !strings.Contains(cases[0].Literal, "Flag: false") {
		t.Errorf("row 0 Literal = %q, want Flag: false", cases[0].Literal)
	}
	if !strings.Contains(cases[1].Literal, "Flag: true") {
		t.Errorf("row 1 Literal = %q, want Flag: true", cases[1].Literal)
	}
}

func TestEdgeValuesForFieldMessageIncludesNil(t *testing.T) {
	f := FieldView{GoType: "*Greeting", IsMessage: true}
	vals := edgeValuesForField(f, "model")
	if vals[0] != "nil" {
		t.Errorf("first candidate should be nil, got %q", vals[0])
	}
	if !strings.Contains(vals[1], "&model.Greeting{}") {
		t.Errorf("second candidate = %q", vals[1])
	}
}

func TestWrapperEdgeValuesStartsWithNil(t *testing.T) {
	vals := wrapperEdgeValues(field.KindInt32)
	if vals[0] != "nil" {
		t.Errorf("wrapper edge values must start with nil (unset), got %q", vals[0])
	}
	for _, v := range vals[1:] {
		if !strings.HasPrefix(v, "ptrOf(") {
			t.Errorf("non-nil wrapper candidate %q should be wrapped in ptrOf(...)", v)
		}
	}
}

func TestScalarEdgeValuesStringIncludesLongFixture(t *testing.T) {
	vals := scalarEdgeValues(field.KindString)
	found := false
	for _, v := range vals {
		if strings.Contains(v, "strings.Repeat") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a strings.Repeat fixture among string edge values, got %v", vals)
	}
}

func TestScalarEdgeValuesUint64IncludesMaxValue(t *testing.T) {
	vals := scalarEdgeValues(field.KindUInt64)
	found := false
	for _, v := range vals {
		if strings.Contains(v, "18446744073709551615") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the uint64 max value among edge values, got %v", vals)
	}
}
