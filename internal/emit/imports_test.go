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

func messageViewWithField(fv FieldView) MessageView {
	finalizeModel(&fv)
	finalizeCodec(&fv)
	finalizeJSON(&fv)
	return MessageView{Fields: []FieldView{fv}, WireFields: []FieldView{fv}}
}

func TestNeedsBytesCompareOnlyForBytesFields(t *testing.T) {
	if needsBytesCompare(messageViewWithField(FieldView{GoName: "Payload", Kind: field.KindBytes})) != true {
		t.Error("a bytes field should require the bytes import")
	}
	if needsBytesCompare(messageViewWithField(FieldView{GoName: "Count", Kind: field.KindInt32})) != false {
		t.Error("an int32 field should not require the bytes import")
	}
}

func TestNeedsStringsCompareOnlyForStringFields(t *testing.T) {
	if needsStringsCompare(messageViewWithField(FieldView{GoName: "Name", Kind: field.KindString})) != true {
		t.Error("a string field should require the strings import (Compare)")
	}
	if needsStringsCompare(messageViewWithField(FieldView{GoName: "Count", Kind: field.KindInt32})) != false {
		t.Error("an int32 field should not require the strings import")
	}
}

func TestNeedsMathOnlyForFloatingFields(t *testing.T) {
	if needsMath(messageViewWithField(FieldView{GoName: "Ratio", Kind: field.KindFloat})) != true {
		t.Error("a float field should require the math import")
	}
	if needsMath(messageViewWithField(FieldView{GoName: "Count", Kind: field.KindInt32})) != false {
		t.Error("an int32 field should not require the math import")
	}
}

func TestNeedsSortOnlyForMapFields(t *testing.T) {
	key := FieldView{GoName: "Key", GoType: "string", Kind: field.KindString}
	value := FieldView{GoName: "Value", GoType: "int32", Kind: field.KindInt32}
	mapField := FieldView{GoName: "Scores", GoType: "map[string]int32", IsMap: true, MapKey: &key, MapValue: &value}
	if needsSort(messageViewWithField(mapField)) != true {
		t.Error("a map field should require the sort import")
	}
	if needsSort(messageViewWithField(FieldView{GoName: "Count", Kind: field.KindInt32})) != false {
		t.Error("an int32 field should not require the sort import")
	}
}

func TestNeedsBase64AndStrconvForBytesAndInt64(t *testing.T) {
	if needsBase64(messageViewWithField(FieldView{GoName: "Payload", Kind: field.KindBytes})) != true {
		t.Error("a bytes field's JSON codec should require base64")
	}
	if needsStrconv(messageViewWithField(FieldView{GoName: "BigID", Kind: field.KindInt64})) != true {
		t.Error("an int64 field's JSON codec should require strconv")
	}
}

func TestNeedsStringsFixtureScansTestCaseLiterals(t *testing.T) {
	mv := MessageView{TestCases: []TestCaseView{{Literal: `strings.Repeat("x", 256)`}}}
	if !needsStringsFixture(mv) {
		t.Error("a test case literal using strings.Repeat should require the strings import")
	}
	mv = MessageView{TestCases: []TestCaseView{{Literal: `int32(0)`}}}
	if needsStringsFixture(mv) {
		t.Error("a plain literal should not require the strings import")
	}
}
