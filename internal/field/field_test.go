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

package field

import "testing"

func TestCannotBeNull(t *testing.T) {
	for _, test := range []struct {
		name string
		f    *Field
		want bool
	}{
		{"repeated", &Field{Variant: VariantSingle, Repeated: true, Kind: KindInt32}, true},
		{"string", &Field{Variant: VariantSingle, Kind: KindString}, true},
		{"bytes", &Field{Variant: VariantSingle, Kind: KindBytes}, true},
		{"int32", &Field{Variant: VariantSingle, Kind: KindInt32}, false},
		{"map", &Field{Variant: VariantMap}, true},
	} {
		if got := test.f.CannotBeNull(); got != test.want {
			t.Errorf("%s: CannotBeNull() = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestIsOptionalWrapper(t *testing.T) {
	wrapper := &Field{Variant: VariantSingle, Kind: KindMessage, MessageTypeName: ".google.protobuf.StringValue"}
	if !wrapper.IsOptionalWrapper() {
		t.Errorf("expected StringValue field to be an optional wrapper")
	}
	regular := &Field{Variant: VariantSingle, Kind: KindMessage, MessageTypeName: ".demo.Greeting"}
	if regular.IsOptionalWrapper() {
		t.Errorf("expected regular message field to not be an optional wrapper")
	}
}

func TestNewOneOfFieldNumberIsFirstChild(t *testing.T) {
	a := NewSingle("a", 1, KindInt32, false)
	b := NewSingle("b", 2, KindString, false)
	oneOf := NewOneOf("demo.Msg", "choice", []*Field{a, b})
	if oneOf.FieldNumber != 1 {
		t.Errorf("OneOf.FieldNumber = %d, want 1 (first child's number)", oneOf.FieldNumber)
	}
	for _, c := range oneOf.OneOfFields {
		if c.Parent == nil || c.Parent.Name != "choice" {
			t.Errorf("child %q does not point back to its OneOf", c.Name)
		}
	}
}

func TestNewMapSyntheticFieldNumbers(t *testing.T) {
	key := NewSingle("key", 0, KindInt32, false)
	value := NewSingle("value", 0, KindString, false)
	m := NewMap("m", 1, key, value)
	if m.KeyField.FieldNumber != 1 || m.ValueField.FieldNumber != 2 {
		t.Errorf("map synthetic field numbers = (%d, %d), want (1, 2)", m.KeyField.FieldNumber, m.ValueField.FieldNumber)
	}
	if !m.KeyField.IsMapSynthetic || !m.ValueField.IsMapSynthetic {
		t.Errorf("expected both key and value to be marked synthetic")
	}
	if m.Repeated {
		t.Errorf("map fields must never be marked repeated (§3.5)")
	}
}

func TestSetMaxMessageSize(t *testing.T) {
	defer SetMaxMessageSize(16 * 1024 * 1024)

	SetMaxMessageSize(1024)
	if got := MaxMessageSize(); got != 1024 {
		t.Errorf("MaxMessageSize() = %d, want 1024", got)
	}

	SetMaxMessageSize(0)
	if got := MaxMessageSize(); got != 1024 {
		t.Errorf("MaxMessageSize() = %d after SetMaxMessageSize(0), want unchanged 1024", got)
	}

	SetMaxMessageSize(-5)
	if got := MaxMessageSize(); got != 1024 {
		t.Errorf("MaxMessageSize() = %d after SetMaxMessageSize(-5), want unchanged 1024", got)
	}
}
