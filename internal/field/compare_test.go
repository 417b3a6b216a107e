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

func TestValidateComparableRejectsRepeated(t *testing.T) {
	f := NewSingle("xs", 1, KindInt32, true)
	err := ValidateComparable("demo.Msg", f, func(string) bool { return true })
	if _, ok := err.(*ErrRepeatedNotOrderable); !ok {
		t.Fatalf("expected ErrRepeatedNotOrderable, got %v", err)
	}
}

func TestValidateComparableRejectsNonComparableMessage(t *testing.T) {
	f := NewSingle("inner", 1, KindMessage, false)
	f.MessageTypeName = ".demo.Inner"
	err := ValidateComparable("demo.Outer", f, func(string) bool { return false })
	if _, ok := err.(*ErrNotComparable); !ok {
		t.Fatalf("expected ErrNotComparable, got %v", err)
	}
}

func TestValidateComparableAcceptsComparableMessage(t *testing.T) {
	f := NewSingle("inner", 1, KindMessage, false)
	f.MessageTypeName = ".demo.Inner"
	if err := ValidateComparable("demo.Outer", f, func(string) bool { return true }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCompareKindFor(t *testing.T) {
	for _, test := range []struct {
		kind Kind
		want CompareKind
	}{
		{KindFloat, CompareIEEE754},
		{KindDouble, CompareIEEE754},
		{KindString, CompareContent},
		{KindBytes, CompareContent},
		{KindMessage, CompareRecurse},
		{KindUInt32, CompareUnsigned},
		{KindFixed64, CompareUnsigned},
		{KindInt32, CompareNative},
		{KindBool, CompareNative},
	} {
		if got := CompareKindFor(test.kind); got != test.want {
			t.Errorf("CompareKindFor(%v) = %v, want %v", test.kind, got, test.want)
		}
	}
}
