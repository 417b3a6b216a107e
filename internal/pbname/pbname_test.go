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

package pbname

import "testing"

func TestSnakeToCamel(t *testing.T) {
	for _, test := range []struct {
		input      string
		firstUpper bool
		want       string
	}{
		{"hello_world", false, "helloWorld"},
		{"HELLO_WORLD", true, "HelloWorld"},
		{"account_details", true, "AccountDetails"},
		{"account_details", false, "accountDetails"},
		{"id", true, "Id"},
	} {
		if got := SnakeToCamel(test.input, test.firstUpper); got != test.want {
			t.Errorf("SnakeToCamel(%q, %v) = %q, want %q", test.input, test.firstUpper, got, test.want)
		}
	}
}

func TestSnakeToCamelEmpty(t *testing.T) {
	if got := SnakeToCamel("", true); got != "" {
		t.Errorf("SnakeToCamel(\"\", true) = %q, want empty", got)
	}
}

func TestCamelToUpperSnake(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"helloWorldID", "HELLO_WORLD_ID"},
		{"HelloWorld", "HELLO_WORLD"},
		{"ALREADY_SCREAMING", "ALREADY_SCREAMING"},
		{"already_snake", "ALREADY_SNAKE"},
		{"simple", "SIMPLE"},
	} {
		if got := CamelToUpperSnake(test.input); got != test.want {
			t.Errorf("CamelToUpperSnake(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestNameConversionRoundTrip(t *testing.T) {
	// Testable property from spec §8: converting to camel and back to
	// upper-snake preserves information up to case.
	for _, s := range []string{"hello_world", "account_details", "x"} {
		camel := SnakeToCamel(s, true)
		got := CamelToUpperSnake(camel)
		want := CamelToUpperSnake(s)
		if got != want {
			t.Errorf("round trip for %q: CamelToUpperSnake(SnakeToCamel(%q)) = %q, want %q", s, s, got, want)
		}
	}
}

func TestPackTagRoundTrip(t *testing.T) {
	for _, wireType := range []int{WireVarint, WireFixed64, WireLengthDelimited, WireFixed32} {
		for _, fieldNumber := range []int{1, 2, 15, 16, 1000, 1<<29 - 1} {
			tag := PackTag(wireType, fieldNumber)
			gotNumber, gotWire := UnpackTag(tag)
			if gotNumber != fieldNumber || gotWire != wireType {
				t.Errorf("PackTag(%d, %d) round trip = (%d, %d), want (%d, %d)",
					wireType, fieldNumber, gotNumber, gotWire, fieldNumber, wireType)
			}
		}
	}
}

func TestCleanDocTotal(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"/**\n * Hello\n * World\n */", "Hello\nWorld"},
		{"uses <tt>code</tt> here", "uses <code>code</code> here"},
		{"a < b && c > d", "a &lt; b &amp;&amp; c &gt; d"},
	} {
		if got := CleanDoc(test.input); got != test.want {
			t.Errorf("CleanDoc(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
