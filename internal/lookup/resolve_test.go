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

package lookup

import (
	"context"
	"testing"

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

func TestFacadePackageSuffixes(t *testing.T) {
	files := []SourceFile{{Path: "a.proto", Contents: `
syntax = "proto3";
package demo;
option java_package = "ex.demo";
message Greeting { int32 id = 1; }
`}}
	tables, err := Scan(context.Background(), files)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	f := NewFacade(tables, "a.proto")

	cases := []struct {
		kind field.ArtifactKind
		want string
	}{
		{field.ArtifactModel, "ex.demo"},
		{field.ArtifactSchema, "ex.demo.schema"},
		{field.ArtifactCodec, "ex.demo.codec"},
		{field.ArtifactJSONCodec, "ex.demo.codec"},
		{field.ArtifactTest, "ex.demo.tests"},
	}
	for _, c := range cases {
		if got := f.Package(".demo.Greeting", c.kind); got != c.want {
			t.Errorf("Package(%v) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestResolveNestedNameCollision(t *testing.T) {
	// Two distinct nested messages share a short name in different outer
	// types; per the redesign flag (§9) this must not collide.
	files := []SourceFile{{Path: "a.proto", Contents: `
syntax = "proto3";
package demo;
option java_package = "ex.demo";
message Outer1 {
  message Inner { int32 v = 1; }
}
message Outer2 {
  message Inner { string v = 1; }
}
`}}
	tables, err := Scan(context.Background(), files)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	f := NewFacade(tables, "a.proto")

	got1, err := f.Resolve(".demo.Outer1", "Inner")
	if err != nil {
		t.Fatalf("Resolve from Outer1: %v", err)
	}
	if got1 != ".demo.Outer1.Inner" {
		t.Errorf("Resolve from Outer1 = %q, want .demo.Outer1.Inner", got1)
	}

	got2, err := f.Resolve(".demo.Outer2", "Inner")
	if err != nil {
		t.Fatalf("Resolve from Outer2: %v", err)
	}
	if got2 != ".demo.Outer2.Inner" {
		t.Errorf("Resolve from Outer2 = %q, want .demo.Outer2.Inner", got2)
	}
}

func TestResolveUnresolvedType(t *testing.T) {
	files := []SourceFile{{Path: "a.proto", Contents: `
syntax = "proto3";
package demo;
option java_package = "ex.demo";
message M { int32 id = 1; }
`}}
	tables, err := Scan(context.Background(), files)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	f := NewFacade(tables, "a.proto")
	if _, err := f.Resolve(".demo.M", "Nonexistent"); err == nil {
		t.Fatal("expected ErrUnresolvedType, got nil")
	} else if _, ok := err.(*ErrUnresolvedType); !ok {
		t.Fatalf("err = %T, want *ErrUnresolvedType", err)
	}
}

func TestUnqualifiedClassFromNestedCompleteClass(t *testing.T) {
	files := []SourceFile{{Path: "a.proto", Contents: `
syntax = "proto3";
package demo;
option java_package = "ex.demo";
message Outer {
  message Inner { int32 v = 1; }
}
`}}
	tables, err := Scan(context.Background(), files)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	f := NewFacade(tables, "a.proto")
	if got := f.CompleteClass(".demo.Outer.Inner"); got != "Outer.Inner" {
		t.Errorf("CompleteClass = %q, want Outer.Inner", got)
	}
	if got := f.UnqualifiedClass(".demo.Outer.Inner"); got != "Inner" {
		t.Errorf("UnqualifiedClass = %q, want Inner", got)
	}
}
