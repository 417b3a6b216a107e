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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testProto = `
syntax = "proto3";
package demo;

message Greeting {
  string message = 1;
  int32 count = 2;
}
`

func TestRunRequiresAtLeastOneInput(t *testing.T) {
	if err := run(nil, ".pbjc.toml", "", "example.com/gen", false); err == nil {
		t.Fatal("expected an error for zero .proto inputs, got nil")
	}
}

func TestRunEmitsArtifactsForEveryMessage(t *testing.T) {
	dir := t.TempDir()
	protoPath := filepath.Join(dir, "demo.proto")
	if err := os.WriteFile(protoPath, []byte(testProto), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "gen")

	if err := run([]string{protoPath}, filepath.Join(dir, ".pbjc.toml"), outDir, "example.com/gen", false); err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(outDir, "demo", "Greeting.go"),
		filepath.Join(outDir, "demo", "schema", "GreetingSchema.go"),
		filepath.Join(outDir, "demo", "codec", "GreetingCodec.go"),
		filepath.Join(outDir, "demo", "codec", "GreetingJSON.go"),
	}
	for _, p := range want {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected artifact at %s: %v", p, err)
		}
	}
}

func TestRunDumpSymbolsWritesJSON(t *testing.T) {
	dir := t.TempDir()
	protoPath := filepath.Join(dir, "demo.proto")
	if err := os.WriteFile(protoPath, []byte(testProto), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	runErr := run([]string{protoPath}, filepath.Join(dir, ".pbjc.toml"), "", "", true)
	w.Close()
	os.Stdout = old
	if runErr != nil {
		t.Fatal(runErr)
	}
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "demo.Greeting") {
		t.Errorf("expected dump to mention demo.Greeting, got:\n%s", buf.String())
	}
}
