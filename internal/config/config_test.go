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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("mismatched config (-want, +got):\n%s", diff)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	contents := `
[general]
module = "example.com/gen"
out_dir = "build/gen"

[packages]
schema_suffix = ".desc"

[limits]
max_message_size = 1024
`
	path := filepath.Join(t.TempDir(), ".pbjc.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		General: GeneralConfig{Module: "example.com/gen", OutDir: "build/gen"},
		Packages: PackagesConfig{SchemaSuffix: ".desc"},
		Limits:   LimitsConfig{MaxMessageSize: 1024},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched config (-want, +got):\n%s", diff)
	}
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pbjc.toml")
	if err := os.WriteFile(path, []byte(`[general]
module = "example.com/gen"
`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.General.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want default %q", got.General.OutDir, DefaultOutDir)
	}
	if got.Limits.MaxMessageSize != DefaultMaxMessageSize {
		t.Errorf("MaxMessageSize = %d, want default %d", got.Limits.MaxMessageSize, DefaultMaxMessageSize)
	}
}

func TestValidateRequiresModule(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a missing general.module, got nil")
	}
	cfg.General.Module = "example.com/gen"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error once module is set: %v", err)
	}
}

func TestValidateRejectsNegativeMaxMessageSize(t *testing.T) {
	cfg := Default()
	cfg.General.Module = "example.com/gen"
	cfg.Limits.MaxMessageSize = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a negative limits.max_message_size, got nil")
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pbjc.toml")
	if err := WriteDefault(path, "example.com/gen"); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.General.Module != "example.com/gen" {
		t.Errorf("Module = %q, want %q", got.General.Module, "example.com/gen")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
