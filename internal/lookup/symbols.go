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

import "github.com/hiero-ledger/pbjc-go/internal/model"

// SymbolTables holds the maps built once in Phase 1 and treated as
// immutable afterward (§3.3, §5 "Symbol tables are mutated only during
// Phase 1 scan; afterward they are read-only").
//
// Per the redesign flag in spec §9, PerFileSymbols is keyed on fq-name (a
// set membership, not a short-name lookup table) to avoid the original
// tool's bug where two nested messages sharing a short name in different
// outer types collide. Short-name resolution is instead handled by Resolve
// (resolve.go), which walks the enclosing-message chain explicitly.
type SymbolTables struct {
	// PBJPackage maps fq-name -> output package for the PBJ-generated model.
	PBJPackage map[string]string
	// WirePackage maps fq-name -> package of the reference protoc
	// implementation, needed when the generated test harness interoperates
	// with it.
	WirePackage map[string]string
	// CompleteClass maps fq-name -> dotted nested-class path within its file.
	CompleteClass map[string]string
	// PerFileSymbols maps source file path -> set of fq-names declared in
	// that file.
	PerFileSymbols map[string]map[string]bool
	// Imports maps source file path -> set of other source file paths it
	// imports (after resolution).
	Imports map[string]map[string]bool
	// Enums is the set of fq-names known to be enums.
	Enums map[string]bool
	// Comparable maps fq-name -> ordered list of field names declared
	// comparable.
	Comparable map[string][]string

	// MessageByID and EnumByID hold the actual scanned message/enum declarations,
	// keyed by fq-name, so Resolve and the emitters can fetch the node once
	// Phase 1 is done.
	MessageByID map[string]*model.Message
	EnumByID    map[string]*model.Enum
}

// NewSymbolTables allocates an empty SymbolTables ready for Phase 1
// scanning.
func NewSymbolTables() *SymbolTables {
	return &SymbolTables{
		PBJPackage:     map[string]string{},
		WirePackage:    map[string]string{},
		CompleteClass:  map[string]string{},
		PerFileSymbols: map[string]map[string]bool{},
		Imports:        map[string]map[string]bool{},
		Enums:          map[string]bool{},
		Comparable:     map[string][]string{},
		MessageByID:    map[string]*model.Message{},
		EnumByID:       map[string]*model.Enum{},
	}
}

// IsGoogleBuiltin reports whether fqName is one of the google.protobuf.*
// types, which are short-circuited during resolution per the invariant in
// §3.5: they are never inserted into any symbol map.
func IsGoogleBuiltin(fqName string) bool {
	const prefix = ".google.protobuf."
	return len(fqName) > len(prefix) && fqName[:len(prefix)] == prefix
}

func (t *SymbolTables) addToFile(file, fqName string) {
	set, ok := t.PerFileSymbols[file]
	if !ok {
		set = map[string]bool{}
		t.PerFileSymbols[file] = set
	}
	set[fqName] = true
}

// IsEnum reports whether fqName is a known enum.
func (t *SymbolTables) IsEnum(fqName string) bool { return t.Enums[fqName] }

// IsComparable reports whether fqName has a non-empty pbj.comparable list.
func (t *SymbolTables) IsComparable(fqName string) bool { return len(t.Comparable[fqName]) > 0 }
