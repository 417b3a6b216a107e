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
	"strings"

	"github.com/hiero-ledger/pbjc-go/internal/field"
	"github.com/hiero-ledger/pbjc-go/internal/model"
)

// Facade is the contextual view an emitter holds while walking one source
// file (§4.4): every method is relative to the file it was built for, the
// same role the teacher's internal/language.Codec interface plays for one
// target language. SymbolTables themselves stay file-agnostic; Facade is
// the thin, per-file wrapper the emitters actually talk to.
type Facade struct {
	tables *SymbolTables
	file   string
}

// NewFacade returns a Facade bound to one source file's resolution context.
func NewFacade(tables *SymbolTables, file string) *Facade {
	return &Facade{tables: tables, file: file}
}

// Resolve implements Phase 2 (§4.3 step, §7 unresolved-type): given the
// fq-name of the message doing the referencing (empty for file scope) and a
// type reference exactly as written in source (bare, partially-qualified,
// or fully-qualified with a leading dot), returns the unique fq-name it
// denotes.
//
// Resolution order, first match wins:
//  1. nested inside the referencing message (walking outward through each
//     enclosing message),
//  2. the referencing file's own package,
//  3. every file this one imports,
//  4. google.protobuf.* builtins.
//
// Fully-qualified references (leading ".") skip straight to a table lookup.
func (f *Facade) Resolve(contextFQName, ref string) (string, error) {
	if strings.HasPrefix(ref, ".") {
		if f.known(ref) {
			return ref, nil
		}
		return "", f.unresolved(ref, nil)
	}

	for ctx := contextFQName; ctx != ""; ctx = parentFQName(ctx) {
		candidate := ctx + "." + ref
		if f.known(candidate) {
			return candidate, nil
		}
	}

	if msg := f.tables.MessageByID[contextFQName]; msg != nil {
		candidate := "." + msg.Package + "." + ref
		if f.known(candidate) {
			return candidate, nil
		}
	}

	var importedFiles []string
	for imp := range f.tables.Imports[f.file] {
		importedFiles = append(importedFiles, imp)
		for sym := range f.tables.PerFileSymbols[imp] {
			if strings.HasSuffix(sym, "."+ref) || sym == "."+ref {
				return sym, nil
			}
		}
	}

	builtin := ".google.protobuf." + ref
	if f.known(builtin) {
		return builtin, nil
	}

	return "", NewErrUnresolvedType(f.file, ref, importedFiles)
}

func (f *Facade) known(fqName string) bool {
	if _, ok := f.tables.MessageByID[fqName]; ok {
		return true
	}
	if _, ok := f.tables.EnumByID[fqName]; ok {
		return true
	}
	if !IsGoogleBuiltin(fqName) {
		return false
	}
	name := strings.TrimPrefix(fqName, ".google.protobuf.")
	for _, src := range wellKnownProtos {
		if strings.Contains(src, "message "+name+" ") {
			return true
		}
	}
	return false
}

func (f *Facade) unresolved(ref string, imported []string) error {
	return NewErrUnresolvedType(f.file, ref, imported)
}

// Package returns the output package for fqName's artifact of the given
// kind: the model's base PBJ package plus the kind's suffix (§6.2's
// package-suffix rule).
func (f *Facade) Package(fqName string, kind field.ArtifactKind) string {
	return f.tables.PBJPackage[fqName] + kind.PackageSuffix()
}

// WirePackage returns the reference-implementation package for fqName, used
// by the generated test harness to interoperate with it.
func (f *Facade) WirePackage(fqName string) string {
	return f.tables.WirePackage[fqName]
}

// CompleteClass returns the dotted nested-class path for fqName within its
// file (e.g. "Outer.Inner").
func (f *Facade) CompleteClass(fqName string) string {
	return f.tables.CompleteClass[fqName]
}

// UnqualifiedClass returns just the final simple name component of
// CompleteClass, with no enclosing-type qualification.
func (f *Facade) UnqualifiedClass(fqName string) string {
	cc := f.tables.CompleteClass[fqName]
	if idx := strings.LastIndex(cc, "."); idx >= 0 {
		return cc[idx+1:]
	}
	return cc
}

// IsEnum reports whether fqName names a known enum.
func (f *Facade) IsEnum(fqName string) bool { return f.tables.IsEnum(fqName) }

// IsComparable reports whether fqName has a non-empty pbj.comparable list.
func (f *Facade) IsComparable(fqName string) bool { return f.tables.IsComparable(fqName) }

// Comparable returns the declared comparable-field-name priority list for
// fqName, or nil if it is not comparable.
func (f *Facade) Comparable(fqName string) []string { return f.tables.Comparable[fqName] }

// Message looks up a scanned message by fq-name.
func (f *Facade) Message(fqName string) (*model.Message, bool) {
	msg, ok := f.tables.MessageByID[fqName]
	return msg, ok
}

// Enum looks up a scanned enum by fq-name.
func (f *Facade) Enum(fqName string) (*model.Enum, bool) {
	enum, ok := f.tables.EnumByID[fqName]
	return enum, ok
}
