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

// Package lookup is the symbol/package resolution engine (stage C of the
// design): a two-pass scan of all input files that builds the symbol tables
// described in §3.3, plus the contextual facade (stage D) that emitters use
// to query them without threading the active file everywhere.
package lookup

import "fmt"

// CompileError is the common shape of every fatal error in the taxonomy
// (§7): each is attributed to a file and a named element.
type CompileError interface {
	error
	File() string
	Element() string
}

type baseError struct {
	file    string
	element string
	detail  string
}

func (e *baseError) File() string    { return e.file }
func (e *baseError) Element() string { return e.element }
func (e *baseError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.file, e.element, e.detail)
}

// ErrMissingPackage: a .proto has neither pbj.java_package, nor a reference
// java_package, nor a package declaration.
type ErrMissingPackage struct{ baseError }

func NewErrMissingPackage(file string) *ErrMissingPackage {
	return &ErrMissingPackage{baseError{file, "<file>", "no pbj.java_package, java_package option, or package declaration"}}
}

// ErrUnresolvedImport: an import path matched zero or multiple known files.
type ErrUnresolvedImport struct {
	baseError
	ImportPath string
	Matches    int
}

func NewErrUnresolvedImport(file, importPath string, matches int) *ErrUnresolvedImport {
	detail := fmt.Sprintf("import %q matched %d files, expected exactly 1", importPath, matches)
	return &ErrUnresolvedImport{baseError{file, importPath, detail}, importPath, matches}
}

// ErrUnresolvedType: a type reference could not be resolved through
// local-nested -> outer-message -> package -> imports -> google-builtin.
type ErrUnresolvedType struct {
	baseError
	Reference     string
	ImportedFiles []string
}

func NewErrUnresolvedType(file, reference string, imports []string) *ErrUnresolvedType {
	detail := fmt.Sprintf("cannot resolve type reference %q (searched file and imports %v)", reference, imports)
	return &ErrUnresolvedType{baseError{file, reference, detail}, reference, imports}
}

// ErrInvalidComparable: pbj.comparable lists a field that does not exist, or
// a repeated field, or a message field whose type is not itself comparable.
type ErrInvalidComparable struct{ baseError }

func NewErrInvalidComparable(file, message, reason string) *ErrInvalidComparable {
	return &ErrInvalidComparable{baseError{file, message, reason}}
}

// ErrInvalidOption: an unrecognized or malformed option on a field/oneof.
type ErrInvalidOption struct{ baseError }

func NewErrInvalidOption(file, element, reason string) *ErrInvalidOption {
	return &ErrInvalidOption{baseError{file, element, reason}}
}
