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

import "fmt"

// ErrNotComparable is returned by ValidateComparable when a comparable
// message's compareTo would need
// to recurse into a message field whose referenced type has no comparable
// field list of its own.
type ErrNotComparable struct {
	Message string
	Field   string
	Target  string
}

func (e *ErrNotComparable) Error() string {
	return fmt.Sprintf("%s.%s: referenced message %s is not comparable", e.Message, e.Field, e.Target)
}

// ErrRepeatedNotOrderable is returned when compareTo ordering is requested
// for a repeated field; repeated fields support equality, not ordering.
type ErrRepeatedNotOrderable struct {
	Message string
	Field   string
}

func (e *ErrRepeatedNotOrderable) Error() string {
	return fmt.Sprintf("%s.%s: repeated fields do not support ordering in compareTo", e.Message, e.Field)
}

// CompareKind identifies which comparator a field's Kind requires in
// generated compareTo-style code.
type CompareKind int

const (
	CompareNative   CompareKind = iota // ==, <, > work directly
	CompareUnsigned                    // unsigned-aware comparator required
	CompareIEEE754                     // bitwise-consistent float/double comparator (NaN-stable)
	CompareContent                     // byte/string content + lexicographic order
	CompareRecurse                     // recursive call into the nested type's compareTo
)

// CompareKindFor returns the comparator family required for a field's Kind,
// per §4.2. Repeated fields and OneOf/Map variants are handled by the caller
// (ErrRepeatedNotOrderable for repeated; OneOf/Map have no defined ordering).
func CompareKindFor(k Kind) CompareKind {
	switch k {
	case KindFloat, KindDouble:
		return CompareIEEE754
	case KindString, KindBytes:
		return CompareContent
	case KindMessage:
		return CompareRecurse
	default:
		if k.IsUnsigned() {
			return CompareUnsigned
		}
		return CompareNative
	}
}

// ValidateComparable checks a single comparable field against the invariant
// in §4.3 step 4 and §4.2: the field must exist (caller's responsibility to
// look it up), must not be repeated, and if it is a message field its
// referenced type must itself be comparable.
//
// isComparable reports whether the fq-name of a message type is itself
// comparable; it is supplied by the lookup engine's symbol tables.
func ValidateComparable(messageName string, f *Field, isComparable func(fqName string) bool) error {
	if f.Variant == VariantSingle && f.Repeated {
		return &ErrRepeatedNotOrderable{Message: messageName, Field: f.Name}
	}
	if f.Variant == VariantMap {
		return &ErrRepeatedNotOrderable{Message: messageName, Field: f.Name}
	}
	if f.Variant == VariantSingle && f.Kind == KindMessage && !f.IsOptionalWrapper() {
		if !isComparable(f.MessageTypeName) {
			return &ErrNotComparable{Message: messageName, Field: f.Name, Target: f.MessageTypeName}
		}
	}
	return nil
}
