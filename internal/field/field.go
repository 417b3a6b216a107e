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

import "github.com/hiero-ledger/pbjc-go/internal/pbname"

// Variant distinguishes the three shapes a Field can take, per §3.2: a plain
// scalar/message/enum field, a member of a one-of group, or a synthesized
// map field.
type Variant int

const (
	VariantSingle Variant = iota
	VariantOneOf
	VariantMap
)

// Field is the uniform representation consumed by every emitter. Rather
// than three Java classes (Single/OneOf/Map) implementing a shared
// interface, it is one Go struct carrying a Variant tag; callers branch on
// Variant the same way the kind.go Kind enum is branched on.
type Field struct {
	Variant Variant

	// Common to all variants.
	Name          string
	DocComment    string
	Deprecated    bool
	FieldNumber   int

	// Single-variant fields.
	Repeated        bool
	Kind            Kind
	MessageTypeName string // fq-name, set when Kind == KindMessage or KindEnum
	CompleteClass   string
	Packages        map[ArtifactKind]string
	Parent          *OneOf // non-nil if this Single is a child of a OneOf
	IsMapSynthetic  bool

	// OneOf-variant fields.
	ParentMessage string
	OneOfFields   []*Field // ordered list of child Single fields
	Comparable    bool

	// Map-variant fields.
	KeyField   *Field // synthetic Single, field number 1
	ValueField *Field // synthetic Single, field number 2
}

// OneOf is a named group of mutually-exclusive Single fields. Per invariant
// §3.5, every child's Parent points back to the same OneOf, children are
// stored in declaration order, and the OneOf's own FieldNumber equals the
// first child's (its own wire type is meaningless, so it is 0).
type OneOf struct {
	ParentMessage string
	Name          string
	DocComment    string
	Children      []*Field
	Deprecated    bool
	Comparable    bool
}

// ArtifactKind is one of the five generated-code families plus the
// reference-implementation package used only for test interop (§6.2,
// GLOSSARY).
type ArtifactKind int

const (
	ArtifactModel ArtifactKind = iota
	ArtifactSchema
	ArtifactCodec
	ArtifactJSONCodec
	ArtifactTest
	ArtifactReference
)

func (k ArtifactKind) String() string {
	switch k {
	case ArtifactModel:
		return "model"
	case ArtifactSchema:
		return "schema"
	case ArtifactCodec:
		return "codec"
	case ArtifactJSONCodec:
		return "json-codec"
	case ArtifactTest:
		return "test"
	case ArtifactReference:
		return "reference"
	default:
		return "unknown"
	}
}

// schemaSuffix/codecSuffix/testSuffix hold the package-suffix rule's default
// values; SetPackageSuffixes lets internal/config override them at startup
// from .pbjc.toml, before any Facade.Package call is made.
var (
	schemaSuffix = ".schema"
	codecSuffix  = ".codec"
	testSuffix   = ".tests"
)

// maxMessageSize holds the §6.4 per-field default message size ceiling
// (16 MiB unless internal/config overrides it from .pbjc.toml's
// [limits].max_message_size) baked into every generated codec's
// Default<Msg>MaxSize constant.
var maxMessageSize = 16 * 1024 * 1024

// SetMaxMessageSize overrides the default message size ceiling. n <= 0
// leaves the current value unchanged. Not safe to call concurrently with
// BuildMessageView; call once at startup, before any emission begins.
func SetMaxMessageSize(n int) {
	if n > 0 {
		maxMessageSize = n
	}
}

// MaxMessageSize returns the currently configured ceiling.
func MaxMessageSize() int { return maxMessageSize }

// SetPackageSuffixes overrides the §4.3 package-suffix rule's three
// suffixes. Empty arguments leave the corresponding default unchanged. Not
// safe to call concurrently with Facade.Package; call once at startup,
// before any scanning or emission begins.
func SetPackageSuffixes(schema, codec, test string) {
	if schema != "" {
		schemaSuffix = schema
	}
	if codec != "" {
		codecSuffix = codec
	}
	if test != "" {
		testSuffix = test
	}
}

// PackageSuffix returns the suffix appended to a message's base (model)
// package to compute the package used by artifacts of this kind, per §4.3's
// package-suffix rule.
func (k ArtifactKind) PackageSuffix() string {
	switch k {
	case ArtifactSchema:
		return schemaSuffix
	case ArtifactCodec, ArtifactJSONCodec:
		return codecSuffix
	case ArtifactTest:
		return testSuffix
	default:
		return ""
	}
}

// NewSingle builds a plain (non-oneof, non-map) field.
func NewSingle(name string, number int, kind Kind, repeated bool) *Field {
	return &Field{
		Variant:     VariantSingle,
		Name:        name,
		FieldNumber: number,
		Kind:        kind,
		Repeated:    repeated,
		Packages:    map[ArtifactKind]string{},
	}
}

// NewOneOf builds a OneOf field from its ordered children. The OneOf's field
// number is the first child's, as stated in §3.2.
func NewOneOf(parentMessage, name string, children []*Field) *Field {
	oneOf := &OneOf{ParentMessage: parentMessage, Name: name, Children: children}
	for _, c := range children {
		c.Parent = oneOf
	}
	number := 0
	if len(children) > 0 {
		number = children[0].FieldNumber
	}
	return &Field{
		Variant:       VariantOneOf,
		Name:          name,
		ParentMessage: parentMessage,
		FieldNumber:   number,
		OneOfFields:   children,
	}
}

// NewMap builds a Map field from synthetic key (field number 1) and value
// (field number 2) Singles, reusing scalar emitters on map entries as
// described in §3.2.
func NewMap(name string, number int, key, value *Field) *Field {
	key.IsMapSynthetic = true
	value.IsMapSynthetic = true
	key.FieldNumber = 1
	value.FieldNumber = 2
	return &Field{
		Variant:     VariantMap,
		Name:        name,
		FieldNumber: number,
		KeyField:    key,
		ValueField:  value,
	}
}

// IsOptionalWrapper reports whether this Single field is one of the nine
// google.protobuf.*Value wrapper messages, which are modeled as nullable
// primitives rather than imported message types (design note §9).
func (f *Field) IsOptionalWrapper() bool {
	if f.Variant != VariantSingle || f.Kind != KindMessage {
		return false
	}
	_, ok := WrapperMessageKinds[f.MessageTypeName]
	return ok
}

// CannotBeNull reports whether this field's model accessor never returns a
// null/nil value to callers: repeated fields, strings, bytes, and maps all
// return an empty collection/string rather than null.
func (f *Field) CannotBeNull() bool {
	switch f.Variant {
	case VariantMap:
		return true
	case VariantSingle:
		if f.Repeated {
			return true
		}
		return f.Kind == KindString || f.Kind == KindBytes
	default:
		return false
	}
}

// WireType returns the wire type used when this field's value is written.
func (f *Field) WireType() int {
	if f.Variant == VariantSingle {
		if f.IsOptionalWrapper() {
			return WrapperMessageKinds[f.MessageTypeName].WireType()
		}
		return f.Kind.WireType()
	}
	return pbname.WireLengthDelimited
}

// CamelName returns the field's camelCase accessor-friendly name.
func (f *Field) CamelName() string { return pbname.SnakeToCamel(f.Name, false) }

// PascalName returns the field's PascalCase (exported Go identifier) name.
func (f *Field) PascalName() string { return pbname.SnakeToCamel(f.Name, true) }
