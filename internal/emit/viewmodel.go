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

package emit

import (
	"fmt"
	"strings"

	"github.com/hiero-ledger/pbjc-go/internal/field"
	"github.com/hiero-ledger/pbjc-go/internal/lookup"
	"github.com/hiero-ledger/pbjc-go/internal/model"
)

// FieldView is the per-field data handed to every mustache template. It
// plays the role the teacher's fieldType/messageName helpers
// (internal/golang/golang.go) play for RPC client generation: a
// template-ready projection of the core Field type, computed once per
// emission rather than re-derived inside every template.
type FieldView struct {
	ProtoName      string // the wire/declaration name, e.g. "account_id"
	GoName         string // exported accessor/struct-field name, e.g. "AccountId"
	LowerName      string // unexported local-variable name, e.g. "accountId"
	GoType         string // storage type, e.g. "int32", "[]byte", "*Greeting"
	JSONName       string // lowerCamelCase, per §6.3 JSON codec rule
	FieldNumber    int
	WireType       int
	Repeated       bool
	IsMap          bool
	IsMessage      bool
	IsEnum         bool
	IsString       bool
	IsBytes        bool
	IsOneOf        bool
	OneOfName      string
	CannotBeNil    bool
	DefaultLiteral string
	Comment        string
	OwnerGoName    string // the enclosing message's GoName, for templates with no parent-context lookup

	Kind       field.Kind // the raw, non-wrapper-unwrapped Kind; used by codec generation
	IsWrapper  bool
	WrapperKind field.Kind // valid iff IsWrapper: the scalar Kind the wrapper carries on the wire

	// EncodeStmt/DecodeStmt/SizeExpr are pre-rendered Go source, computed
	// once in Go (rather than re-derived by the template engine) because
	// wire-format dispatch needs a full switch over Kind that mustache's
	// section-only conditionals cannot express cleanly. The codec template
	// splices them in verbatim via triple-mustache.
	EncodeStmt string
	DecodeStmt string
	SizeExpr   string

	// JSONEncodeExpr/JSONDecodeCase mirror EncodeStmt/DecodeStmt for the
	// JSON codec emitter (codecgen.go's jsoncodec.go sibling): Go source
	// computed once per field, spliced into the JSON template verbatim.
	JSONEncodeExpr string
	JSONDecodeCase string

	// EqualExpr/HashStmt/CompareStmt mirror the same idea for the model
	// emitter's generated Equal/Hash/Compare methods (modelgen.go).
	EqualExpr   string
	HashStmt    string
	CompareStmt string

	MapKey   *FieldView
	MapValue *FieldView
}

// MessageView is the per-message data handed to every mustache template.
type MessageView struct {
	GoName     string
	Package    string
	SchemaPkg  string
	CodecPkg   string
	TestPkg    string
	Comment    string
	Fields     []FieldView // declaration order, for readable generated code
	WireFields []FieldView // ascending field-number order, for wire emission
	Comparable []string

	// ComparableFields mirrors Comparable, but already resolved to the
	// matching FieldView in declared priority order, so the model template
	// never needs to look a name up itself.
	ComparableFields []FieldView
	HasComparable    bool

	// SchemaDescriptors/GetFieldStmt feed the schema emitter (schemagen.go).
	SchemaDescriptors []FieldDescriptorView
	GetFieldStmt      string

	// TestCases feeds the test emitter (testgen.go); ModelImportAlias and
	// CodecImportAlias are the names the generated test file binds this
	// message's own model and codec packages to, since the test package
	// (§6.2's ".tests" suffix) always differs from both.
	ModelImportAlias string
	CodecImportAlias string
	TestCases        []TestCaseView

	// MaxSize feeds the codec emitter's Default<Msg>MaxSize constant (§6.4's
	// per-field default message size ceiling, overridable per Unmarshal
	// call): the configured internal/field.MaxMessageSize() at the time this
	// message was emitted.
	MaxSize int
}

// goTypeForField maps a Field's Kind to the Go storage type used in the
// generated model (design note §9: wrapper messages become nullable
// primitives, never imported message types).
func goTypeForField(f *field.Field, facade *lookup.Facade) string {
	switch {
	case f.IsOptionalWrapper():
		return "*" + scalarGoType(field.WrapperMessageKinds[f.MessageTypeName])
	case f.Kind == field.KindMessage:
		return "*" + facade.UnqualifiedClass(f.MessageTypeName)
	case f.Kind == field.KindEnum:
		return "int32"
	default:
		return scalarGoType(f.Kind)
	}
}

func scalarGoType(k field.Kind) string {
	switch k {
	case field.KindDouble:
		return "float64"
	case field.KindFloat:
		return "float32"
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return "int64"
	case field.KindUInt64, field.KindFixed64:
		return "uint64"
	case field.KindInt32, field.KindSInt32, field.KindSFixed32:
		return "int32"
	case field.KindUInt32, field.KindFixed32:
		return "uint32"
	case field.KindBool:
		return "bool"
	case field.KindString:
		return "string"
	case field.KindBytes:
		return "[]byte"
	default:
		return "int32"
	}
}

// buildFieldView projects a Single (or synthetic map key/value) Field into
// its template-ready view.
func buildFieldView(f *field.Field, facade *lookup.Facade) FieldView {
	base := scalarOrMessageGoType(f, facade)
	goType := base
	if f.Repeated {
		goType = "[]" + base
	}

	v := FieldView{
		ProtoName:   f.Name,
		GoName:      f.PascalName(),
		LowerName:   f.CamelName(),
		GoType:      goType,
		JSONName:    f.CamelName(),
		FieldNumber: f.FieldNumber,
		WireType:    f.WireType(),
		Repeated:    f.Repeated,
		IsMessage:   f.Kind == field.KindMessage && !f.IsOptionalWrapper(),
		IsEnum:      f.Kind == field.KindEnum,
		IsString:    f.Kind == field.KindString,
		IsBytes:     f.Kind == field.KindBytes,
		CannotBeNil: f.CannotBeNull(),
		Comment:     f.DocComment,
		Kind:        f.Kind,
		IsWrapper:   f.IsOptionalWrapper(),
	}
	if v.IsWrapper {
		v.WrapperKind = field.WrapperMessageKinds[f.MessageTypeName]
	}
	v.DefaultLiteral = defaultLiteral(v.GoType, v.CannotBeNil)
	finalizeCodec(&v)
	finalizeJSON(&v)
	finalizeModel(&v)
	return v
}

func scalarOrMessageGoType(f *field.Field, facade *lookup.Facade) string {
	return goTypeForField(f, facade)
}

// defaultLiteral renders the zero-value expression a field's storage takes
// when absent, standing in for the original DEFAULT singleton (§4.2): every
// pointer-shaped Go type (message, oneof child, wrapper) is simply nil,
// strings/bools use their Go zero literal, repeated/map fields that must
// never surface as nil get an explicit empty composite literal, and every
// remaining numeric Kind gets its typed zero conversion (e.g. int32(0)).
func defaultLiteral(goType string, cannotBeNil bool) string {
	switch {
	case strings.HasPrefix(goType, "*"):
		return "nil"
	case goType == "string":
		return `""`
	case goType == "bool":
		return "false"
	case strings.HasPrefix(goType, "[]"):
		if cannotBeNil {
			return goType + "{}"
		}
		return "nil"
	case strings.HasPrefix(goType, "map["):
		return goType + "{}"
	default:
		return goType + "(0)"
	}
}

// BuildFieldView exposes buildFieldView for variant-aware callers (map
// key/value synthetics, oneof children) that need a bare Single's view
// without going through BuildMessageView.
func BuildFieldView(f *field.Field, facade *lookup.Facade) FieldView {
	switch f.Variant {
	case field.VariantMap:
		key := buildFieldView(f.KeyField, facade)
		value := buildFieldView(f.ValueField, facade)
		goType := fmt.Sprintf("map[%s]%s", key.GoType, value.GoType)
		v := FieldView{
			ProtoName:      f.Name,
			GoName:         f.PascalName(),
			LowerName:      f.CamelName(),
			GoType:         goType,
			JSONName:       f.CamelName(),
			FieldNumber:    f.FieldNumber,
			WireType:       f.WireType(),
			IsMap:          true,
			CannotBeNil:    true,
			DefaultLiteral: defaultLiteral(goType, true),
			MapKey:         &key,
			MapValue:       &value,
		}
		finalizeCodec(&v)
		finalizeJSON(&v)
		finalizeModel(&v)
		return v
	default:
		return buildFieldView(f, facade)
	}
}

// BuildMessageView projects a scanned model.Message into the view every
// emitter template renders against.
func BuildMessageView(m *model.Message, facade *lookup.Facade) MessageView {
	mv := MessageView{
		GoName:     facade.UnqualifiedClass(m.FQName),
		Package:    facade.Package(m.FQName, field.ArtifactModel),
		SchemaPkg:  facade.Package(m.FQName, field.ArtifactSchema),
		CodecPkg:   facade.Package(m.FQName, field.ArtifactCodec),
		TestPkg:    facade.Package(m.FQName, field.ArtifactTest),
		Comment:    m.DocComment,
		Comparable: facade.Comparable(m.FQName),
	}
	byNumber := map[int]FieldView{}
	byProtoName := map[string]FieldView{}
	for _, f := range m.Fields {
		if f.Variant == field.VariantOneOf {
			for _, child := range f.OneOfFields {
				cv := BuildFieldView(child, facade)
				// A oneof child is unset (not merely zero-valued) when its
				// sibling was chosen instead, so its storage is always a
				// pointer even for scalar kinds: nil means "not this
				// variant", matching the UNSET case from spec §8 scenario 2.
				cv.IsOneOf = true
				cv.OneOfName = f.PascalName()
				cv.OwnerGoName = mv.GoName
				if cv.GoType[0] != '*' && !cv.IsMessage {
					cv.GoType = "*" + cv.GoType
					cv.DefaultLiteral = "nil"
				}
				finalizeCodec(&cv)
				finalizeJSON(&cv)
				finalizeModel(&cv)
				mv.Fields = append(mv.Fields, cv)
				byNumber[cv.FieldNumber] = cv
				byProtoName[cv.ProtoName] = cv
			}
			continue
		}
		fv := BuildFieldView(f, facade)
		fv.OwnerGoName = mv.GoName
		mv.Fields = append(mv.Fields, fv)
		byNumber[fv.FieldNumber] = fv
		byProtoName[fv.ProtoName] = fv
	}
	for _, f := range m.ByFieldNumberAscending() {
		mv.WireFields = append(mv.WireFields, byNumber[f.FieldNumber])
	}
	for _, name := range mv.Comparable {
		if fv, ok := byProtoName[name]; ok {
			mv.ComparableFields = append(mv.ComparableFields, fv)
		}
	}
	mv.HasComparable = len(mv.ComparableFields) > 0
	mv.SchemaDescriptors = BuildSchemaDescriptors(mv.Fields)
	mv.GetFieldStmt = BuildGetFieldStmt(mv.SchemaDescriptors, mv.GoName+"Fields")
	mv.ModelImportAlias = "model"
	mv.CodecImportAlias = "codec"
	mv.TestCases = BuildTestCases(mv, mv.ModelImportAlias, DefaultMaxTestCases)
	mv.MaxSize = field.MaxMessageSize()
	return mv
}
