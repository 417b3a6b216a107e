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
)

// TestCaseView is one row of the test emitter's round-trip table: a single
// composite literal constructing the message under test with every field
// set to one of its curated edge-case values.
type TestCaseView struct {
	Name    string
	Literal string
}

// DefaultMaxTestCases bounds the table generated per message (§4.6: "a
// cross-product that is capped to keep test time bounded"). Rather than the
// true cross-product of every field's candidate list (which grows
// multiplicatively and is unbounded for messages with many fields), each row
// cycles every field independently through its own candidate list
// (candidates[field][row % len(candidates[field])]); with DefaultMaxTestCases
// rows every field's every edge value is exercised at least once (as long as
// no single field has more candidates than this), while the table size stays
// linear in field count rather than exponential.
const DefaultMaxTestCases = 8

// BuildTestCases renders the test emitter's fixture table for one message.
// modelAlias is the import alias the generated test file binds the
// message's own model package to (conventionally "model"; see emit.go).
func BuildTestCases(mv MessageView, modelAlias string, maxCases int) []TestCaseView {
	if maxCases <= 0 {
		maxCases = DefaultMaxTestCases
	}
	candidates := make([][]string, len(mv.Fields))
	rows := 1
	for i, f := range mv.Fields {
		candidates[i] = edgeValuesForField(f, modelAlias)
		if len(candidates[i]) > rows {
			rows = len(candidates[i])
		}
	}
	if rows > maxCases {
		rows = maxCases
	}
	cases := make([]TestCaseView, 0, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		fmt.Fprintf(&b, "&%s.%s{", modelAlias, mv.GoName)
		for i, f := range mv.Fields {
			vals := candidates[i]
			lit := vals[row%len(vals)]
			fmt.Fprintf(&b, "%s: %s, ", f.GoName, lit)
		}
		b.WriteString("}")
		cases = append(cases, TestCaseView{Name: fmt.Sprintf("case_%d", row), Literal: b.String()})
	}
	return cases
}

// edgeValuesForField returns a small set of curated literal Go expressions
// (defaults, extremes, length boundaries) a field under test should take,
// per §4.6's "curated small set of edge-case values" requirement.
func edgeValuesForField(f FieldView, modelAlias string) []string {
	switch {
	case f.IsMap:
		return []string{f.GoType + "{}", fmt.Sprintf("%s{%s: %s}", f.GoType, mapKeyLiteral(f), mapValueLiteral(f, modelAlias))}
	case f.Repeated:
		elem := elemLiteral(f, modelAlias)
		return []string{"nil", f.GoType + "{}", fmt.Sprintf("%s{%s, %s}", f.GoType, elem, elem)}
	case f.IsMessage && !f.IsOneOf && !f.IsWrapper:
		inner := strings.TrimPrefix(f.GoType, "*")
		return []string{"nil", fmt.Sprintf("&%s.%s{}", modelAlias, inner)}
	case f.IsWrapper:
		return wrapperEdgeValues(f.WrapperKind)
	case f.IsOneOf:
		if f.IsMessage {
			inner := strings.TrimPrefix(f.GoType, "*")
			return []string{"nil", fmt.Sprintf("&%s.%s{}", modelAlias, inner)}
		}
		return wrapperEdgeValues(f.Kind)
	default:
		return scalarEdgeValues(f.Kind)
	}
}

func elemLiteral(f FieldView, modelAlias string) string {
	if f.IsMessage {
		inner := strings.TrimPrefix(f.GoType, "*")
		return fmt.Sprintf("&%s.%s{}", modelAlias, inner)
	}
	vals := scalarEdgeValues(f.Kind)
	return vals[len(vals)-1]
}

func mapKeyLiteral(f FieldView) string {
	vals := scalarEdgeValues(f.MapKey.Kind)
	return vals[0]
}

func mapValueLiteral(f FieldView, modelAlias string) string {
	if f.MapValue.IsMessage {
		inner := strings.TrimPrefix(f.MapValue.GoType, "*")
		return fmt.Sprintf("&%s.%s{}", modelAlias, inner)
	}
	vals := scalarEdgeValues(f.MapValue.Kind)
	return vals[len(vals)-1]
}

// wrapperEdgeValues renders pointer-valued edge cases (google wrapper
// fields and scalar oneof branches, both stored as *T with nil meaning
// unset): the test harness's generated ptrOf helper takes the address of a
// literal so it can appear inline in a composite literal.
func wrapperEdgeValues(k field.Kind) []string {
	var out []string
	for _, lit := range scalarEdgeValues(k) {
		out = append(out, fmt.Sprintf("ptrOf(%s)", lit))
	}
	return append([]string{"nil"}, out...)
}

func scalarEdgeValues(k field.Kind) []string {
	switch k {
	case field.KindInt32, field.KindSInt32, field.KindSFixed32:
		return []string{"int32(0)", "int32(1)", "int32(-1)", "int32(2147483647)", "int32(-2147483648)"}
	case field.KindUInt32, field.KindFixed32:
		return []string{"uint32(0)", "uint32(1)", "uint32(4294967295)"}
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return []string{"int64(0)", "int64(1)", "int64(-1)", "int64(9223372036854775807)", "int64(-9223372036854775808)"}
	case field.KindUInt64, field.KindFixed64:
		return []string{"uint64(0)", "uint64(1)", "uint64(18446744073709551615)"}
	case field.KindFloat:
		return []string{"float32(0)", "float32(1.5)", "float32(-1.5)"}
	case field.KindDouble:
		return []string{"float64(0)", "float64(1.5)", "float64(-1.5)"}
	case field.KindBool:
		return []string{"false", "true"}
	case field.KindString:
		return []string{`""`, `"a"`, `strings.Repeat("x", 256)`}
	case field.KindBytes:
		return []string{"nil", "[]byte{}", "[]byte{0x00, 0xFF}"}
	case field.KindEnum:
		return []string{"int32(0)", "int32(1)"}
	default:
		return []string{"int32(0)"}
	}
}
