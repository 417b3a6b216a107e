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

// finalizeModel fills in a FieldView's EqualExpr/HashStmt/CompareStmt, the
// statements the model emitter's generated Equal/Hash/Compare methods
// splice in verbatim (§4.2, §4.6 model emitter). Equal/Hash methods use
// receiver names a/b and m respectively; every generated statement below
// assumes those names, matching codecgen.go's assumption that the codec
// functions name their message parameter m.
func finalizeModel(v *FieldView) {
	switch {
	case v.IsMap:
		v.EqualExpr = mapEqualStmt(v)
		v.HashStmt = mapHashStmt(v)
		v.CompareStmt = "" // maps are never comparable (validated at scan time)
	case v.Repeated:
		v.EqualExpr = repeatedEqualStmt(v)
		v.HashStmt = repeatedHashStmt(v)
		v.CompareStmt = "" // repeated fields are never comparable (validated at scan time)
	case v.IsOneOf:
		v.EqualExpr = pointerEqualStmt(v, "a."+v.GoName, "b."+v.GoName)
		v.HashStmt = pointerHashStmt(v, "m."+v.GoName)
		v.CompareStmt = pointerCompareStmt(v, "a."+v.GoName, "b."+v.GoName)
	case v.IsMessage:
		v.EqualExpr = messageEqualStmt("a."+v.GoName, "b."+v.GoName)
		v.HashStmt = messageHashStmt("m." + v.GoName)
		v.CompareStmt = messageCompareStmt("a."+v.GoName, "b."+v.GoName)
	case v.IsWrapper:
		v.EqualExpr = pointerEqualStmt(v, "a."+v.GoName, "b."+v.GoName)
		v.HashStmt = pointerHashStmt(v, "m."+v.GoName)
		v.CompareStmt = pointerCompareStmt(v, "a."+v.GoName, "b."+v.GoName)
	default:
		v.EqualExpr = singularEqualStmt(v.Kind, "a."+v.GoName, "b."+v.GoName)
		v.HashStmt = fmt.Sprintf("h = %s\n", wrapCombine(hashExprForKind(v.Kind, "m."+v.GoName)))
		v.CompareStmt = singularCompareStmt(v.Kind, "a."+v.GoName, "b."+v.GoName)
	}
}

func wrapCombine(expr string) string { return fmt.Sprintf("wire.CombineHash(h, %s)", expr) }

// hashExprForKind returns an int32-valued Go expression for one scalar
// value's hash contribution.
func hashExprForKind(k field.Kind, access string) string {
	switch k {
	case field.KindBool:
		return fmt.Sprintf("wire.HashBool(%s)", access)
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return fmt.Sprintf("wire.HashInt64(int64(%s))", access)
	case field.KindUInt64, field.KindFixed64:
		return fmt.Sprintf("wire.HashUint64(uint64(%s))", access)
	case field.KindFloat:
		return fmt.Sprintf("wire.HashFloat32(%s)", access)
	case field.KindDouble:
		return fmt.Sprintf("wire.HashFloat64(%s)", access)
	case field.KindString:
		return fmt.Sprintf("wire.HashString(%s)", access)
	case field.KindBytes:
		return fmt.Sprintf("wire.HashBytes(%s)", access)
	default:
		return fmt.Sprintf("int32(%s)", access)
	}
}

// compareExprForKind returns an int-valued three-way comparator expression
// for a scalar Kind, per the comparator family in §4.2.
func compareExprForKind(k field.Kind, a, b string) string {
	switch field.CompareKindFor(k) {
	case field.CompareUnsigned:
		return fmt.Sprintf("wire.CompareUint64(uint64(%s), uint64(%s))", a, b)
	case field.CompareIEEE754:
		if k == field.KindFloat {
			return fmt.Sprintf("wire.CompareFloat32(%s, %s)", a, b)
		}
		return fmt.Sprintf("wire.CompareFloat64(%s, %s)", a, b)
	case field.CompareContent:
		if k == field.KindBytes {
			return fmt.Sprintf("bytes.Compare(%s, %s)", a, b)
		}
		return fmt.Sprintf("strings.Compare(%s, %s)", a, b)
	default:
		if k == field.KindBool {
			return fmt.Sprintf("wire.CompareBool(%s, %s)", a, b)
		}
		return fmt.Sprintf("wire.CompareInt64(int64(%s), int64(%s))", a, b)
	}
}

func singularEqualStmt(k field.Kind, a, b string) string {
	switch k {
	case field.KindBytes:
		return fmt.Sprintf("if !bytes.Equal(%s, %s) {\n\treturn false\n}\n", a, b)
	default:
		return fmt.Sprintf("if %s != %s {\n\treturn false\n}\n", a, b)
	}
}

func singularCompareStmt(k field.Kind, a, b string) string {
	return fmt.Sprintf("if c := %s; c != 0 {\n\treturn c\n}\n", compareExprForKind(k, a, b))
}

func messageEqualStmt(a, b string) string {
	return fmt.Sprintf("if (%s == nil) != (%s == nil) {\n\treturn false\n}\nif %s != nil && !%s.Equal(%s) {\n\treturn false\n}\n", a, b, a, a, b)
}

func messageHashStmt(access string) string {
	return fmt.Sprintf("if %s != nil {\n\th = wire.CombineHash(h, %s.Hash())\n} else {\n\th = wire.CombineHash(h, 0)\n}\n", access, access)
}

func messageCompareStmt(a, b string) string {
	return fmt.Sprintf("if %s != nil && %s != nil {\n\tif c := %s.Compare(%s); c != 0 {\n\t\treturn c\n\t}\n} else if (%s == nil) != (%s == nil) {\n\tif %s == nil {\n\t\treturn -1\n\t}\n\treturn 1\n}\n", a, b, a, b, a, b, a)
}

// pointerEqualStmt handles a oneof child or a google-wrapper field: always
// pointer-typed, nil meaning unset (§8 scenario 2's UNSET case).
func pointerEqualStmt(v *FieldView, a, b string) string {
	if v.IsMessage {
		return messageEqualStmt(a, b)
	}
	kind := v.Kind
	if v.IsWrapper {
		kind = v.WrapperKind
	}
	derefEq := singularEqualStmt(kind, "*"+a, "*"+b)
	derefEq = strings.ReplaceAll(derefEq, "return false", "return false")
	return fmt.Sprintf("if (%s == nil) != (%s == nil) {\n\treturn false\n}\nif %s != nil {\n%s}\n", a, b, a, indent(derefEq))
}

func pointerHashStmt(v *FieldView, access string) string {
	if v.IsMessage {
		return messageHashStmt(access)
	}
	kind := v.Kind
	if v.IsWrapper {
		kind = v.WrapperKind
	}
	return fmt.Sprintf("if %s != nil {\n\th = %s\n} else {\n\th = wire.CombineHash(h, 0)\n}\n", access, wrapCombine(hashExprForKind(kind, "*"+access)))
}

func pointerCompareStmt(v *FieldView, a, b string) string {
	if v.IsMessage {
		return messageCompareStmt(a, b)
	}
	kind := v.Kind
	if v.IsWrapper {
		kind = v.WrapperKind
	}
	return fmt.Sprintf("if %s != nil && %s != nil {\n%s} else if (%s == nil) != (%s == nil) {\n\tif %s == nil {\n\t\treturn -1\n\t}\n\treturn 1\n}\n",
		a, b, indent(singularCompareStmt(kind, "*"+a, "*"+b)), a, b, a)
}

func repeatedEqualStmt(v *FieldView) string {
	a, b := "a."+v.GoName, "b."+v.GoName
	var elem string
	switch {
	case v.IsMessage:
		elem = fmt.Sprintf("if !%s[i].Equal(%s[i]) {\n\treturn false\n}\n", a, b)
	case v.Kind == field.KindBytes:
		elem = fmt.Sprintf("if !bytes.Equal(%s[i], %s[i]) {\n\treturn false\n}\n", a, b)
	default:
		elem = fmt.Sprintf("if %s[i] != %s[i] {\n\treturn false\n}\n", a, b)
	}
	return fmt.Sprintf("if len(%s) != len(%s) {\n\treturn false\n}\nfor i := range %s {\n%s}\n", a, b, a, indent(elem))
}

func repeatedHashStmt(v *FieldView) string {
	access := "m." + v.GoName
	var elemHash string
	if v.IsMessage {
		elemHash = "e.Hash()"
	} else {
		elemHash = hashExprForKind(v.Kind, "e")
	}
	return fmt.Sprintf("h = wire.CombineHash(h, int32(len(%s)))\nfor _, e := range %s {\n\th = %s\n}\n",
		access, access, wrapCombine(elemHash))
}

func mapEqualStmt(v *FieldView) string {
	a, b := "a."+v.GoName, "b."+v.GoName
	var valEq string
	switch {
	case v.MapValue.IsMessage:
		valEq = fmt.Sprintf("if !av.Equal(bv) {\n\treturn false\n}\n")
	case v.MapValue.Kind == field.KindBytes:
		valEq = "if !bytes.Equal(av, bv) {\n\treturn false\n}\n"
	default:
		valEq = "if av != bv {\n\treturn false\n}\n"
	}
	return fmt.Sprintf(
		"if len(%s) != len(%s) {\n\treturn false\n}\nfor k, av := range %s {\n\tbv, ok := %s[k]\n\tif !ok {\n\t\treturn false\n\t}\n%s}\n",
		a, b, a, b, indent(valEq))
}

func mapHashStmt(v *FieldView) string {
	access := "m." + v.GoName
	var valHash string
	if v.MapValue.IsMessage {
		valHash = "v.Hash()"
	} else {
		valHash = hashExprForKind(v.MapValue.Kind, "v")
	}
	keyHash := hashExprForKind(v.MapKey.Kind, "k")
	return fmt.Sprintf(
		"var mh int32\nfor k, v := range %s {\n\tmh ^= wire.CombineHash(%s, %s)\n}\nh = wire.CombineHash(h, mh)\n",
		access, keyHash, valHash)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "\t" + l
	}
	return strings.Join(lines, "\n") + "\n"
}
