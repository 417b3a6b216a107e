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

	"github.com/hiero-ledger/pbjc-go/internal/field"
)

// finalizeJSON fills in a FieldView's JSONEncodeExpr/JSONDecodeCase, the
// statements the JSON codec emitter's generated MarshalJSON/UnmarshalJSON
// methods splice in verbatim (§6.3): field names render in lowerCamelCase,
// 64-bit integer kinds render as JSON strings (so values beyond 2^53 survive
// round-tripping through JS-numeric JSON readers), raw bytes render as
// standard base64, enums render as their ordinal int32, and a field holding
// its default value is omitted from the object entirely, mirroring the
// binary codec's own "default means absent" rule (§4.2).
//
// JSONEncodeExpr is the statement block that appends one field's
// "name":value member to buf; for singular scalars it carries the
// default-valued-is-omitted check itself.
// JSONDecodeCase is the body of one `case "name":` arm in the generated
// UnmarshalJSON's switch over decoded object keys.
func finalizeJSON(v *FieldView) {
	switch {
	case v.IsMap:
		v.JSONEncodeExpr = jsonMapEncodeExpr(v)
		v.JSONDecodeCase = jsonMapDecodeCase(v)
	case v.Repeated:
		v.JSONEncodeExpr = jsonRepeatedEncodeExpr(v)
		v.JSONDecodeCase = jsonRepeatedDecodeCase(v)
	case v.IsOneOf, v.IsWrapper:
		kind := v.Kind
		if v.IsWrapper {
			kind = v.WrapperKind
		}
		v.JSONEncodeExpr = jsonPointerEncodeExpr(v, kind)
		v.JSONDecodeCase = jsonPointerDecodeCase(v, kind)
	case v.IsMessage:
		v.JSONEncodeExpr = jsonMessageEncodeExpr(v)
		v.JSONDecodeCase = jsonMessageDecodeCase(v)
	default:
		v.JSONEncodeExpr = jsonScalarEncodeExpr(v, v.Kind, "m."+v.GoName)
		v.JSONDecodeCase = jsonScalarDecodeCase(v, v.Kind)
	}
}

// jsonValueExpr renders the Go expression whose JSON text becomes the
// member's value, for one scalar Kind.
func jsonValueExpr(k field.Kind, access string) string {
	switch k {
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return fmt.Sprintf("strconv.FormatInt(int64(%s), 10)", access)
	case field.KindUInt64, field.KindFixed64:
		return fmt.Sprintf("strconv.FormatUint(uint64(%s), 10)", access)
	case field.KindString:
		return access
	case field.KindBytes:
		return fmt.Sprintf("base64.StdEncoding.EncodeToString(%s)", access)
	case field.KindBool:
		return fmt.Sprintf("strconv.FormatBool(%s)", access)
	case field.KindFloat:
		return fmt.Sprintf("strconv.FormatFloat(float64(%s), 'g', -1, 32)", access)
	case field.KindDouble:
		return fmt.Sprintf("strconv.FormatFloat(%s, 'g', -1, 64)", access)
	case field.KindEnum:
		return fmt.Sprintf("strconv.FormatInt(int64(%s), 10)", access)
	default:
		return fmt.Sprintf("strconv.FormatInt(int64(%s), 10)", access)
	}
}

// jsonIsQuoted reports whether a Kind's JSON representation is a quoted
// string (64-bit integers, strings, and base64 bytes) rather than a bare
// JSON literal.
func jsonIsQuoted(k field.Kind) bool {
	switch k {
	case field.KindInt64, field.KindSInt64, field.KindSFixed64,
		field.KindUInt64, field.KindFixed64,
		field.KindString, field.KindBytes:
		return true
	default:
		return false
	}
}

func jsonMember(name, valueExpr string, quoted bool) string {
	if quoted {
		return fmt.Sprintf("jsonrt.AppendString(buf, %q, %s)", name, valueExpr)
	}
	return fmt.Sprintf("jsonrt.AppendRaw(buf, %q, %s)", name, valueExpr)
}

func jsonScalarEncodeExpr(v *FieldView, k field.Kind, access string) string {
	member := jsonMember(v.JSONName, jsonValueExpr(k, access), jsonIsQuoted(k))
	cond := fmt.Sprintf("%s != %s", access, v.DefaultLiteral)
	if k == field.KindBytes {
		cond = fmt.Sprintf("len(%s) > 0", access)
	}
	return fmt.Sprintf("if %s {\n\tbuf = %s\n}\n", cond, member)
}

func jsonScalarDecodeCase(v *FieldView, k field.Kind) string {
	target := "&m." + v.GoName
	switch k {
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\nn, err := strconv.ParseInt(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = n\n", v.GoName)
	case field.KindUInt64, field.KindFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\nn, err := strconv.ParseUint(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = n\n", v.GoName)
	case field.KindBytes:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\nb, err := base64.StdEncoding.DecodeString(s)\nif err != nil {\n\treturn nil, err\n}\nm.%s = b\n", v.GoName)
	default:
		return fmt.Sprintf("if err := json.Unmarshal(raw, %s); err != nil {\n\treturn nil, err\n}\n", target)
	}
}

func jsonPointerEncodeExpr(v *FieldView, k field.Kind) string {
	access := "m." + v.GoName
	if v.IsMessage {
		return jsonMessageEncodeExpr(v)
	}
	member := jsonMember(v.JSONName, jsonValueExpr(k, "*"+access), jsonIsQuoted(k))
	return fmt.Sprintf("if %s != nil {\n\tbuf = %s\n}\n", access, member)
}

func jsonPointerDecodeCase(v *FieldView, k field.Kind) string {
	if v.IsMessage {
		return jsonMessageDecodeCase(v)
	}
	varName := v.LowerName + "Val"
	switch k {
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\n%s, err := strconv.ParseInt(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = &%s\n", varName, v.GoName, varName)
	case field.KindUInt64, field.KindFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\n%s, err := strconv.ParseUint(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = &%s\n", varName, v.GoName, varName)
	case field.KindBytes:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(raw, &s); err != nil {\n\treturn nil, err\n}\n%s, err := base64.StdEncoding.DecodeString(s)\nif err != nil {\n\treturn nil, err\n}\nm.%s = &%s\n", varName, v.GoName, varName)
	default:
		return fmt.Sprintf("var %s %s\nif err := json.Unmarshal(raw, &%s); err != nil {\n\treturn nil, err\n}\nm.%s = &%s\n", varName, scalarGoType(k), varName, v.GoName, varName)
	}
}

func jsonMessageEncodeExpr(v *FieldView) string {
	access := "m." + v.GoName
	return fmt.Sprintf(
		"if %s != nil {\n\tinner, err := MarshalJSON%s(%s)\n\tif err != nil {\n\t\treturn nil, err\n\t}\n\tbuf = jsonrt.AppendRaw(buf, %q, string(inner))\n}\n",
		access, goTypeForMessageField(v), access, v.JSONName)
}

func jsonMessageDecodeCase(v *FieldView) string {
	return fmt.Sprintf(
		"child, err := UnmarshalJSON%s(raw)\nif err != nil {\n\treturn nil, err\n}\nm.%s = child\n",
		goTypeForMessageField(v), v.GoName)
}

func goTypeForMessageField(v *FieldView) string {
	t := v.GoType
	if len(t) > 0 && t[0] == '*' {
		return t[1:]
	}
	return t
}

func jsonRepeatedEncodeExpr(v *FieldView) string {
	access := "m." + v.GoName
	var elem string
	if v.IsMessage {
		elem = fmt.Sprintf("inner, err := MarshalJSON%s(e)\nif err != nil {\n\treturn nil, err\n}\nitems = append(items, string(inner))\n", goTypeForMessageField(v))
	} else {
		elem = fmt.Sprintf("items = append(items, %s)\n", jsonElemLiteral(v.Kind, "e"))
	}
	return fmt.Sprintf(
		"if len(%s) > 0 {\n\titems := make([]string, 0, len(%s))\n\tfor _, e := range %s {\n%s\t}\n\tbuf = jsonrt.AppendRawArray(buf, %q, items)\n}\n",
		access, access, access, indent(elem), v.JSONName)
}

func jsonElemLiteral(k field.Kind, access string) string {
	if jsonIsQuoted(k) {
		return fmt.Sprintf("strconv.Quote(%s)", jsonValueExpr(k, access))
	}
	return jsonValueExpr(k, access)
}

func jsonRepeatedDecodeCase(v *FieldView) string {
	return fmt.Sprintf(
		"var items []json.RawMessage\nif err := json.Unmarshal(raw, &items); err != nil {\n\treturn nil, err\n}\nfor _, item := range items {\n%s}\n",
		indent(jsonRepeatedElemDecode(v)))
}

func jsonRepeatedElemDecode(v *FieldView) string {
	if v.IsMessage {
		return fmt.Sprintf("e, err := UnmarshalJSON%s(item)\nif err != nil {\n\treturn nil, err\n}\nm.%s = append(m.%s, e)\n",
			goTypeForMessageField(v), v.GoName, v.GoName)
	}
	switch v.Kind {
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(item, &s); err != nil {\n\treturn nil, err\n}\nn, err := strconv.ParseInt(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = append(m.%s, n)\n", v.GoName, v.GoName)
	case field.KindUInt64, field.KindFixed64:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(item, &s); err != nil {\n\treturn nil, err\n}\nn, err := strconv.ParseUint(s, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nm.%s = append(m.%s, n)\n", v.GoName, v.GoName)
	case field.KindBytes:
		return fmt.Sprintf("var s string\nif err := json.Unmarshal(item, &s); err != nil {\n\treturn nil, err\n}\nb, err := base64.StdEncoding.DecodeString(s)\nif err != nil {\n\treturn nil, err\n}\nm.%s = append(m.%s, b)\n", v.GoName, v.GoName)
	default:
		return fmt.Sprintf("var e %s\nif err := json.Unmarshal(item, &e); err != nil {\n\treturn nil, err\n}\nm.%s = append(m.%s, e)\n", scalarGoType(v.Kind), v.GoName, v.GoName)
	}
}

func jsonMapEncodeExpr(v *FieldView) string {
	access := "m." + v.GoName
	var valExpr string
	if v.MapValue.IsMessage {
		valExpr = fmt.Sprintf("inner, err := MarshalJSON%s(val)\nif err != nil {\n\treturn nil, err\n}\nentries[keyStr] = string(inner)\n", goTypeForMessageField(v.MapValue))
	} else {
		valExpr = fmt.Sprintf("entries[keyStr] = %s\n", jsonElemLiteral(v.MapValue.Kind, "val"))
	}
	keyStr := jsonMapKeyExpr(v.MapKey.Kind, "key")
	return fmt.Sprintf(
		"if len(%s) > 0 {\n\tkeys := make([]string, 0, len(%s))\n\tentries := make(map[string]string, len(%s))\n\tfor key, val := range %s {\n\t\tkeyStr := %s\n\t\tkeys = append(keys, keyStr)\n%s\t}\n\tsort.Strings(keys)\n\tbuf = jsonrt.AppendRawMap(buf, %q, keys, entries)\n}\n",
		access, access, access, access, keyStr, indent(valExpr), v.JSONName)
}

func jsonMapKeyExpr(k field.Kind, access string) string {
	if k == field.KindString {
		return access
	}
	return jsonValueExpr(k, access)
}

func jsonMapDecodeCase(v *FieldView) string {
	valDecode := jsonMapValueDecode(v)
	return fmt.Sprintf(
		"var rawEntries map[string]json.RawMessage\nif err := json.Unmarshal(raw, &rawEntries); err != nil {\n\treturn nil, err\n}\nm.%s = make(map[%s]%s, len(rawEntries))\nfor keyStr, val := range rawEntries {\n%s}\n",
		v.GoName, v.MapKey.GoType, v.MapValue.GoType, indent(valDecode))
}

func jsonMapValueDecode(v *FieldView) string {
	keyExpr := jsonMapKeyParse(v.MapKey.Kind)
	if v.MapValue.IsMessage {
		return fmt.Sprintf("%smv, err := UnmarshalJSON%s(val)\nif err != nil {\n\treturn nil, err\n}\nm.%s[mapKey] = mv\n", keyExpr, goTypeForMessageField(v.MapValue), v.GoName)
	}
	return fmt.Sprintf("%svar mv %s\nif err := json.Unmarshal(val, &mv); err != nil {\n\treturn nil, err\n}\nm.%s[mapKey] = mv\n", keyExpr, scalarGoType(v.MapValue.Kind), v.GoName)
}

func jsonMapKeyParse(k field.Kind) string {
	switch k {
	case field.KindString:
		return "mapKey := keyStr\n"
	case field.KindInt64, field.KindSInt64, field.KindSFixed64:
		return "mapKeyN, err := strconv.ParseInt(keyStr, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nmapKey := mapKeyN\n"
	case field.KindUInt64, field.KindFixed64:
		return "mapKeyN, err := strconv.ParseUint(keyStr, 10, 64)\nif err != nil {\n\treturn nil, err\n}\nmapKey := mapKeyN\n"
	case field.KindBool:
		return "mapKeyB, err := strconv.ParseBool(keyStr)\nif err != nil {\n\treturn nil, err\n}\nmapKey := mapKeyB\n"
	default:
		return "mapKeyN, err := strconv.ParseInt(keyStr, 10, 32)\nif err != nil {\n\treturn nil, err\n}\nmapKey := int32(mapKeyN)\n"
	}
}
