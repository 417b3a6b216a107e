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

// finalizeCodec fills in a FieldView's EncodeStmt/DecodeStmt/SizeExpr, the
// pre-rendered Go source the binary codec template splices in verbatim.
// It is a single switch over Kind/Repeated/IsMap/IsOneOf/IsWrapper computed
// once here, rather than re-derived inside the template on every render:
// mustache's sections can select between pre-built blocks, but cannot
// themselves express "cast through int64 for sign-extension" or "zigzag
// encode", so that dispatch stays in Go.
func finalizeCodec(v *FieldView) {
	access := "m." + v.GoName
	switch {
	case v.IsMap:
		v.EncodeStmt = mapEncodeStmt(v, access)
		v.DecodeStmt = mapDecodeStmt(v, access)
		v.SizeExpr = mapSizeExpr(v, access)
	case v.Repeated:
		v.EncodeStmt = repeatedEncodeStmt(v, access)
		v.DecodeStmt = repeatedDecodeStmt(v, access)
		v.SizeExpr = repeatedSizeExpr(v, access)
	case v.IsOneOf:
		v.EncodeStmt = oneOfEncodeStmt(v, access)
		v.DecodeStmt = singularDecodeStmt(v, access, true)
		v.SizeExpr = oneOfSizeExpr(v, access)
	default:
		v.EncodeStmt = singularEncodeStmt(v, access)
		v.DecodeStmt = singularDecodeStmt(v, access, false)
		v.SizeExpr = singularSizeExpr(v, access)
	}
}

// scalarAppend returns the Go expression appending valExpr's wire bytes to
// dst, for every non-message, non-wrapper Kind.
func scalarAppend(kind field.Kind, dst, valExpr string) string {
	switch kind {
	case field.KindInt32, field.KindInt64:
		return fmt.Sprintf("wire.AppendVarint(%s, uint64(%s))", dst, valExpr)
	case field.KindUInt32, field.KindUInt64, field.KindEnum:
		return fmt.Sprintf("wire.AppendVarint(%s, uint64(%s))", dst, valExpr)
	case field.KindSInt32:
		return fmt.Sprintf("wire.AppendVarint(%s, wire.ZigZagEncode32(%s))", dst, valExpr)
	case field.KindSInt64:
		return fmt.Sprintf("wire.AppendVarint(%s, wire.ZigZagEncode64(%s))", dst, valExpr)
	case field.KindBool:
		return fmt.Sprintf("wire.AppendVarint(%s, wire.BoolToVarint(%s))", dst, valExpr)
	case field.KindFixed32, field.KindSFixed32:
		return fmt.Sprintf("wire.AppendFixed32(%s, uint32(%s))", dst, valExpr)
	case field.KindFloat:
		return fmt.Sprintf("wire.AppendFixed32(%s, math.Float32bits(%s))", dst, valExpr)
	case field.KindFixed64, field.KindSFixed64:
		return fmt.Sprintf("wire.AppendFixed64(%s, uint64(%s))", dst, valExpr)
	case field.KindDouble:
		return fmt.Sprintf("wire.AppendFixed64(%s, math.Float64bits(%s))", dst, valExpr)
	case field.KindString:
		return fmt.Sprintf("wire.AppendBytes(%s, []byte(%s))", dst, valExpr)
	case field.KindBytes:
		return fmt.Sprintf("wire.AppendBytes(%s, %s)", dst, valExpr)
	default:
		return fmt.Sprintf("wire.AppendVarint(%s, uint64(%s))", dst, valExpr)
	}
}

// scalarSize returns the Go expression computing the wire size of valExpr's
// value alone (no tag), for every non-message, non-wrapper Kind.
func scalarSize(kind field.Kind, valExpr string) string {
	switch kind {
	case field.KindInt32, field.KindInt64, field.KindUInt32, field.KindUInt64, field.KindEnum:
		return fmt.Sprintf("wire.SizeVarint(uint64(%s))", valExpr)
	case field.KindSInt32:
		return fmt.Sprintf("wire.SizeVarint(wire.ZigZagEncode32(%s))", valExpr)
	case field.KindSInt64:
		return fmt.Sprintf("wire.SizeVarint(wire.ZigZagEncode64(%s))", valExpr)
	case field.KindBool:
		return fmt.Sprintf("wire.SizeVarint(wire.BoolToVarint(%s))", valExpr)
	case field.KindFixed32, field.KindSFixed32, field.KindFloat:
		return "4"
	case field.KindFixed64, field.KindSFixed64, field.KindDouble:
		return "8"
	case field.KindString:
		return fmt.Sprintf("wire.SizeBytes(len(%s))", valExpr)
	case field.KindBytes:
		return fmt.Sprintf("wire.SizeBytes(len(%s))", valExpr)
	default:
		return fmt.Sprintf("wire.SizeVarint(uint64(%s))", valExpr)
	}
}

// scalarDecode returns a statement block reading one scalar value of kind
// from dataVar (a []byte already positioned past the tag) and assigning it
// to destExpr, reslicing dataVar past the consumed bytes. String and Bytes
// additionally check the decoded length against the enclosing Unmarshal
// function's maxSize parameter (always in scope wherever scalarDecode's
// output is spliced, since every decode statement renders inside some
// Unmarshal<Type> body) before accepting the value (§6.4, §7 size-exceeded).
func scalarDecode(kind field.Kind, destExpr, dataVar string) string {
	switch kind {
	case field.KindInt32:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = int32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindInt64:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = int64(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindUInt32:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = uint32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindUInt64:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = rv\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindEnum:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = int32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindSInt32:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = wire.ZigZagDecode32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindSInt64:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = wire.ZigZagDecode64(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindBool:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = rv != 0\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindFixed32:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed32(%s)\n%s = %s[rn:]\n%s = rv\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindSFixed32:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed32(%s)\n%s = %s[rn:]\n%s = int32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindFloat:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed32(%s)\n%s = %s[rn:]\n%s = math.Float32frombits(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindFixed64:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed64(%s)\n%s = %s[rn:]\n%s = rv\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindSFixed64:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed64(%s)\n%s = %s[rn:]\n%s = int64(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindDouble:
		return fmt.Sprintf("rv, rn := wire.ConsumeFixed64(%s)\n%s = %s[rn:]\n%s = math.Float64frombits(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindString:
		return fmt.Sprintf("rv, rn := wire.ConsumeBytes(%s)\n%s = %s[rn:]\nif err := wire.CheckMaxSize(len(rv), maxSize); err != nil {\n\treturn nil, err\n}\n%s = string(rv)\n", dataVar, dataVar, dataVar, destExpr)
	case field.KindBytes:
		return fmt.Sprintf("rv, rn := wire.ConsumeBytes(%s)\n%s = %s[rn:]\nif err := wire.CheckMaxSize(len(rv), maxSize); err != nil {\n\treturn nil, err\n}\n%s = append([]byte(nil), rv...)\n", dataVar, dataVar, dataVar, destExpr)
	default:
		return fmt.Sprintf("rv, rn := wire.ConsumeVarint(%s)\n%s = %s[rn:]\n%s = int32(rv)\n", dataVar, dataVar, dataVar, destExpr)
	}
}

// singularEncodeStmt builds the statement block for a non-repeated,
// non-map, non-oneof field: message fields recurse into their sibling
// Marshal<Type> function (codec logic lives in the ".codec" package, never
// as a method on the model type itself), wrapper fields inline their scalar
// payload, everything else is a direct scalarAppend.
func singularEncodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	switch {
	case v.IsMessage:
		typeName := strings.TrimPrefix(v.GoType, "*")
		fmt.Fprintf(&b, "if %s != nil {\n", access)
		fmt.Fprintf(&b, "\teb, err := Marshal%s(%s)\n", typeName, access)
		b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		fmt.Fprintf(&b, "\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
		b.WriteString("\tbuf = wire.AppendBytes(buf, eb)\n")
		b.WriteString("}\n")
	case v.IsWrapper:
		b.WriteString(wrapperEncodeBlock(v, access))
	default:
		cond := access + " != " + v.DefaultLiteral
		if v.Kind == field.KindBytes {
			cond = "len(" + access + ") > 0"
		}
		fmt.Fprintf(&b, "if %s {\n", cond)
		fmt.Fprintf(&b, "\tbuf = wire.AppendTag(buf, %d, %d)\n", v.FieldNumber, v.WireType)
		fmt.Fprintf(&b, "\tbuf = %s\n", scalarAppend(v.Kind, "buf", access))
		b.WriteString("}\n")
	}
	return b.String()
}

// oneOfEncodeStmt is identical to singularEncodeStmt except the access
// expression is already a pointer (oneof children are always pointer-typed,
// §8 scenario 2), so scalar kinds dereference first and the whole block is
// guarded by a nil check.
func oneOfEncodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	if v.IsMessage {
		return singularEncodeStmt(v, access)
	}
	fmt.Fprintf(&b, "if %s != nil {\n", access)
	fmt.Fprintf(&b, "\tbuf = wire.AppendTag(buf, %d, %d)\n", v.FieldNumber, v.WireType)
	fmt.Fprintf(&b, "\tbuf = %s\n", scalarAppend(v.Kind, "buf", "(*"+access+")"))
	b.WriteString("}\n")
	return b.String()
}

func oneOfSizeExpr(v *FieldView, access string) string {
	if v.IsMessage {
		return singularSizeExpr(v, access)
	}
	return fmt.Sprintf("if %s != nil {\n\ttotal += wire.SizeTag(%d) + %s\n}\n",
		access, v.FieldNumber, scalarSize(v.Kind, "(*"+access+")"))
}

func wrapperEncodeBlock(v *FieldView, access string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "if %s != nil {\n", access)
	b.WriteString("\tvar wb []byte\n")
	fmt.Fprintf(&b, "\twb = wire.AppendTag(wb, 1, %d)\n", v.WrapperKind.WireType())
	fmt.Fprintf(&b, "\twb = %s\n", scalarAppend(v.WrapperKind, "wb", "(*"+access+")"))
	fmt.Fprintf(&b, "\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
	b.WriteString("\tbuf = wire.AppendBytes(buf, wb)\n")
	b.WriteString("}\n")
	return b.String()
}

func wrapperDecodeBlock(v *FieldView, access, dataVar string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "wv, wn := wire.ConsumeBytes(%s)\n", dataVar)
	fmt.Fprintf(&b, "%s = %s[wn:]\n", dataVar, dataVar)
	b.WriteString("if err := wire.CheckMaxSize(len(wv), maxSize); err != nil {\n\treturn nil, err\n}\n")
	b.WriteString("if len(wv) > 0 {\n")
	b.WriteString("\t_, _, tn := wire.ConsumeTag(wv)\n")
	b.WriteString("\twv = wv[tn:]\n")
	b.WriteString("\tvar wval " + scalarGoType(v.WrapperKind) + "\n")
	inner := scalarDecode(v.WrapperKind, "wval", "wv")
	for _, line := range strings.Split(strings.TrimRight(inner, "\n"), "\n") {
		b.WriteString("\t" + line + "\n")
	}
	fmt.Fprintf(&b, "\t%s = &wval\n", access)
	b.WriteString("}\n")
	return b.String()
}

func singularDecodeStmt(v *FieldView, access string, isOneOf bool) string {
	var b strings.Builder
	switch {
	case v.IsMessage:
		typeName := strings.TrimPrefix(v.GoType, "*")
		fmt.Fprintf(&b, "mv, mn := wire.ConsumeBytes(data)\n")
		b.WriteString("data = data[mn:]\n")
		b.WriteString("if err := wire.CheckMaxSize(len(mv), maxSize); err != nil {\n\treturn nil, err\n}\n")
		fmt.Fprintf(&b, "child, err := Unmarshal%s(mv, strict, maxDepth-1, maxSize)\n", typeName)
		b.WriteString("if err != nil {\n\treturn nil, err\n}\n")
		fmt.Fprintf(&b, "%s = child\n", access)
	case v.IsWrapper:
		b.WriteString(wrapperDecodeBlock(v, access, "data"))
	case isOneOf:
		b.WriteString("var ov " + strings.TrimPrefix(v.GoType, "*") + "\n")
		inner := scalarDecode(v.Kind, "ov", "data")
		b.WriteString(inner)
		fmt.Fprintf(&b, "%s = &ov\n", access)
	default:
		b.WriteString(scalarDecode(v.Kind, access, "data"))
	}
	return b.String()
}

func singularSizeExpr(v *FieldView, access string) string {
	switch {
	case v.IsMessage:
		typeName := strings.TrimPrefix(v.GoType, "*")
		return fmt.Sprintf("if %s != nil {\n\teb, err := Marshal%s(%s)\n\tif err != nil {\n\t\treturn 0, err\n\t}\n\ttotal += wire.SizeTag(%d) + wire.SizeBytes(len(eb))\n}\n",
			access, typeName, access, v.FieldNumber)
	case v.IsWrapper:
		return fmt.Sprintf("if %s != nil {\n\ttotal += wire.SizeTag(%d) + wire.SizeBytes(wire.SizeTag(1)+%s)\n}\n",
			access, v.FieldNumber, scalarSize(v.WrapperKind, "(*"+access+")"))
	default:
		cond := access + " != " + v.DefaultLiteral
		if v.Kind == field.KindBytes {
			cond = "len(" + access + ") > 0"
		}
		return fmt.Sprintf("if %s {\n\ttotal += wire.SizeTag(%d) + %s\n}\n", cond, v.FieldNumber, scalarSize(v.Kind, access))
	}
}

// repeatedEncodeStmt packs scalar-numeric/bool/enum kinds into a single
// length-delimited run (proto3's default packed encoding); strings, bytes,
// and messages stay one wire entry per element.
func repeatedEncodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	elemKind := v.Kind
	packable := elemKind != field.KindString && elemKind != field.KindBytes && !v.IsMessage
	fmt.Fprintf(&b, "if len(%s) > 0 {\n", access)
	if packable {
		b.WriteString("\tvar packed []byte\n")
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\tpacked = %s\n", scalarAppend(elemKind, "packed", "e"))
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
		b.WriteString("\tbuf = wire.AppendBytes(buf, packed)\n")
	} else if v.IsMessage {
		elemType := strings.TrimPrefix(strings.TrimPrefix(v.GoType, "[]"), "*")
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\teb, err := Marshal%s(e)\n", elemType)
		b.WriteString("\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
		fmt.Fprintf(&b, "\t\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
		b.WriteString("\t\tbuf = wire.AppendBytes(buf, eb)\n")
		b.WriteString("\t}\n")
	} else {
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
		fmt.Fprintf(&b, "\t\tbuf = %s\n", scalarAppend(elemKind, "buf", "e"))
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func repeatedDecodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	elemKind := v.Kind
	elemType := strings.TrimPrefix(strings.TrimPrefix(v.GoType, "[]"), "*")
	switch {
	case v.IsMessage:
		b.WriteString("mv, mn := wire.ConsumeBytes(data)\n")
		b.WriteString("data = data[mn:]\n")
		b.WriteString("if err := wire.CheckMaxSize(len(mv), maxSize); err != nil {\n\treturn nil, err\n}\n")
		fmt.Fprintf(&b, "child, err := Unmarshal%s(mv, strict, maxDepth-1, maxSize)\n", elemType)
		b.WriteString("if err != nil {\n\treturn nil, err\n}\n")
		fmt.Fprintf(&b, "%s = append(%s, child)\n", access, access)
	case elemKind == field.KindString, elemKind == field.KindBytes:
		b.WriteString(scalarDecode(elemKind, "ev", "data"))
		fmt.Fprintf(&b, "%s = append(%s, ev)\n", access, access)
	default:
		// Packed: the whole run is one length-delimited value. Every
		// occurrence of the field's tag is read this way; the unpacked form
		// (the tag repeated once per element, with the element's own wire
		// type) is not handled.
		b.WriteString("pv, pn := wire.ConsumeBytes(data)\n")
		b.WriteString("data = data[pn:]\n")
		b.WriteString("if err := wire.CheckMaxSize(len(pv), maxSize); err != nil {\n\treturn nil, err\n}\n")
		b.WriteString("for len(pv) > 0 {\n")
		inner := scalarDecode(elemKind, "ev", "pv")
		for _, line := range strings.Split(strings.TrimRight(inner, "\n"), "\n") {
			b.WriteString("\t" + line + "\n")
		}
		fmt.Fprintf(&b, "\t%s = append(%s, ev)\n", access, access)
		b.WriteString("}\n")
	}
	return b.String()
}

func repeatedSizeExpr(v *FieldView, access string) string {
	var b strings.Builder
	elemKind := v.Kind
	packable := elemKind != field.KindString && elemKind != field.KindBytes && !v.IsMessage
	fmt.Fprintf(&b, "if len(%s) > 0 {\n", access)
	switch {
	case v.IsMessage:
		elemType := strings.TrimPrefix(strings.TrimPrefix(v.GoType, "[]"), "*")
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\teb, err := Marshal%s(e)\n", elemType)
		b.WriteString("\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n")
		fmt.Fprintf(&b, "\t\ttotal += wire.SizeTag(%d) + wire.SizeBytes(len(eb))\n", v.FieldNumber)
		b.WriteString("\t}\n")
	case packable:
		b.WriteString("\tpacked := 0\n")
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\tpacked += %s\n", scalarSize(elemKind, "e"))
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\ttotal += wire.SizeTag(%d) + wire.SizeBytes(packed)\n", v.FieldNumber)
	default:
		fmt.Fprintf(&b, "\tfor _, e := range %s {\n", access)
		fmt.Fprintf(&b, "\t\ttotal += wire.SizeTag(%d) + %s\n", v.FieldNumber, scalarSize(elemKind, "e"))
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// mapEncodeStmt walks keys in ascending order so that binary output is
// deterministic across runs on the same map contents (§8's map-determinism
// scenario).
func mapEncodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	keyType := v.MapKey.GoType
	fmt.Fprintf(&b, "if len(%s) > 0 {\n", access)
	fmt.Fprintf(&b, "\tkeys := make([]%s, 0, len(%s))\n", keyType, access)
	fmt.Fprintf(&b, "\tfor k := range %s {\n\t\tkeys = append(keys, k)\n\t}\n", access)
	b.WriteString("\t" + mapKeySortStmt(keyType, "keys") + "\n")
	b.WriteString("\tfor _, k := range keys {\n")
	fmt.Fprintf(&b, "\t\tev := %s[k]\n", access)
	b.WriteString("\t\tvar entry []byte\n")
	fmt.Fprintf(&b, "\t\tentry = wire.AppendTag(entry, 1, %d)\n", v.MapKey.WireType)
	fmt.Fprintf(&b, "\t\tentry = %s\n", scalarAppend(v.MapKey.Kind, "entry", "k"))
	if v.MapValue.IsMessage {
		valueType := strings.TrimPrefix(v.MapValue.GoType, "*")
		fmt.Fprintf(&b, "\t\tvb, err := Marshal%s(ev)\n\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n", valueType)
		b.WriteString("\t\tentry = wire.AppendTag(entry, 2, wire.LengthDelimited)\n")
		b.WriteString("\t\tentry = wire.AppendBytes(entry, vb)\n")
	} else {
		fmt.Fprintf(&b, "\t\tentry = wire.AppendTag(entry, 2, %d)\n", v.MapValue.WireType)
		fmt.Fprintf(&b, "\t\tentry = %s\n", scalarAppend(v.MapValue.Kind, "entry", "ev"))
	}
	fmt.Fprintf(&b, "\t\tbuf = wire.AppendTag(buf, %d, wire.LengthDelimited)\n", v.FieldNumber)
	b.WriteString("\t\tbuf = wire.AppendBytes(buf, entry)\n")
	b.WriteString("\t}\n}\n")
	return b.String()
}

func mapKeySortStmt(keyType, sliceVar string) string {
	if keyType == "bool" {
		return fmt.Sprintf("sort.Slice(%s, func(i, j int) bool { return !%s[i] && %s[j] })", sliceVar, sliceVar, sliceVar)
	}
	return fmt.Sprintf("sort.Slice(%s, func(i, j int) bool { return %s[i] < %s[j] })", sliceVar, sliceVar, sliceVar)
}

func mapDecodeStmt(v *FieldView, access string) string {
	var b strings.Builder
	b.WriteString("mv, mn := wire.ConsumeBytes(data)\n")
	b.WriteString("data = data[mn:]\n")
	b.WriteString("if err := wire.CheckMaxSize(len(mv), maxSize); err != nil {\n\treturn nil, err\n}\n")
	fmt.Fprintf(&b, "var mk %s\n", v.MapKey.GoType)
	fmt.Fprintf(&b, "var mval %s\n", v.MapValue.GoType)
	b.WriteString("for len(mv) > 0 {\n")
	b.WriteString("\tfnum, _, tn := wire.ConsumeTag(mv)\n")
	b.WriteString("\tmv = mv[tn:]\n")
	b.WriteString("\tswitch fnum {\n")
	b.WriteString("\tcase 1:\n")
	for _, line := range strings.Split(strings.TrimRight(scalarDecode(v.MapKey.Kind, "mk", "mv"), "\n"), "\n") {
		b.WriteString("\t\t" + line + "\n")
	}
	b.WriteString("\tcase 2:\n")
	if v.MapValue.IsMessage {
		b.WriteString("\t\tevb, evn := wire.ConsumeBytes(mv)\n")
		b.WriteString("\t\tmv = mv[evn:]\n")
		b.WriteString("\t\tif err := wire.CheckMaxSize(len(evb), maxSize); err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
		typeName := strings.TrimPrefix(v.MapValue.GoType, "*")
		fmt.Fprintf(&b, "\t\tchild, err := Unmarshal%s(evb, strict, maxDepth-1, maxSize)\n", typeName)
		b.WriteString("\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
		b.WriteString("\t\tmval = child\n")
	} else {
		for _, line := range strings.Split(strings.TrimRight(scalarDecode(v.MapValue.Kind, "mval", "mv"), "\n"), "\n") {
			b.WriteString("\t\t" + line + "\n")
		}
	}
	b.WriteString("\t}\n}\n")
	fmt.Fprintf(&b, "if %s == nil {\n\t%s = %s{}\n}\n", access, access, v.GoType)
	fmt.Fprintf(&b, "%s[mk] = mval\n", access)
	return b.String()
}

// mapSizeExpr mirrors mapEncodeStmt's entry-building exactly (same tag
// layout, same key/value wire types) so the computed size always matches
// what Marshal<Type> actually writes.
func mapSizeExpr(v *FieldView, access string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "if len(%s) > 0 {\n", access)
	fmt.Fprintf(&b, "\tfor k, ev := range %s {\n", access)
	b.WriteString("\t\tentrySize := wire.SizeTag(1) + " + scalarSize(v.MapKey.Kind, "k") + "\n")
	if v.MapValue.IsMessage {
		valueType := strings.TrimPrefix(v.MapValue.GoType, "*")
		fmt.Fprintf(&b, "\t\tvb, err := Marshal%s(ev)\n\t\tif err != nil {\n\t\t\treturn 0, err\n\t\t}\n", valueType)
		b.WriteString("\t\tentrySize += wire.SizeTag(2) + wire.SizeBytes(len(vb))\n")
	} else {
		fmt.Fprintf(&b, "\t\tentrySize += wire.SizeTag(2) + %s\n", scalarSize(v.MapValue.Kind, "ev"))
	}
	fmt.Fprintf(&b, "\t\ttotal += wire.SizeTag(%d) + wire.SizeBytes(entrySize)\n", v.FieldNumber)
	b.WriteString("\t}\n}\n")
	return b.String()
}
