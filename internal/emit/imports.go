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

import "strings"

// modelStmts/codecStmts/jsonStmts concatenate the pre-rendered per-field Go
// source a given artifact's template splices in, so the driver can decide
// which conditional stdlib imports that source actually needs without
// re-deriving field-kind logic codecgen.go/jsoncodec.go/modelgen.go already
// computed.
func modelStmts(mv MessageView) string {
	var b strings.Builder
	for _, f := range mv.Fields {
		b.WriteString(f.EqualExpr)
		b.WriteString(f.HashStmt)
		b.WriteString(f.CompareStmt)
	}
	return b.String()
}

func codecStmts(mv MessageView) string {
	var b strings.Builder
	for _, f := range mv.WireFields {
		b.WriteString(f.EncodeStmt)
		b.WriteString(f.DecodeStmt)
		b.WriteString(f.SizeExpr)
	}
	return b.String()
}

func jsonStmts(mv MessageView) string {
	var b strings.Builder
	for _, f := range mv.Fields {
		b.WriteString(f.JSONEncodeExpr)
		b.WriteString(f.JSONDecodeCase)
	}
	return b.String()
}

func needsBytesCompare(mv MessageView) bool  { return strings.Contains(modelStmts(mv), "bytes.") }
func needsStringsCompare(mv MessageView) bool { return strings.Contains(modelStmts(mv), "strings.") }
func needsMath(mv MessageView) bool           { return strings.Contains(codecStmts(mv), "math.") }
func needsSort(mv MessageView) bool {
	return strings.Contains(codecStmts(mv), "sort.") || strings.Contains(jsonStmts(mv), "sort.")
}
func needsBase64(mv MessageView) bool   { return strings.Contains(jsonStmts(mv), "base64.") }
func needsStrconv(mv MessageView) bool  { return strings.Contains(jsonStmts(mv), "strconv.") }
func needsStringsFixture(mv MessageView) bool {
	for _, tc := range mv.TestCases {
		if strings.Contains(tc.Literal, "strings.") {
			return true
		}
	}
	return false
}
