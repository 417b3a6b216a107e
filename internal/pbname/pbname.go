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

// Package pbname holds the pure, stateless name and comment utilities shared
// by the lookup engine and every emitter: case conversion, wire-tag packing,
// and javadoc-style comment cleanup.
package pbname

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// SnakeToCamel converts a snake_case (or SCREAMING_SNAKE_CASE) protobuf
// identifier to camelCase or PascalCase.
//
// A uniformly upper-case input (e.g. "HELLO_WORLD") is treated specially:
// strcase would otherwise preserve every letter's case, yielding "HELLOWORLD".
// We lower-case each segment's tail first, so "HELLO_WORLD" behaves exactly
// like "hello_world".
func SnakeToCamel(name string, firstUpper bool) string {
	if name == "" {
		return name
	}
	if isUniformUpper(name) {
		name = lowerSegmentTails(name)
	}
	if firstUpper {
		return strcase.ToCamel(name)
	}
	return strcase.ToLowerCamel(name)
}

// isUniformUpper reports whether name contains only upper-case letters,
// digits, and underscores (i.e. no lower-case letters at all).
func isUniformUpper(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}

// lowerSegmentTails lower-cases every character after the first in each
// underscore-delimited segment, so "HELLO_WORLD" becomes "Hello_World"-ish
// input suitable for strcase (which then title-cases the first letter of
// each segment on its own).
func lowerSegmentTails(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if len(p) <= 1 {
			continue
		}
		parts[i] = p[:1] + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "_")
}

var (
	upperRun  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	idSuffix  = regexp.MustCompile(`_I_D\b`)
	allUpper  = regexp.MustCompile(`^[A-Z0-9_]+$`)
	hasUscore = regexp.MustCompile(`_`)
)

// CamelToUpperSnake converts a camelCase or PascalCase identifier to
// SCREAMING_SNAKE_CASE, the form used for generated enum constant names.
//
// If the input is already all-upper (digits/underscores allowed) it passes
// through unchanged. If it already contains underscores, it is simply
// upper-cased (protobuf enum value names are sometimes already snake_case).
// Otherwise underscores are inserted before internal upper-case letters.
// A trailing "_I_D" (from splitting "...ID") is folded back to "_ID", since
// that is how the protobuf style guide spells the acronym.
func CamelToUpperSnake(name string) string {
	if name == "" {
		return name
	}
	if allUpper.MatchString(name) {
		return name
	}
	if hasUscore.MatchString(name) {
		return strings.ToUpper(name)
	}
	snake := upperRun.ReplaceAllString(name, "${1}_${2}")
	snake = strings.ToUpper(snake)
	snake = idSuffix.ReplaceAllString(snake, "_ID")
	return snake
}

// Wire types, as defined by the protobuf wire format.
const (
	WireVarint          = 0
	WireFixed64         = 1
	WireLengthDelimited = 2
	WireFixed32         = 5
)

// PackTag packs a field number and wire type into the varint-encoded tag
// written immediately before a field's value on the wire.
func PackTag(wireType, fieldNumber int) uint64 {
	return uint64(fieldNumber)<<3 | uint64(wireType)
}

// UnpackTag is the inverse of PackTag, splitting a tag back into its field
// number and wire type. Exposed primarily so tests can assert the round trip
// described in spec §8.
func UnpackTag(tag uint64) (fieldNumber int, wireType int) {
	return int(tag >> 3), int(tag & 0x7)
}

var (
	starLine    = regexp.MustCompile(`(?m)^\s*\*\s?`)
	blockOpen   = regexp.MustCompile(`/\*\*?`)
	blockClose  = regexp.MustCompile(`\*/`)
	ttOpen      = regexp.MustCompile(`<tt>`)
	ttClose     = regexp.MustCompile(`</tt>`)
	bareAmp     = regexp.MustCompile(`&(?:amp|lt|gt|quot|#\d+);|&`)
	bareLt      = regexp.MustCompile(`<[a-zA-Z/!]|<`)
	unmatchedGt = regexp.MustCompile(`<[a-zA-Z/!][^<>]*>|->|>`)
	pOpen       = regexp.MustCompile(`<p>`)
)

// CleanDoc strips Javadoc-style comment markers from doc, rewrites `<tt>` to
// `<code>`, escapes free-floating `<`, `>`, and `&`, and balances `<p>` tags
// across paragraph boundaries.
//
// CleanDoc is total: it never errors, and an empty or already-clean input
// passes through unchanged.
func CleanDoc(doc string) string {
	if doc == "" {
		return doc
	}
	out := blockOpen.ReplaceAllString(doc, "")
	out = blockClose.ReplaceAllString(out, "")
	out = starLine.ReplaceAllString(out, "")
	out = ttOpen.ReplaceAllString(out, "<code>")
	out = ttClose.ReplaceAllString(out, "</code>")

	// Two-pass <p> balancing: temporarily protect every <p> we see, so the
	// bare-`<` escaping pass below doesn't mangle the tags we intend to
	// keep, then restore them.
	const placeholder = "\x00P\x00"
	protected := pOpen.ReplaceAllString(out, placeholder)
	escapeBare := func(re *regexp.Regexp, bare, esc string) {
		protected = re.ReplaceAllStringFunc(protected, func(m string) string {
			if m == bare {
				return esc
			}
			return m
		})
	}
	escapeBare(bareAmp, "&", "&amp;")
	escapeBare(bareLt, "<", "&lt;")
	escapeBare(unmatchedGt, ">", "&gt;")
	out = strings.ReplaceAll(protected, placeholder, "<p>")
	return strings.TrimSpace(out)
}
