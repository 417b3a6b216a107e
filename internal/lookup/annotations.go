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

package lookup

import (
	"bufio"
	"regexp"
	"strings"
)

// optionComment matches the `// <<< name = "value" >>>` annotation syntax
// from §6.1.
var optionComment = regexp.MustCompile(`^\s*//\s*<<<\s*([\w.]+)\s*=\s*"([^"]*)"\s*>>>\s*$`)

// fileAnnotations holds every recognized option-comment in a source file,
// bucketed by the fully-qualified name of the message/enum it was found
// nested inside ("" for file-level comments).
type fileAnnotations struct {
	// byScope[scope][name] = value
	byScope map[string]map[string]string
}

func (a *fileAnnotations) get(scope, name string) (string, bool) {
	if m, ok := a.byScope[scope]; ok {
		v, ok := m[name]
		return v, ok
	}
	return "", false
}

// scanAnnotations performs a lightweight, brace-depth-tracking scan of raw
// .proto source text to recover the `pbj.*` option comments attached to the
// file or to a specific message/enum.
//
// This does not attempt to be a general protobuf grammar parser (that is
// explicitly out of scope, per spec §1) — it only needs to track enough
// structure (message/enum open braces, pending comment lines) to attribute
// each recognized annotation to its nearest enclosing declaration and, when
// only comment lines separate it from a following message/enum declaration
// line, to that declaration as well. Package
// declarations and real field parsing come from the compiled descriptor
// (scan.go), not from this scanner.
var (
	messageOpen = regexp.MustCompile(`^\s*message\s+(\w+)\s*\{?\s*$`)
	enumOpen    = regexp.MustCompile(`^\s*enum\s+(\w+)\s*\{?\s*$`)
)

func scanAnnotations(source string) *fileAnnotations {
	result := &fileAnnotations{byScope: map[string]map[string]string{}}
	set := func(scope, name, value string) {
		m, ok := result.byScope[scope]
		if !ok {
			m = map[string]string{}
			result.byScope[scope] = m
		}
		m[name] = value
	}

	var stack []string // stack of enclosing message/enum short names
	scope := func() string { return strings.Join(stack, ".") }
	var pending [][2]string // annotations seen since the last non-comment line
	open := func(name string) {
		stack = append(stack, name)
		for _, p := range pending {
			set(scope(), p[0], p[1])
		}
		pending = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := optionComment.FindStringSubmatch(line); m != nil {
			set(scope(), m[1], m[2])
			pending = append(pending, [2]string{m[1], m[2]})
			continue
		}
		if m := messageOpen.FindStringSubmatch(line); m != nil {
			open(m[1])
			continue
		}
		if m := enumOpen.FindStringSubmatch(line); m != nil {
			open(m[1])
			continue
		}
		// Naive brace tracking: a line that is exactly a closing brace
		// (optionally followed by `;` for message options) pops one level.
		// This is sufficient because message/enum bodies in proto3 are
		// always brace-delimited blocks with no same-line open+close for
		// non-empty bodies containing our annotations.
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") {
			pending = nil
		}
		if (trimmed == "}" || trimmed == "};") && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}
	return result
}
