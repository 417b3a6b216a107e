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

// Package emit is the file-writer (stage E) and the five per-message
// artifact emitters (stage F). Its shape is grounded on the teacher's
// internal/language/client.go: a template is rendered against a view object
// and the result is written to a destination path, accumulating an import
// set separately from the body so imports can be emitted sorted regardless
// of the order fields were visited in.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const licenseHeader = `// Copyright 2024 Google LLC
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
`

// Writer accumulates one artifact file's package, imports, and body in
// memory; nothing touches disk until Flush (§5: "file writers are owned
// exclusively by one emission session; no sharing", "no partial artifact
// files are written").
type Writer struct {
	// RelPath is the destination path relative to the session's output
	// root, e.g. "ex/demo/schema/GreetingSchema.go".
	RelPath string
	Package string

	imports map[string]string // import path -> alias ("" for none)
	body    strings.Builder
}

// NewWriter starts a Writer for one output file.
func NewWriter(relPath, pkg string) *Writer {
	return &Writer{RelPath: relPath, Package: pkg, imports: map[string]string{}}
}

// AddImport records a package path that the body references. Duplicate
// calls are harmless.
func (w *Writer) AddImport(path string) {
	if _, ok := w.imports[path]; !ok {
		w.imports[path] = ""
	}
}

// AddAliasedImport records a package path that the body references under a
// specific local alias, e.g. binding a message's own model package to
// "model" regardless of its actual package name so templates can always
// write "model.Foo" (§6.2: codec/json-codec/test artifacts live in a
// sibling package from the model they describe, and must import it).
func (w *Writer) AddAliasedImport(path, alias string) {
	w.imports[path] = alias
}

// Append adds rendered text to the body, exactly as produced by the
// template engine.
func (w *Writer) Append(s string) {
	w.body.WriteString(s)
}

// Render produces the final file contents: license header, package
// declaration, a lexicographically-sorted import block, then the body
// (§6.2: "Every artifact file begins with a fixed license comment, a
// package declaration, a lexicographically-sorted import block, and the
// generated body").
func (w *Writer) Render() []byte {
	var out strings.Builder
	out.WriteString(licenseHeader)
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("package %s\n\n", w.Package))

	if len(w.imports) > 0 {
		paths := make([]string, 0, len(w.imports))
		for p := range w.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		out.WriteString("import (\n")
		for _, p := range paths {
			if alias := w.imports[p]; alias != "" {
				out.WriteString(fmt.Sprintf("\t%s %q\n", alias, p))
			} else {
				out.WriteString(fmt.Sprintf("\t%q\n", p))
			}
		}
		out.WriteString(")\n\n")
	}

	out.WriteString(w.body.String())
	return []byte(out.String())
}

// Session owns every Writer produced while emitting one top-level message
// (and its nested messages/enums), so FLUSH can write them all only after
// every artifact rendered without error (§4.6's state machine: INIT ->
// WALK_BODY -> APPEND_ARTIFACTS -> FLUSH, "failure at any stage ... no
// partial artifact files are written").
type Session struct {
	outDir  string
	writers []*Writer
}

// NewSession starts a buffering session rooted at outDir.
func NewSession(outDir string) *Session {
	return &Session{outDir: outDir}
}

// NewFile starts and registers a new Writer within this session.
func (s *Session) NewFile(relPath, pkg string) *Writer {
	w := NewWriter(relPath, pkg)
	s.writers = append(s.writers, w)
	return w
}

// Flush renders every registered Writer and only then writes them to disk,
// so a render failure (e.g. a template error) never leaves a half-written
// artifact set behind.
func (s *Session) Flush() error {
	type rendered struct {
		path string
		data []byte
	}
	out := make([]rendered, 0, len(s.writers))
	for _, w := range s.writers {
		out = append(out, rendered{path: filepath.Join(s.outDir, w.RelPath), data: w.Render()})
	}
	for _, r := range out {
		if err := os.MkdirAll(filepath.Dir(r.path), 0o777); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", r.path, err)
		}
	}
	for _, r := range out {
		if err := os.WriteFile(r.path, r.data, 0o666); err != nil {
			return fmt.Errorf("writing %s: %w", r.path, err)
		}
	}
	return nil
}
