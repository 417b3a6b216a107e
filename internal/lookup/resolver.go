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
	"strings"

	"github.com/bufbuild/protocompile"
)

// SourceFile is one input .proto file, as supplied by the caller (the CLI
// reads these from disk; tests construct them in memory).
type SourceFile struct {
	// Path is the logical, proto_path-relative path used both to identify
	// this file and to match against other files' import statements (e.g.
	// "demo/a.proto"), mirroring how protoc matches imports against
	// --proto_path-relative names.
	Path string
	// Contents is the raw .proto source text.
	Contents string
}

// sourceSet indexes a collection of SourceFiles for both protocompile
// resolution and our own import-uniqueness check (§4.3 step 2,
// ErrUnresolvedImport).
type sourceSet struct {
	byPath map[string]string // logical path -> contents, for registered inputs
}

func newSourceSet(files []SourceFile) *sourceSet {
	s := &sourceSet{byPath: map[string]string{}}
	for _, f := range files {
		s.byPath[f.Path] = f.Contents
	}
	return s
}

// FindFileByPath implements protocompile.Resolver.
func (s *sourceSet) FindFileByPath(path string) (protocompile.SearchResult, error) {
	if contents, ok := s.byPath[path]; ok {
		return protocompile.SearchResult{Source: strings.NewReader(contents)}, nil
	}
	if contents, ok := wellKnownProtos[path]; ok {
		return protocompile.SearchResult{Source: strings.NewReader(contents)}, nil
	}
	return protocompile.SearchResult{}, &fileNotFoundError{path: path}
}

type fileNotFoundError struct{ path string }

func (e *fileNotFoundError) Error() string { return "file not found: " + e.path }

// matchImport implements §4.3 step 2: "Resolve imports by matching each
// relative import path against the absolute paths of all known input
// files. Exactly one match expected; zero-match or multi-match is a fatal
// error." Well-known google/protobuf/*.proto imports always match exactly
// (they are synthesized, never ambiguous).
func (s *sourceSet) matchImport(importPath string) (matches []string) {
	if _, ok := wellKnownProtos[importPath]; ok {
		return []string{importPath}
	}
	for p := range s.byPath {
		if p == importPath || strings.HasSuffix(p, "/"+importPath) {
			matches = append(matches, p)
		}
	}
	return matches
}
