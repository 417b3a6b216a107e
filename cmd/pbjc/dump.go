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

package main

import (
	"fmt"
	"io"
	"sort"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hiero-ledger/pbjc-go/internal/lookup"
)

// dumpSymbolTable writes a protojson-rendered snapshot of tables to w, for
// the --dump-symbols diagnostic flag: every fq-name the scan resolved,
// its output package, whether it's an enum, and its declared comparable
// fields. Built as a structpb.Struct rather than a hand-rolled JSON
// encoder so the dump goes through the same wire encoding
// (google.golang.org/protobuf/encoding/protojson) the rest of the
// toolchain uses for proto-adjacent data.
func dumpSymbolTable(w io.Writer, tables *lookup.SymbolTables) error {
	names := make([]string, 0, len(tables.PBJPackage))
	for name := range tables.PBJPackage {
		names = append(names, name)
	}
	sort.Strings(names)

	symbols := make([]any, 0, len(names))
	for _, name := range names {
		entry := map[string]any{
			"fqName":  name,
			"package": tables.PBJPackage[name],
			"isEnum":  tables.IsEnum(name),
		}
		if cmp := tables.Comparable[name]; len(cmp) > 0 {
			list := make([]any, len(cmp))
			for i, f := range cmp {
				list[i] = f
			}
			entry["comparable"] = list
		}
		symbols = append(symbols, entry)
	}

	dump, err := structpb.NewStruct(map[string]any{"symbols": symbols})
	if err != nil {
		return fmt.Errorf("building symbol dump: %w", err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(dump)
	if err != nil {
		return fmt.Errorf("rendering symbol dump: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
