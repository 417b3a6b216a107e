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

// Command pbjc compiles a set of .proto files into Go model, schema, binary
// codec, JSON codec, and test packages (one set of five per message).
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/hiero-ledger/pbjc-go/internal/config"
	"github.com/hiero-ledger/pbjc-go/internal/emit"
	"github.com/hiero-ledger/pbjc-go/internal/field"
	"github.com/hiero-ledger/pbjc-go/internal/lookup"
	"github.com/hiero-ledger/pbjc-go/internal/model"
)

func main() {
	configPath := flag.String("config", ".pbjc.toml", "path to the project configuration file")
	outDir := flag.String("out-dir", "", "override [general].out_dir from the configuration file")
	module := flag.String("module", "", "override [general].module from the configuration file")
	dumpSymbols := flag.Bool("dump-symbols", false, "scan the inputs and print the resolved symbol table instead of emitting")
	flag.Parse()

	if err := run(flag.Args(), *configPath, *outDir, *module, *dumpSymbols); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	slog.Info("generation completed successfully")
}

func run(protoPaths []string, configPath, outDirFlag, moduleFlag string, dumpSymbols bool) error {
	if len(protoPaths) == 0 {
		return errors.New("no .proto input files given; usage: pbjc [flags] file.proto [file.proto ...]")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if moduleFlag != "" {
		cfg.General.Module = moduleFlag
	}
	if outDirFlag != "" {
		cfg.General.OutDir = outDirFlag
	}
	if !dumpSymbols {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	field.SetPackageSuffixes(cfg.Packages.SchemaSuffix, cfg.Packages.CodecSuffix, cfg.Packages.TestSuffix)
	field.SetMaxMessageSize(cfg.Limits.MaxMessageSize)

	files := make([]lookup.SourceFile, 0, len(protoPaths))
	for _, p := range protoPaths {
		contents, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files = append(files, lookup.SourceFile{Path: filepath.ToSlash(p), Contents: string(contents)})
	}

	ctx := context.Background()
	tables, err := lookup.Scan(ctx, files)
	if err != nil {
		return err
	}

	if dumpSymbols {
		return dumpSymbolTable(os.Stdout, tables)
	}

	for _, f := range files {
		facade := lookup.NewFacade(tables, f.Path)
		top := topLevelMessages(tables, f.Path)
		session := emit.NewSession(cfg.General.OutDir)
		if err := emit.EmitMessages(session, cfg.General.Module, top, facade); err != nil {
			return err
		}
		if err := session.Flush(); err != nil {
			return err
		}
		slog.Info("emitted", "file", f.Path, "messages", len(top))
	}
	return nil
}

// topLevelMessages returns file's directly-declared messages (Parent ==
// nil), in a deterministic fq-name order: PerFileSymbols is a set, not a
// slice, and map iteration order must never leak into generated file names
// or emission order.
func topLevelMessages(tables *lookup.SymbolTables, file string) []*model.Message {
	names := make([]string, 0, len(tables.PerFileSymbols[file]))
	for name := range tables.PerFileSymbols[file] {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []*model.Message
	for _, name := range names {
		m, ok := tables.MessageByID[name]
		if !ok || m.Parent != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}
