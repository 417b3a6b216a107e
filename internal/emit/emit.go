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
	"embed"
	"fmt"
	"runtime"
	"strings"

	"github.com/cbroglie/mustache"
	"golang.org/x/sync/errgroup"

	"github.com/hiero-ledger/pbjc-go/internal/lookup"
	"github.com/hiero-ledger/pbjc-go/internal/model"
)

//go:embed templates
var templateFS embed.FS

// template names, one per artifact emitter (§4.6).
const (
	modelTemplate     = "model.go.mustache"
	schemaTemplate    = "schema.go.mustache"
	codecTemplate     = "codec.go.mustache"
	jsonCodecTemplate = "jsoncodec.go.mustache"
	testTemplate      = "test.go.mustache"
)

func renderTemplate(name string, data any) (string, error) {
	text, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("loading template %s: %w", name, err)
	}
	out, err := mustache.Render(string(text), data)
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return out, nil
}

// packageDir turns a dotted PBJ package ("ex.demo.schema") into the
// directory path component it is emitted under ("ex/demo/schema").
func packageDir(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// packageName returns the Go package identifier a dotted PBJ package
// compiles to: its final component, since Go package clauses are a single
// identifier, never a dotted path.
func packageName(pkg string) string {
	parts := strings.Split(pkg, ".")
	return parts[len(parts)-1]
}

// importPath qualifies a dotted PBJ package with modulePath, the Go module
// an artifact's sibling-package import needs to name it by (§6.2: codec,
// JSON codec, and test artifacts import the model package they describe
// under a fixed "model" alias).
func importPath(modulePath, pkg string) string {
	return strings.TrimSuffix(modulePath, "/") + "/" + packageDir(pkg)
}

// EmitMessage renders every artifact file for m — model, schema, binary
// codec, JSON codec, and test — into session, then recurses into m's
// nested messages (§4.6's WALK_BODY step; nested messages are independent
// emission units with their own five-artifact set, not inlined into their
// parent's). Map-entry synthetic messages carry no artifacts of their own;
// only their key/value Kind pair is ever consulted (via the owning field).
func EmitMessage(session *Session, modulePath string, m *model.Message, facade *lookup.Facade) error {
	if m.IsMapEntry {
		return nil
	}
	mv := BuildMessageView(m, facade)

	if err := renderModel(session, mv); err != nil {
		return fmt.Errorf("%s: %w", m.FQName, err)
	}
	if err := renderSchema(session, modulePath, mv); err != nil {
		return fmt.Errorf("%s: %w", m.FQName, err)
	}
	if err := renderCodec(session, modulePath, mv); err != nil {
		return fmt.Errorf("%s: %w", m.FQName, err)
	}
	if err := renderJSONCodec(session, modulePath, mv); err != nil {
		return fmt.Errorf("%s: %w", m.FQName, err)
	}
	if err := renderTest(session, modulePath, mv); err != nil {
		return fmt.Errorf("%s: %w", m.FQName, err)
	}

	for _, child := range m.Messages {
		if err := EmitMessage(session, modulePath, child, facade); err != nil {
			return err
		}
	}
	return nil
}

// EmitMessages emits every top-level message in messages. Each message's
// subtree is independent of every other's (§5), so they are rendered
// concurrently, each into its own Session, and only merged into out once
// every one of them has rendered without error — matching out.Flush's own
// "no partial artifact files" guarantee one level up.
func EmitMessages(out *Session, modulePath string, messages []*model.Message, facade *lookup.Facade) error {
	sessions := make([]*Session, len(messages))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range messages {
		i, m := i, m
		sessions[i] = NewSession(out.outDir)
		g.Go(func() error {
			return EmitMessage(sessions[i], modulePath, m, facade)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, s := range sessions {
		out.writers = append(out.writers, s.writers...)
	}
	return nil
}

func renderModel(session *Session, mv MessageView) error {
	body, err := renderTemplate(modelTemplate, mv)
	if err != nil {
		return err
	}
	w := session.NewFile(packageDir(mv.Package)+"/"+mv.GoName+".go", packageName(mv.Package))
	if needsBytesCompare(mv) {
		w.AddImport("bytes")
	}
	if needsStringsCompare(mv) {
		w.AddImport("strings")
	}
	w.AddImport("github.com/hiero-ledger/pbjc-go/internal/wire")
	w.Append(body)
	return nil
}

func renderSchema(session *Session, modulePath string, mv MessageView) error {
	body, err := renderTemplate(schemaTemplate, mv)
	if err != nil {
		return err
	}
	w := session.NewFile(packageDir(mv.SchemaPkg)+"/"+mv.GoName+"Schema.go", packageName(mv.SchemaPkg))
	w.AddImport("github.com/hiero-ledger/pbjc-go/internal/schemart")
	_ = modulePath
	w.Append(body)
	return nil
}

func renderCodec(session *Session, modulePath string, mv MessageView) error {
	body, err := renderTemplate(codecTemplate, mv)
	if err != nil {
		return err
	}
	w := session.NewFile(packageDir(mv.CodecPkg)+"/"+mv.GoName+"Codec.go", packageName(mv.CodecPkg))
	w.AddImport("errors")
	w.AddImport("fmt")
	w.AddImport("github.com/hiero-ledger/pbjc-go/internal/wire")
	if needsMath(mv) {
		w.AddImport("math")
	}
	if needsSort(mv) {
		w.AddImport("sort")
	}
	w.AddAliasedImport(importPath(modulePath, mv.Package), mv.ModelImportAlias)
	w.Append(body)
	return nil
}

func renderJSONCodec(session *Session, modulePath string, mv MessageView) error {
	body, err := renderTemplate(jsonCodecTemplate, mv)
	if err != nil {
		return err
	}
	w := session.NewFile(packageDir(mv.CodecPkg)+"/"+mv.GoName+"JSON.go", packageName(mv.CodecPkg))
	w.AddImport("encoding/json")
	w.AddImport("github.com/hiero-ledger/pbjc-go/internal/jsonrt")
	if needsBase64(mv) {
		w.AddImport("encoding/base64")
	}
	if needsStrconv(mv) {
		w.AddImport("strconv")
	}
	if needsSort(mv) {
		w.AddImport("sort")
	}
	w.AddAliasedImport(importPath(modulePath, mv.Package), mv.ModelImportAlias)
	w.Append(body)
	return nil
}

func renderTest(session *Session, modulePath string, mv MessageView) error {
	body, err := renderTemplate(testTemplate, mv)
	if err != nil {
		return err
	}
	w := session.NewFile(packageDir(mv.TestPkg)+"/"+mv.GoName+"_test.go", packageName(mv.TestPkg))
	w.AddImport("testing")
	if needsStringsFixture(mv) {
		w.AddImport("strings")
	}
	w.AddAliasedImport(importPath(modulePath, mv.Package), mv.ModelImportAlias)
	w.AddAliasedImport(importPath(modulePath, mv.CodecPkg), mv.CodecImportAlias)
	w.Append(body)
	return nil
}
