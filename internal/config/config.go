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

// Package config provides functionality for working with the .pbjc.toml
// project configuration file.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultMaxMessageSize bounds how large a single length-delimited field
// (string, bytes, embedded message, map entry or packed run) may be before
// Unmarshal refuses to decode it (§7's resource-exhaustion guard), absent a
// [limits] override.
const DefaultMaxMessageSize = 16 * 1024 * 1024

// DefaultOutDir is where generated artifacts land when [general].out_dir
// is not set.
const DefaultOutDir = "gen"

// GeneralConfig names the Go module the emitted packages are placed under,
// and the directory they're written to.
type GeneralConfig struct {
	// Module is the Go module path emitted sibling packages import each
	// other under (a codec/JSON-codec/test artifact importing the model package
	// it describes). Required; there is no sane default since it depends
	// on the consuming project.
	Module string `toml:"module"`

	// OutDir is the output root every artifact file is written beneath,
	// relative to the current working directory.
	OutDir string `toml:"out_dir,omitempty"`
}

// PackagesConfig overrides the §4.3 package-suffix rule. Every field is
// optional; an empty value keeps that artifact kind's default suffix.
type PackagesConfig struct {
	SchemaSuffix string `toml:"schema_suffix,omitempty"`
	CodecSuffix  string `toml:"codec_suffix,omitempty"`
	TestSuffix   string `toml:"test_suffix,omitempty"`
}

// LimitsConfig overrides resource-exhaustion guards applied during decode.
type LimitsConfig struct {
	MaxMessageSize int `toml:"max_message_size,omitempty"`
}

// Config is the parsed contents of .pbjc.toml.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Packages PackagesConfig `toml:"packages,omitempty"`
	Limits   LimitsConfig   `toml:"limits,omitempty"`
}

// Default returns the configuration used when no .pbjc.toml is present.
// Module is left empty: a caller relying on Default still needs to supply
// one, typically from a command-line flag.
func Default() *Config {
	return &Config{
		General: GeneralConfig{OutDir: DefaultOutDir},
		Limits:  LimitsConfig{MaxMessageSize: DefaultMaxMessageSize},
	}
}

// Load reads filename and fills in defaults; it does not call Validate. A
// missing file is not an error: it
// returns Default(), mirroring the teacher's "ignore errors reading the
// top-level file, fall back to defaults" behavior for its own root config.
func Load(filename string) (*Config, error) {
	cfg := Default()
	contents, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := toml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if cfg.General.OutDir == "" {
		cfg.General.OutDir = DefaultOutDir
	}
	if cfg.Limits.MaxMessageSize == 0 {
		cfg.Limits.MaxMessageSize = DefaultMaxMessageSize
	}
	return cfg, nil
}

// Validate checks the fields Load cannot fill in from a sane default,
// because they depend on what the caller is compiling (the target module
// path is never guessable from the config file's absence alone).
func (c *Config) Validate() error {
	if c.General.Module == "" {
		return fmt.Errorf("general.module is required: the Go module path generated packages import each other under")
	}
	if c.Limits.MaxMessageSize < 0 {
		return fmt.Errorf("limits.max_message_size must not be negative, got %d", c.Limits.MaxMessageSize)
	}
	return nil
}

// WriteDefault writes a minimal .pbjc.toml for module at filename, for use
// by a project scaffolding a new compiler config ("pbjc init"-style).
func WriteDefault(filename, module string) error {
	cfg := Default()
	cfg.General.Module = module
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return f.Close()
}
