// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gl2d"
)

type config struct {
	Window  windowConfig  `toml:"window" yaml:"window"`
	Shaders shaderConfig  `toml:"shaders" yaml:"shaders"`
	Texture textureConfig `toml:"texture" yaml:"texture"`
	Clear   [4]float32    `toml:"clear" yaml:"clear"`
}

type windowConfig struct {
	Title   string `toml:"title" yaml:"title"`
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	VSync   bool   `toml:"vsync" yaml:"vsync"`
	GLMajor int    `toml:"gl_major" yaml:"gl_major"`
	GLMinor int    `toml:"gl_minor" yaml:"gl_minor"`
	Profile string `toml:"profile" yaml:"profile"`
	Debug   bool   `toml:"debug" yaml:"debug"`
}

// shaderConfig holds shader file paths. Empty paths select the built-in
// sources.
type shaderConfig struct {
	Vertex   string `toml:"vertex" yaml:"vertex"`
	Fragment string `toml:"fragment" yaml:"fragment"`
}

type textureConfig struct {
	Path string `toml:"path" yaml:"path"`
}

func defaultConfig() config {
	return config{
		Window: windowConfig{
			Title:   "Example",
			Width:   800,
			Height:  600,
			VSync:   true,
			GLMajor: 4,
			GLMinor: 3,
			Profile: "core",
			Debug:   true,
		},
		Clear: [4]float32{0, 0, 0, 1},
	}
}

// loadConfig reads a config file over the defaults. Files ending in .yaml
// or .yml are YAML, anything else is TOML.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		err = decodeTOML(path, &cfg)
	}
	if err != nil {
		return config{}, err
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return config{}, fmt.Errorf("%s: [window] size must be positive, got %dx%d", path, cfg.Window.Width, cfg.Window.Height)
	}
	if (cfg.Shaders.Vertex == "") != (cfg.Shaders.Fragment == "") {
		return config{}, fmt.Errorf("%s: [shaders] needs both vertex and fragment", path)
	}
	if _, err := parseProfile(cfg.Window.Profile); err != nil {
		return config{}, fmt.Errorf("%s: [window].profile: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(path string, cfg *config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return nil
}

func parseProfile(s string) (gl2d.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return gl2d.ProfileAny, nil
	case "core":
		return gl2d.ProfileCore, nil
	case "compat", "compatibility":
		return gl2d.ProfileCompat, nil
	}
	return 0, fmt.Errorf("unknown profile %q", s)
}

// hints returns the context hints of the window section.
func (w windowConfig) hints() gl2d.Hints {
	profile, _ := parseProfile(w.Profile)
	return gl2d.Hints{
		Major:   w.GLMajor,
		Minor:   w.GLMinor,
		Profile: profile,
		Debug:   w.Debug,
	}
}
