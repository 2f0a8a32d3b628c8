// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/headless"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "Example" {
		t.Errorf("defaults = %+v", cfg.Window)
	}
	if cfg.Window.hints() != gl2d.DefaultHints() {
		t.Errorf("hints() = %+v, want %+v", cfg.Window.hints(), gl2d.DefaultHints())
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
clear = [0.1, 0.2, 0.3, 1.0]

[window]
title = "Quad"
width = 320
profile = "compat"

[shaders]
vertex = "a.vert"
fragment = "a.frag"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Quad" || cfg.Window.Width != 320 || cfg.Window.Height != 600 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Window.hints().Profile != gl2d.ProfileCompat {
		t.Errorf("Profile = %v", cfg.Window.hints().Profile)
	}
	if cfg.Clear != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("Clear = %v", cfg.Clear)
	}
	if cfg.Shaders.Vertex != "a.vert" {
		t.Errorf("Shaders = %+v", cfg.Shaders)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[window\n", "failed to parse TOML"},
		{"unknown key", "[window]\nfullscreen = true\n", "unknown keys: window.fullscreen"},
		{"size", "[window]\nwidth = 0\n", "size must be positive"},
		{"half shaders", "[shaders]\nvertex = \"a.vert\"\n", "needs both"},
		{"profile", "[window]\nprofile = \"es\"\n", "unknown profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadConfig() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRectLayout(t *testing.T) {
	if rectLayout.Stride() != 32 || rectLayout.Arity() != 3 {
		t.Errorf("Stride() = %d, Arity() = %d, want 32, 3", rectLayout.Stride(), rectLayout.Arity())
	}
}

func TestRunHeadless(t *testing.T) {
	p := headless.NewPlatform(headless.WithCompiler(headless.AcceptAll))
	ctx := gl2d.NewContext(p)

	n, err := run(ctx, defaultConfig(), 2)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if n != 2 {
		t.Errorf("run() = %d frames, want 2", n)
	}

	d := p.Drivers()[0]
	if d.Calls("DrawElements") != 2 {
		t.Errorf("DrawElements called %d times", d.Calls("DrawElements"))
	}
	if d.Calls("GetUniformLocation") != 2 {
		t.Errorf("GetUniformLocation called %d times, want 2 (cached)", d.Calls("GetUniformLocation"))
	}
	if d.LivePrograms()+d.LiveShaders()+d.LiveBuffers()+d.LiveTextures()+d.LiveVertexArrays() != 0 {
		t.Error("run leaked driver objects")
	}
	if ctx.State() != gl2d.StateUninitialized || p.TerminateCalls() != 1 {
		t.Errorf("state %s, terminate %d", ctx.State(), p.TerminateCalls())
	}
}

func TestRunReleasesWindowOnError(t *testing.T) {
	p := headless.NewPlatform(headless.WithCompiler(headless.AcceptAll))
	ctx := gl2d.NewContext(p)

	// A missing texture fails after the window was opened; the window must
	// still be released.
	cfg := defaultConfig()
	cfg.Texture.Path = filepath.Join(t.TempDir(), "missing.png")
	if _, err := run(ctx, cfg, 1); err == nil {
		t.Fatal("run() with a missing texture succeeded")
	}
	if ctx.LiveWindows() != 0 || p.LiveSurfaces() != 0 {
		t.Errorf("live windows %d, surfaces %d", ctx.LiveWindows(), p.LiveSurfaces())
	}
}

func TestShaderSources(t *testing.T) {
	for _, wgsl := range []bool{false, true} {
		vs, fs, err := shaderSources(shaderConfig{}, wgsl)
		if err != nil {
			t.Fatal(err)
		}
		if !vs.IsInline() || !fs.IsInline() {
			t.Error("built-in sources are not inline")
		}
	}
	vs, _, _ := shaderSources(shaderConfig{Vertex: "x.vert", Fragment: "x.frag"}, false)
	if vs.String() != "x.vert" {
		t.Errorf("vertex source = %s", vs)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	body := `window:
  title: Quad
  height: 240
  vsync: false
clear: [1, 1, 1, 1]
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Quad" || cfg.Window.Height != 240 || cfg.Window.Width != 800 || cfg.Window.VSync {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Clear != [4]float32{1, 1, 1, 1} {
		t.Errorf("Clear = %v", cfg.Clear)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("window:\n  fullscreen: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil || !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("loadConfig(bad.yml) error = %v", err)
	}
}

func TestRootCommandConfigError(t *testing.T) {
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")})
	defer rootCmd.SetArgs(nil)
	defer gl2d.SetLogger(nil)

	var stderr strings.Builder
	rootCmd.SetErr(&stderr)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() with a missing config succeeded")
	}
}
