// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gl2d/driver"
	"github.com/gogpu/gl2d/headless"
)

const (
	basicVert = `#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texCoords;
layout (location = 2) in vec4 color;
out vec2 fragTexCoords;
out vec4 fragColor;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	fragTexCoords = texCoords;
	fragColor = color;
}
`
	basicFrag = `#version 330 core
in vec2 fragTexCoords;
in vec4 fragColor;
out vec4 outColor;
uniform float time;
uniform sampler2D sampler;
void main() {
	outColor = texture(sampler, fragTexCoords) * fragColor * (0.5 + 0.5 * sin(time));
}
`
)

// strictCompiler rejects sources containing "syntax error".
func strictCompiler(_ driver.Enum, source string) error {
	if i := strings.Index(source, "syntax error"); i >= 0 {
		line := strings.Count(source[:i], "\n") + 1
		return fmt.Errorf("0:%d(1): error: syntax error, unexpected token", line)
	}
	return headless.AcceptAll(0, source)
}

func newDriver() *headless.Driver {
	return headless.NewDriver(headless.WithCompiler(strictCompiler))
}

func assertNoLeaks(t *testing.T, d *headless.Driver) {
	t.Helper()
	if n := d.LiveShaders(); n != 0 {
		t.Errorf("LiveShaders() = %d, want 0", n)
	}
	if n := d.LivePrograms(); n != 0 {
		t.Errorf("LivePrograms() = %d, want 0", n)
	}
}

func TestBuild(t *testing.T) {
	d := newDriver()
	p, err := Build(d, Inline(basicVert), Inline(basicFrag))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.ID() == 0 {
		t.Fatal("ID() = 0")
	}
	if n := d.LivePrograms(); n != 1 {
		t.Errorf("LivePrograms() = %d, want 1", n)
	}
	if n := d.LiveShaders(); n != 0 {
		t.Errorf("LiveShaders() = %d, want 0", n)
	}
	if d.CurrentProgram() != p.ID() {
		t.Errorf("CurrentProgram() = %d, want %d", d.CurrentProgram(), p.ID())
	}
	if p.VertexSource().String() != "inline" || p.FragmentSource().String() != "inline" {
		t.Errorf("sources = %s, %s", p.VertexSource(), p.FragmentSource())
	}

	p.Close()
	p.Close()
	assertNoLeaks(t, d)
	if n := d.Calls("DeleteProgram"); n != 1 {
		t.Errorf("DeleteProgram called %d times, want 1", n)
	}
	if p.ID() != 0 {
		t.Errorf("ID() after Close = %d", p.ID())
	}
}

func TestBuildCompileFailure(t *testing.T) {
	badFrag := strings.Replace(basicFrag, "void main()", "syntax error\nvoid main()", 1)
	badVert := strings.Replace(basicVert, "void main()", "syntax error\nvoid main()", 1)

	tests := []struct {
		name          string
		vertex        string
		fragment      string
		stage         Stage
		createShaders int
	}{
		{"fragment", basicVert, badFrag, StageFragment, 2},
		{"vertex", badVert, basicFrag, StageVertex, 1},
		{"empty vertex", "", basicFrag, StageVertex, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver()
			p, err := Build(d, Inline(tt.vertex), Inline(tt.fragment))
			if p != nil {
				t.Fatal("Build returned a program on failure")
			}
			if !errors.Is(err, ErrCompile) {
				t.Fatalf("err = %v, want ErrCompile", err)
			}
			if errors.Is(err, ErrLink) || errors.Is(err, ErrSourceRead) {
				t.Errorf("err %v matches the wrong kind", err)
			}
			var be *BuildError
			if !errors.As(err, &be) {
				t.Fatalf("err %T is not a *BuildError", err)
			}
			if be.Kind != KindCompile || be.Stage != tt.stage {
				t.Errorf("Kind, Stage = %s, %s, want compile, %s", be.Kind, be.Stage, tt.stage)
			}
			if be.Log == "" {
				t.Error("Log is empty")
			}
			if be.Source != "inline" {
				t.Errorf("Source = %q, want inline", be.Source)
			}

			assertNoLeaks(t, d)
			if n := d.Calls("CreateShader"); n != tt.createShaders {
				t.Errorf("CreateShader called %d times, want %d", n, tt.createShaders)
			}
			if n := d.Calls("DeleteShader"); n != tt.createShaders {
				t.Errorf("DeleteShader called %d times, want %d", n, tt.createShaders)
			}
			if n := d.Calls("CreateProgram"); n != 0 {
				t.Errorf("CreateProgram called %d times, want 0", n)
			}
		})
	}
}

func TestBuildLinkFailure(t *testing.T) {
	// WGSL sources without a fragment entry point compile but do not link.
	const vs = "@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }"
	const fs = "fn helper() -> f32 { return 1.0; }"

	d := headless.NewDriver(headless.WithCompiler(headless.AcceptAll))
	_, err := Build(d, Inline(vs), Inline(fs))
	if !errors.Is(err, ErrLink) {
		t.Fatalf("err = %v, want ErrLink", err)
	}
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("err %T is not a *BuildError", err)
	}
	if be.Stage != StageProgram {
		t.Errorf("Stage = %s, want program", be.Stage)
	}
	if !strings.Contains(be.Log, "@fragment") {
		t.Errorf("Log = %q, want it to mention @fragment", be.Log)
	}
	if !strings.Contains(err.Error(), be.Log) {
		t.Errorf("Error() = %q does not include the log", err.Error())
	}

	assertNoLeaks(t, d)
	if n := d.Calls("DeleteProgram"); n != 1 {
		t.Errorf("DeleteProgram called %d times, want 1", n)
	}
	if n := d.Calls("UseProgram"); n != 0 {
		t.Errorf("UseProgram called %d times, want 0", n)
	}
}

func TestBuildSourceReadFailure(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "basic.vert")
	if err := os.WriteFile(vert, []byte(basicVert), 0o600); err != nil {
		t.Fatal(err)
	}
	frag := filepath.Join(dir, "basic.frag")
	if err := os.WriteFile(frag, []byte(basicFrag), 0o600); err != nil {
		t.Fatal(err)
	}
	missingVert := filepath.Join(dir, "missing.vert")
	missingFrag := filepath.Join(dir, "missing.frag")

	tests := []struct {
		name      string
		vertex    string
		fragment  string
		wantStage Stage
		wantPath  string
	}{
		{"vertex", missingVert, frag, StageVertex, missingVert},
		{"fragment", vert, missingFrag, StageFragment, missingFrag},
		{"both", missingVert, missingFrag, StageVertex, missingVert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver()
			_, err := Build(d, File(tt.vertex), File(tt.fragment))
			if !errors.Is(err, ErrSourceRead) {
				t.Fatalf("err = %v, want ErrSourceRead", err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("err = %v, want it to wrap fs.ErrNotExist", err)
			}
			var be *BuildError
			if !errors.As(err, &be) {
				t.Fatalf("err %T is not a *BuildError", err)
			}
			if be.Stage != tt.wantStage || be.Source != tt.wantPath {
				t.Errorf("Stage, Source = %s, %q, want %s, %q", be.Stage, be.Source, tt.wantStage, tt.wantPath)
			}
			if n := d.Calls("CreateShader"); n != 0 {
				t.Errorf("CreateShader called %d times, want 0", n)
			}
		})
	}
}

func TestBuildFromFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "basic.vert")
	frag := filepath.Join(dir, "basic.frag")
	// A leading byte order mark is not part of the source.
	if err := os.WriteFile(vert, append([]byte("\xEF\xBB\xBF"), basicVert...), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(frag, []byte(basicFrag), 0o600); err != nil {
		t.Fatal(err)
	}

	var got []string
	d := headless.NewDriver(headless.WithCompiler(func(stage driver.Enum, src string) error {
		got = append(got, src)
		return nil
	}))
	p, err := Build(d, File(vert), File(frag))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer p.Close()

	if len(got) != 2 || got[0] != basicVert || got[1] != basicFrag {
		t.Errorf("compiled sources do not match the files (BOM kept?)")
	}
	if p.VertexSource().String() != vert {
		t.Errorf("VertexSource() = %s, want %s", p.VertexSource(), vert)
	}
}

func TestBuildKindString(t *testing.T) {
	tests := []struct {
		err  *BuildError
		want string
	}{
		{&BuildError{Kind: KindCompile, Stage: StageFragment, Source: "basic.frag", Log: "0:3: error"}, "shader: fragment compile failed (basic.frag):\n0:3: error"},
		{&BuildError{Kind: KindSourceRead, Stage: StageVertex, Source: "a.vert", Err: fs.ErrNotExist}, "shader: vertex source read failed (a.vert): file does not exist"},
		{&BuildError{Kind: KindLink, Stage: StageProgram, Source: "inline + inline"}, "shader: program link failed (inline + inline)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

const (
	wgslVertex = `@group(0) @binding(0) var<uniform> time: f32;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(@location(0) position: vec2<f32>, @location(1) color: vec4<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position, 0.0, 1.0);
    out.color = color;
    return out;
}
`
	wgslFragment = `@group(0) @binding(0) var<uniform> time: f32;

@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color * (0.5 + 0.5 * sin(time));
}
`
)

func TestBuildWGSL(t *testing.T) {
	d := headless.NewDriver()
	p, err := Build(d, Inline(wgslVertex), Inline(wgslFragment))
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("Build: %v", err)
	}
	defer p.Close()

	if loc := p.Location("time"); loc == NotFound {
		t.Error(`Location("time") = NotFound`)
	}
}

func TestBuildWGSLSyntaxError(t *testing.T) {
	d := headless.NewDriver()
	_, err := Build(d, Inline(wgslVertex), Inline("@fragment fn fs_main( -> {"))
	var be *BuildError
	if !errors.As(err, &be) || be.Kind != KindCompile || be.Stage != StageFragment {
		t.Fatalf("err = %v, want a fragment compile failure", err)
	}
	if be.Log == "" {
		t.Error("Log is empty")
	}
	assertNoLeaks(t, d)
}
