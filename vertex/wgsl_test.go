// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"errors"
	"strings"
	"testing"
)

const rectVertexWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(
    @location(0) position: vec2<f32>,
    @location(1) tex_coords: vec2<f32>,
    @location(2) color: vec4<f32>,
) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position + tex_coords, 0.0, 1.0);
    out.color = color;
    return out;
}
`

const rectVertexStructWGSL = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) tex_coords: vec2<f32>,
    @location(2) color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return vec4<f32>(in.position + in.tex_coords, in.color.x, 1.0);
}
`

// skipNagaLimitation skips when naga rejects valid WGSL it does not support
// yet.
func skipNagaLimitation(t *testing.T, err error) {
	t.Helper()
	if err == nil || errors.Is(err, ErrShaderInput) {
		return
	}
	if msg := err.Error(); strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("naga limitation: %v", err)
	}
}

func TestCheckWGSL(t *testing.T) {
	l := MustLayoutOf[rectVertex]()
	for name, src := range map[string]string{
		"arguments": rectVertexWGSL,
		"struct":    rectVertexStructWGSL,
	} {
		t.Run(name, func(t *testing.T) {
			err := l.CheckWGSL(src)
			skipNagaLimitation(t, err)
			if err != nil {
				t.Errorf("CheckWGSL() error = %v", err)
			}
		})
	}
}

func TestCheckWGSLMismatch(t *testing.T) {
	l := MustLayoutOf[rectVertex]()
	tests := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{"format", "@location(2) color: vec4<f32>", "@location(2) color: vec3<f32>", "@location(2) is"},
		{"missing", "@location(1) tex_coords: vec2<f32>", "@builtin(vertex_index) tex_coords: u32", "no input at @location(1)"},
		{"extra", "@location(2) color: vec4<f32>,", "@location(2) color: vec4<f32>,\n    @location(3) extra: f32,", "@location(3) has no attribute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := strings.Replace(rectVertexWGSL, tt.old, tt.new, 1)
			if tt.name == "missing" {
				src = strings.Replace(src, "position + tex_coords", "position", 1)
			}
			err := l.CheckWGSL(src)
			skipNagaLimitation(t, err)
			if !errors.Is(err, ErrShaderInput) {
				t.Fatalf("CheckWGSL() error = %v, want ErrShaderInput", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestCheckWGSLNoVertexEntryPoint(t *testing.T) {
	src := `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`
	err := MustLayoutOf[rectVertex]().CheckWGSL(src)
	skipNagaLimitation(t, err)
	if !errors.Is(err, ErrShaderInput) || !strings.Contains(err.Error(), "no @vertex entry point") {
		t.Errorf("CheckWGSL() error = %v, want missing entry point", err)
	}
}

func TestCheckWGSLSyntaxError(t *testing.T) {
	err := MustLayoutOf[rectVertex]().CheckWGSL("@vertex fn vs_main( {")
	if err == nil {
		t.Fatal("CheckWGSL() accepted invalid WGSL")
	}
	if errors.Is(err, ErrShaderInput) {
		t.Errorf("syntax error reported as input mismatch: %v", err)
	}
}
