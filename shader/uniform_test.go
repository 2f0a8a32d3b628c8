// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl2d"
)

func TestLocationCached(t *testing.T) {
	d := newDriver()
	p, err := Build(d, Inline(basicVert), Inline(basicFrag))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	first := p.Location("time")
	second := p.Location("time")
	if first == NotFound {
		t.Fatal(`Location("time") = NotFound`)
	}
	if first != second {
		t.Errorf("Location returned %d then %d", first, second)
	}
	if n := d.Calls("GetUniformLocation"); n != 1 {
		t.Errorf("GetUniformLocation called %d times, want 1", n)
	}

	for range 2 {
		if loc := p.Location("nonexistent"); loc != NotFound {
			t.Errorf(`Location("nonexistent") = %d, want NotFound`, loc)
		}
	}
	if n := d.Calls("GetUniformLocation"); n != 2 {
		t.Errorf("GetUniformLocation called %d times, want 2", n)
	}

	// Names are case-sensitive.
	if loc := p.Location("Time"); loc != NotFound {
		t.Errorf(`Location("Time") = %d, want NotFound`, loc)
	}
}

func TestLocationWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	gl2d.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer gl2d.SetLogger(nil)

	d := newDriver()
	p, err := Build(d, Inline(basicVert), Inline(basicFrag))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	p.SetFloat("missing", 1)
	p.SetFloat("missing", 2)
	p.Location("missing")

	out := buf.String()
	if n := strings.Count(out, "uniform not found"); n != 1 {
		t.Fatalf("warning logged %d times, want 1:\n%s", n, out)
	}
	for _, want := range []string{"name=missing", "vertex=inline", "fragment=inline"} {
		if !strings.Contains(out, want) {
			t.Errorf("warning %q lacks %q", out, want)
		}
	}
	if n := d.Calls("Uniform1f"); n != 0 {
		t.Errorf("Uniform1f called %d times for a missing uniform", n)
	}
}

func TestSetters(t *testing.T) {
	const frag = `#version 330 core
uniform float time;
uniform int frame;
uniform vec2 offset;
uniform vec3 tint;
uniform vec4 color;
uniform mat4 transform;
void main() {}
`
	d := newDriver()
	p, err := Build(d, Inline(basicVert), Inline(frag))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	p.SetFloat("time", 1.5)
	p.SetInt("frame", 7)
	p.SetVec2("offset", f32.Vec2{1, 2})
	p.SetVec3("tint", f32.Vec3{1, 2, 3})
	p.SetVec4("color", f32.Vec4{1, 2, 3, 4})
	identity := f32.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	p.SetMat4("transform", identity)

	tests := []struct {
		name string
		want []float32
	}{
		{"time", []float32{1.5}},
		{"frame", []float32{7}},
		{"offset", []float32{1, 2}},
		{"tint", []float32{1, 2, 3}},
		{"color", []float32{1, 2, 3, 4}},
		{"transform", identity[:]},
	}
	for _, tt := range tests {
		got, ok := d.UniformValue(p.ID(), p.Location(tt.name))
		if !ok || !slices.Equal(got, tt.want) {
			t.Errorf("%s = %v, %v, want %v", tt.name, got, ok, tt.want)
		}
	}
}

func TestLocationAfterClose(t *testing.T) {
	d := newDriver()
	p, err := Build(d, Inline(basicVert), Inline(basicFrag))
	if err != nil {
		t.Fatal(err)
	}
	p.Location("time")
	p.Close()

	if loc := p.Location("time"); loc != NotFound {
		t.Errorf("Location after Close = %d, want NotFound", loc)
	}
	p.SetFloat("time", 1)
	p.Use()
	if n := d.Calls("Uniform1f") + d.Calls("GetUniformLocation"); n != 1 {
		t.Errorf("closed program issued driver calls (%d)", n)
	}
}
