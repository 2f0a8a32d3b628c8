// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl2d"
)

// NotFound is the location of a uniform the program does not have.
const NotFound int32 = -1

// Location returns the location of the named uniform.
//
// The driver is queried once per name; the result is cached, including
// NotFound, so a missing uniform costs one query and one warning for the
// lifetime of the program. Names are matched exactly.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	if p.id == 0 {
		return NotFound
	}
	loc := p.d.GetUniformLocation(p.id, name)
	if loc < 0 {
		loc = NotFound
		gl2d.Logger().Warn("shader: uniform not found",
			"name", name, "program", p.id, "vertex", p.vertex.String(), "fragment", p.fragment.String())
	}
	p.locations[name] = loc
	return loc
}

// The setters below apply to the current program; call Use first when more
// than one program is in play. A uniform that resolves to NotFound is
// skipped.

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc != NotFound {
		p.d.Uniform1f(loc, v)
	}
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc != NotFound {
		p.d.Uniform1i(loc, v)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v f32.Vec2) {
	if loc := p.Location(name); loc != NotFound {
		p.d.Uniform2f(loc, v[0], v[1])
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v f32.Vec3) {
	if loc := p.Location(name); loc != NotFound {
		p.d.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v f32.Vec4) {
	if loc := p.Location(name); loc != NotFound {
		p.d.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetMat4 sets a mat4 uniform. f32.Mat4 is row major, so the driver is
// asked to transpose.
func (p *Program) SetMat4(name string, m f32.Mat4) {
	if loc := p.Location(name); loc != NotFound {
		p.d.UniformMatrix4fv(loc, true, (*[16]float32)(&m))
	}
}
