// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "github.com/gogpu/gl2d/driver"

// Program is a linked shader program created by Build. It owns the driver
// handle and the uniform location cache.
type Program struct {
	d        driver.Driver
	id       uint32
	vertex   Source
	fragment Source

	locations map[string]int32
}

func newProgram(d driver.Driver, id uint32, vertex, fragment Source) *Program {
	return &Program{
		d:         d,
		id:        id,
		vertex:    vertex,
		fragment:  fragment,
		locations: make(map[string]int32),
	}
}

// ID returns the program handle, 0 after Close.
func (p *Program) ID() uint32 { return p.id }

// VertexSource returns the source the vertex stage was built from.
func (p *Program) VertexSource() Source { return p.vertex }

// FragmentSource returns the source the fragment stage was built from.
func (p *Program) FragmentSource() Source { return p.fragment }

// Use binds the program as current.
func (p *Program) Use() {
	if p.id == 0 {
		return
	}
	p.d.UseProgram(p.id)
}

// Close deletes the program and drops its uniform cache. Closing twice does
// nothing.
func (p *Program) Close() {
	if p.id == 0 {
		return
	}
	p.d.DeleteProgram(p.id)
	p.id = 0
	clear(p.locations)
}
