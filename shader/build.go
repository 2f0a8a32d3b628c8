// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"strings"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/driver"
)

// Build compiles vertex and fragment into a linked program and binds it.
//
// Both sources are loaded before any driver object is created. Either
// compile failure, or a link failure, returns a *BuildError carrying the
// driver's info log. Whatever the outcome, no shader object created by
// Build outlives the call, and the program handle escapes only on success.
func Build(d driver.Driver, vertex, fragment Source) (*Program, error) {
	vsText, err := vertex.load()
	if err != nil {
		return nil, fail(&BuildError{Kind: KindSourceRead, Stage: StageVertex, Source: vertex.String(), Err: err})
	}
	fsText, err := fragment.load()
	if err != nil {
		return nil, fail(&BuildError{Kind: KindSourceRead, Stage: StageFragment, Source: fragment.String(), Err: err})
	}

	objs := &objects{d: d}
	defer objs.release()

	vs, err := objs.compile(StageVertex, vertex, vsText)
	if err != nil {
		return nil, fail(err)
	}
	fs, err := objs.compile(StageFragment, fragment, fsText)
	if err != nil {
		return nil, fail(err)
	}

	prog := d.CreateProgram()
	objs.program = prog
	d.AttachShader(prog, vs)
	d.AttachShader(prog, fs)
	d.LinkProgram(prog)
	if !d.ProgramLinked(prog) {
		return nil, fail(&BuildError{
			Kind:   KindLink,
			Stage:  StageProgram,
			Source: vertex.String() + " + " + fragment.String(),
			Log:    strings.TrimSpace(d.ProgramInfoLog(prog)),
		})
	}
	d.DetachShader(prog, vs)
	d.DetachShader(prog, fs)

	// The program now belongs to the caller; the shader objects are still
	// released by the deferred call.
	objs.program = 0
	d.UseProgram(prog)

	gl2d.Logger().Debug("shader: program built", "program", prog, "vertex", vertex.String(), "fragment", fragment.String())
	return newProgram(d, prog, vertex, fragment), nil
}

// objects tracks the driver objects created during a Build.
type objects struct {
	d       driver.Driver
	shaders []uint32
	program uint32
}

func (o *objects) compile(stage Stage, src Source, text string) (uint32, error) {
	id := o.d.CreateShader(stage.kind())
	o.shaders = append(o.shaders, id)
	o.d.ShaderSource(id, text)
	o.d.CompileShader(id)
	if !o.d.ShaderCompiled(id) {
		return 0, &BuildError{
			Kind:   KindCompile,
			Stage:  stage,
			Source: src.String(),
			Log:    strings.TrimSpace(o.d.ShaderInfoLog(id)),
		}
	}
	return id, nil
}

// release deletes every tracked object. The program is deleted first so no
// shader is still attached when it is deleted.
func (o *objects) release() {
	if o.program != 0 {
		o.d.DeleteProgram(o.program)
		o.program = 0
	}
	for _, id := range o.shaders {
		o.d.DeleteShader(id)
	}
	o.shaders = nil
}

func fail(err error) error {
	if be, ok := err.(*BuildError); ok {
		gl2d.Logger().Error("shader: build failed",
			"kind", be.Kind.String(), "stage", be.Stage.String(), "source", be.Source, "log", be.Log, "err", be.Err)
	}
	return err
}
