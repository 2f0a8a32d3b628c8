// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// CheckWGSL verifies that the @location inputs of the first @vertex entry
// point in source match the layout: every attribute needs an input at its
// index with the same format, and every input needs an attribute.
//
// Parse and lowering failures are returned unwrapped; a mismatch wraps
// ErrShaderInput.
func (l *Layout) CheckWGSL(source string) error {
	ast, err := naga.Parse(source)
	if err != nil {
		return err
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return err
	}

	inputs, ok := vertexInputs(module)
	if !ok {
		return fmt.Errorf("%w: no @vertex entry point", ErrShaderInput)
	}

	want := l.BufferLayout()
	for _, a := range want.Attributes {
		got, ok := inputs[a.ShaderLocation]
		if !ok {
			return fmt.Errorf("%w: %s has no input at @location(%d)", ErrShaderInput, l.typ, a.ShaderLocation)
		}
		if got != a.Format {
			return fmt.Errorf("%w: @location(%d) is %s, %s has %s", ErrShaderInput, a.ShaderLocation, got, l.typ, a.Format)
		}
		delete(inputs, a.ShaderLocation)
	}
	for loc := range inputs {
		return fmt.Errorf("%w: @location(%d) has no attribute in %s", ErrShaderInput, loc, l.typ)
	}
	return nil
}

// vertexInputs maps the @location inputs of the first vertex entry point,
// including members of struct arguments, to vertex formats. Inputs with no
// float vertex format map to VertexFormatUndefined.
func vertexInputs(m *ir.Module) (map[uint32]gputypes.VertexFormat, bool) {
	for _, ep := range m.EntryPoints {
		if ep.Stage != ir.StageVertex {
			continue
		}
		inputs := make(map[uint32]gputypes.VertexFormat)
		for _, arg := range ep.Function.Arguments {
			if loc, ok := location(arg.Binding); ok {
				inputs[loc] = formatOf(m, arg.Type)
				continue
			}
			st, ok := typeInner(m, arg.Type).(ir.StructType)
			if !ok {
				continue
			}
			for _, member := range st.Members {
				if loc, ok := location(member.Binding); ok {
					inputs[loc] = formatOf(m, member.Type)
				}
			}
		}
		return inputs, true
	}
	return nil, false
}

func location(b *ir.Binding) (uint32, bool) {
	if b == nil {
		return 0, false
	}
	lb, ok := (*b).(ir.LocationBinding)
	return lb.Location, ok
}

func typeInner(m *ir.Module, h ir.TypeHandle) ir.TypeInner {
	if int(h) >= len(m.Types) {
		return nil
	}
	return m.Types[h].Inner
}

func formatOf(m *ir.Module, h ir.TypeHandle) gputypes.VertexFormat {
	switch t := typeInner(m, h).(type) {
	case ir.ScalarType:
		if t.Kind == ir.ScalarFloat && t.Width == floatSize {
			return Float.Format()
		}
	case ir.VectorType:
		if t.Scalar.Kind == ir.ScalarFloat && t.Scalar.Width == floatSize {
			switch t.Size {
			case ir.Vec2:
				return Vec2.Format()
			case ir.Vec3:
				return Vec3.Format()
			case ir.Vec4:
				return Vec4.Format()
			}
		}
	}
	return gputypes.VertexFormatUndefined
}
