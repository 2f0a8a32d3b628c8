// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/driver"
)

// Attribute describes one vertex attribute derived from a record field.
type Attribute struct {
	// Name is the Go field name.
	Name string

	// Index is the attribute location, in field declaration order from 0.
	Index uint32

	Type Type

	// Offset is the byte offset of the field within the record.
	Offset uintptr
}

// Components returns the number of float components of the attribute.
func (a Attribute) Components() int32 { return a.Type.Components() }

// Layout is the attribute layout of a vertex record type.
// A Layout is immutable and safe to share.
type Layout struct {
	typ    reflect.Type
	stride int32
	attrs  []Attribute
}

// layouts caches derived layouts by record type.
var layouts sync.Map // reflect.Type -> *Layout

// LayoutOf derives the attribute layout of the vertex record type T.
//
// Fields are taken in declaration order. Each must be float32 or an array
// of 2, 3 or 4 float32 values, and fields must be tightly packed. If T
// implements Declarer, the declared list is used as the schema and checked
// against the struct.
func LayoutOf[T any]() (*Layout, error) {
	return LayoutFor(reflect.TypeFor[T]())
}

// MustLayoutOf is like LayoutOf but panics if T is not a valid vertex
// record. Use it in package-level variables so an unsupported record type
// fails at program initialization, before any window exists:
//
//	var rectLayout = vertex.MustLayoutOf[RectVertex]()
func MustLayoutOf[T any]() *Layout {
	l, err := LayoutOf[T]()
	if err != nil {
		panic(err)
	}
	return l
}

// Bind derives the layout of T and binds it; see Layout.Bind.
func Bind[T any](d driver.Driver) error {
	l, err := LayoutOf[T]()
	if err != nil {
		return err
	}
	l.Bind(d)
	return nil
}

// LayoutFor derives the attribute layout of the vertex record type rt.
func LayoutFor(rt reflect.Type) (*Layout, error) {
	if cached, ok := layouts.Load(rt); ok {
		return cached.(*Layout), nil
	}

	l, err := derive(rt)
	if err != nil {
		return nil, err
	}
	actual, _ := layouts.LoadOrStore(rt, l)
	gl2d.Logger().Debug("vertex: layout derived", "type", rt.String(), "arity", l.Arity(), "stride", l.stride)
	return actual.(*Layout), nil
}

func derive(rt reflect.Type) (*Layout, error) {
	n, err := Arity(rt)
	if err != nil {
		return nil, err
	}

	declared, hasSchema := declaredFields(rt)
	if hasSchema && len(declared) != n {
		return nil, fmt.Errorf("%w: %s declares %d fields, struct has %d", ErrSchemaMismatch, rt, len(declared), n)
	}

	l := &Layout{
		typ:    rt,
		stride: int32(rt.Size()),
		attrs:  make([]Attribute, 0, n),
	}

	var offset uintptr
	for i := range n {
		f := rt.Field(i)
		t, ok := Lookup(f.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s has type %s", ErrUnsupportedType, rt, f.Name, f.Type)
		}
		if hasSchema && declared[i] != t {
			return nil, fmt.Errorf("%w: %s.%s is %s, declared %s", ErrSchemaMismatch, rt, f.Name, t, declared[i])
		}
		if f.Offset != offset {
			return nil, fmt.Errorf("%w: %s.%s at offset %d, want %d", ErrPadding, rt, f.Name, f.Offset, offset)
		}
		l.attrs = append(l.attrs, Attribute{
			Name:   f.Name,
			Index:  uint32(i),
			Type:   t,
			Offset: offset,
		})
		offset += t.Size()
	}

	if rt.Size() != offset {
		return nil, fmt.Errorf("%w: %s is %d bytes, fields cover %d", ErrPadding, rt, rt.Size(), offset)
	}
	return l, nil
}

// RecordType returns the vertex record type the layout was derived from.
func (l *Layout) RecordType() reflect.Type { return l.typ }

// Stride returns the byte distance between consecutive records.
func (l *Layout) Stride() int32 { return l.stride }

// Arity returns the number of attributes.
func (l *Layout) Arity() int { return len(l.attrs) }

// Attributes returns a copy of the attributes in declaration order.
func (l *Layout) Attributes() []Attribute {
	out := make([]Attribute, len(l.attrs))
	copy(out, l.attrs)
	return out
}

// Bind enables and describes every attribute, in order, against the
// currently bound vertex array and array buffer. An empty layout issues no
// calls.
func (l *Layout) Bind(d driver.Driver) {
	for _, a := range l.attrs {
		d.EnableVertexAttribArray(a.Index)
		d.VertexAttribPointer(a.Index, a.Components(), a.Type.Kind(), false, l.stride, a.Offset)
	}
}

// BufferLayout returns the layout as a WebGPU vertex buffer layout, with
// attribute indices as shader locations.
func (l *Layout) BufferLayout() gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, len(l.attrs))
	for _, a := range l.attrs {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         a.Type.Format(),
			Offset:         uint64(a.Offset),
			ShaderLocation: a.Index,
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(l.stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}
