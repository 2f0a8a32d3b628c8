// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import (
	"unsafe"

	"github.com/gogpu/gl2d/driver"
)

// VertexArray owns a vertex array object.
type VertexArray struct {
	d  driver.Driver
	id uint32
}

// NewVertexArray creates a vertex array and binds it.
func NewVertexArray(d driver.Driver) *VertexArray {
	va := &VertexArray{d: d, id: d.GenVertexArray()}
	va.Bind()
	return va
}

// ID returns the driver handle, 0 after Close.
func (va *VertexArray) ID() uint32 { return va.id }

// Bind makes the vertex array current.
func (va *VertexArray) Bind() { va.d.BindVertexArray(va.id) }

// Close deletes the vertex array.
func (va *VertexArray) Close() {
	if va.id == 0 {
		return
	}
	va.d.DeleteVertexArray(va.id)
	va.id = 0
}

// VertexBuffer owns an array buffer holding vertex records.
type VertexBuffer struct {
	d      driver.Driver
	id     uint32
	count  int
	stride int
}

// NewVertexBuffer creates an array buffer, binds it and uploads vertices.
// T must be a plain fixed-size record (no pointers, slices or strings).
func NewVertexBuffer[T any](d driver.Driver, vertices []T, usage driver.Enum) *VertexBuffer {
	vb := &VertexBuffer{
		d:      d,
		id:     d.GenBuffer(),
		count:  len(vertices),
		stride: int(unsafe.Sizeof(*new(T))),
	}
	vb.Bind()
	d.BufferData(driver.ArrayBuffer, bytesOf(vertices), usage)
	return vb
}

// ID returns the driver handle, 0 after Close.
func (vb *VertexBuffer) ID() uint32 { return vb.id }

// Len returns the number of vertices uploaded.
func (vb *VertexBuffer) Len() int { return vb.count }

// Stride returns the size of one vertex record in bytes.
func (vb *VertexBuffer) Stride() int { return vb.stride }

// Bind makes the buffer the current array buffer.
func (vb *VertexBuffer) Bind() { vb.d.BindBuffer(driver.ArrayBuffer, vb.id) }

// Close deletes the buffer.
func (vb *VertexBuffer) Close() {
	if vb.id == 0 {
		return
	}
	vb.d.DeleteBuffer(vb.id)
	vb.id = 0
}

// Index is the set of supported index element types.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// IndexBuffer owns an element array buffer.
type IndexBuffer struct {
	d     driver.Driver
	id    uint32
	count int32
	kind  driver.Enum
}

// NewIndexBuffer creates an element array buffer, binds it and uploads
// indices. The element array binding is recorded in the currently bound
// vertex array.
func NewIndexBuffer[I Index](d driver.Driver, indices []I, usage driver.Enum) *IndexBuffer {
	ib := &IndexBuffer{
		d:     d,
		id:    d.GenBuffer(),
		count: int32(len(indices)),
		kind:  indexType[I](),
	}
	ib.Bind()
	d.BufferData(driver.ElementArrayBuffer, bytesOf(indices), usage)
	return ib
}

// ID returns the driver handle, 0 after Close.
func (ib *IndexBuffer) ID() uint32 { return ib.id }

// Count returns the number of indices.
func (ib *IndexBuffer) Count() int32 { return ib.count }

// Type returns the index element type (UnsignedByte, UnsignedShort or
// UnsignedInt).
func (ib *IndexBuffer) Type() driver.Enum { return ib.kind }

// Bind makes the buffer the current element array buffer.
func (ib *IndexBuffer) Bind() { ib.d.BindBuffer(driver.ElementArrayBuffer, ib.id) }

// Draw issues an indexed draw of all indices with the given primitive mode.
func (ib *IndexBuffer) Draw(mode driver.Enum) {
	ib.d.DrawElements(mode, ib.count, ib.kind, 0)
}

// Close deletes the buffer.
func (ib *IndexBuffer) Close() {
	if ib.id == 0 {
		return
	}
	ib.d.DeleteBuffer(ib.id)
	ib.id = 0
}

func indexType[I Index]() driver.Enum {
	switch unsafe.Sizeof(*new(I)) {
	case 1:
		return driver.UnsignedByte
	case 2:
		return driver.UnsignedShort
	default:
		return driver.UnsignedInt
	}
}

// bytesOf reinterprets a slice of plain values as its backing bytes.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(s[0])))
}
