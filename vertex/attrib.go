// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl2d/driver"
)

// floatSize is the size of one attribute component in bytes.
const floatSize = 4

// Type is a supported vertex field type.
type Type uint8

// Supported field types. Every component is a 32-bit float.
const (
	// Float is a float32 field.
	Float Type = iota + 1
	// Vec2 is a [2]float32 field, such as f32.Vec2.
	Vec2
	// Vec3 is a [3]float32 field, such as f32.Vec3.
	Vec3
	// Vec4 is a [4]float32 field, such as f32.Vec4.
	Vec4
)

// Components returns the number of float components, 0 for an invalid Type.
func (t Type) Components() int32 {
	if t < Float || t > Vec4 {
		return 0
	}
	return int32(t)
}

// Kind returns the scalar kind of each component.
func (t Type) Kind() driver.Enum {
	return driver.Float
}

// Size returns the field size in bytes.
func (t Type) Size() uintptr {
	return uintptr(t.Components()) * floatSize
}

// Format returns the equivalent WebGPU vertex format.
func (t Type) Format() gputypes.VertexFormat {
	switch t {
	case Float:
		return gputypes.VertexFormatFloat32
	case Vec2:
		return gputypes.VertexFormatFloat32x2
	case Vec3:
		return gputypes.VertexFormatFloat32x3
	default:
		return gputypes.VertexFormatFloat32x4
	}
}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Lookup maps a Go field type to its attribute type. float32 maps to Float
// and any array of 2, 3 or 4 float32 values (named or not) to Vec2, Vec3
// or Vec4.
func Lookup(rt reflect.Type) (Type, bool) {
	switch rt.Kind() {
	case reflect.Float32:
		return Float, true
	case reflect.Array:
		if rt.Elem().Kind() != reflect.Float32 {
			return 0, false
		}
		switch rt.Len() {
		case 2:
			return Vec2, true
		case 3:
			return Vec3, true
		case 4:
			return Vec4, true
		}
	}
	return 0, false
}

// The offset arithmetic in LayoutOf relies on the vector types carrying no
// padding.
func init() {
	checkSize(Float, unsafe.Sizeof(float32(0)))
	checkSize(Vec2, unsafe.Sizeof(f32.Vec2{}))
	checkSize(Vec3, unsafe.Sizeof(f32.Vec3{}))
	checkSize(Vec4, unsafe.Sizeof(f32.Vec4{}))
}

func checkSize(t Type, size uintptr) {
	if size != t.Size() {
		panic(fmt.Sprintf("vertex: %s has size %d, want %d", t, size, t.Size()))
	}
}
