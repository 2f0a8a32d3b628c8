// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

// Enum is an OpenGL-style enumerant. The constants in this package carry
// the OpenGL values so implementations over a real GL can pass them through.
type Enum = uint32

// Scalar and index types.
const (
	UnsignedByte  Enum = 0x1401
	UnsignedShort Enum = 0x1403
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
)

// Shader stages.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
)

// Buffer targets and usage hints.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893

	StreamDraw  Enum = 0x88E0
	StaticDraw  Enum = 0x88E4
	DynamicDraw Enum = 0x88E8
)

// Texture targets, parameters and values.
const (
	Texture2D Enum = 0x0DE1
	Texture0  Enum = 0x84C0

	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803

	Nearest            Enum = 0x2600
	Linear             Enum = 0x2601
	LinearMipmapLinear Enum = 0x2703
	Repeat             Enum = 0x2901
	ClampToEdge        Enum = 0x812F

	RGBA Enum = 0x1908
)

// Capabilities and blend factors.
const (
	Blend            Enum = 0x0BE2
	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303
)

// Clear mask bits.
const (
	DepthBufferBit Enum = 0x0100
	ColorBufferBit Enum = 0x4000
)

// Primitive modes.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
)

// Driver is the backend graphics API consumed as an opaque command sink.
//
// All methods must be called from the thread that owns the current
// rendering surface. Object handles are driver-assigned; 0 is never a
// valid handle.
type Driver interface {
	// Version returns the driver version string.
	Version() string

	// CreateShader creates an empty shader object for the given stage.
	CreateShader(stage Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	// ShaderCompiled reports the compile status of the last CompileShader.
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramLinked reports the link status of the last LinkProgram.
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// GetUniformLocation returns -1 when the program has no active uniform
	// with the given name.
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, transpose bool, m *[16]float32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, kind Enum, normalized bool, stride int32, offset uintptr)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	GenTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexParameteri(target, pname Enum, param int32)
	// TexImage2D uploads tightly packed 8-bit RGBA pixels.
	TexImage2D(target Enum, width, height int32, pixels []byte)
	GenerateMipmap(target Enum)
	DeleteTexture(texture uint32)

	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, kind Enum, offset uintptr)
}

// Severity classifies a driver debug message.
type Severity int

// Debug message severities, lowest first.
const (
	SeverityNotification Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNotification:
		return "notification"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// DebugMessenger is implemented by drivers that can report debug output.
type DebugMessenger interface {
	// SetDebugCallback installs fn as the receiver of debug messages.
	// Passing nil disables debug output.
	SetDebugCallback(fn func(severity Severity, message string))
}
