// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogl

package gldriver

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/gogpu/gl2d/driver"
)

// Driver forwards driver.Driver calls to the OpenGL functions loaded by Load.
type Driver struct {
	debug func(driver.Severity, string)
}

var (
	_ driver.Driver         = (*Driver)(nil)
	_ driver.DebugMessenger = (*Driver)(nil)
)

// Load resolves the OpenGL function pointers for the current context.
// A context must be current on the calling thread. Load has to be called
// again after the windowing library is re-initialised, since the function
// addresses may change.
func Load() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gldriver: load OpenGL functions: %w", err)
	}
	return &Driver{}, nil
}

// Version implements driver.Driver.
func (*Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// CreateShader implements driver.Driver.
func (*Driver) CreateShader(stage driver.Enum) uint32 { return gl.CreateShader(stage) }

// ShaderSource implements driver.Driver.
func (*Driver) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

// CompileShader implements driver.Driver.
func (*Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

// ShaderCompiled implements driver.Driver.
func (*Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog implements driver.Driver.
func (*Driver) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return trimLog(buf)
}

// DeleteShader implements driver.Driver.
func (*Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

// CreateProgram implements driver.Driver.
func (*Driver) CreateProgram() uint32 { return gl.CreateProgram() }

// AttachShader implements driver.Driver.
func (*Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

// DetachShader implements driver.Driver.
func (*Driver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

// LinkProgram implements driver.Driver.
func (*Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

// ProgramLinked implements driver.Driver.
func (*Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog implements driver.Driver.
func (*Driver) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return trimLog(buf)
}

// UseProgram implements driver.Driver.
func (*Driver) UseProgram(program uint32) { gl.UseProgram(program) }

// DeleteProgram implements driver.Driver.
func (*Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

// GetUniformLocation implements driver.Driver.
func (*Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform1f implements driver.Driver.
func (*Driver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

// Uniform1i implements driver.Driver.
func (*Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

// Uniform2f implements driver.Driver.
func (*Driver) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }

// Uniform3f implements driver.Driver.
func (*Driver) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

// Uniform4f implements driver.Driver.
func (*Driver) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

// UniformMatrix4fv implements driver.Driver.
func (*Driver) UniformMatrix4fv(location int32, transpose bool, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

// EnableVertexAttribArray implements driver.Driver.
func (*Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

// VertexAttribPointer implements driver.Driver.
func (*Driver) VertexAttribPointer(index uint32, size int32, kind driver.Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, kind, normalized, stride, offset)
}

// GenVertexArray implements driver.Driver.
func (*Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray implements driver.Driver.
func (*Driver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

// DeleteVertexArray implements driver.Driver.
func (*Driver) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

// GenBuffer implements driver.Driver.
func (*Driver) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// BindBuffer implements driver.Driver.
func (*Driver) BindBuffer(target driver.Enum, buffer uint32) { gl.BindBuffer(target, buffer) }

// BufferData implements driver.Driver.
func (*Driver) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data), ptr, usage)
}

// DeleteBuffer implements driver.Driver.
func (*Driver) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

// GenTexture implements driver.Driver.
func (*Driver) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

// ActiveTexture implements driver.Driver.
func (*Driver) ActiveTexture(unit driver.Enum) { gl.ActiveTexture(unit) }

// BindTexture implements driver.Driver.
func (*Driver) BindTexture(target driver.Enum, texture uint32) { gl.BindTexture(target, texture) }

// TexParameteri implements driver.Driver.
func (*Driver) TexParameteri(target, pname driver.Enum, param int32) {
	gl.TexParameteri(target, pname, param)
}

// TexImage2D implements driver.Driver.
func (*Driver) TexImage2D(target driver.Enum, width, height int32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
}

// GenerateMipmap implements driver.Driver.
func (*Driver) GenerateMipmap(target driver.Enum) { gl.GenerateMipmap(target) }

// DeleteTexture implements driver.Driver.
func (*Driver) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

// Enable implements driver.Driver.
func (*Driver) Enable(capability driver.Enum) { gl.Enable(capability) }

// BlendFunc implements driver.Driver.
func (*Driver) BlendFunc(sfactor, dfactor driver.Enum) { gl.BlendFunc(sfactor, dfactor) }

// Viewport implements driver.Driver.
func (*Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

// ClearColor implements driver.Driver.
func (*Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

// Clear implements driver.Driver.
func (*Driver) Clear(mask driver.Enum) { gl.Clear(mask) }

// DrawArrays implements driver.Driver.
func (*Driver) DrawArrays(mode driver.Enum, first, count int32) { gl.DrawArrays(mode, first, count) }

// DrawElements implements driver.Driver.
func (*Driver) DrawElements(mode driver.Enum, count int32, kind driver.Enum, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, kind, offset)
}

// SetDebugCallback implements driver.DebugMessenger. It needs a context
// created with the debug hint; on other contexts the driver simply emits
// nothing.
func (d *Driver) SetDebugCallback(fn func(driver.Severity, string)) {
	d.debug = fn
	if fn == nil {
		gl.Disable(gl.DEBUG_OUTPUT)
		return
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(d.onDebugMessage, nil)
}

func (d *Driver) onDebugMessage(_, _, _, severity uint32, _ int32, message string, _ unsafe.Pointer) {
	if d.debug == nil {
		return
	}
	d.debug(severityOf(severity), message)
}

func severityOf(glSeverity uint32) driver.Severity {
	switch glSeverity {
	case gl.DEBUG_SEVERITY_HIGH:
		return driver.SeverityHigh
	case gl.DEBUG_SEVERITY_MEDIUM:
		return driver.SeverityMedium
	case gl.DEBUG_SEVERITY_LOW:
		return driver.SeverityLow
	default:
		return driver.SeverityNotification
	}
}

// trimLog cuts an info log buffer at its NUL terminator.
func trimLog(buf []byte) string {
	s := string(buf)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
