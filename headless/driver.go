// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/gl2d/driver"
)

// Compiler checks the source of one shader stage. A non-nil error fails
// the compile and its text becomes the shader info log.
type Compiler func(stage driver.Enum, source string) error

// NagaCompiler compiles WGSL sources with naga.
func NagaCompiler(_ driver.Enum, source string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("empty shader source")
	}
	if _, err := naga.Compile(source); err != nil {
		return err
	}
	return nil
}

// AcceptAll is a Compiler that accepts any non-empty source.
func AcceptAll(_ driver.Enum, source string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("empty shader source")
	}
	return nil
}

// Option configures a Driver.
type Option func(*Driver)

// WithCompiler replaces the shader compiler (NagaCompiler by default).
func WithCompiler(c Compiler) Option {
	return func(d *Driver) {
		d.compiler = c
	}
}

// AttribPointer records an attribute description issued to the driver.
type AttribPointer struct {
	Index      uint32
	Enabled    bool
	Size       int32
	Kind       driver.Enum
	Normalized bool
	Stride     int32
	Offset     uintptr
	// Buffer is the array buffer bound when the pointer was described.
	Buffer uint32
}

type shaderObject struct {
	stage    driver.Enum
	source   string
	compiled bool
	log      string
}

type programObject struct {
	attached []uint32
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32][]float32
}

type bufferObject struct {
	data []byte
}

// TextureImage is the state of a texture object.
type TextureImage struct {
	Width, Height int32
	Pixels        []byte
	Params        map[driver.Enum]int32
	Mipmapped     bool
}

// Driver is an in-memory driver.Driver. It allocates handles, tracks the
// objects that are alive and counts every call, so tests can assert on
// exactly what a caller did to the backend.
//
// Shader linking follows WGSL conventions: the vertex shader must declare a
// @vertex entry point and the fragment shader a @fragment entry point.
// Uniforms are discovered from `var<uniform> name` and GLSL-style
// `uniform type name;` declarations, in source order.
type Driver struct {
	compiler Compiler
	next     uint32
	calls    map[string]int

	shaders      map[uint32]*shaderObject
	programs     map[uint32]*programObject
	buffers      map[uint32]*bufferObject
	vertexArrays map[uint32]bool
	textures     map[uint32]*TextureImage

	currentProgram uint32
	boundVAO       uint32
	boundTexture   uint32
	boundBuffers   map[driver.Enum]uint32
	attribs        map[uint32]AttribPointer
	enabled        map[driver.Enum]bool
	viewport       [4]int32

	debug func(driver.Severity, string)
}

var (
	_ driver.Driver         = (*Driver)(nil)
	_ driver.DebugMessenger = (*Driver)(nil)
)

// NewDriver creates an empty driver.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		compiler:     NagaCompiler,
		calls:        make(map[string]int),
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		buffers:      make(map[uint32]*bufferObject),
		vertexArrays: make(map[uint32]bool),
		textures:     make(map[uint32]*TextureImage),
		boundBuffers: make(map[driver.Enum]uint32),
		attribs:      make(map[uint32]AttribPointer),
		enabled:      make(map[driver.Enum]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) call(name string) { d.calls[name]++ }

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

// Calls returns how many times the named method has been called.
func (d *Driver) Calls(method string) int { return d.calls[method] }

// LiveShaders returns the number of shader objects not yet deleted.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

// LivePrograms returns the number of program objects not yet deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

// LiveBuffers returns the number of buffer objects not yet deleted.
func (d *Driver) LiveBuffers() int { return len(d.buffers) }

// LiveVertexArrays returns the number of vertex arrays not yet deleted.
func (d *Driver) LiveVertexArrays() int { return len(d.vertexArrays) }

// LiveTextures returns the number of textures not yet deleted.
func (d *Driver) LiveTextures() int { return len(d.textures) }

// CurrentProgram returns the program bound by the last UseProgram.
func (d *Driver) CurrentProgram() uint32 { return d.currentProgram }

// BufferContents returns the data last uploaded to a buffer.
func (d *Driver) BufferContents(buffer uint32) ([]byte, bool) {
	b, ok := d.buffers[buffer]
	if !ok {
		return nil, false
	}
	return b.data, true
}

// Attribs returns the described attributes ordered by index.
func (d *Driver) Attribs() []AttribPointer {
	out := make([]AttribPointer, 0, len(d.attribs))
	for _, a := range d.attribs {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b AttribPointer) int { return int(a.Index) - int(b.Index) })
	return out
}

// ViewportRect returns the last viewport rectangle.
func (d *Driver) ViewportRect() (x, y, width, height int32) {
	return d.viewport[0], d.viewport[1], d.viewport[2], d.viewport[3]
}

// IsEnabled reports whether a capability was enabled.
func (d *Driver) IsEnabled(capability driver.Enum) bool { return d.enabled[capability] }

// UniformValue returns the last value set at location on program.
func (d *Driver) UniformValue(program uint32, location int32) ([]float32, bool) {
	p, ok := d.programs[program]
	if !ok {
		return nil, false
	}
	v, ok := p.values[location]
	return v, ok
}

// EmitDebug delivers a debug message as a real driver would.
func (d *Driver) EmitDebug(severity driver.Severity, message string) {
	if d.debug != nil {
		d.debug(severity, message)
	}
}

// SetDebugCallback implements driver.DebugMessenger.
func (d *Driver) SetDebugCallback(fn func(driver.Severity, string)) {
	d.call("SetDebugCallback")
	d.debug = fn
}

// Version implements driver.Driver.
func (d *Driver) Version() string {
	d.call("Version")
	return "4.3 headless (gl2d)"
}

// CreateShader implements driver.Driver.
func (d *Driver) CreateShader(stage driver.Enum) uint32 {
	d.call("CreateShader")
	if stage != driver.VertexShader && stage != driver.FragmentShader {
		return 0
	}
	id := d.handle()
	d.shaders[id] = &shaderObject{stage: stage}
	return id
}

// ShaderSource implements driver.Driver.
func (d *Driver) ShaderSource(shader uint32, src string) {
	d.call("ShaderSource")
	if s, ok := d.shaders[shader]; ok {
		s.source = src
	}
}

// CompileShader implements driver.Driver.
func (d *Driver) CompileShader(shader uint32) {
	d.call("CompileShader")
	s, ok := d.shaders[shader]
	if !ok {
		return
	}
	if err := d.compiler(s.stage, s.source); err != nil {
		s.compiled = false
		s.log = err.Error()
		return
	}
	s.compiled = true
	s.log = ""
}

// ShaderCompiled implements driver.Driver.
func (d *Driver) ShaderCompiled(shader uint32) bool {
	d.call("ShaderCompiled")
	s, ok := d.shaders[shader]
	return ok && s.compiled
}

// ShaderInfoLog implements driver.Driver.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	d.call("ShaderInfoLog")
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

// DeleteShader implements driver.Driver.
func (d *Driver) DeleteShader(shader uint32) {
	d.call("DeleteShader")
	delete(d.shaders, shader)
}

// CreateProgram implements driver.Driver.
func (d *Driver) CreateProgram() uint32 {
	d.call("CreateProgram")
	id := d.handle()
	d.programs[id] = &programObject{
		uniforms: make(map[string]int32),
		values:   make(map[int32][]float32),
	}
	return id
}

// AttachShader implements driver.Driver.
func (d *Driver) AttachShader(program, shader uint32) {
	d.call("AttachShader")
	p, ok := d.programs[program]
	if !ok || d.shaders[shader] == nil || slices.Contains(p.attached, shader) {
		return
	}
	p.attached = append(p.attached, shader)
}

// DetachShader implements driver.Driver.
func (d *Driver) DetachShader(program, shader uint32) {
	d.call("DetachShader")
	if p, ok := d.programs[program]; ok {
		p.attached = slices.DeleteFunc(p.attached, func(s uint32) bool { return s == shader })
	}
}

var (
	wgslUniform = regexp.MustCompile(`var<uniform>\s+([A-Za-z_][A-Za-z0-9_]*)`)
	glslUniform = regexp.MustCompile(`(?m)^\s*uniform\s+[A-Za-z_][A-Za-z0-9_]*\s+([A-Za-z_][A-Za-z0-9_]*)\s*;`)
)

// LinkProgram implements driver.Driver.
func (d *Driver) LinkProgram(program uint32) {
	d.call("LinkProgram")
	p, ok := d.programs[program]
	if !ok {
		return
	}
	p.linked = false
	p.uniforms = make(map[string]int32)

	var vs, fs *shaderObject
	for _, id := range p.attached {
		s := d.shaders[id]
		if s == nil {
			continue
		}
		if !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled", id)
			return
		}
		switch s.stage {
		case driver.VertexShader:
			vs = s
		case driver.FragmentShader:
			fs = s
		}
	}
	switch {
	case vs == nil:
		p.log = "error: no vertex shader attached"
		return
	case fs == nil:
		p.log = "error: no fragment shader attached"
		return
	case isWGSL(vs.source) && !strings.Contains(vs.source, "@vertex"):
		p.log = "error: vertex shader has no @vertex entry point"
		return
	case isWGSL(fs.source) && !strings.Contains(fs.source, "@fragment"):
		p.log = "error: fragment shader has no @fragment entry point"
		return
	}

	var next int32
	for _, src := range []string{vs.source, fs.source} {
		for _, re := range []*regexp.Regexp{wgslUniform, glslUniform} {
			for _, m := range re.FindAllStringSubmatch(src, -1) {
				if _, dup := p.uniforms[m[1]]; dup {
					continue
				}
				p.uniforms[m[1]] = next
				next++
			}
		}
	}
	p.linked = true
	p.log = ""
}

// isWGSL reports whether a source looks like WGSL rather than GLSL.
func isWGSL(src string) bool {
	return !strings.Contains(src, "#version")
}

// ProgramLinked implements driver.Driver.
func (d *Driver) ProgramLinked(program uint32) bool {
	d.call("ProgramLinked")
	p, ok := d.programs[program]
	return ok && p.linked
}

// ProgramInfoLog implements driver.Driver.
func (d *Driver) ProgramInfoLog(program uint32) string {
	d.call("ProgramInfoLog")
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

// UseProgram implements driver.Driver.
func (d *Driver) UseProgram(program uint32) {
	d.call("UseProgram")
	d.currentProgram = program
}

// DeleteProgram implements driver.Driver.
func (d *Driver) DeleteProgram(program uint32) {
	d.call("DeleteProgram")
	delete(d.programs, program)
	if d.currentProgram == program {
		d.currentProgram = 0
	}
}

// GetUniformLocation implements driver.Driver.
func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.call("GetUniformLocation")
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Driver) setUniform(location int32, v ...float32) {
	if location < 0 {
		return
	}
	if p, ok := d.programs[d.currentProgram]; ok {
		p.values[location] = v
	}
}

// Uniform1f implements driver.Driver.
func (d *Driver) Uniform1f(location int32, v float32) {
	d.call("Uniform1f")
	d.setUniform(location, v)
}

// Uniform1i implements driver.Driver.
func (d *Driver) Uniform1i(location int32, v int32) {
	d.call("Uniform1i")
	d.setUniform(location, float32(v))
}

// Uniform2f implements driver.Driver.
func (d *Driver) Uniform2f(location int32, x, y float32) {
	d.call("Uniform2f")
	d.setUniform(location, x, y)
}

// Uniform3f implements driver.Driver.
func (d *Driver) Uniform3f(location int32, x, y, z float32) {
	d.call("Uniform3f")
	d.setUniform(location, x, y, z)
}

// Uniform4f implements driver.Driver.
func (d *Driver) Uniform4f(location int32, x, y, z, w float32) {
	d.call("Uniform4f")
	d.setUniform(location, x, y, z, w)
}

// UniformMatrix4fv implements driver.Driver.
func (d *Driver) UniformMatrix4fv(location int32, _ bool, m *[16]float32) {
	d.call("UniformMatrix4fv")
	d.setUniform(location, m[:]...)
}

// EnableVertexAttribArray implements driver.Driver.
func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.call("EnableVertexAttribArray")
	a := d.attribs[index]
	a.Index = index
	a.Enabled = true
	d.attribs[index] = a
}

// VertexAttribPointer implements driver.Driver.
func (d *Driver) VertexAttribPointer(index uint32, size int32, kind driver.Enum, normalized bool, stride int32, offset uintptr) {
	d.call("VertexAttribPointer")
	a := d.attribs[index]
	a.Index = index
	a.Size = size
	a.Kind = kind
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = d.boundBuffers[driver.ArrayBuffer]
	d.attribs[index] = a
}

// GenVertexArray implements driver.Driver.
func (d *Driver) GenVertexArray() uint32 {
	d.call("GenVertexArray")
	id := d.handle()
	d.vertexArrays[id] = true
	return id
}

// BindVertexArray implements driver.Driver.
func (d *Driver) BindVertexArray(vao uint32) {
	d.call("BindVertexArray")
	d.boundVAO = vao
}

// DeleteVertexArray implements driver.Driver.
func (d *Driver) DeleteVertexArray(vao uint32) {
	d.call("DeleteVertexArray")
	delete(d.vertexArrays, vao)
	if d.boundVAO == vao {
		d.boundVAO = 0
	}
}

// GenBuffer implements driver.Driver.
func (d *Driver) GenBuffer() uint32 {
	d.call("GenBuffer")
	id := d.handle()
	d.buffers[id] = &bufferObject{}
	return id
}

// BindBuffer implements driver.Driver.
func (d *Driver) BindBuffer(target driver.Enum, buffer uint32) {
	d.call("BindBuffer")
	d.boundBuffers[target] = buffer
}

// BufferData implements driver.Driver.
func (d *Driver) BufferData(target driver.Enum, data []byte, _ driver.Enum) {
	d.call("BufferData")
	if b, ok := d.buffers[d.boundBuffers[target]]; ok {
		b.data = slices.Clone(data)
	}
}

// DeleteBuffer implements driver.Driver.
func (d *Driver) DeleteBuffer(buffer uint32) {
	d.call("DeleteBuffer")
	delete(d.buffers, buffer)
	for target, b := range d.boundBuffers {
		if b == buffer {
			d.boundBuffers[target] = 0
		}
	}
}

// GenTexture implements driver.Driver.
func (d *Driver) GenTexture() uint32 {
	d.call("GenTexture")
	id := d.handle()
	d.textures[id] = &TextureImage{Params: make(map[driver.Enum]int32)}
	return id
}

// Texture returns the state of a texture object.
func (d *Driver) Texture(texture uint32) (*TextureImage, bool) {
	t, ok := d.textures[texture]
	return t, ok
}

// ActiveTexture implements driver.Driver.
func (d *Driver) ActiveTexture(driver.Enum) { d.call("ActiveTexture") }

// BindTexture implements driver.Driver.
func (d *Driver) BindTexture(_ driver.Enum, texture uint32) {
	d.call("BindTexture")
	d.boundTexture = texture
}

// TexParameteri implements driver.Driver.
func (d *Driver) TexParameteri(_, pname driver.Enum, param int32) {
	d.call("TexParameteri")
	if t, ok := d.textures[d.boundTexture]; ok {
		t.Params[pname] = param
	}
}

// TexImage2D implements driver.Driver.
func (d *Driver) TexImage2D(_ driver.Enum, width, height int32, pixels []byte) {
	d.call("TexImage2D")
	if t, ok := d.textures[d.boundTexture]; ok {
		t.Width, t.Height = width, height
		t.Pixels = slices.Clone(pixels)
	}
}

// GenerateMipmap implements driver.Driver.
func (d *Driver) GenerateMipmap(driver.Enum) {
	d.call("GenerateMipmap")
	if t, ok := d.textures[d.boundTexture]; ok {
		t.Mipmapped = true
	}
}

// DeleteTexture implements driver.Driver.
func (d *Driver) DeleteTexture(texture uint32) {
	d.call("DeleteTexture")
	delete(d.textures, texture)
	if d.boundTexture == texture {
		d.boundTexture = 0
	}
}

// Enable implements driver.Driver.
func (d *Driver) Enable(capability driver.Enum) {
	d.call("Enable")
	d.enabled[capability] = true
}

// BlendFunc implements driver.Driver.
func (d *Driver) BlendFunc(_, _ driver.Enum) { d.call("BlendFunc") }

// Viewport implements driver.Driver.
func (d *Driver) Viewport(x, y, width, height int32) {
	d.call("Viewport")
	d.viewport = [4]int32{x, y, width, height}
}

// ClearColor implements driver.Driver.
func (d *Driver) ClearColor(_, _, _, _ float32) { d.call("ClearColor") }

// Clear implements driver.Driver.
func (d *Driver) Clear(driver.Enum) { d.call("Clear") }

// DrawArrays implements driver.Driver.
func (d *Driver) DrawArrays(driver.Enum, int32, int32) { d.call("DrawArrays") }

// DrawElements implements driver.Driver.
func (d *Driver) DrawElements(driver.Enum, int32, driver.Enum, uintptr) { d.call("DrawElements") }
