// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogl

package glfwplatform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/driver"
	"github.com/gogpu/gl2d/driver/gldriver"
)

func init() {
	// GLFW event handling and context creation must stay on the main
	// thread.
	runtime.LockOSThread()

	gl2d.RegisterPlatform(Name, func() gl2d.Platform {
		p, err := New()
		if err != nil {
			return nil
		}
		return p
	})
}

// Platform drives GLFW windows with OpenGL contexts.
type Platform struct{}

var _ gl2d.Platform = (*Platform)(nil)

// New returns the GLFW platform.
func New() (*Platform, error) {
	return &Platform{}, nil
}

// Name implements gl2d.Platform.
func (*Platform) Name() string { return Name }

// Init implements gl2d.Platform. Must be called on the main thread.
func (*Platform) Init() error {
	return glfw.Init()
}

// Terminate implements gl2d.Platform.
func (*Platform) Terminate() {
	glfw.Terminate()
}

// CreateSurface implements gl2d.Platform.
func (*Platform) CreateSurface(cfg gl2d.WindowConfig) (gl2d.Surface, error) {
	glfw.DefaultWindowHints()
	applyHints(cfg)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &surface{win: win}, nil
}

func applyHints(cfg gl2d.WindowConfig) {
	h := cfg.Hints
	if h.Major > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, h.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, h.Minor)
	}
	switch h.Profile {
	case gl2d.ProfileCore:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case gl2d.ProfileCompat:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(h.Debug))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// LoadDriver implements gl2d.Platform by loading the OpenGL function
// pointers for the current context.
func (*Platform) LoadDriver() (driver.Driver, error) {
	d, err := gldriver.Load()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// PollEvents implements gl2d.Platform.
func (*Platform) PollEvents() {
	glfw.PollEvents()
}

// Time implements gl2d.Platform.
func (*Platform) Time() float64 {
	return glfw.GetTime()
}

type surface struct {
	win *glfw.Window
}

func (s *surface) MakeCurrent() { s.win.MakeContextCurrent() }

func (s *surface) Destroy() { s.win.Destroy() }

func (s *surface) ShouldClose() bool { return s.win.ShouldClose() }

func (s *surface) Size() (width, height int) { return s.win.GetFramebufferSize() }

func (s *surface) SwapBuffers() { s.win.SwapBuffers() }

// SetSwapInterval applies to the current context, which the caller has
// made this one.
func (s *surface) SetSwapInterval(interval int) { glfw.SwapInterval(interval) }

func (s *surface) SetSizeCallback(fn func(width, height int)) {
	if fn == nil {
		s.win.SetFramebufferSizeCallback(nil)
		return
	}
	s.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}
