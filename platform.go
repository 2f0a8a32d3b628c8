// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import "github.com/gogpu/gl2d/driver"

// Platform is the windowing backend a Context drives.
//
// The Context owns the call order: Init before the first CreateSurface,
// LoadDriver only while a surface is current, Terminate after the last
// surface is destroyed. Implementations do not need to track this
// themselves.
type Platform interface {
	// Name returns the platform identifier (e.g., "glfw", "headless").
	Name() string

	// Init initializes the windowing library.
	Init() error

	// Terminate shuts the windowing library down. Every surface has been
	// destroyed when Terminate is called.
	Terminate()

	// CreateSurface creates a native window with a rendering context.
	CreateSurface(cfg WindowConfig) (Surface, error)

	// LoadDriver resolves the graphics API for the current context.
	LoadDriver() (driver.Driver, error)

	// PollEvents processes pending window events.
	PollEvents()

	// Time returns seconds elapsed since Init.
	Time() float64
}

// Surface is a native window with its rendering context.
type Surface interface {
	// MakeCurrent binds the surface's context to the calling thread.
	MakeCurrent()

	// Destroy releases the native window.
	Destroy()

	ShouldClose() bool

	// Size returns the framebuffer size in pixels.
	Size() (width, height int)

	SwapBuffers()

	// SetSwapInterval sets the number of vblanks between swaps on the
	// current context.
	SetSwapInterval(interval int)

	// SetSizeCallback registers fn to be called with the new framebuffer
	// size after a resize.
	SetSizeCallback(fn func(width, height int))
}

// Profile selects the OpenGL context profile.
type Profile int

const (
	// ProfileAny lets the platform pick.
	ProfileAny Profile = iota
	// ProfileCore requests a core profile context.
	ProfileCore
	// ProfileCompat requests a compatibility profile context.
	ProfileCompat
)

// Hints describe the requested rendering context.
type Hints struct {
	// Major and Minor are the requested context version. Zero means the
	// platform default.
	Major, Minor int

	Profile Profile

	// Debug requests a debug context so the driver can report messages.
	Debug bool
}

// DefaultHints requests an OpenGL 4.3 core debug context.
func DefaultHints() Hints {
	return Hints{Major: 4, Minor: 3, Profile: ProfileCore, Debug: true}
}

// WindowConfig is the resolved configuration passed to CreateSurface.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Hints     Hints
	VSync     bool
	Resizable bool
}
