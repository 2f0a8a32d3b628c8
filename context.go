// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import (
	"fmt"
	"slices"

	"github.com/gogpu/gl2d/driver"
)

// State is the lifecycle state of a Context.
type State int

const (
	// StateUninitialized means the windowing library is not initialized.
	StateUninitialized State = iota
	// StateLibraryInitialized means the library is up but no driver has
	// been loaded yet.
	StateLibraryInitialized
	// StateReady means the driver's function pointers are loaded.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLibraryInitialized:
		return "library-initialized"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Context tracks windowing library initialization, driver loading and the
// number of live windows for one Platform.
//
// The first window initializes the library and loads the driver; closing
// the last window tears the library down. The driver is reloaded after a
// full teardown because the backend may return different function
// addresses on re-initialization.
//
// A Context is not safe for concurrent use. It must be driven from the
// thread that owns the rendering surfaces.
type Context struct {
	platform Platform

	libraryInitialized bool
	driverLoaded       bool
	drv                driver.Driver
	liveWindows        int

	windows []*Window
	current *Window
}

// NewContext creates a Context for the given platform. No platform calls
// are made until the first window is created.
func NewContext(p Platform) *Context {
	return &Context{platform: p}
}

// Platform returns the platform the context drives.
func (c *Context) Platform() Platform {
	return c.platform
}

// State returns the current lifecycle state.
func (c *Context) State() State {
	switch {
	case c.driverLoaded:
		return StateReady
	case c.libraryInitialized:
		return StateLibraryInitialized
	default:
		return StateUninitialized
	}
}

// LiveWindows returns the number of windows created and not yet closed.
func (c *Context) LiveWindows() int {
	return c.liveWindows
}

// Driver returns the loaded driver, or nil unless the context is Ready.
func (c *Context) Driver() driver.Driver {
	return c.drv
}

// Time returns seconds since the windowing library was initialized.
func (c *Context) Time() float64 {
	if !c.libraryInitialized {
		return 0
	}
	return c.platform.Time()
}

// NewWindow creates a window and makes its context current.
//
// On failure every partially created global state is rolled back: a
// library initialized for this call is terminated again, and a window
// whose driver could not be loaded is destroyed.
func (c *Context) NewWindow(title string, width, height int, opts ...WindowOption) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cfg := defaultWindowConfig(title, width, height)
	for _, opt := range opts {
		opt(&cfg)
	}

	if !c.libraryInitialized {
		if err := c.platform.Init(); err != nil {
			Logger().Error("gl2d: windowing library init failed", "platform", c.platform.Name(), "err", err)
			return nil, fmt.Errorf("%w: %w", ErrLibraryInit, err)
		}
		c.libraryInitialized = true
		Logger().Debug("gl2d: windowing library initialized", "platform", c.platform.Name())
	}

	surface, err := c.platform.CreateSurface(cfg)
	if err != nil {
		if c.liveWindows == 0 {
			c.terminate()
		}
		Logger().Error("gl2d: window creation failed", "title", title, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	surface.MakeCurrent()

	if !c.driverLoaded {
		drv, err := c.platform.LoadDriver()
		if err != nil {
			surface.Destroy()
			c.terminate()
			Logger().Error("gl2d: function pointer load failed", "platform", c.platform.Name(), "err", err)
			return nil, fmt.Errorf("%w: %w", ErrProcLoad, err)
		}
		c.drv = drv
		c.driverLoaded = true
		Logger().Debug("gl2d: driver loaded", "version", drv.Version())
	}

	c.liveWindows++

	w := &Window{ctx: c, surface: surface, drv: c.drv}
	c.windows = append(c.windows, w)
	c.current = w

	// Debug output is per-context state, like the blend defaults below.
	c.routeDebugOutput()
	w.SetVSync(cfg.VSync)
	surface.SetSizeCallback(w.handleResize)
	w.FillViewport()

	c.drv.Enable(driver.Blend)
	c.drv.BlendFunc(driver.SrcAlpha, driver.OneMinusSrcAlpha)

	return w, nil
}

// release is called by Window.Close after the surface has been destroyed.
// If w was current, the most recently created remaining window becomes
// current so the shared driver keeps a context to talk to.
func (c *Context) release(w *Window) {
	c.liveWindows--
	c.windows = slices.DeleteFunc(c.windows, func(o *Window) bool { return o == w })
	if c.liveWindows == 0 {
		c.current = nil
		c.terminate()
		return
	}
	if c.current == w {
		c.current = nil
		c.windows[len(c.windows)-1].MakeCurrent()
	}
}

// Current returns the window whose context is current, or nil.
func (c *Context) Current() *Window {
	return c.current
}

// terminate shuts the library down and forgets the loaded driver. No
// surface is alive at this point, so the driver must not be called.
func (c *Context) terminate() {
	c.platform.Terminate()
	c.libraryInitialized = false
	c.driverLoaded = false
	c.drv = nil
	Logger().Debug("gl2d: windowing library terminated", "platform", c.platform.Name())
}

// routeDebugOutput forwards driver debug messages to the logger.
func (c *Context) routeDebugOutput() {
	m, ok := c.drv.(driver.DebugMessenger)
	if !ok {
		return
	}
	m.SetDebugCallback(func(severity driver.Severity, message string) {
		l := Logger()
		switch severity {
		case driver.SeverityHigh:
			l.Error("gl2d: driver error", "message", message)
		case driver.SeverityLow, driver.SeverityMedium:
			l.Warn("gl2d: driver warning", "severity", severity.String(), "message", message)
		default:
			l.Debug("gl2d: driver notification", "message", message)
		}
	})
}
