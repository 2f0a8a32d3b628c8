// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"time"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/driver"
)

// Name is the registry name of the headless platform.
const Name = "headless"

func init() {
	gl2d.RegisterPlatform(Name, func() gl2d.Platform {
		return NewPlatform()
	})
}

var (
	// ErrNotInitialized is returned by CreateSurface before Init.
	ErrNotInitialized = errors.New("headless: platform not initialized")

	// ErrNoCurrentContext is returned by LoadDriver when no surface is
	// current.
	ErrNoCurrentContext = errors.New("headless: no current context")
)

// Platform is an in-memory gl2d.Platform. Every LoadDriver call returns a
// fresh Driver, mirroring a real backend whose function pointers must be
// reloaded after re-initialization.
//
// The Fail fields inject failures: while set, the corresponding call
// returns the error.
type Platform struct {
	FailInit   error
	FailCreate error
	FailLoad   error

	driverOpts []Option

	initialized bool
	start       time.Time
	current     *Surface
	surfaces    int
	drivers     []*Driver

	initCalls      int
	terminateCalls int
	createCalls    int
	loadCalls      int
	pollCalls      int
}

var _ gl2d.Platform = (*Platform)(nil)

// NewPlatform creates a headless platform. The options are applied to every
// driver it loads.
func NewPlatform(opts ...Option) *Platform {
	return &Platform{driverOpts: opts}
}

// Name implements gl2d.Platform.
func (p *Platform) Name() string { return Name }

// Init implements gl2d.Platform.
func (p *Platform) Init() error {
	p.initCalls++
	if p.FailInit != nil {
		return p.FailInit
	}
	p.initialized = true
	p.start = time.Now()
	return nil
}

// Terminate implements gl2d.Platform.
func (p *Platform) Terminate() {
	p.terminateCalls++
	p.initialized = false
	p.current = nil
}

// CreateSurface implements gl2d.Platform.
func (p *Platform) CreateSurface(cfg gl2d.WindowConfig) (gl2d.Surface, error) {
	p.createCalls++
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	if p.FailCreate != nil {
		return nil, p.FailCreate
	}
	p.surfaces++
	return &Surface{p: p, cfg: cfg, width: cfg.Width, height: cfg.Height, swapInterval: -1}, nil
}

// LoadDriver implements gl2d.Platform.
func (p *Platform) LoadDriver() (driver.Driver, error) {
	p.loadCalls++
	if p.current == nil {
		return nil, ErrNoCurrentContext
	}
	if p.FailLoad != nil {
		return nil, p.FailLoad
	}
	d := NewDriver(p.driverOpts...)
	p.drivers = append(p.drivers, d)
	return d, nil
}

// PollEvents implements gl2d.Platform.
func (p *Platform) PollEvents() { p.pollCalls++ }

// Time implements gl2d.Platform.
func (p *Platform) Time() float64 {
	if !p.initialized {
		return 0
	}
	return time.Since(p.start).Seconds()
}

// Initialized reports whether the platform is between Init and Terminate.
func (p *Platform) Initialized() bool { return p.initialized }

// InitCalls returns how many times Init was called.
func (p *Platform) InitCalls() int { return p.initCalls }

// TerminateCalls returns how many times Terminate was called.
func (p *Platform) TerminateCalls() int { return p.terminateCalls }

// CreateCalls returns how many times CreateSurface was called.
func (p *Platform) CreateCalls() int { return p.createCalls }

// LoadCalls returns how many times LoadDriver was called.
func (p *Platform) LoadCalls() int { return p.loadCalls }

// PollCalls returns how many times PollEvents was called.
func (p *Platform) PollCalls() int { return p.pollCalls }

// LiveSurfaces returns the number of surfaces not yet destroyed.
func (p *Platform) LiveSurfaces() int { return p.surfaces }

// Drivers returns every driver loaded so far, oldest first.
func (p *Platform) Drivers() []*Driver { return p.drivers }

// Current returns the current surface, or nil.
func (p *Platform) Current() *Surface { return p.current }

// Surface is a headless gl2d.Surface.
type Surface struct {
	p             *Platform
	cfg           gl2d.WindowConfig
	width, height int
	destroyed     bool
	closeRequest  bool
	swapInterval  int
	swaps         int
	onSize        func(width, height int)
}

var _ gl2d.Surface = (*Surface)(nil)

// Config returns the configuration the surface was created with.
func (s *Surface) Config() gl2d.WindowConfig { return s.cfg }

// MakeCurrent implements gl2d.Surface.
func (s *Surface) MakeCurrent() {
	if !s.destroyed {
		s.p.current = s
	}
}

// Destroy implements gl2d.Surface.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.p.surfaces--
	if s.p.current == s {
		s.p.current = nil
	}
}

// ShouldClose implements gl2d.Surface.
func (s *Surface) ShouldClose() bool { return s.closeRequest }

// RequestClose simulates the user closing the window.
func (s *Surface) RequestClose() { s.closeRequest = true }

// Size implements gl2d.Surface.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// SwapBuffers implements gl2d.Surface.
func (s *Surface) SwapBuffers() { s.swaps++ }

// Swaps returns how many times SwapBuffers was called.
func (s *Surface) Swaps() int { return s.swaps }

// SetSwapInterval implements gl2d.Surface.
func (s *Surface) SetSwapInterval(interval int) { s.swapInterval = interval }

// SwapInterval returns the last swap interval set, -1 if never set.
func (s *Surface) SwapInterval() int { return s.swapInterval }

// SetSizeCallback implements gl2d.Surface.
func (s *Surface) SetSizeCallback(fn func(width, height int)) { s.onSize = fn }

// Resize simulates a framebuffer resize and runs the size callback.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
	if s.onSize != nil {
		s.onSize(width, height)
	}
}
