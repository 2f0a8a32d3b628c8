// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import "github.com/gogpu/gl2d/driver"

// Window is a native window with a current rendering context, created by
// Context.NewWindow. Close releases it; closing the last window of a
// Context tears the windowing library down.
type Window struct {
	ctx     *Context
	surface Surface
	drv     driver.Driver

	onResize func(width, height int)
	closed   bool
}

// Driver returns the driver loaded for the window's context.
func (w *Window) Driver() driver.Driver {
	return w.drv
}

// Context returns the context that created the window.
func (w *Window) Context() *Context {
	return w.ctx
}

// Close destroys the window. Closing an already closed window does nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.surface.Destroy()
	w.ctx.release(w)
}

// Closed reports whether Close has been called.
func (w *Window) Closed() bool {
	return w.closed
}

// ShouldClose reports whether the user asked to close the window. A closed
// window always reports true.
func (w *Window) ShouldClose() bool {
	return w.closed || w.surface.ShouldClose()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	if w.closed {
		return 0, 0
	}
	return w.surface.Size()
}

// Width returns the framebuffer width in pixels.
func (w *Window) Width() int {
	width, _ := w.Size()
	return width
}

// Height returns the framebuffer height in pixels.
func (w *Window) Height() int {
	_, height := w.Size()
	return height
}

// MakeCurrent binds the window's context to the calling thread.
//
// Closing the current window makes the most recently created remaining
// window current.
func (w *Window) MakeCurrent() {
	if w.closed {
		return
	}
	w.surface.MakeCurrent()
	w.ctx.current = w
}

// SetVSync enables or disables waiting for vertical blank on swap. It
// applies to the current context.
func (w *Window) SetVSync(enabled bool) {
	if w.closed {
		return
	}
	interval := 0
	if enabled {
		interval = 1
	}
	w.surface.SetSwapInterval(interval)
}

// FillViewport sets the viewport to cover the whole framebuffer.
func (w *Window) FillViewport() {
	width, height := w.Size()
	w.SetViewport(0, 0, int32(width), int32(height))
}

// SetViewport sets the viewport rectangle.
func (w *Window) SetViewport(x, y, width, height int32) {
	if w.closed {
		return
	}
	w.drv.Viewport(x, y, width, height)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	if w.closed {
		return
	}
	w.surface.SwapBuffers()
}

// PollEvents processes pending events for all windows of the platform.
func (w *Window) PollEvents() {
	if w.closed {
		return
	}
	w.ctx.platform.PollEvents()
}

// OnResize replaces the resize handler. The default handler, restored by
// passing nil, resets the viewport to the new framebuffer size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) handleResize(width, height int) {
	if w.closed {
		return
	}
	if w.onResize != nil {
		w.onResize(width, height)
		return
	}
	w.drv.Viewport(0, 0, int32(width), int32(height))
}
