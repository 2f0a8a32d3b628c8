// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

// WindowOption configures a Window during creation.
// Use functional options to customize Window behavior.
//
// Example:
//
//	// Default: OpenGL 4.3 core debug context, vsync on
//	win, err := ctx.NewWindow("Example", 800, 600)
//
//	// OpenGL 3.3 core without vsync
//	win, err := ctx.NewWindow("Example", 800, 600,
//		gl2d.WithHints(gl2d.Hints{Major: 3, Minor: 3, Profile: gl2d.ProfileCore}),
//		gl2d.WithVSync(false))
type WindowOption func(*WindowConfig)

// defaultWindowConfig returns the configuration used when no options are
// given.
func defaultWindowConfig(title string, width, height int) WindowConfig {
	return WindowConfig{
		Title:     title,
		Width:     width,
		Height:    height,
		Hints:     DefaultHints(),
		VSync:     true,
		Resizable: true,
	}
}

// WithHints sets the requested rendering context.
func WithHints(h Hints) WindowOption {
	return func(c *WindowConfig) {
		c.Hints = h
	}
}

// WithVSync enables or disables waiting for vertical blank on swap.
func WithVSync(enabled bool) WindowOption {
	return func(c *WindowConfig) {
		c.VSync = enabled
	}
}

// WithResizable controls whether the user can resize the window.
func WithResizable(resizable bool) WindowOption {
	return func(c *WindowConfig) {
		c.Resizable = resizable
	}
}
