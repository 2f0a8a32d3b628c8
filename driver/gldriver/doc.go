// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gldriver implements driver.Driver on OpenGL 4.3 core using
// github.com/go-gl/gl.
//
// The package requires cgo and the system OpenGL headers. Build with the
// nogl tag to leave it out; Load then reports ErrUnavailable.
//
// Load must run after a context has been made current (see
// platform/glfwplatform), and again after every teardown of the windowing
// library.
package gldriver

import "errors"

// ErrUnavailable is returned by Load when the package was built with nogl.
var ErrUnavailable = errors.New("gldriver: OpenGL support not compiled in (nogl)")
