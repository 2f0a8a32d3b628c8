// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the graphics API that gl2d drives.
//
// The Driver interface is a thin, OpenGL-shaped command sink: object
// creation and deletion for shaders, programs, buffers, vertex arrays and
// textures, attribute description, uniform query/set and
// viewport/clear/draw calls. gl2d never inspects what a driver does with
// the commands, it only relies on the sequencing and status queries.
//
// Implementations:
//   - driver/gldriver: OpenGL 4.3 core via go-gl (cgo, disabled by the nogl tag)
//   - headless: in-memory driver for tests and CI, compiling WGSL with naga
package driver
