// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl2d renders 2D geometry by driving an immediate-mode GPU API
// through thin owned handles.
//
// # Overview
//
// The library is organized into:
//   - gl2d: Context (windowing library and driver lifecycle), Window, and
//     thin handles for vertex arrays, buffers and textures
//   - vertex: vertex attribute layouts derived from Go struct types
//   - shader: transactional shader program construction and uniform caching
//   - driver: the OpenGL-shaped command sink everything above talks to
//   - driver/gldriver, platform/glfwplatform: OpenGL 4.3 + GLFW backends
//   - headless: in-memory driver and platform for tests and CI
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gl2d"
//		_ "github.com/gogpu/gl2d/platform/glfwplatform"
//		"github.com/gogpu/gl2d/shader"
//		"github.com/gogpu/gl2d/vertex"
//	)
//
//	type RectVertex struct {
//		Position  f32.Vec2
//		TexCoords f32.Vec2
//		Color     f32.Vec4
//	}
//
//	var rectLayout = vertex.MustLayoutOf[RectVertex]()
//
//	ctx := gl2d.NewContext(gl2d.DefaultPlatform())
//	win, err := ctx.NewWindow("Example", 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	d := win.Driver()
//	va := gl2d.NewVertexArray(d)
//	vb := gl2d.NewVertexBuffer(d, vertices, driver.StaticDraw)
//	ib := gl2d.NewIndexBuffer(d, indices, driver.StaticDraw)
//	rectLayout.Bind(d)
//
//	prog, err := shader.Build(d, shader.File("basic.vert"), shader.File("basic.frag"))
//
// # Threading
//
// Everything is single-threaded: a Context, its windows, and every object
// created from a window's driver must be used from the thread owning the
// current rendering surface (the main OS thread for GLFW). There is no
// internal locking on the lifecycle state.
//
// # Logging
//
// gl2d logs through log/slog and is silent by default; see SetLogger.
package gl2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
