// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides an in-memory driver and windowing platform.
//
// The Driver records every object it allocates and every call it receives,
// which makes it the test double for the shader, vertex and gl2d packages.
// By default it compiles shader sources as WGSL with naga, so build
// failures carry real diagnostics.
//
// Importing the package registers the "headless" platform:
//
//	import _ "github.com/gogpu/gl2d/headless"
//
//	p, err := gl2d.OpenPlatform("headless")
package headless
