// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfwplatform is the GLFW windowing platform for gl2d.
//
// Importing the package registers the "glfw" platform and locks the main
// goroutine to the main OS thread, which GLFW requires:
//
//	import _ "github.com/gogpu/gl2d/platform/glfwplatform"
//
//	ctx := gl2d.NewContext(gl2d.DefaultPlatform())
//
// Windows get OpenGL contexts and the driver is the go-gl OpenGL 4.3 core
// binding. Building with the nogl tag removes the cgo dependency; New then
// returns ErrUnavailable and no platform is registered.
package glfwplatform

import "errors"

// Name is the registry name of the GLFW platform.
const Name = "glfw"

// ErrUnavailable is returned by New in builds without OpenGL support.
var ErrUnavailable = errors.New("glfwplatform: built without OpenGL support (nogl)")
