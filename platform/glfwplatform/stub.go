// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogl

package glfwplatform

import "github.com/gogpu/gl2d"

// Platform is unavailable in nogl builds.
type Platform struct {
	gl2d.Platform
}

// New returns ErrUnavailable in nogl builds.
func New() (*Platform, error) {
	return nil, ErrUnavailable
}
