// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl2d

import "errors"

// Window construction errors. The platform's own error is wrapped
// alongside, so both errors.Is(err, ErrWindowCreation) and the cause are
// available.
var (
	// ErrLibraryInit is returned when the windowing library fails to
	// initialize.
	ErrLibraryInit = errors.New("gl2d: windowing library init failed")

	// ErrWindowCreation is returned when the native window cannot be created.
	ErrWindowCreation = errors.New("gl2d: window creation failed")

	// ErrProcLoad is returned when the graphics function pointers cannot be
	// loaded for the new context.
	ErrProcLoad = errors.New("gl2d: function pointer load failed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("gl2d: invalid dimensions")
)

// Platform registry errors.
var (
	// ErrPlatformNotAvailable is returned when a requested platform is not
	// registered.
	ErrPlatformNotAvailable = errors.New("gl2d: platform not available")
)

// Texture errors.
var (
	// ErrTextureLoad is returned when a texture file cannot be read or
	// decoded.
	ErrTextureLoad = errors.New("gl2d: texture load failed")
)
