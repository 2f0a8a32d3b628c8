// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogl

package gldriver

import "github.com/gogpu/gl2d/driver"

// Driver is unavailable under the nogl build tag.
type Driver struct {
	driver.Driver
}

// Load always fails under the nogl build tag.
func Load() (*Driver, error) {
	return nil, ErrUnavailable
}
