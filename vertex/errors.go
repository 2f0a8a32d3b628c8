// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import "errors"

// Layout derivation errors. They describe the record type, not a runtime
// condition, so MustLayoutOf turns them into a panic at initialization.
var (
	// ErrNotStruct is returned for vertex record types that are not structs.
	ErrNotStruct = errors.New("vertex: record type is not a struct")

	// ErrTooManyFields is returned for records with more than MaxFields fields.
	ErrTooManyFields = errors.New("vertex: too many fields")

	// ErrUnsupportedType is returned for a field whose type has no attribute
	// mapping.
	ErrUnsupportedType = errors.New("vertex: unsupported field type")

	// ErrPadding is returned when fields are not tightly packed.
	ErrPadding = errors.New("vertex: record is not tightly packed")

	// ErrSchemaMismatch is returned when a Declarer's declared fields do not
	// match the struct.
	ErrSchemaMismatch = errors.New("vertex: declared fields do not match struct")

	// ErrShaderInput is returned by Layout.CheckWGSL when a vertex shader
	// input does not match the layout.
	ErrShaderInput = errors.New("vertex: shader input does not match layout")
)
