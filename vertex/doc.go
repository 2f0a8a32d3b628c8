// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vertex derives vertex attribute layouts from Go struct types.
//
// A vertex record is a struct of 0 to 6 tightly packed fields, each a
// float32 or an array of 2, 3 or 4 float32 values (f32.Vec2, f32.Vec3 and
// f32.Vec4 from golang.org/x/image/math/f32 being the usual choice):
//
//	type RectVertex struct {
//		Position  f32.Vec2 // location 0, offset 0
//		TexCoords f32.Vec2 // location 1, offset 8
//		Color     f32.Vec4 // location 2, offset 16
//	}
//
//	var rectLayout = vertex.MustLayoutOf[RectVertex]() // stride 32
//
// With a vertex array and array buffer bound, rectLayout.Bind(d) enables
// and describes each attribute. Records can also declare their schema
// explicitly by implementing Declarer.
package vertex
