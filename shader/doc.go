// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader builds linked shader programs and caches their uniform
// locations.
//
// Build is transactional: it either returns a linked, bound Program or a
// *BuildError, and in the failure case every shader and program object it
// created has already been deleted.
//
//	prog, err := shader.Build(d, shader.File("basic.vert"), shader.File("basic.frag"))
//	if err != nil {
//		var be *shader.BuildError
//		if errors.As(err, &be) {
//			log.Printf("%s stage: %s", be.Stage, be.Log)
//		}
//		return err
//	}
//	defer prog.Close()
//
//	prog.SetFloat("time", float32(ctx.Time()))
//
// Uniform lookups are memoized per program. A name the program does not
// declare resolves to NotFound, is logged once as a warning, and setters
// skip it.
package shader
