// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gl2d/driver"
)

// Build failure sentinels. A *BuildError matches the sentinel of its Kind
// with errors.Is.
var (
	// ErrSourceRead is returned when a shader source file cannot be read.
	ErrSourceRead = errors.New("shader: source read failed")

	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader: compile failed")

	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("shader: link failed")
)

// Kind classifies a build failure.
type Kind int

const (
	// KindSourceRead means a source file could not be read.
	KindSourceRead Kind = iota + 1
	// KindCompile means a stage failed to compile.
	KindCompile
	// KindLink means the program failed to link.
	KindLink
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSourceRead:
		return "source read"
	case KindCompile:
		return "compile"
	case KindLink:
		return "link"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindSourceRead:
		return ErrSourceRead
	case KindCompile:
		return ErrCompile
	case KindLink:
		return ErrLink
	}
	return nil
}

// Stage identifies a shader stage.
type Stage int

const (
	// StageVertex is the vertex stage.
	StageVertex Stage = iota
	// StageFragment is the fragment stage.
	StageFragment
	// StageProgram is used for link failures, which involve both stages.
	StageProgram
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageProgram:
		return "program"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// kind returns the driver shader type of the stage.
func (s Stage) kind() driver.Enum {
	if s == StageFragment {
		return driver.FragmentShader
	}
	return driver.VertexShader
}

// BuildError describes a failed Build.
type BuildError struct {
	Kind  Kind
	Stage Stage

	// Source describes the failing source ("inline" or a file path). For
	// link failures it names both sources.
	Source string

	// Log is the raw diagnostic text reported by the driver.
	Log string

	// Err is the underlying I/O error of a source read failure.
	Err error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("shader: %s %s failed (%s)", e.Stage, e.Kind, e.Source)
	switch {
	case e.Err != nil:
		return msg + ": " + e.Err.Error()
	case e.Log != "":
		return msg + ":\n" + e.Log
	default:
		return msg
	}
}

// Unwrap returns the underlying error, if any.
func (e *BuildError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for the error's kind.
func (e *BuildError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
