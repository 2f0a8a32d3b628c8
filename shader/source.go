// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"os"

	"golang.org/x/text/encoding/unicode"
)

// Source is the source of one shader stage: a file path or inline text.
type Source struct {
	path   string
	text   string
	inline bool
}

// File returns a Source read from path when the program is built.
func File(path string) Source {
	return Source{path: path}
}

// Inline returns a Source holding the shader text itself.
func Inline(text string) Source {
	return Source{text: text, inline: true}
}

// IsInline reports whether the source holds its text directly.
func (s Source) IsInline() bool { return s.inline }

// String returns the file path, or "inline" for inline sources.
func (s Source) String() string {
	if s.inline {
		return "inline"
	}
	return s.path
}

// load returns the shader text. File sources are read as UTF-8.
func (s Source) load() (string, error) {
	if s.inline {
		return s.text, nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	// UTF8BOM drops a leading byte order mark.
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
