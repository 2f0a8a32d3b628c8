// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"
	"reflect"
)

// MaxFields is the largest number of fields a vertex record may have.
const MaxFields = 6

// Declarer is implemented by vertex records that declare their schema
// explicitly instead of having it read from the struct shape. The declared
// list must match the struct fields one to one.
type Declarer interface {
	VertexFields() []Type
}

var declarerType = reflect.TypeFor[Declarer]()

// Arity returns the number of fields of the vertex record type rt.
//
// A struct with no fields has arity 0, which is a valid empty layout. More
// than MaxFields fields is rejected rather than truncated.
func Arity(rt reflect.Type) (int, error) {
	if rt.Kind() != reflect.Struct {
		return 0, fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}
	n := rt.NumField()
	if n > MaxFields {
		return 0, fmt.Errorf("%w: %s has %d fields, at most %d are supported", ErrTooManyFields, rt, n, MaxFields)
	}
	return n, nil
}

// declaredFields returns the explicit schema of rt, if it has one.
func declaredFields(rt reflect.Type) ([]Type, bool) {
	switch {
	case rt.Implements(declarerType):
		return reflect.Zero(rt).Interface().(Declarer).VertexFields(), true
	case reflect.PointerTo(rt).Implements(declarerType):
		return reflect.New(rt).Interface().(Declarer).VertexFields(), true
	}
	return nil, false
}
