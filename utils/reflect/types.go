/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"
)

// DefaultMaxIndirect bounds pointer unwrapping in Indirect.
const DefaultMaxIndirect = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Indirect unwraps pointer types and returns the nearest named inner type.
//
// Unwrapping stops after DefaultMaxIndirect levels. Only pointers are
// unwrapped: a PMO is always a struct (or a named type) reached through
// zero or more pointers, never a container.
func Indirect(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && i < DefaultMaxIndirect; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr || t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// TypeName returns a short "pkg.Type" name for t, keeping pointer stars.
// It is used for diagnostics only.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	stars := ""
	for t.Kind() == reflect.Ptr {
		stars += "*"
		t = t.Elem()
	}
	name := stripTypeParams(t.Name())
	if name == "" {
		return stars + t.String()
	}
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return stars + name
}

// TypeNameOf is TypeName for the dynamic type of v.
func TypeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return TypeName(reflect.TypeOf(v))
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// Same reports whether a and b denote the same object.
//
// Reference-like values (pointers, maps, channels, slices) are compared by
// address; other comparable values by equality. Values of non-comparable
// types are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
