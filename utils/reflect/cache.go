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
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNilTarget is returned when an accessor is applied to a nil object.
	ErrNilTarget = errors.New("reflect: nil target")
	// ErrIncompatibleValue is returned when a value cannot be assigned to a member.
	ErrIncompatibleValue = errors.New("reflect: incompatible value")
	// ErrPanic wraps a panic recovered while calling a member.
	ErrPanic = errors.New("reflect: member panicked")
)

// Role is what an Accessor is used for.
type Role uint8

const (
	// Getter reads a value: a method without arguments returning T or
	// (T, error), or an exported field.
	Getter Role = iota
	// Setter writes a value: a method with one argument returning nothing
	// or an error, or a settable exported field.
	Setter
	// Action invokes a method without arguments returning nothing or an error.
	Action
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Getter:
		return "getter"
	case Setter:
		return "setter"
	case Action:
		return "action"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Accessor is a resolved member of a type. Accessors are immutable and safe
// for concurrent use.
type Accessor struct {
	// Name is the Go member name.
	Name string
	// Role is the role the accessor was resolved for.
	Role Role
	// Type is the value type read or written. Nil for actions.
	Type reflect.Type

	method   int   // method index on the receiver type, -1 for fields
	field    []int // field index path when method < 0
	hasError bool  // method returns a trailing error
}

// IsField reports whether the accessor reads or writes a struct field.
func (a *Accessor) IsField() bool { return a.method < 0 }

// Read applies a Getter to target.
func (a *Accessor) Read(target any) (v any, err error) {
	defer recoverInto(&err)
	rv, err := receiver(target)
	if err != nil {
		return nil, err
	}
	if a.IsField() {
		f, err := fieldOf(rv, a.field)
		if err != nil {
			return nil, err
		}
		return f.Interface(), nil
	}
	out := rv.Method(a.method).Call(nil)
	if a.hasError {
		if e, _ := out[1].Interface().(error); e != nil {
			return nil, e
		}
	}
	return out[0].Interface(), nil
}

// Write applies a Setter to target.
func (a *Accessor) Write(target any, v any) (err error) {
	defer recoverInto(&err)
	rv, err := receiver(target)
	if err != nil {
		return err
	}
	arg, err := assignable(v, a.Type)
	if err != nil {
		return fmt.Errorf("%w: %s %s", err, a.Name, a.Type)
	}
	if a.IsField() {
		f, err := fieldOf(rv, a.field)
		if err != nil {
			return err
		}
		if !f.CanSet() {
			return fmt.Errorf("%w: field %s is not settable", ErrIncompatibleValue, a.Name)
		}
		f.Set(arg)
		return nil
	}
	return callResult(rv.Method(a.method).Call([]reflect.Value{arg}), a.hasError)
}

// Invoke applies an Action to target.
func (a *Accessor) Invoke(target any) (err error) {
	defer recoverInto(&err)
	rv, err := receiver(target)
	if err != nil {
		return err
	}
	return callResult(rv.Method(a.method).Call(nil), a.hasError)
}

// Cache memoizes member lookups per (type, name, role). The zero value is
// not usable; use NewCache. A Cache is safe for concurrent use and is meant
// to be shared by every binding context of an application.
type Cache struct {
	// m maps cacheKey to *Accessor, or to a nil *Accessor for misses.
	m sync.Map
}

// NewCache returns an empty accessor cache.
func NewCache() *Cache {
	return &Cache{}
}

// cacheKey identifies one lookup.
type cacheKey struct {
	t    reflect.Type
	name string
	role Role
}

// Lookup returns the first of names that resolves on t for role.
func (c *Cache) Lookup(t reflect.Type, role Role, names ...string) (*Accessor, bool) {
	if t == nil {
		return nil, false
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if a := c.lookup(t, name, role); a != nil {
			return a, true
		}
	}
	return nil, false
}

// Has reports whether t declares name for role.
func (c *Cache) Has(t reflect.Type, role Role, name string) bool {
	_, ok := c.Lookup(t, role, name)
	return ok
}

// Len returns the number of memoized lookups, hits and misses alike.
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *Cache) lookup(t reflect.Type, name string, role Role) *Accessor {
	key := cacheKey{t: t, name: name, role: role}
	if v, ok := c.m.Load(key); ok {
		return v.(*Accessor)
	}
	a := resolve(t, name, role)
	v, _ := c.m.LoadOrStore(key, a)
	return v.(*Accessor)
}

// resolve computes an accessor without memoization. Methods win over fields.
func resolve(t reflect.Type, name string, role Role) *Accessor {
	if m, ok := t.MethodByName(name); ok {
		if a := fromMethod(m, role); a != nil {
			return a
		}
		return nil
	}
	if role == Action {
		return nil
	}
	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil
	}
	f, ok := st.FieldByName(name)
	if !ok || !f.IsExported() {
		return nil
	}
	// Fields are only writable through a pointer.
	if role == Setter && t.Kind() != reflect.Ptr {
		return nil
	}
	return &Accessor{Name: name, Role: role, Type: f.Type, method: -1, field: f.Index}
}

func fromMethod(m reflect.Method, role Role) *Accessor {
	// m.Type includes the receiver as first argument.
	in, out := m.Type.NumIn()-1, m.Type.NumOut()
	trailingErr := out > 0 && m.Type.Out(out-1) == errorType
	a := &Accessor{Name: m.Name, Role: role, method: m.Index}
	switch role {
	case Getter:
		if in != 0 {
			return nil
		}
		switch {
		case out == 1 && !trailingErr:
			a.Type = m.Type.Out(0)
		case out == 2 && trailingErr:
			a.Type = m.Type.Out(0)
			a.hasError = true
		default:
			return nil
		}
	case Setter:
		if in != 1 || out > 1 || (out == 1 && !trailingErr) {
			return nil
		}
		a.Type = m.Type.In(1)
		a.hasError = out == 1
	case Action:
		if in != 0 || out > 1 || (out == 1 && !trailingErr) {
			return nil
		}
		a.hasError = out == 1
	}
	return a
}

func receiver(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, ErrNilTarget
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return reflect.Value{}, ErrNilTarget
	}
	return rv, nil
}

func fieldOf(rv reflect.Value, index []int) (reflect.Value, error) {
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	f, err := rv.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNilTarget, err)
	}
	return f, nil
}

// assignable converts v to a value assignable to t. Nil becomes the zero
// value. Conversions are limited to numeric kinds and same-kind types so
// that an int never silently turns into a one-rune string.
func assignable(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if rv.Kind() == t.Kind() && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot use %s as", ErrIncompatibleValue, rv.Type())
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func callResult(out []reflect.Value, hasError bool) error {
	if !hasError {
		return nil
	}
	if e, _ := out[len(out)-1].Interface().(error); e != nil {
		return e
	}
	return nil
}

// recoverInto turns a panic raised by a member into an error wrapping ErrPanic.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("%w: %w", ErrPanic, e)
			return
		}
		*err = fmt.Errorf("%w: %v", ErrPanic, r)
	}
}
