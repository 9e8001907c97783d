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

package dispatcher

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/linkki/apis"
)

// ErrUnexpectedType is returned when an aspect value has the wrong type.
var ErrUnexpectedType = errors.New("linkki(dispatcher): unexpected aspect value type")

// GetValue pulls the value aspect.
func GetValue(d apis.Dispatcher) (any, error) {
	return d.Pull(apis.DynamicAspect(apis.ValueAspect))
}

// SetValue pushes v as the value aspect.
func SetValue(d apis.Dispatcher, v any) error {
	return d.Push(apis.NewAspect(apis.ValueAspect, v))
}

// CanSetValue reports whether SetValue can succeed.
func CanSetValue(d apis.Dispatcher) bool {
	return d.IsPushable(apis.NewAspect(apis.ValueAspect, nil))
}

// Invoke calls the property as an action.
func Invoke(d apis.Dispatcher) error {
	return d.Push(apis.DynamicAspect(apis.ValueAspect))
}

// IsEnabled pulls the dynamic enabled aspect.
func IsEnabled(d apis.Dispatcher) (bool, error) {
	return Pull[bool](d, apis.DynamicAspect(apis.EnabledAspect))
}

// IsVisible pulls the dynamic visible aspect.
func IsVisible(d apis.Dispatcher) (bool, error) {
	return Pull[bool](d, apis.DynamicAspect(apis.VisibleAspect))
}

// IsRequired pulls the dynamic required aspect.
func IsRequired(d apis.Dispatcher) (bool, error) {
	return Pull[bool](d, apis.DynamicAspect(apis.RequiredAspect))
}

// AvailableValues pulls the dynamic available values aspect. Any slice or
// array is accepted; nil yields an empty list.
func AvailableValues(d apis.Dispatcher) ([]any, error) {
	v, err := d.Pull(apis.DynamicAspect(apis.AvailableValuesAspect))
	if err != nil {
		return nil, err
	}
	return ToSlice(v)
}

// Pull pulls a and asserts its value to T.
func Pull[T any](d apis.Dispatcher, a apis.Aspect) (T, error) {
	var zero T
	v, err := d.Pull(a)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s of %s is %T, want %T", ErrUnexpectedType, a, d.Property(), v, zero)
	}
	return t, nil
}

// ToSlice converts a slice or array value to []any.
func ToSlice(v any) ([]any, error) {
	if v == nil {
		return []any{}, nil
	}
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a list", ErrUnexpectedType, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
