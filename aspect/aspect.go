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

// Package aspect provides the aspect definitions attached to bound elements.
//
// A definition either fixes the aspect value when descriptors are read
// (static) or leaves it absent, in which case the value is pulled from the
// dispatcher on every refresh (dynamic). Definitions hold no runtime state;
// CreateUIUpdater returns a fresh closure per binding.
package aspect

import (
	"errors"
	"fmt"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/dispatcher"
)

// ErrUnsupportedComponent is returned when a component lacks the capability
// an aspect needs. It is always joined with apis.ErrConfiguration.
var ErrUnsupportedComponent = errors.New("linkki(aspect): component lacks capability")

// Definition is an aspect definition that can state its aspect.
type Definition interface {
	apis.AspectDefinition
	// CreateAspect returns the aspect with its static value, or without a
	// value if it must be derived on every refresh.
	CreateAspect() apis.Aspect
}

// Of returns a static aspect.
func Of(name string, v any) apis.Aspect { return apis.NewAspect(name, v) }

// Named returns a dynamic aspect.
func Named(name string) apis.Aspect { return apis.DynamicAspect(name) }

// capability asserts the component of w to C.
func capability[C any](aspect string, w apis.ComponentWrapper) (C, error) {
	c, ok := w.Component().(C)
	if !ok {
		var zero C
		return zero, fmt.Errorf("%w: %w: %s needs %T on %T", apis.ErrConfiguration,
			ErrUnsupportedComponent, name(aspect), (*C)(nil), w.Component())
	}
	return c, nil
}

// modelToUI returns an updater pulling a as T and handing it to set.
func modelToUI[C any, T any](a apis.Aspect, d apis.Dispatcher, w apis.ComponentWrapper, set func(C, T)) (func() error, error) {
	c, err := capability[C](a.Name, w)
	if err != nil {
		return nil, err
	}
	return func() error {
		v, err := dispatcher.Pull[T](d, a)
		if err != nil {
			return err
		}
		set(c, v)
		return nil
	}, nil
}

// noModelUpdate is embedded by definitions without a UI to model direction.
type noModelUpdate struct{}

func (noModelUpdate) InitModelUpdate(apis.Dispatcher, apis.ComponentWrapper, apis.ModelUpdater) error {
	return nil
}

// anyComponent is embedded by definitions supporting every wrapper type.
type anyComponent struct{}

func (anyComponent) Supports(*apis.WrapperType) bool { return true }

func name(aspect string) string {
	if aspect == apis.ValueAspect {
		return "value"
	}
	return aspect
}
