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

package apis

import "fmt"

// Well-known aspect names.
const (
	// ValueAspect is the name of the aspect holding the property value itself.
	ValueAspect           = ""
	EnabledAspect         = "enabled"
	VisibleAspect         = "visible"
	RequiredAspect        = "required"
	AvailableValuesAspect = "availableValues"
	CaptionAspect         = "caption"
	LabelAspect           = "label"
	TooltipAspect         = "tooltip"
	ComponentTypeAspect   = "componentType"
)

// Aspect is a named fact about a bound property. It either carries a value
// known when the descriptor was read (static) or none, in which case the
// value is derived from the dispatcher on every refresh (dynamic).
// Aspects are immutable.
type Aspect struct {
	// Name identifies the aspect. The empty name is the value aspect.
	Name string

	value   any
	present bool
}

// NewAspect returns an aspect carrying v.
func NewAspect(name string, v any) Aspect {
	return Aspect{Name: name, value: v, present: true}
}

// DynamicAspect returns an aspect without a value.
func DynamicAspect(name string) Aspect {
	return Aspect{Name: name}
}

// Value returns the carried value and whether one is present.
func (a Aspect) Value() (any, bool) {
	return a.value, a.present
}

// HasValue reports whether the aspect carries a value.
func (a Aspect) HasValue() bool {
	return a.present
}

// String implements fmt.Stringer.
func (a Aspect) String() string {
	name := a.Name
	if name == ValueAspect {
		name = "value"
	}
	if a.present {
		return fmt.Sprintf("%s=%v", name, a.value)
	}
	return name
}

// AspectDefinition describes one synchronised facet of a bound element.
// Definitions are created when descriptors are read and hold no runtime
// state; runtime closures are created per binding.
type AspectDefinition interface {
	// Name returns the aspect name the definition works on.
	Name() string

	// Supports reports whether the definition applies to components of
	// wrapper type t. It is evaluated once per binding.
	Supports(t *WrapperType) bool

	// CreateUIUpdater returns the procedure that pushes the current aspect
	// value from d into the component of w.
	CreateUIUpdater(d Dispatcher, w ComponentWrapper) (func() error, error)

	// InitModelUpdate wires UI change events of w back to d. Definitions
	// without a UI to model direction do nothing.
	InitModelUpdate(d Dispatcher, w ComponentWrapper, u ModelUpdater) error
}

// ModelUpdater receives model writes triggered by UI events. Update runs
// push and, if it succeeds, refreshes the owning binding context.
type ModelUpdater interface {
	Update(push func() error)
}

// ModelUpdaterFunc adapts a function to ModelUpdater.
type ModelUpdaterFunc func(push func() error)

// Update implements ModelUpdater.
func (f ModelUpdaterFunc) Update(push func() error) { f(push) }
