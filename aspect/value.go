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

package aspect

import (
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/dispatcher"
	uref "dirpx.dev/linkki/utils/reflect"
)

// ValueAspect binds the value of an input in both directions. The
// component is made read-only while the property cannot be written.
type ValueAspect struct {
	anyComponent
}

// Ensure ValueAspect implements Definition.
var _ Definition = ValueAspect{}

// Name implements apis.AspectDefinition.
func (ValueAspect) Name() string { return apis.ValueAspect }

// CreateAspect implements Definition.
func (ValueAspect) CreateAspect() apis.Aspect { return Named(apis.ValueAspect) }

// CreateUIUpdater implements apis.AspectDefinition.
func (ValueAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	c, err := capability[apis.ValueHolder](apis.ValueAspect, w)
	if err != nil {
		return nil, err
	}
	ro, _ := c.(apis.ReadOnlySetter)
	return func() error {
		v, err := dispatcher.GetValue(d)
		if err != nil {
			return err
		}
		c.SetValue(v)
		if ro != nil {
			ro.SetReadOnly(!dispatcher.CanSetValue(d))
		}
		return nil
	}, nil
}

// InitModelUpdate implements apis.AspectDefinition.
func (ValueAspect) InitModelUpdate(d apis.Dispatcher, w apis.ComponentWrapper, u apis.ModelUpdater) error {
	c, err := capability[apis.ValueHolder](apis.ValueAspect, w)
	if err != nil {
		return err
	}
	c.OnValueChange(func(v any) {
		u.Update(func() error { return dispatcher.SetValue(d, v) })
	})
	return nil
}

// AvailableValuesAspect sets the selectable items of a component. Items are
// only replaced when they differ, so an unchanged list does not reset the
// selection.
type AvailableValuesAspect struct {
	anyComponent
	noModelUpdate
	Type   AvailableValuesType
	Values []any
}

// Ensure AvailableValuesAspect implements Definition.
var _ Definition = AvailableValuesAspect{}

// Name implements apis.AspectDefinition.
func (AvailableValuesAspect) Name() string { return apis.AvailableValuesAspect }

// CreateAspect implements Definition.
func (a AvailableValuesAspect) CreateAspect() apis.Aspect {
	switch a.Type {
	case StaticValues:
		return Of(apis.AvailableValuesAspect, a.Values)
	case NoValues:
		return Of(apis.AvailableValuesAspect, []any{})
	default:
		return Named(apis.AvailableValuesAspect)
	}
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a AvailableValuesAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	c, err := capability[apis.ItemsHolder](apis.AvailableValuesAspect, w)
	if err != nil {
		return nil, err
	}
	as := a.CreateAspect()
	return func() error {
		v, err := d.Pull(as)
		if err != nil {
			return err
		}
		items, err := dispatcher.ToSlice(v)
		if err != nil {
			return err
		}
		if !SameItems(c.Items(), items) {
			c.SetItems(items)
		}
		return nil
	}, nil
}

// SameItems reports whether a and b hold the same items in the same order.
func SameItems(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !uref.Same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// InvokeAspect invokes the property when the component is clicked.
type InvokeAspect struct {
	anyComponent
}

// Ensure InvokeAspect implements Definition.
var _ Definition = InvokeAspect{}

// Name implements apis.AspectDefinition.
func (InvokeAspect) Name() string { return apis.ValueAspect }

// CreateAspect implements Definition.
func (InvokeAspect) CreateAspect() apis.Aspect { return Named(apis.ValueAspect) }

// CreateUIUpdater implements apis.AspectDefinition. Invocation has no model
// to UI direction.
func (InvokeAspect) CreateUIUpdater(apis.Dispatcher, apis.ComponentWrapper) (func() error, error) {
	return func() error { return nil }, nil
}

// InitModelUpdate implements apis.AspectDefinition.
func (InvokeAspect) InitModelUpdate(d apis.Dispatcher, w apis.ComponentWrapper, u apis.ModelUpdater) error {
	c, err := capability[apis.Clicker](apis.ValueAspect, w)
	if err != nil {
		return err
	}
	c.OnClick(func() {
		u.Update(func() error { return dispatcher.Invoke(d) })
	})
	return nil
}
