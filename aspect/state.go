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
)

// VisibleAspect shows or hides a component.
type VisibleAspect struct {
	anyComponent
	noModelUpdate
	Type VisibleType
}

// Ensure VisibleAspect implements Definition.
var _ Definition = VisibleAspect{}

// Name implements apis.AspectDefinition.
func (VisibleAspect) Name() string { return apis.VisibleAspect }

// CreateAspect implements Definition.
func (a VisibleAspect) CreateAspect() apis.Aspect {
	switch a.Type {
	case DynamicVisible:
		return Named(apis.VisibleAspect)
	case Invisible:
		return Of(apis.VisibleAspect, false)
	default:
		return Of(apis.VisibleAspect, true)
	}
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a VisibleAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	return modelToUI(a.CreateAspect(), d, w, apis.VisibleSetter.SetVisible)
}

// EnabledAspect enables or disables a component.
type EnabledAspect struct {
	anyComponent
	noModelUpdate
	Type EnabledType
}

// Ensure EnabledAspect implements Definition.
var _ Definition = EnabledAspect{}

// Name implements apis.AspectDefinition.
func (EnabledAspect) Name() string { return apis.EnabledAspect }

// CreateAspect implements Definition.
func (a EnabledAspect) CreateAspect() apis.Aspect {
	switch a.Type {
	case DynamicEnabled:
		return Named(apis.EnabledAspect)
	case Disabled:
		return Of(apis.EnabledAspect, false)
	default:
		return Of(apis.EnabledAspect, true)
	}
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a EnabledAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	return modelToUI(a.CreateAspect(), d, w, apis.EnabledSetter.SetEnabled)
}

// RequiredAspect marks a component required.
type RequiredAspect struct {
	anyComponent
	noModelUpdate
	Type RequiredType
}

// Ensure RequiredAspect implements Definition.
var _ Definition = RequiredAspect{}

// Name implements apis.AspectDefinition.
func (RequiredAspect) Name() string { return apis.RequiredAspect }

// CreateAspect implements Definition.
func (a RequiredAspect) CreateAspect() apis.Aspect {
	switch a.Type {
	case DynamicRequired:
		return Named(apis.RequiredAspect)
	case NotRequired:
		return Of(apis.RequiredAspect, false)
	default:
		return Of(apis.RequiredAspect, true)
	}
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a RequiredAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	if a.Type != RequiredIfEnabled {
		return modelToUI(a.CreateAspect(), d, w, apis.RequiredSetter.SetRequired)
	}
	enabled, err := capability[apis.EnabledGetter](apis.EnabledAspect, w)
	if err != nil {
		return nil, err
	}
	return modelToUI(a.CreateAspect(), d, w, func(c apis.RequiredSetter, required bool) {
		c.SetRequired(required && enabled.Enabled())
	})
}
