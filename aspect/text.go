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

// text builds the aspect of a caption, label or tooltip.
func text(name string, t TextType, value string) apis.Aspect {
	switch t {
	case DynamicText:
		return Named(name)
	case NoText:
		return Of(name, nil)
	default:
		return Of(name, value)
	}
}

// stringOrEmpty maps the nil value of NoText to "".
func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}

// textUpdater pulls a and hands the text to set.
func textUpdater(a apis.Aspect, d apis.Dispatcher, set func(string)) func() error {
	return func() error {
		if v, ok := a.Value(); ok && v == nil {
			set("")
			return nil
		}
		v, err := d.Pull(a)
		if err != nil {
			return err
		}
		set(stringOrEmpty(v))
		return nil
	}
}

// CaptionAspect sets the caption of a component, such as a button text or a
// section title.
type CaptionAspect struct {
	anyComponent
	noModelUpdate
	Type TextType
	Text string
}

// Ensure CaptionAspect implements Definition.
var _ Definition = CaptionAspect{}

// Name implements apis.AspectDefinition.
func (CaptionAspect) Name() string { return apis.CaptionAspect }

// CreateAspect implements Definition.
func (a CaptionAspect) CreateAspect() apis.Aspect {
	return text(apis.CaptionAspect, a.Type, a.Text)
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a CaptionAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	c, err := capability[apis.CaptionSetter](apis.CaptionAspect, w)
	if err != nil {
		return nil, err
	}
	return textUpdater(a.CreateAspect(), d, c.SetCaption), nil
}

// LabelAspect sets the label shown next to a field. It only applies to
// wrappers of type apis.WrapperField.
type LabelAspect struct {
	noModelUpdate
	Type TextType
	Text string
}

// Ensure LabelAspect implements Definition.
var _ Definition = LabelAspect{}

// Name implements apis.AspectDefinition.
func (LabelAspect) Name() string { return apis.LabelAspect }

// Supports implements apis.AspectDefinition.
func (LabelAspect) Supports(t *apis.WrapperType) bool {
	return t.AssignableTo(apis.WrapperField)
}

// CreateAspect implements Definition.
func (a LabelAspect) CreateAspect() apis.Aspect {
	return text(apis.LabelAspect, a.Type, a.Text)
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a LabelAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	return textUpdater(a.CreateAspect(), d, w.SetLabel), nil
}

// TooltipAspect sets the tooltip of a component.
type TooltipAspect struct {
	anyComponent
	noModelUpdate
	Type TextType
	Text string
}

// Ensure TooltipAspect implements Definition.
var _ Definition = TooltipAspect{}

// Name implements apis.AspectDefinition.
func (TooltipAspect) Name() string { return apis.TooltipAspect }

// CreateAspect implements Definition.
func (a TooltipAspect) CreateAspect() apis.Aspect {
	return text(apis.TooltipAspect, a.Type, a.Text)
}

// CreateUIUpdater implements apis.AspectDefinition.
func (a TooltipAspect) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	c, err := capability[apis.TooltipSetter](apis.TooltipAspect, w)
	if err != nil {
		return nil, err
	}
	return textUpdater(a.CreateAspect(), d, c.SetTooltip), nil
}
