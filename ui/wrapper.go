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

package ui

import (
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
)

// Wrap adapts a widget to apis.ComponentWrapper.
func Wrap(c any, t *apis.WrapperType) apis.ComponentWrapper {
	return &wrapper{c: c, t: t}
}

type wrapper struct {
	c any
	t *apis.WrapperType
}

// Ensure wrapper implements apis.ComponentWrapper.
var _ apis.ComponentWrapper = (*wrapper)(nil)

func (w *wrapper) Component() any { return w.c }

func (w *wrapper) Type() *apis.WrapperType { return w.t }

func (w *wrapper) SetLabel(label string) {
	if l, ok := w.c.(interface{ SetLabel(string) }); ok {
		l.SetLabel(label)
	}
}

func (w *wrapper) SetValidationMessages(l message.List) {
	if m, ok := w.c.(interface{ SetMessages(message.List) }); ok {
		m.SetMessages(l)
	}
}

// Definition creates widgets of one kind.
type Definition struct {
	// New creates the widget.
	New func() any
	// Type is the wrapper type of created widgets.
	Type *apis.WrapperType
}

// Ensure Definition implements apis.ComponentDefinition.
var _ apis.ComponentDefinition = Definition{}

// CreateComponent implements apis.ComponentDefinition.
func (d Definition) CreateComponent(any) (any, error) { return d.New(), nil }

// WrapperType implements apis.ComponentDefinition.
func (d Definition) WrapperType() *apis.WrapperType { return d.Type }

// Definitions of the widgets in this package.
var (
	TextFieldDefinition = Definition{New: func() any { return NewTextField() }, Type: apis.WrapperField}
	CheckBoxDefinition  = Definition{New: func() any { return NewCheckBox() }, Type: apis.WrapperField}
	ComboBoxDefinition  = Definition{New: func() any { return NewComboBox() }, Type: apis.WrapperField}
	LabelDefinition     = Definition{New: func() any { return NewLabel() }, Type: apis.WrapperField}
	ButtonDefinition    = Definition{New: func() any { return NewButton() }, Type: apis.WrapperField}
	SectionDefinition   = Definition{New: func() any { return NewSection() }, Type: apis.WrapperLayout}
	TableDefinition     = Definition{New: func() any { return NewTable() }, Type: apis.WrapperLayout}
)
