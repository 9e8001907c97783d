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

import "dirpx.dev/linkki/message"

// WrapperType is an opaque capability tag of a component wrapper. Types
// form a tree: a type is assignable to itself and to all its ancestors.
type WrapperType struct {
	name   string
	parent *WrapperType
}

// NewWrapperType declares a wrapper type below parent. A nil parent
// declares a root type.
func NewWrapperType(name string, parent *WrapperType) *WrapperType {
	return &WrapperType{name: name, parent: parent}
}

// Name returns the type name.
func (t *WrapperType) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// AssignableTo reports whether t is other or a descendant of other.
func (t *WrapperType) AssignableTo(other *WrapperType) bool {
	for c := t; c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (t *WrapperType) String() string { return t.Name() }

// Well-known wrapper types.
var (
	WrapperComponent = NewWrapperType("component", nil)
	// WrapperField is a component shown next to a label.
	WrapperField = NewWrapperType("field", WrapperComponent)
	// WrapperLayout is a component holding other components.
	WrapperLayout = NewWrapperType("layout", WrapperComponent)
	// WrapperCell is a component inside a table row. Cells have no label.
	WrapperCell = NewWrapperType("cell", WrapperComponent)
)

// ComponentWrapper adapts a concrete UI component to the binding layer.
type ComponentWrapper interface {
	// Component returns the wrapped component.
	Component() any
	// Type returns the capability tag.
	Type() *WrapperType
	// SetLabel sets the label shown next to the component, if any.
	SetLabel(label string)
	// SetValidationMessages shows messages at the component.
	SetValidationMessages(l message.List)
}

// ComponentDefinition creates the component of an element.
type ComponentDefinition interface {
	// CreateComponent returns a new component for pmo. It is called once
	// per binding and never cached.
	CreateComponent(pmo any) (any, error)
	// WrapperType returns the capability tag of created components.
	WrapperType() *WrapperType
}

// Capabilities queried by aspect definitions through type assertions on the
// wrapped component.
type (
	VisibleSetter interface{ SetVisible(bool) }
	EnabledSetter interface{ SetEnabled(bool) }
	// EnabledGetter reports the enabled state written by an earlier aspect.
	EnabledGetter  interface{ Enabled() bool }
	RequiredSetter interface{ SetRequired(bool) }
	ReadOnlySetter interface{ SetReadOnly(bool) }
	CaptionSetter  interface{ SetCaption(string) }
	TooltipSetter  interface{ SetTooltip(string) }

	// ValueHolder is a two-way bound input.
	ValueHolder interface {
		Value() any
		SetValue(v any)
		OnValueChange(fn func(v any))
	}

	// ItemsHolder shows a list of selectable items.
	ItemsHolder interface {
		Items() []any
		SetItems(items []any)
	}

	// Clicker fires click events.
	Clicker interface {
		OnClick(fn func())
	}

	// RowsHolder shows table rows. Each row is a slice of cell components.
	// SetRows is the structural change notification of a table.
	RowsHolder interface {
		SetRows(rows [][]any)
	}

	// ChildrenHolder holds child components of a layout.
	ChildrenHolder interface {
		Add(child any, label string)
	}
)
