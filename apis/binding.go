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

// Binding keeps one UI element in sync with its dispatcher.
type Binding interface {
	// BoundObject returns the PMO the binding reads from.
	BoundObject() any

	// Component returns the bound UI component.
	Component() any

	// Dispatcher returns the binding's dispatcher chain.
	Dispatcher() Dispatcher

	// UpdateFromPmo pushes every supported aspect into the component, in
	// declared order. The first failure aborts the update.
	UpdateFromPmo() error

	// DisplayMessages shows the messages relevant to this binding and
	// returns them.
	DisplayMessages(l message.List) message.List

	// ModelChanged notifies the owning context that the model changed.
	ModelChanged()
}

// BindingKind selects the runtime binding variant for an element.
type BindingKind uint8

const (
	// ElementBindingKind binds a field-like element.
	ElementBindingKind BindingKind = iota
	// ButtonBindingKind binds an action element.
	ButtonBindingKind
	// ContainerBindingKind binds a component holding nested bindings.
	ContainerBindingKind
	// TableBindingKind binds a table whose rows are reconciled on update.
	TableBindingKind
)

// String implements fmt.Stringer.
func (k BindingKind) String() string {
	switch k {
	case ElementBindingKind:
		return "element"
	case ButtonBindingKind:
		return "button"
	case ContainerBindingKind:
		return "container"
	case TableBindingKind:
		return "table"
	default:
		return "unknown"
	}
}
