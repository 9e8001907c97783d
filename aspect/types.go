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

import "fmt"

// VisibleType selects how visibility is determined.
type VisibleType uint8

const (
	// Visible always shows the element.
	Visible VisibleType = iota
	// Invisible always hides the element.
	Invisible
	// DynamicVisible reads <Prop>Visible() from the PMO.
	DynamicVisible
)

// String implements fmt.Stringer.
func (t VisibleType) String() string {
	switch t {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case DynamicVisible:
		return "dynamic"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// EnabledType selects how the enabled state is determined.
type EnabledType uint8

const (
	// Enabled always enables the element.
	Enabled EnabledType = iota
	// Disabled always disables the element.
	Disabled
	// DynamicEnabled reads <Prop>Enabled() from the PMO.
	DynamicEnabled
)

// String implements fmt.Stringer.
func (t EnabledType) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	case DynamicEnabled:
		return "dynamic"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// RequiredType selects how the required state is determined.
type RequiredType uint8

const (
	// NotRequired never marks the element required.
	NotRequired RequiredType = iota
	// Required always marks the element required.
	Required
	// RequiredIfEnabled marks the element required while its component is
	// enabled. It reads the state written by the enabled aspect, which must
	// come first.
	RequiredIfEnabled
	// DynamicRequired reads <Prop>Required() from the PMO.
	DynamicRequired
)

// String implements fmt.Stringer.
func (t RequiredType) String() string {
	switch t {
	case NotRequired:
		return "notRequired"
	case Required:
		return "required"
	case RequiredIfEnabled:
		return "requiredIfEnabled"
	case DynamicRequired:
		return "dynamic"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// TextType selects how a caption, label or tooltip text is determined.
type TextType uint8

const (
	// StaticText uses the declared text. An empty caption or label is
	// derived from the property name.
	StaticText TextType = iota
	// DynamicText reads <Prop><Aspect>() from the PMO.
	DynamicText
	// NoText shows nothing.
	NoText
)

// String implements fmt.Stringer.
func (t TextType) String() string {
	switch t {
	case StaticText:
		return "static"
	case DynamicText:
		return "dynamic"
	case NoText:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// AvailableValuesType selects where selectable values come from.
type AvailableValuesType uint8

const (
	// DynamicValues reads <Prop>AvailableValues() from the PMO.
	DynamicValues AvailableValuesType = iota
	// StaticValues uses the declared values.
	StaticValues
	// NoValues offers nothing.
	NoValues
)

// String implements fmt.Stringer.
func (t AvailableValuesType) String() string {
	switch t {
	case DynamicValues:
		return "dynamic"
	case StaticValues:
		return "static"
	case NoValues:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}
