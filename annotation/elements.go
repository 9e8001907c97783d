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

package annotation

import (
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
	"dirpx.dev/linkki/ui"
)

// fieldAspects returns the aspects shared by input elements, in update
// order. Enabled precedes required because required-if-enabled reads the
// enabled state of the component.
func fieldAspects(label string, v aspect.VisibleType, e aspect.EnabledType, r aspect.RequiredType) []apis.AspectDefinition {
	return []apis.AspectDefinition{
		aspect.LabelAspect{Text: label},
		aspect.VisibleAspect{Type: v},
		aspect.EnabledAspect{Type: e},
		aspect.RequiredAspect{Type: r},
	}
}

// TextField declares a text input bound to a value.
type TextField struct {
	Position       int
	Property       string
	Label          string
	ModelObject    string
	ModelAttribute string
	Visible        aspect.VisibleType
	Enabled        aspect.EnabledType
	Required       aspect.RequiredType
}

// Ensure TextField implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = TextField{}

// Kind implements apis.Annotation.
func (TextField) Kind() apis.Kind { return KindTextField }

// ElementPosition implements apis.ElementAnnotation.
func (a TextField) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a TextField) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation.
func (a TextField) ModelBinding() (string, string) { return a.ModelObject, a.ModelAttribute }

// BindingKind implements apis.ElementAnnotation.
func (TextField) BindingKind() apis.BindingKind { return apis.ElementBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (TextField) ComponentDefinition() apis.ComponentDefinition { return ui.TextFieldDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a TextField) AspectDefinitions() []apis.AspectDefinition {
	return append(fieldAspects(a.Label, a.Visible, a.Enabled, a.Required), aspect.ValueAspect{})
}

// CheckBox declares a boolean input.
type CheckBox struct {
	Position       int
	Property       string
	Label          string
	ModelObject    string
	ModelAttribute string
	Visible        aspect.VisibleType
	Enabled        aspect.EnabledType
	Required       aspect.RequiredType
}

// Ensure CheckBox implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = CheckBox{}

// Kind implements apis.Annotation.
func (CheckBox) Kind() apis.Kind { return KindCheckBox }

// ElementPosition implements apis.ElementAnnotation.
func (a CheckBox) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a CheckBox) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation.
func (a CheckBox) ModelBinding() (string, string) { return a.ModelObject, a.ModelAttribute }

// BindingKind implements apis.ElementAnnotation.
func (CheckBox) BindingKind() apis.BindingKind { return apis.ElementBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (CheckBox) ComponentDefinition() apis.ComponentDefinition { return ui.CheckBoxDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a CheckBox) AspectDefinitions() []apis.AspectDefinition {
	return append(fieldAspects(a.Label, a.Visible, a.Enabled, a.Required), aspect.ValueAspect{})
}

// ComboBox declares a selection among available values. By default the
// values are read from <Prop>AvailableValues().
type ComboBox struct {
	Position       int
	Property       string
	Label          string
	ModelObject    string
	ModelAttribute string
	Visible        aspect.VisibleType
	Enabled        aspect.EnabledType
	Required       aspect.RequiredType
	Content        aspect.AvailableValuesType
	Values         []any
}

// Ensure ComboBox implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = ComboBox{}

// Kind implements apis.Annotation.
func (ComboBox) Kind() apis.Kind { return KindComboBox }

// ElementPosition implements apis.ElementAnnotation.
func (a ComboBox) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a ComboBox) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation.
func (a ComboBox) ModelBinding() (string, string) { return a.ModelObject, a.ModelAttribute }

// BindingKind implements apis.ElementAnnotation.
func (ComboBox) BindingKind() apis.BindingKind { return apis.ElementBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (ComboBox) ComponentDefinition() apis.ComponentDefinition { return ui.ComboBoxDefinition }

// AspectDefinitions implements apis.ElementAnnotation. Items are set
// before the value so the selection is among them.
func (a ComboBox) AspectDefinitions() []apis.AspectDefinition {
	return append(fieldAspects(a.Label, a.Visible, a.Enabled, a.Required),
		aspect.AvailableValuesAspect{Type: a.Content, Values: a.Values},
		aspect.ValueAspect{},
	)
}

// Label declares a read-only display of a value.
type Label struct {
	Position       int
	Property       string
	Label          string
	ModelObject    string
	ModelAttribute string
	Visible        aspect.VisibleType
}

// Ensure Label implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = Label{}

// Kind implements apis.Annotation.
func (Label) Kind() apis.Kind { return KindLabel }

// ElementPosition implements apis.ElementAnnotation.
func (a Label) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a Label) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation.
func (a Label) ModelBinding() (string, string) { return a.ModelObject, a.ModelAttribute }

// BindingKind implements apis.ElementAnnotation.
func (Label) BindingKind() apis.BindingKind { return apis.ElementBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (Label) ComponentDefinition() apis.ComponentDefinition { return ui.LabelDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a Label) AspectDefinitions() []apis.AspectDefinition {
	return []apis.AspectDefinition{
		aspect.LabelAspect{Text: a.Label},
		aspect.VisibleAspect{Type: a.Visible},
		aspect.ValueAspect{},
	}
}

// Button declares an action. The bound property is invoked on click; its
// caption defaults to the humanized property name.
type Button struct {
	Position    int
	Property    string
	Label       string
	Caption     string
	CaptionType aspect.TextType
	Visible     aspect.VisibleType
	Enabled     aspect.EnabledType
}

// Ensure Button implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = Button{}

// Kind implements apis.Annotation.
func (Button) Kind() apis.Kind { return KindButton }

// ElementPosition implements apis.ElementAnnotation.
func (a Button) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a Button) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation. Buttons invoke the PMO.
func (Button) ModelBinding() (string, string) { return "", "" }

// BindingKind implements apis.ElementAnnotation.
func (Button) BindingKind() apis.BindingKind { return apis.ButtonBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (Button) ComponentDefinition() apis.ComponentDefinition { return ui.ButtonDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a Button) AspectDefinitions() []apis.AspectDefinition {
	label := aspect.LabelAspect{Text: a.Label}
	if a.Label == "" {
		label.Type = aspect.NoText
	}
	return []apis.AspectDefinition{
		label,
		aspect.CaptionAspect{Type: a.CaptionType, Text: a.Caption},
		aspect.VisibleAspect{Type: a.Visible},
		aspect.EnabledAspect{Type: a.Enabled},
		aspect.InvokeAspect{},
	}
}

// Table declares a table. The bound property returns the row PMOs as a
// slice; each row PMO is itself annotated with the cells of its row.
type Table struct {
	Position int
	Property string
	Caption  string
	Visible  aspect.VisibleType
}

// Ensure Table implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = Table{}

// Kind implements apis.Annotation.
func (Table) Kind() apis.Kind { return KindTable }

// ElementPosition implements apis.ElementAnnotation.
func (a Table) ElementPosition() int { return a.Position }

// PropertyOverride implements apis.ElementAnnotation.
func (a Table) PropertyOverride() string { return a.Property }

// ModelBinding implements apis.ElementAnnotation.
func (Table) ModelBinding() (string, string) { return "", "" }

// BindingKind implements apis.ElementAnnotation.
func (Table) BindingKind() apis.BindingKind { return apis.TableBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (Table) ComponentDefinition() apis.ComponentDefinition { return ui.TableDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a Table) AspectDefinitions() []apis.AspectDefinition {
	return []apis.AspectDefinition{
		aspect.LabelAspect{Type: aspect.NoText},
		aspect.CaptionAspect{Text: a.Caption},
		aspect.VisibleAspect{Type: a.Visible},
	}
}

// Section declares the layout created for a PMO type. It belongs to
// TypeLevel and binds to the type itself: a dynamic caption is read from
// Caption().
type Section struct {
	Caption     string
	CaptionType aspect.TextType
}

// Ensure Section implements apis.ElementAnnotation.
var _ apis.ElementAnnotation = Section{}

// Kind implements apis.Annotation.
func (Section) Kind() apis.Kind { return KindSection }

// ElementPosition implements apis.ElementAnnotation.
func (Section) ElementPosition() int { return 0 }

// PropertyOverride implements apis.ElementAnnotation.
func (Section) PropertyOverride() string { return "" }

// ModelBinding implements apis.ElementAnnotation.
func (Section) ModelBinding() (string, string) { return "", "" }

// BindingKind implements apis.ElementAnnotation.
func (Section) BindingKind() apis.BindingKind { return apis.ContainerBindingKind }

// ComponentDefinition implements apis.ElementAnnotation.
func (Section) ComponentDefinition() apis.ComponentDefinition { return ui.SectionDefinition }

// AspectDefinitions implements apis.ElementAnnotation.
func (a Section) AspectDefinitions() []apis.AspectDefinition {
	return []apis.AspectDefinition{aspect.CaptionAspect{Type: a.CaptionType, Text: a.Caption}}
}

// Tooltip adds a tooltip to the element of the same property.
type Tooltip struct {
	Text string
	Type aspect.TextType
}

// Ensure Tooltip implements apis.AspectAnnotation.
var _ apis.AspectAnnotation = Tooltip{}

// Kind implements apis.Annotation.
func (Tooltip) Kind() apis.Kind { return KindTooltip }

// AspectDefinitions implements apis.AspectAnnotation.
func (a Tooltip) AspectDefinitions() []apis.AspectDefinition {
	return []apis.AspectDefinition{aspect.TooltipAspect{Type: a.Type, Text: a.Text}}
}

// ModelObject marks a member returning a model object. Elements refer to
// it by Name; an empty Name is the configured default model object.
type ModelObject struct {
	Name string
}

// Ensure ModelObject implements apis.ModelObjectAnnotation.
var _ apis.ModelObjectAnnotation = ModelObject{}

// Kind implements apis.Annotation.
func (ModelObject) Kind() apis.Kind { return KindModelObject }

// ModelObjectName implements apis.ModelObjectAnnotation.
func (a ModelObject) ModelObjectName() string { return a.Name }
