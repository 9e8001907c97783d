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
	"fmt"
	"slices"

	uref "dirpx.dev/linkki/utils/reflect"
)

// field is the base of editable widgets.
type field struct {
	base
	listeners []func(any)
}

func newField(kind string) field {
	f := field{base: newBase(kind)}
	f.props[PropValue] = nil
	return f
}

// SetRequired marks the widget required.
func (f *field) SetRequired(v bool) { f.set(PropRequired, v) }

// Required reports whether the widget is required.
func (f *field) Required() bool { return f.flag(PropRequired) }

// SetReadOnly makes the widget read-only.
func (f *field) SetReadOnly(v bool) { f.set(PropReadOnly, v) }

// ReadOnly reports whether the widget is read-only.
func (f *field) ReadOnly() bool { return f.flag(PropReadOnly) }

// Value returns the current value.
func (f *field) Value() any { return f.props[PropValue] }

// SetValue sets the value without notifying change listeners.
func (f *field) SetValue(v any) { f.set(PropValue, v) }

// OnValueChange registers fn for user input.
func (f *field) OnValueChange(fn func(any)) { f.listeners = append(f.listeners, fn) }

// Input simulates user input: the value is set and listeners are notified.
func (f *field) Input(v any) error {
	if !f.Enabled() || f.ReadOnly() || !f.Visible() {
		return fmt.Errorf("%w: %s %s", ErrNotEditable, f.kind, f.id)
	}
	f.SetValue(v)
	for _, fn := range f.listeners {
		fn(v)
	}
	return nil
}

// TextField is a single line text input.
type TextField struct{ field }

// NewTextField returns an empty text field.
func NewTextField() *TextField { return &TextField{newField("textfield")} }

// CheckBox is a boolean input.
type CheckBox struct{ field }

// NewCheckBox returns an unchecked check box.
func NewCheckBox() *CheckBox {
	c := &CheckBox{newField("checkbox")}
	c.props[PropValue] = false
	return c
}

// Check simulates the user toggling the box.
func (c *CheckBox) Check(v bool) error { return c.Input(v) }

// ComboBox selects one of a list of items.
type ComboBox struct{ field }

// NewComboBox returns a combo box without items.
func NewComboBox() *ComboBox {
	c := &ComboBox{newField("combobox")}
	c.props[PropItems] = []any(nil)
	return c
}

// Items returns the selectable items.
func (c *ComboBox) Items() []any {
	v, _ := c.props[PropItems].([]any)
	return v
}

// SetItems replaces the selectable items.
func (c *ComboBox) SetItems(items []any) { c.set(PropItems, slices.Clone(items)) }

// Select simulates the user selecting v, which must be one of the items.
func (c *ComboBox) Select(v any) error {
	if v != nil && !slices.ContainsFunc(c.Items(), func(it any) bool { return uref.Same(it, v) }) {
		return fmt.Errorf("%w: %v", ErrNoSuchItem, v)
	}
	return c.Input(v)
}

// SelectIndex selects the item at i.
func (c *ComboBox) SelectIndex(i int) error {
	items := c.Items()
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: index %d", ErrNoSuchItem, i)
	}
	return c.Input(items[i])
}

// Label shows a read-only value.
type Label struct{ base }

// NewLabel returns an empty label.
func NewLabel() *Label { return &Label{newBase("label")} }

// Value returns the shown value.
func (l *Label) Value() any { return l.props[PropValue] }

// SetValue sets the shown value.
func (l *Label) SetValue(v any) { l.set(PropValue, v) }

// OnValueChange does nothing: labels take no input.
func (l *Label) OnValueChange(func(any)) {}

// Button fires click events.
type Button struct {
	base
	listeners []func()
}

// NewButton returns a button without caption.
func NewButton() *Button { return &Button{base: newBase("button")} }

// SetCaption sets the button text.
func (b *Button) SetCaption(s string) { b.set(PropCaption, s) }

// Caption returns the button text.
func (b *Button) Caption() string { return b.text(PropCaption) }

// OnClick registers fn for clicks.
func (b *Button) OnClick(fn func()) { b.listeners = append(b.listeners, fn) }

// Click simulates a user click. Disabled or hidden buttons refuse clicks.
func (b *Button) Click() error {
	if !b.Enabled() || !b.Visible() {
		return fmt.Errorf("%w: button %s", ErrNotEditable, b.id)
	}
	for _, fn := range b.listeners {
		fn()
	}
	return nil
}

// Child is a component placed in a section together with its label.
type Child struct {
	Component any
	Label     string
}

// Section is a titled layout holding child components.
type Section struct {
	base
	children []Child
}

// NewSection returns an empty section.
func NewSection() *Section { return &Section{base: newBase("section")} }

// SetCaption sets the section title.
func (s *Section) SetCaption(c string) { s.set(PropCaption, c) }

// Caption returns the section title.
func (s *Section) Caption() string { return s.text(PropCaption) }

// Add appends a child component.
func (s *Section) Add(child any, label string) {
	s.children = append(s.children, Child{Component: child, Label: label})
	s.set(PropChildren, ids(s.Children()))
}

// Children returns the child components in order.
func (s *Section) Children() []any {
	out := make([]any, len(s.children))
	for i, c := range s.children {
		out[i] = c.Component
	}
	return out
}

// Table shows rows of cell components.
type Table struct {
	base
	rows    [][]any
	changes int
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{base: newBase("table")} }

// SetCaption sets the table title.
func (t *Table) SetCaption(c string) { t.set(PropCaption, c) }

// Caption returns the table title.
func (t *Table) Caption() string { return t.text(PropCaption) }

// SetRows replaces the rows. Every call counts as one structural change.
func (t *Table) SetRows(rows [][]any) {
	t.rows = rows
	t.changes++
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = ids(r)
	}
	t.props[PropRows] = out
	if t.sink != nil {
		t.sink.Emit(Op{ID: t.id, Key: PropRows, Value: out})
	}
}

// Rows returns the current rows.
func (t *Table) Rows() [][]any { return t.rows }

// StructureChanges returns how often SetRows was called.
func (t *Table) StructureChanges() int { return t.changes }

func ids(cs []any) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		if comp, ok := c.(Component); ok {
			out = append(out, comp.ID())
		}
	}
	return out
}
