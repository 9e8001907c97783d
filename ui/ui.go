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

// Package ui is a small in-memory widget kit. Widgets keep their state as
// properties and report every change as an Op to an attached Sink, which
// lets a remote client mirror them. Rendering is left to that client.
package ui

import (
	"errors"
	"maps"
	"reflect"

	"github.com/oklog/ulid/v2"

	"dirpx.dev/linkki/message"
)

var (
	// ErrNotEditable is returned when input reaches a disabled or
	// read-only widget.
	ErrNotEditable = errors.New("linkki(ui): widget is not editable")
	// ErrNoSuchItem is returned when a selection is not among the items.
	ErrNoSuchItem = errors.New("linkki(ui): no such item")
)

// Property keys reported in ops.
const (
	PropVisible  = "visible"
	PropEnabled  = "enabled"
	PropRequired = "required"
	PropReadOnly = "readOnly"
	PropCaption  = "caption"
	PropLabel    = "label"
	PropTooltip  = "tooltip"
	PropValue    = "value"
	PropItems    = "items"
	PropMessages = "messages"
	PropSeverity = "severity"
	PropChildren = "children"
	PropRows     = "rows"
)

// Op is a single property change of a widget.
type Op struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Sink receives widget ops.
type Sink interface {
	Emit(op Op)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Op)

// Emit implements Sink.
func (f SinkFunc) Emit(op Op) { f(op) }

// Tracker is a Sink that also wants to know every attached widget, for
// example to route inbound events by widget id.
type Tracker interface {
	Sink
	Track(c Component)
}

// Component is implemented by every widget.
type Component interface {
	ID() string
	Kind() string
	// Props returns a copy of the widget properties.
	Props() map[string]any
	// Attach sets the sink receiving subsequent ops.
	Attach(s Sink)
}

// base holds the state common to all widgets.
type base struct {
	id    string
	kind  string
	props map[string]any
	sink  Sink
}

func newBase(kind string) base {
	return base{
		id:   ulid.Make().String(),
		kind: kind,
		props: map[string]any{
			PropVisible: true,
			PropEnabled: true,
		},
	}
}

// ID returns the widget id.
func (b *base) ID() string { return b.id }

// Kind returns the widget kind, such as "textfield".
func (b *base) Kind() string { return b.kind }

// Props returns a copy of the widget properties.
func (b *base) Props() map[string]any { return maps.Clone(b.props) }

// Attach sets the sink receiving subsequent ops.
func (b *base) Attach(s Sink) { b.sink = s }

// set stores v under key and emits an op if the value changed.
func (b *base) set(key string, v any) {
	if old, ok := b.props[key]; ok && reflect.DeepEqual(old, v) {
		return
	}
	b.props[key] = v
	if b.sink != nil {
		b.sink.Emit(Op{ID: b.id, Key: key, Value: v})
	}
}

func (b *base) flag(key string) bool {
	v, _ := b.props[key].(bool)
	return v
}

func (b *base) text(key string) string {
	v, _ := b.props[key].(string)
	return v
}

// SetVisible shows or hides the widget.
func (b *base) SetVisible(v bool) { b.set(PropVisible, v) }

// Visible reports whether the widget is shown.
func (b *base) Visible() bool { return b.flag(PropVisible) }

// SetEnabled enables or disables the widget.
func (b *base) SetEnabled(v bool) { b.set(PropEnabled, v) }

// Enabled reports whether the widget is enabled.
func (b *base) Enabled() bool { return b.flag(PropEnabled) }

// SetTooltip sets the tooltip.
func (b *base) SetTooltip(s string) { b.set(PropTooltip, s) }

// Tooltip returns the tooltip.
func (b *base) Tooltip() string { return b.text(PropTooltip) }

// SetLabel sets the label shown next to the widget.
func (b *base) SetLabel(s string) { b.set(PropLabel, s) }

// Label returns the label.
func (b *base) Label() string { return b.text(PropLabel) }

// SetMessages shows validation messages at the widget.
func (b *base) SetMessages(l message.List) {
	texts := l.Texts()
	if len(texts) == 0 {
		texts = nil
	}
	b.set(PropMessages, texts)
	sev := ""
	if s := l.Severity(); s.IsValid() {
		sev = s.String()
	}
	b.set(PropSeverity, sev)
}

// Messages returns the texts of the shown messages.
func (b *base) Messages() []string {
	v, _ := b.props[PropMessages].([]string)
	return v
}
