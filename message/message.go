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

// Package message models validation messages routed to bound properties.
package message

import (
	"slices"
	"strings"

	uref "dirpx.dev/linkki/utils/reflect"
)

// ObjectProperty names a property of a concrete object. Object is compared
// by identity.
type ObjectProperty struct {
	Object   any
	Property string
}

// Message is a single validation message.
type Message struct {
	// Code is an optional machine readable identifier.
	Code string `yaml:"code,omitempty" json:"code,omitempty"`
	// Text is shown to the user.
	Text string `yaml:"text" json:"text"`
	// Severity ranks the message.
	Severity Severity `yaml:"severity" json:"severity"`
	// InvalidObjectProperties are the properties the message applies to.
	// A message without any is not shown at a property.
	InvalidObjectProperties []ObjectProperty `yaml:"-" json:"-"`
}

// New returns a message for the given object properties.
func New(severity Severity, text string, props ...ObjectProperty) Message {
	return Message{Text: text, Severity: severity, InvalidObjectProperties: props}
}

// AppliesTo reports whether m is attached to property of object.
func (m Message) AppliesTo(object any, property string) bool {
	for _, op := range m.InvalidObjectProperties {
		if op.Property == property && uref.Same(op.Object, object) {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (m Message) String() string {
	return m.Severity.String() + ": " + m.Text
}

// List is an ordered collection of messages.
type List []Message

// SortedBySeverity returns a copy of l ordered error > warning > info.
// Messages of equal severity keep their relative order.
func (l List) SortedBySeverity() List {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Message) int {
		return int(b.Severity) - int(a.Severity)
	})
	return out
}

// For returns the messages attached to property of object, in order.
func (l List) For(object any, property string) List {
	var out List
	for _, m := range l {
		if m.AppliesTo(object, property) {
			out = append(out, m)
		}
	}
	return out
}

// Severity returns the highest severity in l, or 0 for an empty list.
func (l List) Severity() Severity {
	var max Severity
	for _, m := range l {
		if m.Severity > max {
			max = m.Severity
		}
	}
	return max
}

// ContainsErrors reports whether l holds at least one Error message.
func (l List) ContainsErrors() bool {
	return l.Severity() >= Error
}

// Texts returns the message texts, used by widgets that only show text.
func (l List) Texts() []string {
	out := make([]string, len(l))
	for i, m := range l {
		out[i] = m.Text
	}
	return out
}

// String joins the messages one per line.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, m := range l {
		parts[i] = m.String()
	}
	return strings.Join(parts, "\n")
}
