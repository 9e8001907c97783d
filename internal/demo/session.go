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

package demo

import (
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/builder"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/ui"
)

// ErrNoWidget is returned by Apply for properties without a widget.
var ErrNoWidget = errors.New("demo: no widget for property")

// Session is a person form bound in its own context.
type Session struct {
	Pmo     *PersonPmo
	Context *binding.Context

	creator *builder.Creator
	layout  any
	section *binding.ContainerBinding
	errs    []error
}

// NewSession binds pmo with descriptors from r and shows it. Options are
// applied after the session's validation service and error handler.
func NewSession(r *descriptor.Reader, pmo *PersonPmo, opts ...binding.Option) (*Session, error) {
	s := &Session{Pmo: pmo, creator: builder.NewCreator(r)}
	base := []binding.Option{
		binding.WithReader(r),
		binding.WithValidationService(&Validator{Pmo: pmo}),
		binding.WithErrorHandler(func(err error) { s.errs = append(s.errs, err) }),
	}
	s.Context = binding.NewContext("person", append(base, opts...)...)
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Layout returns the section showing the person.
func (s *Session) Layout() any { return s.layout }

// Rebuild recreates the form, for example after the country component
// type changed.
func (s *Session) Rebuild() error {
	if s.layout != nil {
		s.Context.RemoveBindingsForComponent(s.layout)
	}
	layout, section, err := s.creator.CreateSection(s.Context, s.Pmo)
	if err != nil {
		return err
	}
	s.layout, s.section = layout, section
	return s.Context.UpdateUI()
}

// Widget returns the component bound to property.
func (s *Session) Widget(property string) (any, bool) {
	for _, b := range s.section.Children() {
		eb, ok := b.(interface {
			Dispatcher() apis.Dispatcher
			Component() any
		})
		if ok && eb.Dispatcher().Property() == property {
			return eb.Component(), true
		}
	}
	return nil, false
}

// Apply simulates user input on the widget of property: text is typed
// into text fields, parsed for check boxes, selected in combo boxes, and
// buttons are clicked. Errors raised while the input is processed are
// returned as well.
func (s *Session) Apply(property, value string) error {
	w, ok := s.Widget(property)
	if !ok {
		return fmt.Errorf("%w %q", ErrNoWidget, property)
	}
	s.errs = nil
	var err error
	switch w := w.(type) {
	case *ui.TextField:
		err = w.Input(value)
	case *ui.CheckBox:
		var v bool
		if v, err = strconv.ParseBool(value); err == nil {
			err = w.Check(v)
		}
	case *ui.ComboBox:
		err = w.Select(value)
	case *ui.Button:
		err = w.Click()
	default:
		err = fmt.Errorf("demo: %s is a %T and takes no input", property, w)
	}
	return errors.Join(append([]error{err}, s.errs...)...)
}
