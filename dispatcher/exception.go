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

package dispatcher

import (
	"fmt"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// NewException returns the terminal dispatcher. Every Pull and Push fails
// with a *apis.BindingError wrapping apis.ErrNoSource.
func NewException(pmo any, property apis.BoundProperty, modelObject func() (any, error)) apis.Dispatcher {
	return &exception{pmo: pmo, property: property, modelObject: modelObject}
}

// exception ends every chain, so a query nobody answers fails loudly.
type exception struct {
	pmo         any
	property    apis.BoundProperty
	modelObject func() (any, error)
}

// Ensure exception implements apis.Dispatcher.
var _ apis.Dispatcher = (*exception)(nil)

func (e *exception) Property() string { return e.property.PmoProperty }

func (e *exception) BoundObject() any { return e.pmo }

func (e *exception) Pull(a apis.Aspect) (any, error) {
	return nil, e.fail("pull", a)
}

func (e *exception) Push(a apis.Aspect) error {
	op := "push"
	if !a.HasValue() {
		op = "invoke"
	}
	return e.fail(op, a)
}

func (e *exception) IsPushable(apis.Aspect) bool { return false }

func (e *exception) Messages(message.List) message.List { return message.List{} }

func (e *exception) fail(op string, a apis.Aspect) error {
	return &apis.BindingError{
		Op:       op,
		Type:     uref.TypeNameOf(e.pmo),
		Property: e.property.PmoProperty,
		Aspect:   a.Name,
		Kind:     apis.ErrNoSource,
		Err:      fmt.Errorf("not declared by %s", e.sources(a)),
	}
}

// sources names the objects that were searched.
func (e *exception) sources(a apis.Aspect) string {
	s := fmt.Sprintf("%s (%s)", uref.TypeNameOf(e.pmo), members(e.property.PmoProperty, a))
	if e.modelObject == nil {
		return s
	}
	mo, err := e.modelObject()
	if err != nil {
		return s + " or model object " + e.property.ModelObject + ": " + err.Error()
	}
	return fmt.Sprintf("%s or model object %s %s (%s)", s, e.property.ModelObject,
		uref.TypeNameOf(mo), members(e.property.ModelAttribute, a))
}

func members(property string, a apis.Aspect) string {
	if !a.HasValue() || a.Name != apis.ValueAspect {
		names := uref.AccessorNames(property, a.Name)
		if len(names) > 0 {
			return names[0]
		}
		return "<none>"
	}
	return uref.SetterName(property)
}
