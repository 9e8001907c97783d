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

// BoundProperty identifies where the value of a bound element lives.
// It is immutable.
type BoundProperty struct {
	// PmoProperty is the property name on the presentation model object.
	// It may be empty for type-level elements.
	PmoProperty string
	// ModelObject names the model object reachable from the PMO.
	ModelObject string
	// ModelAttribute is the property name on the model object. If empty,
	// the model object is not consulted.
	ModelAttribute string
}

// HasModelAttribute reports whether the model object is part of the
// dispatch path.
func (p BoundProperty) HasModelAttribute() bool {
	return p.ModelAttribute != ""
}

// String implements fmt.Stringer.
func (p BoundProperty) String() string {
	if !p.HasModelAttribute() {
		return p.PmoProperty
	}
	return p.PmoProperty + "->" + p.ModelObject + "." + p.ModelAttribute
}

// Dispatcher answers aspect queries for one bound property. Dispatchers
// form a chain: a link that cannot answer delegates to the next one, and
// the last link always fails.
type Dispatcher interface {
	// Property returns the property name the dispatcher resolves.
	Property() string

	// BoundObject returns the object the property is read from, normally
	// the PMO.
	BoundObject() any

	// Pull returns the value of aspect a.
	Pull(a Aspect) (any, error)

	// Push writes the value of a. An aspect without a value invokes the
	// property as an action.
	Push(a Aspect) error

	// IsPushable reports whether Push(a) can succeed.
	IsPushable(a Aspect) bool

	// Messages selects from l the messages attached to the property.
	Messages(l message.List) message.List
}
