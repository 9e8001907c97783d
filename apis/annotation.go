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

// Kind discriminates annotation types. Kinds are the keys of the
// annotation registry and the values returned by dynamic field
// discriminator methods.
type Kind string

// Annotation is attached to a PMO member or type.
type Annotation interface {
	Kind() Kind
}

// ElementAnnotation declares a UI element for a member.
type ElementAnnotation interface {
	Annotation
	// ElementPosition orders elements. Positions are unique per PMO type,
	// except for alternatives of the same dynamic field.
	ElementPosition() int
	// PropertyOverride returns an explicit PMO property name, or "".
	PropertyOverride() string
	// ModelBinding returns the model object name and attribute. An empty
	// attribute means the PMO alone is consulted.
	ModelBinding() (object, attribute string)
	// ComponentDefinition creates the element's component.
	ComponentDefinition() ComponentDefinition
	// AspectDefinitions returns the element's own aspects in update order.
	AspectDefinitions() []AspectDefinition
	// BindingKind selects the runtime binding variant.
	BindingKind() BindingKind
}

// AspectAnnotation contributes aspects to the element of the same property.
type AspectAnnotation interface {
	Annotation
	AspectDefinitions() []AspectDefinition
}

// ModelObjectAnnotation marks a member supplying a model object.
type ModelObjectAnnotation interface {
	Annotation
	// ModelObjectName returns the name elements refer to.
	ModelObjectName() string
}

// AnnotationFactory decodes the attributes of a struct tag declaration
// into an annotation.
type AnnotationFactory func(attrs map[string]string) (Annotation, error)
