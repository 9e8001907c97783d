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

package descriptor

import (
	"fmt"
	"reflect"
	"slices"

	"dirpx.dev/linkki/apis"
	uref "dirpx.dev/linkki/utils/reflect"
)

// ElementDescriptor describes one UI element of a PMO property.
type ElementDescriptor struct {
	// Kind is the kind of the element annotation.
	Kind apis.Kind
	// Position orders elements within the PMO.
	Position int
	// Member is the annotated Go member.
	Member string
	// BoundProperty locates the value.
	BoundProperty apis.BoundProperty
	// Definition creates the component.
	Definition apis.ComponentDefinition
	// Aspects are the element's aspects followed by those of aspect
	// annotations on the member and on aspect-only members of the property.
	Aspects []apis.AspectDefinition
	// BindingKind selects the runtime binding variant.
	BindingKind apis.BindingKind
}

// PropertyElementDescriptors groups the element descriptors of one PMO
// property. More than one descriptor makes the property a dynamic field
// whose element is chosen per PMO instance by <Prop>ComponentType().
type PropertyElementDescriptors struct {
	// Property is the PMO property name.
	Property string
	// Position is shared by all descriptors of the group.
	Position int

	kinds         []apis.Kind
	descriptors   map[apis.Kind]*ElementDescriptor
	discriminator string
	cache         *uref.Cache
}

// IsDynamic reports whether the property has alternative elements.
func (p *PropertyElementDescriptors) IsDynamic() bool { return len(p.kinds) > 1 }

// Kinds returns the element kinds in declaration order.
func (p *PropertyElementDescriptors) Kinds() []apis.Kind { return slices.Clone(p.kinds) }

// Discriminator returns the member choosing the element of a dynamic field.
func (p *PropertyElementDescriptors) Discriminator() string { return p.discriminator }

// ByKind returns the descriptor of kind.
func (p *PropertyElementDescriptors) ByKind(kind apis.Kind) (*ElementDescriptor, bool) {
	d, ok := p.descriptors[kind]
	return d, ok
}

// Descriptor returns the element descriptor applying to pmo. For dynamic
// fields the discriminator is called on pmo each time, so a changed return
// value selects another descriptor on the next bind.
func (p *PropertyElementDescriptors) Descriptor(pmo any) (*ElementDescriptor, error) {
	if !p.IsDynamic() {
		return p.descriptors[p.kinds[0]], nil
	}
	acc, ok := p.cache.Lookup(reflect.TypeOf(pmo), uref.Getter, p.discriminator)
	if !ok {
		return nil, apis.NewConfigError(uref.TypeNameOf(pmo),
			"dynamic field has no component type method", p.discriminator)
	}
	v, err := acc.Read(pmo)
	if err != nil {
		return nil, &apis.BindingError{
			Op: "pull", Type: uref.TypeNameOf(pmo), Property: p.Property,
			Aspect: apis.ComponentTypeAspect, Kind: apis.ErrInvocation, Err: err,
		}
	}
	kind := apis.Kind(reflect.ValueOf(v).String())
	d, ok := p.descriptors[kind]
	if !ok {
		return nil, apis.NewConfigError(uref.TypeNameOf(pmo),
			fmt.Sprintf("component type %q matches none of %v", kind, p.kinds), p.discriminator)
	}
	return d, nil
}

// Descriptors is the memoized result of reading one PMO type.
type Descriptors struct {
	// Type is the named PMO type.
	Type reflect.Type
	// Layout is the type-level element, such as a section, or nil.
	Layout *ElementDescriptor

	properties   []*PropertyElementDescriptors
	modelObjects map[string]string // name -> member
	cache        *uref.Cache
}

// Properties returns the property groups ordered by position.
func (d *Descriptors) Properties() []*PropertyElementDescriptors {
	return slices.Clone(d.properties)
}

// Property returns the group of a property.
func (d *Descriptors) Property(name string) (*PropertyElementDescriptors, bool) {
	for _, p := range d.properties {
		if p.Property == name {
			return p, true
		}
	}
	return nil, false
}

// ModelObjects returns the declared model object names, sorted.
func (d *Descriptors) ModelObjects() []string {
	names := make([]string, 0, len(d.modelObjects))
	for n := range d.modelObjects {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ModelObjectSupplier returns a function reading model object name from
// pmo. The member is read on every call.
func (d *Descriptors) ModelObjectSupplier(pmo any, name string) (func() (any, error), error) {
	member, ok := d.modelObjects[name]
	if !ok {
		return nil, apis.NewConfigError(uref.TypeName(d.Type), "unknown model object "+name)
	}
	acc, ok := d.cache.Lookup(reflect.TypeOf(pmo), uref.Getter, member)
	if !ok {
		return nil, apis.NewConfigError(uref.TypeNameOf(pmo), "model object is not readable", member)
	}
	return func() (any, error) { return acc.Read(pmo) }, nil
}
