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
	"strconv"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	uref "dirpx.dev/linkki/utils/reflect"
)

// componentTypeAspect is the aspect suffix of dynamic field discriminators.
const componentTypeAspect = "componentType"

// typeReader reads the descriptors of one PMO type.
type typeReader struct {
	r    *Reader
	base reflect.Type // named PMO type
	ptr  reflect.Type // pointer to base, for the full method set
	name string

	order   []string // members in declaration order
	members annotation.Members
}

func newTypeReader(r *Reader, base reflect.Type) *typeReader {
	return &typeReader{
		r:       r,
		base:    base,
		ptr:     reflect.PointerTo(base),
		name:    uref.TypeName(base),
		members: annotation.Members{},
	}
}

func (tr *typeReader) fail(reason string, members ...string) error {
	return apis.NewConfigError(tr.name, reason, members...)
}

// group accumulates the elements of one property while reading.
type group struct {
	property string
	position int
	kinds    []apis.Kind
	elements map[apis.Kind]*ElementDescriptor
}

func (tr *typeReader) read() (*Descriptors, error) {
	if err := tr.collectTags(); err != nil {
		return nil, err
	}
	if err := tr.collectAnnotated(); err != nil {
		return nil, err
	}
	modelObjects, err := tr.modelObjects()
	if err != nil {
		return nil, err
	}
	d := &Descriptors{Type: tr.base, modelObjects: modelObjects, cache: tr.r.cache}

	groups := map[string]*group{}
	var groupOrder []string
	extra := map[string][]apis.AspectDefinition{}
	var extraOrder []string

	for _, member := range tr.order {
		anns := tr.members[member]
		var elems []apis.ElementAnnotation
		var aspects []apis.AspectDefinition
		for _, a := range anns {
			switch a := a.(type) {
			case apis.ElementAnnotation:
				elems = append(elems, a)
			case apis.AspectAnnotation:
				aspects = append(aspects, a.AspectDefinitions()...)
			case apis.ModelObjectAnnotation:
			default:
				return nil, tr.fail(fmt.Sprintf("unsupported annotation %T", a), member)
			}
		}

		if member == annotation.TypeLevel {
			if err := tr.layout(d, elems, aspects, modelObjects); err != nil {
				return nil, err
			}
			continue
		}
		if !tr.exists(member) && !allModelBound(anns) {
			return nil, tr.fail("annotated member does not exist", member)
		}
		if len(elems) == 0 {
			if len(aspects) > 0 {
				prop := uref.PropertyName(member)
				if _, ok := extra[prop]; !ok {
					extraOrder = append(extraOrder, prop)
				}
				extra[prop] = append(extra[prop], aspects...)
			}
			continue
		}

		for _, ea := range elems {
			ed, err := tr.element(member, ea, aspects, modelObjects)
			if err != nil {
				return nil, err
			}
			prop := ed.BoundProperty.PmoProperty
			g, ok := groups[prop]
			if !ok {
				g = &group{property: prop, position: ed.Position, elements: map[apis.Kind]*ElementDescriptor{}}
				groups[prop] = g
				groupOrder = append(groupOrder, prop)
			}
			if _, dup := g.elements[ed.Kind]; dup {
				return nil, tr.fail(fmt.Sprintf("property %q declares %s twice", prop, ed.Kind), member)
			}
			if g.position != ed.Position {
				return nil, tr.fail(fmt.Sprintf(
					"alternative elements of property %q must share a position, got %d and %d",
					prop, g.position, ed.Position), member)
			}
			g.kinds = append(g.kinds, ed.Kind)
			g.elements[ed.Kind] = ed
		}
	}

	for _, prop := range extraOrder {
		g, ok := groups[prop]
		if !ok {
			tr.r.log.Debug("dropped aspects of property without element",
				"type", tr.name, "property", prop, "aspects", len(extra[prop]))
			continue
		}
		for _, ed := range g.elements {
			ed.Aspects = append(ed.Aspects, extra[prop]...)
		}
	}

	positions := map[int]string{}
	for _, prop := range groupOrder {
		g := groups[prop]
		if other, dup := positions[g.position]; dup {
			members := []string{other, prop}
			slices.Sort(members)
			return nil, tr.fail("duplicate position "+strconv.Itoa(g.position), members...)
		}
		positions[g.position] = prop

		pd := &PropertyElementDescriptors{
			Property:    g.property,
			Position:    g.position,
			kinds:       g.kinds,
			descriptors: g.elements,
			cache:       tr.r.cache,
		}
		if pd.IsDynamic() {
			acc, ok := tr.r.cache.Lookup(tr.ptr, uref.Getter, uref.AccessorNames(prop, componentTypeAspect)...)
			if !ok {
				return nil, tr.fail(fmt.Sprintf("dynamic field %q needs a %s method",
					prop, uref.Capitalize(prop)+uref.Capitalize(componentTypeAspect)), prop)
			}
			if acc.Type.Kind() != reflect.String {
				return nil, tr.fail("component type method must return a kind", acc.Name)
			}
			pd.discriminator = acc.Name
		}
		d.properties = append(d.properties, pd)
	}
	slices.SortStableFunc(d.properties, func(a, b *PropertyElementDescriptors) int {
		return a.Position - b.Position
	})
	return d, nil
}

// collectTags decodes the struct tags of exported fields.
func (tr *typeReader) collectTags() error {
	if tr.base.Kind() != reflect.Struct {
		return nil
	}
	key := tr.r.cfg.TagKey
	for _, f := range reflect.VisibleFields(tr.base) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup(key)
		if !ok || tag == "" || tag == "-" {
			continue
		}
		decls, err := annotation.ParseTag(tag)
		if err != nil {
			return tr.fail(err.Error(), f.Name)
		}
		anns, unknown, err := annotation.Decode(tr.r.reg, decls)
		if err != nil {
			return tr.fail(err.Error(), f.Name)
		}
		if len(unknown) > 0 {
			if tr.r.cfg.StrictTags {
				return tr.fail(fmt.Sprintf("unknown annotation kinds %v", unknown), f.Name)
			}
			tr.r.log.Warn("ignored unknown annotation kinds",
				"type", tr.name, "member", f.Name, "kinds", unknown)
		}
		tr.add(f.Name, anns...)
	}
	return nil
}

// collectAnnotated merges the annotations declared in code.
func (tr *typeReader) collectAnnotated() (err error) {
	if !tr.ptr.Implements(reflect.TypeFor[annotation.Annotated]()) {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = tr.fail(fmt.Sprintf("Annotations panicked: %v", p))
		}
	}()
	members := reflect.New(tr.base).Interface().(annotation.Annotated).Annotations()
	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		for _, a := range members[n] {
			if a == nil {
				return tr.fail("nil annotation", n)
			}
		}
		tr.add(n, members[n]...)
	}
	return nil
}

func (tr *typeReader) add(member string, anns ...apis.Annotation) {
	if len(anns) == 0 {
		return
	}
	if _, ok := tr.members[member]; !ok {
		tr.order = append(tr.order, member)
	}
	tr.members[member] = append(tr.members[member], anns...)
}

// modelObjects maps model object names to the members supplying them. A
// readable member matching the default model object name is picked up
// without annotation.
func (tr *typeReader) modelObjects() (map[string]string, error) {
	out := map[string]string{}
	for _, member := range tr.order {
		for _, a := range tr.members[member] {
			mo, ok := a.(apis.ModelObjectAnnotation)
			if !ok {
				continue
			}
			if member == annotation.TypeLevel {
				return nil, tr.fail("model object annotation needs a member")
			}
			name := mo.ModelObjectName()
			if name == "" {
				name = tr.r.cfg.DefaultModelObject
			}
			if prev, dup := out[name]; dup {
				return nil, tr.fail("duplicate model object "+strconv.Quote(name), prev, member)
			}
			if !tr.r.cache.Has(tr.ptr, uref.Getter, member) {
				return nil, tr.fail("model object member is not readable", member)
			}
			out[name] = member
		}
	}
	def := tr.r.cfg.DefaultModelObject
	if _, ok := out[def]; !ok && def != "" {
		if acc, ok := tr.r.cache.Lookup(tr.ptr, uref.Getter, uref.AccessorNames(def, "")...); ok {
			out[def] = acc.Name
		}
	}
	return out, nil
}

// element builds the descriptor of one element annotation on member.
func (tr *typeReader) element(member string, ea apis.ElementAnnotation, aspects []apis.AspectDefinition, modelObjects map[string]string) (*ElementDescriptor, error) {
	if ea.ComponentDefinition() == nil {
		return nil, tr.fail(fmt.Sprintf("%s has no component definition", ea.Kind()), member)
	}
	prop := ea.PropertyOverride()
	if prop == "" {
		prop = uref.PropertyName(member)
	}
	bp := apis.BoundProperty{PmoProperty: prop}
	object, attribute := ea.ModelBinding()
	if object != "" && attribute == "" {
		attribute = prop
	}
	if attribute != "" {
		if object == "" {
			object = tr.r.cfg.DefaultModelObject
		}
		if _, ok := modelObjects[object]; !ok {
			return nil, tr.fail(fmt.Sprintf("property %q refers to unknown model object %q", prop, object), member)
		}
		bp.ModelObject, bp.ModelAttribute = object, attribute
	}
	own := ea.AspectDefinitions()
	all := make([]apis.AspectDefinition, 0, len(own)+len(aspects))
	all = append(all, own...)
	all = append(all, aspects...)
	return &ElementDescriptor{
		Kind:          ea.Kind(),
		Position:      ea.ElementPosition(),
		Member:        member,
		BoundProperty: bp,
		Definition:    ea.ComponentDefinition(),
		Aspects:       all,
		BindingKind:   ea.BindingKind(),
	}, nil
}

// layout records the type-level element.
func (tr *typeReader) layout(d *Descriptors, elems []apis.ElementAnnotation, aspects []apis.AspectDefinition, modelObjects map[string]string) error {
	switch len(elems) {
	case 0:
		if len(aspects) > 0 {
			tr.r.log.Debug("dropped type-level aspects without layout", "type", tr.name)
		}
		return nil
	case 1:
	default:
		return tr.fail("more than one type-level element")
	}
	ed, err := tr.element(annotation.TypeLevel, elems[0], aspects, modelObjects)
	if err != nil {
		return err
	}
	ed.BoundProperty = apis.BoundProperty{}
	d.Layout = ed
	return nil
}

// exists reports whether member is an exported field or method of the PMO.
func (tr *typeReader) exists(member string) bool {
	if _, ok := tr.ptr.MethodByName(member); ok {
		return true
	}
	if tr.base.Kind() != reflect.Struct {
		return false
	}
	f, ok := tr.base.FieldByName(member)
	return ok && f.IsExported()
}

// allModelBound reports whether every annotation is an element bound to a
// model attribute, which lets the member be absent from the PMO.
func allModelBound(anns []apis.Annotation) bool {
	for _, a := range anns {
		ea, ok := a.(apis.ElementAnnotation)
		if !ok {
			return false
		}
		if object, attribute := ea.ModelBinding(); object == "" && attribute == "" {
			return false
		}
	}
	return len(anns) > 0
}
