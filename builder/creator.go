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

package builder

import (
	"fmt"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/descriptor"
	uref "dirpx.dev/linkki/utils/reflect"
)

// Creator creates the components of PMOs and binds them.
type Creator struct {
	reader *descriptor.Reader
}

// NewCreator returns a creator reading descriptors with r.
func NewCreator(r *descriptor.Reader) *Creator {
	return &Creator{reader: r}
}

// Reader returns the descriptor reader.
func (c *Creator) Reader() *descriptor.Reader { return c.reader }

// defaultLayout is used for PMOs without a type-level element.
var defaultLayout = func() *descriptor.ElementDescriptor {
	s := annotation.Section{}
	return &descriptor.ElementDescriptor{
		Kind:        s.Kind(),
		Definition:  s.ComponentDefinition(),
		Aspects:     s.AspectDefinitions(),
		BindingKind: s.BindingKind(),
	}
}()

// CreateSection creates the layout of pmo with one child component per
// property, ordered by position, and binds all of them through b. The
// layout binding is returned with the layout component.
func (c *Creator) CreateSection(b binding.Binder, pmo any) (any, *binding.ContainerBinding, error) {
	ds, err := c.reader.ReadFor(pmo)
	if err != nil {
		return nil, nil, err
	}
	layout := ds.Layout
	if layout == nil {
		layout = defaultLayout
	}
	comp, err := layout.Definition.CreateComponent(pmo)
	if err != nil {
		return nil, nil, fmt.Errorf("linkki(builder): create layout of %s: %w", uref.TypeNameOf(pmo), err)
	}
	holder, ok := comp.(apis.ChildrenHolder)
	if !ok {
		return nil, nil, apis.NewConfigError(uref.TypeNameOf(pmo),
			fmt.Sprintf("layout %T cannot hold children", comp))
	}
	lb, err := b.Bind(pmo, layout, comp)
	if err != nil {
		return nil, nil, err
	}
	cb, ok := lb.(*binding.ContainerBinding)
	if !ok {
		return nil, nil, apis.NewConfigError(uref.TypeNameOf(pmo),
			fmt.Sprintf("layout %s is bound as %T, want a container", layout.Kind, lb))
	}
	if err := c.AddProperties(cb, holder, pmo, ds); err != nil {
		return nil, nil, err
	}
	return comp, cb, nil
}

// AddProperties creates and binds the components of every property of
// pmo and adds them to holder.
func (c *Creator) AddProperties(b binding.Binder, holder apis.ChildrenHolder, pmo any, ds *descriptor.Descriptors) error {
	for _, p := range ds.Properties() {
		ed, err := p.Descriptor(pmo)
		if err != nil {
			return err
		}
		child, err := ed.Definition.CreateComponent(pmo)
		if err != nil {
			return fmt.Errorf("linkki(builder): create %s of %s: %w", p.Property, uref.TypeNameOf(pmo), err)
		}
		if _, err := b.Bind(pmo, ed, child); err != nil {
			return err
		}
		holder.Add(child, "")
	}
	return nil
}
