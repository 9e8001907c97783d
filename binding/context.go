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

package binding

import (
	"fmt"
	"slices"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/dispatcher"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// Context owns the bindings of one UI region and refreshes them together.
// A Context is not safe for concurrent use; callers serialize all entry.
type Context struct {
	name     string
	opts     *options
	bindings []apis.Binding

	// afterModelChanged replaces the local refresh when the context belongs
	// to a manager.
	afterModelChanged func()
}

// Ensure Context implements Binder.
var _ Binder = (*Context)(nil)

// NewContext returns an empty context.
func NewContext(name string, opts ...Option) *Context {
	return newContext(name, newOptions(opts...))
}

func newContext(name string, o *options) *Context {
	return &Context{name: name, opts: o}
}

// Name returns the context name.
func (c *Context) Name() string { return c.name }

// Reader returns the descriptor reader of the context.
func (c *Context) Reader() *descriptor.Reader { return c.opts.reader }

// Add appends a binding.
func (c *Context) Add(b apis.Binding) *Context {
	if b != nil {
		c.bindings = append(c.bindings, b)
	}
	return c
}

// Bindings returns the top-level bindings in insertion order.
func (c *Context) Bindings() []apis.Binding { return slices.Clone(c.bindings) }

// Bind implements Binder.
func (c *Context) Bind(pmo any, ed *descriptor.ElementDescriptor, component any) (apis.Binding, error) {
	b, err := c.newBinding(pmo, ed, component, ed.Definition.WrapperType())
	if err != nil {
		return nil, err
	}
	c.Add(b)
	return b, nil
}

// RemoveBindingsForPmo removes every binding bound to pmo, including those
// nested in containers, and returns how many were removed.
func (c *Context) RemoveBindingsForPmo(pmo any) int {
	kept, n := removeWhere(c.bindings,
		func(b apis.Binding) bool { return uref.Same(b.BoundObject(), pmo) },
		func(b apis.Binding) int { return cascadePmo(b, pmo) })
	c.bindings = kept
	c.opts.log.Debug("removed bindings", "context", c.name, "pmo", uref.TypeNameOf(pmo), "count", n)
	return n
}

// RemoveBindingsForComponent removes every binding of component, including
// those nested in containers, and returns how many were removed.
func (c *Context) RemoveBindingsForComponent(component any) int {
	kept, n := removeWhere(c.bindings,
		func(b apis.Binding) bool { return uref.Same(b.Component(), component) },
		func(b apis.Binding) int { return cascadeComponent(b, component) })
	c.bindings = kept
	c.opts.log.Debug("removed bindings", "context", c.name, "component", uref.TypeNameOf(component), "count", n)
	return n
}

// UpdateUI refreshes the context: validation messages are fetched, sorted
// by descending severity and shown, then every binding is updated in
// insertion order, then the observers are notified. The first error aborts
// the pass; observers are only notified of completed passes.
func (c *Context) UpdateUI() error {
	if err := c.update(); err != nil {
		return err
	}
	for _, o := range c.opts.observers {
		o.UiUpdated()
	}
	return nil
}

// update refreshes the bindings without notifying observers.
func (c *Context) update() error {
	msgs, err := c.messages()
	if err != nil {
		return err
	}
	bindings := slices.Clone(c.bindings)
	for _, b := range bindings {
		b.DisplayMessages(msgs)
	}
	for _, b := range bindings {
		if err := b.UpdateFromPmo(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) messages() (message.List, error) {
	if c.opts.validation == nil {
		return message.List{}, nil
	}
	l, err := c.opts.validation.ValidationMessages()
	if err != nil {
		return nil, fmt.Errorf("linkki(binding): validation of %s: %w", c.name, err)
	}
	return l.SortedBySeverity(), nil
}

// ModelChanged refreshes after a model change. Inside a manager every
// context of the manager is refreshed. Errors go to the error handler.
func (c *Context) ModelChanged() {
	if c.afterModelChanged != nil {
		c.afterModelChanged()
		return
	}
	if err := c.UpdateUI(); err != nil {
		c.HandleError(err)
	}
}

// HandleError passes err to the error handler.
func (c *Context) HandleError(err error) {
	if err != nil {
		c.opts.onError(err)
	}
}

// modelUpdater returns the receiver of UI to model writes.
func (c *Context) modelUpdater() apis.ModelUpdater {
	return apis.ModelUpdaterFunc(func(push func() error) {
		if err := push(); err != nil {
			c.HandleError(err)
			return
		}
		c.ModelChanged()
	})
}

// Dispatcher builds the dispatcher chain of bp on pmo.
func (c *Context) Dispatcher(pmo any, bp apis.BoundProperty) (apis.Dispatcher, error) {
	cfg := dispatcher.ChainConfig{
		Pmo:       pmo,
		Property:  bp,
		Behaviors: c.opts.behaviors,
		Cache:     c.opts.cache,
	}
	if bp.HasModelAttribute() {
		ds, err := c.opts.reader.ReadFor(pmo)
		if err != nil {
			return nil, err
		}
		supply, err := ds.ModelObjectSupplier(pmo, bp.ModelObject)
		if err != nil {
			return nil, err
		}
		cfg.ModelObject = supply
	}
	return dispatcher.NewChain(cfg), nil
}

// newBinding creates the binding variant selected by ed.
func (c *Context) newBinding(pmo any, ed *descriptor.ElementDescriptor, component any, t *apis.WrapperType) (apis.Binding, error) {
	d, err := c.Dispatcher(pmo, ed.BoundProperty)
	if err != nil {
		return nil, err
	}
	w := c.opts.wrap(component, t)
	switch ed.BindingKind {
	case apis.ButtonBindingKind:
		return NewButtonBinding(c, w, d, ed.Aspects)
	case apis.ContainerBindingKind:
		return NewContainerBinding(c, w, d, ed.Aspects)
	case apis.TableBindingKind:
		return NewTableBinding(c, w, d, ed.Aspects, nil)
	default:
		return NewElementBinding(c, w, d, ed.Aspects)
	}
}

// newRow creates cells for every property of a row object. Cells are
// wrapped as apis.WrapperCell, so they get no label.
func (c *Context) newRow(pmo any) (*Row, error) {
	ds, err := c.opts.reader.ReadFor(pmo)
	if err != nil {
		return nil, err
	}
	props := ds.Properties()
	cells := make([]any, 0, len(props))
	bindings := make([]apis.Binding, 0, len(props))
	for _, p := range props {
		ed, err := p.Descriptor(pmo)
		if err != nil {
			return nil, err
		}
		comp, err := ed.Definition.CreateComponent(pmo)
		if err != nil {
			return nil, fmt.Errorf("linkki(binding): create %s cell: %w", p.Property, err)
		}
		b, err := c.newBinding(pmo, ed, comp, apis.WrapperCell)
		if err != nil {
			return nil, err
		}
		cells = append(cells, comp)
		bindings = append(bindings, b)
	}
	return NewRow(pmo, cells, bindings), nil
}
