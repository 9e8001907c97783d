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

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
)

// ElementBinding binds one component to the dispatcher of a property.
type ElementBinding struct {
	ctx        *Context
	wrapper    apis.ComponentWrapper
	dispatcher apis.Dispatcher
	updaters   []func() error
}

// Ensure ElementBinding implements apis.Binding.
var _ apis.Binding = (*ElementBinding)(nil)

// NewElementBinding binds w to d. Aspects not supporting the wrapper type
// are dropped here and never consulted again. UI change events of the
// remaining aspects are routed to ctx.
func NewElementBinding(ctx *Context, w apis.ComponentWrapper, d apis.Dispatcher, aspects []apis.AspectDefinition) (*ElementBinding, error) {
	b := &ElementBinding{ctx: ctx, wrapper: w, dispatcher: d}
	u := ctx.modelUpdater()
	for _, a := range aspects {
		if a == nil || !a.Supports(w.Type()) {
			continue
		}
		up, err := a.CreateUIUpdater(d, w)
		if err != nil {
			return nil, fmt.Errorf("linkki(binding): %s: %w", d.Property(), err)
		}
		if err := a.InitModelUpdate(d, w, u); err != nil {
			return nil, fmt.Errorf("linkki(binding): %s: %w", d.Property(), err)
		}
		b.updaters = append(b.updaters, up)
	}
	return b, nil
}

// BoundObject implements apis.Binding.
func (b *ElementBinding) BoundObject() any { return b.dispatcher.BoundObject() }

// Component implements apis.Binding.
func (b *ElementBinding) Component() any { return b.wrapper.Component() }

// Wrapper returns the component wrapper.
func (b *ElementBinding) Wrapper() apis.ComponentWrapper { return b.wrapper }

// Dispatcher implements apis.Binding.
func (b *ElementBinding) Dispatcher() apis.Dispatcher { return b.dispatcher }

// UpdateFromPmo implements apis.Binding.
func (b *ElementBinding) UpdateFromPmo() error {
	for _, u := range b.updaters {
		if err := u(); err != nil {
			return err
		}
	}
	return nil
}

// DisplayMessages implements apis.Binding. The messages of all sources of
// the property are shown ordered by descending severity.
func (b *ElementBinding) DisplayMessages(l message.List) message.List {
	m := b.dispatcher.Messages(l).SortedBySeverity()
	b.wrapper.SetValidationMessages(m)
	return m
}

// ModelChanged implements apis.Binding.
func (b *ElementBinding) ModelChanged() { b.ctx.ModelChanged() }

// ButtonBinding binds an action element. A click invokes the property and
// refreshes the context; no value is read back and no messages are shown.
type ButtonBinding struct {
	*ElementBinding
}

// NewButtonBinding binds w to d.
func NewButtonBinding(ctx *Context, w apis.ComponentWrapper, d apis.Dispatcher, aspects []apis.AspectDefinition) (*ButtonBinding, error) {
	eb, err := NewElementBinding(ctx, w, d, aspects)
	if err != nil {
		return nil, err
	}
	return &ButtonBinding{ElementBinding: eb}, nil
}

// DisplayMessages implements apis.Binding.
func (b *ButtonBinding) DisplayMessages(message.List) message.List { return message.List{} }
