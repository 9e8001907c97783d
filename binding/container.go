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
	"slices"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// Binder creates bindings for element descriptors and keeps them.
type Binder interface {
	// Bind binds component, created from ed for pmo, and keeps the binding.
	Bind(pmo any, ed *descriptor.ElementDescriptor, component any) (apis.Binding, error)
}

// ContainerBinding binds a layout and owns the bindings of its children.
// Its own aspects are always updated before any child.
type ContainerBinding struct {
	*ElementBinding
	children []apis.Binding
}

// Ensure ContainerBinding implements Binder.
var _ Binder = (*ContainerBinding)(nil)

// NewContainerBinding binds w to d.
func NewContainerBinding(ctx *Context, w apis.ComponentWrapper, d apis.Dispatcher, aspects []apis.AspectDefinition) (*ContainerBinding, error) {
	eb, err := NewElementBinding(ctx, w, d, aspects)
	if err != nil {
		return nil, err
	}
	return &ContainerBinding{ElementBinding: eb}, nil
}

// Bind implements Binder.
func (b *ContainerBinding) Bind(pmo any, ed *descriptor.ElementDescriptor, component any) (apis.Binding, error) {
	child, err := b.ctx.newBinding(pmo, ed, component, ed.Definition.WrapperType())
	if err != nil {
		return nil, err
	}
	b.Add(child)
	return child, nil
}

// Add appends a child binding.
func (b *ContainerBinding) Add(child apis.Binding) {
	if child != nil {
		b.children = append(b.children, child)
	}
}

// Children returns the child bindings.
func (b *ContainerBinding) Children() []apis.Binding { return slices.Clone(b.children) }

// UpdateFromPmo updates the container, then its children in order.
func (b *ContainerBinding) UpdateFromPmo() error {
	if err := b.ElementBinding.UpdateFromPmo(); err != nil {
		return err
	}
	for _, c := range b.children {
		if err := c.UpdateFromPmo(); err != nil {
			return err
		}
	}
	return nil
}

// DisplayMessages shows messages at the container and its children and
// returns all of them.
func (b *ContainerBinding) DisplayMessages(l message.List) message.List {
	out := b.ElementBinding.DisplayMessages(l)
	for _, c := range b.children {
		out = append(out, c.DisplayMessages(l)...)
	}
	return out
}

func (b *ContainerBinding) removeForPmo(pmo any) int {
	kept, n := removeWhere(b.children,
		func(c apis.Binding) bool { return uref.Same(c.BoundObject(), pmo) },
		func(c apis.Binding) int { return cascadePmo(c, pmo) })
	b.children = kept
	return n
}

func (b *ContainerBinding) removeForComponent(component any) int {
	kept, n := removeWhere(b.children,
		func(c apis.Binding) bool { return uref.Same(c.Component(), component) },
		func(c apis.Binding) int { return cascadeComponent(c, component) })
	b.children = kept
	return n
}

// removeWhere drops the bindings matching match and cascades into the
// others. It returns the kept bindings and the number removed.
func removeWhere(bs []apis.Binding, match func(apis.Binding) bool, cascade func(apis.Binding) int) ([]apis.Binding, int) {
	kept := bs[:0]
	n := 0
	for _, b := range bs {
		if match(b) {
			n++
			continue
		}
		n += cascade(b)
		kept = append(kept, b)
	}
	clear(bs[len(kept):])
	return kept, n
}

func cascadePmo(b apis.Binding, pmo any) int {
	if c, ok := b.(*ContainerBinding); ok {
		return c.removeForPmo(pmo)
	}
	return 0
}

func cascadeComponent(b apis.Binding, component any) int {
	if c, ok := b.(*ContainerBinding); ok {
		return c.removeForComponent(component)
	}
	return 0
}
