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
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// WithBehaviors returns a Link applying property behaviors, or nil if p is nil.
func WithBehaviors(p apis.PropertyBehaviorProvider) Link {
	if p == nil {
		return nil
	}
	return func(next apis.Dispatcher) apis.Dispatcher {
		return NewBehavior(p, next)
	}
}

// NewBehavior returns a dispatcher applying the behaviors of p:
// visibility is ANDed with every behavior's IsVisible, writes require every
// behavior's IsWritable, and messages are dropped when any behavior refuses
// to show them.
func NewBehavior(p apis.PropertyBehaviorProvider, next apis.Dispatcher) apis.Dispatcher {
	return &behavior{provider: p, next: next}
}

type behavior struct {
	provider apis.PropertyBehaviorProvider
	next     apis.Dispatcher
}

// Ensure behavior implements apis.Dispatcher.
var _ apis.Dispatcher = (*behavior)(nil)

func (b *behavior) Property() string { return b.next.Property() }

func (b *behavior) BoundObject() any { return b.next.BoundObject() }

func (b *behavior) Pull(a apis.Aspect) (any, error) {
	if a.Name == apis.VisibleAspect && !b.consensus(apis.PropertyBehavior.IsVisible) {
		return false, nil
	}
	return b.next.Pull(a)
}

func (b *behavior) Push(a apis.Aspect) error {
	if a.HasValue() && !b.consensus(apis.PropertyBehavior.IsWritable) {
		return &apis.BindingError{
			Op:       "push",
			Type:     uref.TypeNameOf(b.BoundObject()),
			Property: b.Property(),
			Aspect:   a.Name,
			Kind:     apis.ErrReadOnly,
		}
	}
	return b.next.Push(a)
}

func (b *behavior) IsPushable(a apis.Aspect) bool {
	return b.consensus(apis.PropertyBehavior.IsWritable) && b.next.IsPushable(a)
}

func (b *behavior) Messages(l message.List) message.List {
	if !b.consensus(apis.PropertyBehavior.IsShowValidationMessages) {
		return message.List{}
	}
	return b.next.Messages(l)
}

// consensus reports whether every behavior agrees.
func (b *behavior) consensus(pred func(apis.PropertyBehavior, any, string) bool) bool {
	obj, prop := b.BoundObject(), b.Property()
	for _, pb := range b.provider.Behaviors() {
		if !pred(pb, obj, prop) {
			return false
		}
	}
	return true
}
