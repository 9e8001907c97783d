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
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// WithReflection returns a Link resolving property on the object returned
// by target. Target is called on every dispatch, so a replaced object is
// picked up immediately.
func WithReflection(target func() (any, error), property string, cache *uref.Cache) Link {
	return func(next apis.Dispatcher) apis.Dispatcher {
		return NewReflection(target, property, cache, next)
	}
}

// NewReflection returns a dispatcher reading and writing members of the
// target object by naming convention:
//
//	value:          <Prop>, Get<Prop>, Is<Prop> or field <Prop>
//	aspect:         <Prop><Aspect>, Is<Prop><Aspect>, Get<Prop><Aspect>
//	write:          Set<Prop><Aspect> or field <Prop><Aspect>
//	invoke:         <Prop><Aspect>()
//
// Queries the target cannot answer are delegated to next.
func NewReflection(target func() (any, error), property string, cache *uref.Cache, next apis.Dispatcher) apis.Dispatcher {
	if cache == nil {
		cache = uref.NewCache()
	}
	return &reflection{target: target, property: property, cache: cache, next: next}
}

type reflection struct {
	target   func() (any, error)
	property string
	cache    *uref.Cache
	next     apis.Dispatcher
}

// Ensure reflection implements apis.Dispatcher.
var _ apis.Dispatcher = (*reflection)(nil)

func (r *reflection) Property() string { return r.property }

func (r *reflection) BoundObject() any {
	obj, err := r.target()
	if err != nil || obj == nil {
		return r.next.BoundObject()
	}
	return obj
}

func (r *reflection) Pull(a apis.Aspect) (any, error) {
	obj, err := r.target()
	if err != nil {
		return nil, r.fail("pull", obj, "", a, err)
	}
	acc, ok := r.lookup(obj, uref.Getter, a)
	if !ok {
		return r.next.Pull(a)
	}
	v, err := acc.Read(obj)
	if err != nil {
		return nil, r.fail("pull", obj, acc.Name, a, err)
	}
	return v, nil
}

func (r *reflection) Push(a apis.Aspect) error {
	obj, err := r.target()
	if err != nil {
		return r.fail("push", obj, "", a, err)
	}
	v, hasValue := a.Value()
	if !hasValue {
		acc, ok := r.lookup(obj, uref.Action, a)
		if !ok {
			return r.next.Push(a)
		}
		if err := acc.Invoke(obj); err != nil {
			return r.fail("invoke", obj, acc.Name, a, err)
		}
		return nil
	}
	acc, ok := r.lookup(obj, uref.Setter, a)
	if !ok {
		return r.next.Push(a)
	}
	if err := acc.Write(obj, v); err != nil {
		return r.fail("push", obj, acc.Name, a, err)
	}
	return nil
}

func (r *reflection) IsPushable(a apis.Aspect) bool {
	obj, err := r.target()
	if err != nil {
		return false
	}
	role := uref.Setter
	if !a.HasValue() {
		role = uref.Action
	}
	if _, ok := r.lookup(obj, role, a); ok {
		return true
	}
	return r.next.IsPushable(a)
}

func (r *reflection) Messages(l message.List) message.List {
	own := message.List{}
	if obj, err := r.target(); err == nil && obj != nil {
		own = l.For(obj, r.property)
	}
	return append(own, r.next.Messages(l)...)
}

// lookup resolves the member for a on obj. A nil obj resolves nothing.
func (r *reflection) lookup(obj any, role uref.Role, a apis.Aspect) (*uref.Accessor, bool) {
	if obj == nil {
		return nil, false
	}
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil() {
		return nil, false
	}
	base := uref.Capitalize(r.property) + uref.Capitalize(a.Name)
	if base == "" {
		return nil, false
	}
	switch role {
	case uref.Setter:
		return r.cache.Lookup(t, role, "Set"+base, base)
	case uref.Action:
		return r.cache.Lookup(t, role, base)
	default:
		return r.cache.Lookup(t, role, uref.AccessorNames(r.property, a.Name)...)
	}
}

// fail wraps a member failure with the member context.
func (r *reflection) fail(op string, obj any, member string, a apis.Aspect, cause error) error {
	if member == "" {
		cause = errors.Wrap(cause, "cannot obtain target")
	} else {
		cause = errors.Wrapf(cause, "%s.%s", uref.TypeNameOf(obj), member)
	}
	return &apis.BindingError{
		Op:       op,
		Type:     uref.TypeNameOf(obj),
		Property: r.property,
		Aspect:   a.Name,
		Kind:     apis.ErrInvocation,
		Err:      cause,
	}
}
