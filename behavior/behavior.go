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

// Package behavior provides property behaviors: cross-cutting predicates
// deciding whether bound properties may be written, shown, or decorated
// with validation messages.
package behavior

import (
	"sync/atomic"

	"dirpx.dev/linkki/apis"
)

// New constructs a provider returning the given behaviors in order.
// Nil behaviors are ignored. The provider is immutable.
func New(behaviors ...apis.PropertyBehavior) apis.PropertyBehaviorProvider {
	out := make([]apis.PropertyBehavior, 0, len(behaviors))
	for _, b := range behaviors {
		if b != nil {
			out = append(out, b)
		}
	}
	return list{behaviors: out}
}

// Default returns a provider without behaviors: everything is writable,
// visible, and shows its messages.
func Default() apis.PropertyBehaviorProvider { return list{} }

// list is an immutable, order-preserving provider.
type list struct {
	behaviors []apis.PropertyBehavior
}

// Behaviors implements apis.PropertyBehaviorProvider.
func (l list) Behaviors() []apis.PropertyBehavior {
	out := make([]apis.PropertyBehavior, len(l.behaviors))
	copy(out, l.behaviors)
	return out
}

// Predicate decides a behavior question for one property of object.
type Predicate func(object any, property string) bool

// Funcs builds a behavior from predicates. A nil predicate allows
// everything.
type Funcs struct {
	Writable     Predicate
	Visible      Predicate
	ShowMessages Predicate
}

// Ensure Funcs implements apis.PropertyBehavior.
var _ apis.PropertyBehavior = Funcs{}

// IsWritable implements apis.PropertyBehavior.
func (f Funcs) IsWritable(object any, property string) bool {
	return allow(f.Writable, object, property)
}

// IsVisible implements apis.PropertyBehavior.
func (f Funcs) IsVisible(object any, property string) bool {
	return allow(f.Visible, object, property)
}

// IsShowValidationMessages implements apis.PropertyBehavior.
func (f Funcs) IsShowValidationMessages(object any, property string) bool {
	return allow(f.ShowMessages, object, property)
}

func allow(p Predicate, object any, property string) bool {
	return p == nil || p(object, property)
}

// ReadOnly makes every property read-only while it is on. It may be
// toggled from any goroutine; bindings observe the change on their next
// update.
type ReadOnly struct {
	on atomic.Bool
}

// Ensure ReadOnly implements apis.PropertyBehavior.
var _ apis.PropertyBehavior = (*ReadOnly)(nil)

// NewReadOnly returns a read-only behavior in the given state.
func NewReadOnly(on bool) *ReadOnly {
	r := &ReadOnly{}
	r.on.Store(on)
	return r
}

// Set switches read-only mode.
func (r *ReadOnly) Set(on bool) { r.on.Store(on) }

// Toggle flips read-only mode and returns the new state.
func (r *ReadOnly) Toggle() bool {
	for {
		old := r.on.Load()
		if r.on.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// On reports whether read-only mode is active.
func (r *ReadOnly) On() bool { return r.on.Load() }

// IsWritable implements apis.PropertyBehavior.
func (r *ReadOnly) IsWritable(any, string) bool { return !r.on.Load() }

// IsVisible implements apis.PropertyBehavior.
func (*ReadOnly) IsVisible(any, string) bool { return true }

// IsShowValidationMessages implements apis.PropertyBehavior.
func (*ReadOnly) IsShowValidationMessages(any, string) bool { return true }
