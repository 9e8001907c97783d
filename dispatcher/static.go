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

// WithStatic returns a Link answering pulls of aspects that carry a value.
func WithStatic() Link {
	return NewStatic
}

// NewStatic returns a dispatcher that answers Pull with the aspect's own
// value when one is present. An empty static label or caption is derived
// from the property name ("firstName" becomes "First name").
func NewStatic(next apis.Dispatcher) apis.Dispatcher {
	return &static{next: next}
}

type static struct {
	next apis.Dispatcher
}

// Ensure static implements apis.Dispatcher.
var _ apis.Dispatcher = (*static)(nil)

func (s *static) Property() string { return s.next.Property() }

func (s *static) BoundObject() any { return s.next.BoundObject() }

func (s *static) Pull(a apis.Aspect) (any, error) {
	v, ok := a.Value()
	if !ok {
		return s.next.Pull(a)
	}
	if a.Name == apis.LabelAspect || a.Name == apis.CaptionAspect {
		if str, _ := v.(string); str == "" {
			return uref.Humanize(s.next.Property()), nil
		}
	}
	return v, nil
}

func (s *static) Push(a apis.Aspect) error { return s.next.Push(a) }

func (s *static) IsPushable(a apis.Aspect) bool { return s.next.IsPushable(a) }

func (s *static) Messages(l message.List) message.List { return s.next.Messages(l) }
