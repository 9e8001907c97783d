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

package registry

import (
	"errors"
	"reflect"
	"slices"
	"sync"

	"dirpx.dev/linkki/apis"
)

var (
	// ErrEmptyKind is returned when an empty kind is provided.
	ErrEmptyKind = errors.New("linkki(registry): empty kind provided")
	// ErrNilFactory is returned when a nil factory is provided.
	ErrNilFactory = errors.New("linkki(registry): nil factory provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a kind with a different factory.
	ErrConflictingRegistration = errors.New("linkki(registry): conflicting kind registration")
)

// New constructs an empty annotation kind registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps apis.Kind to apis.AnnotationFactory.
	m sync.Map
	// count tracks the number of registered entries.
	count int
}

// Register associates kind with f.
// It is idempotent for the same (kind, function) pair.
func (r *registry) Register(kind apis.Kind, f apis.AnnotationFactory) error {
	// Validate inputs early.
	if kind == "" {
		return ErrEmptyKind
	}
	if f == nil {
		return ErrNilFactory
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(kind); ok {
		return sameOrConflict(old.(apis.AnnotationFactory), f)
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(kind); ok {
		return sameOrConflict(old.(apis.AnnotationFactory), f)
	}

	r.m.Store(kind, f)
	r.count++
	return nil
}

// sameOrConflict compares factories by code pointer; funcs are not comparable.
// Closures of one func literal share their code pointer, so re-registering
// one of them keeps the stored factory.
func sameOrConflict(old, f apis.AnnotationFactory) error {
	if reflect.ValueOf(old).Pointer() == reflect.ValueOf(f).Pointer() {
		return nil
	}
	return ErrConflictingRegistration
}

// Lookup returns the factory of kind if present.
func (r *registry) Lookup(kind apis.Kind) (apis.AnnotationFactory, bool) {
	if v, ok := r.m.Load(kind); ok {
		return v.(apis.AnnotationFactory), true
	}
	return nil, false
}

// Kinds returns the registered kinds, sorted.
func (r *registry) Kinds() []apis.Kind {
	kinds := make([]apis.Kind, 0, r.Count())
	r.m.Range(func(key, _ any) bool {
		kinds = append(kinds, key.(apis.Kind))
		return true
	})
	slices.Sort(kinds)
	return kinds
}

// Count returns the number of registered kinds.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered kinds.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
