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
	uref "dirpx.dev/linkki/utils/reflect"
)

// Manager owns named contexts sharing one configuration. A model change in
// any context refreshes all of them, then notifies the observers once.
type Manager struct {
	opts      *options
	contexts  []*Context
	observers []apis.UiUpdateObserver
}

// NewManager returns a manager without contexts. Observers given as
// options are notified by the manager, not by its contexts.
func NewManager(opts ...Option) *Manager {
	o := newOptions(opts...)
	m := &Manager{opts: o, observers: o.observers}
	o.observers = nil
	return m
}

// Context returns the context named name, creating it on first use.
func (m *Manager) Context(name string) *Context {
	for _, c := range m.contexts {
		if c.name == name {
			return c
		}
	}
	c := newContext(name, m.opts)
	c.afterModelChanged = m.ModelChanged
	m.contexts = append(m.contexts, c)
	return c
}

// Contexts returns the contexts in creation order.
func (m *Manager) Contexts() []*Context { return slices.Clone(m.contexts) }

// RemoveContext drops the context named name and reports whether it existed.
func (m *Manager) RemoveContext(name string) bool {
	i := slices.IndexFunc(m.contexts, func(c *Context) bool { return c.name == name })
	if i < 0 {
		return false
	}
	m.contexts[i].afterModelChanged = nil
	m.contexts = slices.Delete(m.contexts, i, i+1)
	return true
}

// AddUiUpdateObserver registers o.
func (m *Manager) AddUiUpdateObserver(o apis.UiUpdateObserver) {
	if o != nil {
		m.observers = append(m.observers, o)
	}
}

// RemoveUiUpdateObserver unregisters o. Observers are compared by identity.
func (m *Manager) RemoveUiUpdateObserver(o apis.UiUpdateObserver) {
	m.observers = slices.DeleteFunc(m.observers, func(x apis.UiUpdateObserver) bool {
		return uref.Same(x, o)
	})
}

// UpdateUI refreshes every context in creation order and notifies the
// observers once. The first error aborts.
func (m *Manager) UpdateUI() error {
	for _, c := range slices.Clone(m.contexts) {
		if err := c.update(); err != nil {
			return err
		}
	}
	for _, o := range m.observers {
		o.UiUpdated()
	}
	return nil
}

// ModelChanged refreshes every context. Errors go to the error handler.
func (m *Manager) ModelChanged() {
	if err := m.UpdateUI(); err != nil {
		m.opts.onError(err)
	}
}
