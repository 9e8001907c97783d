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

// Package remote mirrors a widget tree to websocket clients and routes
// their input back into the binding layer.
//
// A Hub is the single entry point into the bindings of one UI session: it
// holds the session lock while client events are applied and while the
// host runs Do. Widget ops emitted during that time are collected and sent
// to every client as one Update after each completed UI update.
package remote

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/ui"
)

var (
	// ErrUnknownComponent is returned for events addressing no tracked widget.
	ErrUnknownComponent = errors.New("linkki(remote): unknown component")
	// ErrUnknownAction is returned for events the widget cannot handle.
	ErrUnknownAction = errors.New("linkki(remote): unknown action")
)

// Event actions.
const (
	ActionInput  = "input"
	ActionCheck  = "check"
	ActionSelect = "select"
	ActionClick  = "click"
)

// Event is a user action reported by a client.
type Event struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	// Value is the input text, the check state, or the selected index.
	Value any `json:"value,omitempty"`
}

// Update is sent to clients. The first update of a connection carries the
// whole tree; later ones carry the ops of one UI update, or an error.
type Update struct {
	Tree  *ui.Node `json:"tree,omitempty"`
	Ops   []ui.Op  `json:"ops,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Hub tracks the widgets of one session and its clients.
type Hub struct {
	// mu is the session lock.
	mu      sync.Mutex
	root    any
	comps   map[string]ui.Component
	pending []ui.Op

	clientsMu sync.Mutex
	clients   map[*client]struct{}

	log *slog.Logger
}

// Ensure Hub implements ui.Tracker and apis.UiUpdateObserver.
var (
	_ ui.Tracker            = (*Hub)(nil)
	_ apis.UiUpdateObserver = (*Hub)(nil)
)

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHub returns a hub without widgets.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		comps:   map[string]ui.Component{},
		clients: map[*client]struct{}{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount makes root the mirrored widget tree.
func (h *Hub) Mount(root any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.root = root
	h.sync()
	h.pending = nil
}

// Do runs fn under the session lock. Bindings of the session must only be
// used inside Do.
func (h *Hub) Do(fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn()
}

// Emit implements ui.Sink. It is called by widgets under the session lock.
func (h *Hub) Emit(op ui.Op) {
	h.pending = append(h.pending, op)
}

// Track implements ui.Tracker. A widget seen for the first time is
// attached and its properties are queued as ops.
func (h *Hub) Track(c ui.Component) {
	if _, ok := h.comps[c.ID()]; ok {
		return
	}
	h.comps[c.ID()] = c
	c.Attach(h)
	props := c.Props()
	for _, k := range slices.Sorted(maps.Keys(props)) {
		h.pending = append(h.pending, ui.Op{ID: c.ID(), Key: k, Value: props[k]})
	}
}

// UiUpdated implements apis.UiUpdateObserver. It runs at the end of a UI
// update, under the session lock, and publishes the collected ops.
func (h *Hub) UiUpdated() {
	h.sync()
	if len(h.pending) == 0 {
		return
	}
	h.broadcast(Update{Ops: h.pending})
	h.pending = nil
}

// HandleError publishes err to the clients. It can serve as the error
// handler of a binding context.
func (h *Hub) HandleError(err error) {
	h.log.Error("ui event failed", "err", err)
	h.broadcast(Update{Error: err.Error()})
}

// Snapshot returns the current widget tree.
func (h *Hub) Snapshot() ui.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	return ui.Tree(h.root)
}

// Dispatch applies e under the session lock.
func (h *Hub) Dispatch(e Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.comps[e.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownComponent, e.ID)
	}
	switch w := c.(type) {
	case *ui.CheckBox:
		if e.Action == ActionCheck {
			v, _ := e.Value.(bool)
			return w.Check(v)
		}
	case *ui.ComboBox:
		if e.Action == ActionSelect {
			i, ok := e.Value.(float64)
			if !ok {
				return fmt.Errorf("%w: select needs an index, got %T", ErrUnknownAction, e.Value)
			}
			return w.SelectIndex(int(i))
		}
	case *ui.TextField:
		if e.Action == ActionInput {
			return w.Input(e.Value)
		}
	case *ui.Button:
		if e.Action == ActionClick {
			return w.Click()
		}
	}
	return fmt.Errorf("%w: %s on %s", ErrUnknownAction, e.Action, c.Kind())
}

// sync tracks new widgets and forgets the ones no longer in the tree.
func (h *Hub) sync() {
	live := map[string]bool{}
	ui.Walk(h.root, func(c ui.Component) {
		live[c.ID()] = true
		h.Track(c)
	})
	maps.DeleteFunc(h.comps, func(id string, _ ui.Component) bool { return !live[id] })
}

// join queues the current tree for c and registers it for updates. Both
// happen under the session lock so that c misses no update.
func (h *Hub) join(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tree := ui.Tree(h.root)
	c.send <- Update{Tree: &tree}

	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = struct{}{}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	return len(h.clients)
}

func (h *Hub) unregister(c *client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	delete(h.clients, c)
}

// broadcast queues u for every client. A client whose queue is full
// misses the update.
func (h *Hub) broadcast(u Update) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- u:
		default:
			h.log.Warn("dropped update for slow client", "client", c.id)
		}
	}
}
