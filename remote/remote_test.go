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

package remote_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/builder"
	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/remote"
	"dirpx.dev/linkki/ui"
)

type greeterPmo struct {
	Name  string `linkki:"textfield(position=10)"`
	saved int
}

func (*greeterPmo) Annotations() annotation.Members {
	return annotation.Members{
		annotation.TypeLevel: {annotation.Section{Caption: "Greeter"}},
		"Save":               {annotation.Button{Position: 20, Caption: "Save"}},
	}
}

func (p *greeterPmo) Save() { p.saved++ }

type session struct {
	hub    *remote.Hub
	pmo    *greeterPmo
	name   *ui.TextField
	save   *ui.Button
	layout *ui.Section
}

func newSession(t *testing.T) *session {
	t.Helper()
	b := builder.New()
	cfg := config.DefaultConfig()
	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	r := b.BuildReader(cfg, reg, nil, nil)
	hub := remote.NewHub()
	ctx := binding.NewContext("remote",
		binding.WithReader(r),
		binding.WithUiUpdateObserver(hub),
		binding.WithErrorHandler(hub.HandleError))
	pmo := &greeterPmo{Name: "Ada"}
	layout, _, err := builder.NewCreator(r).CreateSection(ctx, pmo)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	hub.Mount(layout)
	if err := hub.Do(ctx.UpdateUI); err != nil {
		t.Fatalf("UpdateUI: %v", err)
	}
	s := &session{hub: hub, pmo: pmo, layout: layout.(*ui.Section)}
	for _, ch := range s.layout.Children() {
		switch w := ch.(type) {
		case *ui.TextField:
			s.name = w
		case *ui.Button:
			s.save = w
		}
	}
	if s.name == nil || s.save == nil {
		t.Fatalf("missing widgets in %v", ui.Tree(layout))
	}
	return s
}

func (s *session) pmoName(t *testing.T) (name string, saved int) {
	t.Helper()
	_ = s.hub.Do(func() error {
		name, saved = s.pmo.Name, s.pmo.saved
		return nil
	})
	return name, saved
}

func TestDispatch(t *testing.T) {
	s := newSession(t)

	if err := s.hub.Dispatch(remote.Event{ID: s.name.ID(), Action: remote.ActionInput, Value: "Grace"}); err != nil {
		t.Fatalf("input: %v", err)
	}
	if err := s.hub.Dispatch(remote.Event{ID: s.save.ID(), Action: remote.ActionClick}); err != nil {
		t.Fatalf("click: %v", err)
	}
	if name, saved := s.pmoName(t); name != "Grace" || saved != 1 {
		t.Fatalf("got (%q, %d), want (%q, 1)", name, saved, "Grace")
	}

	tests := []struct {
		name string
		e    remote.Event
		want error
	}{
		{"unknown id", remote.Event{ID: "nope", Action: remote.ActionClick}, remote.ErrUnknownComponent},
		{"wrong action", remote.Event{ID: s.save.ID(), Action: remote.ActionInput}, remote.ErrUnknownAction},
		{"section", remote.Event{ID: s.layout.ID(), Action: remote.ActionClick}, remote.ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.hub.Dispatch(tt.e); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDispatch_DisabledField(t *testing.T) {
	s := newSession(t)
	_ = s.hub.Do(func() error {
		s.name.SetEnabled(false)
		return nil
	})
	err := s.hub.Dispatch(remote.Event{ID: s.name.ID(), Action: remote.ActionInput, Value: "x"})
	if !errors.Is(err, ui.ErrNotEditable) {
		t.Fatalf("got %v, want %v", err, ui.ErrNotEditable)
	}
}

func TestServeHTTP(t *testing.T) {
	s := newSession(t)
	srv := httptest.NewServer(s.hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	read := func() remote.Update {
		t.Helper()
		var u remote.Update
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&u); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		return u
	}

	first := read()
	if first.Tree == nil {
		t.Fatalf("first update has no tree: %+v", first)
	}
	if got, want := first.Tree.Kind, "section"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := len(first.Tree.Children), 2; got != want {
		t.Fatalf("got %d children, want %d", got, want)
	}

	if err := conn.WriteJSON(remote.Event{ID: s.name.ID(), Action: remote.ActionInput, Value: "Grace"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	u := read()
	found := false
	for _, op := range u.Ops {
		if op.ID == s.name.ID() && op.Key == ui.PropValue && op.Value == "Grace" {
			found = true
		}
	}
	if !found {
		t.Fatalf("value op missing in %+v", u.Ops)
	}
	if name, _ := s.pmoName(t); name != "Grace" {
		t.Fatalf("got %q, want %q", name, "Grace")
	}

	if err := conn.WriteJSON(remote.Event{ID: "nope", Action: remote.ActionClick}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if u := read(); !strings.Contains(u.Error, "unknown component") {
		t.Fatalf("got error %q, want unknown component", u.Error)
	}
}

func TestServeHTTP_NewWidgets(t *testing.T) {
	hub := remote.NewHub()
	sec := ui.NewSection()
	hub.Mount(sec)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	var snapshot remote.Update
	if err := conn.ReadJSON(&snapshot); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	label := ui.NewLabel()
	_ = hub.Do(func() error {
		label.SetValue("hi")
		label.SetLabel("Greeting")
		sec.Add(label, "")
		hub.UiUpdated()
		return nil
	})

	var u remote.Update
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	got := map[string]any{}
	for _, op := range u.Ops {
		if op.ID == label.ID() {
			got[op.Key] = op.Value
		}
	}
	if got[ui.PropValue] != "hi" || got[ui.PropLabel] != "Greeting" {
		t.Fatalf("ops of the new label: %v", got)
	}

	// Later changes of the label are plain ops.
	_ = hub.Do(func() error {
		label.SetValue("bye")
		hub.UiUpdated()
		return nil
	})
	u = remote.Update{}
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	want := []ui.Op{{ID: label.ID(), Key: ui.PropValue, Value: "bye"}}
	if len(u.Ops) != 1 || u.Ops[0] != want[0] {
		t.Fatalf("got %v, want %v", u.Ops, want)
	}
}

func TestServeHTTP_CloseUnregistersClient(t *testing.T) {
	s := newSession(t)
	srv := httptest.NewServer(s.hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	var u remote.Update
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got, want := s.hub.Clients(), 1; got != want {
		t.Fatalf("got %d clients, want %d", got, want)
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		t.Fatalf("WriteControl: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("got %d clients after close, want 0", s.hub.Clients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
