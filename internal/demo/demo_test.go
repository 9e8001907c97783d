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

package demo

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/linkki/builder"
	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/ui"
)

func newSession(t *testing.T, p *Person, countries ...string) *Session {
	t.Helper()
	b := builder.New()
	cfg := config.DefaultConfig()
	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	s, err := NewSession(b.BuildReader(cfg, reg, nil, nil), NewPersonPmo(p, countries...))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func widget[T any](t *testing.T, s *Session, property string) T {
	t.Helper()
	w, ok := s.Widget(property)
	if !ok {
		t.Fatalf("no widget for %q", property)
	}
	c, ok := w.(T)
	if !ok {
		t.Fatalf("%s is a %T", property, w)
	}
	return c
}

func TestSession_Layout(t *testing.T) {
	s := newSession(t, &Person{}, "DE", "FR")

	sec := s.Layout().(*ui.Section)
	if got, want := sec.Caption(), "Person"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	var kinds []string
	for _, ch := range sec.Children() {
		kinds = append(kinds, ch.(ui.Component).Kind())
	}
	want := []string{"label", "textfield", "combobox", "checkbox", "textfield", "table", "button", "button"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if got, want := widget[*ui.Label](t, s, "summary").Value(), any("New person"); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if diff := cmp.Diff([]string{"Name is required"}, widget[*ui.TextField](t, s, "name").Messages()); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
}

func TestSession_NameUpdatesSummary(t *testing.T) {
	p := &Person{}
	s := newSession(t, p)

	if err := s.Apply("name", "Ada"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Name != "Ada" {
		t.Fatalf("got %q, want %q", p.Name, "Ada")
	}
	if got, want := widget[*ui.Label](t, s, "summary").Value(), any("Ada"); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if msgs := widget[*ui.TextField](t, s, "name").Messages(); len(msgs) != 0 {
		t.Fatalf("got messages %v, want none", msgs)
	}
}

func TestSession_NewsletterEnablesEmail(t *testing.T) {
	p := &Person{Name: "Ada"}
	s := newSession(t, p)
	email := widget[*ui.TextField](t, s, "email")

	if email.Enabled() || email.Required() {
		t.Fatalf("email must start disabled and optional")
	}
	if err := s.Apply("email", "x"); !errors.Is(err, ui.ErrNotEditable) {
		t.Fatalf("got %v, want %v", err, ui.ErrNotEditable)
	}

	if err := s.Apply("newsletter", "true"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !p.Newsletter {
		t.Fatalf("newsletter not written to the model")
	}
	if !email.Enabled() || !email.Required() {
		t.Fatalf("email must be enabled and required with the newsletter")
	}
	if diff := cmp.Diff([]string{"Email is required for the newsletter"}, email.Messages()); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}

	if err := s.Apply("email", "ada"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if diff := cmp.Diff([]string{"Email looks invalid"}, email.Messages()); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
	if err := s.Apply("newsletter", "maybe"); err == nil {
		t.Fatalf("want a parse error")
	}
}

func TestSession_Country(t *testing.T) {
	p := &Person{}
	s := newSession(t, p, "DE", "FR")

	combo := widget[*ui.ComboBox](t, s, "country")
	if diff := cmp.Diff([]any{"DE", "FR"}, combo.Items()); diff != "" {
		t.Fatalf("items (-want +got):\n%s", diff)
	}
	if err := s.Apply("country", "FR"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Country != "FR" {
		t.Fatalf("got %q, want %q", p.Country, "FR")
	}
	if err := s.Apply("country", "XX"); !errors.Is(err, ui.ErrNoSuchItem) {
		t.Fatalf("got %v, want %v", err, ui.ErrNoSuchItem)
	}

	s.Pmo.SetCountries()
	if err := s.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	field := widget[*ui.TextField](t, s, "country")
	if got, want := field.Value(), any("FR"); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := len(s.Context.Bindings()), 1; got != want {
		t.Fatalf("got %d bindings after rebuild, want %d", got, want)
	}
}

func TestSession_Phones(t *testing.T) {
	p := &Person{Name: "Ada"}
	s := newSession(t, p)
	table := widget[*ui.Table](t, s, "phones")

	if err := s.Apply("addPhone", ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rows := table.Rows()
	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("got rows %v, want one row of two cells", rows)
	}
	if got, want := rows[0][0].(*ui.Label).Value(), any("mobile"); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	number := rows[0][1].(*ui.TextField)
	if diff := cmp.Diff([]string{"Number is empty"}, number.Messages()); diff != "" {
		t.Fatalf("messages (-want +got):\n%s", diff)
	}
	if err := number.Input("555-1234"); err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got, want := p.Phones[0].Number, "555-1234"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if err := s.Apply("addPhone", ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rows = table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !slices.Contains(rows[0], any(number)) {
		t.Fatalf("first row was not reused")
	}
}

func TestSession_Save(t *testing.T) {
	p := &Person{}
	s := newSession(t, p)

	if err := s.Apply("save", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want %v", err, ErrInvalid)
	}
	if err := s.Apply("name", "Ada"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := s.Apply("save", ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got, want := s.Pmo.Saved(), 1; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if err := s.Apply("nope", ""); !errors.Is(err, ErrNoWidget) {
		t.Fatalf("got %v, want %v", err, ErrNoWidget)
	}
}
