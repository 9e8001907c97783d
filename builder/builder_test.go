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

package builder_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/builder"
	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/registry"
	"dirpx.dev/linkki/ui"
	uref "dirpx.dev/linkki/utils/reflect"
)

// customerPmo is a section with a dynamic field.
type customerPmo struct {
	Name  string `linkki:"textfield(position=10)"`
	Vip   bool   `linkki:"checkbox(position=30,label=VIP)"`
	combo bool
}

func (*customerPmo) Annotations() annotation.Members {
	level := []apis.Annotation{
		annotation.TextField{Position: 20},
		annotation.ComboBox{Position: 20, Content: aspect.StaticValues, Values: []any{"gold", "silver"}},
	}
	return annotation.Members{
		annotation.TypeLevel: {annotation.Section{Caption: "Customer"}},
		"Level":              level,
	}
}

func (*customerPmo) Level() string { return "gold" }

func (p *customerPmo) LevelComponentType() apis.Kind {
	if p.combo {
		return annotation.KindComboBox
	}
	return annotation.KindTextField
}

// plainPmo has no type-level element.
type plainPmo struct {
	Note string `linkki:"label(position=1)"`
}

func newCreator(t testing.TB) (*builder.Creator, *binding.Context) {
	t.Helper()
	b := builder.New()
	cfg := config.DefaultConfig()
	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	r := b.BuildReader(cfg, reg, nil, nil)
	return builder.NewCreator(r), binding.NewContext("test", binding.WithReader(r))
}

func TestBuildRegistry(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	if got, want := reg.Count(), 8; got != want {
		t.Fatalf("Count = %d, want %d", got, want)
	}

	slider := func(map[string]string) (apis.Annotation, error) { return annotation.Tooltip{}, nil }
	prev := registry.New()
	if err := prev.Register("slider", slider); err != nil {
		t.Fatalf("Register: %v", err)
	}
	reg, err = b.BuildRegistry(cfg, prev)
	if err != nil {
		t.Fatalf("BuildRegistry(prev): %v", err)
	}
	if _, ok := reg.Lookup("slider"); !ok {
		t.Fatalf("kinds of the previous registry must be copied")
	}

	clash := registry.New()
	_ = clash.Register(annotation.KindTextField, slider)
	if _, err := b.BuildRegistry(cfg, clash); !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("err = %v, want ErrConflictingRegistration", err)
	}
}

func TestBuildReader_SharesCache(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	reg, _ := b.BuildRegistry(cfg, nil)
	cache := uref.NewCache()
	if r := b.BuildReader(cfg, reg, cache, nil); r.Cache() != cache {
		t.Fatalf("reader must use the given cache")
	}
}

func TestCreateSection(t *testing.T) {
	c, ctx := newCreator(t)
	pmo := &customerPmo{Name: "Ada"}
	comp, cb, err := c.CreateSection(ctx, pmo)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if err := ctx.UpdateUI(); err != nil {
		t.Fatalf("UpdateUI: %v", err)
	}

	section := comp.(*ui.Section)
	if got := section.Caption(); got != "Customer" {
		t.Fatalf("caption = %q, want Customer", got)
	}
	var kinds, labels []string
	for _, ch := range section.Children() {
		w := ch.(ui.Component)
		kinds = append(kinds, w.Kind())
		l, _ := w.Props()[ui.PropLabel].(string)
		labels = append(labels, l)
	}
	if diff := cmp.Diff([]string{"textfield", "textfield", "checkbox"}, kinds); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Name", "Level", "VIP"}, labels); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	if got := len(cb.Children()); got != 3 {
		t.Fatalf("child bindings = %d, want 3", got)
	}
	if got := section.Children()[0].(*ui.TextField).Value(); got != "Ada" {
		t.Fatalf("name = %v, want Ada", got)
	}
}

func TestCreateSection_DynamicFieldFollowsPmo(t *testing.T) {
	c, ctx := newCreator(t)
	pmo := &customerPmo{}
	first, _, err := c.CreateSection(ctx, pmo)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if _, ok := first.(*ui.Section).Children()[1].(*ui.TextField); !ok {
		t.Fatalf("level must be a text field")
	}

	pmo.combo = true
	second, _, err := c.CreateSection(ctx, pmo)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	combo, ok := second.(*ui.Section).Children()[1].(*ui.ComboBox)
	if !ok {
		t.Fatalf("level must be a combo box after the component type changed")
	}
	if err := ctx.UpdateUI(); err != nil {
		t.Fatalf("UpdateUI: %v", err)
	}
	if diff := cmp.Diff([]any{"gold", "silver"}, combo.Items()); diff != "" {
		t.Fatalf("items (-want +got):\n%s", diff)
	}
}

func TestCreateSection_DefaultLayout(t *testing.T) {
	c, ctx := newCreator(t)
	comp, _, err := c.CreateSection(ctx, &plainPmo{Note: "hi"})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if err := ctx.UpdateUI(); err != nil {
		t.Fatalf("UpdateUI: %v", err)
	}
	s, ok := comp.(*ui.Section)
	if !ok || len(s.Children()) != 1 {
		t.Fatalf("want a section with one child, got %T", comp)
	}
	if got := s.Children()[0].(*ui.Label).Value(); got != "hi" {
		t.Fatalf("note = %v, want hi", got)
	}
}

func TestCreateSection_ConfigError(t *testing.T) {
	type broken struct {
		A string `linkki:"textfield(position=1)"`
		B string `linkki:"textfield(position=1)"`
	}
	c, ctx := newCreator(t)
	if _, _, err := c.CreateSection(ctx, &broken{}); !errors.Is(err, apis.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if got := len(ctx.Bindings()); got != 0 {
		t.Fatalf("bindings = %d, want 0", got)
	}
}

// TestCreateSection_ConcurrentSessions shares one reader between sessions
// running on separate goroutines, each with its own context.
func TestCreateSection_ConcurrentSessions(t *testing.T) {
	c, _ := newCreator(t)
	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			ctx := binding.NewContext("session", binding.WithReader(c.Reader()))
			pmo := &customerPmo{combo: id%2 == 0}
			if _, _, err := c.CreateSection(ctx, pmo); err != nil {
				t.Errorf("CreateSection: %v", err)
				return
			}
			for i := 0; i < 50; i++ {
				if err := ctx.UpdateUI(); err != nil {
					t.Errorf("UpdateUI: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
