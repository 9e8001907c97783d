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

package registry_test

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/registry"
)

type note struct{ text string }

func (note) Kind() apis.Kind { return "note" }

func noteFactory(attrs map[string]string) (apis.Annotation, error) {
	return note{text: attrs["text"]}, nil
}

func otherFactory(map[string]string) (apis.Annotation, error) {
	return note{}, nil
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("note", noteFactory); err != nil {
		t.Fatalf("Register(note): unexpected error: %v", err)
	}
	// idempotent re-register with same factory
	if err := reg.Register("note", noteFactory); err != nil {
		t.Fatalf("Register(note) idempotent: unexpected error: %v", err)
	}

	f, ok := reg.Lookup("note")
	if !ok {
		t.Fatal("Lookup(note): not found")
	}
	a, err := f(map[string]string{"text": "hi"})
	if err != nil || a.(note).text != "hi" {
		t.Fatalf("factory = (%v,%v), want note{hi}", a, err)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("note", noteFactory); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if err := reg.Register("note", otherFactory); !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_ClosuresOfOneLiteralKeepFirst(t *testing.T) {
	reg := registry.New()
	factory := func(text string) apis.AnnotationFactory {
		return func(map[string]string) (apis.Annotation, error) {
			return note{text: text}, nil
		}
	}

	if err := reg.Register("note", factory("first")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if err := reg.Register("note", factory("second")); err != nil {
		t.Fatalf("Register of a sibling closure: unexpected error: %v", err)
	}
	f, ok := reg.Lookup("note")
	if !ok {
		t.Fatal("Lookup(note): not found")
	}
	a, err := f(nil)
	if err != nil || a.(note).text != "first" {
		t.Fatalf("factory = (%v,%v), want note{first}", a, err)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("", noteFactory); err != registry.ErrEmptyKind {
		t.Fatalf("empty kind: want ErrEmptyKind, got %v", err)
	}
	if err := reg.Register("note", nil); err != registry.ErrNilFactory {
		t.Fatalf("nil factory: want ErrNilFactory, got %v", err)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) must fail")
	}
}

func TestKindsSortedAndReset(t *testing.T) {
	reg := registry.New()
	for _, k := range []apis.Kind{"textfield", "button", "label"} {
		if err := reg.Register(k, noteFactory); err != nil {
			t.Fatalf("Register(%s): %v", k, err)
		}
	}
	if diff := cmp.Diff([]apis.Kind{"button", "label", "textfield"}, reg.Kinds()); diff != "" {
		t.Fatalf("Kinds() (-want +got):\n%s", diff)
	}

	snap := reg.Kinds()
	reg.Reset()
	if reg.Count() != 0 || len(reg.Kinds()) != 0 {
		t.Fatalf("after Reset: Count()=%d Kinds()=%v", reg.Count(), reg.Kinds())
	}
	if len(snap) != 3 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Kinds/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	kinds := make([]apis.Kind, 10)
	for i := range kinds {
		kinds[i] = apis.Kind(fmt.Sprintf("k%d", i))
		if err := reg.Register(kinds[i], noteFactory); err != nil {
			t.Fatalf("register %s: %v", kinds[i], err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				k := kinds[i%len(kinds)]
				if _, ok := reg.Lookup(k); !ok {
					t.Errorf("lookup failed for %s", k)
					return
				}
				_ = reg.Count()
				_ = reg.Kinds()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = reg.Register(kinds[(i+id)%len(kinds)], noteFactory)
			}
		}(w)
	}

	wg.Wait()

	if reg.Count() != len(kinds) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(kinds))
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
