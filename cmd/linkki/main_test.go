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

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/remote"
	"dirpx.dev/linkki/ui"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("linkki %s: %v\n%s", strings.Join(args, " "), err, errOut.String())
	}
	return out.String()
}

func TestConfig_FileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "linkki.yaml")
	if err := os.WriteFile(file, []byte("tagKey: ui\nstrictTags: false\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// Restore the global configuration after the environment.
	t.Cleanup(func() { execute(t, "config") })
	t.Setenv("LINKKI_DEFAULT_MODEL_OBJECT", "person")

	out := execute(t, "config", "-c", file, "--log-level", "debug")
	cfg, err := config.Load(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := config.NewConfig(
		config.WithTagKey("ui"),
		config.WithStrictTags(false),
		config.WithDefaultModelObject("person"),
		config.WithLogLevel(slog.LevelDebug),
	)
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestDescribe(t *testing.T) {
	var docs []typeDoc
	if err := yaml.Unmarshal([]byte(execute(t, "describe", "person")), &docs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	doc := docs[0]
	if got, want := doc.Layout, "section"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	var props []string
	for _, p := range doc.Properties {
		props = append(props, p.Property)
	}
	want := []string{"summary", "name", "country", "newsletter", "email", "phones", "addPhone", "save"}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("properties (-want +got):\n%s", diff)
	}
	country := doc.Properties[2]
	if got, want := len(country.Elements), 2; got != want {
		t.Fatalf("got %d country elements, want %d", got, want)
	}
	if country.Discriminator == "" {
		t.Fatalf("country has no discriminator")
	}
	if got, want := country.Elements[0].ModelAttribute, "country"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRun(t *testing.T) {
	var res runResult
	out := execute(t, "run", "name=Ada", "newsletter=true", "email=ada@example.org", "country=FR", "addPhone=", "save=")
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := res.Person.Name, "Ada"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := res.Person.Country, "FR"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := len(res.Person.Phones), 1; got != want {
		t.Fatalf("got %d phones, want %d", got, want)
	}
	if got, want := res.Saved, 1; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if got, want := res.UI.Kind, "section"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRun_BadEdit(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "name"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("want an error for an edit without '='")
	}
}

func TestRouter(t *testing.T) {
	hub := remote.NewHub()
	if _, err := newDemoSession(hub, []string{"DE"}); err != nil {
		t.Fatalf("newDemoSession: %v", err)
	}
	r := newRouter(hub)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "WebSocket") {
		t.Fatalf("index: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tree", nil))
	var tree ui.Node
	if err := json.NewDecoder(rec.Body).Decode(&tree); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := tree.Kind, "section"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tree", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
