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

package annotation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
	"dirpx.dev/linkki/registry"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		name string
		tag  string
		want []annotation.Decl
	}{
		{"empty", "", nil},
		{"bare kind", "Button", []annotation.Decl{{Kind: "button", Attrs: map[string]string{}}}},
		{
			"attributes",
			"textfield(position=10, label=First name);tooltip(text=Hi)",
			[]annotation.Decl{
				{Kind: "textfield", Attrs: map[string]string{"position": "10", "label": "First name"}},
				{Kind: "tooltip", Attrs: map[string]string{"text": "Hi"}},
			},
		},
		{
			"quoted",
			"tooltip(text='a, b; (c)');;label()",
			[]annotation.Decl{
				{Kind: "tooltip", Attrs: map[string]string{"text": "a, b; (c)"}},
				{Kind: "label", Attrs: map[string]string{}},
			},
		},
		{"trailing comma", "label(position=1,)", []annotation.Decl{{Kind: "label", Attrs: map[string]string{"position": "1"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := annotation.ParseTag(tc.tag)
			if err != nil {
				t.Fatalf("ParseTag(%q): %v", tc.tag, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ParseTag(%q) (-want +got):\n%s", tc.tag, diff)
			}
		})
	}
}

func TestParseTag_Errors(t *testing.T) {
	for _, tag := range []string{
		"textfield(position",
		"textfield(position)",
		"textfield(=1)",
		"tooltip(text='open)",
		"textfield(a=1,a=2)",
		"textfield(a=1) label",
		"(a=1)",
	} {
		if _, err := annotation.ParseTag(tag); !errors.Is(err, annotation.ErrTagSyntax) {
			t.Errorf("ParseTag(%q) err = %v, want ErrTagSyntax", tag, err)
		}
	}
}

func decode(t *testing.T, tag string) []apis.Annotation {
	t.Helper()
	reg := registry.New()
	if err := annotation.RegisterDefaults(reg); err != nil {
		t.Fatalf("RegisterDefaults: %v", err)
	}
	decls, err := annotation.ParseTag(tag)
	if err != nil {
		t.Fatalf("ParseTag: %v", err)
	}
	out, unknown, err := annotation.Decode(reg, decls)
	if err != nil {
		t.Fatalf("Decode(%q): %v", tag, err)
	}
	if len(unknown) > 0 {
		t.Fatalf("Decode(%q): unknown kinds %v", tag, unknown)
	}
	return out
}

func TestDecodeDefaults(t *testing.T) {
	got := decode(t, "textfield(position=20,label=Email,enabled=dynamic,required=ifEnabled,modelAttribute=email);tooltip(type=dynamic)")
	want := []apis.Annotation{
		annotation.TextField{
			Position:       20,
			Label:          "Email",
			ModelAttribute: "email",
			Enabled:        aspect.DynamicEnabled,
			Required:       aspect.RequiredIfEnabled,
		},
		annotation.Tooltip{Type: aspect.DynamicText},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded (-want +got):\n%s", diff)
	}

	cb := decode(t, "combobox(position=1,content=static,values=DE|FR)")[0].(annotation.ComboBox)
	if cb.Content != aspect.StaticValues || !cmp.Equal(cb.Values, []any{"DE", "FR"}) {
		t.Fatalf("combobox = %+v", cb)
	}
	b := decode(t, "button(position=90,caption=Go,captionType=static)")[0].(annotation.Button)
	if b.Caption != "Go" || b.Position != 90 {
		t.Fatalf("button = %+v", b)
	}
}

func TestDecodeErrors(t *testing.T) {
	reg := registry.New()
	_ = annotation.RegisterDefaults(reg)

	for _, tag := range []string{
		"textfield(position=ten)",
		"textfield(visible=maybe)",
		"textfield(colour=red)",
	} {
		decls, err := annotation.ParseTag(tag)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", tag, err)
		}
		if _, _, err := annotation.Decode(reg, decls); !errors.Is(err, annotation.ErrAttribute) {
			t.Errorf("Decode(%q) err = %v, want ErrAttribute", tag, err)
		}
	}

	decls, _ := annotation.ParseTag("slider(position=1)")
	_, unknown, err := annotation.Decode(reg, decls)
	if err != nil || !cmp.Equal(unknown, []apis.Kind{"slider"}) {
		t.Fatalf("Decode(slider) = unknown %v, err %v", unknown, err)
	}
}

func TestRegisterDefaultsIsIdempotent(t *testing.T) {
	reg := registry.New()
	if err := annotation.RegisterDefaults(reg); err != nil {
		t.Fatalf("first RegisterDefaults: %v", err)
	}
	if err := annotation.RegisterDefaults(reg); err != nil {
		t.Fatalf("second RegisterDefaults: %v", err)
	}
	if reg.Count() != 8 {
		t.Fatalf("Count() = %d, want 8", reg.Count())
	}
}

func TestAspectOrder(t *testing.T) {
	names := func(defs []apis.AspectDefinition) []string {
		out := make([]string, len(defs))
		for i, d := range defs {
			out[i] = d.Name()
		}
		return out
	}
	if diff := cmp.Diff(
		[]string{"label", "visible", "enabled", "required", "availableValues", ""},
		names(annotation.ComboBox{}.AspectDefinitions()),
	); diff != "" {
		t.Fatalf("combobox aspects (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]string{"label", "caption", "visible", "enabled", ""},
		names(annotation.Button{}.AspectDefinitions()),
	); diff != "" {
		t.Fatalf("button aspects (-want +got):\n%s", diff)
	}
}
