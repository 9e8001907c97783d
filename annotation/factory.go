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

package annotation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
)

// ErrAttribute is returned for unknown or invalid annotation attributes.
var ErrAttribute = errors.New("linkki(annotation): invalid attribute")

// RegisterDefaults registers the factories of every tag-declarable kind.
// Section is type-level and declared through Annotated only.
func RegisterDefaults(reg apis.Registry) error {
	factories := []struct {
		kind apis.Kind
		f    apis.AnnotationFactory
	}{
		{KindTextField, newTextField},
		{KindCheckBox, newCheckBox},
		{KindComboBox, newComboBox},
		{KindLabel, newLabel},
		{KindButton, newButton},
		{KindTable, newTable},
		{KindTooltip, newTooltip},
		{KindModelObject, newModelObject},
	}
	var errs []error
	for _, e := range factories {
		if err := reg.Register(e.kind, e.f); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.kind, err))
		}
	}
	return errors.Join(errs...)
}

// attrs reads typed attribute values and remembers the first error.
type attrs struct {
	kind apis.Kind
	m    map[string]string
	used map[string]bool
	err  error
}

func newAttrs(kind apis.Kind, m map[string]string) *attrs {
	return &attrs{kind: kind, m: m, used: map[string]bool{}}
}

func (a *attrs) fail(key, val, want string) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: %s(%s=%s), want %s", ErrAttribute, a.kind, key, val, want)
	}
}

func (a *attrs) raw(key string) (string, bool) {
	v, ok := a.m[key]
	a.used[key] = true
	return v, ok
}

func (a *attrs) str(key string) string {
	v, _ := a.raw(key)
	return v
}

func (a *attrs) num(key string) int {
	v, ok := a.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		a.fail(key, v, "an integer")
	}
	return n
}

// enum maps the attribute value to one of choices; absent yields def.
func enum[T any](a *attrs, key string, def T, choices map[string]T) T {
	v, ok := a.raw(key)
	if !ok {
		return def
	}
	if t, ok := choices[strings.ToLower(v)]; ok {
		return t
	}
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	a.fail(key, v, strings.Join(keys, "|"))
	return def
}

func (a *attrs) visible() aspect.VisibleType {
	return enum(a, "visible", aspect.Visible, map[string]aspect.VisibleType{
		"true": aspect.Visible, "false": aspect.Invisible, "dynamic": aspect.DynamicVisible,
	})
}

func (a *attrs) enabled() aspect.EnabledType {
	return enum(a, "enabled", aspect.Enabled, map[string]aspect.EnabledType{
		"true": aspect.Enabled, "false": aspect.Disabled, "dynamic": aspect.DynamicEnabled,
	})
}

func (a *attrs) required() aspect.RequiredType {
	return enum(a, "required", aspect.NotRequired, map[string]aspect.RequiredType{
		"false": aspect.NotRequired, "true": aspect.Required,
		"ifenabled": aspect.RequiredIfEnabled, "dynamic": aspect.DynamicRequired,
	})
}

func (a *attrs) textType(key string) aspect.TextType {
	return enum(a, key, aspect.StaticText, map[string]aspect.TextType{
		"static": aspect.StaticText, "dynamic": aspect.DynamicText, "none": aspect.NoText,
	})
}

// done reports unknown attributes and the first decoding error.
func (a *attrs) done() error {
	if a.err != nil {
		return a.err
	}
	var unknown []string
	for k := range a.m {
		if !a.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %s has no attribute %s", ErrAttribute, a.kind, strings.Join(unknown, ", "))
	}
	return nil
}

func newTextField(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindTextField, m)
	tf := TextField{
		Position:       a.num("position"),
		Property:       a.str("property"),
		Label:          a.str("label"),
		ModelObject:    a.str("modelObject"),
		ModelAttribute: a.str("modelAttribute"),
		Visible:        a.visible(),
		Enabled:        a.enabled(),
		Required:       a.required(),
	}
	return tf, a.done()
}

func newCheckBox(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindCheckBox, m)
	cb := CheckBox{
		Position:       a.num("position"),
		Property:       a.str("property"),
		Label:          a.str("label"),
		ModelObject:    a.str("modelObject"),
		ModelAttribute: a.str("modelAttribute"),
		Visible:        a.visible(),
		Enabled:        a.enabled(),
		Required:       a.required(),
	}
	return cb, a.done()
}

// newComboBox decodes a combo box. Static values are separated by '|':
// combobox(content=static,values=DE|FR).
func newComboBox(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindComboBox, m)
	cb := ComboBox{
		Position:       a.num("position"),
		Property:       a.str("property"),
		Label:          a.str("label"),
		ModelObject:    a.str("modelObject"),
		ModelAttribute: a.str("modelAttribute"),
		Visible:        a.visible(),
		Enabled:        a.enabled(),
		Required:       a.required(),
	}
	cb.Content = enum(a, "content", aspect.DynamicValues, map[string]aspect.AvailableValuesType{
		"dynamic": aspect.DynamicValues, "static": aspect.StaticValues, "none": aspect.NoValues,
	})
	if v, ok := a.raw("values"); ok && v != "" {
		for _, s := range strings.Split(v, "|") {
			cb.Values = append(cb.Values, s)
		}
	}
	return cb, a.done()
}

func newLabel(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindLabel, m)
	l := Label{
		Position:       a.num("position"),
		Property:       a.str("property"),
		Label:          a.str("label"),
		ModelObject:    a.str("modelObject"),
		ModelAttribute: a.str("modelAttribute"),
		Visible:        a.visible(),
	}
	return l, a.done()
}

func newButton(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindButton, m)
	b := Button{
		Position:    a.num("position"),
		Property:    a.str("property"),
		Label:       a.str("label"),
		Caption:     a.str("caption"),
		CaptionType: a.textType("captionType"),
		Visible:     a.visible(),
		Enabled:     a.enabled(),
	}
	return b, a.done()
}

func newTable(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindTable, m)
	t := Table{
		Position: a.num("position"),
		Property: a.str("property"),
		Caption:  a.str("caption"),
		Visible:  a.visible(),
	}
	return t, a.done()
}

func newTooltip(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindTooltip, m)
	t := Tooltip{Text: a.str("text"), Type: a.textType("type")}
	return t, a.done()
}

func newModelObject(m map[string]string) (apis.Annotation, error) {
	a := newAttrs(KindModelObject, m)
	mo := ModelObject{Name: a.str("name")}
	return mo, a.done()
}

// Decode turns the declarations of a struct tag into annotations using the
// factories of reg. Unknown kinds are returned separately so the caller
// can decide whether they are fatal.
func Decode(reg apis.Registry, decls []Decl) (out []apis.Annotation, unknown []apis.Kind, err error) {
	for _, d := range decls {
		f, ok := reg.Lookup(d.Kind)
		if !ok {
			unknown = append(unknown, d.Kind)
			continue
		}
		a, err := f(d.Attrs)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, a)
	}
	return out, unknown, nil
}
