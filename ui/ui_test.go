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

package ui_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/message"
	"dirpx.dev/linkki/ui"
)

type recorder struct{ ops []ui.Op }

func (r *recorder) Emit(op ui.Op) { r.ops = append(r.ops, op) }

func (r *recorder) keys() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.Key
	}
	return out
}

func TestSettersEmitOnlyChanges(t *testing.T) {
	rec := &recorder{}
	tf := ui.NewTextField()
	tf.Attach(rec)

	tf.SetValue("a")
	tf.SetValue("a")
	tf.SetVisible(true) // default
	tf.SetEnabled(false)
	tf.SetEnabled(false)
	tf.SetValue("b")

	if diff := cmp.Diff([]string{"value", "enabled", "value"}, rec.keys()); diff != "" {
		t.Fatalf("ops (-want +got):\n%s", diff)
	}
	if rec.ops[0].ID != tf.ID() || tf.ID() == "" {
		t.Fatalf("op id = %q, widget id = %q", rec.ops[0].ID, tf.ID())
	}
}

func TestInputNotifiesListeners(t *testing.T) {
	tf := ui.NewTextField()
	var got []any
	tf.OnValueChange(func(v any) { got = append(got, v) })

	tf.SetValue("programmatic")
	if err := tf.Input("typed"); err != nil {
		t.Fatalf("Input: %v", err)
	}
	if diff := cmp.Diff([]any{"typed"}, got); diff != "" {
		t.Fatalf("listener values (-want +got):\n%s", diff)
	}

	tf.SetReadOnly(true)
	if err := tf.Input("x"); !errors.Is(err, ui.ErrNotEditable) {
		t.Fatalf("Input on read-only: err = %v, want ErrNotEditable", err)
	}
	tf.SetReadOnly(false)
	tf.SetEnabled(false)
	if err := tf.Input("x"); !errors.Is(err, ui.ErrNotEditable) {
		t.Fatalf("Input on disabled: err = %v, want ErrNotEditable", err)
	}
}

func TestComboBoxSelect(t *testing.T) {
	cb := ui.NewComboBox()
	cb.SetItems([]any{"DE", "FR"})
	var got any
	cb.OnValueChange(func(v any) { got = v })

	if err := cb.Select("FR"); err != nil || got != "FR" {
		t.Fatalf("Select(FR) err=%v got=%v", err, got)
	}
	if err := cb.Select("IT"); !errors.Is(err, ui.ErrNoSuchItem) {
		t.Fatalf("Select(IT) err = %v, want ErrNoSuchItem", err)
	}
	if err := cb.SelectIndex(0); err != nil || cb.Value() != "DE" {
		t.Fatalf("SelectIndex(0) err=%v value=%v", err, cb.Value())
	}
	if err := cb.SelectIndex(5); !errors.Is(err, ui.ErrNoSuchItem) {
		t.Fatalf("SelectIndex(5) err = %v, want ErrNoSuchItem", err)
	}
}

func TestButtonClick(t *testing.T) {
	b := ui.NewButton()
	clicks := 0
	b.OnClick(func() { clicks++ })
	if err := b.Click(); err != nil || clicks != 1 {
		t.Fatalf("Click err=%v clicks=%d", err, clicks)
	}
	b.SetVisible(false)
	if err := b.Click(); !errors.Is(err, ui.ErrNotEditable) || clicks != 1 {
		t.Fatalf("hidden Click err=%v clicks=%d", err, clicks)
	}
}

func TestTableRowsAndTree(t *testing.T) {
	rec := &recorder{}
	s := ui.NewSection()
	s.Attach(rec)
	s.SetCaption("Person")
	tf := ui.NewTextField()
	s.Add(tf, "Name")
	tbl := ui.NewTable()
	tbl.Attach(rec)
	s.Add(tbl, "")

	cell := ui.NewLabel()
	tbl.SetRows([][]any{{cell}})
	tbl.SetRows([][]any{{cell}})
	if tbl.StructureChanges() != 2 {
		t.Fatalf("StructureChanges() = %d, want 2", tbl.StructureChanges())
	}

	tree := ui.Tree(s)
	if tree.Kind != "section" || len(tree.Children) != 2 {
		t.Fatalf("tree = %+v", tree)
	}
	rows := tree.Children[1]
	if len(rows.Children) != 1 || rows.Children[0].Kind != "row" || rows.Children[0].Children[0].ID != cell.ID() {
		t.Fatalf("table node = %+v", rows)
	}

	var kinds []string
	ui.Walk(s, func(c ui.Component) { kinds = append(kinds, c.Kind()) })
	if diff := cmp.Diff([]string{"section", "textfield", "table", "label"}, kinds); diff != "" {
		t.Fatalf("Walk (-want +got):\n%s", diff)
	}
}

func TestWrapper(t *testing.T) {
	tf := ui.NewTextField()
	w := ui.Wrap(tf, apis.WrapperField)
	w.SetLabel("Name")
	w.SetValidationMessages(message.List{
		message.New(message.Warning, "short"),
		message.New(message.Error, "empty"),
	})
	if tf.Label() != "Name" {
		t.Fatalf("Label() = %q", tf.Label())
	}
	if diff := cmp.Diff([]string{"short", "empty"}, tf.Messages()); diff != "" {
		t.Fatalf("Messages (-want +got):\n%s", diff)
	}
	if tf.Props()[ui.PropSeverity] != "error" {
		t.Fatalf("severity = %v", tf.Props()[ui.PropSeverity])
	}
	w.SetValidationMessages(nil)
	if tf.Messages() != nil {
		t.Fatalf("Messages after clear = %v", tf.Messages())
	}

	c, err := ui.ComboBoxDefinition.CreateComponent(nil)
	if _, ok := c.(*ui.ComboBox); !ok || err != nil {
		t.Fatalf("CreateComponent = (%T,%v)", c, err)
	}
}
