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
	"fmt"
	"slices"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
	"dirpx.dev/linkki/dispatcher"
	"dirpx.dev/linkki/message"
	uref "dirpx.dev/linkki/utils/reflect"
)

// ItemCache remembers the row objects last shown by a table. The zero value
// holds the empty sequence.
type ItemCache struct {
	items []any
}

// ReplaceContent stores items and reports whether they differ from the
// previous content. Items are compared by position and identity, so a
// reordering counts as a change.
func (c *ItemCache) ReplaceContent(items []any) bool {
	if aspect.SameItems(c.items, items) {
		return false
	}
	c.items = slices.Clone(items)
	return true
}

// Items returns the cached items.
func (c *ItemCache) Items() []any { return slices.Clone(c.items) }

// Row holds the cell components and bindings of one row object.
type Row struct {
	pmo      any
	cells    []any
	bindings []apis.Binding
}

// NewRow returns a row of pmo.
func NewRow(pmo any, cells []any, bindings []apis.Binding) *Row {
	return &Row{pmo: pmo, cells: cells, bindings: bindings}
}

// Pmo returns the row object.
func (r *Row) Pmo() any { return r.pmo }

// Cells returns the cell components.
func (r *Row) Cells() []any { return slices.Clone(r.cells) }

// Bindings returns the cell bindings.
func (r *Row) Bindings() []apis.Binding { return slices.Clone(r.bindings) }

// UpdateFromPmo updates every cell.
func (r *Row) UpdateFromPmo() error {
	for _, b := range r.bindings {
		if err := b.UpdateFromPmo(); err != nil {
			return err
		}
	}
	return nil
}

// DisplayMessages shows messages at the cells and returns them.
func (r *Row) DisplayMessages(l message.List) message.List {
	var out message.List
	for _, b := range r.bindings {
		out = append(out, b.DisplayMessages(l)...)
	}
	return out
}

// RowFactory creates the row of a row object.
type RowFactory func(pmo any) (*Row, error)

// TableBinding binds a table to a property returning its row objects. Rows
// are rebuilt only when the row objects change.
type TableBinding struct {
	*ElementBinding
	holder  apis.RowsHolder
	factory RowFactory
	items   ItemCache
	rows    []*Row
}

// NewTableBinding binds w to d. Rows are created by factory; a nil factory
// creates cells from the descriptors of the row objects.
func NewTableBinding(ctx *Context, w apis.ComponentWrapper, d apis.Dispatcher, aspects []apis.AspectDefinition, factory RowFactory) (*TableBinding, error) {
	holder, ok := w.Component().(apis.RowsHolder)
	if !ok {
		return nil, fmt.Errorf("linkki(binding): %s: %w: table needs apis.RowsHolder, got %T",
			d.Property(), apis.ErrConfiguration, w.Component())
	}
	eb, err := NewElementBinding(ctx, w, d, aspects)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		factory = ctx.newRow
	}
	return &TableBinding{ElementBinding: eb, holder: holder, factory: factory}, nil
}

// Rows returns the current rows.
func (b *TableBinding) Rows() []*Row { return slices.Clone(b.rows) }

// UpdateFromPmo updates the table aspects, reconciles the rows and updates
// every row.
func (b *TableBinding) UpdateFromPmo() error {
	if err := b.ElementBinding.UpdateFromPmo(); err != nil {
		return err
	}
	v, err := dispatcher.GetValue(b.dispatcher)
	if err != nil {
		return err
	}
	items, err := dispatcher.ToSlice(v)
	if err != nil {
		return err
	}
	if b.items.ReplaceContent(items) {
		if err := b.rebuild(items); err != nil {
			b.items = ItemCache{}
			return err
		}
	}
	for _, r := range b.rows {
		if err := r.UpdateFromPmo(); err != nil {
			return err
		}
	}
	return nil
}

// rebuild keeps the rows of surviving row objects, creates rows for new
// ones and fires one structural change.
func (b *TableBinding) rebuild(items []any) error {
	old := b.rows
	used := make([]bool, len(old))
	next := make([]*Row, 0, len(items))
	for _, it := range items {
		var row *Row
		for i, r := range old {
			if !used[i] && uref.Same(r.pmo, it) {
				row, used[i] = r, true
				break
			}
		}
		if row == nil {
			var err error
			if row, err = b.factory(it); err != nil {
				return err
			}
		}
		next = append(next, row)
	}
	dropped := 0
	for _, u := range used {
		if !u {
			dropped++
		}
	}
	b.rows = next
	cells := make([][]any, len(next))
	for i, r := range next {
		cells[i] = r.cells
	}
	b.holder.SetRows(cells)
	b.ctx.opts.log.Debug("table rows rebuilt", "property", b.dispatcher.Property(),
		"rows", len(next), "dropped", dropped)
	return nil
}

// DisplayMessages shows messages at the table and its cells and returns
// all of them.
func (b *TableBinding) DisplayMessages(l message.List) message.List {
	out := b.ElementBinding.DisplayMessages(l)
	for _, r := range b.rows {
		out = append(out, r.DisplayMessages(l)...)
	}
	return out
}
