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

package ui

// Node is a serialisable view of a widget tree.
type Node struct {
	ID       string         `json:"id" yaml:"id"`
	Kind     string         `json:"kind" yaml:"kind"`
	Props    map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children []Node         `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree returns the node of c and its descendants. Table rows become nodes
// of kind "row". Values that are not widgets yield a zero Node.
func Tree(c any) Node {
	comp, ok := c.(Component)
	if !ok {
		return Node{}
	}
	n := Node{ID: comp.ID(), Kind: comp.Kind(), Props: comp.Props()}
	delete(n.Props, PropChildren)
	delete(n.Props, PropRows)
	switch w := c.(type) {
	case *Section:
		for _, ch := range w.Children() {
			n.Children = append(n.Children, Tree(ch))
		}
	case *Table:
		for _, row := range w.Rows() {
			rn := Node{Kind: "row"}
			for _, cell := range row {
				rn.Children = append(rn.Children, Tree(cell))
			}
			n.Children = append(n.Children, rn)
		}
	}
	return n
}

// Walk calls fn for c and every descendant widget, parents first.
func Walk(c any, fn func(Component)) {
	comp, ok := c.(Component)
	if !ok {
		return
	}
	fn(comp)
	switch w := c.(type) {
	case *Section:
		for _, ch := range w.Children() {
			Walk(ch, fn)
		}
	case *Table:
		for _, row := range w.Rows() {
			for _, cell := range row {
				Walk(cell, fn)
			}
		}
	}
}
