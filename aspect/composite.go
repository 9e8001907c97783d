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

package aspect

import (
	"strings"

	"dirpx.dev/linkki/apis"
)

// Composite groups definitions behind one aspect. Children run in declared
// order and only those supporting the component's wrapper type take part.
type Composite struct {
	Definitions []apis.AspectDefinition
}

// Ensure Composite implements apis.AspectDefinition.
var _ apis.AspectDefinition = Composite{}

// NewComposite returns a composite of defs, skipping nils.
func NewComposite(defs ...apis.AspectDefinition) Composite {
	out := make([]apis.AspectDefinition, 0, len(defs))
	for _, d := range defs {
		if d != nil {
			out = append(out, d)
		}
	}
	return Composite{Definitions: out}
}

// Name joins the child names.
func (c Composite) Name() string {
	names := make([]string, len(c.Definitions))
	for i, d := range c.Definitions {
		names[i] = name(d.Name())
	}
	return strings.Join(names, "+")
}

// Supports reports whether any child supports t.
func (c Composite) Supports(t *apis.WrapperType) bool {
	for _, d := range c.Definitions {
		if d.Supports(t) {
			return true
		}
	}
	return false
}

// CreateUIUpdater returns an updater running the supporting children in
// order. The first failure stops the remaining children.
func (c Composite) CreateUIUpdater(d apis.Dispatcher, w apis.ComponentWrapper) (func() error, error) {
	var updaters []func() error
	for _, def := range c.Definitions {
		if !def.Supports(w.Type()) {
			continue
		}
		u, err := def.CreateUIUpdater(d, w)
		if err != nil {
			return nil, err
		}
		updaters = append(updaters, u)
	}
	return func() error {
		for _, u := range updaters {
			if err := u(); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

// InitModelUpdate initialises every supporting child.
func (c Composite) InitModelUpdate(d apis.Dispatcher, w apis.ComponentWrapper, u apis.ModelUpdater) error {
	for _, def := range c.Definitions {
		if !def.Supports(w.Type()) {
			continue
		}
		if err := def.InitModelUpdate(d, w, u); err != nil {
			return err
		}
	}
	return nil
}
