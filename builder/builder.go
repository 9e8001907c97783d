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

// Package builder composes the runtime from a configuration and creates
// bound UI for PMOs.
package builder

import (
	"log/slog"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/registry"
	uref "dirpx.dev/linkki/utils/reflect"
)

// New creates and returns a new Builder.
func New() *Builder {
	return &Builder{}
}

// Builder is an empty struct used as a receiver for builder methods.
type Builder struct{}

// BuildRegistry builds a kind registry holding the built-in annotation
// kinds. Kinds of a pre-existing registry are copied into the new one and
// may not conflict with the built-in kinds.
func (b *Builder) BuildRegistry(_ apis.Config, prev apis.Registry) (apis.Registry, error) {
	reg := registry.New()
	if err := annotation.RegisterDefaults(reg); err != nil {
		return nil, err
	}
	if prev != nil {
		for _, k := range prev.Kinds() {
			f, ok := prev.Lookup(k)
			if !ok {
				continue
			}
			if err := reg.Register(k, f); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// BuildReader builds a descriptor reader over reg. A nil cache gets a
// fresh one; a nil logger means slog.Default().
func (b *Builder) BuildReader(cfg apis.Config, reg apis.Registry, cache *uref.Cache, log *slog.Logger) *descriptor.Reader {
	return descriptor.NewReader(cfg, reg, descriptor.WithCache(cache), descriptor.WithLogger(log))
}
