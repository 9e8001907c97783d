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

package dispatcher

import (
	"dirpx.dev/linkki/apis"
	uref "dirpx.dev/linkki/utils/reflect"
)

// Link wraps the next dispatcher of a chain.
type Link func(next apis.Dispatcher) apis.Dispatcher

// Chain stacks links on top of terminal. Links are given outermost first:
// Chain(t, a, b) consults a, then b, then t. Nil links are ignored.
func Chain(terminal apis.Dispatcher, links ...Link) apis.Dispatcher {
	d := terminal
	for i := len(links) - 1; i >= 0; i-- {
		if links[i] != nil {
			d = links[i](d)
		}
	}
	return d
}

// ChainConfig describes the dispatcher chain of one bound property.
type ChainConfig struct {
	// Pmo is the presentation model object.
	Pmo any
	// Property is the bound property.
	Property apis.BoundProperty
	// ModelObject supplies the current model object. It is called on every
	// dispatch. Ignored unless Property has a model attribute.
	ModelObject func() (any, error)
	// Behaviors are consulted by the outermost link. May be nil.
	Behaviors apis.PropertyBehaviorProvider
	// Cache memoizes accessor lookups. A private cache is used if nil.
	Cache *uref.Cache
}

// NewChain builds the standard chain, consulted in this order:
//
//	behavior -> static -> PMO reflection -> model object reflection -> exception
//
// The model object link exists only when cfg.Property has a model attribute.
func NewChain(cfg ChainConfig) apis.Dispatcher {
	cache := cfg.Cache
	if cache == nil {
		cache = uref.NewCache()
	}
	pmo := cfg.Pmo
	var modelObject func() (any, error)
	if cfg.Property.HasModelAttribute() && cfg.ModelObject != nil {
		modelObject = cfg.ModelObject
	}

	links := []Link{
		WithBehaviors(cfg.Behaviors),
		WithStatic(),
		WithReflection(func() (any, error) { return pmo, nil }, cfg.Property.PmoProperty, cache),
	}
	if modelObject != nil {
		links = append(links, WithReflection(modelObject, cfg.Property.ModelAttribute, cache))
	}
	return Chain(NewException(pmo, cfg.Property, modelObject), links...)
}
