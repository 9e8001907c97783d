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

// Package linkki binds presentation model objects (PMOs) to UI components.
//
// A PMO is a plain Go struct whose exported members are annotated, either
// with struct tags or through the annotation.Annotated interface:
//
//	type PersonPmo struct {
//		Person *Person `linkki:"modelObject"`
//		Name   string  `linkki:"textfield(position=10,modelAttribute=name)"`
//	}
//
// The descriptor reader turns those annotations into element descriptors
// once per type. A binding context creates one binding per element; each
// binding owns aspect updaters that push PMO state (value, enabled,
// visible, captions, available values) into the component, and model
// updaters that write user input back through a dispatcher chain.
//
// # Design
//
// The package holds a read-mostly global snapshot of:
//
//   - Config: the tag key, the default model object name and the tag
//     strictness.
//
//   - Registry: the annotation kinds known to the reader. Custom kinds
//     are added with Register.
//
//   - Reader: the memoised descriptor reader built from both.
//
// Readers load the snapshot atomically and never lock. Writers
// (SetConfig, SetRegistry, SetAll, PinRegistry) take a short build mutex,
// assemble a new snapshot and publish it. Every reconfiguration publishes
// a new reader with an empty descriptor cache.
//
// # Pinning
//
// SetRegistry publishes the given registry as is and pins it: SetConfig
// keeps a pinned registry instead of rebuilding it. UnpinRegistry undoes
// that.
//
// # Usage
//
//	ctx := linkki.NewContext("person")
//	layout, _, err := linkki.CreateSection(ctx, pmo)
//	...
//	err = ctx.UpdateUI()
//
// Bindings and contexts are not safe for concurrent use: a UI session is
// driven from one goroutine at a time, for example through remote.Hub.
package linkki
