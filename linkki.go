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

package linkki

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/builder"
	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/descriptor"
)

// init publishes the default runtime.
func init() {
	b := builder.New()
	cfg := config.DefaultConfig()
	reg, err := b.BuildRegistry(cfg, nil)
	if err != nil {
		panic(err)
	}
	st.Store(&state{cfg: cfg, reg: reg, reader: b.BuildReader(cfg, reg, nil, nil)})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration. The registry is rebuilt
// unless pinned, carrying over its registered kinds, and a new reader
// with an empty descriptor cache is published. An empty tag key or model
// object name falls back to its default.
func SetConfig(cfg apis.Config) error {
	return SetAll(&cfg, nil)
}

// Registry returns the global annotation kind registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces and pins the global registry. A nil registry is
// ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	// A pinned registry is never rebuilt, so SetAll cannot fail here.
	_ = SetAll(nil, reg)
}

// Register adds an annotation kind to the global registry. Descriptors read
// before are dropped, as the new kind may change their outcome.
func Register(kind apis.Kind, f apis.AnnotationFactory) error {
	s := st.Load()
	if err := s.reg.Register(kind, f); err != nil {
		return err
	}
	s.reader.Reset()
	return nil
}

// Reader returns the global descriptor reader.
func Reader() *descriptor.Reader {
	return st.Load().reader
}

// Read returns the descriptors of the type of pmo.
func Read(pmo any) (*descriptor.Descriptors, error) {
	return Reader().ReadFor(pmo)
}

// NewContext returns a binding context reading descriptors through the
// global reader. Later options take precedence.
func NewContext(name string, opts ...binding.Option) *binding.Context {
	return binding.NewContext(name, withReader(opts)...)
}

// NewManager returns a binding manager reading descriptors through the
// global reader. Later options take precedence.
func NewManager(opts ...binding.Option) *binding.Manager {
	return binding.NewManager(withReader(opts)...)
}

// CreateSection creates the layout of pmo with its properties bound in b.
func CreateSection(b binding.Binder, pmo any) (any, *binding.ContainerBinding, error) {
	return builder.NewCreator(Reader()).CreateSection(b, pmo)
}

func withReader(opts []binding.Option) []binding.Option {
	return append([]binding.Option{binding.WithReader(Reader())}, opts...)
}

// SetAll replaces the configuration and the registry in one step.
//
// A nil cfg keeps the current configuration. A non-nil reg is published
// as is and pinned; a nil reg rebuilds the current one unless it is
// pinned. A new reader is always published.
func SetAll(cfg *apis.Config, reg apis.Registry) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := builder.New()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = config.Normalize(*cfg)
	}

	// Registry
	nreg := reg
	npreg := old.preg
	switch {
	case nreg != nil:
		npreg = true
	case old.preg:
		nreg = old.reg
	default:
		var err error
		if nreg, err = b.BuildRegistry(ncfg, old.reg); err != nil {
			return err
		}
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    ncfg,
			reg:    nreg,
			reader: b.BuildReader(ncfg, nreg, nil, nil),
			preg:   npreg,
		},
	)
	return nil
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry keeps the global registry across reconfigurations.
func PinRegistry() { setPinned(true) }

// UnpinRegistry lets reconfigurations rebuild the global registry again.
func UnpinRegistry() { setPinned(false) }

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:    old.cfg,
			reg:    old.reg,
			reader: old.reader,
			preg:   pinned,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global linkki state.
var st atomic.Pointer[state]

// state is the global linkki state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global annotation kind registry.
	reg apis.Registry
	// reader reads descriptors with cfg and reg.
	reader *descriptor.Reader
	// preg indicates whether the reg is pinned.
	preg bool
}
