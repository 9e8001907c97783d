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

package descriptor

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/linkki/apis"
	uref "dirpx.dev/linkki/utils/reflect"
)

// ErrNotPmo is returned when a value cannot be read as a PMO.
var ErrNotPmo = errors.New("linkki(descriptor): not a PMO type")

// Reader reads and memoizes the descriptors of PMO types. It is safe for
// concurrent use; each type is read at most once at a time.
type Reader struct {
	cfg   apis.Config
	reg   apis.Registry
	cache *uref.Cache
	log   *slog.Logger

	// m maps the named PMO type to *Descriptors.
	m     sync.Map
	group singleflight.Group
}

// Option configures a Reader.
type Option func(*Reader)

// WithCache shares an accessor cache with the reader.
func WithCache(c *uref.Cache) Option {
	return func(r *Reader) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// NewReader returns a reader decoding struct tags with the factories of reg.
func NewReader(cfg apis.Config, reg apis.Registry, opts ...Option) *Reader {
	r := &Reader{cfg: cfg, reg: reg, cache: uref.NewCache(), log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the accessor cache used by the reader.
func (r *Reader) Cache() *uref.Cache { return r.cache }

// Config returns the reader configuration.
func (r *Reader) Config() apis.Config { return r.cfg }

// ReadFor reads the descriptors of the dynamic type of pmo.
func (r *Reader) ReadFor(pmo any) (*Descriptors, error) {
	if pmo == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotPmo)
	}
	return r.Read(reflect.TypeOf(pmo))
}

// Read returns the descriptors of t, which may be a named type or a
// pointer to one. Successful reads are memoized; failures are not.
func (r *Reader) Read(t reflect.Type) (*Descriptors, error) {
	base, err := uref.Indirect(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPmo, err)
	}
	if v, ok := r.m.Load(base); ok {
		return v.(*Descriptors), nil
	}
	v, err, _ := r.group.Do(fmt.Sprintf("%p", base), func() (any, error) {
		if v, ok := r.m.Load(base); ok {
			return v, nil
		}
		d, err := newTypeReader(r, base).read()
		if err != nil {
			return nil, err
		}
		r.m.Store(base, d)
		r.log.Debug("read descriptors", "type", uref.TypeName(base), "properties", len(d.properties))
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Descriptors), nil
}

// Len returns the number of memoized types.
func (r *Reader) Len() int {
	n := 0
	r.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Reset drops all memoized descriptors.
func (r *Reader) Reset() {
	r.m.Clear()
}
