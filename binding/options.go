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
	"log/slog"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/behavior"
	"dirpx.dev/linkki/config"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/registry"
	"dirpx.dev/linkki/ui"
	uref "dirpx.dev/linkki/utils/reflect"
)

// WrapFunc adapts a component created by a component definition.
type WrapFunc func(component any, t *apis.WrapperType) apis.ComponentWrapper

// ErrorHandler receives errors raised by UI events, which have no caller to
// return them to.
type ErrorHandler func(err error)

// options are shared by the contexts of a manager.
type options struct {
	validation apis.ValidationService
	behaviors  apis.PropertyBehaviorProvider
	cache      *uref.Cache
	reader     *descriptor.Reader
	wrap       WrapFunc
	log        *slog.Logger
	onError    ErrorHandler
	observers  []apis.UiUpdateObserver
}

// Option configures a Context or a Manager.
type Option func(*options)

// WithValidationService sets the source of validation messages.
func WithValidationService(s apis.ValidationService) Option {
	return func(o *options) { o.validation = s }
}

// WithBehaviors sets the property behaviors consulted by dispatchers.
func WithBehaviors(p apis.PropertyBehaviorProvider) Option {
	return func(o *options) { o.behaviors = p }
}

// WithAccessorCache shares an accessor cache. By default the cache of the
// descriptor reader is used.
func WithAccessorCache(c *uref.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithReader sets the descriptor reader used for model objects and table
// rows.
func WithReader(r *descriptor.Reader) Option {
	return func(o *options) { o.reader = r }
}

// WithWrapper sets how components are wrapped. The default is ui.Wrap.
func WithWrapper(w WrapFunc) Option {
	return func(o *options) { o.wrap = w }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithErrorHandler sets the handler of UI event errors. The default logs
// them at error level.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) { o.onError = h }
}

// WithUiUpdateObserver registers an observer notified after every
// completed UI update.
func WithUiUpdateObserver(obs apis.UiUpdateObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.behaviors == nil {
		o.behaviors = behavior.Default()
	}
	if o.reader == nil {
		reg := registry.New()
		// Registering the built-in kinds into an empty registry cannot conflict.
		_ = annotation.RegisterDefaults(reg)
		o.reader = descriptor.NewReader(config.DefaultConfig(), reg,
			descriptor.WithCache(o.cache), descriptor.WithLogger(o.log))
	}
	if o.cache == nil {
		o.cache = o.reader.Cache()
	}
	if o.wrap == nil {
		o.wrap = ui.Wrap
	}
	if o.onError == nil {
		log := o.log
		o.onError = func(err error) { log.Error("ui event failed", "err", err) }
	}
	return o
}
