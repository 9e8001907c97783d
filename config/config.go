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

package config

import (
	"log/slog"

	"dirpx.dev/linkki/apis"
)

const (
	// DefaultTagKey represents the default for TagKey.
	// Fields are annotated with `linkki:"textfield(position=10)"`.
	DefaultTagKey = "linkki"
	// DefaultModelObject represents the default for DefaultModelObject.
	// It names the model object supplied by a ModelObject() getter.
	DefaultModelObject = "modelObject"
	// DefaultStrictTags represents the default for StrictTags.
	// When true, unknown annotation kinds are configuration errors.
	DefaultStrictTags = true
	// DefaultLogLevel represents the default for LogLevel.
	DefaultLogLevel = slog.LevelInfo
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		TagKey:             DefaultTagKey,
		DefaultModelObject: DefaultModelObject,
		StrictTags:         DefaultStrictTags,
		LogLevel:           DefaultLogLevel,
	}
}

// Normalize restores defaults for values that must not be empty.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.TagKey == "" {
		cfg.TagKey = DefaultTagKey
	}
	if cfg.DefaultModelObject == "" {
		cfg.DefaultModelObject = DefaultModelObject
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithTagKey sets the TagKey option.
// An empty key resets to the default.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		if key == "" {
			key = DefaultTagKey
		}
		c.TagKey = key
	}
}

// WithDefaultModelObject sets the DefaultModelObject option.
// An empty name resets to the default.
func WithDefaultModelObject(name string) Option {
	return func(c *apis.Config) {
		if name == "" {
			name = DefaultModelObject
		}
		c.DefaultModelObject = name
	}
}

// WithStrictTags sets the StrictTags option.
func WithStrictTags(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictTags = strict
	}
}

// WithLogLevel sets the LogLevel option.
func WithLogLevel(level slog.Level) Option {
	return func(c *apis.Config) {
		c.LogLevel = level
	}
}
