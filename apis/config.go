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

package apis

import "log/slog"

// Config carries read-only knobs for descriptor reading and binding.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// TagKey is the struct tag key holding annotation declarations.
	TagKey string `yaml:"tagKey" mapstructure:"tagKey"`

	// DefaultModelObject is the model object name used by element
	// annotations that bind a model attribute without naming the object.
	DefaultModelObject string `yaml:"defaultModelObject" mapstructure:"defaultModelObject"`

	// StrictTags makes unknown annotation kinds in struct tags a
	// configuration error. If false, unknown kinds are skipped and logged.
	StrictTags bool `yaml:"strictTags" mapstructure:"strictTags"`

	// LogLevel is the minimum level for logs emitted by the CLI.
	LogLevel slog.Level `yaml:"logLevel" mapstructure:"logLevel"`
}
