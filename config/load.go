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
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/linkki/apis"
)

// ErrDecode is returned when a configuration document cannot be decoded.
var ErrDecode = errors.New("linkki(config): cannot decode configuration")

// Load decodes a YAML document on top of DefaultConfig. Keys missing from
// the document keep their defaults; unknown keys are rejected.
//
//	tagKey: ui
//	defaultModelObject: person
//	strictTags: false
//	logLevel: debug
func Load(r io.Reader) (apis.Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Normalize(cfg), nil
}

// Dump encodes cfg as YAML.
func Dump(w io.Writer, cfg apis.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
