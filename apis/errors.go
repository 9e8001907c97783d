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

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration classifies invalid annotation or PMO setups.
	ErrConfiguration = errors.New("linkki: invalid configuration")
	// ErrNoSource is returned when neither PMO nor model object declares
	// the requested property or aspect.
	ErrNoSource = errors.New("linkki: no source for property")
	// ErrInvocation is returned when a PMO or model object member fails.
	ErrInvocation = errors.New("linkki: invocation failed")
	// ErrReadOnly is returned when a write is refused by a property behavior.
	ErrReadOnly = errors.New("linkki: property is read-only")
)

// ConfigError reports an invalid PMO declaration found while reading
// descriptors. It wraps ErrConfiguration.
type ConfigError struct {
	// Type is the PMO type name.
	Type string
	// Members are the offending members or properties.
	Members []string
	// Reason describes the problem.
	Reason string
}

// Error implements error.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("linkki: invalid configuration of ")
	b.WriteString(e.Type)
	if len(e.Members) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Members, ", "))
		b.WriteByte(']')
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// Unwrap returns ErrConfiguration.
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// NewConfigError builds a ConfigError.
func NewConfigError(typ string, reason string, members ...string) *ConfigError {
	return &ConfigError{Type: typ, Members: members, Reason: reason}
}

// BindingError reports a failed dispatch. It matches both its Kind sentinel
// and its cause with errors.Is.
type BindingError struct {
	// Op is "pull", "push" or "invoke".
	Op string
	// Type is the name of the object type the operation ran on.
	Type string
	// Property is the bound property.
	Property string
	// Aspect is the aspect name, empty for the value.
	Aspect string
	// Kind is ErrNoSource, ErrInvocation or ErrReadOnly.
	Kind error
	// Err is the underlying cause. May be nil.
	Err error
}

// Error implements error.
func (e *BindingError) Error() string {
	target := e.Type + "." + e.Property
	if e.Aspect != "" {
		target += "#" + e.Aspect
	}
	msg := fmt.Sprintf("%s %s: %v", e.Op, target, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the kind sentinel and the cause.
func (e *BindingError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
