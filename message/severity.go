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

package message

import (
	"errors"
	"fmt"
	"strings"
)

// Severity ranks a message. Higher values are more severe.
type Severity uint8

const (
	// Info is a purely informational message.
	Info Severity = iota + 1
	// Warning does not prevent the user from continuing.
	Warning
	// Error marks invalid input.
	Error
)

// ErrUnknownSeverity is returned by Parse for unrecognised names.
var ErrUnknownSeverity = errors.New("linkki(message): unknown severity")

// String returns the canonical lower case name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// IsValid reports whether s is one of the declared severities.
func (s Severity) IsValid() bool {
	return s >= Info && s <= Error
}

// Parse converts a name (case-insensitive, surrounding space ignored) to a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(name string) Severity {
	s, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
