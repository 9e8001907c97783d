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

package annotation

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/linkki/apis"
)

// ErrTagSyntax is returned for malformed struct tag declarations.
var ErrTagSyntax = errors.New("linkki(annotation): malformed tag")

// Decl is one declaration of a struct tag: a kind and its attributes.
type Decl struct {
	Kind  apis.Kind
	Attrs map[string]string
}

// ParseTag splits a struct tag value into declarations. The grammar is
//
//	tag   = decl { ";" decl }
//	decl  = kind [ "(" [ attr { "," attr } ] ")" ]
//	attr  = key "=" value
//
// Values may be wrapped in single quotes to contain ',', ';', '(' or ')'.
// Kinds are case-insensitive; keys are not. Empty declarations are skipped.
func ParseTag(tag string) ([]Decl, error) {
	p := &tagParser{s: tag}
	var out []Decl
	for {
		p.skipSpace()
		if p.done() {
			return out, nil
		}
		if p.peek() == ';' {
			p.pos++
			continue
		}
		d, err := p.decl()
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrTagSyntax, tag, err)
		}
		out = append(out, d)
		p.skipSpace()
		if !p.done() {
			if p.peek() != ';' {
				return nil, fmt.Errorf("%w %q: expected ';' at %d", ErrTagSyntax, tag, p.pos)
			}
			p.pos++
		}
	}
}

type tagParser struct {
	s   string
	pos int
}

func (p *tagParser) done() bool { return p.pos >= len(p.s) }

func (p *tagParser) peek() byte { return p.s[p.pos] }

func (p *tagParser) skipSpace() {
	for !p.done() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// ident reads up to one of the stop bytes.
func (p *tagParser) ident(stop string) string {
	start := p.pos
	for !p.done() && !strings.ContainsRune(stop, rune(p.peek())) {
		p.pos++
	}
	return strings.TrimSpace(p.s[start:p.pos])
}

func (p *tagParser) decl() (Decl, error) {
	kind := p.ident("(;")
	if kind == "" {
		return Decl{}, fmt.Errorf("missing kind at %d", p.pos)
	}
	d := Decl{Kind: apis.Kind(strings.ToLower(kind)), Attrs: map[string]string{}}
	if p.done() || p.peek() != '(' {
		return d, nil
	}
	p.pos++ // (
	for {
		p.skipSpace()
		if p.done() {
			return Decl{}, errors.New("unterminated attribute list")
		}
		if p.peek() == ')' {
			p.pos++
			return d, nil
		}
		key := p.ident("=,)")
		if p.done() || p.peek() != '=' {
			return Decl{}, fmt.Errorf("attribute %q of %s has no value", key, kind)
		}
		if key == "" {
			return Decl{}, fmt.Errorf("empty attribute name in %s", kind)
		}
		p.pos++ // =
		val, err := p.value()
		if err != nil {
			return Decl{}, err
		}
		if _, dup := d.Attrs[key]; dup {
			return Decl{}, fmt.Errorf("duplicate attribute %q in %s", key, kind)
		}
		d.Attrs[key] = val
		p.skipSpace()
		if !p.done() && p.peek() == ',' {
			p.pos++
		}
	}
}

func (p *tagParser) value() (string, error) {
	p.skipSpace()
	if p.done() || p.peek() != '\'' {
		return p.ident(",)"), nil
	}
	p.pos++ // opening quote
	end := strings.IndexByte(p.s[p.pos:], '\'')
	if end < 0 {
		return "", errors.New("unterminated quoted value")
	}
	v := p.s[p.pos : p.pos+end]
	p.pos += end + 1
	return v, nil
}
