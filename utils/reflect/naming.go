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

package reflect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// Decapitalize lower-cases the first rune of s, unless the first two runes
// are both upper case ("URL" stays "URL", "FirstName" becomes "firstName").
func Decapitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsUpper(r) {
		return s
	}
	if r2, _ := utf8.DecodeRuneInString(s[n:]); unicode.IsUpper(r2) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// PropertyName derives a property name from a member name.
// A "Get" or "Is" prefix followed by an upper case rune is stripped:
//
//	GetName -> name, IsActive -> active, Save -> save, Issue -> issue
func PropertyName(member string) string {
	for _, prefix := range []string{"Get", "Is"} {
		rest, ok := strings.CutPrefix(member, prefix)
		if !ok || rest == "" {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			return Decapitalize(rest)
		}
	}
	return Decapitalize(member)
}

// Humanize turns a camel case property name into a label:
// "firstName" -> "First name".
func Humanize(property string) string {
	if property == "" {
		return ""
	}
	var b strings.Builder
	prevLower := false
	for i, r := range property {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r) && prevLower:
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}

// AccessorNames returns the candidate member names that read aspect of
// property, in lookup order. The empty aspect denotes the value itself.
//
//	AccessorNames("name", "")        -> Name, GetName, IsName
//	AccessorNames("name", "visible") -> NameVisible, IsNameVisible, GetNameVisible
func AccessorNames(property, aspect string) []string {
	base := Capitalize(property) + Capitalize(aspect)
	if base == "" {
		return nil
	}
	if aspect == "" {
		return []string{base, "Get" + base, "Is" + base}
	}
	return []string{base, "Is" + base, "Get" + base}
}

// SetterName returns the conventional setter name for property.
func SetterName(property string) string {
	if property == "" {
		return ""
	}
	return "Set" + Capitalize(property)
}
