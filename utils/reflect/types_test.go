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
	"errors"
	"reflect"
	"testing"
)

type G[T any] struct{}

func TestIndirect(t *testing.T) {
	type PP = **person
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
		err  error
	}{
		{"plain", reflect.TypeOf(person{}), reflect.TypeOf(person{}), nil},
		{"ptr", reflect.TypeOf(&person{}), reflect.TypeOf(person{}), nil},
		{"ptr ptr", reflect.TypeOf((*PP)(nil)).Elem(), reflect.TypeOf(person{}), nil},
		{"anonymous", reflect.TypeOf(struct{}{}), nil, ErrReflectTypeNotNamed},
		{"nil", nil, nil, ErrReflectNilType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Indirect(tc.typ)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{&person{}, "*reflect.person"},
		{person{}, "reflect.person"},
		{G[int]{}, "reflect.G"},
		{42, "int"},
		{nil, "<nil>"},
	}
	for _, tc := range cases {
		if got := TypeNameOf(tc.v); got != tc.want {
			t.Fatalf("TypeNameOf(%T) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
