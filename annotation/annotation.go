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

// Package annotation declares the annotations PMO authors attach to their
// types, and decodes them from struct tags.
//
// Annotations reach the descriptor reader in two ways. Exported fields may
// carry a struct tag:
//
//	type PersonPmo struct {
//		Name string `linkki:"textfield(position=10,label=Name);tooltip(text=Full name)"`
//	}
//
// A type may also implement Annotated to annotate methods, which struct tags
// cannot reach:
//
//	func (*PersonPmo) Annotations() annotation.Members {
//		return annotation.Members{
//			annotation.TypeLevel: {annotation.Section{Caption: "Person"}},
//			"Save":               {annotation.Button{Position: 90}},
//		}
//	}
//
// Attribute names and defaults of the annotations are a compatibility
// contract with PMO authors.
package annotation

import (
	"dirpx.dev/linkki/apis"
)

// Annotation kinds.
const (
	KindTextField   apis.Kind = "textfield"
	KindCheckBox    apis.Kind = "checkbox"
	KindComboBox    apis.Kind = "combobox"
	KindLabel       apis.Kind = "label"
	KindButton      apis.Kind = "button"
	KindTable       apis.Kind = "table"
	KindSection     apis.Kind = "section"
	KindTooltip     apis.Kind = "tooltip"
	KindModelObject apis.Kind = "modelobject"
)

// TypeLevel is the member key of annotations on the PMO type itself.
const TypeLevel = ""

// Members maps member names to their annotations.
type Members map[string][]apis.Annotation

// Annotated is implemented by PMO types declaring annotations in code.
// Annotations is called on a zero value and must not depend on instance
// state.
type Annotated interface {
	Annotations() Members
}
