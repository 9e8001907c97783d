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

// Package demo holds the sample person form used by the linkki command.
package demo

import (
	"errors"
	"strings"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/aspect"
	"dirpx.dev/linkki/message"
)

// ErrInvalid is returned by Save while validation reports errors.
var ErrInvalid = errors.New("demo: person is invalid")

// Person is the model edited by the form.
type Person struct {
	Name       string   `yaml:"name"`
	Country    string   `yaml:"country"`
	Newsletter bool     `yaml:"newsletter"`
	Email      string   `yaml:"email"`
	Phones     []*Phone `yaml:"phones,omitempty"`
}

// Phone is one phone number of a person.
type Phone struct {
	Kind   string `yaml:"kind"`
	Number string `yaml:"number"`
}

// PhoneRowPmo presents a phone as a table row.
type PhoneRowPmo struct {
	Phone *Phone `linkki:"modelObject"`
}

// Annotations implements annotation.Annotated.
func (*PhoneRowPmo) Annotations() annotation.Members {
	return annotation.Members{
		"Kind":   {annotation.Label{Position: 10, ModelAttribute: "kind"}},
		"Number": {annotation.TextField{Position: 20, ModelAttribute: "number"}},
	}
}

// PersonPmo presents a person. The country is chosen from a combo box
// when countries are known, and typed in otherwise.
type PersonPmo struct {
	Person *Person `linkki:"modelObject"`

	countries []string
	rows      map[*Phone]*PhoneRowPmo
	saved     int
}

// NewPersonPmo returns the presentation of p.
func NewPersonPmo(p *Person, countries ...string) *PersonPmo {
	return &PersonPmo{Person: p, countries: countries, rows: map[*Phone]*PhoneRowPmo{}}
}

// Annotations implements annotation.Annotated.
func (*PersonPmo) Annotations() annotation.Members {
	country := []apis.Annotation{
		annotation.TextField{Position: 20, ModelAttribute: "country"},
		annotation.ComboBox{Position: 20, ModelAttribute: "country", Content: aspect.DynamicValues},
	}
	email := annotation.TextField{Position: 40, ModelAttribute: "email", Enabled: aspect.DynamicEnabled, Required: aspect.RequiredIfEnabled}
	return annotation.Members{
		annotation.TypeLevel: {annotation.Section{Caption: "Person"}},
		"Summary":            {annotation.Label{Position: 5}},
		"Name":               {annotation.TextField{Position: 10, ModelAttribute: "name", Required: aspect.Required}},
		"Country":            country,
		"Newsletter":         {annotation.CheckBox{Position: 30, ModelAttribute: "newsletter"}},
		"Email":              {email},
		"Phones":             {annotation.Table{Position: 50, Caption: "Phones"}},
		"AddPhone":           {annotation.Button{Position: 60, Caption: "Add phone"}},
		"Save":               {annotation.Button{Position: 90, Caption: "Save"}},
	}
}

// Summary is shown on top of the form.
func (p *PersonPmo) Summary() string {
	if p.Person.Name == "" {
		return "New person"
	}
	return p.Person.Name
}

// CountryComponentType selects the component of the country.
func (p *PersonPmo) CountryComponentType() apis.Kind {
	if len(p.countries) > 0 {
		return annotation.KindComboBox
	}
	return annotation.KindTextField
}

// CountryAvailableValues returns the selectable countries.
func (p *PersonPmo) CountryAvailableValues() []string { return p.countries }

// SetCountries replaces the selectable countries. The form must be
// rebuilt to pick up a change of the country component.
func (p *PersonPmo) SetCountries(countries ...string) { p.countries = countries }

// EmailEnabled enables the email with the newsletter.
func (p *PersonPmo) EmailEnabled() bool { return p.Person.Newsletter }

// Phones returns one row per phone. Rows are kept per phone so that
// unchanged phones keep their row.
func (p *PersonPmo) Phones() []*PhoneRowPmo {
	out := make([]*PhoneRowPmo, 0, len(p.Person.Phones))
	live := make(map[*Phone]*PhoneRowPmo, len(p.Person.Phones))
	for _, ph := range p.Person.Phones {
		row, ok := p.rows[ph]
		if !ok {
			row = &PhoneRowPmo{Phone: ph}
		}
		live[ph] = row
		out = append(out, row)
	}
	p.rows = live
	return out
}

// AddPhone appends an empty mobile number.
func (p *PersonPmo) AddPhone() {
	p.Person.Phones = append(p.Person.Phones, &Phone{Kind: "mobile"})
}

// Save accepts the person if it is valid.
func (p *PersonPmo) Save() error {
	msgs, _ := (&Validator{Pmo: p}).ValidationMessages()
	if msgs.ContainsErrors() {
		return ErrInvalid
	}
	p.saved++
	return nil
}

// Saved returns how often the person was saved.
func (p *PersonPmo) Saved() int { return p.saved }

// Validator validates the person of a PersonPmo.
type Validator struct {
	Pmo *PersonPmo
}

// Ensure Validator implements apis.ValidationService.
var _ apis.ValidationService = (*Validator)(nil)

// ValidationMessages implements apis.ValidationService.
func (v *Validator) ValidationMessages() (message.List, error) {
	p := v.Pmo.Person
	l := message.List{}
	if strings.TrimSpace(p.Name) == "" {
		l = append(l, message.New(message.Error, "Name is required", message.ObjectProperty{Object: p, Property: "name"}))
	}
	switch {
	case p.Newsletter && p.Email == "":
		l = append(l, message.New(message.Error, "Email is required for the newsletter", message.ObjectProperty{Object: p, Property: "email"}))
	case p.Email != "" && !strings.Contains(p.Email, "@"):
		l = append(l, message.New(message.Warning, "Email looks invalid", message.ObjectProperty{Object: p, Property: "email"}))
	}
	for _, ph := range p.Phones {
		if ph.Number == "" {
			l = append(l, message.New(message.Warning, "Number is empty", message.ObjectProperty{Object: ph, Property: "number"}))
		}
	}
	return l, nil
}
