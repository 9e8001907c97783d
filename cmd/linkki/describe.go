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

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/linkki"
	"dirpx.dev/linkki/descriptor"
	"dirpx.dev/linkki/internal/demo"
	uref "dirpx.dev/linkki/utils/reflect"
)

// pmos are the PMO types known to describe.
var pmos = map[string]func() any{
	"person": func() any { return demo.NewPersonPmo(&demo.Person{}) },
	"phone":  func() any { return &demo.PhoneRowPmo{Phone: &demo.Phone{}} },
}

// typeDoc is the YAML view of the descriptors of one PMO type.
type typeDoc struct {
	Type         string        `yaml:"type"`
	Layout       string        `yaml:"layout,omitempty"`
	ModelObjects []string      `yaml:"modelObjects,omitempty"`
	Properties   []propertyDoc `yaml:"properties"`
}

type propertyDoc struct {
	Property      string       `yaml:"property"`
	Position      int          `yaml:"position"`
	Discriminator string       `yaml:"discriminator,omitempty"`
	Elements      []elementDoc `yaml:"elements"`
}

type elementDoc struct {
	Kind           string   `yaml:"kind"`
	Member         string   `yaml:"member,omitempty"`
	Binding        string   `yaml:"binding"`
	ModelObject    string   `yaml:"modelObject,omitempty"`
	ModelAttribute string   `yaml:"modelAttribute,omitempty"`
	Aspects        []string `yaml:"aspects"`
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "describe [type...]",
		Short:     "describe prints the element descriptors of the sample PMOs as YAML.",
		ValidArgs: slices.Sorted(maps.Keys(pmos)),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = slices.Sorted(maps.Keys(pmos))
			}
			docs := make([]typeDoc, 0, len(args))
			for _, name := range args {
				ds, err := linkki.Read(pmos[name]())
				if err != nil {
					return fmt.Errorf("describe %s: %w", name, err)
				}
				docs = append(docs, describe(ds))
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(docs); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func describe(ds *descriptor.Descriptors) typeDoc {
	doc := typeDoc{Type: uref.TypeName(ds.Type), ModelObjects: ds.ModelObjects()}
	if ds.Layout != nil {
		doc.Layout = string(ds.Layout.Kind)
	}
	for _, p := range ds.Properties() {
		pd := propertyDoc{Property: p.Property, Position: p.Position, Discriminator: p.Discriminator()}
		for _, k := range p.Kinds() {
			ed, _ := p.ByKind(k)
			pd.Elements = append(pd.Elements, element(ed))
		}
		doc.Properties = append(doc.Properties, pd)
	}
	return doc
}

func element(ed *descriptor.ElementDescriptor) elementDoc {
	d := elementDoc{
		Kind:           string(ed.Kind),
		Member:         ed.Member,
		Binding:        ed.BindingKind.String(),
		ModelObject:    ed.BoundProperty.ModelObject,
		ModelAttribute: ed.BoundProperty.ModelAttribute,
	}
	for _, a := range ed.Aspects {
		d.Aspects = append(d.Aspects, a.Name())
	}
	return d
}
