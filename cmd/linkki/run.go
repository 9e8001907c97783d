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
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/linkki"
	"dirpx.dev/linkki/internal/demo"
	"dirpx.dev/linkki/ui"
)

// runResult is printed by run.
type runResult struct {
	Person *demo.Person `yaml:"person"`
	Saved  int          `yaml:"saved"`
	UI     ui.Node      `yaml:"ui"`
}

func newRunCmd() *cobra.Command {
	var countries []string
	cmd := &cobra.Command{
		Use:   "run [property=value...]",
		Short: "run binds the person form, applies the edits in order and prints the result as YAML.",
		Long: `Run binds the person form and applies each edit as user input: text is
typed into text fields, check boxes take true or false, combo boxes select
the value and buttons (addPhone, save) are clicked. Failed edits are logged.`,
		Example: "  linkki run name=Ada newsletter=true email=ada@example.org addPhone= save=",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &demo.Person{}
			s, err := demo.NewSession(linkki.Reader(), demo.NewPersonPmo(p, countries...))
			if err != nil {
				return err
			}
			for _, arg := range args {
				property, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("edit %q: want property=value", arg)
				}
				if err := s.Apply(property, value); err != nil {
					slog.Warn("edit failed", "property", property, "value", value, "err", err)
				}
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(runResult{Person: p, Saved: s.Pmo.Saved(), UI: ui.Tree(s.Layout())}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringSliceVar(&countries, "countries", []string{"DE", "FR", "NL"}, "selectable countries; empty for a text field")
	return cmd
}
