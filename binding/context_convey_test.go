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

package binding_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"dirpx.dev/linkki/annotation"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/binding"
	"dirpx.dev/linkki/message"
	"dirpx.dev/linkki/ui"
)

type account struct {
	Owner string
}

type accountPmo struct {
	Account *account `linkki:"modelobject"`
	Owner   string   `linkki:"textfield(position=10,modelAttribute=owner,enabled=dynamic)"`

	locked bool
}

func (p *accountPmo) OwnerEnabled() bool { return !p.locked }

func (*accountPmo) Annotations() annotation.Members {
	return annotation.Members{
		"Note": {annotation.Label{Position: 20}},
	}
}

func (p *accountPmo) Note() string {
	if p.locked {
		return "locked"
	}
	return ""
}

func TestContextScenario(t *testing.T) {
	Convey("Given an account PMO bound to a context", t, func() {
		acc := &account{Owner: "model"}
		pmo := &accountPmo{Account: acc, Owner: "pmo"}
		var msgs message.List
		updates := 0
		ctx := binding.NewContext("account",
			binding.WithValidationService(apis.ValidationFunc(func() (message.List, error) { return msgs, nil })),
			binding.WithUiUpdateObserver(apis.UiUpdateFunc(func() { updates++ })))
		comps := bindAll(t, ctx, pmo)
		owner := comps["owner"].(*ui.TextField)
		note := comps["note"].(*ui.Label)

		Convey("When the UI is updated", func() {
			So(ctx.UpdateUI(), ShouldBeNil)

			Convey("The PMO member wins over the model attribute", func() {
				So(owner.Value(), ShouldEqual, "pmo")
			})
			Convey("Observers are notified once", func() {
				So(updates, ShouldEqual, 1)
			})
		})

		Convey("When the PMO locks the account", func() {
			pmo.locked = true
			So(ctx.UpdateUI(), ShouldBeNil)

			Convey("Dynamic aspects follow the PMO", func() {
				So(owner.Enabled(), ShouldBeFalse)
				So(note.Value(), ShouldEqual, "locked")
			})
			Convey("Input is refused", func() {
				So(owner.Input("x"), ShouldNotBeNil)
				So(pmo.Owner, ShouldEqual, "pmo")
			})
		})

		Convey("When validation reports messages for the owner", func() {
			msgs = message.List{
				message.New(message.Warning, "short", message.ObjectProperty{Object: pmo, Property: "owner"}),
				message.New(message.Error, "other", message.ObjectProperty{Object: acc, Property: "owner"}),
			}
			So(ctx.UpdateUI(), ShouldBeNil)

			Convey("Only messages addressed to the binding's sources are shown", func() {
				So(owner.Messages(), ShouldResemble, []string{"other", "short"})
				So(note.Messages(), ShouldBeEmpty)
			})
		})

		Convey("When the owner binding is removed", func() {
			So(ctx.RemoveBindingsForComponent(owner), ShouldEqual, 1)
			pmo.Owner = "changed"
			So(ctx.UpdateUI(), ShouldBeNil)

			Convey("The component is no longer updated", func() {
				So(owner.Value(), ShouldNotEqual, "changed")
			})
		})
	})
}
