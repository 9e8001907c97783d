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

import "dirpx.dev/linkki/message"

// ValidationService supplies the messages shown on every UI update.
type ValidationService interface {
	ValidationMessages() (message.List, error)
}

// ValidationFunc adapts a function to ValidationService.
type ValidationFunc func() (message.List, error)

// ValidationMessages implements ValidationService.
func (f ValidationFunc) ValidationMessages() (message.List, error) { return f() }

// PropertyBehavior is a cross-cutting predicate over bound properties.
type PropertyBehavior interface {
	// IsWritable reports whether property of object may be written.
	IsWritable(object any, property string) bool
	// IsVisible reports whether property of object may be shown.
	IsVisible(object any, property string) bool
	// IsShowValidationMessages reports whether messages may be shown at
	// property of object.
	IsShowValidationMessages(object any, property string) bool
}

// PropertyBehaviorProvider supplies the behaviors consulted by dispatchers.
type PropertyBehaviorProvider interface {
	Behaviors() []PropertyBehavior
}

// UiUpdateObserver is notified once after every completed UI update.
type UiUpdateObserver interface {
	UiUpdated()
}

// UiUpdateFunc adapts a function to UiUpdateObserver.
type UiUpdateFunc func()

// UiUpdated implements UiUpdateObserver.
func (f UiUpdateFunc) UiUpdated() { f() }
