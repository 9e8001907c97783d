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

// Package binding keeps UI components in sync with PMOs.
//
// A Binding joins a component wrapper, the dispatcher chain of a bound
// property and the aspect updaters of its descriptor. A Context owns the
// bindings of one UI region; UpdateUI shows validation messages and then
// updates every binding in insertion order, stopping at the first error.
// Containers update their own aspects before their children. Tables
// reconcile their rows through an ItemCache and rebuild them only when the
// row objects change by position or identity.
//
// UI events write through the dispatcher and then call ModelChanged, which
// refreshes the whole context, or every context of a Manager.
//
// Bindings and contexts are not safe for concurrent use.
package binding
