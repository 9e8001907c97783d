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

// Package descriptor reads PMO types into element descriptors.
//
// A Reader collects the annotations of a PMO type from struct tags and from
// the annotation.Annotated interface, validates them and groups the
// resulting element descriptors by property, ordered by position. The
// result is memoized per type; concurrent first reads of a type share one
// computation.
//
// Invalid declarations are reported as *apis.ConfigError:
//   - two properties at the same position
//   - alternative elements of a dynamic field at different positions, or a
//     dynamic field without a <Prop>ComponentType method
//   - references to undeclared or duplicate model objects
//   - annotations on members the PMO does not have, unless every one of
//     them binds a model attribute
//   - unknown tag kinds when strict tags are enabled
package descriptor
