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

// Registry maps annotation kinds to the factories decoding their struct tag
// declarations. Keep it minimal so implementations can be lock-free or
// sync.Map-backed.
type Registry interface {
	// Register associates kind with f. Implementations should be idempotent
	// for the same function; conflicting re-registrations fail. Functions
	// are compared by code pointer: closures built from one func literal
	// count as the same function even when they capture different state,
	// and the factory registered first is kept.
	Register(kind Kind, f AnnotationFactory) error
	// Lookup returns the factory of kind if present.
	Lookup(kind Kind) (AnnotationFactory, bool)
	// Kinds returns the registered kinds, sorted.
	Kinds() []Kind
	// Count returns the number of registered kinds.
	Count() int
	// Reset clears all registered kinds.
	Reset()
}
