/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

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

// Package position defines the handle type shared by the positional
// containers of this module.
package position

// Position is an opaque handle to one element slot inside a container,
// independent of index or storage layout. Two positions are the same
// position iff they identify the same slot, regardless of the elements
// stored there.
//
// A position stays valid until the slot it identifies is removed from
// its container. Using an invalidated position is a precondition
// violation: container operations reject it with their invalid-position
// error, they never silently coerce it to a default.
type Position[E any] interface {
	// Element returns the element stored at this position.
	Element() E
}
