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

package list

// node is the internal storage unit of a List. It holds one element and
// the links to its neighbours in the doubly linked chain. The two
// sentinel nodes created at construction time carry a nil owner token
// and are never exposed as positions.
type node[E comparable] struct {
	element E
	prev    *node[E]
	next    *node[E]
	owner   *owner[E]
}

// owner is the identity token shared by every live node of one list.
// Ownership transfer on concatenation re-points the token once, which
// re-owns every transferred node without walking the chain. A removed
// node gets its token cleared, so stale positions are rejected.
type owner[E comparable] struct {
	list *List[E]
}

// Element returns the element stored at this position.
func (n *node[E]) Element() E {
	return n.element
}
