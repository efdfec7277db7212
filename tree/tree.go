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

// Package tree defines the minimal contract a tree structure has to
// satisfy and an algorithm layer derived from it: traversals, searches,
// depth and height computations and depth-based grouping. The
// algorithms own no storage and work against the contract only, so any
// concrete representation can sit behind it. LinkedTree is the
// pointer-based representation shipped with this package.
package tree

import (
	"errors"

	"github.com/bbva/positional/position"
)

var (
	// ErrInvalidPosition is returned when a position does not belong to
	// the tree it is used on.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrRootExists is returned when adding a root to a non-empty tree.
	ErrRootExists = errors.New("tree already has a root")
)

// Tree is the primitive contract of the algorithm layer. The
// algorithms are correct only while the contract holds: Children
// reports a stable, deterministic order, Parent of the root reports no
// parent, and Children of a leaf is empty.
type Tree[E comparable] interface {
	// Root returns the root position, or nil if the tree is empty.
	Root() position.Position[E]

	// Parent returns the parent of p, or nil if p is the root.
	Parent(p position.Position[E]) (position.Position[E], error)

	// Children returns the ordered children of p, empty for a leaf.
	Children(p position.Position[E]) ([]position.Position[E], error)
}
