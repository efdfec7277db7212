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

package tree

import (
	"github.com/bbva/positional/position"
)

// node is the storage unit of a LinkedTree. It keeps a back-reference
// to its owning tree so foreign positions can be rejected.
type node[E comparable] struct {
	element  E
	parent   *node[E]
	children []*node[E]
	tree     *LinkedTree[E]
}

// Element returns the element stored at this position.
func (n *node[E]) Element() E {
	return n.element
}

// LinkedTree is a pointer-based general tree satisfying the Tree
// contract. Children keep their insertion order.
type LinkedTree[E comparable] struct {
	root *node[E]
	size int
}

// NewLinked returns an empty linked tree.
func NewLinked[E comparable]() *LinkedTree[E] {
	return &LinkedTree[E]{}
}

// Size returns the number of positions in the tree.
func (t *LinkedTree[E]) Size() int {
	return t.size
}

// AddRoot places e at the root of an empty tree and returns its
// position. It fails with ErrRootExists on a non-empty tree.
func (t *LinkedTree[E]) AddRoot(e E) (position.Position[E], error) {
	if t.root != nil {
		return nil, ErrRootExists
	}
	t.root = &node[E]{element: e, tree: t}
	t.size = 1
	return t.root, nil
}

// AddChild appends a new child holding e after the existing children
// of p and returns its position.
func (t *LinkedTree[E]) AddChild(p position.Position[E], e E) (position.Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	child := &node[E]{element: e, parent: n, tree: t}
	n.children = append(n.children, child)
	t.size++
	return child, nil
}

// Set replaces the element at position p and returns the one it held.
func (t *LinkedTree[E]) Set(p position.Position[E], e E) (E, error) {
	n, err := t.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	old := n.element
	n.element = e
	return old, nil
}

// Root returns the root position, or nil if the tree is empty.
func (t *LinkedTree[E]) Root() position.Position[E] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Parent returns the parent of p, or nil if p is the root.
func (t *LinkedTree[E]) Parent(p position.Position[E]) (position.Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	if n.parent == nil {
		return nil, nil
	}
	return n.parent, nil
}

// Children returns the ordered children of p, empty for a leaf.
func (t *LinkedTree[E]) Children(p position.Position[E]) ([]position.Position[E], error) {
	n, err := t.validate(p)
	if err != nil {
		return nil, err
	}
	children := make([]position.Position[E], len(n.children))
	for i, c := range n.children {
		children[i] = c
	}
	return children, nil
}

// validate maps a position to the node it identifies, rejecting nil
// positions and positions owned by other structures.
func (t *LinkedTree[E]) validate(p position.Position[E]) (*node[E], error) {
	n, ok := p.(*node[E])
	if !ok || n == nil || n.tree != t {
		return nil, ErrInvalidPosition
	}
	return n, nil
}
