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

// The traversals below materialize their result into a snapshot slice
// at call time. A snapshot is a point-in-time view: mutating the tree
// afterwards does not affect an already returned snapshot.

// Preorder returns the positions of the tree in preorder: a position
// first, then each child's subtree in child order. An empty tree
// yields an empty snapshot.
func Preorder[E comparable](t Tree[E]) []position.Position[E] {
	var snapshot []position.Position[E]
	if r := t.Root(); r != nil {
		snapshot = preorderSubtree(t, r, snapshot)
	}
	return snapshot
}

func preorderSubtree[E comparable](t Tree[E], p position.Position[E], snapshot []position.Position[E]) []position.Position[E] {
	snapshot = append(snapshot, p)
	for _, c := range children(t, p) {
		snapshot = preorderSubtree(t, c, snapshot)
	}
	return snapshot
}

// Postorder returns the positions of the tree in postorder: each
// child's subtree in child order, then the position itself.
func Postorder[E comparable](t Tree[E]) []position.Position[E] {
	var snapshot []position.Position[E]
	if r := t.Root(); r != nil {
		snapshot = postorderSubtree(t, r, snapshot)
	}
	return snapshot
}

func postorderSubtree[E comparable](t Tree[E], p position.Position[E], snapshot []position.Position[E]) []position.Position[E] {
	for _, c := range children(t, p) {
		snapshot = postorderSubtree(t, c, snapshot)
	}
	return append(snapshot, p)
}

// Positions returns every position of the tree in its canonical
// enumeration order, which is preorder.
func Positions[E comparable](t Tree[E]) []position.Position[E] {
	return Preorder(t)
}

// Elements returns the elements of the tree in canonical order.
func Elements[E comparable](t Tree[E]) []E {
	ps := Positions(t)
	elems := make([]E, len(ps))
	for i, p := range ps {
		elems[i] = p.Element()
	}
	return elems
}

// BreadthFirstQueue returns the positions of the tree in level order:
// all positions of depth k before any position of depth k+1, siblings
// in child order. The fringe is a FIFO queue.
func BreadthFirstQueue[E comparable](t Tree[E]) []position.Position[E] {
	var snapshot []position.Position[E]
	r := t.Root()
	if r == nil {
		return snapshot
	}
	fringe := newQueue[E]()
	fringe.enqueue(r)
	for !fringe.isEmpty() {
		p := fringe.dequeue()
		snapshot = append(snapshot, p)
		for _, c := range children(t, p) {
			fringe.enqueue(c)
		}
	}
	return snapshot
}

// BreadthFirstStack drives the same loop with a LIFO fringe: push the
// root, pop a position, record it, push its children in child order.
// The result is a distinct order, not level order, and is preserved as
// its own named traversal.
func BreadthFirstStack[E comparable](t Tree[E]) []position.Position[E] {
	var snapshot []position.Position[E]
	r := t.Root()
	if r == nil {
		return snapshot
	}
	fringe := newStack[E]()
	fringe.push(r)
	for !fringe.isEmpty() {
		p := fringe.pop()
		snapshot = append(snapshot, p)
		for _, c := range children(t, p) {
			fringe.push(c)
		}
	}
	return snapshot
}

// children wraps the Children primitive for positions the tree itself
// produced, for which the contract guarantees validity.
func children[E comparable](t Tree[E], p position.Position[E]) []position.Position[E] {
	cs, _ := t.Children(p)
	return cs
}
