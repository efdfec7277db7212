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

// IsInternal reports whether position p has one or more children.
func IsInternal[E comparable](t Tree[E], p position.Position[E]) (bool, error) {
	n, err := NumChildren(t, p)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsExternal reports whether position p has no children.
func IsExternal[E comparable](t Tree[E], p position.Position[E]) (bool, error) {
	n, err := NumChildren(t, p)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// IsRoot reports whether position p is the root of the tree. The
// comparison is by identity.
func IsRoot[E comparable](t Tree[E], p position.Position[E]) (bool, error) {
	if _, err := t.Parent(p); err != nil {
		return false, err
	}
	return p == t.Root(), nil
}

// NumChildren returns the number of children of position p.
func NumChildren[E comparable](t Tree[E], p position.Position[E]) (int, error) {
	cs, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	return len(cs), nil
}

// Size returns the number of positions in the tree.
func Size[E comparable](t Tree[E]) int {
	return len(Positions(t))
}

// IsEmpty tests whether the tree has no positions.
func IsEmpty[E comparable](t Tree[E]) bool {
	return Size(t) == 0
}

// Depth returns the number of ancestors strictly above p: 0 at the
// root, otherwise one more than the depth of the parent.
func Depth[E comparable](t Tree[E], p position.Position[E]) (int, error) {
	parent, err := t.Parent(p)
	if err != nil {
		return 0, err
	}
	if parent == nil {
		return 0, nil
	}
	d, err := Depth(t, parent)
	if err != nil {
		return 0, err
	}
	return 1 + d, nil
}

// Height returns the height of the subtree rooted at p: 0 for an
// external position, otherwise one more than the tallest child. This
// per-subtree form runs in time linear in the subtree and is the one
// the other algorithms use for the height of the whole tree.
func Height[E comparable](t Tree[E], p position.Position[E]) (int, error) {
	cs, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	h := 0
	for _, c := range cs {
		ch, err := Height(t, c)
		if err != nil {
			return 0, err
		}
		h = max(h, 1+ch)
	}
	return h, nil
}

// Ancestors returns the chain from the parent of p up to and including
// the root, nearest ancestor first. The chain is empty if p is the
// root.
func Ancestors[E comparable](t Tree[E], p position.Position[E]) ([]position.Position[E], error) {
	parent, err := t.Parent(p)
	if err != nil {
		return nil, err
	}
	var chain []position.Position[E]
	for parent != nil {
		chain = append(chain, parent)
		parent, _ = t.Parent(parent)
	}
	return chain, nil
}

// Search returns the first position, in postorder, whose element
// equals e, and false if no element matches.
func Search[E comparable](t Tree[E], e E) (position.Position[E], bool) {
	for _, p := range Postorder(t) {
		if p.Element() == e {
			return p, true
		}
	}
	return nil, false
}

// SearchAll returns every position, in postorder, whose element
// equals e.
func SearchAll[E comparable](t Tree[E], e E) []position.Position[E] {
	var found []position.Position[E]
	for _, p := range Postorder(t) {
		if p.Element() == e {
			found = append(found, p)
		}
	}
	return found
}

// HasDuplicates reports whether some element value occurs at more than
// one position. It re-scans the tree per position, which is quadratic;
// the trees this library targets are small enough for that to hold up.
func HasDuplicates[E comparable](t Tree[E]) bool {
	for _, p := range Postorder(t) {
		if len(SearchAll(t, p.Element())) > 1 {
			return true
		}
	}
	return false
}

// Leaves returns every external position, in postorder.
func Leaves[E comparable](t Tree[E]) []position.Position[E] {
	var leaves []position.Position[E]
	for _, p := range Postorder(t) {
		if len(children(t, p)) == 0 {
			leaves = append(leaves, p)
		}
	}
	return leaves
}

// DeepestBranch returns a longest branch of the tree: a leaf whose
// depth equals the height of the root, followed by its ancestor chain
// up to the root. When several leaves tie at maximum depth the first
// one in postorder wins. An empty tree yields an empty branch.
func DeepestBranch[E comparable](t Tree[E]) []position.Position[E] {
	r := t.Root()
	if r == nil {
		return nil
	}
	height, _ := Height(t, r)
	for _, leaf := range Leaves(t) {
		d, _ := Depth(t, leaf)
		if d != height {
			continue
		}
		chain, _ := Ancestors(t, leaf)
		branch := make([]position.Position[E], 0, len(chain)+1)
		branch = append(branch, leaf)
		return append(branch, chain...)
	}
	return nil
}

// ElementsAtDepth returns the elements whose position has exactly the
// given depth, in postorder. It is empty when no position has that
// depth.
func ElementsAtDepth[E comparable](t Tree[E], depth int) []E {
	var elems []E
	for _, p := range Postorder(t) {
		if d, _ := Depth(t, p); d == depth {
			elems = append(elems, p.Element())
		}
	}
	return elems
}

// GroupByDepth buckets the elements of the tree by the depth of their
// position, visiting each postorder position once. For a non-empty
// tree the keys cover exactly 0 through the height of the root; for an
// empty tree the map is empty.
func GroupByDepth[E comparable](t Tree[E]) map[int][]E {
	groups := make(map[int][]E)
	for _, p := range Postorder(t) {
		d, _ := Depth(t, p)
		groups[d] = append(groups[d], p.Element())
	}
	return groups
}
