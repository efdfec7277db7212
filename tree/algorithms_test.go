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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbva/positional/position"
)

// sampleTree builds the tree
//
//	r
//	├── a
//	│   └── c
//	└── b
//
// and returns its positions by element name.
func sampleTree(t *testing.T) (Tree[string], map[string]position.Position[string]) {
	t.Helper()

	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)
	a, err := lt.AddChild(root, "a")
	require.NoError(t, err)
	b, err := lt.AddChild(root, "b")
	require.NoError(t, err)
	c, err := lt.AddChild(a, "c")
	require.NoError(t, err)

	return lt, map[string]position.Position[string]{"r": root, "a": a, "b": b, "c": c}
}

// wideTree builds a three-level tree with two children per internal
// position, for the level order property.
func wideTree(t *testing.T) Tree[string] {
	t.Helper()

	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)
	for _, name := range []string{"a", "b"} {
		child, err := lt.AddChild(root, name)
		require.NoError(t, err)
		_, err = lt.AddChild(child, name+"1")
		require.NoError(t, err)
		_, err = lt.AddChild(child, name+"2")
		require.NoError(t, err)
	}
	return lt
}

func elementsOf(ps []position.Position[string]) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Element()
	}
	return names
}

func TestPreorder(t *testing.T) {
	tr, _ := sampleTree(t)
	require.Equal(t, []string{"r", "a", "c", "b"}, elementsOf(Preorder(tr)))
}

func TestPostorder(t *testing.T) {
	tr, _ := sampleTree(t)
	require.Equal(t, []string{"c", "a", "b", "r"}, elementsOf(Postorder(tr)))
}

func TestTraversalsVisitEveryPositionOnce(t *testing.T) {
	tr, ps := sampleTree(t)

	for name, snapshot := range map[string][]position.Position[string]{
		"preorder":  Preorder(tr),
		"postorder": Postorder(tr),
		"queue":     BreadthFirstQueue(tr),
		"stack":     BreadthFirstStack(tr),
	} {
		require.Lenf(t, snapshot, len(ps), "%s should visit every position", name)
		seen := make(map[position.Position[string]]bool, len(snapshot))
		for _, p := range snapshot {
			require.Falsef(t, seen[p], "%s should visit %v once", name, p.Element())
			seen[p] = true
		}
	}

	require.Equal(t, ps["r"], Preorder(tr)[0], "the root comes first in preorder")
	post := Postorder(tr)
	require.Equal(t, ps["r"], post[len(post)-1], "the root comes last in postorder")
}

func TestPositionsAndElements(t *testing.T) {
	tr, _ := sampleTree(t)
	require.Equal(t, elementsOf(Preorder(tr)), elementsOf(Positions(tr)), "the canonical order is preorder")
	require.Equal(t, []string{"r", "a", "c", "b"}, Elements(tr))
}

func TestSizeAndIsEmpty(t *testing.T) {
	tr, _ := sampleTree(t)
	require.Equal(t, 4, Size(tr))
	require.False(t, IsEmpty(tr))

	empty := NewLinked[string]()
	require.Equal(t, 0, Size[string](empty))
	require.True(t, IsEmpty[string](empty))
	require.Empty(t, Preorder[string](empty))
	require.Empty(t, Postorder[string](empty))
	require.Empty(t, BreadthFirstQueue[string](empty))
	require.Empty(t, BreadthFirstStack[string](empty))
}

func TestBreadthFirstQueueIsLevelOrder(t *testing.T) {
	tr, _ := sampleTree(t)
	require.Equal(t, []string{"r", "a", "b", "c"}, elementsOf(BreadthFirstQueue(tr)))

	wide := wideTree(t)
	lastDepth := 0
	for _, p := range BreadthFirstQueue(wide) {
		d, err := Depth(wide, p)
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, lastDepth, "depth must never decrease in level order")
		lastDepth = d
	}
}

func TestBreadthFirstStackIsADistinctOrder(t *testing.T) {
	tr, _ := sampleTree(t)
	// push r; pop r, push a then b; pop b; pop a, push c; pop c
	require.Equal(t, []string{"r", "b", "a", "c"}, elementsOf(BreadthFirstStack(tr)))
	require.NotEqual(t, elementsOf(BreadthFirstQueue(tr)), elementsOf(BreadthFirstStack(tr)))
}

func TestDepth(t *testing.T) {
	tr, ps := sampleTree(t)

	testCases := []struct {
		name  string
		depth int
	}{
		{"r", 0},
		{"a", 1},
		{"b", 1},
		{"c", 2},
	}

	for i, c := range testCases {
		d, err := Depth(tr, ps[c.name])
		require.NoErrorf(t, err, "Depth should accept position %q in test case %d", c.name, i)
		require.Equalf(t, c.depth, d, "Unexpected depth of %q in test case %d", c.name, i)
	}

	// depth(p) == depth(parent(p)) + 1 for every non-root position
	for _, p := range Positions(tr) {
		parent, err := tr.Parent(p)
		require.NoError(t, err)
		if parent == nil {
			continue
		}
		dp, err := Depth(tr, p)
		require.NoError(t, err)
		dq, err := Depth(tr, parent)
		require.NoError(t, err)
		require.Equal(t, dq+1, dp)
	}
}

func TestHeight(t *testing.T) {
	tr, ps := sampleTree(t)

	testCases := []struct {
		name   string
		height int
	}{
		{"r", 2},
		{"a", 1},
		{"b", 0},
		{"c", 0},
	}

	for i, c := range testCases {
		h, err := Height(tr, ps[c.name])
		require.NoErrorf(t, err, "Height should accept position %q in test case %d", c.name, i)
		require.Equalf(t, c.height, h, "Unexpected height of %q in test case %d", c.name, i)
	}
}

func TestAncestors(t *testing.T) {
	tr, ps := sampleTree(t)

	chain, err := Ancestors(tr, ps["c"])
	require.NoError(t, err)
	require.Equal(t, []position.Position[string]{ps["a"], ps["r"]}, chain, "nearest ancestor first")

	chain, err = Ancestors(tr, ps["r"])
	require.NoError(t, err)
	require.Empty(t, chain, "the root has no ancestors")
}

func TestPositionQueries(t *testing.T) {
	tr, ps := sampleTree(t)

	isRoot, err := IsRoot(tr, ps["r"])
	require.NoError(t, err)
	require.True(t, isRoot)
	isRoot, err = IsRoot(tr, ps["a"])
	require.NoError(t, err)
	require.False(t, isRoot)

	internal, err := IsInternal(tr, ps["a"])
	require.NoError(t, err)
	require.True(t, internal)
	external, err := IsExternal(tr, ps["b"])
	require.NoError(t, err)
	require.True(t, external)

	n, err := NumChildren(tr, ps["r"])
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestAlgorithmsRejectForeignPositions(t *testing.T) {
	tr, _ := sampleTree(t)
	other := NewLinked[string]()
	foreign, err := other.AddRoot("x")
	require.NoError(t, err)

	_, err = Depth(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = Height(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = Ancestors(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = IsRoot(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = IsInternal(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = IsExternal(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = NumChildren(tr, foreign)
	require.ErrorIs(t, err, ErrInvalidPosition)
}

func TestSearch(t *testing.T) {
	tr, ps := sampleTree(t)

	p, ok := Search(tr, "b")
	require.True(t, ok)
	require.Equal(t, ps["b"], p)

	_, ok = Search(tr, "z")
	require.False(t, ok, "absence is a plain result, not a failure")
}

func TestSearchFindsFirstInPostorder(t *testing.T) {
	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)
	first, err := lt.AddChild(root, "dup")
	require.NoError(t, err)
	_, err = lt.AddChild(root, "dup")
	require.NoError(t, err)

	p, ok := Search[string](lt, "dup")
	require.True(t, ok)
	require.Equal(t, first, p, "postorder visits the first child before the second")
}

func TestSearchAllAndDuplicates(t *testing.T) {
	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)
	_, err = lt.AddChild(root, "dup")
	require.NoError(t, err)
	a, err := lt.AddChild(root, "a")
	require.NoError(t, err)
	_, err = lt.AddChild(a, "dup")
	require.NoError(t, err)

	found := SearchAll[string](lt, "dup")
	require.Len(t, found, 2)
	require.Empty(t, SearchAll[string](lt, "z"))
	require.True(t, HasDuplicates[string](lt))

	distinct, _ := sampleTree(t)
	require.False(t, HasDuplicates(distinct), "all-distinct values hold no duplicates")
}

func TestLeaves(t *testing.T) {
	tr, ps := sampleTree(t)
	require.Equal(t, []position.Position[string]{ps["c"], ps["b"]}, Leaves(tr), "external positions in postorder")
}

func TestDeepestBranch(t *testing.T) {
	tr, ps := sampleTree(t)
	require.Equal(t, []position.Position[string]{ps["c"], ps["a"], ps["r"]}, DeepestBranch(tr))

	empty := NewLinked[string]()
	require.Empty(t, DeepestBranch[string](empty))
}

func TestDeepestBranchWithTies(t *testing.T) {
	// two leaves tie at maximum depth; whichever wins, the branch must
	// run from that leaf through strictly increasing ancestors to the
	// root
	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)
	for _, name := range []string{"a", "b"} {
		child, err := lt.AddChild(root, name)
		require.NoError(t, err)
		_, err = lt.AddChild(child, name+"leaf")
		require.NoError(t, err)
	}

	var tr Tree[string] = lt
	branch := DeepestBranch(tr)
	require.Len(t, branch, 3)

	height, err := Height(tr, tr.Root())
	require.NoError(t, err)
	leafDepth, err := Depth(tr, branch[0])
	require.NoError(t, err)
	require.Equal(t, height, leafDepth)

	for i := 0; i < len(branch)-1; i++ {
		parent, err := tr.Parent(branch[i])
		require.NoError(t, err)
		require.Equal(t, branch[i+1], parent, "each link must step to the direct parent")
	}
	require.Equal(t, tr.Root(), branch[len(branch)-1])
}

func TestElementsAtDepth(t *testing.T) {
	tr, _ := sampleTree(t)

	testCases := []struct {
		depth    int
		expected []string
	}{
		{0, []string{"r"}},
		{1, []string{"a", "b"}},
		{2, []string{"c"}},
		{3, nil},
		{-1, nil},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expected, ElementsAtDepth(tr, c.depth), "Unexpected elements at depth %d in test case %d", c.depth, i)
	}
}

func TestGroupByDepth(t *testing.T) {
	tr, _ := sampleTree(t)

	groups := GroupByDepth(tr)
	require.Equal(t, map[int][]string{
		0: {"r"},
		1: {"a", "b"},
		2: {"c"},
	}, groups, "keys must cover exactly 0 through the height of the root")

	empty := NewLinked[string]()
	require.Empty(t, GroupByDepth[string](empty))
}

func TestSnapshotsArePointInTime(t *testing.T) {
	lt := NewLinked[string]()
	root, err := lt.AddRoot("r")
	require.NoError(t, err)

	snapshot := Preorder[string](lt)
	_, err = lt.AddChild(root, "late")
	require.NoError(t, err)

	require.Len(t, snapshot, 1, "a snapshot must not observe later mutation")
	require.Len(t, Preorder[string](lt), 2)
}
