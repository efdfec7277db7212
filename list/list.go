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

// Package list implements a positional doubly linked list bounded by a
// pair of permanent sentinel nodes. Both ends are reachable in O(1) and
// a known position can be updated or removed in O(1).
package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bbva/positional/position"
)

var (
	// ErrEmpty is returned by operations that require at least one
	// element when the list has none.
	ErrEmpty = errors.New("empty list")

	// ErrInvalidIndex is returned when an index falls outside the valid
	// range of the operation.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidPosition is returned when a position does not belong to
	// the list it is used on, or has already been removed.
	ErrInvalidPosition = errors.New("invalid position")
)

// List is a doubly linked sequence of positions. The chain between the
// header and trailer sentinels always holds exactly Size() nodes.
type List[E comparable] struct {
	header  *node[E]
	trailer *node[E]
	size    int
	token   *owner[E]
}

// New returns an empty list.
func New[E comparable]() *List[E] {
	l := &List[E]{}
	l.reset()
	return l
}

// reset rebuilds the sentinel pair and issues a fresh owner token, so
// any position minted before the reset no longer validates.
func (l *List[E]) reset() {
	l.header = &node[E]{}
	l.trailer = &node[E]{prev: l.header}
	l.header.next = l.trailer
	l.size = 0
	l.token = &owner[E]{list: l}
}

// Size returns the number of elements in the list.
func (l *List[E]) Size() int {
	return l.size
}

// IsEmpty tests whether the list has no elements.
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// First returns, without removing, the element at the front of the
// list, and false if the list is empty.
func (l *List[E]) First() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	return l.header.next.element, true
}

// Last returns, without removing, the element at the end of the list,
// and false if the list is empty.
func (l *List[E]) Last() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	return l.trailer.prev.element, true
}

// AddFirst inserts an element at the front of the list.
func (l *List[E]) AddFirst(e E) {
	l.addBetween(e, l.header, l.header.next)
}

// AddLast inserts an element at the end of the list.
func (l *List[E]) AddLast(e E) {
	l.addBetween(e, l.trailer.prev, l.trailer)
}

// RemoveFirst removes and returns the element at the front of the list,
// and false if the list is empty.
func (l *List[E]) RemoveFirst() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	return l.remove(l.header.next), true
}

// RemoveLast removes and returns the element at the end of the list,
// and false if the list is empty.
func (l *List[E]) RemoveLast() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	return l.remove(l.trailer.prev), true
}

// AddAt inserts an element so that it becomes the index-th element of
// the list. The valid range is 0 <= index <= Size(); index == Size()
// appends. Cost is linear in index.
func (l *List[E]) AddAt(e E, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: index %d is negative", ErrInvalidIndex, index)
	}
	if index > l.size {
		return fmt.Errorf("%w: index %d exceeds size %d", ErrInvalidIndex, index, l.size)
	}
	walk := l.header.next
	for i := 0; i < index; i++ {
		walk = walk.next
	}
	l.addBetween(e, walk.prev, walk)
	return nil
}

// RemoveAt removes and returns the element at the given index. The
// valid range is 0 <= index < Size(). It fails with ErrEmpty on an
// empty list and with ErrInvalidIndex when the index is out of range.
func (l *List[E]) RemoveAt(index int) (E, error) {
	var zero E
	if l.IsEmpty() {
		return zero, ErrEmpty
	}
	if index < 0 {
		return zero, fmt.Errorf("%w: index %d is negative", ErrInvalidIndex, index)
	}
	if index >= l.size {
		return zero, fmt.Errorf("%w: index %d exceeds size %d", ErrInvalidIndex, index, l.size)
	}
	walk := l.header.next
	for i := 0; i < index; i++ {
		walk = walk.next
	}
	return l.remove(walk), nil
}

// RemoveValue removes and returns the first element equal to e,
// scanning front to back, and false if no element matches.
func (l *List[E]) RemoveValue(e E) (E, bool) {
	for walk := l.header.next; walk != l.trailer; walk = walk.next {
		if walk.element == e {
			return l.remove(walk), true
		}
	}
	var zero E
	return zero, false
}

// Search returns, without removing, the first element equal to e, and
// false if no element matches.
func (l *List[E]) Search(e E) (E, bool) {
	for walk := l.header.next; walk != l.trailer; walk = walk.next {
		if walk.element == e {
			return walk.element, true
		}
	}
	var zero E
	return zero, false
}

// Concatenate appends all elements of other to the end of the list,
// preserving their order, and leaves other empty. An empty receiver
// adopts the other list's chain in O(1); its surviving positions keep
// working against the receiver. Otherwise elements are appended one by
// one and the other list's positions are invalidated.
func (l *List[E]) Concatenate(other *List[E]) {
	if other == nil || l == other || other.IsEmpty() {
		return
	}
	if l.IsEmpty() {
		l.header = other.header
		l.trailer = other.trailer
		l.size = other.size
		l.token = other.token
		l.token.list = l
		other.reset()
		return
	}
	for walk := other.header.next; walk != other.trailer; walk = walk.next {
		l.AddLast(walk.element)
	}
	other.token.list = nil
	other.reset()
}

// Equal reports structural equality: same size and element-wise equal
// front to back. A nil argument is simply not equal.
func (l *List[E]) Equal(other *List[E]) bool {
	if other == nil || l.size != other.size {
		return false
	}
	walkB := other.header.next
	for walkA := l.header.next; walkA != l.trailer; walkA = walkA.next {
		if walkA.element != walkB.element {
			return false
		}
		walkB = walkB.next
	}
	return true
}

// Elements returns a front-to-back snapshot of the elements.
func (l *List[E]) Elements() []E {
	elems := make([]E, 0, l.size)
	for walk := l.header.next; walk != l.trailer; walk = walk.next {
		elems = append(elems, walk.element)
	}
	return elems
}

// String produces a representation of the contents of the list. This
// exists for debugging purposes only.
func (l *List[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for walk := l.header.next; walk != l.trailer; walk = walk.next {
		if walk != l.header.next {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", walk.element)
	}
	sb.WriteByte(')')
	return sb.String()
}

// FirstPosition returns the position of the first element, or nil if
// the list is empty.
func (l *List[E]) FirstPosition() position.Position[E] {
	if l.IsEmpty() {
		return nil
	}
	return l.header.next
}

// LastPosition returns the position of the last element, or nil if the
// list is empty.
func (l *List[E]) LastPosition() position.Position[E] {
	if l.IsEmpty() {
		return nil
	}
	return l.trailer.prev
}

// Before returns the position preceding p, or nil if p is first.
func (l *List[E]) Before(p position.Position[E]) (position.Position[E], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	if n.prev == l.header {
		return nil, nil
	}
	return n.prev, nil
}

// After returns the position following p, or nil if p is last.
func (l *List[E]) After(p position.Position[E]) (position.Position[E], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	if n.next == l.trailer {
		return nil, nil
	}
	return n.next, nil
}

// AddBefore inserts an element just before position p and returns the
// new element's position.
func (l *List[E]) AddBefore(p position.Position[E], e E) (position.Position[E], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.addBetween(e, n.prev, n), nil
}

// AddAfter inserts an element just after position p and returns the
// new element's position.
func (l *List[E]) AddAfter(p position.Position[E], e E) (position.Position[E], error) {
	n, err := l.validate(p)
	if err != nil {
		return nil, err
	}
	return l.addBetween(e, n, n.next), nil
}

// Set replaces the element at position p and returns the one it held.
func (l *List[E]) Set(p position.Position[E], e E) (E, error) {
	n, err := l.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	old := n.element
	n.element = e
	return old, nil
}

// Remove removes the element at position p and returns it. The
// position is invalidated and rejected from then on.
func (l *List[E]) Remove(p position.Position[E]) (E, error) {
	n, err := l.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	return l.remove(n), nil
}

// validate maps a position to the node it identifies, rejecting nil
// positions, positions of other lists, sentinels and removed slots.
func (l *List[E]) validate(p position.Position[E]) (*node[E], error) {
	n, ok := p.(*node[E])
	if !ok || n == nil || n.owner == nil || n.owner.list != l {
		return nil, ErrInvalidPosition
	}
	return n, nil
}

// addBetween links a new node holding e between two neighbouring
// nodes. predecessor and successor must be adjacent before the call.
func (l *List[E]) addBetween(e E, predecessor, successor *node[E]) *node[E] {
	n := &node[E]{element: e, prev: predecessor, next: successor, owner: l.token}
	predecessor.next = n
	successor.prev = n
	l.size++
	return n
}

// remove unlinks a non-sentinel node from the chain and invalidates
// its position.
func (l *List[E]) remove(n *node[E]) E {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	n.owner = nil
	l.size--
	return n.element
}
