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
	"github.com/bbva/positional/list"
	"github.com/bbva/positional/position"
)

// queue is the FIFO fringe of the breadth-first traversal, backed by
// the positional list.
type queue[E comparable] struct {
	items *list.List[position.Position[E]]
}

func newQueue[E comparable]() *queue[E] {
	return &queue[E]{items: list.New[position.Position[E]]()}
}

func (q *queue[E]) isEmpty() bool {
	return q.items.IsEmpty()
}

func (q *queue[E]) enqueue(p position.Position[E]) {
	q.items.AddLast(p)
}

func (q *queue[E]) dequeue() position.Position[E] {
	p, _ := q.items.RemoveFirst()
	return p
}

// stack is the LIFO fringe of the stack-driven traversal, backed by
// the positional list.
type stack[E comparable] struct {
	items *list.List[position.Position[E]]
}

func newStack[E comparable]() *stack[E] {
	return &stack[E]{items: list.New[position.Position[E]]()}
}

func (s *stack[E]) isEmpty() bool {
	return s.items.IsEmpty()
}

func (s *stack[E]) push(p position.Position[E]) {
	s.items.AddFirst(p)
}

func (s *stack[E]) pop() position.Position[E] {
	p, _ := s.items.RemoveFirst()
	return p
}
