// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package btreeset

// Position refers to an item of a Set, or to the past-the-end position one
// step beyond the largest item.  Positions are plain values; two positions
// are equal iff they refer to the same place of the same set generation, so
// they may be compared with ==.
//
// Any insertion or deletion that changes the set invalidates all of its
// positions.  Calling a method other than Equal on an invalidated position,
// or on the zero Position, panics with ErrInvalidPosition.
type Position[T any] struct {
	set *Set[T]
	n   *node[T]
	gen uint64
}

// position wraps n, with nil meaning past-the-end.
func (s *Set[T]) position(n *node[T]) Position[T] {
	if n == nil {
		n = s.root
	}
	return Position[T]{set: s, n: n, gen: s.gen}
}

// Begin returns the position of the smallest item, or End() for an empty set.
func (s *Set[T]) Begin() Position[T] {
	return s.position(s.begin)
}

// End returns the past-the-end position.
func (s *Set[T]) End() Position[T] {
	return s.position(s.root)
}

func (p Position[T]) check() {
	if p.set == nil || p.gen != p.set.gen {
		panic(ErrInvalidPosition)
	}
}

// Valid reports whether p refers to an item, i.e. is not past-the-end.
func (p Position[T]) Valid() bool {
	p.check()
	return p.n.leaf
}

// Item returns the item at p.  It panics with ErrOutOfRange if p is
// past-the-end.
func (p Position[T]) Item() T {
	p.check()
	if !p.n.leaf {
		panic(ErrOutOfRange)
	}
	return p.n.item
}

// Next returns the position of the successor of p's item, or End() if p
// holds the largest item.  Next of End() is End().
func (p Position[T]) Next() Position[T] {
	p.check()
	p.n = p.set.next(p.n)
	return p
}

// Prev returns the position of the predecessor of p's item.  Prev of End()
// is the position of the largest item.  It panics with ErrOutOfRange if p is
// Begin(), including End() of an empty set.
func (p Position[T]) Prev() Position[T] {
	p.check()
	n := p.set.prev(p.n)
	if n == nil {
		panic(ErrOutOfRange)
	}
	p.n = n
	return p
}

// Equal reports whether p and q refer to the same place of the same set
// generation.
func (p Position[T]) Equal(q Position[T]) bool {
	return p == q
}

// next climbs from n while it is the last child of its parent, then steps
// right and descends along first children.  Reaching the root means n was
// the largest item; the root, as past-the-end, is returned.
func (s *Set[T]) next(n *node[T]) *node[T] {
	prev, cur := n, n.parent
	for cur != nil && cur.children[len(cur.children)-1] == prev {
		prev, cur = cur, cur.parent
	}
	if cur == nil {
		return prev
	}
	return cur.children[cur.children.index(prev)+1].first()
}

// prev is the mirror image of next.  From the root it descends to the
// largest item.  It returns nil when there is no predecessor.
func (s *Set[T]) prev(n *node[T]) *node[T] {
	if !n.leaf {
		if len(n.children) == 0 {
			return nil
		}
		return n.last()
	}
	prev, cur := n, n.parent
	for cur != nil && cur.children[0] == prev {
		prev, cur = cur, cur.parent
	}
	if cur == nil {
		return nil
	}
	return cur.children[cur.children.index(prev)-1].last()
}
