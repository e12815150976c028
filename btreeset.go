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

// Package btreeset implements an in-memory ordered set on top of a B-tree.
//
// It is not meant for persistent storage solutions.
//
// Unlike a textbook B-tree, every element lives in a leaf of its own, and
// every internal node caches the largest element of its subtree.  Nodes keep
// a back-link to their parent, which lets a Position walk to its successor or
// predecessor without a stack, in the manner of a C++ std::set iterator:
//
//	for p := s.Begin(); p != s.End(); p = p.Next() {
//		fmt.Println(p.Item())
//	}
//
// A set of degree B keeps every internal node other than the root between B
// and 2B-1 children.  An insertion that leaves a node with 2B children splits
// it in two, possibly cascading up to the root; a deletion that leaves a node
// with fewer than B children borrows a child from a sibling, or merges with
// it, possibly cascading up to the root as well.
//
// Sets are not safe for concurrent mutation by multiple goroutines.  Read
// operations never write to the set, so concurrent readers are fine as long
// as nobody writes.  Any insertion or deletion invalidates all positions
// previously obtained from the set; using such a position panics with
// ErrInvalidPosition.
package btreeset

import (
	"iter"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/exp/constraints"
)

var fallbackTracer = newFallbackTracer()

func newFallbackTracer() tracing.Trace {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelError)
	return t
}

// tracer traces to the global core-tracer, if one is installed.
func tracer() tracing.Trace {
	if gtrace.CoreTracer != nil {
		return gtrace.CoreTracer
	}
	return fallbackTracer
}

// ItemIterator allows callers of {A/De}scend* to iterate in-order over portions of
// the set.  When this function returns false, iteration will stop and the
// associated Ascend* function will immediately return.
type ItemIterator[T any] func(item T) bool

// Less returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Set is an ordered set of unique elements.
//
// The zero value is not usable; create sets with New, NewOrdered or
// NewWithConfig.
type Set[T any] struct {
	degree   int
	length   int
	gen      uint64   // bumped on every structural change
	root     *node[T] // doubles as the past-the-end position
	begin    *node[T] // leftmost leaf, or root when empty
	freelist *FreeList[T]
	less     LessFunc[T]
}

// New creates a new set with the given degree.
//
// New(2, less), for example, will keep every non-root internal node
// between 2 and 3 children.
//
// The passed-in LessFunc determines how objects of type T are ordered.
func New[T any](degree int, less LessFunc[T]) *Set[T] {
	return NewWithFreeList(degree, less, NewFreeList[T](DefaultFreeListSize))
}

// NewOrdered creates a new set for ordered types.
func NewOrdered[T constraints.Ordered](degree int) *Set[T] {
	return New[T](degree, Less[T]())
}

// NewWithFreeList creates a new set that uses the given node free list.
func NewWithFreeList[T any](degree int, less LessFunc[T], f *FreeList[T]) *Set[T] {
	if degree <= 1 {
		panic("bad degree")
	}
	s, err := NewWithConfig(Config[T]{Degree: degree, Less: less, FreeList: f})
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig creates an empty set with a validated configuration.
func NewWithConfig[T any](cfg Config[T]) (*Set[T], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Set[T]{
		degree:   cfg.Degree,
		freelist: cfg.FreeList,
		less:     cfg.Less,
	}
	s.root = s.newInner(nil)
	s.begin = s.root
	return s, nil
}

// From creates a set holding items.  Duplicates are collapsed: the first
// of several equal items is the one kept.
func From[T any](degree int, less LessFunc[T], items ...T) *Set[T] {
	s := New(degree, less)
	s.InsertAll(items...)
	return s
}

// Collect creates a set from the values of seq, inserted in sequence order.
func Collect[T any](degree int, less LessFunc[T], seq iter.Seq[T]) *Set[T] {
	s := New(degree, less)
	for item := range seq {
		s.Insert(item)
	}
	return s
}

// maxChildren is the child count that triggers a split.
func (s *Set[T]) maxChildren() int {
	return s.degree * 2
}

// minChildren is the least number of children a non-root internal node may
// keep.
func (s *Set[T]) minChildren() int {
	return s.degree
}

func (s *Set[T]) newLeaf(item T, parent *node[T]) (n *node[T]) {
	n = s.freelist.newNode()
	n.parent, n.item, n.max, n.leaf = parent, item, item, true
	return
}

func (s *Set[T]) newInner(parent *node[T]) (n *node[T]) {
	n = s.freelist.newNode()
	n.parent, n.leaf = parent, false
	return
}

func (s *Set[T]) freeNode(n *node[T]) bool {
	var zero T
	// clear to allow GC
	n.children.truncate(0)
	n.parent, n.item, n.max, n.leaf = nil, zero, zero, false
	return s.freelist.freeNode(n)
}

// mutated records a structural change.
func (s *Set[T]) mutated() {
	s.gen++
	s.begin = s.root.first()
}

// Degree returns the degree the set was created with.
func (s *Set[T]) Degree() int {
	return s.degree
}

// Len returns the number of items currently in the set.
func (s *Set[T]) Len() int {
	return s.length
}

// Empty reports whether the set holds no items.
func (s *Set[T]) Empty() bool {
	return s.length == 0
}

// Height returns the number of edges from the root to any leaf.  An empty
// set has height 0, a set with up to 2*Degree-1 items has height 1.
func (s *Set[T]) Height() int {
	h := 0
	for n := s.root; len(n.children) > 0; n = n.children[0] {
		h++
	}
	return h
}

// lowerBound returns the first leaf whose item is not less than item, or nil
// if every item is less.
func (s *Set[T]) lowerBound(item T) *node[T] {
	n := s.root
	for !n.leaf {
		i := n.children.search(item, s.less)
		if i == len(n.children) {
			return nil
		}
		n = n.children[i]
	}
	return n
}

// find returns the leaf holding item, or nil.
func (s *Set[T]) find(item T) *node[T] {
	n := s.lowerBound(item)
	if n == nil || s.less(item, n.item) {
		return nil
	}
	return n
}

// upperBound returns the first leaf whose item is greater than item, or the
// root if there is none.
func (s *Set[T]) upperBound(item T) *node[T] {
	n := s.lowerBound(item)
	if n == nil {
		return s.root
	}
	if !s.less(item, n.item) {
		return s.next(n)
	}
	return n
}

// Find returns the position of the item equal to key, or End() if there is
// none.
func (s *Set[T]) Find(key T) Position[T] {
	return s.position(s.find(key))
}

// LowerBound returns the position of the first item not less than key, or
// End() if every item is less than key.
func (s *Set[T]) LowerBound(key T) Position[T] {
	return s.position(s.lowerBound(key))
}

// UpperBound returns the position of the first item greater than key, or
// End() if no item is greater than key.
func (s *Set[T]) UpperBound(key T) Position[T] {
	return s.position(s.upperBound(key))
}

// Get looks for the key item in the set, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (s *Set[T]) Get(key T) (_ T, _ bool) {
	if n := s.find(key); n != nil {
		return n.item, true
	}
	return
}

// Has returns true if the given key is in the set.
func (s *Set[T]) Has(key T) bool {
	return s.find(key) != nil
}

// Min returns the smallest item in the set, or (zeroValue, false) if the set is empty.
func (s *Set[T]) Min() (_ T, _ bool) {
	if s.length == 0 {
		return
	}
	return s.begin.item, true
}

// Max returns the largest item in the set, or (zeroValue, false) if the set is empty.
func (s *Set[T]) Max() (_ T, _ bool) {
	if s.length == 0 {
		return
	}
	return s.root.max, true
}

// Insert adds item to the set.  It returns false, leaving the set untouched,
// if an equal item is already present.
func (s *Set[T]) Insert(item T) bool {
	if len(s.root.children) == 0 {
		s.root.children = append(s.root.children, s.newLeaf(item, s.root))
		s.root.recompute()
		s.length++
		s.mutated()
		return true
	}
	if s.find(item) != nil {
		return false
	}
	// Descend to the leaf level, falling back to the rightmost child when
	// item exceeds every subtree maximum.
	n := s.root
	for !n.leaf {
		i := n.children.search(item, s.less)
		if i == len(n.children) {
			i--
		}
		n = n.children[i]
	}
	parent := n.parent
	i := parent.children.search(item, s.less)
	parent.children.insertAt(i, s.newLeaf(item, parent))
	for p := parent; p != nil; p = p.parent {
		p.recompute()
	}
	s.length++
	s.split(parent)
	s.mutated()
	return true
}

// InsertAll adds items to the set in order, returning how many of them were
// not present before.
func (s *Set[T]) InsertAll(items ...T) (added int) {
	for _, item := range items {
		if s.Insert(item) {
			added++
		}
	}
	return
}

// Delete removes an item equal to the passed in item from the set, returning
// it.  If no such item exists, returns (zeroValue, false).
func (s *Set[T]) Delete(item T) (_ T, _ bool) {
	n := s.find(item)
	if n == nil {
		return
	}
	return s.deleteLeaf(n), true
}

// DeleteMin removes the smallest item in the set and returns it.
// If no such item exists, returns (zeroValue, false).
func (s *Set[T]) DeleteMin() (_ T, _ bool) {
	if s.length == 0 {
		return
	}
	return s.deleteLeaf(s.begin), true
}

// DeleteMax removes the largest item in the set and returns it.
// If no such item exists, returns (zeroValue, false).
func (s *Set[T]) DeleteMax() (_ T, _ bool) {
	if s.length == 0 {
		return
	}
	return s.deleteLeaf(s.root.last()), true
}

func (s *Set[T]) deleteLeaf(leaf *node[T]) T {
	out := leaf.item
	parent := leaf.parent
	parent.children.removeAt(parent.children.index(leaf))
	s.freeNode(leaf)
	for p := parent; p != nil; p = p.parent {
		p.recompute()
	}
	s.length--
	if s.length > 0 {
		s.merge(parent)
	}
	s.mutated()
	return out
}

// Clear removes all items from the set.  If addNodesToFreelist is true,
// the set's nodes are added to its freelist as part of this call, until the
// freelist is full.  Otherwise, the root node is simply dereferenced and the
// subtree left to Go's normal GC processes.
//
// This call takes:
//
//	O(1): when addNodesToFreelist is false, this is a single operation.
//	O(1): when the freelist is already full, it breaks out immediately
//	O(freelist size):  when the freelist is empty, nodes are added to the
//	    freelist until full.
func (s *Set[T]) Clear(addNodesToFreelist bool) {
	old := s.root
	s.root, s.length = s.newInner(nil), 0
	if addNodesToFreelist {
		s.reset(old)
	}
	s.mutated()
	tracer().Debugf("btreeset: cleared, freelist recycling=%v", addNodesToFreelist)
}

// reset returns a subtree to the freelist.  It breaks out immediately if the
// freelist is full, since the only benefit of iterating is to fill that
// freelist up.  Returns true if parent reset call should continue.
func (s *Set[T]) reset(n *node[T]) bool {
	for _, c := range n.children {
		if !s.reset(c) {
			return false
		}
	}
	return s.freeNode(n)
}

// Clone returns a new set with the same degree, ordering and items as s,
// built by inserting the items of s in ascending order.  The clone shares
// the free list of s.
func (s *Set[T]) Clone() *Set[T] {
	c := NewWithFreeList(s.degree, s.less, s.freelist)
	s.Ascend(func(item T) bool {
		c.Insert(item)
		return true
	})
	return c
}

// Assign replaces the contents of s with the items of src, inserted in the
// ascending order of src.  s keeps its own degree and ordering.
func (s *Set[T]) Assign(src *Set[T]) {
	if s == src {
		return
	}
	s.Clear(false)
	src.Ascend(func(item T) bool {
		s.Insert(item)
		return true
	})
}

// AscendRange calls the iterator for every value in the set within the range
// [greaterOrEqual, lessThan), until iterator returns false.
func (s *Set[T]) AscendRange(greaterOrEqual, lessThan T, iterator ItemIterator[T]) {
	for n := s.lowerBound(greaterOrEqual); n != nil && n != s.root; n = s.next(n) {
		if !s.less(n.item, lessThan) || !iterator(n.item) {
			return
		}
	}
}

// AscendLessThan calls the iterator for every value in the set within the range
// [first, pivot), until iterator returns false.
func (s *Set[T]) AscendLessThan(pivot T, iterator ItemIterator[T]) {
	for n := s.begin; n != s.root; n = s.next(n) {
		if !s.less(n.item, pivot) || !iterator(n.item) {
			return
		}
	}
}

// AscendGreaterOrEqual calls the iterator for every value in the set within
// the range [pivot, last], until iterator returns false.
func (s *Set[T]) AscendGreaterOrEqual(pivot T, iterator ItemIterator[T]) {
	for n := s.lowerBound(pivot); n != nil && n != s.root; n = s.next(n) {
		if !iterator(n.item) {
			return
		}
	}
}

// Ascend calls the iterator for every value in the set within the range
// [first, last], until iterator returns false.
func (s *Set[T]) Ascend(iterator ItemIterator[T]) {
	for n := s.begin; n != s.root; n = s.next(n) {
		if !iterator(n.item) {
			return
		}
	}
}

// DescendRange calls the iterator for every value in the set within the range
// [lessOrEqual, greaterThan), until iterator returns false.
func (s *Set[T]) DescendRange(lessOrEqual, greaterThan T, iterator ItemIterator[T]) {
	for n := s.prev(s.upperBound(lessOrEqual)); n != nil; n = s.prev(n) {
		if !s.less(greaterThan, n.item) || !iterator(n.item) {
			return
		}
	}
}

// DescendLessOrEqual calls the iterator for every value in the set within the range
// [pivot, first], until iterator returns false.
func (s *Set[T]) DescendLessOrEqual(pivot T, iterator ItemIterator[T]) {
	for n := s.prev(s.upperBound(pivot)); n != nil; n = s.prev(n) {
		if !iterator(n.item) {
			return
		}
	}
}

// DescendGreaterThan calls the iterator for every value in the set within
// the range [last, pivot), until iterator returns false.
func (s *Set[T]) DescendGreaterThan(pivot T, iterator ItemIterator[T]) {
	for n := s.prev(s.root); n != nil; n = s.prev(n) {
		if !s.less(pivot, n.item) || !iterator(n.item) {
			return
		}
	}
}

// Descend calls the iterator for every value in the set within the range
// [last, first], until iterator returns false.
func (s *Set[T]) Descend(iterator ItemIterator[T]) {
	for n := s.prev(s.root); n != nil; n = s.prev(n) {
		if !iterator(n.item) {
			return
		}
	}
}

// All returns an iterator over the items of the set in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Ascend(yield)
	}
}

// Backward returns an iterator over the items of the set in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Descend(yield)
	}
}
