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

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// FreeList represents a free list of set nodes. By default each Set has its
// own FreeList, but multiple sets can share the same FreeList.
// Two sets using the same freelist are safe for concurrent write access
// to the free list itself; the sets still need their own synchronization.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// node is a single vertex of the tree.
//
// A leaf holds exactly one item and no children.  An internal node holds
// no item of its own, only an ordered list of children and a copy of the
// largest item in its subtree.  The root is always internal; a set is empty
// iff the root has no children.
type node[T any] struct {
	parent   *node[T] // nil for the root; never owns
	children children[T]
	item     T
	max      T
	leaf     bool
}

// recompute refreshes max from the last child and re-links every child
// back to n.  It does nothing for leaves.
func (n *node[T]) recompute() {
	if n.leaf {
		return
	}
	if len(n.children) == 0 {
		var zero T
		n.max = zero
		return
	}
	n.max = n.children[len(n.children)-1].max
	for _, c := range n.children {
		c.parent = n
	}
}

// first returns the leftmost leaf below n, or n itself if n has no children.
func (n *node[T]) first() *node[T] {
	for len(n.children) > 0 {
		n = n.children[0]
	}
	return n
}

// last returns the rightmost leaf below n, or n itself if n has no children.
func (n *node[T]) last() *node[T] {
	for len(n.children) > 0 {
		n = n.children[len(n.children)-1]
	}
	return n
}

// children stores the child nodes of an internal node.
type children[T any] []*node[T]

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *children[T]) insertAt(index int, n *node[T]) {
	*s = append(*s, nil)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = n
}

// removeAt removes a value at a given index, pulling all subsequent values
// back.
func (s *children[T]) removeAt(index int) *node[T] {
	n := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]
	return n
}

// pop removes and returns the last element in the list.
func (s *children[T]) pop() (out *node[T]) {
	index := len(*s) - 1
	out = (*s)[index]
	(*s)[index] = nil
	*s = (*s)[:index]
	return
}

// truncate truncates this instance at index so that it contains only the
// first index children. index must be less than or equal to length.
func (s *children[T]) truncate(index int) {
	var toClear children[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	for i := 0; i < len(toClear); i++ {
		toClear[i] = nil
	}
}

// index returns the position of n in the list.  n must be present.
func (s children[T]) index(n *node[T]) int {
	for i, c := range s {
		if c == n {
			return i
		}
	}
	panic("btreeset: child not linked to its parent")
}

// search returns the index of the first child whose subtree maximum is not
// less than item, or len(s) if there is none.  Child maxima are strictly
// ascending, so this is the first subtree that could hold item.
func (s children[T]) search(item T, less LessFunc[T]) int {
	return sort.Search(len(s), func(i int) bool {
		return !less(s[i].max, item)
	})
}

// print is used for testing/debugging purposes.
func (n *node[T]) print(w io.Writer, level int) {
	if n.leaf {
		fmt.Fprintf(w, "%sLEAF:%v\n", strings.Repeat("  ", level), n.item)
		return
	}
	fmt.Fprintf(w, "%sNODE:max=%v children=%d\n", strings.Repeat("  ", level), n.max, len(n.children))
	for _, c := range n.children {
		c.print(w, level+1)
	}
}
