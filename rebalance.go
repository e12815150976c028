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

// split repairs overflow bottom-up, starting at n.  A node holding
// 2*degree children keeps the lower half and hands the upper half to a new
// sibling inserted right after it, which may in turn overflow the parent.
func (s *Set[T]) split(n *node[T]) {
	for len(n.children) == s.maxChildren() {
		if n.parent == nil {
			root := s.newInner(nil)
			root.children = append(root.children, n)
			root.recompute()
			s.root = root
			tracer().Debugf("btreeset: root overflow, new root")
		}
		parent := n.parent
		next := s.newInner(parent)
		next.children = append(next.children, n.children[s.degree:]...)
		n.children.truncate(s.degree)
		parent.children.insertAt(parent.children.index(n)+1, next)
		next.recompute()
		n.recompute()
		parent.recompute()
		tracer().Debugf("btreeset: split node, parent has %d children", len(parent.children))
		n = parent
	}
}

// merge repairs underflow bottom-up, starting at n.  A node with fewer than
// degree children takes one child from its left sibling (or, for a leftmost
// node, its right sibling) if that sibling can spare one.  Otherwise the two
// are merged into the left one, and the parent, which lost a child, is
// checked next.  The root is exempt from the lower bound, but a root left
// with a single internal child is replaced by that child.
func (s *Set[T]) merge(n *node[T]) {
	for len(n.children) < s.minChildren() {
		parent := n.parent
		if parent == nil {
			if len(n.children) == 1 && !n.children[0].leaf {
				root := n.children[0]
				root.parent = nil
				root.recompute()
				s.root = root
				s.freeNode(n)
				tracer().Debugf("btreeset: root collapse")
			}
			return
		}
		i := parent.children.index(n)
		if i > 0 {
			left := parent.children[i-1]
			if len(left.children) > s.minChildren() {
				n.children.insertAt(0, left.children.pop())
				left.recompute()
				n.recompute()
				tracer().Debugf("btreeset: borrow from left sibling")
				return
			}
			left.children = append(left.children, n.children...)
			left.recompute()
			parent.children.removeAt(i)
			s.freeNode(n)
		} else {
			right := parent.children[i+1]
			if len(right.children) > s.minChildren() {
				n.children = append(n.children, right.children.removeAt(0))
				right.recompute()
				n.recompute()
				tracer().Debugf("btreeset: borrow from right sibling")
				return
			}
			n.children = append(n.children, right.children...)
			n.recompute()
			parent.children.removeAt(i + 1)
			s.freeNode(right)
		}
		tracer().Debugf("btreeset: merge siblings, parent has %d children", len(parent.children))
		n = parent
	}
}
