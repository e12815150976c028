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

import "fmt"

// Check validates the structural invariants of the set:
//
//   - all leaves are at the same depth,
//   - every internal node other than the root has between Degree and
//     2*Degree-1 children, the root at most 2*Degree-1,
//   - the root never has a single internal child,
//   - children are ordered by strictly ascending subtree maximum,
//   - every cached subtree maximum equals the largest item below it,
//   - every child links back to its parent,
//   - the number of leaves equals Len().
//
// It walks the whole tree and is meant for tests and debugging.  Violations
// are reported as errors wrapping ErrCorrupt.
func (s *Set[T]) Check() error {
	if err := s.check(); err != nil {
		tracer().Errorf("btreeset: %v", err)
		return err
	}
	return nil
}

func (s *Set[T]) check() error {
	root := s.root
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrCorrupt)
	}
	if root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	if root.leaf {
		return fmt.Errorf("%w: root is a leaf", ErrCorrupt)
	}
	if len(root.children) >= s.maxChildren() {
		return fmt.Errorf("%w: root has %d children, limit is %d",
			ErrCorrupt, len(root.children), s.maxChildren()-1)
	}
	if len(root.children) == 1 && !root.children[0].leaf {
		return fmt.Errorf("%w: root wraps a single internal node", ErrCorrupt)
	}
	if s.begin != root.first() {
		return fmt.Errorf("%w: stale begin position", ErrCorrupt)
	}
	if len(root.children) == 0 {
		if s.length != 0 {
			return fmt.Errorf("%w: empty tree with length %d", ErrCorrupt, s.length)
		}
		return nil
	}
	leaves, _, err := s.checkNode(root, true)
	if err != nil {
		return err
	}
	if leaves != s.length {
		return fmt.Errorf("%w: %d leaves, length is %d", ErrCorrupt, leaves, s.length)
	}
	return nil
}

func (s *Set[T]) equal(a, b T) bool {
	return !s.less(a, b) && !s.less(b, a)
}

func (s *Set[T]) checkNode(n *node[T], isRoot bool) (leaves int, height int, err error) {
	if n.leaf {
		if len(n.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf %v has children", ErrCorrupt, n.item)
		}
		if !s.equal(n.max, n.item) {
			return 0, 0, fmt.Errorf("%w: leaf %v caches max %v", ErrCorrupt, n.item, n.max)
		}
		return 1, 0, nil
	}
	if len(n.children) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node has no children", ErrCorrupt)
	}
	if !isRoot && (len(n.children) < s.minChildren() || len(n.children) >= s.maxChildren()) {
		return 0, 0, fmt.Errorf("%w: internal node has %d children, want %d..%d",
			ErrCorrupt, len(n.children), s.minChildren(), s.maxChildren()-1)
	}
	var childHeight int
	for i, c := range n.children {
		if c == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrCorrupt, i)
		}
		if c.parent != n {
			return 0, 0, fmt.Errorf("%w: child %d does not link back to its parent", ErrCorrupt, i)
		}
		if i > 0 && !s.less(n.children[i-1].max, c.max) {
			return 0, 0, fmt.Errorf("%w: child maxima %v, %v out of order",
				ErrCorrupt, n.children[i-1].max, c.max)
		}
		cLeaves, cHeight, cErr := s.checkNode(c, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		leaves += cLeaves
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at unequal depth", ErrCorrupt)
		}
	}
	if last := n.children[len(n.children)-1]; !s.equal(n.max, last.max) {
		return 0, 0, fmt.Errorf("%w: node caches max %v, subtree max is %v",
			ErrCorrupt, n.max, last.max)
	}
	return leaves, childHeight + 1, nil
}
