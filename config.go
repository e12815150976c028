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

const (
	// DefaultDegree is the degree used when Config.Degree is left zero.
	DefaultDegree = 2
	// DefaultFreeListSize is the capacity of the free list a set creates
	// for itself when none is configured.
	DefaultFreeListSize = 32
)

// LessFunc determines how to order a type 'T'.  It should implement a strict
// weak ordering, and should return true if within that ordering, 'a' < 'b'.
// If !less(a, b) && !less(b, a), a and b are treated as the same element
// (a set holds only one of them).
type LessFunc[T any] func(a, b T) bool

// Config configures a Set.
type Config[T any] struct {
	// Degree is the minimum number of children of a non-root internal node.
	// Internal nodes hold at most 2*Degree-1 children between operations.
	// Zero selects DefaultDegree.
	Degree int
	// Less orders the elements.  It is required.
	Less LessFunc[T]
	// FreeList recycles nodes.  If nil, the set gets its own free list of
	// DefaultFreeListSize nodes.
	FreeList *FreeList[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	if cfg.FreeList == nil {
		cfg.FreeList = NewFreeList[T](DefaultFreeListSize)
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: less function is required", ErrInvalidConfig)
	}
	if cfg.Degree < 2 {
		return fmt.Errorf("%w: degree %d, must be at least 2", ErrInvalidConfig, cfg.Degree)
	}
	return nil
}
