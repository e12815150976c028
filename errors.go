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

import "errors"

var (
	// ErrInvalidConfig signals an invalid set configuration.
	ErrInvalidConfig = errors.New("btreeset: invalid configuration")
	// ErrInvalidPosition signals use of a zero position or of a position
	// that was invalidated by a structural change of its set.
	ErrInvalidPosition = errors.New("btreeset: invalid position")
	// ErrOutOfRange signals dereferencing the past-the-end position or
	// stepping before the first element.
	ErrOutOfRange = errors.New("btreeset: position out of range")
	// ErrCorrupt signals a violated structural invariant, as reported by Check.
	ErrCorrupt = errors.New("btreeset: corrupt tree")
)
