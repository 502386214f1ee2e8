// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package sorting

import (
	"github.com/SnellerInc/hybridsort/heap"
)

// Ktop stores the given number of k smallest
// values seen so far. It is an alternative to
// PartialSort when the values arrive one by one
// and do not fit in memory at once.
type Ktop[T any] struct {
	// indirect is heap ordering of values, with
	// the greatest value at the root; we use
	// integer indirection so that re-ordering the
	// heap never moves the values themselves
	indirect []int
	// storage for values, up to limit
	values []T

	cmp   Compare[T]
	limit int
}

// NewKtop constructs a new Ktop object.
func NewKtop[T any](limit int, cmp Compare[T]) *Ktop[T] {
	return &Ktop[T]{
		cmp:   cmp,
		limit: limit,
	}
}

// Add tries to add a new value to collection.
//
// Returns true if the value was added.
func (k *Ktop[T]) Add(v T) bool {
	if len(k.values) < k.limit {
		n := len(k.values)
		k.values = append(k.values, v)
		heap.PushSlice(&k.indirect, n, k.greater)
		return true
	}
	if k.limit <= 0 {
		return false
	}

	// new value less than max - overwrite the max value
	// and then fix the heap to preserve the ordering
	if k.cmp(k.values[k.indirect[0]], v) > 0 {
		k.values[k.indirect[0]] = v
		heap.FixSlice(k.indirect, 0, k.greater)
		return true
	}
	return false
}

// Greatest returns the "largest" value in the
// collection, where "largest" is defined as the
// value furthest from the beginning of the order.
func (k *Ktop[T]) Greatest() (T, bool) {
	if len(k.indirect) == 0 {
		var zero T
		return zero, false
	}
	return k.values[k.indirect[0]], true
}

// Full returns true if there are as many
// values as the limit, otherwise false.
func (k *Ktop[T]) Full() bool {
	return len(k.indirect) == k.limit
}

// Len returns the number of values held.
func (k *Ktop[T]) Len() int {
	return len(k.indirect)
}

// Merge adds all values from another Ktop object.
func (k *Ktop[T]) Merge(o *Ktop[T]) {
	for i := range o.values {
		k.Add(o.values[i])
	}
}

// Capture returns the sorted collection of
// values and empties the collection.
func (k *Ktop[T]) Capture() []T {
	result := make([]T, len(k.indirect))
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = k.values[heap.PopSlice(&k.indirect, k.greater)]
	}
	k.values = k.values[:0]
	return result
}

// greater orders heap indices so that the
// greatest value ends up at the root.
func (k *Ktop[T]) greater(left, right int) int {
	return k.cmp(k.values[right], k.values[left])
}
