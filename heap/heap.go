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

// Package heap implements generic heap functions
// over plain slices.
//
// The ordering is given by a three-way comparison
// function (negative, zero or positive); the element
// that compares smallest is kept at x[0].
package heap

// PushSlice adds item to x while preserving
// the min-heap invariant determined by cmp.
func PushSlice[T any](x *[]T, item T, cmp func(x, y T) int) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, cmp)
}

// PopSlice removes the "smallest" element from x
// and updates x appropriately to preserve the
// heap invariant.
func PopSlice[T any](x *[]T, cmp func(x, y T) int) T {
	h := *x
	ret := h[0]
	last := len(h) - 1
	h[0] = h[last]
	*x = h[:last]
	if last > 0 {
		siftDown(*x, 0, cmp)
	}
	return ret
}

// FixSlice re-establishes the heap ordering after
// the element x[index] has changed its value.
func FixSlice[T any](x []T, index int, cmp func(x, y T) int) {
	if !siftDown(x, index, cmp) {
		siftUp(x, index, cmp)
	}
}

// OrderSlice shuffles x into min-heap ordering.
// If len(x) > 0, the "smallest" element in x will
// always be x[0].
func OrderSlice[T any](x []T, cmp func(x, y T) int) {
	for i := len(x)/2 - 1; i >= 0; i-- {
		siftDown(x, i, cmp)
	}
}

// Peek returns the "smallest" element without
// removing it. The second result is false when
// x is empty.
func Peek[T any](x []T) (T, bool) {
	if len(x) == 0 {
		var zero T
		return zero, false
	}
	return x[0], true
}

func siftUp[T any](x []T, index int, cmp func(x, y T) int) {
	for index > 0 {
		p := (index - 1) / 2
		if cmp(x[p], x[index]) <= 0 {
			break
		}
		x[p], x[index] = x[index], x[p]
		index = p
	}
}

// siftDown reports whether the element moved.
func siftDown[T any](x []T, index int, cmp func(x, y T) int) bool {
	start := index
	for {
		left := (index * 2) + 1
		if left >= len(x) {
			break
		}
		c := left
		if right := left + 1; right < len(x) && cmp(x[right], x[left]) < 0 {
			c = right
		}
		if cmp(x[index], x[c]) <= 0 {
			break
		}
		x[c], x[index] = x[index], x[c]
		index = c
	}
	return index != start
}
