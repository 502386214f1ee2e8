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
	"github.com/SnellerInc/hybridsort/ints"
)

// QuickSelect returns the k-th smallest element of
// data (k is 1-based). data is reordered as a side
// effect: afterwards data[k-1] holds the result,
// nothing before it is greater and nothing after it
// is smaller.
//
// A k outside of [1, len(data)] is reported as a
// *UsageError and data is left untouched.
func (e *Engine[T]) QuickSelect(data []T, k int) (T, Stats, error) {
	if k < 1 || k > len(data) {
		var zero T
		return zero, Stats{}, &UsageError{Op: "QuickSelect", K: k, N: len(data)}
	}
	r := e.start(data)
	r.stats.enter()
	r.selectRank(0, len(data)-1, k-1)
	r.stats.leave()
	return data[k-1], e.finish(r, "quickselect"), nil
}

// selectRank narrows the window down to the side
// holding position target until it is either
// resolved by a partition or small enough to be
// insertion sorted.
//
// Narrowing works on the windows returned by
// partition rather than on a pivot position, so it
// is equally sound for Hoare's split boundary: all
// of [left, lend] orders before all of
// [rstart, right], hence position target holds the
// same element as in the fully sorted window.
func (r *run[T]) selectRank(left, right, target int) {
	for right-left+1 > r.cfg.InsertionCutoff {
		lend, rstart := r.partition(left, right)
		switch {
		case target <= lend:
			right = lend
		case target >= rstart:
			left = rstart
		default:
			return // target is in its final place
		}
	}
	r.insertionSort(left, right)
}

// PartialSort reorders data so that data[:k] holds
// the k smallest elements in sorted order; the
// remaining elements are left in no particular order
// but none of them is smaller than data[k-1].
//
// k >= len(data) sorts everything and k <= 0
// does nothing.
func (e *Engine[T]) PartialSort(data []T, k int) Stats {
	if k >= len(data) {
		return e.Sort(data)
	}
	return e.SortLimit(data, Head(k))
}

// SortLimit places into every position of
// limit.FinalRange(len(data)) the element a full
// sort would put there, and sorts that range.
// Windows that do not overlap the range are never
// partitioned any further.
func (e *Engine[T]) SortLimit(data []T, limit Limit) Stats {
	r := e.start(data)
	want := limit.FinalRange(len(data))
	if !want.Empty() {
		r.sortRange(0, len(data)-1, want)
	}
	return e.finish(r, "sortlimit")
}

// sortRange is sort restricted to the windows
// that overlap want.
func (r *run[T]) sortRange(left, right int, want ints.Interval) {
	if right <= left || !want.Overlaps(ints.Closed(left, right)) {
		return
	}
	r.stats.enter()
	defer r.stats.leave()

	for right-left+1 > r.cfg.InsertionCutoff {
		lend, rstart := r.partition(left, right)
		goLeft := lend > left && want.Overlaps(ints.Closed(left, lend))
		goRight := rstart < right && want.Overlaps(ints.Closed(rstart, right))
		switch {
		case goLeft && goRight:
			if lend-left < right-rstart {
				r.sortRange(left, lend, want)
				left = rstart
			} else {
				r.sortRange(rstart, right, want)
				right = lend
			}
		case goLeft:
			right = lend
		case goRight:
			left = rstart
		default:
			return
		}
	}
	r.insertionSort(left, right)
}
