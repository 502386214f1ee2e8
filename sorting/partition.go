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

// partition splits the window [left, right] and
// returns the inclusive end of the left part and the
// start of the right part. Everything in
// [left, lend] orders before or equal to everything
// in [rstart, right], and the elements in between
// (if any) are already in their final position.
//
// Both parts are always strictly smaller than the
// window, so the driver makes progress.
func (r *run[T]) partition(left, right int) (lend, rstart int) {
	r.stats.Partitions++
	strategy := r.cfg.Partition
	if strategy != ThreeWay && r.duplicateHeavy(left, right) {
		strategy = ThreeWay
		r.stats.ThreeWayOverrides++
	}
	p := r.pivot(left, right)
	switch strategy {
	case Hoare:
		j := r.hoare(left, right, p)
		return j, j + 1
	case ThreeWay:
		lt, gt := r.threeWay(left, right, p)
		return lt - 1, gt + 1
	default:
		m := r.lomuto(left, right, p)
		return m - 1, m + 1
	}
}

// lomuto moves the pivot to the right end, then
// collects every element <= pivot at the front of
// the window. It returns the final pivot position.
func (r *run[T]) lomuto(left, right, p int) int {
	if p != right {
		r.swap(p, right)
	}
	b := left
	for i := left; i < right; i++ {
		if r.compare(i, right) <= 0 {
			if i != b {
				r.swap(i, b)
			}
			b++
		}
	}
	if b != right {
		r.swap(b, right)
	}
	return b
}

// hoare scans from both ends of the window and
// returns the split index j, left <= j < right.
// Every element of [left, j] is <= every element
// of [j+1, right], but the pivot itself is not
// necessarily at j.
func (r *run[T]) hoare(left, right, p int) int {
	// With the pivot in the first slot the scan
	// always stops short of right, so both halves
	// are non-empty.
	if p != left {
		r.swap(p, left)
	}
	pivot := r.data[left]
	i, j := left-1, right+1
	for {
		for {
			i++
			if r.compareTo(i, pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if r.compareTo(j, pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		r.swap(i, j)
	}
}

// threeWay partitions the window into
// [left, lt) < pivot, [lt, gt] == pivot and
// (gt, right] > pivot in a single pass.
func (r *run[T]) threeWay(left, right, p int) (lt, gt int) {
	pivot := r.data[p]
	lt, gt = left, right
	for i := left; i <= gt; {
		c := r.compareTo(i, pivot)
		switch {
		case c < 0:
			if i != lt {
				r.swap(lt, i)
			}
			lt++
			i++
		case c > 0:
			if i != gt {
				r.swap(i, gt)
			}
			gt--
		default:
			i++
		}
	}
	return lt, gt
}
