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

// pivot returns the index of the pivot of the
// window [left, right] for the configured strategy.
func (r *run[T]) pivot(left, right int) int {
	switch r.cfg.Pivot {
	case PivotFirst:
		return left
	case PivotRandom:
		return left + r.random().Intn(right-left+1)
	case PivotMedianOfThree:
		return r.medianOfThree(left, left+(right-left)/2, right)
	default:
		return right
	}
}

// medianOfThree returns whichever of a, b and c
// holds the median value, using at most three
// comparisons.
func (r *run[T]) medianOfThree(a, b, c int) int {
	if r.compare(a, b) < 0 {
		switch {
		case r.compare(b, c) < 0:
			return b
		case r.compare(a, c) < 0:
			return c
		default:
			return a
		}
	}
	// data[b] <= data[a]
	switch {
	case r.compare(a, c) < 0:
		return a
	case r.compare(b, c) < 0:
		return c
	default:
		return b
	}
}
