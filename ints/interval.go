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

package ints

// Interval is a half-open interval [start, end)
// (start is always less than or equal to end)
type Interval struct {
	Start, End int
}

// Empty returns whether [in] is an empty
// interval.
func (in Interval) Empty() bool {
	return in.Start >= in.End
}

// Len returns the length of the interval.
func (in Interval) Len() int {
	if in.End <= in.Start {
		return 0
	}
	return in.End - in.Start
}

// Contains returns whether i lies inside [in].
func (in Interval) Contains(i int) bool {
	return i >= in.Start && i < in.End
}

// Overlaps returns whether [in] and [other]
// share at least one position.
func (in Interval) Overlaps(other Interval) bool {
	if in.Empty() || other.Empty() {
		return false
	}
	return in.Start < other.End && other.Start < in.End
}

// Intersect returns the common part of [in]
// and [other]. The result is empty (and
// normalized to Start == End) when they are
// disjoint.
func (in Interval) Intersect(other Interval) Interval {
	out := Interval{Start: Max(in.Start, other.Start), End: Min(in.End, other.End)}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// Closed returns the half-open interval
// covering the inclusive range [first, last].
func Closed(first, last int) Interval {
	return Interval{Start: first, End: last + 1}
}
