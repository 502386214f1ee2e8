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

// LimitKind describes how to interpret the
// LIMIT and OFFSET parameters.
type LimitKind byte

const (
	// Use the first rows in range [0:limit]
	LimitToHeadRows LimitKind = iota

	// Use the top rows in range [len(collection) - limit:]
	LimitToTopRows

	// Use subrange of rows in range [offset:offset + limit]
	LimitToRange
)

// Limit selects the positions of a sorted
// collection that a caller is interested in.
type Limit struct {
	Kind          LimitKind
	Limit, Offset int
}

// Head is the Limit of the first k positions.
func Head(k int) Limit {
	return Limit{Kind: LimitToHeadRows, Limit: k}
}

// Top is the Limit of the last k positions.
func Top(k int) Limit {
	return Limit{Kind: LimitToTopRows, Limit: k}
}

// Range is the Limit of the positions
// [offset, offset+limit).
func Range(offset, limit int) Limit {
	return Limit{Kind: LimitToRange, Limit: limit, Offset: offset}
}

// FinalRange calculates the half-open range of
// positions that has to be actually ordered in a
// collection of n elements. Negative values of
// Limit and Offset count as zero.
func (l *Limit) FinalRange(n int) ints.Interval {
	all := ints.Interval{Start: 0, End: n}
	limit := ints.Max(l.Limit, 0)
	switch l.Kind {
	case LimitToHeadRows:
		return all.Intersect(ints.Interval{Start: 0, End: limit})

	case LimitToTopRows:
		return all.Intersect(ints.Interval{Start: n - limit, End: n})

	case LimitToRange:
		offset := ints.Max(l.Offset, 0)
		if offset >= n {
			return ints.Interval{Start: n, End: n}
		}
		return all.Intersect(ints.Interval{Start: offset, End: offset + ints.Min(limit, n)})
	}

	return ints.Interval{}
}
