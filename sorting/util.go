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
	"time"

	"github.com/SnellerInc/hybridsort/ints"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// IsSorted reports whether no element of data
// orders before its predecessor. It stops at the
// first inversion.
func IsSorted[T any](data []T, cmp Compare[T]) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// IsSortedOrdered is IsSorted with the natural order.
func IsSortedOrdered[T constraints.Ordered](data []T) bool {
	return IsSorted(data, Natural[T])
}

// Shuffle returns a uniformly shuffled copy of
// data (Fisher-Yates). A nil rnd uses a source
// seeded from the clock.
func Shuffle[T any](data []T, rnd *rand.Rand) []T {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	out := slices.Clone(data)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// GenerateRandomSequence returns n independent
// uniform integers from the inclusive range
// [lo, hi]. A nil rnd uses a source seeded from
// the clock.
func GenerateRandomSequence(n, lo, hi int, rnd *rand.Rand) ([]int, error) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return ints.RandomSequence(rnd, n, lo, hi)
}
