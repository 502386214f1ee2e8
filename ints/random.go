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

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// RandomSequence returns n values drawn independently
// and uniformly from the inclusive range [lo, hi].
//
// The arithmetic is done on the two's complement
// representation, so the whole range of any integer
// type (including signed ones) can be requested.
func RandomSequence[T constraints.Integer](rnd *rand.Rand, n int, lo, hi T) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("ints.RandomSequence: negative length %d", n)
	}
	if lo > hi {
		return nil, fmt.Errorf("ints.RandomSequence: empty range [%v, %v]", lo, hi)
	}
	base := uint64(lo)
	span := uint64(hi) - base + 1 // zero when the range covers all 2^64 values
	out := make([]T, n)
	for i := range out {
		var off uint64
		if span == 0 {
			off = rnd.Uint64()
		} else {
			off = rnd.Uint64n(span)
		}
		out[i] = T(base + off)
	}
	return out, nil
}
