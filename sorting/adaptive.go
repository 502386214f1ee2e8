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

// duplicateHeavy samples the window and reports
// whether the ratio of distinct sampled values is
// below the configured threshold. A wrong answer
// only affects speed, never the result.
func (r *run[T]) duplicateHeavy(left, right int) bool {
	n := right - left + 1
	if !r.cfg.Adaptive || n < r.cfg.AdaptiveMinWindow {
		return false
	}
	size := ints.Min(r.cfg.AdaptiveSampleSize, n)

	// One position from each of size equal strata,
	// so no position is drawn twice.
	if cap(r.scratch) < size {
		r.scratch = make([]T, size)
	}
	sample := r.scratch[:size]
	rnd := r.random()
	for i := range sample {
		lo := left + i*n/size
		hi := left + (i+1)*n/size
		sample[i] = r.data[lo+rnd.Intn(hi-lo)]
	}

	// T need not be comparable, so duplicates are
	// found by ordering the sample with the
	// comparator and looking at neighbours.
	for i := 1; i < size; i++ {
		for j := i; j > 0; j-- {
			r.stats.Comparisons++
			if r.cmp(sample[j], sample[j-1]) >= 0 {
				break
			}
			sample[j], sample[j-1] = sample[j-1], sample[j]
		}
	}
	distinct := 1
	for i := 1; i < size; i++ {
		r.stats.Comparisons++
		if r.cmp(sample[i-1], sample[i]) != 0 {
			distinct++
		}
	}
	return float64(distinct)/float64(size) < r.cfg.AdaptiveThreshold
}
