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
	"fmt"
	"time"
)

// Stats holds the counters of a single call.
//
// Every call works on its own Stats value and
// returns it; the engine additionally keeps a
// copy of the last one (see Engine.Statistics).
type Stats struct {
	Comparisons int64 // calls to the comparator
	Swaps       int64 // element exchanges

	// RecursionDepth is the depth of the driver
	// when the call returned; it is zero after
	// every completed call.
	RecursionDepth int
	// MaxRecursionDepth is the deepest nesting
	// of the driver, the top level being 1.
	MaxRecursionDepth int

	Partitions        int64 // windows that were partitioned
	ThreeWayOverrides int64 // windows switched to three-way by sampling

	Elapsed time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d partitions=%d three-way-overrides=%d max-depth=%d elapsed=%s",
		s.Comparisons, s.Swaps, s.Partitions, s.ThreeWayOverrides, s.MaxRecursionDepth, s.Elapsed)
}

func (s *Stats) enter() {
	s.RecursionDepth++
	if s.RecursionDepth > s.MaxRecursionDepth {
		s.MaxRecursionDepth = s.RecursionDepth
	}
}

func (s *Stats) leave() {
	s.RecursionDepth--
}
