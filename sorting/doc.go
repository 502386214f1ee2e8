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

/*
Package sorting implements an in-place hybrid quicksort
together with order statistics: selecting the k-th
smallest element and sorting only a prefix (or any other
LIMIT/OFFSET range) of a slice.


Overview

An Engine is built once from a comparator and a Config and
then used for any number of calls:

    e, err := sorting.NewOrdered[int](sorting.WithPivot(sorting.PivotMedianOfThree))
    ...
    stats := e.Sort(data)
    third, _, err := e.QuickSelect(data, 3)
    e.PartialSort(data, 10)

Every call runs synchronously on the calling goroutine and
returns the counters it collected (comparisons, swaps,
recursion depth, elapsed time). The sort is not stable.


Design

Windows no larger than the insertion cutoff are finished with
insertion sort. Larger windows are partitioned with one of three
schemes:

1. Lomuto: few comparisons, many swaps; quadratic on inputs
with many equal keys.

2. Hoare: few swaps; the returned index is only a split boundary,
the pivot does not necessarily end up there.

3. Three-way (Dutch national flag): the equal zone is excluded
from any further work, which is what makes low-cardinality
inputs linear.

When adaptive partitioning is on, every window of at least 20
elements is sampled first (5 elements by default). If fewer than
70% of the sampled values are distinct, the window is partitioned
three-way whatever the configured scheme is.

The driver recurses only into the smaller side of a partition and
loops on the larger one, so the call depth is bounded by
log2(n)+1 even when every pivot is the worst possible one.

Selection and partial sorting reuse the same partitions, but only
descend into the windows that overlap the positions of interest.


Limitations

Cancellation is not supported: a caller that needs a timeout has to
run the call on its own goroutine and abandon it. The comparator is
trusted to be a strict weak ordering; if it panics the slice is left
partially partitioned.
*/
package sorting
