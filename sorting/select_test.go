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
	"errors"
	"testing"

	"github.com/SnellerInc/hybridsort/ints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func TestQuickSelectExample(t *testing.T) {
	e := newIntEngine(t)
	got, _, err := e.QuickSelect([]int{7, 2, 9, 1, 5}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestQuickSelectEveryRank(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	inputs := map[string][]int{}
	for name, in := range testInputs(rnd) {
		if len(in) > 0 && len(in) <= 500 {
			inputs[name] = in[:ints.Min(len(in), 120)]
		}
	}
	forEachConfig(t, func(t *testing.T, opts ...Option) {
		e := newIntEngine(t, append(opts, WithInsertionCutoff(4))...)
		for name, input := range inputs {
			want := slices.Clone(input)
			slices.Sort(want)
			for k := 1; k <= len(input); k++ {
				data := slices.Clone(input)
				got, _, err := e.QuickSelect(data, k)
				if err != nil {
					t.Fatalf("%s k=%d: %v", name, k, err)
				}
				if got != want[k-1] {
					t.Fatalf("%s k=%d: got %d, want %d", name, k, got, want[k-1])
				}
				if data[k-1] != got {
					t.Fatalf("%s k=%d: result is not at position k-1", name, k)
				}
				for i := range data {
					if (i < k-1 && data[i] > got) || (i > k-1 && data[i] < got) {
						t.Fatalf("%s k=%d: position %d is on the wrong side", name, k, i)
					}
				}
				slices.Sort(data)
				if !slices.Equal(data, want) {
					t.Fatalf("%s k=%d: not a permutation of the input", name, k)
				}
			}
		}
	})
}

func TestQuickSelectRankOutOfRange(t *testing.T) {
	e := newIntEngine(t)
	testcases := []struct {
		data []int
		k    int
	}{
		{[]int{1, 2, 3}, 0},
		{[]int{1, 2, 3}, 4},
		{[]int{1, 2, 3}, -1},
		{nil, 1},
	}
	for _, tc := range testcases {
		data := slices.Clone(tc.data)
		_, _, err := e.QuickSelect(data, tc.k)
		if !errors.Is(err, ErrRankOutOfRange) {
			t.Fatalf("k=%d n=%d: expected ErrRankOutOfRange, got %v", tc.k, len(tc.data), err)
		}
		var ue *UsageError
		if !errors.As(err, &ue) || ue.K != tc.k || ue.N != len(tc.data) {
			t.Fatalf("unexpected error %#v", err)
		}
		if !slices.Equal(data, tc.data) {
			t.Fatalf("data modified on error: %v", data)
		}
	}
}

func TestPartialSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	forEachConfig(t, func(t *testing.T, opts ...Option) {
		e := newIntEngine(t, opts...)
		for name, input := range testInputs(rnd) {
			want := slices.Clone(input)
			slices.Sort(want)
			for _, k := range []int{0, 1, 2, 5, 11, 50, len(input) / 2, len(input) - 1, len(input), len(input) + 3} {
				data := slices.Clone(input)
				e.PartialSort(data, k)
				head := ints.Clamp(k, 0, len(data))
				if !slices.Equal(data[:head], want[:head]) {
					t.Fatalf("%s k=%d: prefix %v, want %v", name, k, data[:head], want[:head])
				}
				if head > 0 {
					for _, v := range data[head:] {
						if v < data[head-1] {
							t.Fatalf("%s k=%d: tail value %d below the k-th value", name, k, v)
						}
					}
				}
				tail := slices.Clone(data[head:])
				slices.Sort(tail)
				if !slices.Equal(tail, want[head:]) {
					t.Fatalf("%s k=%d: tail is not the remaining multiset", name, k)
				}
			}
		}
	})
}

func TestPartialSortDoesLessWork(t *testing.T) {
	input, _ := GenerateRandomSequence(20000, 0, 1<<30, rand.New(rand.NewSource(13)))
	e := newIntEngine(t, WithPivot(PivotMedianOfThree), WithSeed(14))
	full := e.Sort(slices.Clone(input))
	partial := e.PartialSort(slices.Clone(input), 10)
	if partial.Comparisons >= full.Comparisons {
		t.Errorf("partial sort used %d comparisons, full sort %d", partial.Comparisons, full.Comparisons)
	}
}

func TestFinalRange(t *testing.T) {
	testcases := []struct {
		limit Limit
		n     int
		want  ints.Interval
	}{
		{Head(3), 10, ints.Interval{Start: 0, End: 3}},
		{Head(30), 10, ints.Interval{Start: 0, End: 10}},
		{Head(-1), 10, ints.Interval{Start: 0, End: 0}},
		{Top(3), 10, ints.Interval{Start: 7, End: 10}},
		{Top(30), 10, ints.Interval{Start: 0, End: 10}},
		{Range(2, 3), 10, ints.Interval{Start: 2, End: 5}},
		{Range(8, 5), 10, ints.Interval{Start: 8, End: 10}},
		{Range(12, 5), 10, ints.Interval{Start: 10, End: 10}},
		{Limit{Kind: LimitKind(99)}, 10, ints.Interval{}},
	}
	for i, tc := range testcases {
		if got := tc.limit.FinalRange(tc.n); got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestSortLimit(t *testing.T) {
	rnd := rand.New(rand.NewSource(15))
	input, _ := ints.RandomSequence(rnd, 1000, 0, 200)
	want := slices.Clone(input)
	slices.Sort(want)
	limits := []Limit{Head(17), Top(17), Range(400, 33), Range(990, 50), Range(0, 1000)}
	for _, part := range partitions {
		e := newIntEngine(t, WithPartition(part), WithSeed(16))
		for _, limit := range limits {
			data := slices.Clone(input)
			e.SortLimit(data, limit)
			r := limit.FinalRange(len(data))
			if !slices.Equal(data[r.Start:r.End], want[r.Start:r.End]) {
				t.Fatalf("%s %+v: range %v not in sorted order", part, limit, r)
			}
			for i := 0; i < r.Start; i++ {
				if data[i] > data[r.Start] {
					t.Fatalf("%s %+v: %d before the range is greater than its first element", part, limit, data[i])
				}
			}
			for i := r.End; i < len(data); i++ {
				if data[i] < data[r.End-1] {
					t.Fatalf("%s %+v: %d after the range is less than its last element", part, limit, data[i])
				}
			}
		}
	}
}
