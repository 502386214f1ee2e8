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
	"testing"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func TestKtopAddAndCaptureAscendingOrder(t *testing.T) {
	type rec struct {
		id, num int
	}
	ktop := NewKtop(5, CompareByKey(func(r rec) int { return r.num }, Ascending))

	records := []struct {
		rec   rec
		added bool
	}{
		// records are added as they are going until the limit is reached
		{rec{1, 100}, true}, // ktop: [(1, 100)]
		{rec{2, 1}, true},   // ktop: [(1, 100), (2, 1)]
		{rec{3, 50}, true},  // ktop: [(1, 100), (2, 1), (3, 50)]
		{rec{4, 101}, true}, // ktop: [(1, 100), (2, 1), (3, 50), (4, 101)]
		{rec{5, 5}, true},   // ktop: [(1, 100), (2, 1), (3, 50), (4, 101), (5, 5)]
		// limit reached
		{rec{6, 102}, false}, // ktop: no changes (102 >= max=101)
		{rec{7, 6}, true},    // ktop: [(1, 100), (2, 1), (3, 50), (5, 5), (7, 6)]
		{rec{8, 3}, true},    // ktop: [(2, 1), (3, 50), (5, 5), (7, 6), (8, 3)]
		{rec{9, 50}, false},  // ktop: no changes (50 >= max=50)
		{rec{10, 20}, true},  // ktop: [(2, 1), (5, 5), (7, 6), (8, 3), (10, 20)]
	}
	for i := range records {
		if added := ktop.Add(records[i].rec); added != records[i].added {
			t.Errorf("record %d: %+v: got %v", i, records[i].rec, added)
		}
	}
	if !ktop.Full() || ktop.Len() != 5 {
		t.Fatalf("expected a full collection, got %d values", ktop.Len())
	}
	if g, _ := ktop.Greatest(); g != (rec{10, 20}) {
		t.Fatalf("greatest is %+v", g)
	}

	got := ktop.Capture()
	want := []rec{{2, 1}, {8, 3}, {5, 5}, {7, 6}, {10, 20}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if ktop.Len() != 0 {
		t.Fatal("Capture did not empty the collection")
	}
	if _, ok := ktop.Greatest(); ok {
		t.Fatal("empty collection has a greatest value")
	}
}

func TestKtopDescendingOrder(t *testing.T) {
	ktop := NewKtop(3, Reverse(Natural[int]))
	for _, v := range []int{4, 9, 1, 7, 3, 9, 8} {
		ktop.Add(v)
	}
	if got := ktop.Capture(); !slices.Equal(got, []int{9, 9, 8}) {
		t.Fatalf("got %v", got)
	}
}

func TestKtopMergeMatchesPartialSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(31))
	input, _ := GenerateRandomSequence(2000, 0, 500, rnd)
	const k = 25

	a := NewKtop(k, Natural[int])
	b := NewKtop(k, Natural[int])
	for i, v := range input {
		if i%2 == 0 {
			a.Add(v)
		} else {
			b.Add(v)
		}
	}
	a.Merge(b)

	e := newIntEngine(t, WithSeed(32))
	data := slices.Clone(input)
	e.PartialSort(data, k)
	if got := a.Capture(); !slices.Equal(got, data[:k]) {
		t.Fatalf("ktop %v, partial sort %v", got, data[:k])
	}
}

func TestKtopZeroLimit(t *testing.T) {
	ktop := NewKtop(0, Natural[int])
	if ktop.Add(1) {
		t.Fatal("added to a zero-limit collection")
	}
	if len(ktop.Capture()) != 0 {
		t.Fatal("captured values from a zero-limit collection")
	}
}
