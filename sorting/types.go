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
	"strings"
)

// Direction encodes a sorting direction of a key (SQL: ASC/DESC)
type Direction int

const (
	Ascending  Direction = 1  // Sort ascending
	Descending Direction = -1 // Sort descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// PartitionStrategy selects the routine used to
// split a window around its pivot.
type PartitionStrategy uint8

const (
	// Lomuto moves the pivot to the right end and
	// grows a "less or equal" region from the left.
	Lomuto PartitionStrategy = iota
	// Hoare scans from both ends towards each other.
	Hoare
	// ThreeWay is the Dutch national flag partition:
	// {< pivot, == pivot, > pivot}.
	ThreeWay
)

var partitionNames = []string{
	Lomuto:   "lomuto",
	Hoare:    "hoare",
	ThreeWay: "three-way",
}

func (p PartitionStrategy) String() string {
	if int(p) < len(partitionNames) {
		return partitionNames[p]
	}
	return fmt.Sprintf("PartitionStrategy(%d)", int(p))
}

func (p PartitionStrategy) valid() bool {
	return int(p) < len(partitionNames)
}

// MarshalText implements encoding.TextMarshaler
func (p PartitionStrategy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("cannot marshal %s", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PartitionStrategy) UnmarshalText(text []byte) error {
	i, ok := lookupName(partitionNames, string(text))
	if !ok {
		return &ConfigError{Field: "partition", Value: string(text)}
	}
	*p = PartitionStrategy(i)
	return nil
}

// PivotStrategy selects which element of a window
// becomes the pivot.
type PivotStrategy uint8

const (
	// PivotFirst picks the leftmost element.
	PivotFirst PivotStrategy = iota
	// PivotLast picks the rightmost element.
	PivotLast
	// PivotRandom picks a uniformly sampled element,
	// which defeats sorted and reverse-sorted inputs.
	PivotRandom
	// PivotMedianOfThree picks the median of the
	// leftmost, middle and rightmost elements.
	PivotMedianOfThree
)

var pivotNames = []string{
	PivotFirst:         "first",
	PivotLast:          "last",
	PivotRandom:        "random",
	PivotMedianOfThree: "median-of-three",
}

func (p PivotStrategy) String() string {
	if int(p) < len(pivotNames) {
		return pivotNames[p]
	}
	return fmt.Sprintf("PivotStrategy(%d)", int(p))
}

func (p PivotStrategy) valid() bool {
	return int(p) < len(pivotNames)
}

// MarshalText implements encoding.TextMarshaler
func (p PivotStrategy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("cannot marshal %s", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PivotStrategy) UnmarshalText(text []byte) error {
	i, ok := lookupName(pivotNames, string(text))
	if !ok {
		return &ConfigError{Field: "pivot", Value: string(text)}
	}
	*p = PivotStrategy(i)
	return nil
}

// lookupName matches s against names ignoring case;
// '_' and '-' are interchangeable, and the separator
// may be omitted ("threeway", "MedianOfThree").
func lookupName(names []string, s string) (int, bool) {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.ReplaceAll(s, "_", "")
		return strings.ReplaceAll(s, "-", "")
	}
	want := norm(s)
	for i := range names {
		if norm(names[i]) == want {
			return i, true
		}
	}
	return 0, false
}
