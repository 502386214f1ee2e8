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
	"golang.org/x/exp/constraints"
)

// Compare is a three-way comparison function. It
// returns a negative number when a sorts before b,
// a positive number when b sorts before a, and zero
// when they are equivalent.
//
// A Compare function must define a strict weak
// ordering; the engine does not check this. A panic
// raised by a Compare function is not recovered.
type Compare[T any] func(a, b T) int

// Natural orders values of an ordered type with
// the built-in operators. NaNs sort before any
// other value and are equal to each other, so
// floating point keys still form a strict weak
// ordering.
func Natural[T constraints.Ordered](a, b T) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN || bNaN:
		if aNaN && bNaN {
			return 0
		}
		if aNaN {
			return -1
		}
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse returns cmp with the direction flipped.
func Reverse[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// CompareByKey orders values by the natural order
// of the key extracted by key, in the given direction.
func CompareByKey[T any, K constraints.Ordered](key func(T) K, dir Direction) Compare[T] {
	sign := dir.sign()
	return func(a, b T) int {
		return sign * Natural(key(a), key(b))
	}
}

// Rule is one step of a multi-key ordering.
type Rule[T any] struct {
	Compare   Compare[T]
	Direction Direction
}

// ByKey builds a Rule comparing the natural order
// of a field.
func ByKey[T any, K constraints.Ordered](key func(T) K, dir Direction) Rule[T] {
	return Rule[T]{
		Compare:   func(a, b T) int { return Natural(key(a), key(b)) },
		Direction: dir,
	}
}

// ByFunc builds a Rule from a custom comparator.
func ByFunc[T any](cmp Compare[T], dir Direction) Rule[T] {
	return Rule[T]{Compare: cmp, Direction: dir}
}

// CompareByMultiple evaluates the rules in order and
// returns the first nonzero result, as in
// ORDER BY a, b DESC, c. It returns zero when all
// the rules tie (or when there are no rules).
func CompareByMultiple[T any](rules ...Rule[T]) Compare[T] {
	steps := make([]Rule[T], len(rules))
	copy(steps, rules)
	return func(a, b T) int {
		for i := range steps {
			if c := steps[i].Compare(a, b); c != 0 {
				return steps[i].Direction.sign() * c
			}
		}
		return 0
	}
}

// sign maps the direction to the multiplier applied
// to a comparison result; anything that is not
// Descending is treated as Ascending.
func (d Direction) sign() int {
	if d == Descending {
		return -1
	}
	return 1
}
