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
	"fmt"
)

var (
	// ErrRankOutOfRange is matched by the *UsageError
	// returned for an order statistic outside [1, N].
	ErrRankOutOfRange = errors.New("rank out of range")

	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UsageError reports a caller mistake that
// the engine refuses to paper over, such as
// asking for the 0th smallest element.
type UsageError struct {
	Op string // operation name
	K  int    // requested rank
	N  int    // length of the input
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("sorting.%s: k=%d outside of [1, %d]", e.Op, e.K, e.N)
}

func (e *UsageError) Unwrap() error { return ErrRankOutOfRange }

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sorting: invalid %s: %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
