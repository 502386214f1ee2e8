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
	"log"

	"golang.org/x/exp/rand"
	"sigs.k8s.io/yaml"
)

// Defaults used by DefaultConfig.
const (
	DefaultInsertionCutoff    = 10
	DefaultAdaptiveMinWindow  = 20
	DefaultAdaptiveSampleSize = 5
	DefaultAdaptiveThreshold  = 0.7
)

// Config is the immutable configuration of an Engine.
//
// A Config can be written as YAML or JSON:
//
//	insertionCutoff: 16
//	partition: hoare
//	pivot: median-of-three
//	adaptive: true
//	seed: 42
type Config struct {
	// InsertionCutoff is the largest window
	// that is finished with insertion sort
	// instead of being partitioned.
	InsertionCutoff int `json:"insertionCutoff"`

	Partition PartitionStrategy `json:"partition"`
	Pivot     PivotStrategy     `json:"pivot"`

	// Adaptive enables sampling windows for
	// duplicate keys; a window that looks
	// duplicate-heavy is partitioned three-way
	// regardless of Partition.
	Adaptive bool `json:"adaptive"`

	// AdaptiveMinWindow is the smallest window
	// that is sampled.
	AdaptiveMinWindow int `json:"adaptiveMinWindow"`
	// AdaptiveSampleSize is the number of
	// elements drawn from a sampled window.
	AdaptiveSampleSize int `json:"adaptiveSampleSize"`
	// AdaptiveThreshold is the ratio of distinct
	// sampled values below which a window is
	// considered duplicate-heavy.
	AdaptiveThreshold float64 `json:"adaptiveThreshold"`

	// Seed seeds the random source used by the
	// random pivot and by sampling. Zero means
	// "seed from the clock".
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the default configuration:
// Lomuto partitioning with the last element as pivot,
// an insertion cutoff of 10 and adaptive three-way
// partitioning enabled.
func DefaultConfig() Config {
	return Config{
		InsertionCutoff:    DefaultInsertionCutoff,
		Partition:          Lomuto,
		Pivot:              PivotLast,
		Adaptive:           true,
		AdaptiveMinWindow:  DefaultAdaptiveMinWindow,
		AdaptiveSampleSize: DefaultAdaptiveSampleSize,
		AdaptiveThreshold:  DefaultAdaptiveThreshold,
	}
}

// Validate checks the configuration and returns
// a *ConfigError for the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.InsertionCutoff < 1:
		return &ConfigError{Field: "insertionCutoff", Value: c.InsertionCutoff}
	case !c.Partition.valid():
		return &ConfigError{Field: "partition", Value: c.Partition}
	case !c.Pivot.valid():
		return &ConfigError{Field: "pivot", Value: c.Pivot}
	case c.AdaptiveMinWindow < 1:
		return &ConfigError{Field: "adaptiveMinWindow", Value: c.AdaptiveMinWindow}
	case c.AdaptiveSampleSize < 1:
		return &ConfigError{Field: "adaptiveSampleSize", Value: c.AdaptiveSampleSize}
	case !(c.AdaptiveThreshold > 0 && c.AdaptiveThreshold <= 1):
		return &ConfigError{Field: "adaptiveThreshold", Value: c.AdaptiveThreshold}
	}
	return nil
}

// ParseConfig decodes a YAML (or JSON) document.
// Fields that are not present keep their
// DefaultConfig values.
func ParseConfig(buf []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// YAML renders the configuration as
// a document accepted by ParseConfig.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

type settings struct {
	cfg    Config
	src    rand.Source
	logger *log.Logger
}

// Option is an optional argument to New
// that adjusts the engine configuration.
type Option func(s *settings)

// WithConfig replaces the whole configuration.
// Options that follow it still apply.
func WithConfig(c Config) Option {
	return func(s *settings) {
		s.cfg = c
	}
}

// WithInsertionCutoff sets the largest window that
// is sorted by insertion sort.
func WithInsertionCutoff(n int) Option {
	return func(s *settings) {
		s.cfg.InsertionCutoff = n
	}
}

// WithPartition selects the partition strategy.
func WithPartition(p PartitionStrategy) Option {
	return func(s *settings) {
		s.cfg.Partition = p
	}
}

// WithPivot selects the pivot strategy.
func WithPivot(p PivotStrategy) Option {
	return func(s *settings) {
		s.cfg.Pivot = p
	}
}

// WithAdaptive turns the duplicate sampling on or off.
func WithAdaptive(enabled bool) Option {
	return func(s *settings) {
		s.cfg.Adaptive = enabled
	}
}

// WithSeed fixes the seed of the random source so
// that runs are reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.cfg.Seed = seed
	}
}

// WithRandSource injects the random source. It takes
// precedence over the configured seed.
func WithRandSource(src rand.Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

// WithLogger is an option that can be passed
// to New to have the engine log a summary of
// every call. If no logger is set, the engine
// does not write out any diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
