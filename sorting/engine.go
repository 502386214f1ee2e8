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
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Engine sorts and selects elements of []T
// according to a fixed configuration.
//
// An Engine holds no reference to the slices it
// is given once a call returns. Calls may be made
// from several goroutines: the counters of a call
// live on its own stack, and the shared state
// (random source and the last Stats) is guarded.
type Engine[T any] struct {
	id     uuid.UUID
	cmp    Compare[T]
	cfg    Config
	logger *log.Logger

	lock sync.Mutex // guards rnd and last
	rnd  *rand.Rand
	last Stats
}

// New constructs an Engine ordering elements with
// cmp. Without options the engine uses DefaultConfig.
func New[T any](cmp Compare[T], opts ...Option) (*Engine[T], error) {
	if cmp == nil {
		return nil, &ConfigError{Field: "comparator", Value: nil}
	}
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	src := s.src
	if src == nil {
		seed := s.cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = rand.NewSource(seed)
	}
	return &Engine[T]{
		id:     uuid.New(),
		cmp:    cmp,
		cfg:    s.cfg,
		logger: s.logger,
		rnd:    rand.New(src),
	}, nil
}

// NewOrdered constructs an Engine using the natural
// order of T.
func NewOrdered[T constraints.Ordered](opts ...Option) (*Engine[T], error) {
	return New(Natural[T], opts...)
}

// ID identifies the engine in its log output.
func (e *Engine[T]) ID() uuid.UUID { return e.id }

// Config returns a copy of the engine configuration.
func (e *Engine[T]) Config() Config { return e.cfg }

// Statistics returns a copy of the counters of the
// last call that completed on this engine.
func (e *Engine[T]) Statistics() Stats {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.last
}

// Sort sorts data in place. The sort is not stable.
func (e *Engine[T]) Sort(data []T) Stats {
	r := e.start(data)
	if len(data) > 1 {
		r.sort(0, len(data)-1)
	}
	return e.finish(r, "sort")
}

// SortCopy returns a sorted copy of data and
// leaves data untouched.
func (e *Engine[T]) SortCopy(data []T) ([]T, Stats) {
	out := slices.Clone(data)
	return out, e.Sort(out)
}

func (e *Engine[T]) start(data []T) *run[T] {
	return &run[T]{
		data:    data,
		cmp:     e.cmp,
		cfg:     &e.cfg,
		owner:   e,
		started: time.Now(),
	}
}

func (e *Engine[T]) finish(r *run[T], op string) Stats {
	r.stats.Elapsed = time.Since(r.started)
	e.lock.Lock()
	e.last = r.stats
	e.lock.Unlock()
	e.logf("%s n=%d %s", op, len(r.data), r.stats)
	return r.stats
}

// nextSeed draws the seed of a per-call source,
// so that runs never share a *rand.Rand.
func (e *Engine[T]) nextSeed() uint64 {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.rnd.Uint64()
}

func (e *Engine[T]) logf(f string, args ...any) {
	if e.logger != nil {
		e.logger.Printf("engine %s: "+f, append([]any{e.id}, args...)...)
	}
}

// run is the state of one call. Windows are
// given as inclusive [left, right] index pairs.
type run[T any] struct {
	data    []T
	cmp     Compare[T]
	cfg     *Config
	owner   *Engine[T]
	rnd     *rand.Rand
	scratch []T // sample buffer of duplicateHeavy
	stats   Stats
	started time.Time
}

func (r *run[T]) compare(i, j int) int {
	r.stats.Comparisons++
	return r.cmp(r.data[i], r.data[j])
}

func (r *run[T]) compareTo(i int, pivot T) int {
	r.stats.Comparisons++
	return r.cmp(r.data[i], pivot)
}

func (r *run[T]) swap(i, j int) {
	r.stats.Swaps++
	r.data[i], r.data[j] = r.data[j], r.data[i]
}

func (r *run[T]) random() *rand.Rand {
	if r.rnd == nil {
		r.rnd = rand.New(rand.NewSource(r.owner.nextSeed()))
	}
	return r.rnd
}

// sort is the bounded driver: the smaller side of
// every partition is handled by a recursive call and
// the larger one by the loop, so the call depth never
// exceeds log2(n)+1.
func (r *run[T]) sort(left, right int) {
	if right <= left {
		return
	}
	r.stats.enter()
	defer r.stats.leave()

	for right-left+1 > r.cfg.InsertionCutoff {
		lend, rstart := r.partition(left, right)
		if lend-left < right-rstart {
			r.sort(left, lend)
			left = rstart
		} else {
			r.sort(rstart, right)
			right = lend
		}
	}
	r.insertionSort(left, right)
}

func (r *run[T]) insertionSort(left, right int) {
	for i := left + 1; i <= right; i++ {
		for j := i; j > left && r.compare(j, j-1) < 0; j-- {
			r.swap(j, j-1)
		}
	}
}
