//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
//
// Every random draw made while building a dataset goes through a single
// Faker, so a seeded Faker reproduces the same dataset.
package datagen

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return NewFakerWithSeed(uint64(time.Now().UnixNano()))
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns the seed the Faker was created with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	if max <= min {
		return min
	}
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 in [min, max).
func (f *Faker) Float64(min, max float64) float64 {
	if max <= min {
		return min
	}
	return f.faker.Float64Range(min, max)
}

// Probability reports true with probability p.
func (f *Faker) Probability(p float64) bool {
	return f.Float64(0, 1) < p
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Digits generates a random string of digits of length n.
func (f *Faker) Digits(n int) string {
	return f.faker.DigitN(uint(n))
}

// DateRange generates a random date within a range.
func (f *Faker) DateRange(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](f *Faker, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := f.Int(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns k distinct elements of items, drawn without replacement.
// k is capped to len(items). The input slice is not modified.
func Sample[T any](f *Faker, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := f.Int(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Weighted picks indices according to a fixed probability table.
type Weighted struct {
	cumulative []float64
}

// NewWeighted builds a picker from non-negative weights. Weights do not need
// to sum to one.
func NewWeighted(weights []float64) *Weighted {
	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cumulative[i] = total
	}
	return &Weighted{cumulative: cumulative}
}

// Len returns the number of weighted entries.
func (w *Weighted) Len() int {
	return len(w.cumulative)
}

// Pick returns a weighted random index, or -1 when there is nothing to pick.
func (w *Weighted) Pick(f *Faker) int {
	n := len(w.cumulative)
	if n == 0 || w.cumulative[n-1] <= 0 {
		return -1
	}
	r := f.Float64(0, w.cumulative[n-1])
	i := sort.Search(n, func(i int) bool { return w.cumulative[i] > r })
	if i >= n {
		i = n - 1
	}
	return i
}
