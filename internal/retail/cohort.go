//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// Scheduler hands out the active customers of each month.
//
// Every month gets a cohort drawn once up front. Orders in a month take
// customers from the cohort round-robin, wrapping around when the cohort
// is exhausted. The day within the month plays no part.
type Scheduler struct {
	cohorts map[int][]string
	cursor  map[int]int
}

// NormalizeRange clamps negative bounds to zero and swaps inverted bounds.
func NormalizeRange(lo, hi int) (int, int) {
	lo, hi = max(lo, 0), max(hi, 0)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// ScheduleCohorts draws a cohort for every month of cal. The cohort size is
// uniform in [minActive, maxActive], capped by the number of customers.
func (g *Generator) ScheduleCohorts(cal []CalendarDay, customers []Customer, minActive, maxActive int) *Scheduler {
	lo, hi := NormalizeRange(minActive, maxActive)

	ids := make([]string, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}

	s := &Scheduler{
		cohorts: make(map[int][]string),
		cursor:  make(map[int]int),
	}
	for _, ym := range months(cal) {
		if len(ids) == 0 {
			s.cohorts[ym] = nil
			continue
		}
		k := min(g.faker.Int(lo, hi), len(ids))
		cohort := datagen.Sample(g.faker, ids, k)
		datagen.Shuffle(g.faker, cohort)
		s.cohorts[ym] = cohort
	}
	return s
}

// Next returns the next customer of the month's cohort, or "" when the
// month has no active customers.
func (s *Scheduler) Next(yearMonth int) string {
	cohort := s.cohorts[yearMonth]
	if len(cohort) == 0 {
		return ""
	}
	i := s.cursor[yearMonth]
	s.cursor[yearMonth] = (i + 1) % len(cohort)
	return cohort[i]
}

// Cohort returns the active customers of a month.
func (s *Scheduler) Cohort(yearMonth int) []string {
	return s.cohorts[yearMonth]
}
