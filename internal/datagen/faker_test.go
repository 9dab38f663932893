//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"strings"
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	if f1.Seed() != seed {
		t.Errorf("Expected seed %d, got %d", seed, f1.Seed())
	}

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		v := f.Int(10, 20)
		if v < 10 || v > 20 {
			t.Errorf("Int(10, 20) returned %d, out of range", v)
		}
	}
	if v := f.Int(5, 5); v != 5 {
		t.Errorf("Expected Int(5, 5) to return 5, got %d", v)
	}
	if v := f.Int(7, 3); v != 7 {
		t.Errorf("Expected inverted Int(7, 3) to return 7, got %d", v)
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFakerWithSeed(2)
	for i := 0; i < 100; i++ {
		v := f.Float64(0.55, 0.85)
		if v < 0.55 || v >= 0.85 {
			t.Errorf("Float64(0.55, 0.85) returned %f, out of range", v)
		}
	}
}

func TestFakerProbability(t *testing.T) {
	f := NewFakerWithSeed(3)
	for i := 0; i < 50; i++ {
		if f.Probability(0) {
			t.Fatal("Probability(0) returned true")
		}
		if !f.Probability(1) {
			t.Fatal("Probability(1) returned false")
		}
	}
}

func TestFakerDigits(t *testing.T) {
	f := NewFakerWithSeed(4)
	d := f.Digits(8)
	if len(d) != 8 {
		t.Errorf("Expected 8 digits, got %q", d)
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			t.Errorf("Expected only digits, got %q", d)
		}
	}
}

func TestFakerDateRange(t *testing.T) {
	f := NewFakerWithSeed(5)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	d := f.DateRange(start, end)
	if d.Before(start) || d.After(end) {
		t.Errorf("DateRange returned %v, out of range", d)
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(6)
	items := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		v := Choose(f, items)
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned unexpected value: %s", v)
		}
	}
	if v := Choose(f, []string{}); v != "" {
		t.Errorf("Expected zero value for empty slice, got %q", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(7)
	items := []string{"never", "always"}
	weights := []int{0, 10}
	for i := 0; i < 50; i++ {
		if v := ChooseWeighted(f, items, weights); v != "always" {
			t.Fatalf("Expected 'always', got %q", v)
		}
	}
}

func TestShuffle(t *testing.T) {
	f := NewFakerWithSeed(8)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	Shuffle(f, items)

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("Shuffle lost elements: %v", items)
	}
}

func TestSample(t *testing.T) {
	f := NewFakerWithSeed(9)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(f, items, 4)
	if len(got) != 4 {
		t.Fatalf("Expected 4 elements, got %d", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("Sample returned duplicate %d", v)
		}
		seen[v] = true
	}
	for i, v := range items {
		if v != i+1 {
			t.Fatal("Sample modified the input slice")
		}
	}

	tests := []struct {
		name string
		k    int
		want int
	}{
		{"more than available", 20, 10},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(f, items, tt.k); len(got) != tt.want {
				t.Errorf("Expected %d elements, got %d", tt.want, len(got))
			}
		})
	}
}

func TestWeightedPick(t *testing.T) {
	f := NewFakerWithSeed(10)
	w := NewWeighted([]float64{0, 3, 0, 1})
	if w.Len() != 4 {
		t.Errorf("Expected Len 4, got %d", w.Len())
	}

	counts := make(map[int]int)
	for i := 0; i < 4000; i++ {
		counts[w.Pick(f)]++
	}
	if counts[0] != 0 || counts[2] != 0 {
		t.Errorf("Zero-weight entries were picked: %v", counts)
	}
	if counts[1] < 2700 || counts[1] > 3300 {
		t.Errorf("Expected roughly 3000 picks of index 1, got %d", counts[1])
	}
}

func TestWeightedPickEmpty(t *testing.T) {
	f := NewFakerWithSeed(11)
	if i := NewWeighted(nil).Pick(f); i != -1 {
		t.Errorf("Expected -1 for empty table, got %d", i)
	}
	if i := NewWeighted([]float64{0, 0}).Pick(f); i != -1 {
		t.Errorf("Expected -1 for all-zero table, got %d", i)
	}
}

func TestFullName(t *testing.T) {
	f := NewFakerWithSeed(12)
	for _, g := range []string{GenderMale, GenderFemale} {
		name := f.FullName(g)
		if parts := strings.Fields(name); len(parts) < 3 {
			t.Errorf("Expected surname, middle and given name, got %q", name)
		}
	}
}

func TestGender(t *testing.T) {
	f := NewFakerWithSeed(13)
	for i := 0; i < 20; i++ {
		g := f.Gender()
		if g != GenderMale && g != GenderFemale {
			t.Errorf("Unexpected gender %q", g)
		}
	}
}

func TestPhone(t *testing.T) {
	f := NewFakerWithSeed(14)
	p := f.Phone()
	if len(p) != 10 || p[0] != '0' {
		t.Errorf("Expected ten digit number starting with 0, got %q", p)
	}
}

func TestStreetAddress(t *testing.T) {
	f := NewFakerWithSeed(15)
	if a := f.StreetAddress(); a == "" {
		t.Error("StreetAddress returned empty string")
	}
}
