package estimate

import (
	"math"
	"testing"
)

func TestYearBracketMatching(t *testing.T) {
	tests := []struct {
		name          string
		year          float64
		expectedLabel string
		wantMatch     bool
	}{
		{
			name:          "Well before lowest threshold",
			year:          1800,
			expectedLabel: "Before 1950",
			wantMatch:     true,
		},
		{
			name:          "Just below lowest threshold",
			year:          1949,
			expectedLabel: "Before 1950",
			wantMatch:     true,
		},
		{
			name:          "Lower edge of interior bracket",
			year:          1970,
			expectedLabel: "1970-1979",
			wantMatch:     true,
		},
		{
			name:          "Interior of interior bracket",
			year:          1975,
			expectedLabel: "1970-1979",
			wantMatch:     true,
		},
		{
			name:          "Upper edge of interior bracket",
			year:          1979,
			expectedLabel: "1970-1979",
			wantMatch:     true,
		},
		{
			name:          "Open-ended top bracket",
			year:          2024,
			expectedLabel: "2010 and later",
			wantMatch:     true,
		},
		{
			name:      "NaN never matches",
			year:      math.NaN(),
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bracket, ok := YearBrackets.Match(tt.year)
			if ok != tt.wantMatch {
				t.Fatalf("Match(%v) matched = %v, expected %v", tt.year, ok, tt.wantMatch)
			}
			if ok && bracket.Label != tt.expectedLabel {
				t.Errorf("Match(%v) = %q, expected %q", tt.year, bracket.Label, tt.expectedLabel)
			}
		})
	}
}

func TestAreaBracketMatching(t *testing.T) {
	tests := []struct {
		name          string
		area          float64
		expectedLabel string
	}{
		{
			name:          "Small home absorbed by open lower bracket",
			area:          500,
			expectedLabel: "<1000",
		},
		{
			name:          "Interior bracket",
			area:          1750,
			expectedLabel: "1500-1999",
		},
		{
			name:          "Highest threshold hits open top bracket",
			area:          5000,
			expectedLabel: "5000+",
		},
		{
			name:          "Far above highest threshold",
			area:          12000,
			expectedLabel: "5000+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bracket, ok := AreaBrackets.Match(tt.area)
			if !ok {
				t.Fatalf("Match(%v) unexpectedly failed", tt.area)
			}
			if bracket.Label != tt.expectedLabel {
				t.Errorf("Match(%v) = %q, expected %q", tt.area, bracket.Label, tt.expectedLabel)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Overlapping data is malformed, but sequence order must still decide.
	set := BracketSet{
		{Label: "first", Lower: bound(0), Upper: bound(10)},
		{Label: "second", Lower: bound(5), Upper: bound(15)},
	}
	bracket, ok := set.Match(7)
	if !ok {
		t.Fatal("Match(7) unexpectedly failed")
	}
	if bracket.Label != "first" {
		t.Errorf("Match(7) = %q, expected first bracket in sequence order", bracket.Label)
	}
}

func TestUnconfiguredGapReturnsNoMatch(t *testing.T) {
	set := BracketSet{
		{Label: "low", Upper: bound(10)},
		{Label: "high", Lower: bound(20)},
	}
	if _, ok := set.Match(15); ok {
		t.Error("Match(15) expected no match for value in unconfigured gap")
	}
}

func TestBracketSetsCoverFullDomain(t *testing.T) {
	// Contiguity invariant: every integer in a wide sweep matches exactly
	// one bracket in each configured set.
	for year := 1700; year <= 2200; year++ {
		matches := 0
		for _, b := range YearBrackets {
			if b.Contains(float64(year)) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("year %d matched %d brackets, expected exactly 1", year, matches)
		}
	}
	for area := 0; area <= 20000; area++ {
		matches := 0
		for _, b := range AreaBrackets {
			if b.Contains(float64(area)) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("area %d matched %d brackets, expected exactly 1", area, matches)
		}
	}
}
