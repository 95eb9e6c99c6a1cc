package similarity

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/julienpequegnot/docdist/internal/freq"
)

func TestScoreWords(t *testing.T) {
	a := freq.Words([]string{"the", "cat", "sat"})
	b := freq.Words([]string{"the", "dog", "sat"})

	score, err := Score(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.67 {
		t.Errorf("expected 0.67, got %f", score)
	}
}

func TestScoreCases(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]int
		want float64
	}{
		{"identical", map[string]int{"a": 2, "b": 1}, map[string]int{"a": 2, "b": 1}, 1.0},
		{"disjoint", map[string]int{"a": 1}, map[string]int{"b": 4}, 0.0},
		{"one empty", map[string]int{"a": 3}, map[string]int{}, 0.0},
		{"letters", freq.Letters("hello"), freq.Letters("yellow"), 0.73},
		{"count difference", map[string]int{"a": 3}, map[string]int{"a": 1}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}

			swapped, err := Score(tt.b, tt.a)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if swapped != got {
				t.Errorf("score not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestScoreBothEmpty(t *testing.T) {
	_, err := Score(map[string]int{}, nil)
	if !errors.Is(err, ErrEmptyFrequencies) {
		t.Errorf("expected ErrEmptyFrequencies, got %v", err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.0 / 3.0, 0.67},
		{0.125, 0.12},
		{0.375, 0.38},
		{1, 1},
	}

	for _, tt := range tests {
		if got := Round(tt.in, 2); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMostFrequent(t *testing.T) {
	got := MostFrequent(map[string]int{"a": 2, "b": 1}, map[string]int{"a": 1, "c": 3})
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMostFrequentSingleSide(t *testing.T) {
	got := MostFrequent(map[string]int{"zebra": 5, "apple": 5, "mango": 1}, nil)
	want := []string{"apple", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMostFrequentEmpty(t *testing.T) {
	got := MostFrequent(nil, map[string]int{})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %#v", got)
	}
}

func TestMostFrequentSortedUnique(t *testing.T) {
	a := freq.Words([]string{"x", "y", "z", "y", "x"})
	b := freq.Words([]string{"z", "z", "y", "x"})

	got := MostFrequent(a, b)
	if !sort.StringsAreSorted(got) {
		t.Errorf("result not sorted: %v", got)
	}

	seen := make(map[string]bool)
	for _, w := range got {
		if seen[w] {
			t.Errorf("duplicate word %q in %v", w, got)
		}
		seen[w] = true
	}

	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
