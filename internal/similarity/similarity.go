// Package similarity compares frequency tables of two texts or words.
package similarity

import (
	"errors"
	"strconv"
)

// ErrEmptyFrequencies is returned when both frequency tables are empty and
// no similarity can be computed.
var ErrEmptyFrequencies = errors.New("cannot compare two empty frequency tables")

// Score returns 1 - diff/total rounded to two decimal places, where diff sums
// the per-key count differences (a key missing on one side contributes its
// whole count) and total sums every count on both sides. The result lies in
// [0, 1] and does not depend on argument order.
func Score(a, b map[string]int) (float64, error) {
	var diff, total int

	for key, countA := range a {
		if countB, ok := b[key]; ok {
			diff += abs(countA - countB)
			total += countA + countB
		} else {
			diff += countA
			total += countA
		}
	}

	for key, countB := range b {
		if _, ok := a[key]; !ok {
			diff += countB
			total += countB
		}
	}

	if total == 0 {
		return 0, ErrEmptyFrequencies
	}

	return Round(1-float64(diff)/float64(total), 2), nil
}

// Round rounds x to the given number of decimal places using the exact
// decimal value of x, so halfway cases follow round-half-even.
func Round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
