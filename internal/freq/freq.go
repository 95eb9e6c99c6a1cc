// Package freq builds frequency tables over characters or words.
package freq

import "github.com/julienpequegnot/docdist/internal/document"

// Count maps each distinct item to its number of occurrences in items.
// The counts always sum to len(items).
func Count[T comparable](items []T) map[T]int {
	counts := make(map[T]int)
	for _, item := range items {
		counts[item]++
	}
	return counts
}

// Words counts word tokens.
func Words(tokens []string) map[string]int {
	return Count(tokens)
}

// Letters counts the characters of a single word.
func Letters(word string) map[string]int {
	return Count(document.Letters(word))
}

// Total returns the sum of all counts in a frequency table.
func Total[T comparable](counts map[T]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
