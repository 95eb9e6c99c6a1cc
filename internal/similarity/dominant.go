package similarity

import "sort"

// MostFrequent combines the counts of both tables and returns every key that
// shares the highest combined count, sorted alphabetically. It returns an
// empty slice when both tables are empty.
func MostFrequent(a, b map[string]int) []string {
	combined := make(map[string]int, len(a)+len(b))
	for key, count := range a {
		combined[key] += count
	}
	for key, count := range b {
		combined[key] += count
	}

	highest := 0
	for _, count := range combined {
		if count > highest {
			highest = count
		}
	}

	words := []string{}
	for key, count := range combined {
		if count == highest {
			words = append(words, key)
		}
	}

	sort.Strings(words)
	return words
}
