package document

import "strings"

// Tokenize splits normalized text on runs of whitespace. Empty fragments are
// never returned.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Letters splits a word into its characters, one string per rune.
func Letters(word string) []string {
	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, string(r))
	}
	return letters
}
