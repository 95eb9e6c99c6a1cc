package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/docdist/internal/tfidf"
)

func entriesOf(values map[string]float64) []tfidf.Entry {
	entries := make([]tfidf.Entry, 0, len(values))
	for token, v := range values {
		entries = append(entries, tfidf.Entry{Token: token, Score: v})
	}
	return entries
}

func printEntries(title string, entries []tfidf.Entry, precision int) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	fmt.Println(headerStyle.Render(title))
	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-12s  %s", "#", "SCORE", "WORD")))
	fmt.Println(strings.Repeat("─", 50))

	for i, e := range entries {
		fmt.Printf(" %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", i+1)),
			scoreStyle.Render(fmt.Sprintf("%-12.*f", precision, e.Score)),
			e.Token,
		)
	}
}
