package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/docdist/internal/freq"
	"github.com/julienpequegnot/docdist/internal/similarity"
	"github.com/spf13/cobra"
)

var commonCmd = &cobra.Command{
	Use:   "common <doc-a> <doc-b>",
	Short: "Most frequent words across two documents",
	Long: `Adds up the word counts of both documents and prints every word sharing
the highest combined count, in alphabetical order.`,
	Args: cobra.ExactArgs(2),
	RunE: runCommon,
}

func init() {
	rootCmd.AddCommand(commonCmd)
}

func runCommon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loader := cfg.NewLoader()

	tokensA, err := loader.Tokens(args[0])
	if err != nil {
		return err
	}
	tokensB, err := loader.Tokens(args[1])
	if err != nil {
		return err
	}

	countsA, countsB := freq.Words(tokensA), freq.Words(tokensB)
	words := similarity.MostFrequent(countsA, countsB)
	if len(words) == 0 {
		fmt.Println("Both documents are empty.")
		return nil
	}

	wordStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	combined := countsA[words[0]] + countsB[words[0]]
	fmt.Printf("%s %s\n", wordStyle.Render(strings.Join(words, ", ")),
		countStyle.Render(fmt.Sprintf("(%d occurrences each)", combined)))
	return nil
}
