package cmd

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/docdist/internal/freq"
	"github.com/julienpequegnot/docdist/internal/similarity"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <doc-a> <doc-b>",
	Short: "Word-frequency similarity of two documents",
	Long: `Compares the word frequencies of two documents and prints a similarity
between 0 (no shared words) and 1 (identical word counts).`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var lettersCmd = &cobra.Command{
	Use:   "letters <word-a> <word-b>",
	Short: "Letter-frequency similarity of two words",
	Args:  cobra.ExactArgs(2),
	RunE:  runLetters,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(lettersCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
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
	slog.Debug("documents loaded", "a_words", len(tokensA), "b_words", len(tokensB))

	score, err := similarity.Score(freq.Words(tokensA), freq.Words(tokensB))
	if err != nil {
		return fmt.Errorf("compare %s and %s: %w", args[0], args[1], err)
	}

	printSimilarity(args[0], args[1], score)
	return nil
}

func runLetters(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loader := cfg.NewLoader()

	a, b := loader.Normalize(args[0]), loader.Normalize(args[1])
	score, err := similarity.Score(freq.Letters(a), freq.Letters(b))
	if err != nil {
		return fmt.Errorf("compare %q and %q: %w", args[0], args[1], err)
	}

	printSimilarity(a, b, score)
	return nil
}

func printSimilarity(a, b string, score float64) {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	fmt.Printf("%s %s\n", labelStyle.Render("A:"), a)
	fmt.Printf("%s %s\n", labelStyle.Render("B:"), b)
	fmt.Printf("%s %s\n", labelStyle.Render("Similarity:"), scoreStyle.Render(fmt.Sprintf("%.2f", score)))
}
