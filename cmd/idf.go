package cmd

import (
	"fmt"
	"log/slog"

	"github.com/julienpequegnot/docdist/internal/tfidf"
	"github.com/spf13/cobra"
)

var idfCmd = &cobra.Command{
	Use:   "idf <doc> [docs...]",
	Short: "Inverse document frequencies of a collection",
	Long: `Prints log10(documents / documents containing the word) for every word in
the collection. Words found in every document score 0.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIDF,
}

var idfTop int

func init() {
	rootCmd.AddCommand(idfCmd)
	idfCmd.Flags().IntVarP(&idfTop, "top", "n", 0, "Number of words to show (0 for all)")
}

func runIDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	idf, err := tfidf.NewEngine(cfg.NewLoader()).IDF(args)
	if err != nil {
		return err
	}
	slog.Debug("idf computed", "documents", len(args), "words", len(idf))

	title := fmt.Sprintf("IDF: %d documents", len(args))
	printEntries(title, tfidf.Top(entriesOf(idf), topOrDefault(idfTop, cfg.Output.Top)), cfg.Output.Precision)
	return nil
}
