package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/julienpequegnot/docdist/internal/config"
	"github.com/julienpequegnot/docdist/internal/database"
	"github.com/julienpequegnot/docdist/internal/history"
	"github.com/julienpequegnot/docdist/internal/tfidf"
	"github.com/spf13/cobra"
)

var tfidfCmd = &cobra.Command{
	Use:   "tfidf <doc> <docs...>",
	Short: "Rank the words of a document by TF-IDF",
	Long: `Multiplies each word's term frequency in <doc> by its inverse document
frequency over <docs...> and prints the words in ascending score order
(ties alphabetical). Every word of <doc> must occur somewhere in <docs...>;
use --include-self to add <doc> to the collection.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTFIDF,
}

var (
	tfidfTop         int
	tfidfSave        bool
	tfidfIncludeSelf bool
)

func init() {
	rootCmd.AddCommand(tfidfCmd)
	tfidfCmd.Flags().IntVarP(&tfidfTop, "top", "n", 0, "Show only the N most distinctive words, highest first")
	tfidfCmd.Flags().BoolVar(&tfidfSave, "save", false, "Save the ranking to the run history")
	tfidfCmd.Flags().BoolVar(&tfidfIncludeSelf, "include-self", false, "Add <doc> to the collection if missing")
}

func runTFIDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, corpus := args[0], args[1:]
	if tfidfIncludeSelf && !slices.Contains(corpus, doc) {
		corpus = append(slices.Clone(corpus), doc)
	}

	ranking, err := tfidf.NewEngine(cfg.NewLoader()).TFIDF(doc, corpus)
	if err != nil {
		return err
	}
	slog.Debug("ranking computed", "document", doc, "documents", len(corpus), "words", len(ranking))

	shown := ranking
	if top := topOrDefault(tfidfTop, cfg.Output.Top); top > 0 {
		shown = tfidf.Top(ranking, top)
	}
	printEntries("TF-IDF: "+doc, shown, cfg.Output.Precision)

	if tfidfSave || cfg.History.Enabled {
		run, err := saveRun(doc, corpus, ranking)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("\nSaved as run %d\n", run.ID)
	}
	return nil
}

func saveRun(doc string, corpus []string, ranking []tfidf.Entry) (*history.Run, error) {
	if err := os.MkdirAll(config.Dir(), 0755); err != nil {
		return nil, err
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return history.NewRepository(db).Save(doc, corpus, ranking)
}
