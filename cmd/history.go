package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/docdist/internal/config"
	"github.com/julienpequegnot/docdist/internal/database"
	"github.com/julienpequegnot/docdist/internal/history"
	"github.com/julienpequegnot/docdist/internal/tfidf"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved TF-IDF runs",
	Long:  `Lists rankings saved with 'docdist tfidf --save', most recent first.`,
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a saved TF-IDF run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a saved TF-IDF run",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	historyLimit int
	showTop      int
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(showCmd)
	historyCmd.AddCommand(deleteCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum runs to show")
	showCmd.Flags().IntVarP(&showTop, "top", "n", 0, "Show only the N most distinctive words, highest first")
}

func openHistory() (*database.DB, *history.Repository, error) {
	db, err := database.New(config.DBPath())
	if err != nil {
		return nil, nil, err
	}
	return db, history.NewRepository(db), nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs. Use 'docdist tfidf --save' to record one.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-16s  %-6s  %s", "#", "DATE", "DOCS", "DOCUMENT")))
	fmt.Println(strings.Repeat("─", 80))

	for _, r := range runs {
		document := filepath.Base(r.Document)
		if len(document) > 45 {
			document = document[:42] + "..."
		}

		fmt.Printf(" %s  %s  %-6d  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", r.ID)),
			dateStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			r.CorpusSize,
			document,
		)
	}

	return nil
}

func parseRunID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", arg)
	}
	return id, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := repo.Get(id)
	if errors.Is(err, history.ErrRunNotFound) {
		return fmt.Errorf("run not found: %d", id)
	}
	if err != nil {
		return err
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	fmt.Println(divider)
	fmt.Printf("%s %s\n", labelStyle.Render("Document:"), run.Document)
	fmt.Printf("%s %s\n", labelStyle.Render("Saved:"), run.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("%s\n", labelStyle.Render("Collection:"))
	for _, p := range run.Corpus {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println(divider)

	entries := run.Entries
	if top := topOrDefault(showTop, cfg.Output.Top); top > 0 {
		entries = tfidf.Top(entries, top)
	}
	printEntries(fmt.Sprintf("Run %d", run.ID), entries, cfg.Output.Precision)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(id); err != nil {
		if errors.Is(err, history.ErrRunNotFound) {
			return fmt.Errorf("run not found: %d", id)
		}
		return err
	}

	fmt.Printf("Deleted run %d\n", id)
	return nil
}
