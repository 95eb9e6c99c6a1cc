package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/julienpequegnot/docdist/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docdist",
	Short: "Compare documents by word statistics",
	Long: `Docdist loads plain text, HTML and RSS/Atom documents and compares them
using word and letter frequencies, shared dominant words and TF-IDF rankings.

Pipeline: load → tokenize → count → compare / rank`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.Debug("config loaded", "dir", config.Dir(), "lowercase", cfg.Loader.Lowercase)
	return cfg, nil
}
