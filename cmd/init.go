package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/docdist/internal/config"
	"github.com/julienpequegnot/docdist/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docdist configuration and history database",
	Long:  `Creates the ~/.docdist directory with config.yaml and the SQLite run history.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/docdist.db\n", dir)

	fmt.Println("\nDocdist initialized! Next steps:")
	fmt.Println("  docdist compare <a> <b>          Word similarity of two documents")
	fmt.Println("  docdist tfidf <doc> <docs...>    Rank the words of a document")

	return nil
}
