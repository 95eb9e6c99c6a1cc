package cmd

import (
	"github.com/julienpequegnot/docdist/internal/tfidf"
	"github.com/spf13/cobra"
)

var tfCmd = &cobra.Command{
	Use:   "tf <doc>",
	Short: "Term frequencies of a document",
	Long:  `Prints each word's share of the document's total word count, most frequent first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTF,
}

var tfTop int

func init() {
	rootCmd.AddCommand(tfCmd)
	tfCmd.Flags().IntVarP(&tfTop, "top", "n", 0, "Number of words to show (0 for all)")
}

func runTF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tf, err := tfidf.NewEngine(cfg.NewLoader()).TF(args[0])
	if err != nil {
		return err
	}

	printEntries("TF: "+args[0], tfidf.Top(entriesOf(tf), topOrDefault(tfTop, cfg.Output.Top)), cfg.Output.Precision)
	return nil
}

func topOrDefault(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}
