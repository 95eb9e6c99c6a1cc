package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julienpequegnot/docdist/internal/config"
	"github.com/julienpequegnot/docdist/internal/database"
	"github.com/julienpequegnot/docdist/internal/history"
)

func writeDocs(t *testing.T, docs map[string]string) (string, map[string]string) {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string, len(docs))
	for name, content := range docs {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		paths[name] = p
	}
	return dir, paths
}

func TestTFIDFCommandSavesRun(t *testing.T) {
	t.Setenv("DOCDIST_HOME", t.TempDir())
	_, paths := writeDocs(t, map[string]string{
		"a.txt": "the cat sat",
		"b.txt": "the dog sat",
	})

	rootCmd.SetArgs([]string{"tfidf", "--save", paths["a.txt"], paths["b.txt"], "--include-self"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tfidf failed: %v", err)
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runs, err := history.NewRepository(db).List(10)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].CorpusSize != 2 {
		t.Errorf("expected collection of 2 documents, got %d", runs[0].CorpusSize)
	}
}

func TestCompareCommandRejectsEmptyDocuments(t *testing.T) {
	t.Setenv("DOCDIST_HOME", t.TempDir())
	_, paths := writeDocs(t, map[string]string{
		"empty1.txt": "",
		"empty2.txt": "  ...  ",
	})

	rootCmd.SetArgs([]string{"compare", paths["empty1.txt"], paths["empty2.txt"]})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error comparing two empty documents")
	}
}

func TestTopOrDefault(t *testing.T) {
	if got := topOrDefault(3, 10); got != 3 {
		t.Errorf("expected flag value 3, got %d", got)
	}
	if got := topOrDefault(0, 10); got != 10 {
		t.Errorf("expected configured value 10, got %d", got)
	}
}
