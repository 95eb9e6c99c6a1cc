// Package document loads text documents from disk and turns them into the
// normalized, lowercase word sequences the statistics packages work on.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/gofeed"
)

// DefaultPunctuation is the ASCII punctuation set stripped from every document.
const DefaultPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type Loader struct {
	punctuation string
	lowercase   bool
	parser      *gofeed.Parser
}

func NewLoader(punctuation string, lowercase bool) *Loader {
	return &Loader{
		punctuation: punctuation,
		lowercase:   lowercase,
		parser:      gofeed.NewParser(),
	}
}

// Default returns a loader using DefaultPunctuation and lowercasing.
func Default() *Loader {
	return NewLoader(DefaultPunctuation, true)
}

// Load reads the file at path and returns its normalized text. HTML files and
// RSS/Atom feeds are reduced to their text content first.
func (l *Loader) Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	var raw string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		raw, err = htmlText(f)
	case ".xml", ".rss", ".atom", ".feed":
		raw, err = l.feedText(f)
	default:
		var data []byte
		data, err = readAll(f)
		raw = string(data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return l.Normalize(raw), nil
}

// Tokens loads the document at path and splits it into words.
func (l *Loader) Tokens(path string) ([]string, error) {
	text, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(text), nil
}

// Normalize trims surrounding whitespace, drops punctuation and lowercases.
func (l *Loader) Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(l.punctuation, r) {
			return -1
		}
		return r
	}, text)
	if l.lowercase {
		text = strings.ToLower(text)
	}
	return text
}
