package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Documents larger than this are rejected rather than read into memory.
const maxDocumentSize = 64 * 1024 * 1024

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
	}
	return data, nil
}

func htmlText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

func (l *Loader) feedText(r io.Reader) (string, error) {
	feed, err := l.parser.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse feed: %w", err)
	}

	var parts []string
	for _, item := range feed.Items {
		content := item.Content
		if content == "" {
			content = item.Description
		}

		text, err := htmlText(strings.NewReader(content))
		if err != nil {
			return "", err
		}
		parts = append(parts, item.Title, text)
	}

	return strings.Join(parts, "\n"), nil
}
