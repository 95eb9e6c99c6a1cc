// Package tfidf computes term frequency, inverse document frequency and
// TF-IDF rankings over tokenized documents.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/julienpequegnot/docdist/internal/freq"
)

var (
	// ErrEmptyDocument is returned when term frequencies are requested for a
	// document without any words.
	ErrEmptyDocument = errors.New("document contains no words")

	// ErrUnknownToken is matched by every *UnknownTokenError.
	ErrUnknownToken = errors.New("unknown token")
)

// UnknownTokenError reports a document word that has no IDF value because it
// never occurs in the IDF collection.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q: not present in any IDF document", e.Token)
}

func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

// Entry is one word of a TF-IDF ranking.
type Entry struct {
	Token string
	Score float64
}

// TermFrequency divides each word's count by the document length.
func TermFrequency(tokens []string) (map[string]float64, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyDocument
	}

	counts := freq.Words(tokens)
	tf := make(map[string]float64, len(counts))
	for term, count := range counts {
		tf[term] = float64(count) / float64(len(tokens))
	}
	return tf, nil
}

// Corpus accumulates document frequencies one document at a time.
type Corpus struct {
	documentFreq map[string]int // term -> number of documents containing it
	docCount     int
}

func NewCorpus() *Corpus {
	return &Corpus{
		documentFreq: make(map[string]int),
	}
}

// AddDocument records a document. Empty documents still count toward the
// collection size.
func (c *Corpus) AddDocument(tokens []string) {
	for term := range freq.Words(tokens) {
		c.documentFreq[term]++
	}
	c.docCount++
}

// Len returns the number of documents added so far.
func (c *Corpus) Len() int {
	return c.docCount
}

// IDF returns log10(documents / documents containing term) for every term
// seen in the corpus. A term found in every document scores exactly 0.
func (c *Corpus) IDF() map[string]float64 {
	idf := make(map[string]float64, len(c.documentFreq))
	for term, df := range c.documentFreq {
		idf[term] = math.Log10(float64(c.docCount) / float64(df))
	}
	return idf
}

// InverseDocumentFrequency computes IDF values for a collection of tokenized
// documents.
func InverseDocumentFrequency(docs [][]string) map[string]float64 {
	corpus := NewCorpus()
	for _, doc := range docs {
		corpus.AddDocument(doc)
	}
	return corpus.IDF()
}

// Rank multiplies every term frequency by its IDF and orders the result by
// ascending score, breaking ties alphabetically.
func Rank(tf, idf map[string]float64) ([]Entry, error) {
	ranking := make([]Entry, 0, len(tf))
	for term, f := range tf {
		inv, ok := idf[term]
		if !ok {
			return nil, &UnknownTokenError{Token: term}
		}
		ranking = append(ranking, Entry{Token: term, Score: f * inv})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score < ranking[j].Score
		}
		return ranking[i].Token < ranking[j].Token
	})
	return ranking, nil
}

// Top returns the n most distinctive entries of a ranking, highest score
// first. Ties stay alphabetical. n <= 0 returns every entry.
func Top(ranking []Entry, n int) []Entry {
	top := make([]Entry, len(ranking))
	copy(top, ranking)

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Token < top[j].Token
	})

	if n > 0 && n < len(top) {
		top = top[:n]
	}
	return top
}
