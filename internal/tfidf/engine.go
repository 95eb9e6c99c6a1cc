package tfidf

import "fmt"

// TokenSource loads a document and returns its words.
type TokenSource interface {
	Tokens(path string) ([]string, error)
}

// Engine runs the TF, IDF and TF-IDF computations on files.
type Engine struct {
	source TokenSource
}

func NewEngine(source TokenSource) *Engine {
	return &Engine{source: source}
}

// TF returns the term frequencies of the document at path.
func (e *Engine) TF(path string) (map[string]float64, error) {
	tokens, err := e.source.Tokens(path)
	if err != nil {
		return nil, err
	}

	tf, err := TermFrequency(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tf, nil
}

// IDF returns inverse document frequencies over the documents at paths. Each
// document is read once.
func (e *Engine) IDF(paths []string) (map[string]float64, error) {
	return e.idf(paths, make(map[string][]string))
}

// TFIDF ranks the words of the document at path against the collection at
// paths. The document itself is read only once even when it is part of the
// collection.
func (e *Engine) TFIDF(path string, paths []string) ([]Entry, error) {
	loaded := make(map[string][]string)

	tokens, err := e.tokens(path, loaded)
	if err != nil {
		return nil, err
	}
	tf, err := TermFrequency(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	idf, err := e.idf(paths, loaded)
	if err != nil {
		return nil, err
	}

	return Rank(tf, idf)
}

func (e *Engine) idf(paths []string, loaded map[string][]string) (map[string]float64, error) {
	corpus := NewCorpus()
	for _, p := range paths {
		tokens, err := e.tokens(p, loaded)
		if err != nil {
			return nil, err
		}
		corpus.AddDocument(tokens)
	}
	return corpus.IDF(), nil
}

func (e *Engine) tokens(path string, loaded map[string][]string) ([]string, error) {
	if tokens, ok := loaded[path]; ok {
		return tokens, nil
	}

	tokens, err := e.source.Tokens(path)
	if err != nil {
		return nil, err
	}
	loaded[path] = tokens
	return tokens, nil
}
