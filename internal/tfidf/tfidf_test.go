package tfidf

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTermFrequency(t *testing.T) {
	tf, err := TermFrequency([]string{"cat", "dog", "cat", "bird"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]float64{"cat": 0.5, "dog": 0.25, "bird": 0.25}
	if !reflect.DeepEqual(tf, want) {
		t.Errorf("expected %v, got %v", want, tf)
	}
}

func TestTermFrequencySumsToOne(t *testing.T) {
	tokens := []string{"a", "b", "c", "a", "d", "e", "a", "f", "b"}
	tf, err := TermFrequency(tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, v := range tf {
		if v <= 0 || v > 1 {
			t.Errorf("tf value %f outside (0, 1]", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("expected tf values to sum to 1, got %f", sum)
	}
}

func TestTermFrequencyEmpty(t *testing.T) {
	_, err := TermFrequency(nil)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestInverseDocumentFrequency(t *testing.T) {
	docs := [][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "sat", "the"},
		{"the", "bird"},
	}

	idf := InverseDocumentFrequency(docs)

	if idf["the"] != 0 {
		t.Errorf("expected idf(the) = 0, got %f", idf["the"])
	}
	if want := math.Log10(3.0 / 2.0); idf["sat"] != want {
		t.Errorf("expected idf(sat) = %f, got %f", want, idf["sat"])
	}
	if want := math.Log10(3.0); idf["cat"] != want {
		t.Errorf("expected idf(cat) = %f, got %f", want, idf["cat"])
	}
	if len(idf) != 5 {
		t.Errorf("expected 5 terms, got %d", len(idf))
	}

	for term, v := range idf {
		inAll := true
		for _, doc := range docs {
			if !contains(doc, term) {
				inAll = false
			}
		}
		if (v == 0) != inAll {
			t.Errorf("term %q: idf %f, in every document: %v", term, v, inAll)
		}
	}
}

func contains(doc []string, term string) bool {
	for _, w := range doc {
		if w == term {
			return true
		}
	}
	return false
}

func TestCorpusCountsEmptyDocuments(t *testing.T) {
	corpus := NewCorpus()
	corpus.AddDocument([]string{"word"})
	corpus.AddDocument(nil)

	if corpus.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", corpus.Len())
	}
	if want := math.Log10(2); corpus.IDF()["word"] != want {
		t.Errorf("expected idf %f, got %f", want, corpus.IDF()["word"])
	}
}

func TestInverseDocumentFrequencyEmptyCollection(t *testing.T) {
	idf := InverseDocumentFrequency(nil)
	if len(idf) != 0 {
		t.Errorf("expected empty idf, got %v", idf)
	}
}

func TestRankOrdering(t *testing.T) {
	tf := map[string]float64{"b": 0.25, "a": 0.25, "c": 0.5}
	idf := map[string]float64{"a": 1, "b": 1, "c": 0, "d": 3}

	ranking, err := Rank(tf, idf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{{"c", 0}, {"a", 0.25}, {"b", 0.25}}
	if !reflect.DeepEqual(ranking, want) {
		t.Errorf("expected %v, got %v", want, ranking)
	}
}

func TestRankUnknownToken(t *testing.T) {
	_, err := Rank(map[string]float64{"ghost": 1}, map[string]float64{"cat": 0})
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}

	var unknown *UnknownTokenError
	if !errors.As(err, &unknown) || unknown.Token != "ghost" {
		t.Errorf("expected UnknownTokenError for ghost, got %v", err)
	}
}

func TestTop(t *testing.T) {
	ranking := []Entry{{"c", 0}, {"a", 0.25}, {"b", 0.25}, {"d", 0.5}}

	top := Top(ranking, 3)
	want := []Entry{{"d", 0.5}, {"a", 0.25}, {"b", 0.25}}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("expected %v, got %v", want, top)
	}

	if all := Top(ranking, 0); len(all) != len(ranking) {
		t.Errorf("expected %d entries, got %d", len(ranking), len(all))
	}
	if ranking[0].Token != "c" {
		t.Error("Top must not reorder its input")
	}
}
