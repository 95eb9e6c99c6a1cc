package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julienpequegnot/docdist/internal/database"
	"github.com/julienpequegnot/docdist/internal/tfidf"
)

var ErrRunNotFound = errors.New("run not found")

// Run is a saved TF-IDF ranking of one document against a collection.
type Run struct {
	ID         int64
	Document   string
	CorpusSize int
	CreatedAt  time.Time
	Corpus     []string
	Entries    []tfidf.Entry
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a ranking and the collection it was computed against. Entry
// order is preserved.
func (r *Repository) Save(document string, corpus []string, entries []tfidf.Entry) (*Run, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (document, corpus_size, created_at) VALUES (?, ?, ?)`,
		document, len(corpus), time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	for i, path := range corpus {
		if _, err := tx.Exec(
			`INSERT INTO run_documents (run_id, position, path) VALUES (?, ?, ?)`,
			id, i, path,
		); err != nil {
			return nil, fmt.Errorf("failed to insert run document: %w", err)
		}
	}

	for i, e := range entries {
		if _, err := tx.Exec(
			`INSERT INTO run_entries (run_id, position, token, score) VALUES (?, ?, ?, ?)`,
			id, i, e.Token, e.Score,
		); err != nil {
			return nil, fmt.Errorf("failed to insert run entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.Get(id)
}

func (r *Repository) Get(id int64) (*Run, error) {
	var run Run
	err := r.db.QueryRow(`
		SELECT id, document, corpus_size, created_at FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Document, &run.CorpusSize, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	docRows, err := r.db.Query(`SELECT path FROM run_documents WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer docRows.Close()

	for docRows.Next() {
		var path string
		if err := docRows.Scan(&path); err != nil {
			return nil, err
		}
		run.Corpus = append(run.Corpus, path)
	}
	if err := docRows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := r.db.Query(`SELECT token, score FROM run_entries WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e tfidf.Entry
		if err := entryRows.Scan(&e.Token, &e.Score); err != nil {
			return nil, err
		}
		run.Entries = append(run.Entries, e)
	}
	return &run, entryRows.Err()
}

// List returns the most recent runs without their corpus or entries.
func (r *Repository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT id, document, corpus_size, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Document, &run.CorpusSize, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}
