// Package datasync moves the search history and favorites between the word
// book and YAML files.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/lexi/internal/wordbook"
)

// WordLists is the exported form of both lists.
type WordLists struct {
	History   []string `yaml:"history"`
	Favorites []string `yaml:"favorites"`
}

// WordBook is the part of the word book that import and export need.
type WordBook interface {
	History() []string
	Favorites() []string
	IsFavorite(word string) bool
	RecordSearch(ctx context.Context, word string) error
	ToggleFavorite(ctx context.Context, word string) (bool, error)
}

// ImportResult tracks counts for each list.
type ImportResult struct {
	HistoryNew       int
	HistorySkipped   int
	FavoritesNew     int
	FavoritesSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer merges word lists into a word book through its own operations,
// so merged lists keep the no-duplicates rule.
type Importer struct {
	book   WordBook
	writer io.Writer
}

func NewImporter(book WordBook, writer io.Writer) *Importer {
	return &Importer{
		book:   book,
		writer: writer,
	}
}

// Import puts imported history words in front of the current history in
// their imported order and appends imported favorites that are missing.
func (imp *Importer) Import(ctx context.Context, lists WordLists, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	history := make(map[string]bool)
	for _, word := range imp.book.History() {
		history[word] = true
	}
	// RecordSearch prepends, so the oldest imported word goes first.
	for i := len(lists.History) - 1; i >= 0; i-- {
		word := wordbook.Normalize(lists.History[i])
		if word == "" {
			continue
		}
		if history[word] {
			fmt.Fprintf(imp.writer, "  [SKIP]  history %q\n", word)
			result.HistorySkipped++
			continue
		}
		if !opts.DryRun {
			if err := imp.book.RecordSearch(ctx, word); err != nil {
				return nil, fmt.Errorf("RecordSearch(%s) > %w", word, err)
			}
		}
		history[word] = true
		fmt.Fprintf(imp.writer, "  [NEW]  history %q\n", word)
		result.HistoryNew++
	}

	favorites := make(map[string]bool)
	for _, word := range lists.Favorites {
		word = wordbook.Normalize(word)
		if word == "" {
			continue
		}
		if favorites[word] || imp.book.IsFavorite(word) {
			fmt.Fprintf(imp.writer, "  [SKIP]  favorite %q\n", word)
			result.FavoritesSkipped++
			continue
		}
		if !opts.DryRun {
			if _, err := imp.book.ToggleFavorite(ctx, word); err != nil {
				return nil, fmt.Errorf("ToggleFavorite(%s) > %w", word, err)
			}
		}
		favorites[word] = true
		fmt.Fprintf(imp.writer, "  [NEW]  favorite %q\n", word)
		result.FavoritesNew++
	}

	return &result, nil
}

// Exporter reads both lists from a word book.
type Exporter struct {
	book WordBook
}

func NewExporter(book WordBook) *Exporter {
	return &Exporter{book: book}
}

func (e *Exporter) Export() WordLists {
	return WordLists{
		History:   e.book.History(),
		Favorites: e.book.Favorites(),
	}
}
