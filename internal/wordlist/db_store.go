package wordlist

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lexi/internal/database"
)

// defaultInsertBatchSize keeps each INSERT well under MySQL's limit of
// 65,535 placeholders per statement.
const defaultInsertBatchSize = 1000

// DBStore keeps lists in the word_lists table, one row per word.
type DBStore struct {
	db        *sqlx.DB
	batchSize int
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db, batchSize: defaultInsertBatchSize}
}

// Load returns the words stored under key ordered by position.
func (s *DBStore) Load(ctx context.Context, key string) ([]string, error) {
	words := []string{}
	if err := s.db.SelectContext(ctx, &words, "SELECT word FROM word_lists WHERE list_key = ? ORDER BY position", key); err != nil {
		return []string{}, fmt.Errorf("%w: db.SelectContext(word_lists) > %w", ErrStorageUnavailable, err)
	}
	return words, nil
}

// Save replaces all rows of key in a single transaction, inserting the words
// in batches.
func (s *DBStore) Save(ctx context.Context, key string, words []string) error {
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM word_lists WHERE list_key = ?", key); err != nil {
			return fmt.Errorf("delete word_lists: %w", err)
		}
		if len(words) == 0 {
			return nil
		}

		for start := 0; start < len(words); start += s.batchSize {
			batch := words[start:min(start+s.batchSize, len(words))]
			query := database.BuildMultiRowInsert("word_lists", []string{"list_key", "position", "word"}, len(batch))
			args := make([]interface{}, 0, len(batch)*3)
			for i, word := range batch {
				args = append(args, key, start+i, word)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert word_lists: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
