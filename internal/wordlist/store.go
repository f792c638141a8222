// Package wordlist persists ordered lists of words under string keys.
package wordlist

import (
	"context"
	"errors"
)

// Keys of the two lists kept by the application.
const (
	KeyHistory   = "dictionaryHistory"
	KeyFavorites = "dictionaryFavorites"
)

// ErrStorageUnavailable is wrapped by every Load or Save failure.
// Callers are expected to degrade to session-only state rather than abort.
var ErrStorageUnavailable = errors.New("word list storage unavailable")

// ErrCorruptList is wrapped, together with ErrStorageUnavailable, when the
// stored list exists but cannot be decoded. Such a list may be overwritten.
var ErrCorruptList = errors.New("stored word list is corrupt")

//go:generate mockgen -source=store.go -destination=../mocks/wordlist/mock_store.go -package=mock_wordlist Store

// Store loads and saves ordered word lists.
//
// Load returns an empty, non-nil slice whenever it cannot produce the stored
// list, so the result is always usable even when err is non-nil.
// A key that was never saved is not an error.
// Save overwrites whatever was stored under key.
type Store interface {
	Load(ctx context.Context, key string) ([]string, error)
	Save(ctx context.Context, key string, words []string) error
}
