// Package wordbook keeps the search history and favorite words of a user.
package wordbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/at-ishikawa/lexi/internal/wordlist"
)

// Manager holds the in-memory history and favorites and writes each list
// through to the store right after it changes.
// A Manager is not safe for concurrent use.
type Manager struct {
	store     wordlist.Store
	history   []string
	favorites []string
	// sessionOnly holds the keys whose stored list could not be read.
	// Those lists are never saved, so the stored copy is left untouched.
	sessionOnly map[string]bool
	logger      *slog.Logger
}

// NewManager loads both lists once. A list that cannot be read starts empty
// and is kept for this session only. A list whose contents are corrupt also
// starts empty but is overwritten on the next change.
func NewManager(ctx context.Context, store wordlist.Store, logger *slog.Logger) *Manager {
	m := &Manager{
		store:       store,
		sessionOnly: make(map[string]bool),
		logger:      logger.With("component", "wordbook"),
	}
	m.history = m.load(ctx, wordlist.KeyHistory)
	m.favorites = m.load(ctx, wordlist.KeyFavorites)
	return m
}

func (m *Manager) load(ctx context.Context, key string) []string {
	words, err := m.store.Load(ctx, key)
	if err == nil {
		return normalizeAll(words)
	}
	if errors.Is(err, wordlist.ErrCorruptList) {
		m.logger.WarnContext(ctx, "stored word list is corrupt, starting empty", slog.String("key", key), slog.Any("error", err))
		return []string{}
	}
	m.sessionOnly[key] = true
	m.logger.WarnContext(ctx, "failed to load word list, keeping it for this session only", slog.String("key", key), slog.Any("error", err))
	return []string{}
}

// normalizeAll lowercases words and drops later duplicates, so lists edited
// outside the program still satisfy the no-duplicates rule.
func normalizeAll(words []string) []string {
	result := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		w := Normalize(word)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		result = append(result, w)
	}
	return result
}

// Normalize returns the form a word is stored and compared in.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// RecordSearch puts word at the front of the history unless it is already
// there somewhere. The returned error only reports a failed write; the
// in-memory history is updated either way.
func (m *Manager) RecordSearch(ctx context.Context, word string) error {
	w := Normalize(word)
	if w == "" || slices.Contains(m.history, w) {
		return nil
	}

	m.history = slices.Insert(m.history, 0, w)
	return m.persist(ctx, wordlist.KeyHistory, m.history)
}

// ToggleFavorite removes word from the favorites if present and appends it
// otherwise, then persists the list. It reports whether word is a favorite
// afterwards.
func (m *Manager) ToggleFavorite(ctx context.Context, word string) (bool, error) {
	w := Normalize(word)
	if w == "" {
		return false, nil
	}

	isFavorite := false
	if i := slices.Index(m.favorites, w); i >= 0 {
		m.favorites = slices.Delete(m.favorites, i, i+1)
	} else {
		m.favorites = append(m.favorites, w)
		isFavorite = true
	}
	return isFavorite, m.persist(ctx, wordlist.KeyFavorites, m.favorites)
}

func (m *Manager) persist(ctx context.Context, key string, words []string) error {
	if m.sessionOnly[key] {
		return fmt.Errorf("%w: %s was not loaded, changes are kept for this session only", wordlist.ErrStorageUnavailable, key)
	}
	if err := m.store.Save(ctx, key, slices.Clone(words)); err != nil {
		m.logger.WarnContext(ctx, "failed to save word list", slog.String("key", key), slog.Any("error", err))
		return fmt.Errorf("store.Save(%s) > %w", key, err)
	}
	return nil
}

// History returns the searched words, most recent first.
func (m *Manager) History() []string {
	return slices.Clone(m.history)
}

// Favorites returns the favorite words in the order they were added.
func (m *Manager) Favorites() []string {
	return slices.Clone(m.favorites)
}

func (m *Manager) IsFavorite(word string) bool {
	return slices.Contains(m.favorites, Normalize(word))
}
