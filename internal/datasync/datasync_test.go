package datasync

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_wordlist "github.com/at-ishikawa/lexi/internal/mocks/wordlist"
	"github.com/at-ishikawa/lexi/internal/wordbook"
	"github.com/at-ishikawa/lexi/internal/wordlist"
)

func newTestManager(t *testing.T, history, favorites []string) (*wordbook.Manager, *wordlist.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	store := wordlist.NewMemoryStore()
	require.NoError(t, store.Save(ctx, wordlist.KeyHistory, history))
	require.NoError(t, store.Save(ctx, wordlist.KeyFavorites, favorites))
	return wordbook.NewManager(ctx, store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestImporter_Import(t *testing.T) {
	tests := []struct {
		name          string
		history       []string
		favorites     []string
		lists         WordLists
		opts          ImportOptions
		want          *ImportResult
		wantHistory   []string
		wantFavorites []string
		wantOutput    []string
	}{
		{
			name:      "into empty lists",
			history:   []string{},
			favorites: []string{},
			lists: WordLists{
				History:   []string{"hello", "world"},
				Favorites: []string{"world"},
			},
			want:          &ImportResult{HistoryNew: 2, FavoritesNew: 1},
			wantHistory:   []string{"hello", "world"},
			wantFavorites: []string{"world"},
			wantOutput: []string{
				`  [NEW]  history "world"`,
				`  [NEW]  history "hello"`,
				`  [NEW]  favorite "world"`,
			},
		},
		{
			name:      "merge keeps existing words once",
			history:   []string{"apple", "hello"},
			favorites: []string{"apple"},
			lists: WordLists{
				History:   []string{"Hello", "banana", "banana", ""},
				Favorites: []string{"APPLE", "banana", "Banana"},
			},
			want:          &ImportResult{HistoryNew: 1, HistorySkipped: 2, FavoritesNew: 1, FavoritesSkipped: 2},
			wantHistory:   []string{"banana", "apple", "hello"},
			wantFavorites: []string{"apple", "banana"},
			wantOutput: []string{
				`  [SKIP]  history "hello"`,
				`  [SKIP]  favorite "apple"`,
			},
		},
		{
			name:      "dry run changes nothing",
			history:   []string{"apple"},
			favorites: []string{},
			lists: WordLists{
				History:   []string{"hello", "hello", "apple"},
				Favorites: []string{"hello", "hello"},
			},
			opts:          ImportOptions{DryRun: true},
			want:          &ImportResult{HistoryNew: 1, HistorySkipped: 2, FavoritesNew: 1, FavoritesSkipped: 1},
			wantHistory:   []string{"apple"},
			wantFavorites: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			manager, store := newTestManager(t, tt.history, tt.favorites)
			var output bytes.Buffer

			got, err := NewImporter(manager, &output).Import(ctx, tt.lists, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHistory, manager.History())
			assert.Equal(t, tt.wantFavorites, manager.Favorites())
			for _, want := range tt.wantOutput {
				assert.Contains(t, output.String(), want)
			}

			stored, err := store.Load(ctx, wordlist.KeyHistory)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHistory, stored)
		})
	}
}

func TestImporter_Import_storageFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock_wordlist.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]string{}, nil).Times(2)
	store.EXPECT().Save(gomock.Any(), wordlist.KeyHistory, gomock.Any()).Return(wordlist.ErrStorageUnavailable)
	manager := wordbook.NewManager(ctx, store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := NewImporter(manager, io.Discard).Import(ctx, WordLists{History: []string{"hello"}}, ImportOptions{})
	assert.ErrorIs(t, err, wordlist.ErrStorageUnavailable)
}

func TestExporter_Export(t *testing.T) {
	manager, _ := newTestManager(t, []string{"hello", "world"}, []string{"world"})

	got := NewExporter(manager).Export()
	assert.Equal(t, WordLists{
		History:   []string{"hello", "world"},
		Favorites: []string{"world"},
	}, got)
}
