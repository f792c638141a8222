package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lexi/internal/dictionary"
	mock_cli "github.com/at-ishikawa/lexi/internal/mocks/cli"
	"github.com/at-ishikawa/lexi/internal/quote"
	"github.com/at-ishikawa/lexi/internal/render"
	"github.com/at-ishikawa/lexi/internal/wordbook"
)

func newTestInteractiveCLI(
	t *testing.T,
	lookup Lookup,
	quotes QuoteSource,
	manager *wordbook.Manager,
	input string,
) (*InteractiveCLI, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	terminal := render.NewTerminal(&stdout)
	terminal.DisableColor()
	controller := NewController(lookup, manager, NewTerminalScreen(terminal), newTestLogger())

	cli := NewInteractiveCLI(controller, quotes, terminal, strings.NewReader(input), &stdout)
	cli.DisableColor()
	return cli, &stdout
}

func TestInteractiveCLI_Run(t *testing.T) {
	tests := []struct {
		name     string
		sessions []error
		wantErr  bool
	}{
		{
			name:     "ends when a session ends",
			sessions: []error{nil, nil, errEnd},
		},
		{
			name:     "stops on a session error",
			sessions: []error{nil, errors.New("read failure")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			calls := make([]any, 0, len(tt.sessions))
			for _, err := range tt.sessions {
				calls = append(calls, session.EXPECT().Session(gomock.Any()).Return(err))
			}
			gomock.InOrder(calls...)

			cli, _ := newTestInteractiveCLI(t, mock_cli.NewMockLookup(ctrl), mock_cli.NewMockQuoteSource(ctrl), newTestManager(t, []string{}, []string{}), "")
			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInteractiveCLI_Session(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		history       []string
		favorites     []string
		setup         func(lookup *mock_cli.MockLookup, quotes *mock_cli.MockQuoteSource)
		wantOutput    []string
		wantHistory   []string
		wantFavorites []string
	}{
		{
			name:  "look up a word then favorite it",
			input: "hello\n/fav\n/quit\n",
			setup: func(lookup *mock_cli.MockLookup, _ *mock_cli.MockQuoteSource) {
				lookup.EXPECT().Lookup(gomock.Any(), "hello").Return(helloEntries(), nil).Times(1)
			},
			wantOutput: []string{
				`Looking up "hello"...`,
				"hello  ☆\n/həˈloʊ/\n\nnoun\n  1. A greeting.\n  2. An utterance of hello.\n     Example: \"She said hello.\"\n",
				"hello  ★\n",
				"Added hello to your favorites.",
			},
			wantHistory:   []string{"hello"},
			wantFavorites: []string{"hello"},
		},
		{
			name:  "word not found",
			input: "/search xyzzyqq\n",
			setup: func(lookup *mock_cli.MockLookup, _ *mock_cli.MockQuoteSource) {
				lookup.EXPECT().Lookup(gomock.Any(), "xyzzyqq").Return(nil, fmt.Errorf("%w: status code: 404", dictionary.ErrNotFound))
			},
			wantOutput:    []string{"Oops!\nWord not found. Please try another word.\n"},
			wantHistory:   []string{},
			wantFavorites: []string{},
		},
		{
			name:      "lists and again",
			input:     "/history\n/again 2\n/favorites\n",
			history:   []string{"world", "hello"},
			favorites: []string{},
			setup: func(lookup *mock_cli.MockLookup, _ *mock_cli.MockQuoteSource) {
				lookup.EXPECT().Lookup(gomock.Any(), "hello").Return(helloEntries(), nil)
			},
			wantOutput: []string{
				"Search History\n  1. world\n  2. hello\n",
				`Looking up "hello"...`,
				"Favorite Words\nYou have no favorite words yet\n",
			},
			wantHistory:   []string{"world", "hello"},
			wantFavorites: []string{},
		},
		{
			name:      "remove a favorite by name",
			input:     "/fav Paris\n",
			favorites: []string{"paris"},
			wantOutput: []string{
				"Removed paris from your favorites.",
			},
			wantHistory:   []string{},
			wantFavorites: []string{},
		},
		{
			name:  "quote and help",
			input: "/quote\n/help\n",
			setup: func(_ *mock_cli.MockLookup, quotes *mock_cli.MockQuoteSource) {
				quotes.EXPECT().Daily(gomock.Any()).Return(quote.Fallback)
			},
			wantOutput: []string{
				"\"Words are a lens to focus one's mind.\" - Ayn Rand\n",
				"/again <n>",
			},
			wantHistory:   []string{},
			wantFavorites: []string{},
		},
		{
			name:  "usage notices",
			input: "/search\n/again x\n/again 1\n/fav\n/unknown\n\n",
			wantOutput: []string{
				"Please enter a word.",
				"Usage: /again <n>",
				"Show /history or /favorites and pick one of the numbered words.",
				"Look up a word first or give one: /fav <word>",
				"Unknown command /unknown. Type /help to see the commands.",
			},
			wantHistory:   []string{},
			wantFavorites: []string{},
		},
		{
			name:  "last line without newline",
			input: "hello",
			setup: func(lookup *mock_cli.MockLookup, _ *mock_cli.MockQuoteSource) {
				lookup.EXPECT().Lookup(gomock.Any(), "hello").Return(helloEntries(), nil)
			},
			wantOutput:    []string{"hello  ☆\n"},
			wantHistory:   []string{"hello"},
			wantFavorites: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookup := mock_cli.NewMockLookup(ctrl)
			quotes := mock_cli.NewMockQuoteSource(ctrl)
			if tt.setup != nil {
				tt.setup(lookup, quotes)
			}
			history := tt.history
			if history == nil {
				history = []string{}
			}
			favorites := tt.favorites
			if favorites == nil {
				favorites = []string{}
			}
			manager := newTestManager(t, history, favorites)

			cli, stdout := newTestInteractiveCLI(t, lookup, quotes, manager, tt.input)
			require.NoError(t, cli.Run(context.Background(), cli))

			for _, want := range tt.wantOutput {
				assert.Contains(t, stdout.String(), want)
			}
			assert.Equal(t, tt.wantHistory, manager.History())
			assert.Equal(t, tt.wantFavorites, manager.Favorites())
		})
	}
}

func TestInteractiveCLI_Session_endOfInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli, stdout := newTestInteractiveCLI(t, mock_cli.NewMockLookup(ctrl), mock_cli.NewMockQuoteSource(ctrl), newTestManager(t, []string{}, []string{}), "")

	err := cli.Session(context.Background())
	assert.ErrorIs(t, err, errEnd)
	assert.Equal(t, "> ", stdout.String())
}
