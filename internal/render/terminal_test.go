package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexi/internal/dictionary"
	"github.com/at-ishikawa/lexi/internal/quote"
)

func newPlainTerminal() (*Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	terminal := NewTerminal(&buf)
	terminal.DisableColor()
	return terminal, &buf
}

func TestTerminal_WriteDisplay(t *testing.T) {
	tests := []struct {
		name    string
		display Display
		want    string
	}{
		{
			name:    "card",
			display: Render([]dictionary.Entry{helloEntry()}, []string{"hello"}),
			want: `hello  ★
/həˈloʊ/

noun
  1. A greeting.
     Example: "She gave a cheerful hello."
  2. An utterance of hello.
`,
		},
		{
			name: "two cards",
			display: Display{Cards: []Card{
				{Title: "bank", Phonetic: NoPhonetic},
				{Title: "bank", Phonetic: "/bæŋk/"},
			}},
			want: `bank  ☆
No phonetic available

bank  ☆
/bæŋk/
`,
		},
		{
			name:    "error panel",
			display: RenderError("Word not found"),
			want: `Oops!
Word not found. Please try another word.
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminal, buf := newPlainTerminal()
			require.NoError(t, terminal.WriteDisplay(tt.display))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTerminal_WriteWordList(t *testing.T) {
	tests := []struct {
		name string
		list WordList
		want string
	}{
		{
			name: "empty history",
			list: RenderHistory([]string{}),
			want: "Search History\nYour search history is empty\n",
		},
		{
			name: "favorites",
			list: RenderFavorites([]string{"hello", "world"}),
			want: "Favorite Words\n  1. hello\n  2. world\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminal, buf := newPlainTerminal()
			require.NoError(t, terminal.WriteWordList(tt.list))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTerminal_WriteLoadingAndQuote(t *testing.T) {
	terminal, buf := newPlainTerminal()

	require.NoError(t, terminal.WriteLoading("hello"))
	require.NoError(t, terminal.WriteQuote(quote.Fallback))

	assert.Equal(t, "Looking up \"hello\"...\n\"Words are a lens to focus one's mind.\" - Ayn Rand\n", buf.String())
}
