package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexi/internal/render"
)

func TestTerminalScreen(t *testing.T) {
	var buf bytes.Buffer
	terminal := render.NewTerminal(&buf)
	terminal.DisableColor()
	screen := NewTerminalScreen(terminal)

	require.NoError(t, screen.SetLoading("hello", true))
	require.NoError(t, screen.ShowResults(render.RenderError("Word not found")))
	require.NoError(t, screen.SetLoading("hello", false))
	require.NoError(t, screen.ShowWordList(render.RenderHistory([]string{})))

	assert.Equal(t, "Looking up \"hello\"...\nOops!\nWord not found. Please try another word.\nSearch History\nYour search history is empty\n", buf.String())
}

func TestMarkdownScreen(t *testing.T) {
	var buf bytes.Buffer
	screen := NewMarkdownScreen(&buf)

	require.NoError(t, screen.SetLoading("hello", true))
	require.NoError(t, screen.ShowResults(render.Render(helloEntries(), []string{"hello"})))
	require.NoError(t, screen.ShowWordList(render.RenderFavorites([]string{"hello"})))

	assert.Contains(t, buf.String(), "# hello ★\n")
	assert.Contains(t, buf.String(), "## Favorite Words\n\n1. hello\n")
	assert.NotContains(t, buf.String(), "Looking up")
}
