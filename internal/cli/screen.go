package cli

import (
	"io"

	"github.com/at-ishikawa/lexi/internal/render"
)

// TerminalScreen draws the controller's panes one after another on a
// terminal. Hiding the loading indicator draws nothing.
type TerminalScreen struct {
	terminal *render.Terminal
}

func NewTerminalScreen(terminal *render.Terminal) *TerminalScreen {
	return &TerminalScreen{terminal: terminal}
}

func (s *TerminalScreen) SetLoading(word string, loading bool) error {
	if !loading {
		return nil
	}
	return s.terminal.WriteLoading(word)
}

func (s *TerminalScreen) ShowResults(display render.Display) error {
	return s.terminal.WriteDisplay(display)
}

func (s *TerminalScreen) ShowWordList(list render.WordList) error {
	return s.terminal.WriteWordList(list)
}

// MarkdownScreen writes panes as Markdown and has no loading indicator.
type MarkdownScreen struct {
	writer io.Writer
}

func NewMarkdownScreen(writer io.Writer) *MarkdownScreen {
	return &MarkdownScreen{writer: writer}
}

func (s *MarkdownScreen) SetLoading(string, bool) error {
	return nil
}

func (s *MarkdownScreen) ShowResults(display render.Display) error {
	_, err := io.WriteString(s.writer, render.Markdown(display))
	return err
}

func (s *MarkdownScreen) ShowWordList(list render.WordList) error {
	_, err := io.WriteString(s.writer, render.MarkdownWordList(list))
	return err
}
