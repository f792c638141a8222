package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Terminal draws display values as colored text.
type Terminal struct {
	writer   io.Writer
	title    *color.Color
	phonetic *color.Color
	favorite *color.Color
	heading  *color.Color
	example  *color.Color
	muted    *color.Color
	errorMsg *color.Color
}

func NewTerminal(writer io.Writer) *Terminal {
	return &Terminal{
		writer:   writer,
		title:    color.New(color.Bold, color.FgHiBlue),
		phonetic: color.New(color.Italic, color.FgHiBlack),
		favorite: color.New(color.FgYellow),
		heading:  color.New(color.Bold),
		example:  color.New(color.Italic, color.FgHiBlack),
		muted:    color.New(color.FgHiBlack),
		errorMsg: color.New(color.Bold, color.FgRed),
	}
}

// DisableColor makes the output plain regardless of the terminal.
func (t *Terminal) DisableColor() {
	for _, c := range []*color.Color{t.title, t.phonetic, t.favorite, t.heading, t.example, t.muted, t.errorMsg} {
		c.DisableColor()
	}
}

func (t *Terminal) WriteDisplay(display Display) error {
	if display.Error != nil {
		return t.writeError(*display.Error)
	}
	for i, card := range display.Cards {
		if i > 0 {
			if _, err := fmt.Fprintln(t.writer); err != nil {
				return err
			}
		}
		if err := t.writeCard(card); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) writeCard(card Card) error {
	glyph := t.muted
	if card.Favorite {
		glyph = t.favorite
	}
	if _, err := fmt.Fprintf(t.writer, "%s  %s\n", t.title.Sprint(card.Title), glyph.Sprint(card.FavoriteGlyph())); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.writer, t.phonetic.Sprint(card.Phonetic)); err != nil {
		return err
	}

	for _, meaning := range card.Meanings {
		if _, err := fmt.Fprintf(t.writer, "\n%s\n", t.heading.Sprint(meaning.PartOfSpeech)); err != nil {
			return err
		}
		for i, def := range meaning.Definitions {
			if _, err := fmt.Fprintf(t.writer, "  %d. %s\n", i+1, def.Text); err != nil {
				return err
			}
			if def.Example == "" {
				continue
			}
			if _, err := fmt.Fprintf(t.writer, "     %s\n", t.example.Sprint(def.Example)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Terminal) writeError(panel ErrorPanel) error {
	_, err := fmt.Fprintf(t.writer, "%s\n%s\n", t.errorMsg.Sprint(panel.Heading), panel.Message)
	return err
}

func (t *Terminal) WriteWordList(list WordList) error {
	if _, err := fmt.Fprintln(t.writer, t.heading.Sprint(list.Title)); err != nil {
		return err
	}
	if list.IsEmpty() {
		_, err := fmt.Fprintln(t.writer, t.muted.Sprint(list.EmptyNotice))
		return err
	}
	for i, word := range list.Words {
		if _, err := fmt.Fprintf(t.writer, "  %d. %s\n", i+1, word); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) WriteLoading(word string) error {
	_, err := fmt.Fprintln(t.writer, t.muted.Sprintf("Looking up %q...", word))
	return err
}

func (t *Terminal) WriteQuote(quote fmt.Stringer) error {
	_, err := fmt.Fprintln(t.writer, t.example.Sprint(quote.String()))
	return err
}
