package render

import (
	"fmt"
	"strings"
)

// Markdown renders a display as a Markdown document.
func Markdown(display Display) string {
	builder := strings.Builder{}
	if display.Error != nil {
		builder.WriteString(fmt.Sprintf("### %s\n\n%s\n", display.Error.Heading, display.Error.Message))
		return builder.String()
	}

	for i, card := range display.Cards {
		if i > 0 {
			builder.WriteString("\n---\n\n")
		}
		builder.WriteString(fmt.Sprintf("# %s %s\n\n", card.Title, card.FavoriteGlyph()))
		builder.WriteString(fmt.Sprintf("*%s*\n", card.Phonetic))
		if card.AudioURL != "" {
			builder.WriteString(fmt.Sprintf("\n[Pronunciation](%s)\n", card.AudioURL))
		}

		for _, meaning := range card.Meanings {
			builder.WriteString(fmt.Sprintf("\n## %s\n\n", meaning.PartOfSpeech))
			for j, def := range meaning.Definitions {
				builder.WriteString(fmt.Sprintf("%d. %s\n", j+1, def.Text))
				if def.Example != "" {
					builder.WriteString(fmt.Sprintf("   *%s*\n", def.Example))
				}
			}
		}

		if len(card.Sources) > 0 {
			builder.WriteString("\nSources:\n\n")
			for _, source := range card.Sources {
				builder.WriteString(fmt.Sprintf("- <%s>\n", source))
			}
		}
	}
	return builder.String()
}

// MarkdownWordList renders a history or favorites pane as a Markdown list.
func MarkdownWordList(list WordList) string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("## %s\n\n", list.Title))
	if list.IsEmpty() {
		builder.WriteString(fmt.Sprintf("*%s*\n", list.EmptyNotice))
		return builder.String()
	}
	for i, word := range list.Words {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, word))
	}
	return builder.String()
}
