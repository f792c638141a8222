package render

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/lexi/internal/dictionary"
)

const (
	// MaxDefinitions is how many definitions of a meaning are shown.
	MaxDefinitions = 5

	NoPhonetic       = "No phonetic available"
	ErrorHeading     = "Oops!"
	GlyphFavorite    = "★"
	GlyphNotFavorite = "☆"

	HistoryTitle         = "Search History"
	HistoryEmptyNotice   = "Your search history is empty"
	FavoritesTitle       = "Favorite Words"
	FavoritesEmptyNotice = "You have no favorite words yet"
)

// Render builds one card per entry. favorites holds lowercase words and only
// decides which glyph each card shows.
func Render(entries []dictionary.Entry, favorites []string) Display {
	favoriteSet := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		favoriteSet[strings.ToLower(f)] = true
	}

	cards := make([]Card, 0, len(entries))
	for _, entry := range entries {
		cards = append(cards, renderCard(entry, favoriteSet))
	}
	return Display{Cards: cards}
}

func renderCard(entry dictionary.Entry, favoriteSet map[string]bool) Card {
	phonetic, ok := entry.DisplayPhonetic()
	if !ok {
		phonetic = NoPhonetic
	}

	word := strings.ToLower(entry.Word)
	card := Card{
		Title:    entry.Word,
		Word:     word,
		Phonetic: phonetic,
		Favorite: favoriteSet[word],
		Meanings: make([]MeaningSection, 0, len(entry.Meanings)),
		AudioURL: entry.AudioURL(),
		Sources:  entry.SourceURLs,
	}
	for _, meaning := range entry.Meanings {
		card.Meanings = append(card.Meanings, renderMeaning(meaning))
	}
	return card
}

func renderMeaning(meaning dictionary.Meaning) MeaningSection {
	definitions := meaning.Definitions
	if len(definitions) > MaxDefinitions {
		definitions = definitions[:MaxDefinitions]
	}

	section := MeaningSection{
		PartOfSpeech: meaning.PartOfSpeech,
		Definitions:  make([]DefinitionItem, 0, len(definitions)),
	}
	for _, def := range definitions {
		item := DefinitionItem{Text: def.Definition}
		if def.Example != "" {
			item.Example = fmt.Sprintf(`Example: "%s"`, def.Example)
		}
		section.Definitions = append(section.Definitions, item)
	}
	return section
}

// RenderError builds the error panel shown in place of results.
func RenderError(message string) Display {
	return Display{
		Error: &ErrorPanel{
			Heading: ErrorHeading,
			Message: fmt.Sprintf("%s. Please try another word.", message),
		},
	}
}

func RenderHistory(words []string) WordList {
	return WordList{Title: HistoryTitle, Words: words, EmptyNotice: HistoryEmptyNotice}
}

func RenderFavorites(words []string) WordList {
	return WordList{Title: FavoritesTitle, Words: words, EmptyNotice: FavoritesEmptyNotice}
}
