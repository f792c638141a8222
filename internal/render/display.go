// Package render turns lookup results and word lists into display values and
// draws those values on a terminal or as Markdown.
package render

// Display is what the results pane shows: either cards or an error panel.
type Display struct {
	Cards []Card
	Error *ErrorPanel
}

// Card presents one dictionary entry.
type Card struct {
	Title    string
	Word     string
	Phonetic string
	Favorite bool
	Meanings []MeaningSection
	AudioURL string
	Sources  []string
}

// FavoriteGlyph is the star shown next to the title.
func (c Card) FavoriteGlyph() string {
	if c.Favorite {
		return GlyphFavorite
	}
	return GlyphNotFavorite
}

type MeaningSection struct {
	PartOfSpeech string
	Definitions  []DefinitionItem
}

type DefinitionItem struct {
	Text string
	// Example is already formatted for display and empty when the
	// definition has no usage example.
	Example string
}

type ErrorPanel struct {
	Heading string
	Message string
}

// WordList is the history or favorites pane.
type WordList struct {
	Title       string
	Words       []string
	EmptyNotice string
}

func (l WordList) IsEmpty() bool {
	return len(l.Words) == 0
}
