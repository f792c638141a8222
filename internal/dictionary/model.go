package dictionary

// Entry is one sense group returned for a looked-up word.
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Origin     string     `json:"origin,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// DisplayPhonetic returns the first phonetic transcription with non-empty
// text. Whitespace-only text counts as present.
func (e Entry) DisplayPhonetic() (string, bool) {
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text, true
		}
	}
	return "", false
}

// AudioURL returns the first pronunciation recording, if any.
func (e Entry) AudioURL() string {
	for _, p := range e.Phonetics {
		if p.Audio != "" {
			return p.Audio
		}
	}
	return ""
}
