package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WordListsFileName is the file the sink writes into its output directory.
const WordListsFileName = "word_lists.yml"

// YAMLWordListSink writes word lists to a YAML file.
type YAMLWordListSink struct {
	outputDir string
}

func NewYAMLWordListSink(outputDir string) *YAMLWordListSink {
	return &YAMLWordListSink{outputDir: outputDir}
}

// WriteAll writes both lists to word_lists.yml and returns its path.
func (s *YAMLWordListSink) WriteAll(lists WordLists) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, WordListsFileName)
	if err := writeYAML(path, lists); err != nil {
		return "", fmt.Errorf("write %s: %w", WordListsFileName, err)
	}
	return path, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// ReadYAMLWordLists reads word lists written by YAMLWordListSink or by hand.
// A missing list is read as empty.
func ReadYAMLWordLists(path string) (WordLists, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return WordLists{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var lists WordLists
	if err := yaml.Unmarshal(content, &lists); err != nil {
		return WordLists{}, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	if lists.History == nil {
		lists.History = []string{}
	}
	if lists.Favorites == nil {
		lists.Favorites = []string{}
	}
	return lists, nil
}
