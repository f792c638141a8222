// Package testutil provides shared test helpers for config files and stored word lists.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file that points the dictionary and quote
// clients at the given base URLs and keeps word lists as files under
// tmpDir/lists. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, dictionaryURL, quoteURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`dictionary:
  base_url: %s
quote:
  base_url: %s
  timeout_seconds: 1
storage:
  driver: file
  directory: %s
`,
		dictionaryURL,
		quoteURL,
		StorageDir(tmpDir),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// StorageDir is where a config from SetupTestConfig keeps word lists.
func StorageDir(tmpDir string) string {
	return filepath.Join(tmpDir, "lists")
}

// WriteWordList stores words the way the file store does.
func WriteWordList(t *testing.T, storageDir, key string, words []string) {
	t.Helper()
	content, err := json.Marshal(words)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(storageDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(storageDir, key+".json"), content, 0644))
}

// ReadWordList reads a list written by the file store.
func ReadWordList(t *testing.T, storageDir, key string) []string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(storageDir, key+".json"))
	require.NoError(t, err)

	var words []string
	require.NoError(t, json.Unmarshal(content, &words))
	return words
}
