package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfgPath := SetupTestConfig(t, tmpDir, "http://127.0.0.1:1/entries", "http://127.0.0.1:2")
	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), cfgPath)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:1/entries")
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:2")
	assert.Contains(t, string(content), "directory: "+filepath.Join(tmpDir, "lists"))
}

func TestWordList(t *testing.T) {
	storageDir := StorageDir(t.TempDir())

	WriteWordList(t, storageDir, "dictionaryHistory", []string{"hello", "world"})
	assert.Equal(t, []string{"hello", "world"}, ReadWordList(t, storageDir, "dictionaryHistory"))
}
