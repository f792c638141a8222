package wordlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each list as a JSON array in <rootDir>/<key>.json.
type FileStore struct {
	rootDir string
}

func NewFileStore(rootDir string) *FileStore {
	return &FileStore{
		rootDir: rootDir,
	}
}

func (f *FileStore) filePath(key string) string {
	return filepath.Join(f.rootDir, key+".json")
}

func (f *FileStore) Load(_ context.Context, key string) ([]string, error) {
	contents, err := os.ReadFile(f.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return []string{}, fmt.Errorf("%w: os.ReadFile > %w", ErrStorageUnavailable, err)
	}

	var words []string
	if err := json.Unmarshal(contents, &words); err != nil {
		return []string{}, fmt.Errorf("%w: %w: json.Unmarshal(%s) > %w", ErrStorageUnavailable, ErrCorruptList, key, err)
	}
	if words == nil {
		return []string{}, nil
	}
	return words, nil
}

// Save writes to a temporary file and renames it over the old one, so an
// interrupted write leaves the previous list intact.
func (f *FileStore) Save(_ context.Context, key string, words []string) error {
	if words == nil {
		words = []string{}
	}
	contents, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("%w: json.Marshal > %w", ErrStorageUnavailable, err)
	}

	if err := os.MkdirAll(f.rootDir, 0o755); err != nil {
		return fmt.Errorf("%w: os.MkdirAll > %w", ErrStorageUnavailable, err)
	}

	file, err := os.CreateTemp(f.rootDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: os.CreateTemp > %w", ErrStorageUnavailable, err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: file.Write > %w", ErrStorageUnavailable, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: file.Close > %w", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpPath, f.filePath(key)); err != nil {
		return fmt.Errorf("%w: os.Rename > %w", ErrStorageUnavailable, err)
	}
	return nil
}
