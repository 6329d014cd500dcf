package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "seatgrid-cli"

// FileKV keeps each slot as a JSON file under the user cache directory,
// namespaced by theater id.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed store for one theater. Pass a non-empty
// baseDir to override the user cache directory (used by tests).
func NewFileKV(theaterID string, baseDir string) (*FileKV, error) {
	theaterID = strings.TrimSpace(theaterID)
	if theaterID == "" {
		return nil, fmt.Errorf("theater id is required")
	}
	if baseDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		baseDir = filepath.Join(cacheDir, appDirName)
	}
	return &FileKV{dir: filepath.Join(baseDir, theaterID)}, nil
}

func (f *FileKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), value, 0o644)
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
