package dataaccess

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

const fileDatabase = "file"

// jsonFile is a single JSON document mapping record IDs to records. All access goes through one mutex,
// so every read-modify-write on the document is serialized.
type jsonFile[T any] struct {
	mu   sync.Mutex
	path string
}

func newJSONFile[T any](dir, name string) (*jsonFile[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	f := &jsonFile[T]{path: filepath.Join(dir, name)}
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		if err := f.write(make(map[string]*T)); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("error checking %s: %w", f.path, err)
	}
	return f, nil
}

func (f *jsonFile[T]) read() (map[string]*T, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", f.path, err)
	}

	data := make(map[string]*T)
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", f.path, err)
	}
	return data, nil
}

// write replaces the document via a temp file and rename so a crash never leaves it half written.
func (f *jsonFile[T]) write(data map[string]*T) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("error replacing %s: %w", f.path, err)
	}
	return nil
}

// view runs fn against the current document.
func (f *jsonFile[T]) view(fn func(data map[string]*T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	return fn(data)
}

// update runs fn against the current document and saves it if fn reports a change.
func (f *jsonFile[T]) update(fn func(data map[string]*T) (bool, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}

	changed, err := fn(data)
	if err != nil {
		return err
	} else if !changed {
		return nil
	}
	return f.write(data)
}
