package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore keeps flags in a TOML file so that separate OS processes of the
// same session see each other's writes.
type FileStore struct {
	Path string

	mu sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file and its
// directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Lookup(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags, err := s.read()
	if err != nil {
		return false, err
	}
	return flags[name], nil
}

func (s *FileStore) Store(name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every later write.
		flags = map[string]bool{}
	}
	if value {
		flags[name] = true
	} else {
		delete(flags, name)
	}
	return s.write(flags)
}

// Clear removes the backing file, ending the session.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing session file: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]bool, error) {
	flags := map[string]bool{}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return flags, nil
	}
	if err != nil {
		return flags, fmt.Errorf("reading session file: %w", err)
	}
	if _, err := toml.Decode(string(data), &flags); err != nil {
		return map[string]bool{}, fmt.Errorf("parsing session file %s: %w", s.Path, err)
	}
	return flags, nil
}

func (s *FileStore) write(flags map[string]bool) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(flags); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
